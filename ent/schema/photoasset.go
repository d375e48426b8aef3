/*
 * @Description: 照片资产表
 * @Author: 安知鱼
 * @Date: 2025-08-23 02:46:55
 * @LastEditTime: 2025-09-01 11:20:33
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PhotoAsset holds the schema definition for the PhotoAsset entity.
type PhotoAsset struct {
	ent.Schema
}

// Annotations of the PhotoAsset.
func (PhotoAsset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("照片资产表，存储端对象与清单的同步登记"),
	}
}

// Fields of the PhotoAsset.
func (PhotoAsset) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Uint("tenant_id").
			Comment("所属租户 ID"),
		field.String("photo_id").
			MaxLen(255).
			NotEmpty().
			Comment("照片的稳定业务标识，由存储键派生"),
		field.String("storage_key").
			MaxLen(1024).
			NotEmpty().
			Comment("存储端对象键"),
		field.String("storage_provider").
			MaxLen(32).
			NotEmpty().
			Comment("存储提供者类型，database-only 表示刻意不对应存储对象"),
		field.Int64("size").
			Optional().
			Nillable().
			Comment("对象字节数"),
		field.String("etag").
			MaxLen(255).
			Optional().
			Nillable().
			Comment("存储端 ETag"),
		field.String("last_modified").
			MaxLen(64).
			Optional().
			Nillable().
			Comment("存储端最后修改时间 (RFC3339)"),
		field.String("metadata_hash").
			MaxLen(512).
			Optional().
			Nillable().
			Comment("元数据指纹，etag/size/lastModified 拼接而成"),
		field.String("manifest_version").
			MaxLen(16).
			Default("v7").
			Comment("清单负载的版本号"),
		field.Other("manifest", model.PhotoAssetManifest{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
				dialect.SQLite:   "text",
			}).
			Optional().
			Comment("带版本号的照片清单，以 JSON 格式存储"),
		field.String("sync_status").
			MaxLen(16).
			Default("pending").
			Comment("同步状态：pending / synced / conflict"),
		field.String("conflict_reason").
			MaxLen(512).
			Optional().
			Nillable().
			Comment("进入冲突状态的原因"),
		field.Other("conflict_payload", &model.ConflictPayload{}).
			SchemaType(map[string]string{
				dialect.MySQL:    "json",
				dialect.Postgres: "jsonb",
				dialect.SQLite:   "text",
			}).
			Optional().
			Comment("冲突上下文快照，以 JSON 格式存储"),
		field.Time("synced_at").
			Default(time.Now).
			Comment("最近一次同步判定时间"),
	}
}

// Edges of the PhotoAsset.
func (PhotoAsset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("photo_assets").
			Field("tenant_id").
			Unique().
			Required(),
	}
}

// Indexes of the PhotoAsset.
func (PhotoAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "storage_key").
			Unique(),
		index.Fields("tenant_id", "photo_id").
			Unique(),
		index.Fields("tenant_id", "sync_status"),
	}
}
