/*
 * @Description: 租户表
 * @Author: 安知鱼
 * @Date: 2025-08-23 02:40:18
 * @LastEditTime: 2025-08-23 02:40:18
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Tenant holds the schema definition for the Tenant entity.
type Tenant struct {
	ent.Schema
}

// Annotations of the Tenant.
func (Tenant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("租户表"),
	}
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			MaxLen(255).
			NotEmpty().
			Comment("租户名称"),
		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("租户标识，用于 URL 与缓存键"),
		field.String("status").
			MaxLen(16).
			Default("active").
			Comment("租户状态：active / suspended"),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("photo_assets", PhotoAsset.Type),
	}
}
