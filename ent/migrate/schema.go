// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PhotoAssetsColumns holds the columns for the "photo_assets" table.
	PhotoAssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "photo_id", Type: field.TypeString, Size: 255, Comment: "照片的稳定业务标识，由存储键派生"},
		{Name: "storage_key", Type: field.TypeString, Size: 1024, Comment: "存储端对象键"},
		{Name: "storage_provider", Type: field.TypeString, Size: 32, Comment: "存储提供者类型，database-only 表示刻意不对应存储对象"},
		{Name: "size", Type: field.TypeInt64, Nullable: true, Comment: "对象字节数"},
		{Name: "etag", Type: field.TypeString, Nullable: true, Size: 255, Comment: "存储端 ETag"},
		{Name: "last_modified", Type: field.TypeString, Nullable: true, Size: 64, Comment: "存储端最后修改时间 (RFC3339)"},
		{Name: "metadata_hash", Type: field.TypeString, Nullable: true, Size: 512, Comment: "元数据指纹，etag/size/lastModified 拼接而成"},
		{Name: "manifest_version", Type: field.TypeString, Size: 16, Comment: "清单负载的版本号", Default: "v7"},
		{Name: "manifest", Type: field.TypeOther, Nullable: true, Comment: "带版本号的照片清单，以 JSON 格式存储", SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb", "sqlite3": "text"}},
		{Name: "sync_status", Type: field.TypeString, Size: 16, Comment: "同步状态：pending / synced / conflict", Default: "pending"},
		{Name: "conflict_reason", Type: field.TypeString, Nullable: true, Size: 512, Comment: "进入冲突状态的原因"},
		{Name: "conflict_payload", Type: field.TypeOther, Nullable: true, Comment: "冲突上下文快照，以 JSON 格式存储", SchemaType: map[string]string{"mysql": "json", "postgres": "jsonb", "sqlite3": "text"}},
		{Name: "synced_at", Type: field.TypeTime, Comment: "最近一次同步判定时间"},
		{Name: "tenant_id", Type: field.TypeUint, Comment: "所属租户 ID"},
	}
	// PhotoAssetsTable holds the schema information for the "photo_assets" table.
	PhotoAssetsTable = &schema.Table{
		Name:       "photo_assets",
		Comment:    "照片资产表，存储端对象与清单的同步登记",
		Columns:    PhotoAssetsColumns,
		PrimaryKey: []*schema.Column{PhotoAssetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "photo_assets_tenants_photo_assets",
				Columns:    []*schema.Column{PhotoAssetsColumns[16]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "photoasset_tenant_id_storage_key",
				Unique:  true,
				Columns: []*schema.Column{PhotoAssetsColumns[16], PhotoAssetsColumns[4]},
			},
			{
				Name:    "photoasset_tenant_id_photo_id",
				Unique:  true,
				Columns: []*schema.Column{PhotoAssetsColumns[16], PhotoAssetsColumns[3]},
			},
			{
				Name:    "photoasset_tenant_id_sync_status",
				Unique:  false,
				Columns: []*schema.Column{PhotoAssetsColumns[16], PhotoAssetsColumns[12]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255, Comment: "租户名称"},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100, Comment: "租户标识，用于 URL 与缓存键"},
		{Name: "status", Type: field.TypeString, Size: 16, Comment: "租户状态：active / suspended", Default: "active"},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Comment:    "租户表",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PhotoAssetsTable,
		TenantsTable,
	}
)

func init() {
	PhotoAssetsTable.ForeignKeys[0].RefTable = TenantsTable
}
