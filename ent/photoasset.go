// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// 照片资产表，存储端对象与清单的同步登记
type PhotoAsset struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 所属租户 ID
	TenantID uint `json:"tenant_id,omitempty"`
	// 照片的稳定业务标识，由存储键派生
	PhotoID string `json:"photo_id,omitempty"`
	// 存储端对象键
	StorageKey string `json:"storage_key,omitempty"`
	// 存储提供者类型，database-only 表示刻意不对应存储对象
	StorageProvider string `json:"storage_provider,omitempty"`
	// 对象字节数
	Size *int64 `json:"size,omitempty"`
	// 存储端 ETag
	Etag *string `json:"etag,omitempty"`
	// 存储端最后修改时间 (RFC3339)
	LastModified *string `json:"last_modified,omitempty"`
	// 元数据指纹，etag/size/lastModified 拼接而成
	MetadataHash *string `json:"metadata_hash,omitempty"`
	// 清单负载的版本号
	ManifestVersion string `json:"manifest_version,omitempty"`
	// 带版本号的照片清单，以 JSON 格式存储
	Manifest model.PhotoAssetManifest `json:"manifest,omitempty"`
	// 同步状态：pending / synced / conflict
	SyncStatus string `json:"sync_status,omitempty"`
	// 进入冲突状态的原因
	ConflictReason *string `json:"conflict_reason,omitempty"`
	// 冲突上下文快照，以 JSON 格式存储
	ConflictPayload *model.ConflictPayload `json:"conflict_payload,omitempty"`
	// 最近一次同步判定时间
	SyncedAt time.Time `json:"synced_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhotoAssetQuery when eager-loading is set.
	Edges        PhotoAssetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhotoAssetEdges holds the relations/edges for other nodes in the graph.
type PhotoAssetEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhotoAssetEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhotoAsset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case photoasset.FieldConflictPayload:
			values[i] = new(model.ConflictPayload)
		case photoasset.FieldManifest:
			values[i] = new(model.PhotoAssetManifest)
		case photoasset.FieldID, photoasset.FieldTenantID, photoasset.FieldSize:
			values[i] = new(sql.NullInt64)
		case photoasset.FieldPhotoID, photoasset.FieldStorageKey, photoasset.FieldStorageProvider, photoasset.FieldEtag, photoasset.FieldLastModified, photoasset.FieldMetadataHash, photoasset.FieldManifestVersion, photoasset.FieldSyncStatus, photoasset.FieldConflictReason:
			values[i] = new(sql.NullString)
		case photoasset.FieldCreatedAt, photoasset.FieldUpdatedAt, photoasset.FieldSyncedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhotoAsset fields.
func (pa *PhotoAsset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case photoasset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pa.ID = uint(value.Int64)
		case photoasset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				pa.CreatedAt = value.Time
			}
		case photoasset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				pa.UpdatedAt = value.Time
			}
		case photoasset.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				pa.TenantID = uint(value.Int64)
			}
		case photoasset.FieldPhotoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field photo_id", values[i])
			} else if value.Valid {
				pa.PhotoID = value.String
			}
		case photoasset.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				pa.StorageKey = value.String
			}
		case photoasset.FieldStorageProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_provider", values[i])
			} else if value.Valid {
				pa.StorageProvider = value.String
			}
		case photoasset.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				pa.Size = new(int64)
				*pa.Size = value.Int64
			}
		case photoasset.FieldEtag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etag", values[i])
			} else if value.Valid {
				pa.Etag = new(string)
				*pa.Etag = value.String
			}
		case photoasset.FieldLastModified:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_modified", values[i])
			} else if value.Valid {
				pa.LastModified = new(string)
				*pa.LastModified = value.String
			}
		case photoasset.FieldMetadataHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metadata_hash", values[i])
			} else if value.Valid {
				pa.MetadataHash = new(string)
				*pa.MetadataHash = value.String
			}
		case photoasset.FieldManifestVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manifest_version", values[i])
			} else if value.Valid {
				pa.ManifestVersion = value.String
			}
		case photoasset.FieldManifest:
			if value, ok := values[i].(*model.PhotoAssetManifest); !ok {
				return fmt.Errorf("unexpected type %T for field manifest", values[i])
			} else if value != nil {
				pa.Manifest = *value
			}
		case photoasset.FieldSyncStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sync_status", values[i])
			} else if value.Valid {
				pa.SyncStatus = value.String
			}
		case photoasset.FieldConflictReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_reason", values[i])
			} else if value.Valid {
				pa.ConflictReason = new(string)
				*pa.ConflictReason = value.String
			}
		case photoasset.FieldConflictPayload:
			if value, ok := values[i].(*model.ConflictPayload); !ok {
				return fmt.Errorf("unexpected type %T for field conflict_payload", values[i])
			} else if value != nil {
				pa.ConflictPayload = value
			}
		case photoasset.FieldSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field synced_at", values[i])
			} else if value.Valid {
				pa.SyncedAt = value.Time
			}
		default:
			pa.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhotoAsset.
// This includes values selected through modifiers, order, etc.
func (pa *PhotoAsset) Value(name string) (ent.Value, error) {
	return pa.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the PhotoAsset entity.
func (pa *PhotoAsset) QueryTenant() *TenantQuery {
	return NewPhotoAssetClient(pa.config).QueryTenant(pa)
}

// Update returns a builder for updating this PhotoAsset.
// Note that you need to call PhotoAsset.Unwrap() before calling this method if this PhotoAsset
// was returned from a transaction, and the transaction was committed or rolled back.
func (pa *PhotoAsset) Update() *PhotoAssetUpdateOne {
	return NewPhotoAssetClient(pa.config).UpdateOne(pa)
}

// Unwrap unwraps the PhotoAsset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pa *PhotoAsset) Unwrap() *PhotoAsset {
	_tx, ok := pa.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhotoAsset is not a transactional entity")
	}
	pa.config.driver = _tx.drv
	return pa
}

// String implements the fmt.Stringer.
func (pa *PhotoAsset) String() string {
	var builder strings.Builder
	builder.WriteString("PhotoAsset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pa.ID))
	builder.WriteString("created_at=")
	builder.WriteString(pa.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(pa.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", pa.TenantID))
	builder.WriteString(", ")
	builder.WriteString("photo_id=")
	builder.WriteString(pa.PhotoID)
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(pa.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("storage_provider=")
	builder.WriteString(pa.StorageProvider)
	builder.WriteString(", ")
	if v := pa.Size; v != nil {
		builder.WriteString("size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := pa.Etag; v != nil {
		builder.WriteString("etag=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := pa.LastModified; v != nil {
		builder.WriteString("last_modified=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := pa.MetadataHash; v != nil {
		builder.WriteString("metadata_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("manifest_version=")
	builder.WriteString(pa.ManifestVersion)
	builder.WriteString(", ")
	builder.WriteString("manifest=")
	builder.WriteString(fmt.Sprintf("%v", pa.Manifest))
	builder.WriteString(", ")
	builder.WriteString("sync_status=")
	builder.WriteString(pa.SyncStatus)
	builder.WriteString(", ")
	if v := pa.ConflictReason; v != nil {
		builder.WriteString("conflict_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("conflict_payload=")
	builder.WriteString(fmt.Sprintf("%v", pa.ConflictPayload))
	builder.WriteString(", ")
	builder.WriteString("synced_at=")
	builder.WriteString(pa.SyncedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PhotoAssets is a parsable slice of PhotoAsset.
type PhotoAssets []*PhotoAsset
