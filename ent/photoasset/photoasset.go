// Code generated by ent, DO NOT EDIT.

package photoasset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the photoasset type in the database.
	Label = "photo_asset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPhotoID holds the string denoting the photo_id field in the database.
	FieldPhotoID = "photo_id"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldStorageProvider holds the string denoting the storage_provider field in the database.
	FieldStorageProvider = "storage_provider"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldEtag holds the string denoting the etag field in the database.
	FieldEtag = "etag"
	// FieldLastModified holds the string denoting the last_modified field in the database.
	FieldLastModified = "last_modified"
	// FieldMetadataHash holds the string denoting the metadata_hash field in the database.
	FieldMetadataHash = "metadata_hash"
	// FieldManifestVersion holds the string denoting the manifest_version field in the database.
	FieldManifestVersion = "manifest_version"
	// FieldManifest holds the string denoting the manifest field in the database.
	FieldManifest = "manifest"
	// FieldSyncStatus holds the string denoting the sync_status field in the database.
	FieldSyncStatus = "sync_status"
	// FieldConflictReason holds the string denoting the conflict_reason field in the database.
	FieldConflictReason = "conflict_reason"
	// FieldConflictPayload holds the string denoting the conflict_payload field in the database.
	FieldConflictPayload = "conflict_payload"
	// FieldSyncedAt holds the string denoting the synced_at field in the database.
	FieldSyncedAt = "synced_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// Table holds the table name of the photoasset in the database.
	Table = "photo_assets"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "photo_assets"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for photoasset fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTenantID,
	FieldPhotoID,
	FieldStorageKey,
	FieldStorageProvider,
	FieldSize,
	FieldEtag,
	FieldLastModified,
	FieldMetadataHash,
	FieldManifestVersion,
	FieldManifest,
	FieldSyncStatus,
	FieldConflictReason,
	FieldConflictPayload,
	FieldSyncedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// PhotoIDValidator is a validator for the "photo_id" field. It is called by the builders before save.
	PhotoIDValidator func(string) error
	// StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	StorageKeyValidator func(string) error
	// StorageProviderValidator is a validator for the "storage_provider" field. It is called by the builders before save.
	StorageProviderValidator func(string) error
	// EtagValidator is a validator for the "etag" field. It is called by the builders before save.
	EtagValidator func(string) error
	// LastModifiedValidator is a validator for the "last_modified" field. It is called by the builders before save.
	LastModifiedValidator func(string) error
	// MetadataHashValidator is a validator for the "metadata_hash" field. It is called by the builders before save.
	MetadataHashValidator func(string) error
	// DefaultManifestVersion holds the default value on creation for the "manifest_version" field.
	DefaultManifestVersion string
	// ManifestVersionValidator is a validator for the "manifest_version" field. It is called by the builders before save.
	ManifestVersionValidator func(string) error
	// DefaultSyncStatus holds the default value on creation for the "sync_status" field.
	DefaultSyncStatus string
	// SyncStatusValidator is a validator for the "sync_status" field. It is called by the builders before save.
	SyncStatusValidator func(string) error
	// ConflictReasonValidator is a validator for the "conflict_reason" field. It is called by the builders before save.
	ConflictReasonValidator func(string) error
	// DefaultSyncedAt holds the default value on creation for the "synced_at" field.
	DefaultSyncedAt func() time.Time
)

// OrderOption defines the ordering options for the PhotoAsset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByPhotoID orders the results by the photo_id field.
func ByPhotoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhotoID, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByStorageProvider orders the results by the storage_provider field.
func ByStorageProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageProvider, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByEtag orders the results by the etag field.
func ByEtag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEtag, opts...).ToFunc()
}

// ByLastModified orders the results by the last_modified field.
func ByLastModified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastModified, opts...).ToFunc()
}

// ByMetadataHash orders the results by the metadata_hash field.
func ByMetadataHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetadataHash, opts...).ToFunc()
}

// ByManifestVersion orders the results by the manifest_version field.
func ByManifestVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManifestVersion, opts...).ToFunc()
}

// ByManifest orders the results by the manifest field.
func ByManifest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManifest, opts...).ToFunc()
}

// BySyncStatus orders the results by the sync_status field.
func BySyncStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncStatus, opts...).ToFunc()
}

// ByConflictReason orders the results by the conflict_reason field.
func ByConflictReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictReason, opts...).ToFunc()
}

// ByConflictPayload orders the results by the conflict_payload field.
func ByConflictPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConflictPayload, opts...).ToFunc()
}

// BySyncedAt orders the results by the synced_at field.
func BySyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
