// Code generated by ent, DO NOT EDIT.

package photoasset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/afilmory-app/ent/predicate"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldTenantID, v))
}

// PhotoID applies equality check predicate on the "photo_id" field. It's identical to PhotoIDEQ.
func PhotoID(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldPhotoID, v))
}

// StorageKey applies equality check predicate on the "storage_key" field. It's identical to StorageKeyEQ.
func StorageKey(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldStorageKey, v))
}

// StorageProvider applies equality check predicate on the "storage_provider" field. It's identical to StorageProviderEQ.
func StorageProvider(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldStorageProvider, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldSize, v))
}

// Etag applies equality check predicate on the "etag" field. It's identical to EtagEQ.
func Etag(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldEtag, v))
}

// LastModified applies equality check predicate on the "last_modified" field. It's identical to LastModifiedEQ.
func LastModified(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldLastModified, v))
}

// MetadataHash applies equality check predicate on the "metadata_hash" field. It's identical to MetadataHashEQ.
func MetadataHash(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldMetadataHash, v))
}

// ManifestVersion applies equality check predicate on the "manifest_version" field. It's identical to ManifestVersionEQ.
func ManifestVersion(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldManifestVersion, v))
}

// Manifest applies equality check predicate on the "manifest" field. It's identical to ManifestEQ.
func Manifest(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldManifest, v))
}

// SyncStatus applies equality check predicate on the "sync_status" field. It's identical to SyncStatusEQ.
func SyncStatus(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldSyncStatus, v))
}

// ConflictReason applies equality check predicate on the "conflict_reason" field. It's identical to ConflictReasonEQ.
func ConflictReason(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldConflictReason, v))
}

// ConflictPayload applies equality check predicate on the "conflict_payload" field. It's identical to ConflictPayloadEQ.
func ConflictPayload(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldConflictPayload, v))
}

// SyncedAt applies equality check predicate on the "synced_at" field. It's identical to SyncedAtEQ.
func SyncedAt(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldSyncedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uint) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldTenantID, vs...))
}

// PhotoIDEQ applies the EQ predicate on the "photo_id" field.
func PhotoIDEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldPhotoID, v))
}

// PhotoIDNEQ applies the NEQ predicate on the "photo_id" field.
func PhotoIDNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldPhotoID, v))
}

// PhotoIDIn applies the In predicate on the "photo_id" field.
func PhotoIDIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldPhotoID, vs...))
}

// PhotoIDNotIn applies the NotIn predicate on the "photo_id" field.
func PhotoIDNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldPhotoID, vs...))
}

// PhotoIDGT applies the GT predicate on the "photo_id" field.
func PhotoIDGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldPhotoID, v))
}

// PhotoIDGTE applies the GTE predicate on the "photo_id" field.
func PhotoIDGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldPhotoID, v))
}

// PhotoIDLT applies the LT predicate on the "photo_id" field.
func PhotoIDLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldPhotoID, v))
}

// PhotoIDLTE applies the LTE predicate on the "photo_id" field.
func PhotoIDLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldPhotoID, v))
}

// PhotoIDContains applies the Contains predicate on the "photo_id" field.
func PhotoIDContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldPhotoID, v))
}

// PhotoIDHasPrefix applies the HasPrefix predicate on the "photo_id" field.
func PhotoIDHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldPhotoID, v))
}

// PhotoIDHasSuffix applies the HasSuffix predicate on the "photo_id" field.
func PhotoIDHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldPhotoID, v))
}

// PhotoIDEqualFold applies the EqualFold predicate on the "photo_id" field.
func PhotoIDEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldPhotoID, v))
}

// PhotoIDContainsFold applies the ContainsFold predicate on the "photo_id" field.
func PhotoIDContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldPhotoID, v))
}

// StorageKeyEQ applies the EQ predicate on the "storage_key" field.
func StorageKeyEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldStorageKey, v))
}

// StorageKeyNEQ applies the NEQ predicate on the "storage_key" field.
func StorageKeyNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldStorageKey, v))
}

// StorageKeyIn applies the In predicate on the "storage_key" field.
func StorageKeyIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldStorageKey, vs...))
}

// StorageKeyNotIn applies the NotIn predicate on the "storage_key" field.
func StorageKeyNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldStorageKey, vs...))
}

// StorageKeyGT applies the GT predicate on the "storage_key" field.
func StorageKeyGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldStorageKey, v))
}

// StorageKeyGTE applies the GTE predicate on the "storage_key" field.
func StorageKeyGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldStorageKey, v))
}

// StorageKeyLT applies the LT predicate on the "storage_key" field.
func StorageKeyLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldStorageKey, v))
}

// StorageKeyLTE applies the LTE predicate on the "storage_key" field.
func StorageKeyLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldStorageKey, v))
}

// StorageKeyContains applies the Contains predicate on the "storage_key" field.
func StorageKeyContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldStorageKey, v))
}

// StorageKeyHasPrefix applies the HasPrefix predicate on the "storage_key" field.
func StorageKeyHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldStorageKey, v))
}

// StorageKeyHasSuffix applies the HasSuffix predicate on the "storage_key" field.
func StorageKeyHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldStorageKey, v))
}

// StorageKeyEqualFold applies the EqualFold predicate on the "storage_key" field.
func StorageKeyEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldStorageKey, v))
}

// StorageKeyContainsFold applies the ContainsFold predicate on the "storage_key" field.
func StorageKeyContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldStorageKey, v))
}

// StorageProviderEQ applies the EQ predicate on the "storage_provider" field.
func StorageProviderEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldStorageProvider, v))
}

// StorageProviderNEQ applies the NEQ predicate on the "storage_provider" field.
func StorageProviderNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldStorageProvider, v))
}

// StorageProviderIn applies the In predicate on the "storage_provider" field.
func StorageProviderIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldStorageProvider, vs...))
}

// StorageProviderNotIn applies the NotIn predicate on the "storage_provider" field.
func StorageProviderNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldStorageProvider, vs...))
}

// StorageProviderGT applies the GT predicate on the "storage_provider" field.
func StorageProviderGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldStorageProvider, v))
}

// StorageProviderGTE applies the GTE predicate on the "storage_provider" field.
func StorageProviderGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldStorageProvider, v))
}

// StorageProviderLT applies the LT predicate on the "storage_provider" field.
func StorageProviderLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldStorageProvider, v))
}

// StorageProviderLTE applies the LTE predicate on the "storage_provider" field.
func StorageProviderLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldStorageProvider, v))
}

// StorageProviderContains applies the Contains predicate on the "storage_provider" field.
func StorageProviderContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldStorageProvider, v))
}

// StorageProviderHasPrefix applies the HasPrefix predicate on the "storage_provider" field.
func StorageProviderHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldStorageProvider, v))
}

// StorageProviderHasSuffix applies the HasSuffix predicate on the "storage_provider" field.
func StorageProviderHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldStorageProvider, v))
}

// StorageProviderEqualFold applies the EqualFold predicate on the "storage_provider" field.
func StorageProviderEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldStorageProvider, v))
}

// StorageProviderContainsFold applies the ContainsFold predicate on the "storage_provider" field.
func StorageProviderContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldStorageProvider, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldSize, v))
}

// SizeIsNil applies the IsNil predicate on the "size" field.
func SizeIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldSize))
}

// SizeNotNil applies the NotNil predicate on the "size" field.
func SizeNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldSize))
}

// EtagEQ applies the EQ predicate on the "etag" field.
func EtagEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldEtag, v))
}

// EtagNEQ applies the NEQ predicate on the "etag" field.
func EtagNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldEtag, v))
}

// EtagIn applies the In predicate on the "etag" field.
func EtagIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldEtag, vs...))
}

// EtagNotIn applies the NotIn predicate on the "etag" field.
func EtagNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldEtag, vs...))
}

// EtagGT applies the GT predicate on the "etag" field.
func EtagGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldEtag, v))
}

// EtagGTE applies the GTE predicate on the "etag" field.
func EtagGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldEtag, v))
}

// EtagLT applies the LT predicate on the "etag" field.
func EtagLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldEtag, v))
}

// EtagLTE applies the LTE predicate on the "etag" field.
func EtagLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldEtag, v))
}

// EtagContains applies the Contains predicate on the "etag" field.
func EtagContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldEtag, v))
}

// EtagHasPrefix applies the HasPrefix predicate on the "etag" field.
func EtagHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldEtag, v))
}

// EtagHasSuffix applies the HasSuffix predicate on the "etag" field.
func EtagHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldEtag, v))
}

// EtagIsNil applies the IsNil predicate on the "etag" field.
func EtagIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldEtag))
}

// EtagNotNil applies the NotNil predicate on the "etag" field.
func EtagNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldEtag))
}

// EtagEqualFold applies the EqualFold predicate on the "etag" field.
func EtagEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldEtag, v))
}

// EtagContainsFold applies the ContainsFold predicate on the "etag" field.
func EtagContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldEtag, v))
}

// LastModifiedEQ applies the EQ predicate on the "last_modified" field.
func LastModifiedEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldLastModified, v))
}

// LastModifiedNEQ applies the NEQ predicate on the "last_modified" field.
func LastModifiedNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldLastModified, v))
}

// LastModifiedIn applies the In predicate on the "last_modified" field.
func LastModifiedIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldLastModified, vs...))
}

// LastModifiedNotIn applies the NotIn predicate on the "last_modified" field.
func LastModifiedNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldLastModified, vs...))
}

// LastModifiedGT applies the GT predicate on the "last_modified" field.
func LastModifiedGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldLastModified, v))
}

// LastModifiedGTE applies the GTE predicate on the "last_modified" field.
func LastModifiedGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldLastModified, v))
}

// LastModifiedLT applies the LT predicate on the "last_modified" field.
func LastModifiedLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldLastModified, v))
}

// LastModifiedLTE applies the LTE predicate on the "last_modified" field.
func LastModifiedLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldLastModified, v))
}

// LastModifiedContains applies the Contains predicate on the "last_modified" field.
func LastModifiedContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldLastModified, v))
}

// LastModifiedHasPrefix applies the HasPrefix predicate on the "last_modified" field.
func LastModifiedHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldLastModified, v))
}

// LastModifiedHasSuffix applies the HasSuffix predicate on the "last_modified" field.
func LastModifiedHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldLastModified, v))
}

// LastModifiedIsNil applies the IsNil predicate on the "last_modified" field.
func LastModifiedIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldLastModified))
}

// LastModifiedNotNil applies the NotNil predicate on the "last_modified" field.
func LastModifiedNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldLastModified))
}

// LastModifiedEqualFold applies the EqualFold predicate on the "last_modified" field.
func LastModifiedEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldLastModified, v))
}

// LastModifiedContainsFold applies the ContainsFold predicate on the "last_modified" field.
func LastModifiedContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldLastModified, v))
}

// MetadataHashEQ applies the EQ predicate on the "metadata_hash" field.
func MetadataHashEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldMetadataHash, v))
}

// MetadataHashNEQ applies the NEQ predicate on the "metadata_hash" field.
func MetadataHashNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldMetadataHash, v))
}

// MetadataHashIn applies the In predicate on the "metadata_hash" field.
func MetadataHashIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldMetadataHash, vs...))
}

// MetadataHashNotIn applies the NotIn predicate on the "metadata_hash" field.
func MetadataHashNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldMetadataHash, vs...))
}

// MetadataHashGT applies the GT predicate on the "metadata_hash" field.
func MetadataHashGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldMetadataHash, v))
}

// MetadataHashGTE applies the GTE predicate on the "metadata_hash" field.
func MetadataHashGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldMetadataHash, v))
}

// MetadataHashLT applies the LT predicate on the "metadata_hash" field.
func MetadataHashLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldMetadataHash, v))
}

// MetadataHashLTE applies the LTE predicate on the "metadata_hash" field.
func MetadataHashLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldMetadataHash, v))
}

// MetadataHashContains applies the Contains predicate on the "metadata_hash" field.
func MetadataHashContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldMetadataHash, v))
}

// MetadataHashHasPrefix applies the HasPrefix predicate on the "metadata_hash" field.
func MetadataHashHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldMetadataHash, v))
}

// MetadataHashHasSuffix applies the HasSuffix predicate on the "metadata_hash" field.
func MetadataHashHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldMetadataHash, v))
}

// MetadataHashIsNil applies the IsNil predicate on the "metadata_hash" field.
func MetadataHashIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldMetadataHash))
}

// MetadataHashNotNil applies the NotNil predicate on the "metadata_hash" field.
func MetadataHashNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldMetadataHash))
}

// MetadataHashEqualFold applies the EqualFold predicate on the "metadata_hash" field.
func MetadataHashEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldMetadataHash, v))
}

// MetadataHashContainsFold applies the ContainsFold predicate on the "metadata_hash" field.
func MetadataHashContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldMetadataHash, v))
}

// ManifestVersionEQ applies the EQ predicate on the "manifest_version" field.
func ManifestVersionEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldManifestVersion, v))
}

// ManifestVersionNEQ applies the NEQ predicate on the "manifest_version" field.
func ManifestVersionNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldManifestVersion, v))
}

// ManifestVersionIn applies the In predicate on the "manifest_version" field.
func ManifestVersionIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldManifestVersion, vs...))
}

// ManifestVersionNotIn applies the NotIn predicate on the "manifest_version" field.
func ManifestVersionNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldManifestVersion, vs...))
}

// ManifestVersionGT applies the GT predicate on the "manifest_version" field.
func ManifestVersionGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldManifestVersion, v))
}

// ManifestVersionGTE applies the GTE predicate on the "manifest_version" field.
func ManifestVersionGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldManifestVersion, v))
}

// ManifestVersionLT applies the LT predicate on the "manifest_version" field.
func ManifestVersionLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldManifestVersion, v))
}

// ManifestVersionLTE applies the LTE predicate on the "manifest_version" field.
func ManifestVersionLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldManifestVersion, v))
}

// ManifestVersionContains applies the Contains predicate on the "manifest_version" field.
func ManifestVersionContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldManifestVersion, v))
}

// ManifestVersionHasPrefix applies the HasPrefix predicate on the "manifest_version" field.
func ManifestVersionHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldManifestVersion, v))
}

// ManifestVersionHasSuffix applies the HasSuffix predicate on the "manifest_version" field.
func ManifestVersionHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldManifestVersion, v))
}

// ManifestVersionEqualFold applies the EqualFold predicate on the "manifest_version" field.
func ManifestVersionEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldManifestVersion, v))
}

// ManifestVersionContainsFold applies the ContainsFold predicate on the "manifest_version" field.
func ManifestVersionContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldManifestVersion, v))
}

// ManifestEQ applies the EQ predicate on the "manifest" field.
func ManifestEQ(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldManifest, v))
}

// ManifestNEQ applies the NEQ predicate on the "manifest" field.
func ManifestNEQ(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldManifest, v))
}

// ManifestIn applies the In predicate on the "manifest" field.
func ManifestIn(vs ...model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldManifest, vs...))
}

// ManifestNotIn applies the NotIn predicate on the "manifest" field.
func ManifestNotIn(vs ...model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldManifest, vs...))
}

// ManifestGT applies the GT predicate on the "manifest" field.
func ManifestGT(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldManifest, v))
}

// ManifestGTE applies the GTE predicate on the "manifest" field.
func ManifestGTE(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldManifest, v))
}

// ManifestLT applies the LT predicate on the "manifest" field.
func ManifestLT(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldManifest, v))
}

// ManifestLTE applies the LTE predicate on the "manifest" field.
func ManifestLTE(v model.PhotoAssetManifest) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldManifest, v))
}

// ManifestIsNil applies the IsNil predicate on the "manifest" field.
func ManifestIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldManifest))
}

// ManifestNotNil applies the NotNil predicate on the "manifest" field.
func ManifestNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldManifest))
}

// SyncStatusEQ applies the EQ predicate on the "sync_status" field.
func SyncStatusEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldSyncStatus, v))
}

// SyncStatusNEQ applies the NEQ predicate on the "sync_status" field.
func SyncStatusNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldSyncStatus, v))
}

// SyncStatusIn applies the In predicate on the "sync_status" field.
func SyncStatusIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldSyncStatus, vs...))
}

// SyncStatusNotIn applies the NotIn predicate on the "sync_status" field.
func SyncStatusNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldSyncStatus, vs...))
}

// SyncStatusGT applies the GT predicate on the "sync_status" field.
func SyncStatusGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldSyncStatus, v))
}

// SyncStatusGTE applies the GTE predicate on the "sync_status" field.
func SyncStatusGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldSyncStatus, v))
}

// SyncStatusLT applies the LT predicate on the "sync_status" field.
func SyncStatusLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldSyncStatus, v))
}

// SyncStatusLTE applies the LTE predicate on the "sync_status" field.
func SyncStatusLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldSyncStatus, v))
}

// SyncStatusContains applies the Contains predicate on the "sync_status" field.
func SyncStatusContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldSyncStatus, v))
}

// SyncStatusHasPrefix applies the HasPrefix predicate on the "sync_status" field.
func SyncStatusHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldSyncStatus, v))
}

// SyncStatusHasSuffix applies the HasSuffix predicate on the "sync_status" field.
func SyncStatusHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldSyncStatus, v))
}

// SyncStatusEqualFold applies the EqualFold predicate on the "sync_status" field.
func SyncStatusEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldSyncStatus, v))
}

// SyncStatusContainsFold applies the ContainsFold predicate on the "sync_status" field.
func SyncStatusContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldSyncStatus, v))
}

// ConflictReasonEQ applies the EQ predicate on the "conflict_reason" field.
func ConflictReasonEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldConflictReason, v))
}

// ConflictReasonNEQ applies the NEQ predicate on the "conflict_reason" field.
func ConflictReasonNEQ(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldConflictReason, v))
}

// ConflictReasonIn applies the In predicate on the "conflict_reason" field.
func ConflictReasonIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldConflictReason, vs...))
}

// ConflictReasonNotIn applies the NotIn predicate on the "conflict_reason" field.
func ConflictReasonNotIn(vs ...string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldConflictReason, vs...))
}

// ConflictReasonGT applies the GT predicate on the "conflict_reason" field.
func ConflictReasonGT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldConflictReason, v))
}

// ConflictReasonGTE applies the GTE predicate on the "conflict_reason" field.
func ConflictReasonGTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldConflictReason, v))
}

// ConflictReasonLT applies the LT predicate on the "conflict_reason" field.
func ConflictReasonLT(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldConflictReason, v))
}

// ConflictReasonLTE applies the LTE predicate on the "conflict_reason" field.
func ConflictReasonLTE(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldConflictReason, v))
}

// ConflictReasonContains applies the Contains predicate on the "conflict_reason" field.
func ConflictReasonContains(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContains(FieldConflictReason, v))
}

// ConflictReasonHasPrefix applies the HasPrefix predicate on the "conflict_reason" field.
func ConflictReasonHasPrefix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasPrefix(FieldConflictReason, v))
}

// ConflictReasonHasSuffix applies the HasSuffix predicate on the "conflict_reason" field.
func ConflictReasonHasSuffix(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldHasSuffix(FieldConflictReason, v))
}

// ConflictReasonIsNil applies the IsNil predicate on the "conflict_reason" field.
func ConflictReasonIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldConflictReason))
}

// ConflictReasonNotNil applies the NotNil predicate on the "conflict_reason" field.
func ConflictReasonNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldConflictReason))
}

// ConflictReasonEqualFold applies the EqualFold predicate on the "conflict_reason" field.
func ConflictReasonEqualFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEqualFold(FieldConflictReason, v))
}

// ConflictReasonContainsFold applies the ContainsFold predicate on the "conflict_reason" field.
func ConflictReasonContainsFold(v string) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldContainsFold(FieldConflictReason, v))
}

// ConflictPayloadEQ applies the EQ predicate on the "conflict_payload" field.
func ConflictPayloadEQ(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldConflictPayload, v))
}

// ConflictPayloadNEQ applies the NEQ predicate on the "conflict_payload" field.
func ConflictPayloadNEQ(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldConflictPayload, v))
}

// ConflictPayloadIn applies the In predicate on the "conflict_payload" field.
func ConflictPayloadIn(vs ...*model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldConflictPayload, vs...))
}

// ConflictPayloadNotIn applies the NotIn predicate on the "conflict_payload" field.
func ConflictPayloadNotIn(vs ...*model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldConflictPayload, vs...))
}

// ConflictPayloadGT applies the GT predicate on the "conflict_payload" field.
func ConflictPayloadGT(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldConflictPayload, v))
}

// ConflictPayloadGTE applies the GTE predicate on the "conflict_payload" field.
func ConflictPayloadGTE(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldConflictPayload, v))
}

// ConflictPayloadLT applies the LT predicate on the "conflict_payload" field.
func ConflictPayloadLT(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldConflictPayload, v))
}

// ConflictPayloadLTE applies the LTE predicate on the "conflict_payload" field.
func ConflictPayloadLTE(v *model.ConflictPayload) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldConflictPayload, v))
}

// ConflictPayloadIsNil applies the IsNil predicate on the "conflict_payload" field.
func ConflictPayloadIsNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIsNull(FieldConflictPayload))
}

// ConflictPayloadNotNil applies the NotNil predicate on the "conflict_payload" field.
func ConflictPayloadNotNil() predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotNull(FieldConflictPayload))
}

// SyncedAtEQ applies the EQ predicate on the "synced_at" field.
func SyncedAtEQ(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldEQ(FieldSyncedAt, v))
}

// SyncedAtNEQ applies the NEQ predicate on the "synced_at" field.
func SyncedAtNEQ(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNEQ(FieldSyncedAt, v))
}

// SyncedAtIn applies the In predicate on the "synced_at" field.
func SyncedAtIn(vs ...time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldIn(FieldSyncedAt, vs...))
}

// SyncedAtNotIn applies the NotIn predicate on the "synced_at" field.
func SyncedAtNotIn(vs ...time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldNotIn(FieldSyncedAt, vs...))
}

// SyncedAtGT applies the GT predicate on the "synced_at" field.
func SyncedAtGT(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGT(FieldSyncedAt, v))
}

// SyncedAtGTE applies the GTE predicate on the "synced_at" field.
func SyncedAtGTE(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldGTE(FieldSyncedAt, v))
}

// SyncedAtLT applies the LT predicate on the "synced_at" field.
func SyncedAtLT(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLT(FieldSyncedAt, v))
}

// SyncedAtLTE applies the LTE predicate on the "synced_at" field.
func SyncedAtLTE(v time.Time) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.FieldLTE(FieldSyncedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.PhotoAsset {
	return predicate.PhotoAsset(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.PhotoAsset {
	return predicate.PhotoAsset(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhotoAsset) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhotoAsset) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhotoAsset) predicate.PhotoAsset {
	return predicate.PhotoAsset(sql.NotPredicates(p))
}
