// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/ent/schema"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	photoassetFields := schema.PhotoAsset{}.Fields()
	_ = photoassetFields
	// photoassetDescCreatedAt is the schema descriptor for created_at field.
	photoassetDescCreatedAt := photoassetFields[1].Descriptor()
	// photoasset.DefaultCreatedAt holds the default value on creation for the created_at field.
	photoasset.DefaultCreatedAt = photoassetDescCreatedAt.Default.(func() time.Time)
	// photoassetDescUpdatedAt is the schema descriptor for updated_at field.
	photoassetDescUpdatedAt := photoassetFields[2].Descriptor()
	// photoasset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	photoasset.DefaultUpdatedAt = photoassetDescUpdatedAt.Default.(func() time.Time)
	// photoasset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	photoasset.UpdateDefaultUpdatedAt = photoassetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// photoassetDescPhotoID is the schema descriptor for photo_id field.
	photoassetDescPhotoID := photoassetFields[4].Descriptor()
	// photoasset.PhotoIDValidator is a validator for the "photo_id" field. It is called by the builders before save.
	photoasset.PhotoIDValidator = func() func(string) error {
		validators := photoassetDescPhotoID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(photo_id string) error {
			for _, fn := range fns {
				if err := fn(photo_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// photoassetDescStorageKey is the schema descriptor for storage_key field.
	photoassetDescStorageKey := photoassetFields[5].Descriptor()
	// photoasset.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	photoasset.StorageKeyValidator = func() func(string) error {
		validators := photoassetDescStorageKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(storage_key string) error {
			for _, fn := range fns {
				if err := fn(storage_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// photoassetDescStorageProvider is the schema descriptor for storage_provider field.
	photoassetDescStorageProvider := photoassetFields[6].Descriptor()
	// photoasset.StorageProviderValidator is a validator for the "storage_provider" field. It is called by the builders before save.
	photoasset.StorageProviderValidator = func() func(string) error {
		validators := photoassetDescStorageProvider.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(storage_provider string) error {
			for _, fn := range fns {
				if err := fn(storage_provider); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// photoassetDescEtag is the schema descriptor for etag field.
	photoassetDescEtag := photoassetFields[8].Descriptor()
	// photoasset.EtagValidator is a validator for the "etag" field. It is called by the builders before save.
	photoasset.EtagValidator = photoassetDescEtag.Validators[0].(func(string) error)
	// photoassetDescLastModified is the schema descriptor for last_modified field.
	photoassetDescLastModified := photoassetFields[9].Descriptor()
	// photoasset.LastModifiedValidator is a validator for the "last_modified" field. It is called by the builders before save.
	photoasset.LastModifiedValidator = photoassetDescLastModified.Validators[0].(func(string) error)
	// photoassetDescMetadataHash is the schema descriptor for metadata_hash field.
	photoassetDescMetadataHash := photoassetFields[10].Descriptor()
	// photoasset.MetadataHashValidator is a validator for the "metadata_hash" field. It is called by the builders before save.
	photoasset.MetadataHashValidator = photoassetDescMetadataHash.Validators[0].(func(string) error)
	// photoassetDescManifestVersion is the schema descriptor for manifest_version field.
	photoassetDescManifestVersion := photoassetFields[11].Descriptor()
	// photoasset.DefaultManifestVersion holds the default value on creation for the manifest_version field.
	photoasset.DefaultManifestVersion = photoassetDescManifestVersion.Default.(string)
	// photoasset.ManifestVersionValidator is a validator for the "manifest_version" field. It is called by the builders before save.
	photoasset.ManifestVersionValidator = photoassetDescManifestVersion.Validators[0].(func(string) error)
	// photoassetDescSyncStatus is the schema descriptor for sync_status field.
	photoassetDescSyncStatus := photoassetFields[13].Descriptor()
	// photoasset.DefaultSyncStatus holds the default value on creation for the sync_status field.
	photoasset.DefaultSyncStatus = photoassetDescSyncStatus.Default.(string)
	// photoasset.SyncStatusValidator is a validator for the "sync_status" field. It is called by the builders before save.
	photoasset.SyncStatusValidator = photoassetDescSyncStatus.Validators[0].(func(string) error)
	// photoassetDescConflictReason is the schema descriptor for conflict_reason field.
	photoassetDescConflictReason := photoassetFields[14].Descriptor()
	// photoasset.ConflictReasonValidator is a validator for the "conflict_reason" field. It is called by the builders before save.
	photoasset.ConflictReasonValidator = photoassetDescConflictReason.Validators[0].(func(string) error)
	// photoassetDescSyncedAt is the schema descriptor for synced_at field.
	photoassetDescSyncedAt := photoassetFields[16].Descriptor()
	// photoasset.DefaultSyncedAt holds the default value on creation for the synced_at field.
	photoasset.DefaultSyncedAt = photoassetDescSyncedAt.Default.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[1].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[2].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[3].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = func() func(string) error {
		validators := tenantDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tenantDescSlug is the schema descriptor for slug field.
	tenantDescSlug := tenantFields[4].Descriptor()
	// tenant.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	tenant.SlugValidator = func() func(string) error {
		validators := tenantDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tenantDescStatus is the schema descriptor for status field.
	tenantDescStatus := tenantFields[5].Descriptor()
	// tenant.DefaultStatus holds the default value on creation for the status field.
	tenant.DefaultStatus = tenantDescStatus.Default.(string)
	// tenant.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	tenant.StatusValidator = tenantDescStatus.Validators[0].(func(string) error)
}
