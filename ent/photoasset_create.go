// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// PhotoAssetCreate is the builder for creating a PhotoAsset entity.
type PhotoAssetCreate struct {
	config
	mutation *PhotoAssetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (pac *PhotoAssetCreate) SetCreatedAt(t time.Time) *PhotoAssetCreate {
	pac.mutation.SetCreatedAt(t)
	return pac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableCreatedAt(t *time.Time) *PhotoAssetCreate {
	if t != nil {
		pac.SetCreatedAt(*t)
	}
	return pac
}

// SetUpdatedAt sets the "updated_at" field.
func (pac *PhotoAssetCreate) SetUpdatedAt(t time.Time) *PhotoAssetCreate {
	pac.mutation.SetUpdatedAt(t)
	return pac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableUpdatedAt(t *time.Time) *PhotoAssetCreate {
	if t != nil {
		pac.SetUpdatedAt(*t)
	}
	return pac
}

// SetTenantID sets the "tenant_id" field.
func (pac *PhotoAssetCreate) SetTenantID(u uint) *PhotoAssetCreate {
	pac.mutation.SetTenantID(u)
	return pac
}

// SetPhotoID sets the "photo_id" field.
func (pac *PhotoAssetCreate) SetPhotoID(s string) *PhotoAssetCreate {
	pac.mutation.SetPhotoID(s)
	return pac
}

// SetStorageKey sets the "storage_key" field.
func (pac *PhotoAssetCreate) SetStorageKey(s string) *PhotoAssetCreate {
	pac.mutation.SetStorageKey(s)
	return pac
}

// SetStorageProvider sets the "storage_provider" field.
func (pac *PhotoAssetCreate) SetStorageProvider(s string) *PhotoAssetCreate {
	pac.mutation.SetStorageProvider(s)
	return pac
}

// SetSize sets the "size" field.
func (pac *PhotoAssetCreate) SetSize(i int64) *PhotoAssetCreate {
	pac.mutation.SetSize(i)
	return pac
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableSize(i *int64) *PhotoAssetCreate {
	if i != nil {
		pac.SetSize(*i)
	}
	return pac
}

// SetEtag sets the "etag" field.
func (pac *PhotoAssetCreate) SetEtag(s string) *PhotoAssetCreate {
	pac.mutation.SetEtag(s)
	return pac
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableEtag(s *string) *PhotoAssetCreate {
	if s != nil {
		pac.SetEtag(*s)
	}
	return pac
}

// SetLastModified sets the "last_modified" field.
func (pac *PhotoAssetCreate) SetLastModified(s string) *PhotoAssetCreate {
	pac.mutation.SetLastModified(s)
	return pac
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableLastModified(s *string) *PhotoAssetCreate {
	if s != nil {
		pac.SetLastModified(*s)
	}
	return pac
}

// SetMetadataHash sets the "metadata_hash" field.
func (pac *PhotoAssetCreate) SetMetadataHash(s string) *PhotoAssetCreate {
	pac.mutation.SetMetadataHash(s)
	return pac
}

// SetNillableMetadataHash sets the "metadata_hash" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableMetadataHash(s *string) *PhotoAssetCreate {
	if s != nil {
		pac.SetMetadataHash(*s)
	}
	return pac
}

// SetManifestVersion sets the "manifest_version" field.
func (pac *PhotoAssetCreate) SetManifestVersion(s string) *PhotoAssetCreate {
	pac.mutation.SetManifestVersion(s)
	return pac
}

// SetNillableManifestVersion sets the "manifest_version" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableManifestVersion(s *string) *PhotoAssetCreate {
	if s != nil {
		pac.SetManifestVersion(*s)
	}
	return pac
}

// SetManifest sets the "manifest" field.
func (pac *PhotoAssetCreate) SetManifest(mam model.PhotoAssetManifest) *PhotoAssetCreate {
	pac.mutation.SetManifest(mam)
	return pac
}

// SetNillableManifest sets the "manifest" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableManifest(mam *model.PhotoAssetManifest) *PhotoAssetCreate {
	if mam != nil {
		pac.SetManifest(*mam)
	}
	return pac
}

// SetSyncStatus sets the "sync_status" field.
func (pac *PhotoAssetCreate) SetSyncStatus(s string) *PhotoAssetCreate {
	pac.mutation.SetSyncStatus(s)
	return pac
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableSyncStatus(s *string) *PhotoAssetCreate {
	if s != nil {
		pac.SetSyncStatus(*s)
	}
	return pac
}

// SetConflictReason sets the "conflict_reason" field.
func (pac *PhotoAssetCreate) SetConflictReason(s string) *PhotoAssetCreate {
	pac.mutation.SetConflictReason(s)
	return pac
}

// SetNillableConflictReason sets the "conflict_reason" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableConflictReason(s *string) *PhotoAssetCreate {
	if s != nil {
		pac.SetConflictReason(*s)
	}
	return pac
}

// SetConflictPayload sets the "conflict_payload" field.
func (pac *PhotoAssetCreate) SetConflictPayload(mp *model.ConflictPayload) *PhotoAssetCreate {
	pac.mutation.SetConflictPayload(mp)
	return pac
}

// SetSyncedAt sets the "synced_at" field.
func (pac *PhotoAssetCreate) SetSyncedAt(t time.Time) *PhotoAssetCreate {
	pac.mutation.SetSyncedAt(t)
	return pac
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (pac *PhotoAssetCreate) SetNillableSyncedAt(t *time.Time) *PhotoAssetCreate {
	if t != nil {
		pac.SetSyncedAt(*t)
	}
	return pac
}

// SetID sets the "id" field.
func (pac *PhotoAssetCreate) SetID(u uint) *PhotoAssetCreate {
	pac.mutation.SetID(u)
	return pac
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (pac *PhotoAssetCreate) SetTenant(t *Tenant) *PhotoAssetCreate {
	return pac.SetTenantID(t.ID)
}

// Mutation returns the PhotoAssetMutation object of the builder.
func (pac *PhotoAssetCreate) Mutation() *PhotoAssetMutation {
	return pac.mutation
}

// Save creates the PhotoAsset in the database.
func (pac *PhotoAssetCreate) Save(ctx context.Context) (*PhotoAsset, error) {
	pac.defaults()
	return withHooks(ctx, pac.sqlSave, pac.mutation, pac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pac *PhotoAssetCreate) SaveX(ctx context.Context) *PhotoAsset {
	v, err := pac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pac *PhotoAssetCreate) Exec(ctx context.Context) error {
	_, err := pac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pac *PhotoAssetCreate) ExecX(ctx context.Context) {
	if err := pac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pac *PhotoAssetCreate) defaults() {
	if _, ok := pac.mutation.CreatedAt(); !ok {
		v := photoasset.DefaultCreatedAt()
		pac.mutation.SetCreatedAt(v)
	}
	if _, ok := pac.mutation.UpdatedAt(); !ok {
		v := photoasset.DefaultUpdatedAt()
		pac.mutation.SetUpdatedAt(v)
	}
	if _, ok := pac.mutation.ManifestVersion(); !ok {
		v := photoasset.DefaultManifestVersion
		pac.mutation.SetManifestVersion(v)
	}
	if _, ok := pac.mutation.SyncStatus(); !ok {
		v := photoasset.DefaultSyncStatus
		pac.mutation.SetSyncStatus(v)
	}
	if _, ok := pac.mutation.SyncedAt(); !ok {
		v := photoasset.DefaultSyncedAt()
		pac.mutation.SetSyncedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pac *PhotoAssetCreate) check() error {
	if _, ok := pac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhotoAsset.created_at"`)}
	}
	if _, ok := pac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PhotoAsset.updated_at"`)}
	}
	if _, ok := pac.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PhotoAsset.tenant_id"`)}
	}
	if _, ok := pac.mutation.PhotoID(); !ok {
		return &ValidationError{Name: "photo_id", err: errors.New(`ent: missing required field "PhotoAsset.photo_id"`)}
	}
	if v, ok := pac.mutation.PhotoID(); ok {
		if err := photoasset.PhotoIDValidator(v); err != nil {
			return &ValidationError{Name: "photo_id", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.photo_id": %w`, err)}
		}
	}
	if _, ok := pac.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "PhotoAsset.storage_key"`)}
	}
	if v, ok := pac.mutation.StorageKey(); ok {
		if err := photoasset.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.storage_key": %w`, err)}
		}
	}
	if _, ok := pac.mutation.StorageProvider(); !ok {
		return &ValidationError{Name: "storage_provider", err: errors.New(`ent: missing required field "PhotoAsset.storage_provider"`)}
	}
	if v, ok := pac.mutation.StorageProvider(); ok {
		if err := photoasset.StorageProviderValidator(v); err != nil {
			return &ValidationError{Name: "storage_provider", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.storage_provider": %w`, err)}
		}
	}
	if v, ok := pac.mutation.Etag(); ok {
		if err := photoasset.EtagValidator(v); err != nil {
			return &ValidationError{Name: "etag", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.etag": %w`, err)}
		}
	}
	if v, ok := pac.mutation.LastModified(); ok {
		if err := photoasset.LastModifiedValidator(v); err != nil {
			return &ValidationError{Name: "last_modified", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.last_modified": %w`, err)}
		}
	}
	if v, ok := pac.mutation.MetadataHash(); ok {
		if err := photoasset.MetadataHashValidator(v); err != nil {
			return &ValidationError{Name: "metadata_hash", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.metadata_hash": %w`, err)}
		}
	}
	if _, ok := pac.mutation.ManifestVersion(); !ok {
		return &ValidationError{Name: "manifest_version", err: errors.New(`ent: missing required field "PhotoAsset.manifest_version"`)}
	}
	if v, ok := pac.mutation.ManifestVersion(); ok {
		if err := photoasset.ManifestVersionValidator(v); err != nil {
			return &ValidationError{Name: "manifest_version", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.manifest_version": %w`, err)}
		}
	}
	if _, ok := pac.mutation.SyncStatus(); !ok {
		return &ValidationError{Name: "sync_status", err: errors.New(`ent: missing required field "PhotoAsset.sync_status"`)}
	}
	if v, ok := pac.mutation.SyncStatus(); ok {
		if err := photoasset.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.sync_status": %w`, err)}
		}
	}
	if v, ok := pac.mutation.ConflictReason(); ok {
		if err := photoasset.ConflictReasonValidator(v); err != nil {
			return &ValidationError{Name: "conflict_reason", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.conflict_reason": %w`, err)}
		}
	}
	if _, ok := pac.mutation.SyncedAt(); !ok {
		return &ValidationError{Name: "synced_at", err: errors.New(`ent: missing required field "PhotoAsset.synced_at"`)}
	}
	if len(pac.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "PhotoAsset.tenant"`)}
	}
	return nil
}

func (pac *PhotoAssetCreate) sqlSave(ctx context.Context) (*PhotoAsset, error) {
	if err := pac.check(); err != nil {
		return nil, err
	}
	_node, _spec := pac.createSpec()
	if err := sqlgraph.CreateNode(ctx, pac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	pac.mutation.id = &_node.ID
	pac.mutation.done = true
	return _node, nil
}

func (pac *PhotoAssetCreate) createSpec() (*PhotoAsset, *sqlgraph.CreateSpec) {
	var (
		_node = &PhotoAsset{config: pac.config}
		_spec = sqlgraph.NewCreateSpec(photoasset.Table, sqlgraph.NewFieldSpec(photoasset.FieldID, field.TypeUint))
	)
	_spec.OnConflict = pac.conflict
	if id, ok := pac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pac.mutation.CreatedAt(); ok {
		_spec.SetField(photoasset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pac.mutation.UpdatedAt(); ok {
		_spec.SetField(photoasset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pac.mutation.PhotoID(); ok {
		_spec.SetField(photoasset.FieldPhotoID, field.TypeString, value)
		_node.PhotoID = value
	}
	if value, ok := pac.mutation.StorageKey(); ok {
		_spec.SetField(photoasset.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := pac.mutation.StorageProvider(); ok {
		_spec.SetField(photoasset.FieldStorageProvider, field.TypeString, value)
		_node.StorageProvider = value
	}
	if value, ok := pac.mutation.Size(); ok {
		_spec.SetField(photoasset.FieldSize, field.TypeInt64, value)
		_node.Size = &value
	}
	if value, ok := pac.mutation.Etag(); ok {
		_spec.SetField(photoasset.FieldEtag, field.TypeString, value)
		_node.Etag = &value
	}
	if value, ok := pac.mutation.LastModified(); ok {
		_spec.SetField(photoasset.FieldLastModified, field.TypeString, value)
		_node.LastModified = &value
	}
	if value, ok := pac.mutation.MetadataHash(); ok {
		_spec.SetField(photoasset.FieldMetadataHash, field.TypeString, value)
		_node.MetadataHash = &value
	}
	if value, ok := pac.mutation.ManifestVersion(); ok {
		_spec.SetField(photoasset.FieldManifestVersion, field.TypeString, value)
		_node.ManifestVersion = value
	}
	if value, ok := pac.mutation.Manifest(); ok {
		_spec.SetField(photoasset.FieldManifest, field.TypeOther, value)
		_node.Manifest = value
	}
	if value, ok := pac.mutation.SyncStatus(); ok {
		_spec.SetField(photoasset.FieldSyncStatus, field.TypeString, value)
		_node.SyncStatus = value
	}
	if value, ok := pac.mutation.ConflictReason(); ok {
		_spec.SetField(photoasset.FieldConflictReason, field.TypeString, value)
		_node.ConflictReason = &value
	}
	if value, ok := pac.mutation.ConflictPayload(); ok {
		_spec.SetField(photoasset.FieldConflictPayload, field.TypeOther, value)
		_node.ConflictPayload = value
	}
	if value, ok := pac.mutation.SyncedAt(); ok {
		_spec.SetField(photoasset.FieldSyncedAt, field.TypeTime, value)
		_node.SyncedAt = value
	}
	if nodes := pac.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   photoasset.TenantTable,
			Columns: []string{photoasset.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhotoAsset.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhotoAssetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (pac *PhotoAssetCreate) OnConflict(opts ...sql.ConflictOption) *PhotoAssetUpsertOne {
	pac.conflict = opts
	return &PhotoAssetUpsertOne{
		create: pac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhotoAsset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pac *PhotoAssetCreate) OnConflictColumns(columns ...string) *PhotoAssetUpsertOne {
	pac.conflict = append(pac.conflict, sql.ConflictColumns(columns...))
	return &PhotoAssetUpsertOne{
		create: pac,
	}
}

type (
	// PhotoAssetUpsertOne is the builder for "upsert"-ing
	//  one PhotoAsset node.
	PhotoAssetUpsertOne struct {
		create *PhotoAssetCreate
	}

	// PhotoAssetUpsert is the "OnConflict" setter.
	PhotoAssetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PhotoAssetUpsert) SetUpdatedAt(v time.Time) *PhotoAssetUpsert {
	u.Set(photoasset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateUpdatedAt() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldUpdatedAt)
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *PhotoAssetUpsert) SetTenantID(v uint) *PhotoAssetUpsert {
	u.Set(photoasset.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateTenantID() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldTenantID)
	return u
}

// SetPhotoID sets the "photo_id" field.
func (u *PhotoAssetUpsert) SetPhotoID(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldPhotoID, v)
	return u
}

// UpdatePhotoID sets the "photo_id" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdatePhotoID() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldPhotoID)
	return u
}

// SetStorageKey sets the "storage_key" field.
func (u *PhotoAssetUpsert) SetStorageKey(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldStorageKey, v)
	return u
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateStorageKey() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldStorageKey)
	return u
}

// SetStorageProvider sets the "storage_provider" field.
func (u *PhotoAssetUpsert) SetStorageProvider(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldStorageProvider, v)
	return u
}

// UpdateStorageProvider sets the "storage_provider" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateStorageProvider() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldStorageProvider)
	return u
}

// SetSize sets the "size" field.
func (u *PhotoAssetUpsert) SetSize(v int64) *PhotoAssetUpsert {
	u.Set(photoasset.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateSize() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *PhotoAssetUpsert) AddSize(v int64) *PhotoAssetUpsert {
	u.Add(photoasset.FieldSize, v)
	return u
}

// ClearSize clears the value of the "size" field.
func (u *PhotoAssetUpsert) ClearSize() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldSize)
	return u
}

// SetEtag sets the "etag" field.
func (u *PhotoAssetUpsert) SetEtag(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldEtag, v)
	return u
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateEtag() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldEtag)
	return u
}

// ClearEtag clears the value of the "etag" field.
func (u *PhotoAssetUpsert) ClearEtag() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldEtag)
	return u
}

// SetLastModified sets the "last_modified" field.
func (u *PhotoAssetUpsert) SetLastModified(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldLastModified, v)
	return u
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateLastModified() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldLastModified)
	return u
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *PhotoAssetUpsert) ClearLastModified() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldLastModified)
	return u
}

// SetMetadataHash sets the "metadata_hash" field.
func (u *PhotoAssetUpsert) SetMetadataHash(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldMetadataHash, v)
	return u
}

// UpdateMetadataHash sets the "metadata_hash" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateMetadataHash() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldMetadataHash)
	return u
}

// ClearMetadataHash clears the value of the "metadata_hash" field.
func (u *PhotoAssetUpsert) ClearMetadataHash() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldMetadataHash)
	return u
}

// SetManifestVersion sets the "manifest_version" field.
func (u *PhotoAssetUpsert) SetManifestVersion(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldManifestVersion, v)
	return u
}

// UpdateManifestVersion sets the "manifest_version" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateManifestVersion() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldManifestVersion)
	return u
}

// SetManifest sets the "manifest" field.
func (u *PhotoAssetUpsert) SetManifest(v model.PhotoAssetManifest) *PhotoAssetUpsert {
	u.Set(photoasset.FieldManifest, v)
	return u
}

// UpdateManifest sets the "manifest" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateManifest() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldManifest)
	return u
}

// ClearManifest clears the value of the "manifest" field.
func (u *PhotoAssetUpsert) ClearManifest() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldManifest)
	return u
}

// SetSyncStatus sets the "sync_status" field.
func (u *PhotoAssetUpsert) SetSyncStatus(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldSyncStatus, v)
	return u
}

// UpdateSyncStatus sets the "sync_status" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateSyncStatus() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldSyncStatus)
	return u
}

// SetConflictReason sets the "conflict_reason" field.
func (u *PhotoAssetUpsert) SetConflictReason(v string) *PhotoAssetUpsert {
	u.Set(photoasset.FieldConflictReason, v)
	return u
}

// UpdateConflictReason sets the "conflict_reason" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateConflictReason() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldConflictReason)
	return u
}

// ClearConflictReason clears the value of the "conflict_reason" field.
func (u *PhotoAssetUpsert) ClearConflictReason() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldConflictReason)
	return u
}

// SetConflictPayload sets the "conflict_payload" field.
func (u *PhotoAssetUpsert) SetConflictPayload(v *model.ConflictPayload) *PhotoAssetUpsert {
	u.Set(photoasset.FieldConflictPayload, v)
	return u
}

// UpdateConflictPayload sets the "conflict_payload" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateConflictPayload() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldConflictPayload)
	return u
}

// ClearConflictPayload clears the value of the "conflict_payload" field.
func (u *PhotoAssetUpsert) ClearConflictPayload() *PhotoAssetUpsert {
	u.SetNull(photoasset.FieldConflictPayload)
	return u
}

// SetSyncedAt sets the "synced_at" field.
func (u *PhotoAssetUpsert) SetSyncedAt(v time.Time) *PhotoAssetUpsert {
	u.Set(photoasset.FieldSyncedAt, v)
	return u
}

// UpdateSyncedAt sets the "synced_at" field to the value that was provided on create.
func (u *PhotoAssetUpsert) UpdateSyncedAt() *PhotoAssetUpsert {
	u.SetExcluded(photoasset.FieldSyncedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PhotoAsset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(photoasset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhotoAssetUpsertOne) UpdateNewValues() *PhotoAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(photoasset.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(photoasset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhotoAsset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PhotoAssetUpsertOne) Ignore() *PhotoAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhotoAssetUpsertOne) DoNothing() *PhotoAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhotoAssetCreate.OnConflict
// documentation for more info.
func (u *PhotoAssetUpsertOne) Update(set func(*PhotoAssetUpsert)) *PhotoAssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhotoAssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhotoAssetUpsertOne) SetUpdatedAt(v time.Time) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateUpdatedAt() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTenantID sets the "tenant_id" field.
func (u *PhotoAssetUpsertOne) SetTenantID(v uint) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateTenantID() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateTenantID()
	})
}

// SetPhotoID sets the "photo_id" field.
func (u *PhotoAssetUpsertOne) SetPhotoID(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetPhotoID(v)
	})
}

// UpdatePhotoID sets the "photo_id" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdatePhotoID() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdatePhotoID()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *PhotoAssetUpsertOne) SetStorageKey(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateStorageKey() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateStorageKey()
	})
}

// SetStorageProvider sets the "storage_provider" field.
func (u *PhotoAssetUpsertOne) SetStorageProvider(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetStorageProvider(v)
	})
}

// UpdateStorageProvider sets the "storage_provider" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateStorageProvider() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateStorageProvider()
	})
}

// SetSize sets the "size" field.
func (u *PhotoAssetUpsertOne) SetSize(v int64) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *PhotoAssetUpsertOne) AddSize(v int64) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateSize() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateSize()
	})
}

// ClearSize clears the value of the "size" field.
func (u *PhotoAssetUpsertOne) ClearSize() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearSize()
	})
}

// SetEtag sets the "etag" field.
func (u *PhotoAssetUpsertOne) SetEtag(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateEtag() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *PhotoAssetUpsertOne) ClearEtag() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearEtag()
	})
}

// SetLastModified sets the "last_modified" field.
func (u *PhotoAssetUpsertOne) SetLastModified(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetLastModified(v)
	})
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateLastModified() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateLastModified()
	})
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *PhotoAssetUpsertOne) ClearLastModified() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearLastModified()
	})
}

// SetMetadataHash sets the "metadata_hash" field.
func (u *PhotoAssetUpsertOne) SetMetadataHash(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetMetadataHash(v)
	})
}

// UpdateMetadataHash sets the "metadata_hash" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateMetadataHash() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateMetadataHash()
	})
}

// ClearMetadataHash clears the value of the "metadata_hash" field.
func (u *PhotoAssetUpsertOne) ClearMetadataHash() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearMetadataHash()
	})
}

// SetManifestVersion sets the "manifest_version" field.
func (u *PhotoAssetUpsertOne) SetManifestVersion(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetManifestVersion(v)
	})
}

// UpdateManifestVersion sets the "manifest_version" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateManifestVersion() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateManifestVersion()
	})
}

// SetManifest sets the "manifest" field.
func (u *PhotoAssetUpsertOne) SetManifest(v model.PhotoAssetManifest) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetManifest(v)
	})
}

// UpdateManifest sets the "manifest" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateManifest() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateManifest()
	})
}

// ClearManifest clears the value of the "manifest" field.
func (u *PhotoAssetUpsertOne) ClearManifest() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearManifest()
	})
}

// SetSyncStatus sets the "sync_status" field.
func (u *PhotoAssetUpsertOne) SetSyncStatus(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetSyncStatus(v)
	})
}

// UpdateSyncStatus sets the "sync_status" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateSyncStatus() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateSyncStatus()
	})
}

// SetConflictReason sets the "conflict_reason" field.
func (u *PhotoAssetUpsertOne) SetConflictReason(v string) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetConflictReason(v)
	})
}

// UpdateConflictReason sets the "conflict_reason" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateConflictReason() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateConflictReason()
	})
}

// ClearConflictReason clears the value of the "conflict_reason" field.
func (u *PhotoAssetUpsertOne) ClearConflictReason() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearConflictReason()
	})
}

// SetConflictPayload sets the "conflict_payload" field.
func (u *PhotoAssetUpsertOne) SetConflictPayload(v *model.ConflictPayload) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetConflictPayload(v)
	})
}

// UpdateConflictPayload sets the "conflict_payload" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateConflictPayload() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateConflictPayload()
	})
}

// ClearConflictPayload clears the value of the "conflict_payload" field.
func (u *PhotoAssetUpsertOne) ClearConflictPayload() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearConflictPayload()
	})
}

// SetSyncedAt sets the "synced_at" field.
func (u *PhotoAssetUpsertOne) SetSyncedAt(v time.Time) *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetSyncedAt(v)
	})
}

// UpdateSyncedAt sets the "synced_at" field to the value that was provided on create.
func (u *PhotoAssetUpsertOne) UpdateSyncedAt() *PhotoAssetUpsertOne {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateSyncedAt()
	})
}

// Exec executes the query.
func (u *PhotoAssetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhotoAssetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhotoAssetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PhotoAssetUpsertOne) ID(ctx context.Context) (id uint, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PhotoAssetUpsertOne) IDX(ctx context.Context) uint {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PhotoAssetCreateBulk is the builder for creating many PhotoAsset entities in bulk.
type PhotoAssetCreateBulk struct {
	config
	err      error
	builders []*PhotoAssetCreate
	conflict []sql.ConflictOption
}

// Save creates the PhotoAsset entities in the database.
func (pacb *PhotoAssetCreateBulk) Save(ctx context.Context) ([]*PhotoAsset, error) {
	if pacb.err != nil {
		return nil, pacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pacb.builders))
	nodes := make([]*PhotoAsset, len(pacb.builders))
	mutators := make([]Mutator, len(pacb.builders))
	for i := range pacb.builders {
		func(i int, root context.Context) {
			builder := pacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhotoAssetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, pacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pacb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pacb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, pacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pacb *PhotoAssetCreateBulk) SaveX(ctx context.Context) []*PhotoAsset {
	v, err := pacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pacb *PhotoAssetCreateBulk) Exec(ctx context.Context) error {
	_, err := pacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pacb *PhotoAssetCreateBulk) ExecX(ctx context.Context) {
	if err := pacb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PhotoAsset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhotoAssetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (pacb *PhotoAssetCreateBulk) OnConflict(opts ...sql.ConflictOption) *PhotoAssetUpsertBulk {
	pacb.conflict = opts
	return &PhotoAssetUpsertBulk{
		create: pacb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PhotoAsset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pacb *PhotoAssetCreateBulk) OnConflictColumns(columns ...string) *PhotoAssetUpsertBulk {
	pacb.conflict = append(pacb.conflict, sql.ConflictColumns(columns...))
	return &PhotoAssetUpsertBulk{
		create: pacb,
	}
}

// PhotoAssetUpsertBulk is the builder for "upsert"-ing
// a bulk of PhotoAsset nodes.
type PhotoAssetUpsertBulk struct {
	create *PhotoAssetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PhotoAsset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(photoasset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhotoAssetUpsertBulk) UpdateNewValues() *PhotoAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(photoasset.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(photoasset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PhotoAsset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PhotoAssetUpsertBulk) Ignore() *PhotoAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhotoAssetUpsertBulk) DoNothing() *PhotoAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhotoAssetCreateBulk.OnConflict
// documentation for more info.
func (u *PhotoAssetUpsertBulk) Update(set func(*PhotoAssetUpsert)) *PhotoAssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhotoAssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhotoAssetUpsertBulk) SetUpdatedAt(v time.Time) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateUpdatedAt() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetTenantID sets the "tenant_id" field.
func (u *PhotoAssetUpsertBulk) SetTenantID(v uint) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateTenantID() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateTenantID()
	})
}

// SetPhotoID sets the "photo_id" field.
func (u *PhotoAssetUpsertBulk) SetPhotoID(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetPhotoID(v)
	})
}

// UpdatePhotoID sets the "photo_id" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdatePhotoID() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdatePhotoID()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *PhotoAssetUpsertBulk) SetStorageKey(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateStorageKey() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateStorageKey()
	})
}

// SetStorageProvider sets the "storage_provider" field.
func (u *PhotoAssetUpsertBulk) SetStorageProvider(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetStorageProvider(v)
	})
}

// UpdateStorageProvider sets the "storage_provider" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateStorageProvider() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateStorageProvider()
	})
}

// SetSize sets the "size" field.
func (u *PhotoAssetUpsertBulk) SetSize(v int64) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *PhotoAssetUpsertBulk) AddSize(v int64) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateSize() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateSize()
	})
}

// ClearSize clears the value of the "size" field.
func (u *PhotoAssetUpsertBulk) ClearSize() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearSize()
	})
}

// SetEtag sets the "etag" field.
func (u *PhotoAssetUpsertBulk) SetEtag(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetEtag(v)
	})
}

// UpdateEtag sets the "etag" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateEtag() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateEtag()
	})
}

// ClearEtag clears the value of the "etag" field.
func (u *PhotoAssetUpsertBulk) ClearEtag() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearEtag()
	})
}

// SetLastModified sets the "last_modified" field.
func (u *PhotoAssetUpsertBulk) SetLastModified(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetLastModified(v)
	})
}

// UpdateLastModified sets the "last_modified" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateLastModified() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateLastModified()
	})
}

// ClearLastModified clears the value of the "last_modified" field.
func (u *PhotoAssetUpsertBulk) ClearLastModified() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearLastModified()
	})
}

// SetMetadataHash sets the "metadata_hash" field.
func (u *PhotoAssetUpsertBulk) SetMetadataHash(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetMetadataHash(v)
	})
}

// UpdateMetadataHash sets the "metadata_hash" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateMetadataHash() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateMetadataHash()
	})
}

// ClearMetadataHash clears the value of the "metadata_hash" field.
func (u *PhotoAssetUpsertBulk) ClearMetadataHash() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearMetadataHash()
	})
}

// SetManifestVersion sets the "manifest_version" field.
func (u *PhotoAssetUpsertBulk) SetManifestVersion(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetManifestVersion(v)
	})
}

// UpdateManifestVersion sets the "manifest_version" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateManifestVersion() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateManifestVersion()
	})
}

// SetManifest sets the "manifest" field.
func (u *PhotoAssetUpsertBulk) SetManifest(v model.PhotoAssetManifest) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetManifest(v)
	})
}

// UpdateManifest sets the "manifest" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateManifest() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateManifest()
	})
}

// ClearManifest clears the value of the "manifest" field.
func (u *PhotoAssetUpsertBulk) ClearManifest() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearManifest()
	})
}

// SetSyncStatus sets the "sync_status" field.
func (u *PhotoAssetUpsertBulk) SetSyncStatus(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetSyncStatus(v)
	})
}

// UpdateSyncStatus sets the "sync_status" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateSyncStatus() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateSyncStatus()
	})
}

// SetConflictReason sets the "conflict_reason" field.
func (u *PhotoAssetUpsertBulk) SetConflictReason(v string) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetConflictReason(v)
	})
}

// UpdateConflictReason sets the "conflict_reason" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateConflictReason() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateConflictReason()
	})
}

// ClearConflictReason clears the value of the "conflict_reason" field.
func (u *PhotoAssetUpsertBulk) ClearConflictReason() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearConflictReason()
	})
}

// SetConflictPayload sets the "conflict_payload" field.
func (u *PhotoAssetUpsertBulk) SetConflictPayload(v *model.ConflictPayload) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetConflictPayload(v)
	})
}

// UpdateConflictPayload sets the "conflict_payload" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateConflictPayload() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateConflictPayload()
	})
}

// ClearConflictPayload clears the value of the "conflict_payload" field.
func (u *PhotoAssetUpsertBulk) ClearConflictPayload() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.ClearConflictPayload()
	})
}

// SetSyncedAt sets the "synced_at" field.
func (u *PhotoAssetUpsertBulk) SetSyncedAt(v time.Time) *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.SetSyncedAt(v)
	})
}

// UpdateSyncedAt sets the "synced_at" field to the value that was provided on create.
func (u *PhotoAssetUpsertBulk) UpdateSyncedAt() *PhotoAssetUpsertBulk {
	return u.Update(func(s *PhotoAssetUpsert) {
		s.UpdateSyncedAt()
	})
}

// Exec executes the query.
func (u *PhotoAssetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PhotoAssetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PhotoAssetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhotoAssetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
