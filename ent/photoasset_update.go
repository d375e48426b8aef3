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
	"github.com/anzhiyu-c/afilmory-app/ent/predicate"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// PhotoAssetUpdate is the builder for updating PhotoAsset entities.
type PhotoAssetUpdate struct {
	config
	hooks    []Hook
	mutation *PhotoAssetMutation
}

// Where appends a list predicates to the PhotoAssetUpdate builder.
func (pau *PhotoAssetUpdate) Where(ps ...predicate.PhotoAsset) *PhotoAssetUpdate {
	pau.mutation.Where(ps...)
	return pau
}

// SetUpdatedAt sets the "updated_at" field.
func (pau *PhotoAssetUpdate) SetUpdatedAt(t time.Time) *PhotoAssetUpdate {
	pau.mutation.SetUpdatedAt(t)
	return pau
}

// SetTenantID sets the "tenant_id" field.
func (pau *PhotoAssetUpdate) SetTenantID(u uint) *PhotoAssetUpdate {
	pau.mutation.SetTenantID(u)
	return pau
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableTenantID(u *uint) *PhotoAssetUpdate {
	if u != nil {
		pau.SetTenantID(*u)
	}
	return pau
}

// SetPhotoID sets the "photo_id" field.
func (pau *PhotoAssetUpdate) SetPhotoID(s string) *PhotoAssetUpdate {
	pau.mutation.SetPhotoID(s)
	return pau
}

// SetNillablePhotoID sets the "photo_id" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillablePhotoID(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetPhotoID(*s)
	}
	return pau
}

// SetStorageKey sets the "storage_key" field.
func (pau *PhotoAssetUpdate) SetStorageKey(s string) *PhotoAssetUpdate {
	pau.mutation.SetStorageKey(s)
	return pau
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableStorageKey(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetStorageKey(*s)
	}
	return pau
}

// SetStorageProvider sets the "storage_provider" field.
func (pau *PhotoAssetUpdate) SetStorageProvider(s string) *PhotoAssetUpdate {
	pau.mutation.SetStorageProvider(s)
	return pau
}

// SetNillableStorageProvider sets the "storage_provider" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableStorageProvider(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetStorageProvider(*s)
	}
	return pau
}

// SetSize sets the "size" field.
func (pau *PhotoAssetUpdate) SetSize(i int64) *PhotoAssetUpdate {
	pau.mutation.ResetSize()
	pau.mutation.SetSize(i)
	return pau
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableSize(i *int64) *PhotoAssetUpdate {
	if i != nil {
		pau.SetSize(*i)
	}
	return pau
}

// AddSize adds i to the "size" field.
func (pau *PhotoAssetUpdate) AddSize(i int64) *PhotoAssetUpdate {
	pau.mutation.AddSize(i)
	return pau
}

// ClearSize clears the value of the "size" field.
func (pau *PhotoAssetUpdate) ClearSize() *PhotoAssetUpdate {
	pau.mutation.ClearSize()
	return pau
}

// SetEtag sets the "etag" field.
func (pau *PhotoAssetUpdate) SetEtag(s string) *PhotoAssetUpdate {
	pau.mutation.SetEtag(s)
	return pau
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableEtag(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetEtag(*s)
	}
	return pau
}

// ClearEtag clears the value of the "etag" field.
func (pau *PhotoAssetUpdate) ClearEtag() *PhotoAssetUpdate {
	pau.mutation.ClearEtag()
	return pau
}

// SetLastModified sets the "last_modified" field.
func (pau *PhotoAssetUpdate) SetLastModified(s string) *PhotoAssetUpdate {
	pau.mutation.SetLastModified(s)
	return pau
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableLastModified(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetLastModified(*s)
	}
	return pau
}

// ClearLastModified clears the value of the "last_modified" field.
func (pau *PhotoAssetUpdate) ClearLastModified() *PhotoAssetUpdate {
	pau.mutation.ClearLastModified()
	return pau
}

// SetMetadataHash sets the "metadata_hash" field.
func (pau *PhotoAssetUpdate) SetMetadataHash(s string) *PhotoAssetUpdate {
	pau.mutation.SetMetadataHash(s)
	return pau
}

// SetNillableMetadataHash sets the "metadata_hash" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableMetadataHash(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetMetadataHash(*s)
	}
	return pau
}

// ClearMetadataHash clears the value of the "metadata_hash" field.
func (pau *PhotoAssetUpdate) ClearMetadataHash() *PhotoAssetUpdate {
	pau.mutation.ClearMetadataHash()
	return pau
}

// SetManifestVersion sets the "manifest_version" field.
func (pau *PhotoAssetUpdate) SetManifestVersion(s string) *PhotoAssetUpdate {
	pau.mutation.SetManifestVersion(s)
	return pau
}

// SetNillableManifestVersion sets the "manifest_version" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableManifestVersion(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetManifestVersion(*s)
	}
	return pau
}

// SetManifest sets the "manifest" field.
func (pau *PhotoAssetUpdate) SetManifest(mam model.PhotoAssetManifest) *PhotoAssetUpdate {
	pau.mutation.SetManifest(mam)
	return pau
}

// SetNillableManifest sets the "manifest" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableManifest(mam *model.PhotoAssetManifest) *PhotoAssetUpdate {
	if mam != nil {
		pau.SetManifest(*mam)
	}
	return pau
}

// ClearManifest clears the value of the "manifest" field.
func (pau *PhotoAssetUpdate) ClearManifest() *PhotoAssetUpdate {
	pau.mutation.ClearManifest()
	return pau
}

// SetSyncStatus sets the "sync_status" field.
func (pau *PhotoAssetUpdate) SetSyncStatus(s string) *PhotoAssetUpdate {
	pau.mutation.SetSyncStatus(s)
	return pau
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableSyncStatus(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetSyncStatus(*s)
	}
	return pau
}

// SetConflictReason sets the "conflict_reason" field.
func (pau *PhotoAssetUpdate) SetConflictReason(s string) *PhotoAssetUpdate {
	pau.mutation.SetConflictReason(s)
	return pau
}

// SetNillableConflictReason sets the "conflict_reason" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableConflictReason(s *string) *PhotoAssetUpdate {
	if s != nil {
		pau.SetConflictReason(*s)
	}
	return pau
}

// ClearConflictReason clears the value of the "conflict_reason" field.
func (pau *PhotoAssetUpdate) ClearConflictReason() *PhotoAssetUpdate {
	pau.mutation.ClearConflictReason()
	return pau
}

// SetConflictPayload sets the "conflict_payload" field.
func (pau *PhotoAssetUpdate) SetConflictPayload(mp *model.ConflictPayload) *PhotoAssetUpdate {
	pau.mutation.SetConflictPayload(mp)
	return pau
}

// ClearConflictPayload clears the value of the "conflict_payload" field.
func (pau *PhotoAssetUpdate) ClearConflictPayload() *PhotoAssetUpdate {
	pau.mutation.ClearConflictPayload()
	return pau
}

// SetSyncedAt sets the "synced_at" field.
func (pau *PhotoAssetUpdate) SetSyncedAt(t time.Time) *PhotoAssetUpdate {
	pau.mutation.SetSyncedAt(t)
	return pau
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (pau *PhotoAssetUpdate) SetNillableSyncedAt(t *time.Time) *PhotoAssetUpdate {
	if t != nil {
		pau.SetSyncedAt(*t)
	}
	return pau
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (pau *PhotoAssetUpdate) SetTenant(t *Tenant) *PhotoAssetUpdate {
	return pau.SetTenantID(t.ID)
}

// Mutation returns the PhotoAssetMutation object of the builder.
func (pau *PhotoAssetUpdate) Mutation() *PhotoAssetMutation {
	return pau.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (pau *PhotoAssetUpdate) ClearTenant() *PhotoAssetUpdate {
	pau.mutation.ClearTenant()
	return pau
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pau *PhotoAssetUpdate) Save(ctx context.Context) (int, error) {
	pau.defaults()
	return withHooks(ctx, pau.sqlSave, pau.mutation, pau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pau *PhotoAssetUpdate) SaveX(ctx context.Context) int {
	affected, err := pau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pau *PhotoAssetUpdate) Exec(ctx context.Context) error {
	_, err := pau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pau *PhotoAssetUpdate) ExecX(ctx context.Context) {
	if err := pau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pau *PhotoAssetUpdate) defaults() {
	if _, ok := pau.mutation.UpdatedAt(); !ok {
		v := photoasset.UpdateDefaultUpdatedAt()
		pau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pau *PhotoAssetUpdate) check() error {
	if v, ok := pau.mutation.PhotoID(); ok {
		if err := photoasset.PhotoIDValidator(v); err != nil {
			return &ValidationError{Name: "photo_id", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.photo_id": %w`, err)}
		}
	}
	if v, ok := pau.mutation.StorageKey(); ok {
		if err := photoasset.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.storage_key": %w`, err)}
		}
	}
	if v, ok := pau.mutation.StorageProvider(); ok {
		if err := photoasset.StorageProviderValidator(v); err != nil {
			return &ValidationError{Name: "storage_provider", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.storage_provider": %w`, err)}
		}
	}
	if v, ok := pau.mutation.Etag(); ok {
		if err := photoasset.EtagValidator(v); err != nil {
			return &ValidationError{Name: "etag", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.etag": %w`, err)}
		}
	}
	if v, ok := pau.mutation.LastModified(); ok {
		if err := photoasset.LastModifiedValidator(v); err != nil {
			return &ValidationError{Name: "last_modified", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.last_modified": %w`, err)}
		}
	}
	if v, ok := pau.mutation.MetadataHash(); ok {
		if err := photoasset.MetadataHashValidator(v); err != nil {
			return &ValidationError{Name: "metadata_hash", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.metadata_hash": %w`, err)}
		}
	}
	if v, ok := pau.mutation.ManifestVersion(); ok {
		if err := photoasset.ManifestVersionValidator(v); err != nil {
			return &ValidationError{Name: "manifest_version", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.manifest_version": %w`, err)}
		}
	}
	if v, ok := pau.mutation.SyncStatus(); ok {
		if err := photoasset.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.sync_status": %w`, err)}
		}
	}
	if v, ok := pau.mutation.ConflictReason(); ok {
		if err := photoasset.ConflictReasonValidator(v); err != nil {
			return &ValidationError{Name: "conflict_reason", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.conflict_reason": %w`, err)}
		}
	}
	if pau.mutation.TenantCleared() && len(pau.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhotoAsset.tenant"`)
	}
	return nil
}

func (pau *PhotoAssetUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(photoasset.Table, photoasset.Columns, sqlgraph.NewFieldSpec(photoasset.FieldID, field.TypeUint))
	if ps := pau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pau.mutation.UpdatedAt(); ok {
		_spec.SetField(photoasset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pau.mutation.PhotoID(); ok {
		_spec.SetField(photoasset.FieldPhotoID, field.TypeString, value)
	}
	if value, ok := pau.mutation.StorageKey(); ok {
		_spec.SetField(photoasset.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := pau.mutation.StorageProvider(); ok {
		_spec.SetField(photoasset.FieldStorageProvider, field.TypeString, value)
	}
	if value, ok := pau.mutation.Size(); ok {
		_spec.SetField(photoasset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := pau.mutation.AddedSize(); ok {
		_spec.AddField(photoasset.FieldSize, field.TypeInt64, value)
	}
	if pau.mutation.SizeCleared() {
		_spec.ClearField(photoasset.FieldSize, field.TypeInt64)
	}
	if value, ok := pau.mutation.Etag(); ok {
		_spec.SetField(photoasset.FieldEtag, field.TypeString, value)
	}
	if pau.mutation.EtagCleared() {
		_spec.ClearField(photoasset.FieldEtag, field.TypeString)
	}
	if value, ok := pau.mutation.LastModified(); ok {
		_spec.SetField(photoasset.FieldLastModified, field.TypeString, value)
	}
	if pau.mutation.LastModifiedCleared() {
		_spec.ClearField(photoasset.FieldLastModified, field.TypeString)
	}
	if value, ok := pau.mutation.MetadataHash(); ok {
		_spec.SetField(photoasset.FieldMetadataHash, field.TypeString, value)
	}
	if pau.mutation.MetadataHashCleared() {
		_spec.ClearField(photoasset.FieldMetadataHash, field.TypeString)
	}
	if value, ok := pau.mutation.ManifestVersion(); ok {
		_spec.SetField(photoasset.FieldManifestVersion, field.TypeString, value)
	}
	if value, ok := pau.mutation.Manifest(); ok {
		_spec.SetField(photoasset.FieldManifest, field.TypeOther, value)
	}
	if pau.mutation.ManifestCleared() {
		_spec.ClearField(photoasset.FieldManifest, field.TypeOther)
	}
	if value, ok := pau.mutation.SyncStatus(); ok {
		_spec.SetField(photoasset.FieldSyncStatus, field.TypeString, value)
	}
	if value, ok := pau.mutation.ConflictReason(); ok {
		_spec.SetField(photoasset.FieldConflictReason, field.TypeString, value)
	}
	if pau.mutation.ConflictReasonCleared() {
		_spec.ClearField(photoasset.FieldConflictReason, field.TypeString)
	}
	if value, ok := pau.mutation.ConflictPayload(); ok {
		_spec.SetField(photoasset.FieldConflictPayload, field.TypeOther, value)
	}
	if pau.mutation.ConflictPayloadCleared() {
		_spec.ClearField(photoasset.FieldConflictPayload, field.TypeOther)
	}
	if value, ok := pau.mutation.SyncedAt(); ok {
		_spec.SetField(photoasset.FieldSyncedAt, field.TypeTime, value)
	}
	if pau.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pau.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{photoasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pau.mutation.done = true
	return n, nil
}

// PhotoAssetUpdateOne is the builder for updating a single PhotoAsset entity.
type PhotoAssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhotoAssetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (pauo *PhotoAssetUpdateOne) SetUpdatedAt(t time.Time) *PhotoAssetUpdateOne {
	pauo.mutation.SetUpdatedAt(t)
	return pauo
}

// SetTenantID sets the "tenant_id" field.
func (pauo *PhotoAssetUpdateOne) SetTenantID(u uint) *PhotoAssetUpdateOne {
	pauo.mutation.SetTenantID(u)
	return pauo
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableTenantID(u *uint) *PhotoAssetUpdateOne {
	if u != nil {
		pauo.SetTenantID(*u)
	}
	return pauo
}

// SetPhotoID sets the "photo_id" field.
func (pauo *PhotoAssetUpdateOne) SetPhotoID(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetPhotoID(s)
	return pauo
}

// SetNillablePhotoID sets the "photo_id" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillablePhotoID(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetPhotoID(*s)
	}
	return pauo
}

// SetStorageKey sets the "storage_key" field.
func (pauo *PhotoAssetUpdateOne) SetStorageKey(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetStorageKey(s)
	return pauo
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableStorageKey(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetStorageKey(*s)
	}
	return pauo
}

// SetStorageProvider sets the "storage_provider" field.
func (pauo *PhotoAssetUpdateOne) SetStorageProvider(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetStorageProvider(s)
	return pauo
}

// SetNillableStorageProvider sets the "storage_provider" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableStorageProvider(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetStorageProvider(*s)
	}
	return pauo
}

// SetSize sets the "size" field.
func (pauo *PhotoAssetUpdateOne) SetSize(i int64) *PhotoAssetUpdateOne {
	pauo.mutation.ResetSize()
	pauo.mutation.SetSize(i)
	return pauo
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableSize(i *int64) *PhotoAssetUpdateOne {
	if i != nil {
		pauo.SetSize(*i)
	}
	return pauo
}

// AddSize adds i to the "size" field.
func (pauo *PhotoAssetUpdateOne) AddSize(i int64) *PhotoAssetUpdateOne {
	pauo.mutation.AddSize(i)
	return pauo
}

// ClearSize clears the value of the "size" field.
func (pauo *PhotoAssetUpdateOne) ClearSize() *PhotoAssetUpdateOne {
	pauo.mutation.ClearSize()
	return pauo
}

// SetEtag sets the "etag" field.
func (pauo *PhotoAssetUpdateOne) SetEtag(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetEtag(s)
	return pauo
}

// SetNillableEtag sets the "etag" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableEtag(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetEtag(*s)
	}
	return pauo
}

// ClearEtag clears the value of the "etag" field.
func (pauo *PhotoAssetUpdateOne) ClearEtag() *PhotoAssetUpdateOne {
	pauo.mutation.ClearEtag()
	return pauo
}

// SetLastModified sets the "last_modified" field.
func (pauo *PhotoAssetUpdateOne) SetLastModified(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetLastModified(s)
	return pauo
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableLastModified(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetLastModified(*s)
	}
	return pauo
}

// ClearLastModified clears the value of the "last_modified" field.
func (pauo *PhotoAssetUpdateOne) ClearLastModified() *PhotoAssetUpdateOne {
	pauo.mutation.ClearLastModified()
	return pauo
}

// SetMetadataHash sets the "metadata_hash" field.
func (pauo *PhotoAssetUpdateOne) SetMetadataHash(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetMetadataHash(s)
	return pauo
}

// SetNillableMetadataHash sets the "metadata_hash" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableMetadataHash(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetMetadataHash(*s)
	}
	return pauo
}

// ClearMetadataHash clears the value of the "metadata_hash" field.
func (pauo *PhotoAssetUpdateOne) ClearMetadataHash() *PhotoAssetUpdateOne {
	pauo.mutation.ClearMetadataHash()
	return pauo
}

// SetManifestVersion sets the "manifest_version" field.
func (pauo *PhotoAssetUpdateOne) SetManifestVersion(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetManifestVersion(s)
	return pauo
}

// SetNillableManifestVersion sets the "manifest_version" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableManifestVersion(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetManifestVersion(*s)
	}
	return pauo
}

// SetManifest sets the "manifest" field.
func (pauo *PhotoAssetUpdateOne) SetManifest(mam model.PhotoAssetManifest) *PhotoAssetUpdateOne {
	pauo.mutation.SetManifest(mam)
	return pauo
}

// SetNillableManifest sets the "manifest" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableManifest(mam *model.PhotoAssetManifest) *PhotoAssetUpdateOne {
	if mam != nil {
		pauo.SetManifest(*mam)
	}
	return pauo
}

// ClearManifest clears the value of the "manifest" field.
func (pauo *PhotoAssetUpdateOne) ClearManifest() *PhotoAssetUpdateOne {
	pauo.mutation.ClearManifest()
	return pauo
}

// SetSyncStatus sets the "sync_status" field.
func (pauo *PhotoAssetUpdateOne) SetSyncStatus(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetSyncStatus(s)
	return pauo
}

// SetNillableSyncStatus sets the "sync_status" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableSyncStatus(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetSyncStatus(*s)
	}
	return pauo
}

// SetConflictReason sets the "conflict_reason" field.
func (pauo *PhotoAssetUpdateOne) SetConflictReason(s string) *PhotoAssetUpdateOne {
	pauo.mutation.SetConflictReason(s)
	return pauo
}

// SetNillableConflictReason sets the "conflict_reason" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableConflictReason(s *string) *PhotoAssetUpdateOne {
	if s != nil {
		pauo.SetConflictReason(*s)
	}
	return pauo
}

// ClearConflictReason clears the value of the "conflict_reason" field.
func (pauo *PhotoAssetUpdateOne) ClearConflictReason() *PhotoAssetUpdateOne {
	pauo.mutation.ClearConflictReason()
	return pauo
}

// SetConflictPayload sets the "conflict_payload" field.
func (pauo *PhotoAssetUpdateOne) SetConflictPayload(mp *model.ConflictPayload) *PhotoAssetUpdateOne {
	pauo.mutation.SetConflictPayload(mp)
	return pauo
}

// ClearConflictPayload clears the value of the "conflict_payload" field.
func (pauo *PhotoAssetUpdateOne) ClearConflictPayload() *PhotoAssetUpdateOne {
	pauo.mutation.ClearConflictPayload()
	return pauo
}

// SetSyncedAt sets the "synced_at" field.
func (pauo *PhotoAssetUpdateOne) SetSyncedAt(t time.Time) *PhotoAssetUpdateOne {
	pauo.mutation.SetSyncedAt(t)
	return pauo
}

// SetNillableSyncedAt sets the "synced_at" field if the given value is not nil.
func (pauo *PhotoAssetUpdateOne) SetNillableSyncedAt(t *time.Time) *PhotoAssetUpdateOne {
	if t != nil {
		pauo.SetSyncedAt(*t)
	}
	return pauo
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (pauo *PhotoAssetUpdateOne) SetTenant(t *Tenant) *PhotoAssetUpdateOne {
	return pauo.SetTenantID(t.ID)
}

// Mutation returns the PhotoAssetMutation object of the builder.
func (pauo *PhotoAssetUpdateOne) Mutation() *PhotoAssetMutation {
	return pauo.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (pauo *PhotoAssetUpdateOne) ClearTenant() *PhotoAssetUpdateOne {
	pauo.mutation.ClearTenant()
	return pauo
}

// Where appends a list predicates to the PhotoAssetUpdate builder.
func (pauo *PhotoAssetUpdateOne) Where(ps ...predicate.PhotoAsset) *PhotoAssetUpdateOne {
	pauo.mutation.Where(ps...)
	return pauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pauo *PhotoAssetUpdateOne) Select(field string, fields ...string) *PhotoAssetUpdateOne {
	pauo.fields = append([]string{field}, fields...)
	return pauo
}

// Save executes the query and returns the updated PhotoAsset entity.
func (pauo *PhotoAssetUpdateOne) Save(ctx context.Context) (*PhotoAsset, error) {
	pauo.defaults()
	return withHooks(ctx, pauo.sqlSave, pauo.mutation, pauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pauo *PhotoAssetUpdateOne) SaveX(ctx context.Context) *PhotoAsset {
	node, err := pauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pauo *PhotoAssetUpdateOne) Exec(ctx context.Context) error {
	_, err := pauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pauo *PhotoAssetUpdateOne) ExecX(ctx context.Context) {
	if err := pauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pauo *PhotoAssetUpdateOne) defaults() {
	if _, ok := pauo.mutation.UpdatedAt(); !ok {
		v := photoasset.UpdateDefaultUpdatedAt()
		pauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pauo *PhotoAssetUpdateOne) check() error {
	if v, ok := pauo.mutation.PhotoID(); ok {
		if err := photoasset.PhotoIDValidator(v); err != nil {
			return &ValidationError{Name: "photo_id", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.photo_id": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.StorageKey(); ok {
		if err := photoasset.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.storage_key": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.StorageProvider(); ok {
		if err := photoasset.StorageProviderValidator(v); err != nil {
			return &ValidationError{Name: "storage_provider", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.storage_provider": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.Etag(); ok {
		if err := photoasset.EtagValidator(v); err != nil {
			return &ValidationError{Name: "etag", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.etag": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.LastModified(); ok {
		if err := photoasset.LastModifiedValidator(v); err != nil {
			return &ValidationError{Name: "last_modified", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.last_modified": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.MetadataHash(); ok {
		if err := photoasset.MetadataHashValidator(v); err != nil {
			return &ValidationError{Name: "metadata_hash", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.metadata_hash": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.ManifestVersion(); ok {
		if err := photoasset.ManifestVersionValidator(v); err != nil {
			return &ValidationError{Name: "manifest_version", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.manifest_version": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.SyncStatus(); ok {
		if err := photoasset.SyncStatusValidator(v); err != nil {
			return &ValidationError{Name: "sync_status", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.sync_status": %w`, err)}
		}
	}
	if v, ok := pauo.mutation.ConflictReason(); ok {
		if err := photoasset.ConflictReasonValidator(v); err != nil {
			return &ValidationError{Name: "conflict_reason", err: fmt.Errorf(`ent: validator failed for field "PhotoAsset.conflict_reason": %w`, err)}
		}
	}
	if pauo.mutation.TenantCleared() && len(pauo.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhotoAsset.tenant"`)
	}
	return nil
}

func (pauo *PhotoAssetUpdateOne) sqlSave(ctx context.Context) (_node *PhotoAsset, err error) {
	if err := pauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(photoasset.Table, photoasset.Columns, sqlgraph.NewFieldSpec(photoasset.FieldID, field.TypeUint))
	id, ok := pauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhotoAsset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, photoasset.FieldID)
		for _, f := range fields {
			if !photoasset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != photoasset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pauo.mutation.UpdatedAt(); ok {
		_spec.SetField(photoasset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pauo.mutation.PhotoID(); ok {
		_spec.SetField(photoasset.FieldPhotoID, field.TypeString, value)
	}
	if value, ok := pauo.mutation.StorageKey(); ok {
		_spec.SetField(photoasset.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := pauo.mutation.StorageProvider(); ok {
		_spec.SetField(photoasset.FieldStorageProvider, field.TypeString, value)
	}
	if value, ok := pauo.mutation.Size(); ok {
		_spec.SetField(photoasset.FieldSize, field.TypeInt64, value)
	}
	if value, ok := pauo.mutation.AddedSize(); ok {
		_spec.AddField(photoasset.FieldSize, field.TypeInt64, value)
	}
	if pauo.mutation.SizeCleared() {
		_spec.ClearField(photoasset.FieldSize, field.TypeInt64)
	}
	if value, ok := pauo.mutation.Etag(); ok {
		_spec.SetField(photoasset.FieldEtag, field.TypeString, value)
	}
	if pauo.mutation.EtagCleared() {
		_spec.ClearField(photoasset.FieldEtag, field.TypeString)
	}
	if value, ok := pauo.mutation.LastModified(); ok {
		_spec.SetField(photoasset.FieldLastModified, field.TypeString, value)
	}
	if pauo.mutation.LastModifiedCleared() {
		_spec.ClearField(photoasset.FieldLastModified, field.TypeString)
	}
	if value, ok := pauo.mutation.MetadataHash(); ok {
		_spec.SetField(photoasset.FieldMetadataHash, field.TypeString, value)
	}
	if pauo.mutation.MetadataHashCleared() {
		_spec.ClearField(photoasset.FieldMetadataHash, field.TypeString)
	}
	if value, ok := pauo.mutation.ManifestVersion(); ok {
		_spec.SetField(photoasset.FieldManifestVersion, field.TypeString, value)
	}
	if value, ok := pauo.mutation.Manifest(); ok {
		_spec.SetField(photoasset.FieldManifest, field.TypeOther, value)
	}
	if pauo.mutation.ManifestCleared() {
		_spec.ClearField(photoasset.FieldManifest, field.TypeOther)
	}
	if value, ok := pauo.mutation.SyncStatus(); ok {
		_spec.SetField(photoasset.FieldSyncStatus, field.TypeString, value)
	}
	if value, ok := pauo.mutation.ConflictReason(); ok {
		_spec.SetField(photoasset.FieldConflictReason, field.TypeString, value)
	}
	if pauo.mutation.ConflictReasonCleared() {
		_spec.ClearField(photoasset.FieldConflictReason, field.TypeString)
	}
	if value, ok := pauo.mutation.ConflictPayload(); ok {
		_spec.SetField(photoasset.FieldConflictPayload, field.TypeOther, value)
	}
	if pauo.mutation.ConflictPayloadCleared() {
		_spec.ClearField(photoasset.FieldConflictPayload, field.TypeOther)
	}
	if value, ok := pauo.mutation.SyncedAt(); ok {
		_spec.SetField(photoasset.FieldSyncedAt, field.TypeTime, value)
	}
	if pauo.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pauo.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PhotoAsset{config: pauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{photoasset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pauo.mutation.done = true
	return _node, nil
}
