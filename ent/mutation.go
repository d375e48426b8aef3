// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/ent/predicate"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePhotoAsset = "PhotoAsset"
	TypeTenant     = "Tenant"
)

// PhotoAssetMutation represents an operation that mutates the PhotoAsset nodes in the graph.
type PhotoAssetMutation struct {
	config
	op               Op
	typ              string
	id               *uint
	created_at       *time.Time
	updated_at       *time.Time
	photo_id         *string
	storage_key      *string
	storage_provider *string
	size             *int64
	addsize          *int64
	etag             *string
	last_modified    *string
	metadata_hash    *string
	manifest_version *string
	manifest         *model.PhotoAssetManifest
	sync_status      *string
	conflict_reason  *string
	conflict_payload **model.ConflictPayload
	synced_at        *time.Time
	clearedFields    map[string]struct{}
	tenant           *uint
	clearedtenant    bool
	done             bool
	oldValue         func(context.Context) (*PhotoAsset, error)
	predicates       []predicate.PhotoAsset
}

var _ ent.Mutation = (*PhotoAssetMutation)(nil)

// photoassetOption allows management of the mutation configuration using functional options.
type photoassetOption func(*PhotoAssetMutation)

// newPhotoAssetMutation creates new mutation for the PhotoAsset entity.
func newPhotoAssetMutation(c config, op Op, opts ...photoassetOption) *PhotoAssetMutation {
	m := &PhotoAssetMutation{
		config:        c,
		op:            op,
		typ:           TypePhotoAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhotoAssetID sets the ID field of the mutation.
func withPhotoAssetID(id uint) photoassetOption {
	return func(m *PhotoAssetMutation) {
		var (
			err   error
			once  sync.Once
			value *PhotoAsset
		)
		m.oldValue = func(ctx context.Context) (*PhotoAsset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhotoAsset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhotoAsset sets the old PhotoAsset of the mutation.
func withPhotoAsset(node *PhotoAsset) photoassetOption {
	return func(m *PhotoAssetMutation) {
		m.oldValue = func(context.Context) (*PhotoAsset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhotoAssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhotoAssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhotoAsset entities.
func (m *PhotoAssetMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhotoAssetMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhotoAssetMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhotoAsset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PhotoAssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhotoAssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhotoAssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PhotoAssetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PhotoAssetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PhotoAssetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *PhotoAssetMutation) SetTenantID(u uint) {
	m.tenant = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PhotoAssetMutation) TenantID() (r uint, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldTenantID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PhotoAssetMutation) ResetTenantID() {
	m.tenant = nil
}

// SetPhotoID sets the "photo_id" field.
func (m *PhotoAssetMutation) SetPhotoID(s string) {
	m.photo_id = &s
}

// PhotoID returns the value of the "photo_id" field in the mutation.
func (m *PhotoAssetMutation) PhotoID() (r string, exists bool) {
	v := m.photo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhotoID returns the old "photo_id" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldPhotoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhotoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhotoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhotoID: %w", err)
	}
	return oldValue.PhotoID, nil
}

// ResetPhotoID resets all changes to the "photo_id" field.
func (m *PhotoAssetMutation) ResetPhotoID() {
	m.photo_id = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *PhotoAssetMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *PhotoAssetMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *PhotoAssetMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetStorageProvider sets the "storage_provider" field.
func (m *PhotoAssetMutation) SetStorageProvider(s string) {
	m.storage_provider = &s
}

// StorageProvider returns the value of the "storage_provider" field in the mutation.
func (m *PhotoAssetMutation) StorageProvider() (r string, exists bool) {
	v := m.storage_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageProvider returns the old "storage_provider" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldStorageProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageProvider: %w", err)
	}
	return oldValue.StorageProvider, nil
}

// ResetStorageProvider resets all changes to the "storage_provider" field.
func (m *PhotoAssetMutation) ResetStorageProvider() {
	m.storage_provider = nil
}

// SetSize sets the "size" field.
func (m *PhotoAssetMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *PhotoAssetMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldSize(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *PhotoAssetMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *PhotoAssetMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ClearSize clears the value of the "size" field.
func (m *PhotoAssetMutation) ClearSize() {
	m.size = nil
	m.addsize = nil
	m.clearedFields[photoasset.FieldSize] = struct{}{}
}

// SizeCleared returns if the "size" field was cleared in this mutation.
func (m *PhotoAssetMutation) SizeCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldSize]
	return ok
}

// ResetSize resets all changes to the "size" field.
func (m *PhotoAssetMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
	delete(m.clearedFields, photoasset.FieldSize)
}

// SetEtag sets the "etag" field.
func (m *PhotoAssetMutation) SetEtag(s string) {
	m.etag = &s
}

// Etag returns the value of the "etag" field in the mutation.
func (m *PhotoAssetMutation) Etag() (r string, exists bool) {
	v := m.etag
	if v == nil {
		return
	}
	return *v, true
}

// OldEtag returns the old "etag" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldEtag(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtag: %w", err)
	}
	return oldValue.Etag, nil
}

// ClearEtag clears the value of the "etag" field.
func (m *PhotoAssetMutation) ClearEtag() {
	m.etag = nil
	m.clearedFields[photoasset.FieldEtag] = struct{}{}
}

// EtagCleared returns if the "etag" field was cleared in this mutation.
func (m *PhotoAssetMutation) EtagCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldEtag]
	return ok
}

// ResetEtag resets all changes to the "etag" field.
func (m *PhotoAssetMutation) ResetEtag() {
	m.etag = nil
	delete(m.clearedFields, photoasset.FieldEtag)
}

// SetLastModified sets the "last_modified" field.
func (m *PhotoAssetMutation) SetLastModified(s string) {
	m.last_modified = &s
}

// LastModified returns the value of the "last_modified" field in the mutation.
func (m *PhotoAssetMutation) LastModified() (r string, exists bool) {
	v := m.last_modified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastModified returns the old "last_modified" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldLastModified(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastModified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastModified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastModified: %w", err)
	}
	return oldValue.LastModified, nil
}

// ClearLastModified clears the value of the "last_modified" field.
func (m *PhotoAssetMutation) ClearLastModified() {
	m.last_modified = nil
	m.clearedFields[photoasset.FieldLastModified] = struct{}{}
}

// LastModifiedCleared returns if the "last_modified" field was cleared in this mutation.
func (m *PhotoAssetMutation) LastModifiedCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldLastModified]
	return ok
}

// ResetLastModified resets all changes to the "last_modified" field.
func (m *PhotoAssetMutation) ResetLastModified() {
	m.last_modified = nil
	delete(m.clearedFields, photoasset.FieldLastModified)
}

// SetMetadataHash sets the "metadata_hash" field.
func (m *PhotoAssetMutation) SetMetadataHash(s string) {
	m.metadata_hash = &s
}

// MetadataHash returns the value of the "metadata_hash" field in the mutation.
func (m *PhotoAssetMutation) MetadataHash() (r string, exists bool) {
	v := m.metadata_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadataHash returns the old "metadata_hash" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldMetadataHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadataHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadataHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadataHash: %w", err)
	}
	return oldValue.MetadataHash, nil
}

// ClearMetadataHash clears the value of the "metadata_hash" field.
func (m *PhotoAssetMutation) ClearMetadataHash() {
	m.metadata_hash = nil
	m.clearedFields[photoasset.FieldMetadataHash] = struct{}{}
}

// MetadataHashCleared returns if the "metadata_hash" field was cleared in this mutation.
func (m *PhotoAssetMutation) MetadataHashCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldMetadataHash]
	return ok
}

// ResetMetadataHash resets all changes to the "metadata_hash" field.
func (m *PhotoAssetMutation) ResetMetadataHash() {
	m.metadata_hash = nil
	delete(m.clearedFields, photoasset.FieldMetadataHash)
}

// SetManifestVersion sets the "manifest_version" field.
func (m *PhotoAssetMutation) SetManifestVersion(s string) {
	m.manifest_version = &s
}

// ManifestVersion returns the value of the "manifest_version" field in the mutation.
func (m *PhotoAssetMutation) ManifestVersion() (r string, exists bool) {
	v := m.manifest_version
	if v == nil {
		return
	}
	return *v, true
}

// OldManifestVersion returns the old "manifest_version" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldManifestVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifestVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifestVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifestVersion: %w", err)
	}
	return oldValue.ManifestVersion, nil
}

// ResetManifestVersion resets all changes to the "manifest_version" field.
func (m *PhotoAssetMutation) ResetManifestVersion() {
	m.manifest_version = nil
}

// SetManifest sets the "manifest" field.
func (m *PhotoAssetMutation) SetManifest(mam model.PhotoAssetManifest) {
	m.manifest = &mam
}

// Manifest returns the value of the "manifest" field in the mutation.
func (m *PhotoAssetMutation) Manifest() (r model.PhotoAssetManifest, exists bool) {
	v := m.manifest
	if v == nil {
		return
	}
	return *v, true
}

// OldManifest returns the old "manifest" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldManifest(ctx context.Context) (v model.PhotoAssetManifest, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifest: %w", err)
	}
	return oldValue.Manifest, nil
}

// ClearManifest clears the value of the "manifest" field.
func (m *PhotoAssetMutation) ClearManifest() {
	m.manifest = nil
	m.clearedFields[photoasset.FieldManifest] = struct{}{}
}

// ManifestCleared returns if the "manifest" field was cleared in this mutation.
func (m *PhotoAssetMutation) ManifestCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldManifest]
	return ok
}

// ResetManifest resets all changes to the "manifest" field.
func (m *PhotoAssetMutation) ResetManifest() {
	m.manifest = nil
	delete(m.clearedFields, photoasset.FieldManifest)
}

// SetSyncStatus sets the "sync_status" field.
func (m *PhotoAssetMutation) SetSyncStatus(s string) {
	m.sync_status = &s
}

// SyncStatus returns the value of the "sync_status" field in the mutation.
func (m *PhotoAssetMutation) SyncStatus() (r string, exists bool) {
	v := m.sync_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncStatus returns the old "sync_status" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldSyncStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncStatus: %w", err)
	}
	return oldValue.SyncStatus, nil
}

// ResetSyncStatus resets all changes to the "sync_status" field.
func (m *PhotoAssetMutation) ResetSyncStatus() {
	m.sync_status = nil
}

// SetConflictReason sets the "conflict_reason" field.
func (m *PhotoAssetMutation) SetConflictReason(s string) {
	m.conflict_reason = &s
}

// ConflictReason returns the value of the "conflict_reason" field in the mutation.
func (m *PhotoAssetMutation) ConflictReason() (r string, exists bool) {
	v := m.conflict_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictReason returns the old "conflict_reason" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldConflictReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictReason: %w", err)
	}
	return oldValue.ConflictReason, nil
}

// ClearConflictReason clears the value of the "conflict_reason" field.
func (m *PhotoAssetMutation) ClearConflictReason() {
	m.conflict_reason = nil
	m.clearedFields[photoasset.FieldConflictReason] = struct{}{}
}

// ConflictReasonCleared returns if the "conflict_reason" field was cleared in this mutation.
func (m *PhotoAssetMutation) ConflictReasonCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldConflictReason]
	return ok
}

// ResetConflictReason resets all changes to the "conflict_reason" field.
func (m *PhotoAssetMutation) ResetConflictReason() {
	m.conflict_reason = nil
	delete(m.clearedFields, photoasset.FieldConflictReason)
}

// SetConflictPayload sets the "conflict_payload" field.
func (m *PhotoAssetMutation) SetConflictPayload(mp *model.ConflictPayload) {
	m.conflict_payload = &mp
}

// ConflictPayload returns the value of the "conflict_payload" field in the mutation.
func (m *PhotoAssetMutation) ConflictPayload() (r *model.ConflictPayload, exists bool) {
	v := m.conflict_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictPayload returns the old "conflict_payload" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldConflictPayload(ctx context.Context) (v *model.ConflictPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictPayload: %w", err)
	}
	return oldValue.ConflictPayload, nil
}

// ClearConflictPayload clears the value of the "conflict_payload" field.
func (m *PhotoAssetMutation) ClearConflictPayload() {
	m.conflict_payload = nil
	m.clearedFields[photoasset.FieldConflictPayload] = struct{}{}
}

// ConflictPayloadCleared returns if the "conflict_payload" field was cleared in this mutation.
func (m *PhotoAssetMutation) ConflictPayloadCleared() bool {
	_, ok := m.clearedFields[photoasset.FieldConflictPayload]
	return ok
}

// ResetConflictPayload resets all changes to the "conflict_payload" field.
func (m *PhotoAssetMutation) ResetConflictPayload() {
	m.conflict_payload = nil
	delete(m.clearedFields, photoasset.FieldConflictPayload)
}

// SetSyncedAt sets the "synced_at" field.
func (m *PhotoAssetMutation) SetSyncedAt(t time.Time) {
	m.synced_at = &t
}

// SyncedAt returns the value of the "synced_at" field in the mutation.
func (m *PhotoAssetMutation) SyncedAt() (r time.Time, exists bool) {
	v := m.synced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncedAt returns the old "synced_at" field's value of the PhotoAsset entity.
// If the PhotoAsset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoAssetMutation) OldSyncedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncedAt: %w", err)
	}
	return oldValue.SyncedAt, nil
}

// ResetSyncedAt resets all changes to the "synced_at" field.
func (m *PhotoAssetMutation) ResetSyncedAt() {
	m.synced_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *PhotoAssetMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[photoasset.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *PhotoAssetMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *PhotoAssetMutation) TenantIDs() (ids []uint) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *PhotoAssetMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the PhotoAssetMutation builder.
func (m *PhotoAssetMutation) Where(ps ...predicate.PhotoAsset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhotoAssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhotoAssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhotoAsset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhotoAssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhotoAssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhotoAsset).
func (m *PhotoAssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhotoAssetMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.created_at != nil {
		fields = append(fields, photoasset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, photoasset.FieldUpdatedAt)
	}
	if m.tenant != nil {
		fields = append(fields, photoasset.FieldTenantID)
	}
	if m.photo_id != nil {
		fields = append(fields, photoasset.FieldPhotoID)
	}
	if m.storage_key != nil {
		fields = append(fields, photoasset.FieldStorageKey)
	}
	if m.storage_provider != nil {
		fields = append(fields, photoasset.FieldStorageProvider)
	}
	if m.size != nil {
		fields = append(fields, photoasset.FieldSize)
	}
	if m.etag != nil {
		fields = append(fields, photoasset.FieldEtag)
	}
	if m.last_modified != nil {
		fields = append(fields, photoasset.FieldLastModified)
	}
	if m.metadata_hash != nil {
		fields = append(fields, photoasset.FieldMetadataHash)
	}
	if m.manifest_version != nil {
		fields = append(fields, photoasset.FieldManifestVersion)
	}
	if m.manifest != nil {
		fields = append(fields, photoasset.FieldManifest)
	}
	if m.sync_status != nil {
		fields = append(fields, photoasset.FieldSyncStatus)
	}
	if m.conflict_reason != nil {
		fields = append(fields, photoasset.FieldConflictReason)
	}
	if m.conflict_payload != nil {
		fields = append(fields, photoasset.FieldConflictPayload)
	}
	if m.synced_at != nil {
		fields = append(fields, photoasset.FieldSyncedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhotoAssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case photoasset.FieldCreatedAt:
		return m.CreatedAt()
	case photoasset.FieldUpdatedAt:
		return m.UpdatedAt()
	case photoasset.FieldTenantID:
		return m.TenantID()
	case photoasset.FieldPhotoID:
		return m.PhotoID()
	case photoasset.FieldStorageKey:
		return m.StorageKey()
	case photoasset.FieldStorageProvider:
		return m.StorageProvider()
	case photoasset.FieldSize:
		return m.Size()
	case photoasset.FieldEtag:
		return m.Etag()
	case photoasset.FieldLastModified:
		return m.LastModified()
	case photoasset.FieldMetadataHash:
		return m.MetadataHash()
	case photoasset.FieldManifestVersion:
		return m.ManifestVersion()
	case photoasset.FieldManifest:
		return m.Manifest()
	case photoasset.FieldSyncStatus:
		return m.SyncStatus()
	case photoasset.FieldConflictReason:
		return m.ConflictReason()
	case photoasset.FieldConflictPayload:
		return m.ConflictPayload()
	case photoasset.FieldSyncedAt:
		return m.SyncedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhotoAssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case photoasset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case photoasset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case photoasset.FieldTenantID:
		return m.OldTenantID(ctx)
	case photoasset.FieldPhotoID:
		return m.OldPhotoID(ctx)
	case photoasset.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case photoasset.FieldStorageProvider:
		return m.OldStorageProvider(ctx)
	case photoasset.FieldSize:
		return m.OldSize(ctx)
	case photoasset.FieldEtag:
		return m.OldEtag(ctx)
	case photoasset.FieldLastModified:
		return m.OldLastModified(ctx)
	case photoasset.FieldMetadataHash:
		return m.OldMetadataHash(ctx)
	case photoasset.FieldManifestVersion:
		return m.OldManifestVersion(ctx)
	case photoasset.FieldManifest:
		return m.OldManifest(ctx)
	case photoasset.FieldSyncStatus:
		return m.OldSyncStatus(ctx)
	case photoasset.FieldConflictReason:
		return m.OldConflictReason(ctx)
	case photoasset.FieldConflictPayload:
		return m.OldConflictPayload(ctx)
	case photoasset.FieldSyncedAt:
		return m.OldSyncedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhotoAsset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhotoAssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case photoasset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case photoasset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case photoasset.FieldTenantID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case photoasset.FieldPhotoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhotoID(v)
		return nil
	case photoasset.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case photoasset.FieldStorageProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageProvider(v)
		return nil
	case photoasset.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case photoasset.FieldEtag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtag(v)
		return nil
	case photoasset.FieldLastModified:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastModified(v)
		return nil
	case photoasset.FieldMetadataHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadataHash(v)
		return nil
	case photoasset.FieldManifestVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifestVersion(v)
		return nil
	case photoasset.FieldManifest:
		v, ok := value.(model.PhotoAssetManifest)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifest(v)
		return nil
	case photoasset.FieldSyncStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncStatus(v)
		return nil
	case photoasset.FieldConflictReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictReason(v)
		return nil
	case photoasset.FieldConflictPayload:
		v, ok := value.(*model.ConflictPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictPayload(v)
		return nil
	case photoasset.FieldSyncedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhotoAsset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhotoAssetMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, photoasset.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhotoAssetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case photoasset.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhotoAssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case photoasset.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown PhotoAsset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhotoAssetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(photoasset.FieldSize) {
		fields = append(fields, photoasset.FieldSize)
	}
	if m.FieldCleared(photoasset.FieldEtag) {
		fields = append(fields, photoasset.FieldEtag)
	}
	if m.FieldCleared(photoasset.FieldLastModified) {
		fields = append(fields, photoasset.FieldLastModified)
	}
	if m.FieldCleared(photoasset.FieldMetadataHash) {
		fields = append(fields, photoasset.FieldMetadataHash)
	}
	if m.FieldCleared(photoasset.FieldManifest) {
		fields = append(fields, photoasset.FieldManifest)
	}
	if m.FieldCleared(photoasset.FieldConflictReason) {
		fields = append(fields, photoasset.FieldConflictReason)
	}
	if m.FieldCleared(photoasset.FieldConflictPayload) {
		fields = append(fields, photoasset.FieldConflictPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhotoAssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhotoAssetMutation) ClearField(name string) error {
	switch name {
	case photoasset.FieldSize:
		m.ClearSize()
		return nil
	case photoasset.FieldEtag:
		m.ClearEtag()
		return nil
	case photoasset.FieldLastModified:
		m.ClearLastModified()
		return nil
	case photoasset.FieldMetadataHash:
		m.ClearMetadataHash()
		return nil
	case photoasset.FieldManifest:
		m.ClearManifest()
		return nil
	case photoasset.FieldConflictReason:
		m.ClearConflictReason()
		return nil
	case photoasset.FieldConflictPayload:
		m.ClearConflictPayload()
		return nil
	}
	return fmt.Errorf("unknown PhotoAsset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhotoAssetMutation) ResetField(name string) error {
	switch name {
	case photoasset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case photoasset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case photoasset.FieldTenantID:
		m.ResetTenantID()
		return nil
	case photoasset.FieldPhotoID:
		m.ResetPhotoID()
		return nil
	case photoasset.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case photoasset.FieldStorageProvider:
		m.ResetStorageProvider()
		return nil
	case photoasset.FieldSize:
		m.ResetSize()
		return nil
	case photoasset.FieldEtag:
		m.ResetEtag()
		return nil
	case photoasset.FieldLastModified:
		m.ResetLastModified()
		return nil
	case photoasset.FieldMetadataHash:
		m.ResetMetadataHash()
		return nil
	case photoasset.FieldManifestVersion:
		m.ResetManifestVersion()
		return nil
	case photoasset.FieldManifest:
		m.ResetManifest()
		return nil
	case photoasset.FieldSyncStatus:
		m.ResetSyncStatus()
		return nil
	case photoasset.FieldConflictReason:
		m.ResetConflictReason()
		return nil
	case photoasset.FieldConflictPayload:
		m.ResetConflictPayload()
		return nil
	case photoasset.FieldSyncedAt:
		m.ResetSyncedAt()
		return nil
	}
	return fmt.Errorf("unknown PhotoAsset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhotoAssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, photoasset.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhotoAssetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case photoasset.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhotoAssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhotoAssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhotoAssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, photoasset.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhotoAssetMutation) EdgeCleared(name string) bool {
	switch name {
	case photoasset.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhotoAssetMutation) ClearEdge(name string) error {
	switch name {
	case photoasset.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown PhotoAsset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhotoAssetMutation) ResetEdge(name string) error {
	switch name {
	case photoasset.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown PhotoAsset edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uint
	created_at          *time.Time
	updated_at          *time.Time
	name                *string
	slug                *string
	status              *string
	clearedFields       map[string]struct{}
	photo_assets        map[uint]struct{}
	removedphoto_assets map[uint]struct{}
	clearedphoto_assets bool
	done                bool
	oldValue            func(context.Context) (*Tenant, error)
	predicates          []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id uint) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TenantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TenantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TenantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *TenantMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TenantMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TenantMutation) ResetSlug() {
	m.slug = nil
}

// SetStatus sets the "status" field.
func (m *TenantMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TenantMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TenantMutation) ResetStatus() {
	m.status = nil
}

// AddPhotoAssetIDs adds the "photo_assets" edge to the PhotoAsset entity by ids.
func (m *TenantMutation) AddPhotoAssetIDs(ids ...uint) {
	if m.photo_assets == nil {
		m.photo_assets = make(map[uint]struct{})
	}
	for i := range ids {
		m.photo_assets[ids[i]] = struct{}{}
	}
}

// ClearPhotoAssets clears the "photo_assets" edge to the PhotoAsset entity.
func (m *TenantMutation) ClearPhotoAssets() {
	m.clearedphoto_assets = true
}

// PhotoAssetsCleared reports if the "photo_assets" edge to the PhotoAsset entity was cleared.
func (m *TenantMutation) PhotoAssetsCleared() bool {
	return m.clearedphoto_assets
}

// RemovePhotoAssetIDs removes the "photo_assets" edge to the PhotoAsset entity by IDs.
func (m *TenantMutation) RemovePhotoAssetIDs(ids ...uint) {
	if m.removedphoto_assets == nil {
		m.removedphoto_assets = make(map[uint]struct{})
	}
	for i := range ids {
		delete(m.photo_assets, ids[i])
		m.removedphoto_assets[ids[i]] = struct{}{}
	}
}

// RemovedPhotoAssets returns the removed IDs of the "photo_assets" edge to the PhotoAsset entity.
func (m *TenantMutation) RemovedPhotoAssetsIDs() (ids []uint) {
	for id := range m.removedphoto_assets {
		ids = append(ids, id)
	}
	return
}

// PhotoAssetsIDs returns the "photo_assets" edge IDs in the mutation.
func (m *TenantMutation) PhotoAssetsIDs() (ids []uint) {
	for id := range m.photo_assets {
		ids = append(ids, id)
	}
	return
}

// ResetPhotoAssets resets all changes to the "photo_assets" edge.
func (m *TenantMutation) ResetPhotoAssets() {
	m.photo_assets = nil
	m.clearedphoto_assets = false
	m.removedphoto_assets = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tenant.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, tenant.FieldSlug)
	}
	if m.status != nil {
		fields = append(fields, tenant.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	case tenant.FieldUpdatedAt:
		return m.UpdatedAt()
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldSlug:
		return m.Slug()
	case tenant.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tenant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldSlug:
		return m.OldSlug(ctx)
	case tenant.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tenant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case tenant.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tenant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldSlug:
		m.ResetSlug()
		return nil
	case tenant.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.photo_assets != nil {
		edges = append(edges, tenant.EdgePhotoAssets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgePhotoAssets:
		ids := make([]ent.Value, 0, len(m.photo_assets))
		for id := range m.photo_assets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedphoto_assets != nil {
		edges = append(edges, tenant.EdgePhotoAssets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgePhotoAssets:
		ids := make([]ent.Value, 0, len(m.removedphoto_assets))
		for id := range m.removedphoto_assets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedphoto_assets {
		edges = append(edges, tenant.EdgePhotoAssets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgePhotoAssets:
		return m.clearedphoto_assets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgePhotoAssets:
		m.ResetPhotoAssets()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}
