/*
 * @Description: 照片资产仓储实现
 * @Author: 安知鱼
 * @Date: 2025-08-23 03:40:27
 * @LastEditTime: 2025-09-01 12:15:49
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"time"

	"github.com/anzhiyu-c/afilmory-app/ent"
	"github.com/anzhiyu-c/afilmory-app/ent/photoasset"
	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/repository"

	"entgo.io/ent/dialect/sql"
)

type entPhotoAssetRepository struct {
	client *ent.Client
}

// NewPhotoAssetRepository 创建照片资产仓储实例
func NewPhotoAssetRepository(client *ent.Client) repository.PhotoAssetRepository {
	return &entPhotoAssetRepository{
		client: client,
	}
}

func (r *entPhotoAssetRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*model.PhotoAsset, error) {
	rows, err := r.client.PhotoAsset.Query().
		Where(photoasset.TenantIDEQ(tenantID)).
		Order(ent.Asc(photoasset.FieldStorageKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询租户 %d 的照片资产失败: %w", tenantID, err)
	}

	assets := make([]*model.PhotoAsset, len(rows))
	for i, row := range rows {
		assets[i] = mapEntPhotoAssetToDomain(row)
	}
	return assets, nil
}

func (r *entPhotoAssetRepository) ListConflicts(ctx context.Context, tenantID uint) ([]*model.PhotoAsset, error) {
	rows, err := r.client.PhotoAsset.Query().
		Where(
			photoasset.TenantIDEQ(tenantID),
			photoasset.SyncStatusEQ(string(constant.SyncStatusConflict)),
		).
		Order(ent.Desc(photoasset.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询租户 %d 的冲突记录失败: %w", tenantID, err)
	}

	assets := make([]*model.PhotoAsset, len(rows))
	for i, row := range rows {
		assets[i] = mapEntPhotoAssetToDomain(row)
	}
	return assets, nil
}

func (r *entPhotoAssetRepository) FindByID(ctx context.Context, tenantID, id uint) (*model.PhotoAsset, error) {
	row, err := r.client.PhotoAsset.Query().
		Where(
			photoasset.IDEQ(id),
			photoasset.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询照片资产 %d 失败: %w", id, err)
	}
	return mapEntPhotoAssetToDomain(row), nil
}

// Upsert 以 (tenant_id, storage_key) 作为冲突键写入。
// 冲突时逐列覆盖可变字段，不改变 id 和 created_at；
// 入参中为 nil 的可空列必须显式清空，否则旧行上残留的
// conflict_reason/conflict_payload 会让 synced 记录带着冲突负载。
func (r *entPhotoAssetRepository) Upsert(ctx context.Context, asset *model.PhotoAsset) error {
	create := r.client.PhotoAsset.Create().
		SetTenantID(asset.TenantID).
		SetPhotoID(asset.PhotoID).
		SetStorageKey(asset.StorageKey).
		SetStorageProvider(asset.StorageProvider).
		SetNillableSize(asset.Size).
		SetNillableEtag(asset.ETag).
		SetNillableLastModified(asset.LastModified).
		SetNillableMetadataHash(asset.MetadataHash).
		SetManifestVersion(asset.ManifestVersion).
		SetManifest(asset.Manifest).
		SetSyncStatus(string(asset.SyncStatus)).
		SetNillableConflictReason(asset.ConflictReason).
		SetSyncedAt(asset.SyncedAt)

	if asset.ConflictPayload != nil {
		create.SetConflictPayload(asset.ConflictPayload)
	}

	err := create.
		OnConflict(
			sql.ConflictColumns(photoasset.FieldTenantID, photoasset.FieldStorageKey),
		).
		Update(func(u *ent.PhotoAssetUpsert) {
			u.SetUpdatedAt(time.Now())
			u.SetPhotoID(asset.PhotoID)
			u.SetStorageProvider(asset.StorageProvider)
			u.SetManifestVersion(asset.ManifestVersion)
			u.SetManifest(asset.Manifest)
			u.SetSyncStatus(string(asset.SyncStatus))
			u.SetSyncedAt(asset.SyncedAt)

			if asset.Size != nil {
				u.SetSize(*asset.Size)
			} else {
				u.ClearSize()
			}
			if asset.ETag != nil {
				u.SetEtag(*asset.ETag)
			} else {
				u.ClearEtag()
			}
			if asset.LastModified != nil {
				u.SetLastModified(*asset.LastModified)
			} else {
				u.ClearLastModified()
			}
			if asset.MetadataHash != nil {
				u.SetMetadataHash(*asset.MetadataHash)
			} else {
				u.ClearMetadataHash()
			}
			if asset.ConflictReason != nil {
				u.SetConflictReason(*asset.ConflictReason)
			} else {
				u.ClearConflictReason()
			}
			if asset.ConflictPayload != nil {
				u.SetConflictPayload(asset.ConflictPayload)
			} else {
				u.ClearConflictPayload()
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("写入照片资产 (tenant=%d, key=%s) 失败: %w", asset.TenantID, asset.StorageKey, err)
	}
	return nil
}

func (r *entPhotoAssetRepository) Update(ctx context.Context, asset *model.PhotoAsset) error {
	update := r.client.PhotoAsset.UpdateOneID(asset.ID).
		SetPhotoID(asset.PhotoID).
		SetStorageProvider(asset.StorageProvider).
		SetManifestVersion(asset.ManifestVersion).
		SetManifest(asset.Manifest).
		SetSyncStatus(string(asset.SyncStatus)).
		SetSyncedAt(asset.SyncedAt)

	if asset.Size != nil {
		update.SetSize(*asset.Size)
	} else {
		update.ClearSize()
	}
	if asset.ETag != nil {
		update.SetEtag(*asset.ETag)
	} else {
		update.ClearEtag()
	}
	if asset.LastModified != nil {
		update.SetLastModified(*asset.LastModified)
	} else {
		update.ClearLastModified()
	}
	if asset.MetadataHash != nil {
		update.SetMetadataHash(*asset.MetadataHash)
	} else {
		update.ClearMetadataHash()
	}
	if asset.ConflictReason != nil {
		update.SetConflictReason(*asset.ConflictReason)
	} else {
		update.ClearConflictReason()
	}
	if asset.ConflictPayload != nil {
		update.SetConflictPayload(asset.ConflictPayload)
	} else {
		update.ClearConflictPayload()
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新照片资产 %d 失败: %w", asset.ID, err)
	}
	return nil
}

func (r *entPhotoAssetRepository) Delete(ctx context.Context, tenantID, id uint) error {
	affected, err := r.client.PhotoAsset.Delete().
		Where(
			photoasset.IDEQ(id),
			photoasset.TenantIDEQ(tenantID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除照片资产 %d 失败: %w", id, err)
	}
	if affected == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// mapEntPhotoAssetToDomain 将 Ent 实体转换为领域模型
func mapEntPhotoAssetToDomain(row *ent.PhotoAsset) *model.PhotoAsset {
	return &model.PhotoAsset{
		ID:              row.ID,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		TenantID:        row.TenantID,
		PhotoID:         row.PhotoID,
		StorageKey:      row.StorageKey,
		StorageProvider: row.StorageProvider,
		Size:            row.Size,
		ETag:            row.Etag,
		LastModified:    row.LastModified,
		MetadataHash:    row.MetadataHash,
		ManifestVersion: row.ManifestVersion,
		Manifest:        row.Manifest,
		SyncStatus:      constant.SyncStatus(row.SyncStatus),
		ConflictReason:  row.ConflictReason,
		ConflictPayload: row.ConflictPayload,
		SyncedAt:        row.SyncedAt,
	}
}
