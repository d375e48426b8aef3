/*
 * @Description: 冲突裁决：prefer-storage / prefer-database 两种策略
 * @Author: 安知鱼
 * @Date: 2025-08-24 10:18:33
 * @LastEditTime: 2025-09-01 17:02:51
 * @LastEditors: 安知鱼
 */
package datasync

import (
	"context"
	"fmt"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/builder"
)

// ResolveConflict 按指定策略裁决单条冲突记录，返回实际（或预演）执行的动作。
func (s *Service) ResolveConflict(ctx context.Context, tenantID uint, publicID string, opts model.ResolveConflictOptions) (*model.DataSyncAction, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypePhotoAsset {
		return nil, constant.ErrNotFound
	}

	record, err := s.assetRepo.FindByID(ctx, tenantID, dbID)
	if err != nil {
		return nil, err
	}

	if record.SyncStatus != constant.SyncStatusConflict {
		return nil, constant.ErrRecordNotInConflict
	}
	if record.ConflictPayload == nil {
		return nil, constant.ErrConflictPayloadMissing
	}

	if opts.Strategy == model.ResolutionPreferStorage {
		return s.resolveByStorage(ctx, tenantID, record, opts)
	}
	return s.resolveByDatabase(ctx, record, opts)
}

// resolveByStorage 以存储端为准：孤儿记录删除，元数据漂移则重建清单。
// 重建需要完整的处理管线，所以该策略强制要求 builderConfig。
func (s *Service) resolveByStorage(ctx context.Context, tenantID uint, record *model.PhotoAsset, opts model.ResolveConflictOptions) (*model.DataSyncAction, error) {
	if opts.BuilderConfig == nil {
		return nil, fmt.Errorf("%w: prefer-storage 策略需要 builderConfig", constant.ErrBadRequest)
	}

	effectiveCfg := *opts.BuilderConfig
	if opts.StorageConfig != nil {
		effectiveCfg.Storage = *opts.StorageConfig
	}
	processor, lister, err := s.builderFactory(&effectiveCfg)
	if err != nil {
		return nil, err
	}

	recordSnapshot := createRecordSnapshot(record)
	photoID := record.PhotoID

	switch record.ConflictPayload.Type {
	case constant.ConflictTypeMissingInStorage:
		if opts.DryRun {
			return &model.DataSyncAction{
				Type:       model.SyncActionDelete,
				StorageKey: record.StorageKey,
				PhotoID:    &photoID,
				Applied:    false,
				Resolution: model.ResolutionPreferStorage,
				Reason:     reasonPreviewDelete,
				Snapshots:  &model.DataSyncActionSnapshots{Before: recordSnapshot},
			}, nil
		}

		if err := s.assetRepo.Delete(ctx, tenantID, record.ID); err != nil {
			return nil, err
		}
		return &model.DataSyncAction{
			Type:       model.SyncActionDelete,
			StorageKey: record.StorageKey,
			PhotoID:    &photoID,
			Applied:    true,
			Resolution: model.ResolutionPreferStorage,
			Reason:     reasonDeleted,
			Snapshots:  &model.DataSyncActionSnapshots{Before: recordSnapshot},
		}, nil

	case constant.ConflictTypeMetadataMismatch:
		// 预演也要确认对象还在，否则给出的预览结果没有意义
		objects, err := lister.ListImages(ctx)
		if err != nil {
			return nil, fmt.Errorf("列出存储对象失败: %w", err)
		}
		var target *model.StorageObject
		for i := range objects {
			if objects[i].Key == record.StorageKey {
				target = &objects[i]
				break
			}
		}
		if target == nil {
			return nil, constant.ErrStorageObjectGone
		}

		item := s.safeProcessStorageObject(ctx, processor, *target, builder.ProcessOptions{
			Existing: record.Manifest.Data,
		})
		if item == nil {
			return nil, constant.ErrManifestRebuildFailed
		}

		storageSnapshot := createStorageSnapshot(*target)
		if !opts.DryRun {
			record.PhotoID = item.ID
			record.StorageProvider = string(effectiveCfg.Storage.Provider)
			record.Size = storageSnapshot.Size
			record.ETag = storageSnapshot.ETag
			record.LastModified = storageSnapshot.LastModified
			record.MetadataHash = storageSnapshot.MetadataHash
			record.ManifestVersion = constant.CurrentManifestVersion
			record.Manifest = model.PhotoAssetManifest{
				Version: constant.CurrentManifestVersion,
				Data:    item,
			}
			record.SyncStatus = constant.SyncStatusSynced
			record.ConflictReason = nil
			record.ConflictPayload = nil
			record.SyncedAt = time.Now()
			if err := s.assetRepo.Update(ctx, record); err != nil {
				return nil, err
			}
		}

		newPhotoID := item.ID
		return &model.DataSyncAction{
			Type:       model.SyncActionUpdate,
			StorageKey: record.StorageKey,
			PhotoID:    &newPhotoID,
			Applied:    !opts.DryRun,
			Resolution: model.ResolutionPreferStorage,
			Reason:     reasonUpdatedFromStorage,
			Snapshots: &model.DataSyncActionSnapshots{
				Before: recordSnapshot,
				After:  storageSnapshot,
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: 未知的冲突类型 %q", constant.ErrBadRequest, record.ConflictPayload.Type)
	}
}

// resolveByDatabase 以数据库为准：保留现有清单。
// 孤儿记录降级为 database-only，元数据漂移按冲突时保存的存储快照封账。
func (s *Service) resolveByDatabase(ctx context.Context, record *model.PhotoAsset, opts model.ResolveConflictOptions) (*model.DataSyncAction, error) {
	recordSnapshot := createRecordSnapshot(record)
	photoID := record.PhotoID

	switch record.ConflictPayload.Type {
	case constant.ConflictTypeMissingInStorage:
		if opts.DryRun {
			return &model.DataSyncAction{
				Type:       model.SyncActionUpdate,
				StorageKey: record.StorageKey,
				PhotoID:    &photoID,
				Applied:    false,
				Resolution: model.ResolutionPreferDatabase,
				Reason:     reasonPreviewRetain,
				Snapshots:  &model.DataSyncActionSnapshots{Before: recordSnapshot},
			}, nil
		}

		record.StorageProvider = constant.ProviderDatabaseOnly
		record.SyncStatus = constant.SyncStatusSynced
		record.ConflictReason = nil
		record.ConflictPayload = nil
		record.SyncedAt = time.Now()
		if err := s.assetRepo.Update(ctx, record); err != nil {
			return nil, err
		}
		return &model.DataSyncAction{
			Type:       model.SyncActionUpdate,
			StorageKey: record.StorageKey,
			PhotoID:    &photoID,
			Applied:    true,
			Resolution: model.ResolutionPreferDatabase,
			Reason:     reasonDatabaseOnly,
			Snapshots:  &model.DataSyncActionSnapshots{Before: recordSnapshot},
		}, nil

	case constant.ConflictTypeMetadataMismatch:
		storageSnapshot := record.ConflictPayload.StorageSnapshot
		if storageSnapshot == nil {
			return nil, fmt.Errorf("%w: 冲突负载缺少存储快照，无法以数据库为准裁决", constant.ErrConflict)
		}

		if !opts.DryRun {
			record.Size = storageSnapshot.Size
			record.ETag = storageSnapshot.ETag
			record.LastModified = storageSnapshot.LastModified
			record.MetadataHash = storageSnapshot.MetadataHash
			record.SyncStatus = constant.SyncStatusSynced
			record.ConflictReason = nil
			record.ConflictPayload = nil
			record.SyncedAt = time.Now()
			if err := s.assetRepo.Update(ctx, record); err != nil {
				return nil, err
			}
		}

		return &model.DataSyncAction{
			Type:       model.SyncActionUpdate,
			StorageKey: record.StorageKey,
			PhotoID:    &photoID,
			Applied:    !opts.DryRun,
			Resolution: model.ResolutionPreferDatabase,
			Reason:     reasonResolvedFavorDatabase,
			Snapshots: &model.DataSyncActionSnapshots{
				Before: recordSnapshot,
				After:  storageSnapshot,
			},
		}, nil

	default:
		return nil, fmt.Errorf("%w: 未知的冲突类型 %q", constant.ErrBadRequest, record.ConflictPayload.Type)
	}
}
