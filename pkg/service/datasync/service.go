/*
 * @Description: 数据同步服务：存储端与数据库的对账引擎
 * @Author: 安知鱼
 * @Date: 2025-08-23 06:35:42
 * @LastEditTime: 2025-09-01 16:40:12
 * @LastEditors: 安知鱼
 */
package datasync

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/repository"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/builder"
)

// 动作说明文案，随同步报告对外返回
const (
	reasonMissingInStorage      = "Storage object missing in provider."
	reasonMetadataMismatch      = "Storage metadata differs from database manifest."
	reasonStatusHealed          = "Marked as synced to reflect matching metadata."
	reasonPreviewInsert         = "Preview - new storage object would be imported."
	reasonInsertFailed          = "Failed to generate manifest for new storage object."
	reasonPreviewDelete         = "Preview - would remove database record to match storage."
	reasonDeleted               = "Removed database record to align with storage."
	reasonUpdatedFromStorage    = "Updated record using latest storage metadata."
	reasonPreviewRetain         = "Preview - would retain database record despite missing storage."
	reasonDatabaseOnly          = "Marked record as database-only after missing storage reconciliation."
	reasonResolvedFavorDatabase = "Marked conflict as resolved in favor of database manifest."
)

// PhotoProcessor 是同步服务对照片处理管线的依赖。
type PhotoProcessor interface {
	ProcessStorageObject(ctx context.Context, obj model.StorageObject, opts builder.ProcessOptions) (*model.PhotoManifestItem, error)
}

// StorageLister 是同步服务对存储列表能力的依赖。
type StorageLister interface {
	ListImages(ctx context.Context) ([]model.StorageObject, error)
	ListAllFiles(ctx context.Context) ([]model.StorageObject, error)
	DetectLivePhotos(objects []model.StorageObject) map[string]model.StorageObject
}

// BuilderFactory 按管线配置构造处理管线及其存储列表器。
// 注入点，测试时可替换为假实现。
type BuilderFactory func(cfg *model.BuilderConfig) (PhotoProcessor, StorageLister, error)

func defaultBuilderFactory(cfg *model.BuilderConfig) (PhotoProcessor, StorageLister, error) {
	svc, err := builder.NewService(cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, svc.StorageManager(), nil
}

// Service 实现了存储端与数据库之间的对账。
// 一次同步在单个请求内顺序执行完毕，没有后台任务；
// 每条数据库写入独立提交，半途失败留下的状态在下次全量对账时自动收敛。
type Service struct {
	assetRepo      repository.PhotoAssetRepository
	builderFactory BuilderFactory
}

// NewService 创建数据同步服务。
func NewService(assetRepo repository.PhotoAssetRepository) *Service {
	return &Service{
		assetRepo:      assetRepo,
		builderFactory: defaultBuilderFactory,
	}
}

// NewServiceWithFactory 创建数据同步服务并指定管线工厂。
func NewServiceWithFactory(assetRepo repository.PhotoAssetRepository, factory BuilderFactory) *Service {
	return &Service{
		assetRepo:      assetRepo,
		builderFactory: factory,
	}
}

// conflictCandidate 是元数据指纹不一致的 记录/存储对象 对。
type conflictCandidate struct {
	record          *model.PhotoAsset
	storageObject   model.StorageObject
	storageSnapshot *model.SyncObjectSnapshot
	recordSnapshot  *model.SyncObjectSnapshot
}

// statusReconciliationEntry 是指纹一致但状态未标记为 synced 的记录。
type statusReconciliationEntry struct {
	record          *model.PhotoAsset
	storageSnapshot *model.SyncObjectSnapshot
}

// syncPreparation 是一次同步运行的完整上下文：
// 四个分桶互不相交，并集加上已一致的记录覆盖全部存储对象与数据库记录。
type syncPreparation struct {
	tenantID          uint
	processor         PhotoProcessor
	lister            StorageLister
	effectiveProvider string

	storageObjects []model.StorageObject
	records        []*model.PhotoAsset
	storageByKey   map[string]model.StorageObject
	recordByKey    map[string]*model.PhotoAsset

	missingInDb          []model.StorageObject
	orphanInDb           []*model.PhotoAsset
	conflictCandidates   []conflictCandidate
	statusReconciliation []statusReconciliationEntry

	livePhotoMap      map[string]model.StorageObject
	livePhotoComputed bool
}

// RunSync 执行一次完整的对账运行并返回报告。
func (s *Service) RunSync(ctx context.Context, tenantID uint, opts model.DataSyncOptions) (*model.DataSyncResult, error) {
	prep, err := s.prepareSyncContext(ctx, tenantID, opts)
	if err != nil {
		return nil, err
	}

	summary := model.DataSyncSummary{
		StorageObjects:  len(prep.storageObjects),
		DatabaseRecords: len(prep.records),
	}
	actions := make([]model.DataSyncAction, 0)

	log.Printf("【SYNC START】租户 %d: 存储对象 %d 个, 数据库记录 %d 条, 新增 %d, 孤儿 %d, 元数据冲突 %d, 状态修复 %d (dryRun=%v)",
		tenantID, len(prep.storageObjects), len(prep.records),
		len(prep.missingInDb), len(prep.orphanInDb), len(prep.conflictCandidates), len(prep.statusReconciliation), opts.DryRun)

	if err := s.handleNewStorageObjects(ctx, prep, &summary, &actions, opts.DryRun); err != nil {
		return nil, err
	}
	if err := s.handleOrphanRecords(ctx, prep, &summary, &actions, opts.DryRun); err != nil {
		return nil, err
	}
	if err := s.handleMetadataConflicts(ctx, prep, &summary, &actions, opts.DryRun); err != nil {
		return nil, err
	}
	if err := s.handleStatusReconciliation(ctx, prep, &summary, &actions, opts.DryRun); err != nil {
		return nil, err
	}

	log.Printf("【SYNC DONE】租户 %d: inserted=%d updated=%d deleted=%d conflicts=%d skipped=%d",
		tenantID, summary.Inserted, summary.Updated, summary.Deleted, summary.Conflicts, summary.Skipped)

	return &model.DataSyncResult{
		Summary: summary,
		Actions: actions,
	}, nil
}

// prepareSyncContext 列出存储对象与数据库记录，并完成四分桶划分。
func (s *Service) prepareSyncContext(ctx context.Context, tenantID uint, opts model.DataSyncOptions) (*syncPreparation, error) {
	if opts.BuilderConfig == nil {
		return nil, fmt.Errorf("%w: 缺少 builderConfig", constant.ErrBadRequest)
	}

	// storageConfig 覆盖列表与处理两侧使用的存储后端
	effectiveCfg := *opts.BuilderConfig
	if opts.StorageConfig != nil {
		effectiveCfg.Storage = *opts.StorageConfig
	}

	processor, lister, err := s.builderFactory(&effectiveCfg)
	if err != nil {
		return nil, err
	}

	storageObjects, err := lister.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("列出存储对象失败: %w", err)
	}

	records, err := s.assetRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	storageByKey := make(map[string]model.StorageObject, len(storageObjects))
	for _, obj := range storageObjects {
		storageByKey[obj.Key] = obj
	}
	recordByKey := make(map[string]*model.PhotoAsset, len(records))
	for _, record := range records {
		recordByKey[record.StorageKey] = record
	}

	var missingInDb []model.StorageObject
	for _, obj := range storageObjects {
		if _, ok := recordByKey[obj.Key]; !ok {
			missingInDb = append(missingInDb, obj)
		}
	}

	var orphanInDb []*model.PhotoAsset
	var conflictCandidates []conflictCandidate
	var statusReconciliation []statusReconciliationEntry

	for _, record := range records {
		obj, ok := storageByKey[record.StorageKey]
		if !ok {
			// database-only 记录刻意不对应存储对象，永远不算孤儿
			if !record.IsDatabaseOnly() {
				orphanInDb = append(orphanInDb, record)
			}
			continue
		}

		storageSnapshot := createStorageSnapshot(obj)
		recordSnapshot := createRecordSnapshot(record)

		if !hashesMatch(storageSnapshot.MetadataHash, recordSnapshot.MetadataHash) {
			conflictCandidates = append(conflictCandidates, conflictCandidate{
				record:          record,
				storageObject:   obj,
				storageSnapshot: storageSnapshot,
				recordSnapshot:  recordSnapshot,
			})
			continue
		}

		if record.SyncStatus != constant.SyncStatusSynced {
			statusReconciliation = append(statusReconciliation, statusReconciliationEntry{
				record:          record,
				storageSnapshot: storageSnapshot,
			})
		}
	}

	return &syncPreparation{
		tenantID:             tenantID,
		processor:            processor,
		lister:               lister,
		effectiveProvider:    string(effectiveCfg.Storage.Provider),
		storageObjects:       storageObjects,
		records:              records,
		storageByKey:         storageByKey,
		recordByKey:          recordByKey,
		missingInDb:          missingInDb,
		orphanInDb:           orphanInDb,
		conflictCandidates:   conflictCandidates,
		statusReconciliation: statusReconciliation,
	}, nil
}

// ensureLivePhotoMap 为整批新对象惰性计算一次实况照片配对。
// 预演模式不触发全量文件列表。
func (s *Service) ensureLivePhotoMap(ctx context.Context, prep *syncPreparation, dryRun bool) (map[string]model.StorageObject, error) {
	if dryRun || len(prep.missingInDb) == 0 {
		return nil, nil
	}
	if prep.livePhotoComputed {
		return prep.livePhotoMap, nil
	}

	allObjects, err := prep.lister.ListAllFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("列出全量文件失败: %w", err)
	}
	prep.livePhotoMap = prep.lister.DetectLivePhotos(allObjects)
	prep.livePhotoComputed = true
	return prep.livePhotoMap, nil
}

// handleNewStorageObjects 导入存储端新增的对象。
// 单个对象处理失败只降级为 conflict 动作，不写库，也不中断整批。
func (s *Service) handleNewStorageObjects(ctx context.Context, prep *syncPreparation, summary *model.DataSyncSummary, actions *[]model.DataSyncAction, dryRun bool) error {
	if len(prep.missingInDb) == 0 {
		return nil
	}

	livePhotoMap, err := s.ensureLivePhotoMap(ctx, prep, dryRun)
	if err != nil {
		return err
	}

	for _, obj := range prep.missingInDb {
		storageSnapshot := createStorageSnapshot(obj)

		if dryRun {
			summary.Inserted++
			*actions = append(*actions, model.DataSyncAction{
				Type:       model.SyncActionInsert,
				StorageKey: obj.Key,
				Applied:    false,
				Reason:     reasonPreviewInsert,
				Snapshots:  &model.DataSyncActionSnapshots{After: storageSnapshot},
			})
			continue
		}

		item := s.safeProcessStorageObject(ctx, prep.processor, obj, builder.ProcessOptions{
			LivePhotoMap: livePhotoMap,
		})
		if item == nil {
			summary.Conflicts++
			*actions = append(*actions, model.DataSyncAction{
				Type:       model.SyncActionConflict,
				StorageKey: obj.Key,
				Applied:    false,
				Reason:     reasonInsertFailed,
				Snapshots:  &model.DataSyncActionSnapshots{After: storageSnapshot},
			})
			continue
		}

		now := time.Now()
		asset := &model.PhotoAsset{
			TenantID:        prep.tenantID,
			PhotoID:         item.ID,
			StorageKey:      obj.Key,
			StorageProvider: prep.effectiveProvider,
			Size:            storageSnapshot.Size,
			ETag:            storageSnapshot.ETag,
			LastModified:    storageSnapshot.LastModified,
			MetadataHash:    storageSnapshot.MetadataHash,
			ManifestVersion: constant.CurrentManifestVersion,
			Manifest: model.PhotoAssetManifest{
				Version: constant.CurrentManifestVersion,
				Data:    item,
			},
			SyncStatus: constant.SyncStatusSynced,
			SyncedAt:   now,
		}
		if err := s.assetRepo.Upsert(ctx, asset); err != nil {
			return err
		}

		summary.Inserted++
		photoID := item.ID
		*actions = append(*actions, model.DataSyncAction{
			Type:       model.SyncActionInsert,
			StorageKey: obj.Key,
			PhotoID:    &photoID,
			Applied:    true,
			Snapshots:  &model.DataSyncActionSnapshots{After: storageSnapshot},
		})
	}
	return nil
}

// handleOrphanRecords 把存储端缺失的记录标记为冲突。
// 这一阶段永远不删行，删除只能通过显式裁决发生。
func (s *Service) handleOrphanRecords(ctx context.Context, prep *syncPreparation, summary *model.DataSyncSummary, actions *[]model.DataSyncAction, dryRun bool) error {
	for _, record := range prep.orphanInDb {
		recordSnapshot := createRecordSnapshot(record)
		summary.Conflicts++

		if !dryRun {
			reason := reasonMissingInStorage
			record.SyncStatus = constant.SyncStatusConflict
			record.ConflictReason = &reason
			record.ConflictPayload = &model.ConflictPayload{
				Type:           constant.ConflictTypeMissingInStorage,
				RecordSnapshot: recordSnapshot,
			}
			record.SyncedAt = time.Now()
			if err := s.assetRepo.Update(ctx, record); err != nil {
				return err
			}
		}

		photoID := record.PhotoID
		*actions = append(*actions, model.DataSyncAction{
			Type:       model.SyncActionConflict,
			StorageKey: record.StorageKey,
			PhotoID:    &photoID,
			Applied:    !dryRun,
			Reason:     reasonMissingInStorage,
			Snapshots:  &model.DataSyncActionSnapshots{Before: recordSnapshot},
		})
	}
	return nil
}

// handleMetadataConflicts 把元数据指纹不一致的记录标记为冲突。
func (s *Service) handleMetadataConflicts(ctx context.Context, prep *syncPreparation, summary *model.DataSyncSummary, actions *[]model.DataSyncAction, dryRun bool) error {
	for _, candidate := range prep.conflictCandidates {
		summary.Conflicts++

		if !dryRun {
			reason := reasonMetadataMismatch
			record := candidate.record
			record.SyncStatus = constant.SyncStatusConflict
			record.ConflictReason = &reason
			record.ConflictPayload = &model.ConflictPayload{
				Type:            constant.ConflictTypeMetadataMismatch,
				StorageSnapshot: candidate.storageSnapshot,
				RecordSnapshot:  candidate.recordSnapshot,
			}
			record.SyncedAt = time.Now()
			if err := s.assetRepo.Update(ctx, record); err != nil {
				return err
			}
		}

		photoID := candidate.record.PhotoID
		*actions = append(*actions, model.DataSyncAction{
			Type:       model.SyncActionConflict,
			StorageKey: candidate.storageObject.Key,
			PhotoID:    &photoID,
			Applied:    !dryRun,
			Reason:     reasonMetadataMismatch,
			Snapshots: &model.DataSyncActionSnapshots{
				Before: candidate.recordSnapshot,
				After:  candidate.storageSnapshot,
			},
		})
	}
	return nil
}

// handleStatusReconciliation 修复指纹一致但状态滞留的记录。
func (s *Service) handleStatusReconciliation(ctx context.Context, prep *syncPreparation, summary *model.DataSyncSummary, actions *[]model.DataSyncAction, dryRun bool) error {
	for _, entry := range prep.statusReconciliation {
		summary.Updated++
		before := createRecordSnapshot(entry.record)

		if !dryRun {
			record := entry.record
			record.Size = entry.storageSnapshot.Size
			record.ETag = entry.storageSnapshot.ETag
			record.LastModified = entry.storageSnapshot.LastModified
			record.MetadataHash = entry.storageSnapshot.MetadataHash
			record.SyncStatus = constant.SyncStatusSynced
			record.ConflictReason = nil
			record.ConflictPayload = nil
			record.SyncedAt = time.Now()
			if err := s.assetRepo.Update(ctx, record); err != nil {
				return err
			}
		}

		photoID := entry.record.PhotoID
		*actions = append(*actions, model.DataSyncAction{
			Type:       model.SyncActionUpdate,
			StorageKey: entry.record.StorageKey,
			PhotoID:    &photoID,
			Applied:    !dryRun,
			Reason:     reasonStatusHealed,
			Snapshots: &model.DataSyncActionSnapshots{
				Before: before,
				After:  entry.storageSnapshot,
			},
		})
	}
	return nil
}

// safeProcessStorageObject 调用处理管线，失败时返回 nil 而不是错误。
// 单个坏对象不允许中断整批对账。
func (s *Service) safeProcessStorageObject(ctx context.Context, processor PhotoProcessor, obj model.StorageObject, opts builder.ProcessOptions) *model.PhotoManifestItem {
	item, err := processor.ProcessStorageObject(ctx, obj, opts)
	if err != nil {
		log.Printf("【SYNC】警告: 处理存储对象 '%s' 失败: %v", obj.Key, err)
		return nil
	}
	return item
}

// ListConflicts 返回租户下全部冲突记录的 DTO 列表。
func (s *Service) ListConflicts(ctx context.Context, tenantID uint) ([]model.DataSyncConflict, error) {
	records, err := s.assetRepo.ListConflicts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	conflicts := make([]model.DataSyncConflict, 0, len(records))
	for _, record := range records {
		dto, err := mapRecordToConflict(record)
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, *dto)
	}
	return conflicts, nil
}

func mapRecordToConflict(record *model.PhotoAsset) (*model.DataSyncConflict, error) {
	publicID, err := idgen.GeneratePublicID(record.ID, idgen.EntityTypePhotoAsset)
	if err != nil {
		return nil, err
	}

	return &model.DataSyncConflict{
		ID:              publicID,
		StorageKey:      record.StorageKey,
		PhotoID:         record.PhotoID,
		Reason:          record.ConflictReason,
		Payload:         record.ConflictPayload,
		ManifestVersion: record.ManifestVersion,
		Manifest:        record.Manifest,
		StorageProvider: record.StorageProvider,
		SyncedAt:        record.SyncedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       record.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
