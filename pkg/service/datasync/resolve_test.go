package datasync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
)

func publicAssetID(t *testing.T, dbID uint) string {
	t.Helper()
	id, err := idgen.GeneratePublicID(dbID, idgen.EntityTypePhotoAsset)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}
	return id
}

func seedMissingInStorageConflict(repo *fakeAssetRepo) *model.PhotoAsset {
	reason := "Storage object missing in provider."
	return repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/gone.jpg",
		StorageProvider: "local",
		Size:            int64Ptr(100),
		ETag:            strPtr("e1"),
		LastModified:    strPtr("2025-08-01T10:00:00Z"),
		MetadataHash:    strPtr("e1::100::2025-08-01T10:00:00Z"),
		SyncStatus:      constant.SyncStatusConflict,
		ConflictReason:  &reason,
		ConflictPayload: &model.ConflictPayload{
			Type: constant.ConflictTypeMissingInStorage,
			RecordSnapshot: &model.SyncObjectSnapshot{
				Size:         int64Ptr(100),
				ETag:         strPtr("e1"),
				LastModified: strPtr("2025-08-01T10:00:00Z"),
				MetadataHash: strPtr("e1::100::2025-08-01T10:00:00Z"),
			},
		},
	})
}

func seedMetadataMismatchConflict(repo *fakeAssetRepo) *model.PhotoAsset {
	reason := "Storage metadata differs from database manifest."
	return repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/a.jpg",
		StorageProvider: "local",
		Size:            int64Ptr(100),
		ETag:            strPtr("old"),
		LastModified:    strPtr("2025-07-01T10:00:00Z"),
		MetadataHash:    strPtr("old::100::2025-07-01T10:00:00Z"),
		ManifestVersion: constant.CurrentManifestVersion,
		Manifest: model.PhotoAssetManifest{
			Version: constant.CurrentManifestVersion,
			Data:    &model.PhotoManifestItem{ID: "photo-stable-id", Title: "已有标题"},
		},
		SyncStatus:     constant.SyncStatusConflict,
		ConflictReason: &reason,
		ConflictPayload: &model.ConflictPayload{
			Type: constant.ConflictTypeMetadataMismatch,
			StorageSnapshot: &model.SyncObjectSnapshot{
				Size:         int64Ptr(200),
				ETag:         strPtr("new"),
				LastModified: strPtr("2025-08-01T10:00:00Z"),
				MetadataHash: strPtr("new::200::2025-08-01T10:00:00Z"),
			},
			RecordSnapshot: &model.SyncObjectSnapshot{
				Size:         int64Ptr(100),
				ETag:         strPtr("old"),
				LastModified: strPtr("2025-07-01T10:00:00Z"),
				MetadataHash: strPtr("old::100::2025-07-01T10:00:00Z"),
			},
		},
	})
}

func TestResolveConflict_入参校验(t *testing.T) {
	repo := newFakeAssetRepo()
	svc, _ := newTestService(repo, &fakeProcessor{}, &fakeLister{})
	ctx := context.Background()

	t.Run("无法解码的ID返回未找到", func(t *testing.T) {
		_, err := svc.ResolveConflict(ctx, 1, "!!!", model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("err = %v, 期望 ErrNotFound", err)
		}
	})

	t.Run("实体类型不匹配返回未找到", func(t *testing.T) {
		tenantID, _ := idgen.GeneratePublicID(1, idgen.EntityTypeTenant)
		_, err := svc.ResolveConflict(ctx, 1, tenantID, model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("err = %v, 期望 ErrNotFound", err)
		}
	})

	t.Run("跨租户访问返回未找到", func(t *testing.T) {
		record := seedMissingInStorageConflict(repo)
		_, err := svc.ResolveConflict(ctx, 99, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("err = %v, 期望 ErrNotFound", err)
		}
	})

	t.Run("非冲突状态的记录拒绝裁决", func(t *testing.T) {
		record := repo.add(&model.PhotoAsset{
			TenantID:   1,
			PhotoID:    "photo-ok",
			StorageKey: "photos/ok.jpg",
			SyncStatus: constant.SyncStatusSynced,
		})
		_, err := svc.ResolveConflict(ctx, 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if !errors.Is(err, constant.ErrRecordNotInConflict) {
			t.Errorf("err = %v, 期望 ErrRecordNotInConflict", err)
		}
	})

	t.Run("缺少冲突负载拒绝裁决", func(t *testing.T) {
		record := repo.add(&model.PhotoAsset{
			TenantID:   1,
			PhotoID:    "photo-broken",
			StorageKey: "photos/broken.jpg",
			SyncStatus: constant.SyncStatusConflict,
		})
		_, err := svc.ResolveConflict(ctx, 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if !errors.Is(err, constant.ErrConflictPayloadMissing) {
			t.Errorf("err = %v, 期望 ErrConflictPayloadMissing", err)
		}
	})

	t.Run("prefer-storage缺少builderConfig", func(t *testing.T) {
		record := seedMissingInStorageConflict(repo)
		_, err := svc.ResolveConflict(ctx, 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferStorage,
		})
		if !errors.Is(err, constant.ErrBadRequest) {
			t.Errorf("err = %v, 期望 ErrBadRequest", err)
		}
	})
}

func TestResolveConflict_PreferStorage_存储缺失(t *testing.T) {
	t.Run("实际执行删除记录", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMissingInStorageConflict(repo)
		svc, cfg := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy:      model.ResolutionPreferStorage,
			BuilderConfig: cfg,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		if repo.deletes != 1 || repo.findByKey(1, "photos/gone.jpg") != nil {
			t.Error("期望记录被删除")
		}
		if action.Type != model.SyncActionDelete || !action.Applied {
			t.Errorf("action = %+v, 期望已应用的 delete", action)
		}
		if action.Resolution != model.ResolutionPreferStorage {
			t.Errorf("Resolution = %s", action.Resolution)
		}
		if action.Reason != "Removed database record to align with storage." {
			t.Errorf("Reason = %q", action.Reason)
		}
		if action.Snapshots == nil || action.Snapshots.Before == nil {
			t.Error("期望动作携带 before 快照")
		}
	})

	t.Run("预演模式只出报告", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMissingInStorageConflict(repo)
		svc, cfg := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy:      model.ResolutionPreferStorage,
			BuilderConfig: cfg,
			DryRun:        true,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		if repo.deletes != 0 || repo.findByKey(1, "photos/gone.jpg") == nil {
			t.Error("预演模式不应删除记录")
		}
		if action.Applied {
			t.Error("预演动作不应标记为已应用")
		}
		if action.Reason != "Preview - would remove database record to match storage." {
			t.Errorf("Reason = %q", action.Reason)
		}
	})
}

func TestResolveConflict_PreferStorage_元数据漂移(t *testing.T) {
	modified := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	t.Run("重建清单并封账", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMetadataMismatchConflict(repo)
		proc := &fakeProcessor{}
		lister := &fakeLister{
			images: []model.StorageObject{storageObject("photos/a.jpg", "new", 200, modified)},
		}
		svc, cfg := newTestService(repo, proc, lister)

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy:      model.ResolutionPreferStorage,
			BuilderConfig: cfg,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		// 已有清单条目作为提示传入，稳定 ID 得以保留
		if proc.lastOpts.Existing == nil || proc.lastOpts.Existing.ID != "photo-stable-id" {
			t.Errorf("Existing = %+v, 期望传入已有清单条目", proc.lastOpts.Existing)
		}

		updated := repo.findByKey(1, "photos/a.jpg")
		if updated.SyncStatus != constant.SyncStatusSynced {
			t.Errorf("SyncStatus = %s, 期望 synced", updated.SyncStatus)
		}
		if updated.PhotoID != "photo-stable-id" {
			t.Errorf("PhotoID = %s, 期望沿用稳定ID", updated.PhotoID)
		}
		if updated.ETag == nil || *updated.ETag != "new" {
			t.Errorf("ETag = %v, 期望存储端新值", updated.ETag)
		}
		if updated.ConflictReason != nil || updated.ConflictPayload != nil {
			t.Error("裁决后应清空冲突上下文")
		}

		if action.Type != model.SyncActionUpdate || !action.Applied {
			t.Errorf("action = %+v", action)
		}
		if action.Reason != "Updated record using latest storage metadata." {
			t.Errorf("Reason = %q", action.Reason)
		}
	})

	t.Run("对象已消失返回冲突错误", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMetadataMismatchConflict(repo)
		svc, cfg := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		_, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy:      model.ResolutionPreferStorage,
			BuilderConfig: cfg,
		})
		if !errors.Is(err, constant.ErrStorageObjectGone) {
			t.Errorf("err = %v, 期望 ErrStorageObjectGone", err)
		}
	})

	t.Run("重新处理失败返回冲突错误", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMetadataMismatchConflict(repo)
		proc := &fakeProcessor{failKeys: map[string]bool{"photos/a.jpg": true}}
		lister := &fakeLister{
			images: []model.StorageObject{storageObject("photos/a.jpg", "new", 200, modified)},
		}
		svc, cfg := newTestService(repo, proc, lister)

		_, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy:      model.ResolutionPreferStorage,
			BuilderConfig: cfg,
		})
		if !errors.Is(err, constant.ErrManifestRebuildFailed) {
			t.Errorf("err = %v, 期望 ErrManifestRebuildFailed", err)
		}
	})

	t.Run("预演模式仍校验存储端但不写库", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMetadataMismatchConflict(repo)
		proc := &fakeProcessor{}
		lister := &fakeLister{
			images: []model.StorageObject{storageObject("photos/a.jpg", "new", 200, modified)},
		}
		svc, cfg := newTestService(repo, proc, lister)

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy:      model.ResolutionPreferStorage,
			BuilderConfig: cfg,
			DryRun:        true,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		if proc.calls != 1 {
			t.Errorf("预演模式仍应尝试重建清单, calls = %d", proc.calls)
		}
		if repo.updates != 0 {
			t.Errorf("updates = %d, 预演模式不应写库", repo.updates)
		}
		if action.Applied {
			t.Error("预演动作不应标记为已应用")
		}

		unchanged := repo.findByKey(1, "photos/a.jpg")
		if unchanged.SyncStatus != constant.SyncStatusConflict {
			t.Errorf("SyncStatus = %s, 预演后应保持 conflict", unchanged.SyncStatus)
		}
	})
}

func TestResolveConflict_PreferDatabase_存储缺失(t *testing.T) {
	t.Run("降级为database-only", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMissingInStorageConflict(repo)
		svc, _ := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		updated := repo.findByKey(1, "photos/gone.jpg")
		if updated.StorageProvider != constant.ProviderDatabaseOnly {
			t.Errorf("StorageProvider = %s, 期望 database-only", updated.StorageProvider)
		}
		if updated.SyncStatus != constant.SyncStatusSynced {
			t.Errorf("SyncStatus = %s, 期望 synced", updated.SyncStatus)
		}
		if updated.ConflictReason != nil || updated.ConflictPayload != nil {
			t.Error("裁决后应清空冲突上下文")
		}

		if action.Type != model.SyncActionUpdate || !action.Applied {
			t.Errorf("action = %+v", action)
		}
		if action.Reason != "Marked record as database-only after missing storage reconciliation." {
			t.Errorf("Reason = %q", action.Reason)
		}
	})

	t.Run("预演模式保留原状", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMissingInStorageConflict(repo)
		svc, _ := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
			DryRun:   true,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		if repo.updates != 0 {
			t.Error("预演模式不应写库")
		}
		if action.Applied {
			t.Error("预演动作不应标记为已应用")
		}
		if action.Reason != "Preview - would retain database record despite missing storage." {
			t.Errorf("Reason = %q", action.Reason)
		}
	})
}

func TestResolveConflict_PreferDatabase_元数据漂移(t *testing.T) {
	t.Run("按冲突时保存的存储快照封账", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMetadataMismatchConflict(repo)
		svc, _ := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		action, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if err != nil {
			t.Fatalf("ResolveConflict() 出错: %v", err)
		}

		updated := repo.findByKey(1, "photos/a.jpg")
		if updated.ETag == nil || *updated.ETag != "new" {
			t.Errorf("ETag = %v, 期望采用冲突时保存的存储快照", updated.ETag)
		}
		if updated.MetadataHash == nil || *updated.MetadataHash != "new::200::2025-08-01T10:00:00Z" {
			t.Errorf("MetadataHash = %v", updated.MetadataHash)
		}
		if updated.SyncStatus != constant.SyncStatusSynced {
			t.Errorf("SyncStatus = %s, 期望 synced", updated.SyncStatus)
		}
		// 清单本身保持数据库中的版本
		if updated.Manifest.Data == nil || updated.Manifest.Data.ID != "photo-stable-id" {
			t.Errorf("Manifest.Data = %+v, 期望保留数据库清单", updated.Manifest.Data)
		}

		if action.Reason != "Marked conflict as resolved in favor of database manifest." {
			t.Errorf("Reason = %q", action.Reason)
		}
		if action.Snapshots == nil || action.Snapshots.After == nil {
			t.Error("期望动作携带 after 快照")
		}
	})

	t.Run("负载缺少存储快照返回冲突错误", func(t *testing.T) {
		repo := newFakeAssetRepo()
		record := seedMetadataMismatchConflict(repo)
		record.ConflictPayload.StorageSnapshot = nil
		svc, _ := newTestService(repo, &fakeProcessor{}, &fakeLister{})

		_, err := svc.ResolveConflict(context.Background(), 1, publicAssetID(t, record.ID), model.ResolveConflictOptions{
			Strategy: model.ResolutionPreferDatabase,
		})
		if !errors.Is(err, constant.ErrConflict) {
			t.Errorf("err = %v, 期望 ErrConflict", err)
		}
	})
}
