package ent

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/anzhiyu-c/afilmory-app/ent"
	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/repository"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// newTestRepo 在内存 SQLite 上建好表结构，返回仓储实例
func newTestRepo(t *testing.T) repository.PhotoAssetRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	// 内存库只允许单连接，否则新连接看到的是空库
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	// 资产表对租户有外键约束，先预置两个租户
	for _, slug := range []string{"tenant-a", "tenant-b"} {
		if _, err := client.Tenant.Create().SetName(slug).SetSlug(slug).Save(context.Background()); err != nil {
			t.Fatalf("预置租户 %s 失败: %v", slug, err)
		}
	}

	return NewPhotoAssetRepository(client)
}

func conflictedAsset(tenantID uint, key string) *model.PhotoAsset {
	reason := "Storage metadata differs from database manifest."
	etag := "old-etag"
	size := int64(100)
	hash := "old-etag::100::2025-08-01T10:00:00Z"
	return &model.PhotoAsset{
		TenantID:        tenantID,
		PhotoID:         "photo-" + key,
		StorageKey:      key,
		StorageProvider: "local",
		Size:            &size,
		ETag:            &etag,
		MetadataHash:    &hash,
		ManifestVersion: constant.CurrentManifestVersion,
		Manifest: model.PhotoAssetManifest{
			Version: constant.CurrentManifestVersion,
			Data:    &model.PhotoManifestItem{ID: "photo-" + key, Title: key},
		},
		SyncStatus:     constant.SyncStatusConflict,
		ConflictReason: &reason,
		ConflictPayload: &model.ConflictPayload{
			Type: constant.ConflictTypeMetadataMismatch,
		},
		SyncedAt: time.Now(),
	}
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("插入新记录", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.Upsert(ctx, conflictedAsset(1, "a.jpg")); err != nil {
			t.Fatalf("Upsert 失败: %v", err)
		}

		records, err := repo.ListByTenant(ctx, 1)
		if err != nil {
			t.Fatalf("ListByTenant 失败: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("记录数 = %d, 期望 1", len(records))
		}
		if records[0].ID == 0 {
			t.Error("期望分配主键")
		}
		if records[0].SyncStatus != constant.SyncStatusConflict {
			t.Errorf("SyncStatus = %s", records[0].SyncStatus)
		}
	})

	t.Run("覆盖冲突行时清空残留冲突字段", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.Upsert(ctx, conflictedAsset(1, "a.jpg")); err != nil {
			t.Fatalf("预置冲突记录失败: %v", err)
		}
		before, err := repo.ListByTenant(ctx, 1)
		if err != nil {
			t.Fatalf("ListByTenant 失败: %v", err)
		}

		etag := "new-etag"
		size := int64(200)
		hash := "new-etag::200::2025-08-02T10:00:00Z"
		synced := &model.PhotoAsset{
			TenantID:        1,
			PhotoID:         "photo-a.jpg",
			StorageKey:      "a.jpg",
			StorageProvider: "local",
			Size:            &size,
			ETag:            &etag,
			MetadataHash:    &hash,
			ManifestVersion: constant.CurrentManifestVersion,
			Manifest: model.PhotoAssetManifest{
				Version: constant.CurrentManifestVersion,
				Data:    &model.PhotoManifestItem{ID: "photo-a.jpg", Title: "a.jpg"},
			},
			SyncStatus: constant.SyncStatusSynced,
			SyncedAt:   time.Now(),
		}
		if err := repo.Upsert(ctx, synced); err != nil {
			t.Fatalf("覆盖写入失败: %v", err)
		}

		records, err := repo.ListByTenant(ctx, 1)
		if err != nil {
			t.Fatalf("ListByTenant 失败: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("记录数 = %d, 期望仍为 1", len(records))
		}
		got := records[0]
		if got.ID != before[0].ID {
			t.Errorf("主键变化: %d -> %d, 期望复用原行", before[0].ID, got.ID)
		}
		if got.SyncStatus != constant.SyncStatusSynced {
			t.Errorf("SyncStatus = %s, 期望 synced", got.SyncStatus)
		}
		if got.ConflictReason != nil {
			t.Errorf("ConflictReason = %q, 期望被清空", *got.ConflictReason)
		}
		if got.ConflictPayload != nil {
			t.Errorf("ConflictPayload = %+v, 期望被清空", got.ConflictPayload)
		}
		if got.ETag == nil || *got.ETag != "new-etag" {
			t.Errorf("ETag = %v, 期望 new-etag", got.ETag)
		}
		if got.MetadataHash == nil || *got.MetadataHash != hash {
			t.Errorf("MetadataHash = %v, 期望 %q", got.MetadataHash, hash)
		}
	})

	t.Run("覆盖时清空缺失的可空元数据列", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.Upsert(ctx, conflictedAsset(1, "a.jpg")); err != nil {
			t.Fatalf("预置记录失败: %v", err)
		}

		bare := conflictedAsset(1, "a.jpg")
		bare.Size = nil
		bare.ETag = nil
		bare.LastModified = nil
		bare.MetadataHash = nil
		bare.SyncStatus = constant.SyncStatusSynced
		bare.ConflictReason = nil
		bare.ConflictPayload = nil
		if err := repo.Upsert(ctx, bare); err != nil {
			t.Fatalf("覆盖写入失败: %v", err)
		}

		records, err := repo.ListByTenant(ctx, 1)
		if err != nil {
			t.Fatalf("ListByTenant 失败: %v", err)
		}
		got := records[0]
		if got.Size != nil || got.ETag != nil || got.MetadataHash != nil {
			t.Errorf("可空列未清空: size=%v etag=%v hash=%v", got.Size, got.ETag, got.MetadataHash)
		}
	})

	t.Run("不同租户同键互不覆盖", func(t *testing.T) {
		repo := newTestRepo(t)
		if err := repo.Upsert(ctx, conflictedAsset(1, "a.jpg")); err != nil {
			t.Fatalf("Upsert 失败: %v", err)
		}
		if err := repo.Upsert(ctx, conflictedAsset(2, "a.jpg")); err != nil {
			t.Fatalf("Upsert 失败: %v", err)
		}

		for _, tenantID := range []uint{1, 2} {
			records, err := repo.ListByTenant(ctx, tenantID)
			if err != nil {
				t.Fatalf("ListByTenant(%d) 失败: %v", tenantID, err)
			}
			if len(records) != 1 {
				t.Errorf("租户 %d 记录数 = %d, 期望 1", tenantID, len(records))
			}
		}
	})
}
