package datasync

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/builder"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeAssetRepo 是基于内存的照片资产仓储假实现
type fakeAssetRepo struct {
	nextID  uint
	records map[uint]*model.PhotoAsset
	upserts int
	updates int
	deletes int
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{
		nextID:  1,
		records: make(map[uint]*model.PhotoAsset),
	}
}

func (r *fakeAssetRepo) add(asset *model.PhotoAsset) *model.PhotoAsset {
	asset.ID = r.nextID
	r.nextID++
	r.records[asset.ID] = asset
	return asset
}

func (r *fakeAssetRepo) ListByTenant(ctx context.Context, tenantID uint) ([]*model.PhotoAsset, error) {
	var result []*model.PhotoAsset
	for id := uint(1); id < r.nextID; id++ {
		if record, ok := r.records[id]; ok && record.TenantID == tenantID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeAssetRepo) ListConflicts(ctx context.Context, tenantID uint) ([]*model.PhotoAsset, error) {
	var result []*model.PhotoAsset
	for id := uint(1); id < r.nextID; id++ {
		if record, ok := r.records[id]; ok && record.TenantID == tenantID && record.SyncStatus == constant.SyncStatusConflict {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeAssetRepo) FindByID(ctx context.Context, tenantID, id uint) (*model.PhotoAsset, error) {
	record, ok := r.records[id]
	if !ok || record.TenantID != tenantID {
		return nil, constant.ErrNotFound
	}
	return record, nil
}

func (r *fakeAssetRepo) Upsert(ctx context.Context, asset *model.PhotoAsset) error {
	r.upserts++
	for _, existing := range r.records {
		if existing.TenantID == asset.TenantID && existing.StorageKey == asset.StorageKey {
			asset.ID = existing.ID
			asset.CreatedAt = existing.CreatedAt
			asset.UpdatedAt = time.Now()
			r.records[existing.ID] = asset
			return nil
		}
	}
	asset.UpdatedAt = time.Now()
	r.add(asset)
	return nil
}

func (r *fakeAssetRepo) Update(ctx context.Context, asset *model.PhotoAsset) error {
	if _, ok := r.records[asset.ID]; !ok {
		return constant.ErrNotFound
	}
	r.updates++
	asset.UpdatedAt = time.Now()
	r.records[asset.ID] = asset
	return nil
}

func (r *fakeAssetRepo) Delete(ctx context.Context, tenantID, id uint) error {
	record, ok := r.records[id]
	if !ok || record.TenantID != tenantID {
		return constant.ErrNotFound
	}
	r.deletes++
	delete(r.records, id)
	return nil
}

func (r *fakeAssetRepo) findByKey(tenantID uint, key string) *model.PhotoAsset {
	for _, record := range r.records {
		if record.TenantID == tenantID && record.StorageKey == key {
			return record
		}
	}
	return nil
}

// fakeLister 是存储列表能力的假实现
type fakeLister struct {
	images       []model.StorageObject
	allFiles     []model.StorageObject
	livePairs    map[string]model.StorageObject
	imagesErr    error
	listAllCalls int
}

func (l *fakeLister) ListImages(ctx context.Context) ([]model.StorageObject, error) {
	return l.images, l.imagesErr
}

func (l *fakeLister) ListAllFiles(ctx context.Context) ([]model.StorageObject, error) {
	l.listAllCalls++
	return l.allFiles, nil
}

func (l *fakeLister) DetectLivePhotos(objects []model.StorageObject) map[string]model.StorageObject {
	return l.livePairs
}

// fakeProcessor 是照片处理管线的假实现
type fakeProcessor struct {
	failKeys map[string]bool
	lastOpts builder.ProcessOptions
	calls    int
}

func (p *fakeProcessor) ProcessStorageObject(ctx context.Context, obj model.StorageObject, opts builder.ProcessOptions) (*model.PhotoManifestItem, error) {
	p.calls++
	p.lastOpts = opts
	if p.failKeys[obj.Key] {
		return nil, errors.New("解码失败")
	}

	item := &model.PhotoManifestItem{
		ID:     "photo-" + obj.Key,
		Title:  obj.Key,
		Width:  100,
		Height: 80,
		Format: "jpg",
	}
	if opts.Existing != nil && opts.Existing.ID != "" {
		item.ID = opts.Existing.ID
	}
	if opts.LivePhotoMap != nil {
		if video, ok := opts.LivePhotoMap[obj.Key]; ok {
			item.IsLivePhoto = true
			item.LivePhotoVideoKey = video.Key
		}
	}
	return item, nil
}

func localBuilderConfig() *model.BuilderConfig {
	return &model.BuilderConfig{
		Storage: model.StorageConfig{
			Provider: constant.ProviderTypeLocal,
			Local:    &model.LocalStorageConfig{BasePath: "/data/photos"},
		},
	}
}

func newTestService(repo *fakeAssetRepo, proc *fakeProcessor, lister *fakeLister) (*Service, *model.BuilderConfig) {
	factory := func(cfg *model.BuilderConfig) (PhotoProcessor, StorageLister, error) {
		return proc, lister, nil
	}
	return NewServiceWithFactory(repo, factory), localBuilderConfig()
}

func storageObject(key, etag string, size int64, modified time.Time) model.StorageObject {
	return model.StorageObject{
		Key:          key,
		ETag:         &etag,
		Size:         &size,
		LastModified: &modified,
	}
}

func TestRunSync_缺少BuilderConfig(t *testing.T) {
	svc, _ := newTestService(newFakeAssetRepo(), &fakeProcessor{}, &fakeLister{})

	_, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{})
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Fatalf("err = %v, 期望 ErrBadRequest", err)
	}
}

func TestRunSync_新增对象导入(t *testing.T) {
	repo := newFakeAssetRepo()
	proc := &fakeProcessor{}
	modified := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/a.jpg", "e1", 100, modified)},
	}
	svc, cfg := newTestService(repo, proc, lister)

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if result.Summary.StorageObjects != 1 || result.Summary.DatabaseRecords != 0 {
		t.Errorf("Summary 基数 = %+v, 期望 storageObjects=1 databaseRecords=0", result.Summary)
	}
	if result.Summary.Inserted != 1 || result.Summary.Conflicts != 0 {
		t.Errorf("Summary = %+v, 期望 inserted=1", result.Summary)
	}
	if repo.upserts != 1 {
		t.Errorf("upserts = %d, 期望 1", repo.upserts)
	}

	record := repo.findByKey(1, "photos/a.jpg")
	if record == nil {
		t.Fatal("期望写入资产记录")
	}
	if record.SyncStatus != constant.SyncStatusSynced {
		t.Errorf("SyncStatus = %s, 期望 synced", record.SyncStatus)
	}
	if record.StorageProvider != string(constant.ProviderTypeLocal) {
		t.Errorf("StorageProvider = %s, 期望 local", record.StorageProvider)
	}
	if record.ManifestVersion != constant.CurrentManifestVersion {
		t.Errorf("ManifestVersion = %s, 期望 %s", record.ManifestVersion, constant.CurrentManifestVersion)
	}
	if record.Manifest.Data == nil || record.Manifest.Data.ID != "photo-photos/a.jpg" {
		t.Errorf("Manifest.Data = %+v, 期望包含生成的条目", record.Manifest.Data)
	}
	if record.MetadataHash == nil || *record.MetadataHash != "e1::100::2025-08-01T10:00:00Z" {
		t.Errorf("MetadataHash = %v, 期望规范化指纹", record.MetadataHash)
	}

	if len(result.Actions) != 1 {
		t.Fatalf("len(Actions) = %d, 期望 1", len(result.Actions))
	}
	action := result.Actions[0]
	if action.Type != model.SyncActionInsert || !action.Applied {
		t.Errorf("action = %+v, 期望 applied insert", action)
	}
	if action.PhotoID == nil || *action.PhotoID != "photo-photos/a.jpg" {
		t.Errorf("action.PhotoID = %v, 期望生成的照片ID", action.PhotoID)
	}
	if action.Snapshots == nil || action.Snapshots.After == nil {
		t.Error("期望动作携带 after 快照")
	}
}

func TestRunSync_处理失败降级为冲突(t *testing.T) {
	repo := newFakeAssetRepo()
	proc := &fakeProcessor{failKeys: map[string]bool{"photos/bad.jpg": true}}
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/bad.jpg", "e1", 100, time.Now())},
	}
	svc, cfg := newTestService(repo, proc, lister)

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if result.Summary.Conflicts != 1 || result.Summary.Inserted != 0 {
		t.Errorf("Summary = %+v, 期望 conflicts=1 inserted=0", result.Summary)
	}
	if repo.upserts != 0 {
		t.Errorf("upserts = %d, 处理失败不应写库", repo.upserts)
	}

	action := result.Actions[0]
	if action.Type != model.SyncActionConflict || action.Applied {
		t.Errorf("action = %+v, 期望未应用的 conflict", action)
	}
	if action.Reason != "Failed to generate manifest for new storage object." {
		t.Errorf("Reason = %q", action.Reason)
	}
}

func TestRunSync_孤儿记录标记冲突(t *testing.T) {
	repo := newFakeAssetRepo()
	repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/gone.jpg",
		StorageProvider: "local",
		ETag:            strPtr("e1"),
		SyncStatus:      constant.SyncStatusSynced,
	})
	svc, cfg := newTestService(repo, &fakeProcessor{}, &fakeLister{})

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if result.Summary.Conflicts != 1 {
		t.Errorf("Conflicts = %d, 期望 1", result.Summary.Conflicts)
	}

	record := repo.findByKey(1, "photos/gone.jpg")
	if record.SyncStatus != constant.SyncStatusConflict {
		t.Errorf("SyncStatus = %s, 期望 conflict", record.SyncStatus)
	}
	if record.ConflictReason == nil || *record.ConflictReason != "Storage object missing in provider." {
		t.Errorf("ConflictReason = %v", record.ConflictReason)
	}
	if record.ConflictPayload == nil || record.ConflictPayload.Type != constant.ConflictTypeMissingInStorage {
		t.Fatalf("ConflictPayload = %+v, 期望 missing-in-storage", record.ConflictPayload)
	}
	if record.ConflictPayload.RecordSnapshot == nil || record.ConflictPayload.StorageSnapshot != nil {
		t.Error("missing-in-storage 负载应只含记录快照")
	}

	action := result.Actions[0]
	if action.Type != model.SyncActionConflict || !action.Applied {
		t.Errorf("action = %+v, 期望已应用的 conflict", action)
	}
}

func TestRunSync_DatabaseOnly记录不算孤儿(t *testing.T) {
	repo := newFakeAssetRepo()
	repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/manual.jpg",
		StorageProvider: constant.ProviderDatabaseOnly,
		SyncStatus:      constant.SyncStatusSynced,
	})
	svc, cfg := newTestService(repo, &fakeProcessor{}, &fakeLister{})

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if result.Summary.Conflicts != 0 || len(result.Actions) != 0 {
		t.Errorf("database-only 记录不应产生任何动作: %+v", result)
	}

	record := repo.findByKey(1, "photos/manual.jpg")
	if record.SyncStatus != constant.SyncStatusSynced {
		t.Errorf("SyncStatus = %s, 期望保持 synced", record.SyncStatus)
	}
}

func TestRunSync_元数据漂移标记冲突(t *testing.T) {
	repo := newFakeAssetRepo()
	repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/a.jpg",
		StorageProvider: "local",
		Size:            int64Ptr(100),
		ETag:            strPtr("old"),
		LastModified:    strPtr("2025-07-01T10:00:00Z"),
		MetadataHash:    strPtr("old::100::2025-07-01T10:00:00Z"),
		SyncStatus:      constant.SyncStatusSynced,
	})
	modified := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/a.jpg", "new", 200, modified)},
	}
	svc, cfg := newTestService(repo, &fakeProcessor{}, lister)

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if result.Summary.Conflicts != 1 {
		t.Errorf("Conflicts = %d, 期望 1", result.Summary.Conflicts)
	}

	record := repo.findByKey(1, "photos/a.jpg")
	if record.SyncStatus != constant.SyncStatusConflict {
		t.Errorf("SyncStatus = %s, 期望 conflict", record.SyncStatus)
	}
	if record.ConflictPayload == nil || record.ConflictPayload.Type != constant.ConflictTypeMetadataMismatch {
		t.Fatalf("ConflictPayload = %+v, 期望 metadata-mismatch", record.ConflictPayload)
	}
	if record.ConflictPayload.StorageSnapshot == nil || record.ConflictPayload.RecordSnapshot == nil {
		t.Error("metadata-mismatch 负载应同时携带两侧快照")
	}

	action := result.Actions[0]
	if action.Reason != "Storage metadata differs from database manifest." {
		t.Errorf("Reason = %q", action.Reason)
	}
	if action.Snapshots == nil || action.Snapshots.Before == nil || action.Snapshots.After == nil {
		t.Error("期望动作携带 before/after 快照")
	}
}

func TestRunSync_状态修复(t *testing.T) {
	repo := newFakeAssetRepo()
	reason := "旧的冲突原因"
	repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/a.jpg",
		StorageProvider: "local",
		Size:            int64Ptr(100),
		ETag:            strPtr("e1"),
		LastModified:    strPtr("2025-08-01T10:00:00Z"),
		MetadataHash:    strPtr("e1::100::2025-08-01T10:00:00Z"),
		SyncStatus:      constant.SyncStatusPending,
		ConflictReason:  &reason,
	})
	modified := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/a.jpg", "e1", 100, modified)},
	}
	svc, cfg := newTestService(repo, &fakeProcessor{}, lister)

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if result.Summary.Updated != 1 || result.Summary.Conflicts != 0 {
		t.Errorf("Summary = %+v, 期望 updated=1", result.Summary)
	}

	record := repo.findByKey(1, "photos/a.jpg")
	if record.SyncStatus != constant.SyncStatusSynced {
		t.Errorf("SyncStatus = %s, 期望 synced", record.SyncStatus)
	}
	if record.ConflictReason != nil || record.ConflictPayload != nil {
		t.Error("状态修复应清空冲突上下文")
	}

	action := result.Actions[0]
	if action.Type != model.SyncActionUpdate || action.Reason != "Marked as synced to reflect matching metadata." {
		t.Errorf("action = %+v", action)
	}
}

func TestRunSync_预演模式不落库(t *testing.T) {
	repo := newFakeAssetRepo()
	repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/gone.jpg",
		StorageProvider: "local",
		ETag:            strPtr("e1"),
		SyncStatus:      constant.SyncStatusSynced,
	})
	proc := &fakeProcessor{}
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/new.jpg", "e2", 50, time.Now())},
	}
	svc, cfg := newTestService(repo, proc, lister)

	result, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg, DryRun: true})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if repo.upserts != 0 || repo.updates != 0 || repo.deletes != 0 {
		t.Errorf("预演模式不应有任何写入: upserts=%d updates=%d deletes=%d", repo.upserts, repo.updates, repo.deletes)
	}
	if proc.calls != 0 {
		t.Errorf("预演模式不应调用处理管线, calls = %d", proc.calls)
	}
	if lister.listAllCalls != 0 {
		t.Errorf("预演模式不应触发全量文件列表, calls = %d", lister.listAllCalls)
	}

	if result.Summary.Inserted != 1 || result.Summary.Conflicts != 1 {
		t.Errorf("Summary = %+v, 期望 inserted=1 conflicts=1", result.Summary)
	}
	for _, action := range result.Actions {
		if action.Applied {
			t.Errorf("预演动作不应标记为已应用: %+v", action)
		}
	}
	if result.Actions[0].Reason != "Preview - new storage object would be imported." {
		t.Errorf("预览原因 = %q", result.Actions[0].Reason)
	}
}

func TestRunSync_实况照片配对只列一次全量文件(t *testing.T) {
	repo := newFakeAssetRepo()
	modified := time.Now()
	images := []model.StorageObject{
		storageObject("photos/a.jpg", "e1", 10, modified),
		storageObject("photos/b.jpg", "e2", 20, modified),
	}
	video := storageObject("photos/a.mov", "e3", 30, modified)
	lister := &fakeLister{
		images:    images,
		allFiles:  append(images, video),
		livePairs: map[string]model.StorageObject{"photos/a.jpg": video},
	}
	proc := &fakeProcessor{}
	svc, cfg := newTestService(repo, proc, lister)

	_, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if lister.listAllCalls != 1 {
		t.Errorf("listAllCalls = %d, 实况照片映射应只计算一次", lister.listAllCalls)
	}

	record := repo.findByKey(1, "photos/a.jpg")
	if record.Manifest.Data == nil || !record.Manifest.Data.IsLivePhoto || record.Manifest.Data.LivePhotoVideoKey != "photos/a.mov" {
		t.Errorf("Manifest.Data = %+v, 期望实况照片配对", record.Manifest.Data)
	}
}

func TestRunSync_第二次运行收敛为无动作(t *testing.T) {
	repo := newFakeAssetRepo()
	modified := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/a.jpg", "e1", 100, modified)},
	}
	svc, cfg := newTestService(repo, &fakeProcessor{}, lister)

	if _, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg}); err != nil {
		t.Fatalf("第一次 RunSync() 出错: %v", err)
	}
	second, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err != nil {
		t.Fatalf("第二次 RunSync() 出错: %v", err)
	}

	if second.Summary.Inserted != 0 || second.Summary.Updated != 0 || second.Summary.Conflicts != 0 {
		t.Errorf("第二次 Summary = %+v, 期望全部为 0", second.Summary)
	}
	if len(second.Actions) != 0 {
		t.Errorf("第二次 Actions = %+v, 期望为空", second.Actions)
	}
}

func TestRunSync_StorageConfig覆盖存储后端(t *testing.T) {
	repo := newFakeAssetRepo()
	var capturedProvider constant.StorageProviderType
	proc := &fakeProcessor{}
	lister := &fakeLister{
		images: []model.StorageObject{storageObject("photos/a.jpg", "e1", 100, time.Now())},
	}
	factory := func(cfg *model.BuilderConfig) (PhotoProcessor, StorageLister, error) {
		capturedProvider = cfg.Storage.Provider
		return proc, lister, nil
	}
	svc := NewServiceWithFactory(repo, factory)

	override := &model.StorageConfig{
		Provider: constant.ProviderTypeS3,
		S3:       &model.S3StorageConfig{Bucket: "gallery"},
	}
	_, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{
		BuilderConfig: localBuilderConfig(),
		StorageConfig: override,
	})
	if err != nil {
		t.Fatalf("RunSync() 出错: %v", err)
	}

	if capturedProvider != constant.ProviderTypeS3 {
		t.Errorf("管线存储后端 = %s, 期望被 storageConfig 覆盖为 s3", capturedProvider)
	}
	record := repo.findByKey(1, "photos/a.jpg")
	if record.StorageProvider != string(constant.ProviderTypeS3) {
		t.Errorf("StorageProvider = %s, 期望 s3", record.StorageProvider)
	}
}

func TestRunSync_列表失败直接返回错误(t *testing.T) {
	lister := &fakeLister{imagesErr: fmt.Errorf("bucket 不可达")}
	svc, cfg := newTestService(newFakeAssetRepo(), &fakeProcessor{}, lister)

	_, err := svc.RunSync(context.Background(), 1, model.DataSyncOptions{BuilderConfig: cfg})
	if err == nil {
		t.Fatal("期望列表失败时返回错误")
	}
}

func TestListConflicts(t *testing.T) {
	repo := newFakeAssetRepo()
	reason := "Storage object missing in provider."
	record := repo.add(&model.PhotoAsset{
		TenantID:        1,
		PhotoID:         "photo-1",
		StorageKey:      "photos/gone.jpg",
		StorageProvider: "local",
		ManifestVersion: constant.CurrentManifestVersion,
		SyncStatus:      constant.SyncStatusConflict,
		ConflictReason:  &reason,
		ConflictPayload: &model.ConflictPayload{Type: constant.ConflictTypeMissingInStorage},
		SyncedAt:        time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	})
	repo.add(&model.PhotoAsset{
		TenantID:   1,
		PhotoID:    "photo-2",
		StorageKey: "photos/ok.jpg",
		SyncStatus: constant.SyncStatusSynced,
	})
	repo.add(&model.PhotoAsset{
		TenantID:   2,
		PhotoID:    "photo-3",
		StorageKey: "photos/other-tenant.jpg",
		SyncStatus: constant.SyncStatusConflict,
	})
	svc, _ := newTestService(repo, &fakeProcessor{}, &fakeLister{})

	conflicts, err := svc.ListConflicts(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListConflicts() 出错: %v", err)
	}

	if len(conflicts) != 1 {
		t.Fatalf("len(conflicts) = %d, 期望只返回本租户的冲突", len(conflicts))
	}
	dto := conflicts[0]
	expectedID, _ := idgen.GeneratePublicID(record.ID, idgen.EntityTypePhotoAsset)
	if dto.ID != expectedID {
		t.Errorf("ID = %s, 期望公共ID %s", dto.ID, expectedID)
	}
	if dto.Reason == nil || *dto.Reason != reason {
		t.Errorf("Reason = %v", dto.Reason)
	}
	if dto.SyncedAt != "2025-08-01T10:00:00Z" {
		t.Errorf("SyncedAt = %s", dto.SyncedAt)
	}
}
