/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-29 10:13:27
 * @LastEditTime: 2025-09-01 10:12:40
 * @LastEditors: 安知鱼
 */
package constant

// StorageProviderType 定义了存储提供者的类型，提供了更强的类型安全
type StorageProviderType string

// 定义支持的存储提供者类型常量
const (
	ProviderTypeS3     StorageProviderType = "s3"
	ProviderTypeGitHub StorageProviderType = "github"
	ProviderTypeLocal  StorageProviderType = "local"
	ProviderTypeEagle  StorageProviderType = "eagle"

	// ProviderDatabaseOnly 是一个哨兵值，表示记录不再对应任何存储对象，
	// 数据库中的记录本身即为权威数据。它不是可配置的存储类型。
	ProviderDatabaseOnly = "database-only"
)

// IsValid 检查给定的类型是否是受支持的存储提供者类型
func (t StorageProviderType) IsValid() bool {
	switch t {
	case ProviderTypeS3, ProviderTypeGitHub, ProviderTypeLocal, ProviderTypeEagle:
		return true
	default:
		return false
	}
}

// SyncStatus 定义了照片资产记录的同步生命周期状态
type SyncStatus string

const (
	// SyncStatusPending 表示记录尚未完成分类，等待下一次同步处理
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSynced 表示记录与存储对象的元数据一致
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusConflict 表示记录与存储状态存在差异，等待人工裁决
	SyncStatusConflict SyncStatus = "conflict"
)

// CurrentManifestVersion 是照片清单负载的当前版本号
const CurrentManifestVersion = "v7"

// 冲突类型常量
const (
	// ConflictTypeMissingInStorage 表示存储端缺失数据库已登记的对象
	ConflictTypeMissingInStorage = "missing-in-storage"
	// ConflictTypeMetadataMismatch 表示存储对象与数据库记录的元数据不一致
	ConflictTypeMetadataMismatch = "metadata-mismatch"
)
