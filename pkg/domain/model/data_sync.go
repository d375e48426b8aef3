/*
 * @Description: 数据同步相关的领域对象
 * @Author: 安知鱼
 * @Date: 2025-08-23 01:52:17
 * @LastEditTime: 2025-09-01 10:30:05
 * @LastEditors: 安知鱼
 */
package model

// DataSyncActionType 表示一次同步中对单条记录执行的动作类型。
type DataSyncActionType string

const (
	SyncActionInsert   DataSyncActionType = "insert"
	SyncActionUpdate   DataSyncActionType = "update"
	SyncActionDelete   DataSyncActionType = "delete"
	SyncActionConflict DataSyncActionType = "conflict"
	SyncActionNoop     DataSyncActionType = "noop"
)

// ConflictResolutionStrategy 冲突裁决策略。
type ConflictResolutionStrategy string

const (
	// ResolutionPreferStorage 以存储端为准：重新生成清单或删除记录。
	ResolutionPreferStorage ConflictResolutionStrategy = "prefer-storage"
	// ResolutionPreferDatabase 以数据库为准：保留现有清单。
	ResolutionPreferDatabase ConflictResolutionStrategy = "prefer-database"
)

// IsValid 校验策略取值。
func (s ConflictResolutionStrategy) IsValid() bool {
	return s == ResolutionPreferStorage || s == ResolutionPreferDatabase
}

// DataSyncActionSnapshots 动作前后的规范化快照，便于审计。
type DataSyncActionSnapshots struct {
	Before *SyncObjectSnapshot `json:"before,omitempty"`
	After  *SyncObjectSnapshot `json:"after,omitempty"`
}

// DataSyncAction 是同步报告中的一条动作明细。
// 预演模式下 Applied 恒为 false，Reason 会带 Preview 前缀说明将会发生什么。
type DataSyncAction struct {
	Type       DataSyncActionType         `json:"type"`
	StorageKey string                     `json:"storageKey"`
	PhotoID    *string                    `json:"photoId,omitempty"`
	Applied    bool                       `json:"applied"`
	Resolution ConflictResolutionStrategy `json:"resolution,omitempty"`
	Reason     string                     `json:"reason,omitempty"`
	Snapshots  *DataSyncActionSnapshots   `json:"snapshots,omitempty"`
}

// DataSyncSummary 一次同步的聚合计数。预演模式下计数“将会发生”的动作。
type DataSyncSummary struct {
	StorageObjects  int `json:"storageObjects"`
	DatabaseRecords int `json:"databaseRecords"`
	Inserted        int `json:"inserted"`
	Updated         int `json:"updated"`
	Deleted         int `json:"deleted"`
	Conflicts       int `json:"conflicts"`
	Skipped         int `json:"skipped"`
}

// DataSyncResult 是一次同步运行的完整报告。
type DataSyncResult struct {
	Summary DataSyncSummary  `json:"summary"`
	Actions []DataSyncAction `json:"actions"`
}

// DataSyncOptions 控制一次同步运行的行为。
// BuilderConfig 必填，它决定清单重建管线及其存储后端；
// StorageConfig 可选，存在时覆盖列表阶段使用的存储后端。
type DataSyncOptions struct {
	BuilderConfig *BuilderConfig `json:"builderConfig"`
	StorageConfig *StorageConfig `json:"storageConfig,omitempty"`
	DryRun        bool           `json:"dryRun,omitempty"`
}

// ResolveConflictOptions 控制单条冲突的裁决。
// prefer-storage 策略要求 BuilderConfig 非空。
type ResolveConflictOptions struct {
	Strategy      ConflictResolutionStrategy `json:"strategy"`
	BuilderConfig *BuilderConfig             `json:"builderConfig,omitempty"`
	StorageConfig *StorageConfig             `json:"storageConfig,omitempty"`
	DryRun        bool                       `json:"dryRun,omitempty"`
}

// DataSyncConflict 是冲突列表接口返回的 DTO，ID 为对外公开 ID。
type DataSyncConflict struct {
	ID              string             `json:"id"`
	StorageKey      string             `json:"storageKey"`
	PhotoID         string             `json:"photoId"`
	Reason          *string            `json:"reason"`
	Payload         *ConflictPayload   `json:"payload"`
	ManifestVersion string             `json:"manifestVersion"`
	Manifest        PhotoAssetManifest `json:"manifest"`
	StorageProvider string             `json:"storageProvider"`
	SyncedAt        string             `json:"syncedAt"`
	UpdatedAt       string             `json:"updatedAt"`
}
