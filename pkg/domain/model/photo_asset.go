/*
 * @Description: 照片资产模型
 * @Author: 安知鱼
 * @Date: 2025-08-23 01:38:51
 * @LastEditTime: 2025-09-01 10:12:40
 * @LastEditors: 安知鱼
 */
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
)

// StorageObject 封装了存储提供者列表操作返回的单个对象信息。
// 这是为了统一各存储后端的返回结构，让上层服务（如 DataSyncService）可以透明处理。
// 该结构只读，同步子系统永远不会修改存储端的对象。
type StorageObject struct {
	Key          string
	Size         *int64
	ETag         *string
	LastModified *time.Time
}

// PhotoManifestItem 是照片处理管线为单个存储对象产出的清单条目。
type PhotoManifestItem struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	DateTaken         string            `json:"dateTaken,omitempty"`
	Width             int               `json:"width"`
	Height            int               `json:"height"`
	Format            string            `json:"format"`
	Exif              map[string]string `json:"exif,omitempty"`
	DominantColors    []string          `json:"dominantColors,omitempty"`
	IsLivePhoto       bool              `json:"isLivePhoto,omitempty"`
	LivePhotoVideoKey string            `json:"livePhotoVideoKey,omitempty"`
}

// PhotoAssetManifest 是带版本号的清单负载，持久化为 JSON。
type PhotoAssetManifest struct {
	Version string             `json:"version"`
	Data    *PhotoManifestItem `json:"data"`
}

// Value - 实现 driver.Valuer 接口, Ent 保存时调用
func (m PhotoAssetManifest) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan - 实现 sql.Scanner 接口, Ent 查询时调用
func (m *PhotoAssetManifest) Scan(value interface{}) error {
	if value == nil {
		*m = PhotoAssetManifest{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			b = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}
	return json.Unmarshal(b, m)
}

// SyncObjectSnapshot 是用于漂移检测的规范化快照。
// metadataHash 由 (etag, size, lastModified) 拼接派生；三者都为空时哈希为
// nil，表示“没有可比较的元数据”，此时只与同样为空的快照按结构相等比较。
type SyncObjectSnapshot struct {
	Size         *int64  `json:"size"`
	ETag         *string `json:"etag"`
	LastModified *string `json:"lastModified"`
	MetadataHash *string `json:"metadataHash"`
}

// ConflictPayload 记录了一次冲突的完整上下文，随记录持久化，供后续裁决使用。
// missing-in-storage 只有 recordSnapshot 有意义；metadata-mismatch 两个快照都存在。
type ConflictPayload struct {
	Type            string              `json:"type"`
	StorageSnapshot *SyncObjectSnapshot `json:"storageSnapshot,omitempty"`
	RecordSnapshot  *SyncObjectSnapshot `json:"recordSnapshot,omitempty"`
}

// Value - 实现 driver.Valuer 接口, Ent 保存时调用
func (p ConflictPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan - 实现 sql.Scanner 接口, Ent 查询时调用
func (p *ConflictPayload) Scan(value interface{}) error {
	if value == nil {
		*p = ConflictPayload{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		if s, isStr := value.(string); isStr {
			b = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}
	return json.Unmarshal(b, p)
}

// PhotoAsset 是照片资产记录的领域模型，对应数据库中一行已同步资产。
// 不变量：ConflictPayload 非空 当且仅当 SyncStatus 为 conflict。
type PhotoAsset struct {
	ID              uint                `json:"id"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	TenantID        uint                `json:"tenant_id"`
	PhotoID         string              `json:"photo_id"`
	StorageKey      string              `json:"storage_key"`
	StorageProvider string              `json:"storage_provider"`
	Size            *int64              `json:"size"`
	ETag            *string             `json:"etag"`
	LastModified    *string             `json:"last_modified"`
	MetadataHash    *string             `json:"metadata_hash"`
	ManifestVersion string              `json:"manifest_version"`
	Manifest        PhotoAssetManifest  `json:"manifest"`
	SyncStatus      constant.SyncStatus `json:"sync_status"`
	ConflictReason  *string             `json:"conflict_reason"`
	ConflictPayload *ConflictPayload    `json:"conflict_payload"`
	SyncedAt        time.Time           `json:"synced_at"`
}

// IsDatabaseOnly 判断记录是否被标记为“仅数据库”——即刻意不对应任何存储对象，
// 同步时永远不会被当作孤儿记录处理。
func (a *PhotoAsset) IsDatabaseOnly() bool {
	return a.StorageProvider == constant.ProviderDatabaseOnly
}
