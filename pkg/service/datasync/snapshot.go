/*
 * @Description: 同步快照规范化与元数据指纹
 * @Author: 安知鱼
 * @Date: 2025-08-23 06:22:18
 * @LastEditTime: 2025-09-01 16:05:37
 * @LastEditors: 安知鱼
 */
package datasync

import (
	"fmt"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// computeMetadataHash 把 (etag, size, lastModified) 拼接成元数据指纹。
// 三段全空时返回 nil，表示“没有任何可比较的元数据”。
func computeMetadataHash(size *int64, etag *string, lastModified *string) *string {
	normalizedSize := ""
	if size != nil {
		normalizedSize = fmt.Sprintf("%d", *size)
	}
	normalizedEtag := ""
	if etag != nil {
		normalizedEtag = *etag
	}
	normalizedLastModified := ""
	if lastModified != nil {
		normalizedLastModified = *lastModified
	}

	digest := normalizedEtag + "::" + normalizedSize + "::" + normalizedLastModified
	if digest == "::::" {
		return nil
	}
	return &digest
}

// createStorageSnapshot 把存储端对象规范化为可比较的快照。
func createStorageSnapshot(obj model.StorageObject) *model.SyncObjectSnapshot {
	var lastModified *string
	if obj.LastModified != nil {
		formatted := obj.LastModified.UTC().Format(time.RFC3339)
		lastModified = &formatted
	}

	return &model.SyncObjectSnapshot{
		Size:         obj.Size,
		ETag:         obj.ETag,
		LastModified: lastModified,
		MetadataHash: computeMetadataHash(obj.Size, obj.ETag, lastModified),
	}
}

// createRecordSnapshot 把数据库记录规范化为可比较的快照。
// 记录已持久化指纹时直接使用，否则按当前字段重算。
func createRecordSnapshot(record *model.PhotoAsset) *model.SyncObjectSnapshot {
	metadataHash := record.MetadataHash
	if metadataHash == nil {
		metadataHash = computeMetadataHash(record.Size, record.ETag, record.LastModified)
	}

	return &model.SyncObjectSnapshot{
		Size:         record.Size,
		ETag:         record.ETag,
		LastModified: record.LastModified,
		MetadataHash: metadataHash,
	}
}

// hashesMatch 比较两个元数据指纹。
// 双方都为 nil 视为一致：没有元数据时假定存储与记录仍然对应。
func hashesMatch(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
