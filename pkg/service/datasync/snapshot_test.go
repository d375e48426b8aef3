package datasync

import (
	"testing"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestComputeMetadataHash(t *testing.T) {
	tests := []struct {
		name         string
		size         *int64
		etag         *string
		lastModified *string
		expected     *string
	}{
		{
			name:         "三段齐全",
			size:         int64Ptr(2048),
			etag:         strPtr("abc123"),
			lastModified: strPtr("2025-08-01T10:00:00Z"),
			expected:     strPtr("abc123::2048::2025-08-01T10:00:00Z"),
		},
		{
			name:     "只有etag",
			etag:     strPtr("abc123"),
			expected: strPtr("abc123::::"),
		},
		{
			name:     "只有大小",
			size:     int64Ptr(7),
			expected: strPtr("::7::"),
		},
		{
			name:         "只有修改时间",
			lastModified: strPtr("2025-08-01T10:00:00Z"),
			expected:     strPtr("::::2025-08-01T10:00:00Z"),
		},
		{
			name:     "全空返回nil",
			expected: nil,
		},
		{
			name:     "空字符串etag等同于缺失",
			etag:     strPtr(""),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeMetadataHash(tt.size, tt.etag, tt.lastModified)
			if (got == nil) != (tt.expected == nil) {
				t.Fatalf("computeMetadataHash() = %v, 期望 %v", got, tt.expected)
			}
			if got != nil && *got != *tt.expected {
				t.Errorf("computeMetadataHash() = %q, 期望 %q", *got, *tt.expected)
			}
		})
	}
}

func TestHashesMatch(t *testing.T) {
	tests := []struct {
		name     string
		a        *string
		b        *string
		expected bool
	}{
		{name: "双方为nil视为一致", a: nil, b: nil, expected: true},
		{name: "仅一方为nil视为不一致", a: strPtr("x::1::t"), b: nil, expected: false},
		{name: "值相等", a: strPtr("x::1::t"), b: strPtr("x::1::t"), expected: true},
		{name: "值不相等", a: strPtr("x::1::t"), b: strPtr("y::1::t"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hashesMatch(tt.a, tt.b); got != tt.expected {
				t.Errorf("hashesMatch() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

func TestCreateStorageSnapshot(t *testing.T) {
	t.Run("修改时间规范化为UTC RFC3339", func(t *testing.T) {
		loc := time.FixedZone("CST", 8*3600)
		modified := time.Date(2025, 8, 1, 18, 0, 0, 0, loc)
		obj := model.StorageObject{
			Key:          "photos/a.jpg",
			Size:         int64Ptr(100),
			ETag:         strPtr("e1"),
			LastModified: &modified,
		}

		snap := createStorageSnapshot(obj)
		if snap.LastModified == nil || *snap.LastModified != "2025-08-01T10:00:00Z" {
			t.Fatalf("LastModified = %v, 期望 2025-08-01T10:00:00Z", snap.LastModified)
		}
		if snap.MetadataHash == nil || *snap.MetadataHash != "e1::100::2025-08-01T10:00:00Z" {
			t.Errorf("MetadataHash = %v, 期望 e1::100::2025-08-01T10:00:00Z", snap.MetadataHash)
		}
	})

	t.Run("无任何元数据时指纹为nil", func(t *testing.T) {
		snap := createStorageSnapshot(model.StorageObject{Key: "photos/b.jpg"})
		if snap.MetadataHash != nil {
			t.Errorf("MetadataHash = %v, 期望 nil", snap.MetadataHash)
		}
	})
}

func TestCreateRecordSnapshot(t *testing.T) {
	t.Run("已持久化的指纹优先使用", func(t *testing.T) {
		record := &model.PhotoAsset{
			Size:         int64Ptr(100),
			ETag:         strPtr("e1"),
			MetadataHash: strPtr("持久化的旧指纹"),
		}
		snap := createRecordSnapshot(record)
		if snap.MetadataHash == nil || *snap.MetadataHash != "持久化的旧指纹" {
			t.Errorf("MetadataHash = %v, 期望沿用持久化值", snap.MetadataHash)
		}
	})

	t.Run("缺少指纹时按字段重算", func(t *testing.T) {
		record := &model.PhotoAsset{
			Size:         int64Ptr(100),
			ETag:         strPtr("e1"),
			LastModified: strPtr("2025-08-01T10:00:00Z"),
		}
		snap := createRecordSnapshot(record)
		if snap.MetadataHash == nil || *snap.MetadataHash != "e1::100::2025-08-01T10:00:00Z" {
			t.Errorf("MetadataHash = %v, 期望 e1::100::2025-08-01T10:00:00Z", snap.MetadataHash)
		}
	})
}
