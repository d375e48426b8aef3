package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

func TestDetectLivePhotos(t *testing.T) {
	manager := NewStorageManager(nil)

	obj := func(key string) model.StorageObject {
		return model.StorageObject{Key: key}
	}

	tests := []struct {
		name     string
		objects  []model.StorageObject
		expected map[string]string // 照片键 -> 视频键
	}{
		{
			name: "同名mov配对",
			objects: []model.StorageObject{
				obj("photos/a.jpg"), obj("photos/a.mov"), obj("photos/b.jpg"),
			},
			expected: map[string]string{"photos/a.jpg": "photos/a.mov"},
		},
		{
			name: "mp4也可配对",
			objects: []model.StorageObject{
				obj("photos/c.HEIC"), obj("photos/c.mp4"),
			},
			expected: map[string]string{"photos/c.HEIC": "photos/c.mp4"},
		},
		{
			name: "不同目录的同名文件不配对",
			objects: []model.StorageObject{
				obj("photos/a.jpg"), obj("videos/a.mov"),
			},
			expected: map[string]string{},
		},
		{
			name:     "没有视频时返回nil",
			objects:  []model.StorageObject{obj("photos/a.jpg"), obj("photos/b.png")},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := manager.DetectLivePhotos(tt.objects)
			if len(result) != len(tt.expected) {
				t.Fatalf("len(result) = %d, 期望 %d: %+v", len(result), len(tt.expected), result)
			}
			for photoKey, videoKey := range tt.expected {
				video, ok := result[photoKey]
				if !ok || video.Key != videoKey {
					t.Errorf("result[%s] = %+v, 期望视频 %s", photoKey, video, videoKey)
				}
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("写文件失败: %v", err)
	}
}

func TestLocalProviderListImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", "jpg-data")
	writeFile(t, dir, "nested/b.png", "png-data")
	writeFile(t, dir, "nested/c.mov", "mov-data")
	writeFile(t, dir, "notes.txt", "text")
	writeFile(t, dir, ".hidden/d.jpg", "hidden")
	writeFile(t, dir, "draft/e.jpg", "draft")

	provider := NewLocalProvider(&model.LocalStorageConfig{
		BasePath:     dir,
		ExcludeRegex: "^draft/",
	})

	images, err := provider.ListImages(context.Background())
	if err != nil {
		t.Fatalf("ListImages() 出错: %v", err)
	}

	keys := make([]string, 0, len(images))
	for _, obj := range images {
		keys = append(keys, obj.Key)
	}
	expected := []string{"a.jpg", "nested/b.png"}
	if len(keys) != len(expected) {
		t.Fatalf("keys = %v, 期望 %v", keys, expected)
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("keys[%d] = %s, 期望 %s（按键排序）", i, keys[i], key)
		}
	}

	for _, obj := range images {
		if obj.Size == nil || obj.LastModified == nil {
			t.Errorf("对象 %s 缺少大小或修改时间", obj.Key)
		}
		if obj.ETag != nil {
			t.Errorf("本地文件不应有 ETag: %s", obj.Key)
		}
	}
}

func TestLocalProviderListAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", "jpg-data")
	writeFile(t, dir, "a.mov", "mov-data")
	writeFile(t, dir, "notes.txt", "text")

	provider := NewLocalProvider(&model.LocalStorageConfig{BasePath: dir})

	all, err := provider.ListAllFiles(context.Background())
	if err != nil {
		t.Fatalf("ListAllFiles() 出错: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, 期望全量列表包含非图片文件", len(all))
	}
}

func TestLocalProviderListImages_目录不存在(t *testing.T) {
	provider := NewLocalProvider(&model.LocalStorageConfig{
		BasePath: filepath.Join(t.TempDir(), "不存在的目录"),
	})

	images, err := provider.ListImages(context.Background())
	if err != nil {
		t.Fatalf("ListImages() 出错: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("len(images) = %d, 期望空列表", len(images))
	}
}

func TestLocalProviderListImages_数量上限(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", "1")
	writeFile(t, dir, "b.jpg", "2")
	writeFile(t, dir, "c.jpg", "3")

	provider := NewLocalProvider(&model.LocalStorageConfig{
		BasePath:     dir,
		MaxFileLimit: 2,
	})

	images, err := provider.ListImages(context.Background())
	if err != nil {
		t.Fatalf("ListImages() 出错: %v", err)
	}
	if len(images) != 2 {
		t.Errorf("len(images) = %d, 期望被截断为 2", len(images))
	}
}

func TestLocalProviderGet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nested/a.jpg", "jpg-data")
	provider := NewLocalProvider(&model.LocalStorageConfig{BasePath: dir})

	t.Run("读取文件内容", func(t *testing.T) {
		reader, err := provider.Get(context.Background(), "nested/a.jpg")
		if err != nil {
			t.Fatalf("Get() 出错: %v", err)
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("读取内容失败: %v", err)
		}
		if string(data) != "jpg-data" {
			t.Errorf("内容 = %q", data)
		}
	})

	t.Run("拒绝目录穿越", func(t *testing.T) {
		if _, err := provider.Get(context.Background(), "../etc/passwd"); err == nil {
			t.Error("期望目录穿越被拒绝")
		}
	})
}
