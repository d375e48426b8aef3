/*
 * @Description: 定义了所有存储驱动需要遵守的接口和公共结构
 * @Author: 安知鱼
 * @Date: 2025-08-23 04:10:20
 * @LastEditTime: 2025-09-01 13:05:44
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// imageExtensions 是同步时视为照片的文件扩展名集合。
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".heic": true,
	".heif": true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
	".avif": true,
}

// videoExtensions 是实况照片配对时视为视频的文件扩展名集合。
var videoExtensions = map[string]bool{
	".mov": true,
	".mp4": true,
	".m4v": true,
}

// IStorageProvider 定义了所有存储提供者必须实现的接口。
// 同步子系统只读取存储端，永远不会修改存储对象。
type IStorageProvider interface {
	// ListImages 列出存储端所有照片对象，已应用前缀、排除规则和数量上限。
	ListImages(ctx context.Context) ([]model.StorageObject, error)
	// ListAllFiles 列出存储端所有文件（含视频），用于实况照片配对。
	ListAllFiles(ctx context.Context) ([]model.StorageObject, error)
	// Get 返回对象内容的读取流，用于照片处理管线提取元数据。
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// NewProvider 是存储提供者工厂，按配置的 provider 类型创建对应实现。
func NewProvider(cfg *model.StorageConfig) (IStorageProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: 缺少存储配置", constant.ErrStorageConfigInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case constant.ProviderTypeS3:
		return NewS3Provider(cfg.S3), nil
	case constant.ProviderTypeGitHub:
		return NewGithubProvider(cfg.Github), nil
	case constant.ProviderTypeLocal:
		return NewLocalProvider(cfg.Local), nil
	case constant.ProviderTypeEagle:
		return NewEagleProvider(cfg.Eagle), nil
	default:
		return nil, fmt.Errorf("%w: 未知的存储提供者 %q", constant.ErrStorageConfigInvalid, cfg.Provider)
	}
}

// StorageManager 包装一个存储提供者，提供跨对象的派生能力（实况照片配对）。
type StorageManager struct {
	provider IStorageProvider
}

// NewStorageManager 创建存储管理器。
func NewStorageManager(provider IStorageProvider) *StorageManager {
	return &StorageManager{provider: provider}
}

// Provider 返回底层提供者。
func (m *StorageManager) Provider() IStorageProvider {
	return m.provider
}

// ListImages 透传底层提供者的照片列表。
func (m *StorageManager) ListImages(ctx context.Context) ([]model.StorageObject, error) {
	return m.provider.ListImages(ctx)
}

// ListAllFiles 透传底层提供者的全量文件列表。
func (m *StorageManager) ListAllFiles(ctx context.Context) ([]model.StorageObject, error) {
	return m.provider.ListAllFiles(ctx)
}

// DetectLivePhotos 在全量文件列表中为照片配对同名视频文件。
// 返回的 map 以照片对象键为键，值为配对的视频对象。
func (m *StorageManager) DetectLivePhotos(objects []model.StorageObject) map[string]model.StorageObject {
	// 先按 "目录/主干名" 索引所有视频文件
	videosByStem := make(map[string]model.StorageObject)
	for _, obj := range objects {
		ext := strings.ToLower(path.Ext(obj.Key))
		if videoExtensions[ext] {
			videosByStem[stemOf(obj.Key)] = obj
		}
	}
	if len(videosByStem) == 0 {
		return nil
	}

	result := make(map[string]model.StorageObject)
	for _, obj := range objects {
		ext := strings.ToLower(path.Ext(obj.Key))
		if !imageExtensions[ext] {
			continue
		}
		if video, ok := videosByStem[stemOf(obj.Key)]; ok {
			result[obj.Key] = video
		}
	}
	return result
}

// stemOf 返回对象键去掉扩展名后的部分，用于实况照片配对。
func stemOf(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext)
}

// isImageKey 判断对象键是否为照片。
func isImageKey(key string) bool {
	return imageExtensions[strings.ToLower(path.Ext(key))]
}
