/*
 * @Description: 照片处理管线，为存储对象生成清单条目
 * @Author: 安知鱼
 * @Date: 2025-08-23 05:55:14
 * @LastEditTime: 2025-09-01 15:02:47
 * @LastEditors: 安知鱼
 */
package builder

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"path"
	"regexp"
	"strings"

	"github.com/anzhiyu-c/afilmory-app/internal/infra/storage"
	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Service 是照片处理管线，负责从存储对象生成带版本号的清单条目。
type Service struct {
	cfg     *model.BuilderConfig
	manager *storage.StorageManager
	// forceMode 为真时忽略已有清单条目，完全重新生成
	forceMode bool
	// forceManifest 为真时重新生成清单字段，但保留已有条目的稳定 ID
	forceManifest bool
}

// NewService 根据管线配置创建服务，内部按配置构造存储提供者。
func NewService(cfg *model.BuilderConfig) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: 缺少管线配置", constant.ErrStorageConfigInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	provider, err := storage.NewProvider(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:           cfg,
		manager:       storage.NewStorageManager(provider),
		forceMode:     optionBool(cfg.Options, "isForceMode"),
		forceManifest: optionBool(cfg.Options, "isForceManifest"),
	}, nil
}

// optionBool 从不透明的 options 映射里取布尔开关
func optionBool(options map[string]interface{}, key string) bool {
	if options == nil {
		return false
	}
	v, ok := options[key].(bool)
	return ok && v
}

// StorageManager 返回管线使用的存储管理器。
func (s *Service) StorageManager() *storage.StorageManager {
	return s.manager
}

// ProcessOptions 控制单个存储对象的处理。
type ProcessOptions struct {
	// Existing 是该对象已有的清单条目，存在时沿用其中的稳定字段（ID、标题）。
	Existing *model.PhotoManifestItem
	// LivePhotoMap 是照片键到配对视频对象的映射，为 nil 时跳过实况照片判定。
	LivePhotoMap map[string]model.StorageObject
}

// ProcessStorageObject 读取存储对象并生成清单条目。
func (s *Service) ProcessStorageObject(ctx context.Context, obj model.StorageObject, opts ProcessOptions) (*model.PhotoManifestItem, error) {
	reader, err := s.manager.Provider().Get(ctx, obj.Key)
	if err != nil {
		return nil, fmt.Errorf("读取存储对象 '%s' 失败: %w", obj.Key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取存储对象 '%s' 内容失败: %w", obj.Key, err)
	}

	ext := strings.ToLower(path.Ext(obj.Key))

	item := &model.PhotoManifestItem{
		ID:     photoIDForKey(obj.Key),
		Title:  titleForKey(obj.Key),
		Format: strings.TrimPrefix(ext, "."),
	}
	if opts.Existing != nil && !s.forceMode {
		if opts.Existing.ID != "" {
			item.ID = opts.Existing.ID
		}
		if !s.forceManifest {
			if opts.Existing.Title != "" {
				item.Title = opts.Existing.Title
			}
			item.Description = opts.Existing.Description
		}
	}

	// 尺寸：用 imaging 解码并自动应用 EXIF 方向
	if img, decErr := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true)); decErr == nil {
		bounds := img.Bounds()
		item.Width = bounds.Dx()
		item.Height = bounds.Dy()

		// 主色调：K-Means 取前三种
		if colors, cErr := prominentcolor.KmeansWithArgs(3, img); cErr == nil {
			for _, c := range colors {
				item.DominantColors = append(item.DominantColors,
					fmt.Sprintf("#%02x%02x%02x", c.Color.R, c.Color.G, c.Color.B))
			}
		}
	} else {
		log.Printf("[Builder] 警告: 解码图片 '%s' 失败: %v，清单将缺少尺寸与主色调", obj.Key, decErr)
	}

	// EXIF 摘要
	exifMap := extractExifMap(bytes.NewReader(data), len(data), ext)
	item.Exif = summarizeExif(exifMap)

	// 拍摄时间：EXIF 优先，缺失时退回存储端修改时间
	if v := exifDateTaken(exifMap); v != "" {
		item.DateTaken = v
	} else if obj.LastModified != nil {
		item.DateTaken = obj.LastModified.UTC().Format("2006-01-02T15:04:05Z07:00")
	}

	// 实况照片配对
	if opts.LivePhotoMap != nil {
		if video, ok := opts.LivePhotoMap[obj.Key]; ok {
			item.IsLivePhoto = true
			item.LivePhotoVideoKey = video.Key
		}
	}

	return item, nil
}

var photoIDSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// photoIDForKey 从对象键派生稳定的照片 ID：
// 文件名主干的 slug 加上对象键 SHA-256 的前 8 位，保证跨目录同名文件不碰撞。
func photoIDForKey(key string) string {
	base := path.Base(key)
	stem := strings.TrimSuffix(base, path.Ext(base))

	slug := photoIDSanitizer.ReplaceAllString(strings.ToLower(stem), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "photo"
	}

	sum := sha256.Sum256([]byte(key))
	return slug + "-" + hex.EncodeToString(sum[:])[:8]
}

// titleForKey 用文件名主干作为默认标题。
func titleForKey(key string) string {
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}
