/*
 * @Description: Eagle 素材库存储提供者实现
 * @Author: 安知鱼
 * @Date: 2025-08-23 05:20:12
 * @LastEditTime: 2025-09-01 14:10:55
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// eagleItemMetadata 是 Eagle 素材条目 metadata.json 的结构（只取同步需要的字段）
type eagleItemMetadata struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Ext       string   `json:"ext"`
	Size      int64    `json:"size"`
	MTime     int64    `json:"mtime"`
	Tags      []string `json:"tags"`
	Folders   []string `json:"folders"`
	IsDeleted bool     `json:"isDeleted"`
}

// eagleLibraryMetadata 是素材库根目录 metadata.json 的结构
type eagleLibraryMetadata struct {
	Folders []eagleFolder `json:"folders"`
}

type eagleFolder struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Children []eagleFolder `json:"children"`
}

// EagleProvider 实现了 IStorageProvider 接口，把 Eagle 素材库当作只读存储。
// 对象键格式为 "条目ID/文件名.扩展名"，对应素材库内 images/<ID>.info/ 下的原始文件。
type EagleProvider struct {
	cfg *model.EagleStorageConfig
}

// NewEagleProvider 是 EagleProvider 的构造函数。
func NewEagleProvider(cfg *model.EagleStorageConfig) IStorageProvider {
	return &EagleProvider{cfg: cfg}
}

// ListImages 列出素材库中通过筛选规则的所有照片。
func (p *EagleProvider) ListImages(ctx context.Context) ([]model.StorageObject, error) {
	all, err := p.listItems(ctx)
	if err != nil {
		return nil, err
	}
	images := make([]model.StorageObject, 0, len(all))
	for _, obj := range all {
		if isImageKey(obj.Key) {
			images = append(images, obj)
		}
	}
	return images, nil
}

// ListAllFiles 列出素材库中通过筛选规则的所有文件。
func (p *EagleProvider) ListAllFiles(ctx context.Context) ([]model.StorageObject, error) {
	return p.listItems(ctx)
}

// listItems 遍历 images/ 下的 *.info 目录，读取每个条目的 metadata.json。
func (p *EagleProvider) listItems(ctx context.Context) ([]model.StorageObject, error) {
	folderNames, err := p.loadFolderNames()
	if err != nil {
		return nil, err
	}

	imagesDir := filepath.Join(p.cfg.LibraryPath, "images")
	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.StorageObject{}, nil
		}
		return nil, fmt.Errorf("读取 Eagle 素材库目录 '%s' 失败: %w", imagesDir, err)
	}

	var objects []model.StorageObject
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ".info") {
			continue
		}

		metaPath := filepath.Join(imagesDir, entry.Name(), "metadata.json")
		raw, err := os.ReadFile(metaPath)
		if err != nil {
			log.Printf("[Eagle] 警告: 读取条目元数据 '%s' 失败: %v", metaPath, err)
			continue
		}

		var item eagleItemMetadata
		if err := json.Unmarshal(raw, &item); err != nil {
			log.Printf("[Eagle] 警告: 解析条目元数据 '%s' 失败: %v", metaPath, err)
			continue
		}
		if item.IsDeleted {
			continue
		}
		if !p.matchRules(&item, folderNames) {
			continue
		}

		size := item.Size
		modTime := time.UnixMilli(item.MTime)
		objects = append(objects, model.StorageObject{
			Key:          fmt.Sprintf("%s/%s.%s", item.ID, item.Name, item.Ext),
			Size:         &size,
			LastModified: &modTime,
		})
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	log.Printf("[Eagle] 共列出 %d 个条目 (library=%s)", len(objects), p.cfg.LibraryPath)
	return objects, nil
}

// loadFolderNames 读取素材库根 metadata.json，建立 文件夹ID -> 名称 的映射。
func (p *EagleProvider) loadFolderNames() (map[string]string, error) {
	metaPath := filepath.Join(p.cfg.LibraryPath, "metadata.json")
	raw, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("读取 Eagle 素材库元数据 '%s' 失败: %w", metaPath, err)
	}

	var lib eagleLibraryMetadata
	if err := json.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("解析 Eagle 素材库元数据失败: %w", err)
	}

	names := make(map[string]string)
	var collect func(folders []eagleFolder)
	collect = func(folders []eagleFolder) {
		for _, f := range folders {
			names[f.ID] = f.Name
			collect(f.Children)
		}
	}
	collect(lib.Folders)
	return names, nil
}

// matchRules 应用 include / exclude 筛选规则。
// include 为空时默认全部通过；exclude 命中即排除。smartFolder 规则需要
// Eagle 应用的运行时求值，这里不做判定。
func (p *EagleProvider) matchRules(item *eagleItemMetadata, folderNames map[string]string) bool {
	matches := func(rule model.EagleRule) bool {
		switch rule.Type {
		case "tag":
			for _, tag := range item.Tags {
				if tag == rule.Name {
					return true
				}
			}
		case "folder":
			for _, folderID := range item.Folders {
				if folderNames[folderID] == rule.Name {
					return true
				}
			}
		}
		return false
	}

	for _, rule := range p.cfg.Exclude {
		if matches(rule) {
			return false
		}
	}

	if len(p.cfg.Include) == 0 {
		return true
	}
	for _, rule := range p.cfg.Include {
		if matches(rule) {
			return true
		}
	}
	return false
}

// Get 返回指定条目原始文件的内容流。
func (p *EagleProvider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("非法的 Eagle 对象键: %s", key)
	}
	filePath := filepath.Join(p.cfg.LibraryPath, "images", parts[0]+".info", filepath.FromSlash(parts[1]))
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("打开 Eagle 素材文件 '%s' 失败: %w", key, err)
	}
	return f, nil
}
