/*
 * @Description: 本地文件系统存储提供者实现
 * @Author: 安知鱼
 * @Date: 2025-08-23 05:02:41
 * @LastEditTime: 2025-09-01 13:55:17
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// LocalProvider 实现了 IStorageProvider 接口，用于处理与本机磁盘文件系统的所有交互。
// 本地文件没有原生 ETag，这里保持为空，元数据指纹退化为 size + mtime。
type LocalProvider struct {
	cfg *model.LocalStorageConfig
}

// NewLocalProvider 是 LocalProvider 的构造函数。
func NewLocalProvider(cfg *model.LocalStorageConfig) IStorageProvider {
	return &LocalProvider{cfg: cfg}
}

// ListImages 递归列出基础目录下的所有照片文件。
func (p *LocalProvider) ListImages(ctx context.Context) ([]model.StorageObject, error) {
	all, err := p.walk(ctx)
	if err != nil {
		return nil, err
	}
	images := make([]model.StorageObject, 0, len(all))
	for _, obj := range all {
		if isImageKey(obj.Key) {
			images = append(images, obj)
		}
	}
	if p.cfg.MaxFileLimit > 0 && len(images) > p.cfg.MaxFileLimit {
		images = images[:p.cfg.MaxFileLimit]
	}
	return images, nil
}

// ListAllFiles 递归列出基础目录下的所有文件。
func (p *LocalProvider) ListAllFiles(ctx context.Context) ([]model.StorageObject, error) {
	return p.walk(ctx)
}

// walk 遍历基础目录，对象键使用相对于 basePath 的斜杠分隔路径。
func (p *LocalProvider) walk(ctx context.Context) ([]model.StorageObject, error) {
	var excludeRe *regexp.Regexp
	if p.cfg.ExcludeRegex != "" {
		var err error
		excludeRe, err = regexp.Compile(p.cfg.ExcludeRegex)
		if err != nil {
			return nil, fmt.Errorf("无效的排除规则 '%s': %w", p.cfg.ExcludeRegex, err)
		}
	}

	var objects []model.StorageObject
	err := filepath.WalkDir(p.cfg.BasePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 目录不存在时返回空列表，符合 List 的语义
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			// 跳过隐藏目录
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(p.cfg.BasePath, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if excludeRe != nil && excludeRe.MatchString(key) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		size := info.Size()
		modTime := info.ModTime()
		objects = append(objects, model.StorageObject{
			Key:          key,
			Size:         &size,
			LastModified: &modTime,
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return []model.StorageObject{}, nil
		}
		return nil, fmt.Errorf("遍历本地目录 '%s' 失败: %w", p.cfg.BasePath, err)
	}

	// WalkDir 的顺序依赖文件系统，统一按键排序保证结果稳定
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// Get 返回指定文件的内容流。
func (p *LocalProvider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(cleaned, "..") {
		return nil, fmt.Errorf("非法的对象键: %s", key)
	}
	f, err := os.Open(filepath.Join(p.cfg.BasePath, cleaned))
	if err != nil {
		return nil, fmt.Errorf("打开本地文件 '%s' 失败: %w", key, err)
	}
	return f, nil
}
