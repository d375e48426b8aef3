/*
 * @Description: GitHub 仓库存储提供者实现（基于 Git Trees API）
 * @Author: 安知鱼
 * @Date: 2025-08-23 04:48:02
 * @LastEditTime: 2025-09-01 13:40:29
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"

	"golang.org/x/time/rate"
)

const githubAPIBase = "https://api.github.com"

// githubTreeResponse 是 Git Trees API 返回的树结构
type githubTreeResponse struct {
	SHA       string            `json:"sha"`
	Truncated bool              `json:"truncated"`
	Tree      []githubTreeEntry `json:"tree"`
}

type githubTreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size *int64 `json:"size"`
}

// GithubProvider 实现了 IStorageProvider 接口，把 GitHub 仓库当作只读对象存储。
// 对象的 ETag 使用 blob SHA，仓库内容寻址保证了它随内容变化。
// Git 不保存文件修改时间，因此 LastModified 恒为空。
type GithubProvider struct {
	cfg    *model.GithubStorageConfig
	client *http.Client
}

// NewGithubProvider 是 GithubProvider 的构造函数。
func NewGithubProvider(cfg *model.GithubStorageConfig) IStorageProvider {
	// GitHub 对未认证请求限流很紧，统一给客户端挂一个温和的限速器
	transport := &rateLimitedTransport{
		base:    http.DefaultTransport,
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
	return &GithubProvider{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
	}
}

// rateLimitedTransport 是一个自定义的 http.RoundTripper，它在执行每个请求前会等待限速器的许可。
type rateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// RoundTrip 实现了 http.RoundTripper 接口，并在此处插入限速逻辑。
func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

func (p *GithubProvider) branch() string {
	if p.cfg.Branch != "" {
		return p.cfg.Branch
	}
	return "main"
}

func (p *GithubProvider) setAuth(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if p.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.cfg.Token)
	}
}

// ListImages 列出仓库中的所有照片文件。
func (p *GithubProvider) ListImages(ctx context.Context) ([]model.StorageObject, error) {
	all, err := p.listTree(ctx)
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

// ListAllFiles 列出仓库中的所有文件。
func (p *GithubProvider) ListAllFiles(ctx context.Context) ([]model.StorageObject, error) {
	return p.listTree(ctx)
}

// listTree 通过 Git Trees API 一次性递归拉取整棵树。
func (p *GithubProvider) listTree(ctx context.Context) ([]model.StorageObject, error) {
	treeURL := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		githubAPIBase, url.PathEscape(p.cfg.Owner), url.PathEscape(p.cfg.Repo), url.PathEscape(p.branch()))

	req, err := http.NewRequestWithContext(ctx, "GET", treeURL, nil)
	if err != nil {
		return nil, err
	}
	p.setAuth(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 GitHub Trees API 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("GitHub Trees API 返回 %d: %s", resp.StatusCode, string(body))
	}

	var tree githubTreeResponse
	if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
		return nil, fmt.Errorf("解析 GitHub Trees 响应失败: %w", err)
	}

	if tree.Truncated {
		log.Printf("[GitHub] 警告: 仓库 %s/%s 的树被截断，部分文件可能未列出", p.cfg.Owner, p.cfg.Repo)
	}

	prefix := strings.Trim(p.cfg.Path, "/")

	var objects []model.StorageObject
	for _, entry := range tree.Tree {
		if entry.Type != "blob" {
			continue
		}
		if prefix != "" && !strings.HasPrefix(entry.Path, prefix+"/") {
			continue
		}
		sha := entry.SHA
		objects = append(objects, model.StorageObject{
			Key:  entry.Path,
			Size: entry.Size,
			ETag: &sha,
			// Git 不记录修改时间，保持为空
		})
	}

	log.Printf("[GitHub] 共列出 %d 个文件 (repo=%s/%s, branch=%s)", len(objects), p.cfg.Owner, p.cfg.Repo, p.branch())
	return objects, nil
}

// escapePathSegments 对对象键逐段做 URL 转义，
// 保留 "/" 作为分隔符，空格、# 等字符不会破坏请求路径。
func escapePathSegments(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// Get 返回指定文件的内容流。
// useRawUrl 开启时走 raw.githubusercontent.com，否则走 contents API 的 raw 媒体类型。
func (p *GithubProvider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	escapedKey := escapePathSegments(key)
	var fileURL string
	if p.cfg.UseRawURL {
		fileURL = fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s",
			url.PathEscape(p.cfg.Owner), url.PathEscape(p.cfg.Repo), url.PathEscape(p.branch()), escapedKey)
	} else {
		fileURL = fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
			githubAPIBase, url.PathEscape(p.cfg.Owner), url.PathEscape(p.cfg.Repo), escapedKey, url.QueryEscape(p.branch()))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", fileURL, nil)
	if err != nil {
		return nil, err
	}
	p.setAuth(req)
	if !p.cfg.UseRawURL {
		req.Header.Set("Accept", "application/vnd.github.raw+json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("下载 GitHub 文件 '%s' 失败: %w", key, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("下载 GitHub 文件 '%s' 返回 %d", key, resp.StatusCode)
	}
	return resp.Body, nil
}
