/*
 * @Description: 存储后端配置（按 provider 区分的联合类型）
 * @Author: 安知鱼
 * @Date: 2025-08-23 02:05:44
 * @LastEditTime: 2025-09-01 10:55:12
 * @LastEditors: 安知鱼
 */
package model

import (
	"encoding/json"
	"fmt"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
)

// S3StorageConfig S3 兼容对象存储的配置。
type S3StorageConfig struct {
	Bucket              string  `json:"bucket"`
	Region              string  `json:"region,omitempty"`
	Endpoint            string  `json:"endpoint,omitempty"`
	AccessKeyID         string  `json:"accessKeyId,omitempty"`
	SecretAccessKey     string  `json:"secretAccessKey,omitempty"`
	Prefix              string  `json:"prefix,omitempty"`
	CustomDomain        string  `json:"customDomain,omitempty"`
	ExcludeRegex        string  `json:"excludeRegex,omitempty"`
	MaxFileLimit        int     `json:"maxFileLimit,omitempty"`
	ForcePathStyle      bool    `json:"forcePathStyle,omitempty"`
	RetryMode           string  `json:"retryMode,omitempty"`
	MaxAttempts         int     `json:"maxAttempts,omitempty"`
	DownloadConcurrency int     `json:"downloadConcurrency,omitempty"`
	RequestTimeoutMs    int     `json:"requestTimeoutMs,omitempty"`
	ConnectionTimeoutMs int     `json:"connectionTimeoutMs,omitempty"`
	SessionToken        *string `json:"sessionToken,omitempty"`
}

// GithubStorageConfig GitHub 仓库作为存储后端的配置。
type GithubStorageConfig struct {
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	Branch    string `json:"branch,omitempty"`
	Token     string `json:"token,omitempty"`
	Path      string `json:"path,omitempty"`
	UseRawURL bool   `json:"useRawUrl,omitempty"`
}

// LocalStorageConfig 本地文件系统存储的配置。
type LocalStorageConfig struct {
	BasePath     string `json:"basePath"`
	BaseURL      string `json:"baseUrl,omitempty"`
	DistPath     string `json:"distPath,omitempty"`
	ExcludeRegex string `json:"excludeRegex,omitempty"`
	MaxFileLimit int    `json:"maxFileLimit,omitempty"`
}

// EagleRule Eagle 素材库的筛选规则，type 取值 tag / folder / smartFolder。
type EagleRule struct {
	Type             string `json:"type"`
	Name             string `json:"name,omitempty"`
	IncludeSubfolder bool   `json:"includeSubfolder,omitempty"`
}

// EagleStorageConfig Eagle 素材库作为存储后端的配置。
type EagleStorageConfig struct {
	LibraryPath string      `json:"libraryPath"`
	DistPath    string      `json:"distPath,omitempty"`
	BaseURL     string      `json:"baseUrl,omitempty"`
	Include     []EagleRule `json:"include,omitempty"`
	Exclude     []EagleRule `json:"exclude,omitempty"`
}

// StorageConfig 是区分联合：Provider 决定哪个子配置有效，其余子配置必须为 nil。
// 线上 JSON 是扁平结构（provider 字段 + 对应 provider 的字段平铺），
// 序列化逻辑负责在扁平结构与联合结构之间转换。
type StorageConfig struct {
	Provider constant.StorageProviderType
	S3       *S3StorageConfig
	Github   *GithubStorageConfig
	Local    *LocalStorageConfig
	Eagle    *EagleStorageConfig
}

// UnmarshalJSON 从扁平 JSON 解码，按 provider 分派到对应子配置。
func (c *StorageConfig) UnmarshalJSON(data []byte) error {
	var probe struct {
		Provider constant.StorageProviderType `json:"provider"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	c.Provider = probe.Provider
	c.S3, c.Github, c.Local, c.Eagle = nil, nil, nil, nil

	switch probe.Provider {
	case constant.ProviderTypeS3:
		c.S3 = &S3StorageConfig{}
		return json.Unmarshal(data, c.S3)
	case constant.ProviderTypeGitHub:
		c.Github = &GithubStorageConfig{}
		return json.Unmarshal(data, c.Github)
	case constant.ProviderTypeLocal:
		c.Local = &LocalStorageConfig{}
		return json.Unmarshal(data, c.Local)
	case constant.ProviderTypeEagle:
		c.Eagle = &EagleStorageConfig{}
		return json.Unmarshal(data, c.Eagle)
	default:
		return fmt.Errorf("%w: 未知的存储提供者 %q", constant.ErrStorageConfigInvalid, probe.Provider)
	}
}

// MarshalJSON 编码回扁平 JSON。
func (c StorageConfig) MarshalJSON() ([]byte, error) {
	flat := map[string]interface{}{"provider": c.Provider}
	var sub interface{}
	switch c.Provider {
	case constant.ProviderTypeS3:
		sub = c.S3
	case constant.ProviderTypeGitHub:
		sub = c.Github
	case constant.ProviderTypeLocal:
		sub = c.Local
	case constant.ProviderTypeEagle:
		sub = c.Eagle
	default:
		return nil, fmt.Errorf("%w: 未知的存储提供者 %q", constant.ErrStorageConfigInvalid, c.Provider)
	}
	if sub == nil {
		return nil, fmt.Errorf("%w: 提供者 %q 缺少对应配置", constant.ErrStorageConfigInvalid, c.Provider)
	}
	raw, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	flat["provider"] = c.Provider
	return json.Marshal(flat)
}

// Validate 做穷举校验：provider 合法、对应子配置存在且必填字段非空。
func (c *StorageConfig) Validate() error {
	switch c.Provider {
	case constant.ProviderTypeS3:
		if c.S3 == nil || c.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 配置缺少 bucket", constant.ErrStorageConfigInvalid)
		}
	case constant.ProviderTypeGitHub:
		if c.Github == nil || c.Github.Owner == "" || c.Github.Repo == "" {
			return fmt.Errorf("%w: github 配置缺少 owner 或 repo", constant.ErrStorageConfigInvalid)
		}
	case constant.ProviderTypeLocal:
		if c.Local == nil || c.Local.BasePath == "" {
			return fmt.Errorf("%w: local 配置缺少 basePath", constant.ErrStorageConfigInvalid)
		}
	case constant.ProviderTypeEagle:
		if c.Eagle == nil || c.Eagle.LibraryPath == "" {
			return fmt.Errorf("%w: eagle 配置缺少 libraryPath", constant.ErrStorageConfigInvalid)
		}
	default:
		return fmt.Errorf("%w: 未知的存储提供者 %q", constant.ErrStorageConfigInvalid, c.Provider)
	}
	return nil
}

// BuilderConfig 照片处理管线的配置。Storage 指定管线读取原图的后端，
// 其余字段为管线的透传选项。
type BuilderConfig struct {
	Storage     StorageConfig          `json:"storage"`
	Options     map[string]interface{} `json:"options,omitempty"`
	Logging     map[string]interface{} `json:"logging,omitempty"`
	Performance map[string]interface{} `json:"performance,omitempty"`
}

// Validate 校验管线配置。
func (c *BuilderConfig) Validate() error {
	return c.Storage.Validate()
}
