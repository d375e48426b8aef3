/*
 * @Description: AWS S3存储提供者实现（使用aws-sdk-go-v2）
 * @Author: 安知鱼
 * @Date: 2025-08-23 04:25:36
 * @LastEditTime: 2025-09-01 13:22:18
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Provider 实现了 IStorageProvider 接口，用于处理与 S3 兼容对象存储的所有交互。
type S3Provider struct {
	cfg *model.S3StorageConfig
}

// NewS3Provider 是 S3Provider 的构造函数。
func NewS3Provider(cfg *model.S3StorageConfig) IStorageProvider {
	return &S3Provider{cfg: cfg}
}

// getS3Client 获取AWS S3客户端（使用aws-sdk-go-v2）
func (p *S3Provider) getS3Client(ctx context.Context) (*s3.Client, error) {
	region := p.cfg.Region
	if region == "" {
		region = "us-east-1" // 默认区域
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(region))

	// 显式凭证优先；未提供时退回 SDK 默认链（环境变量、IAM 角色等）
	if p.cfg.AccessKeyID != "" && p.cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.cfg.AccessKeyID,
			p.cfg.SecretAccessKey,
			"",
		)))
	}

	if p.cfg.RetryMode != "" {
		opts = append(opts, config.WithRetryMode(aws.RetryMode(p.cfg.RetryMode)))
	}
	if p.cfg.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(p.cfg.MaxAttempts))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Printf("[AWS S3] 创建配置失败: %v", err)
		return nil, fmt.Errorf("创建AWS S3配置失败: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if p.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(p.cfg.Endpoint)
			// 对于自定义endpoint通常需要path-style
			o.UsePathStyle = true
		}
		if p.cfg.ForcePathStyle {
			o.UsePathStyle = true
		}
	})

	return client, nil
}

// ListImages 列出存储桶中的所有照片对象。
func (p *S3Provider) ListImages(ctx context.Context) ([]model.StorageObject, error) {
	all, err := p.listObjects(ctx)
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

// ListAllFiles 列出存储桶中的所有文件。
func (p *S3Provider) ListAllFiles(ctx context.Context) ([]model.StorageObject, error) {
	return p.listObjects(ctx)
}

// listObjects 使用分页器遍历整个前缀下的对象。
func (p *S3Provider) listObjects(ctx context.Context) ([]model.StorageObject, error) {
	client, err := p.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	var excludeRe *regexp.Regexp
	if p.cfg.ExcludeRegex != "" {
		excludeRe, err = regexp.Compile(p.cfg.ExcludeRegex)
		if err != nil {
			return nil, fmt.Errorf("无效的排除规则 '%s': %w", p.cfg.ExcludeRegex, err)
		}
	}

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(p.cfg.Bucket),
	}
	if p.cfg.Prefix != "" {
		input.Prefix = aws.String(strings.TrimPrefix(p.cfg.Prefix, "/"))
	}

	var objects []model.StorageObject
	paginator := s3.NewListObjectsV2Paginator(client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Printf("[AWS S3] 列出对象失败: %v", err)
			return nil, fmt.Errorf("列出 S3 对象失败: %w", err)
		}
		for _, item := range page.Contents {
			if item.Key == nil {
				continue
			}
			key := *item.Key
			// 跳过目录占位对象
			if strings.HasSuffix(key, "/") {
				continue
			}
			if excludeRe != nil && excludeRe.MatchString(key) {
				continue
			}
			obj := model.StorageObject{
				Key:          key,
				Size:         item.Size,
				LastModified: item.LastModified,
			}
			if item.ETag != nil {
				etag := strings.Trim(*item.ETag, `"`)
				obj.ETag = &etag
			}
			objects = append(objects, obj)
		}
	}

	log.Printf("[AWS S3] 共列出 %d 个对象 (bucket=%s, prefix=%s)", len(objects), p.cfg.Bucket, p.cfg.Prefix)
	return objects, nil
}

// Get 返回指定对象的内容流。
func (p *S3Provider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	client, err := p.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	output, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("获取 S3 对象 '%s' 失败: %w", key, err)
	}
	return output.Body, nil
}
