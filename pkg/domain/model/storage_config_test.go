package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
)

func TestStorageConfigUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, cfg StorageConfig)
	}{
		{
			name:  "s3配置按provider分派",
			input: `{"provider":"s3","bucket":"gallery","region":"ap-east-1","prefix":"photos/"}`,
			check: func(t *testing.T, cfg StorageConfig) {
				if cfg.Provider != constant.ProviderTypeS3 || cfg.S3 == nil {
					t.Fatalf("cfg = %+v, 期望 s3 子配置", cfg)
				}
				if cfg.S3.Bucket != "gallery" || cfg.S3.Region != "ap-east-1" || cfg.S3.Prefix != "photos/" {
					t.Errorf("S3 = %+v", cfg.S3)
				}
				if cfg.Github != nil || cfg.Local != nil || cfg.Eagle != nil {
					t.Error("其余子配置应为 nil")
				}
			},
		},
		{
			name:  "github配置",
			input: `{"provider":"github","owner":"anzhiyu-c","repo":"photos","branch":"main","useRawUrl":true}`,
			check: func(t *testing.T, cfg StorageConfig) {
				if cfg.Github == nil || cfg.Github.Owner != "anzhiyu-c" || !cfg.Github.UseRawURL {
					t.Errorf("Github = %+v", cfg.Github)
				}
			},
		},
		{
			name:  "local配置",
			input: `{"provider":"local","basePath":"/data/photos","excludeRegex":"\\.tmp$"}`,
			check: func(t *testing.T, cfg StorageConfig) {
				if cfg.Local == nil || cfg.Local.BasePath != "/data/photos" {
					t.Errorf("Local = %+v", cfg.Local)
				}
			},
		},
		{
			name:  "eagle配置带筛选规则",
			input: `{"provider":"eagle","libraryPath":"/data/lib.library","include":[{"type":"tag","name":"publish"}],"exclude":[{"type":"folder","name":"draft","includeSubfolder":true}]}`,
			check: func(t *testing.T, cfg StorageConfig) {
				if cfg.Eagle == nil || cfg.Eagle.LibraryPath != "/data/lib.library" {
					t.Fatalf("Eagle = %+v", cfg.Eagle)
				}
				if len(cfg.Eagle.Include) != 1 || cfg.Eagle.Include[0].Type != "tag" {
					t.Errorf("Include = %+v", cfg.Eagle.Include)
				}
				if len(cfg.Eagle.Exclude) != 1 || !cfg.Eagle.Exclude[0].IncludeSubfolder {
					t.Errorf("Exclude = %+v", cfg.Eagle.Exclude)
				}
			},
		},
		{
			name:    "未知provider报错",
			input:   `{"provider":"ftp","host":"example.com"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg StorageConfig
			err := json.Unmarshal([]byte(tt.input), &cfg)
			if tt.wantErr {
				if !errors.Is(err, constant.ErrStorageConfigInvalid) {
					t.Errorf("err = %v, 期望 ErrStorageConfigInvalid", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal 出错: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestStorageConfigMarshalJSON(t *testing.T) {
	t.Run("编码回扁平结构", func(t *testing.T) {
		cfg := StorageConfig{
			Provider: constant.ProviderTypeS3,
			S3:       &S3StorageConfig{Bucket: "gallery", Region: "ap-east-1"},
		}

		data, err := json.Marshal(cfg)
		if err != nil {
			t.Fatalf("Marshal 出错: %v", err)
		}

		var flat map[string]interface{}
		if err := json.Unmarshal(data, &flat); err != nil {
			t.Fatalf("解析输出失败: %v", err)
		}
		if flat["provider"] != "s3" || flat["bucket"] != "gallery" {
			t.Errorf("输出 = %s, 期望扁平的 provider+bucket", data)
		}
		if _, nested := flat["s3"]; nested {
			t.Error("输出不应包含嵌套的 s3 字段")
		}
	})

	t.Run("往返保持等价", func(t *testing.T) {
		input := `{"provider":"github","owner":"anzhiyu-c","repo":"photos"}`
		var cfg StorageConfig
		if err := json.Unmarshal([]byte(input), &cfg); err != nil {
			t.Fatalf("Unmarshal 出错: %v", err)
		}
		data, err := json.Marshal(cfg)
		if err != nil {
			t.Fatalf("Marshal 出错: %v", err)
		}
		var back StorageConfig
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("二次 Unmarshal 出错: %v", err)
		}
		if back.Github == nil || back.Github.Owner != "anzhiyu-c" || back.Github.Repo != "photos" {
			t.Errorf("往返后 = %+v", back.Github)
		}
	})

	t.Run("缺少子配置时报错", func(t *testing.T) {
		cfg := StorageConfig{Provider: constant.ProviderTypeLocal}
		if _, err := json.Marshal(cfg); err == nil {
			t.Error("期望缺少子配置时编码失败")
		}
	})
}

func TestStorageConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StorageConfig
		wantErr bool
	}{
		{
			name: "合法的s3配置",
			cfg:  StorageConfig{Provider: constant.ProviderTypeS3, S3: &S3StorageConfig{Bucket: "b"}},
		},
		{
			name:    "s3缺少bucket",
			cfg:     StorageConfig{Provider: constant.ProviderTypeS3, S3: &S3StorageConfig{}},
			wantErr: true,
		},
		{
			name:    "github缺少repo",
			cfg:     StorageConfig{Provider: constant.ProviderTypeGitHub, Github: &GithubStorageConfig{Owner: "o"}},
			wantErr: true,
		},
		{
			name: "合法的local配置",
			cfg:  StorageConfig{Provider: constant.ProviderTypeLocal, Local: &LocalStorageConfig{BasePath: "/p"}},
		},
		{
			name:    "eagle缺少libraryPath",
			cfg:     StorageConfig{Provider: constant.ProviderTypeEagle, Eagle: &EagleStorageConfig{}},
			wantErr: true,
		},
		{
			name:    "provider与子配置不匹配",
			cfg:     StorageConfig{Provider: constant.ProviderTypeS3, Local: &LocalStorageConfig{BasePath: "/p"}},
			wantErr: true,
		},
		{
			name:    "未知provider",
			cfg:     StorageConfig{Provider: "ftp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, constant.ErrStorageConfigInvalid) {
					t.Errorf("err = %v, 期望 ErrStorageConfigInvalid", err)
				}
			} else if err != nil {
				t.Errorf("Validate() 出错: %v", err)
			}
		})
	}
}
