package builder

import (
	"strings"
	"testing"
)

func TestPhotoIDForKey(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantPrefix string
	}{
		{name: "普通文件名", key: "photos/Sunset Beach.jpg", wantPrefix: "sunset-beach-"},
		{name: "中文等非ASCII字符被剔除", key: "photos/日落2024.jpg", wantPrefix: "2024-"},
		{name: "全部为非法字符时退回占位", key: "photos/керчь.jpg", wantPrefix: "photo-"},
		{name: "大小写归一", key: "A/B/IMG_0001.HEIC", wantPrefix: "img-0001-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := photoIDForKey(tt.key)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("photoIDForKey(%q) = %q, 期望前缀 %q", tt.key, got, tt.wantPrefix)
			}
			// slug 后缀是对象键哈希的前 8 位
			suffix := strings.TrimPrefix(got, tt.wantPrefix)
			if len(suffix) != 8 {
				t.Errorf("哈希后缀 = %q, 期望 8 位", suffix)
			}
		})
	}

	t.Run("不同目录同名文件生成不同ID", func(t *testing.T) {
		a := photoIDForKey("2024/a.jpg")
		b := photoIDForKey("2025/a.jpg")
		if a == b {
			t.Errorf("两个不同对象键的ID相同: %s", a)
		}
	})

	t.Run("同一对象键的ID稳定", func(t *testing.T) {
		if photoIDForKey("photos/a.jpg") != photoIDForKey("photos/a.jpg") {
			t.Error("同一对象键应生成相同ID")
		}
	})
}

func TestTitleForKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{key: "photos/Sunset Beach.jpg", expected: "Sunset Beach"},
		{key: "IMG_0001.HEIC", expected: "IMG_0001"},
		{key: "nested/dir/日落.png", expected: "日落"},
	}

	for _, tt := range tests {
		if got := titleForKey(tt.key); got != tt.expected {
			t.Errorf("titleForKey(%q) = %q, 期望 %q", tt.key, got, tt.expected)
		}
	}
}

func TestSummarizeExif(t *testing.T) {
	t.Run("常用字段摘要", func(t *testing.T) {
		summary := summarizeExif(map[string]string{
			"Make":             "Apple",
			"Model":            "iPhone 15 Pro",
			"FNumber":          "28/10",
			"FocalLength":      "24/1",
			"ISOSpeedRatings":  "125",
			"DateTimeOriginal": "2024:06:01 08:30:00",
		})

		if summary["make"] != "Apple" || summary["model"] != "iPhone 15 Pro" {
			t.Errorf("summary = %+v", summary)
		}
		if summary["fNumber"] != "2.8" {
			t.Errorf("fNumber = %q, 期望 2.8", summary["fNumber"])
		}
		if summary["focalLength"] != "24" {
			t.Errorf("focalLength = %q, 期望 24", summary["focalLength"])
		}
		if summary["dateTimeOriginal"] != "2024-06-01T08:30:00Z" {
			t.Errorf("dateTimeOriginal = %q", summary["dateTimeOriginal"])
		}
	})

	t.Run("空映射返回nil", func(t *testing.T) {
		if summarizeExif(nil) != nil {
			t.Error("期望 nil")
		}
		if summarizeExif(map[string]string{"Unknown": "x"}) != nil {
			t.Error("没有任何可识别字段时期望 nil")
		}
	})
}

func TestExifDateTaken(t *testing.T) {
	tests := []struct {
		name     string
		exifMap  map[string]string
		expected string
	}{
		{
			name:     "DateTimeOriginal优先",
			exifMap:  map[string]string{"DateTimeOriginal": "2024:06:01 08:30:00", "DateTime": "2024:07:01 00:00:00"},
			expected: "2024-06-01T08:30:00Z",
		},
		{
			name:     "退回CreateDate",
			exifMap:  map[string]string{"CreateDate": "2024:06-01 08:30:00", "DateTime": "2024:07:01 00:00:00"},
			expected: "2024-07-01T00:00:00Z", // CreateDate 格式非法时继续向后退
		},
		{
			name:     "无可用时间",
			exifMap:  map[string]string{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exifDateTaken(tt.exifMap); got != tt.expected {
				t.Errorf("exifDateTaken() = %q, 期望 %q", got, tt.expected)
			}
		})
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{input: "28/10", expected: 2.8},
		{input: "24/1", expected: 24},
		{input: "1/0", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1/2/3", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseRational(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRational(%q) 期望出错", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRational(%q) 出错: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseRational(%q) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}
