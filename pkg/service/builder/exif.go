/*
 * @Description: 照片 EXIF 提取
 * @Author: 安知鱼
 * @Date: 2025-08-23 05:48:30
 * @LastEditTime: 2025-09-01 14:35:21
 * @LastEditors: 安知鱼
 */
package builder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dsoprea/go-exif/v3"

	heicexif "github.com/dsoprea/go-heic-exif-extractor"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure"
	pngstructure "github.com/dsoprea/go-png-image-structure"
	riimage "github.com/dsoprea/go-utility/image"
)

type (
	exifParser interface {
		Parse(rs io.ReadSeeker, size int) (ec riimage.MediaContext, err error)
	}
)

func getExifParser(ext string) exifParser {
	switch ext {
	case ".jpg", ".jpeg":
		return jpegstructure.NewJpegMediaParser()
	case ".png":
		return pngstructure.NewPngMediaParser()
	case ".heic", ".heif", ".avif":
		return heicexif.NewHeicExifMediaParser()
	default:
		// 其他格式依赖蛮力搜索
		return nil
	}
}

// extractExifMap 从图片数据中提取扁平化的 EXIF 键值表。
// 先尝试按格式结构化解析，失败后退回蛮力搜索；两者都没有结果时返回空表。
func extractExifMap(rs io.ReadSeeker, size int, ext string) map[string]string {
	var exifData []byte

	if parser := getExifParser(ext); parser != nil {
		if res, pErr := parser.Parse(rs, size); pErr == nil {
			_, exifData, _ = res.Exif()
		} else {
			log.Printf("[Builder] 信息: 结构化解析 EXIF 失败: %v。将尝试蛮力搜索。", pErr)
		}
	}

	if len(exifData) == 0 {
		if _, seekErr := rs.Seek(0, io.SeekStart); seekErr != nil {
			return nil
		}
		var err error
		exifData, err = exif.SearchAndExtractExifWithReader(rs)
		if err != nil && !errors.Is(err, exif.ErrNoExif) {
			log.Printf("[Builder] 警告: EXIF 蛮力搜索出错: %v", err)
		}
	}

	if len(exifData) == 0 {
		return nil
	}

	entries, _, err := exif.GetFlatExifData(exifData, nil)
	if err != nil {
		log.Printf("[Builder] 错误: 解析 EXIF 条目失败: %v", err)
		return nil
	}

	rawExifMap := make(map[string]string)
	for _, tag := range entries {
		if tag.TagName != "" {
			// 清理空字符
			cleanedValue := strings.ReplaceAll(tag.FormattedFirst, "\x00", "")
			if cleanedValue != "" {
				rawExifMap[tag.TagName] = cleanedValue
			}
		}
	}
	return rawExifMap
}

// summarizeExif 把原始 EXIF 表收敛成清单需要的摘要字段。
func summarizeExif(exifMap map[string]string) map[string]string {
	if len(exifMap) == 0 {
		return nil
	}

	summary := make(map[string]string)
	if v, ok := exifMap["Make"]; ok {
		summary["make"] = v
	}
	if v, ok := exifMap["Model"]; ok {
		summary["model"] = v
	}
	if v, ok := exifMap["LensModel"]; ok {
		summary["lensModel"] = v
	}
	if v, ok := exifMap["ExposureTime"]; ok {
		summary["exposureTime"] = v
	}
	if v, ok := exifMap["ISOSpeedRatings"]; ok {
		summary["iso"] = v
	}
	if v, ok := exifMap["FNumber"]; ok {
		if f, err := parseRational(v); err == nil {
			summary["fNumber"] = fmt.Sprintf("%.1f", f)
		}
	}
	if v, ok := exifMap["FocalLength"]; ok {
		if f, err := parseRational(v); err == nil {
			summary["focalLength"] = fmt.Sprintf("%d", int(f))
		}
	}
	if v := exifDateTaken(exifMap); v != "" {
		summary["dateTimeOriginal"] = v
	}

	if len(summary) == 0 {
		return nil
	}
	return summary
}

// exifDateTaken 按优先级从 EXIF 中取拍摄时间，返回 RFC3339 字符串。
func exifDateTaken(exifMap map[string]string) string {
	for _, tagName := range []string{"DateTimeOriginal", "CreateDate", "DateTime"} {
		if value, ok := exifMap[tagName]; ok {
			if t, err := time.Parse("2006:01:02 15:04:05", value); err == nil {
				return t.Format(time.RFC3339)
			}
		}
	}
	return ""
}

func parseRational(s string) (float64, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, errors.New("invalid rational format")
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, errors.New("invalid rational components")
	}
	return num / den, nil
}
