package datasync_handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anzhiyu-c/afilmory-app/internal/pkg/auth"
	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestContext 构造一个带请求体和租户上下文的 gin 上下文
func newTestContext(method, body string, withTenant bool) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/api/data-sync/run", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	if withTenant {
		c.Set(auth.TenantKey, &model.Tenant{ID: 1, Name: "测试租户", Status: model.TenantStatusActive})
	}
	return c, w
}

func TestRunSync_参数校验(t *testing.T) {
	h := NewDataSyncHandler(nil)

	t.Run("缺少租户上下文返回401", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{}`, false)
		h.RunSync(c)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("状态码 = %d, 期望 401", w.Code)
		}
	})

	t.Run("缺少builderConfig返回400", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{"dryRun":true}`, true)
		h.RunSync(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})

	t.Run("非法JSON返回400", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{"builderConfig":`, true)
		h.RunSync(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})

	t.Run("存储配置缺字段返回400", func(t *testing.T) {
		body := `{
			"builderConfig": {"storage": {"provider": "local", "basePath": "/data/photos"}},
			"storageConfig": {"provider": "s3", "region": "us-east-1"}
		}`
		c, w := newTestContext(http.MethodPost, body, true)
		h.RunSync(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})
}

func TestResolveConflict_参数校验(t *testing.T) {
	h := NewDataSyncHandler(nil)

	setParam := func(c *gin.Context, id string) {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}

	t.Run("缺少记录ID返回400", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{"strategy":"prefer-database"}`, true)
		h.ResolveConflict(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})

	t.Run("无效策略返回400", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{"strategy":"prefer-nothing"}`, true)
		setParam(c, "abcd")
		h.ResolveConflict(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
	})

	t.Run("PreferStorage缺少builderConfig返回400", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{"strategy":"prefer-storage"}`, true)
		setParam(c, "abcd")
		h.ResolveConflict(c)
		if w.Code != http.StatusBadRequest {
			t.Errorf("状态码 = %d, 期望 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "builderConfig") {
			t.Errorf("响应体应提示缺少 builderConfig: %s", w.Body.String())
		}
	})

	t.Run("缺少租户上下文返回401", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{"strategy":"prefer-database"}`, false)
		setParam(c, "abcd")
		h.ResolveConflict(c)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("状态码 = %d, 期望 401", w.Code)
		}
	})
}

func TestHttpStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "记录不存在", err: constant.ErrNotFound, expected: http.StatusNotFound},
		{name: "记录未处于冲突", err: constant.ErrRecordNotInConflict, expected: http.StatusBadRequest},
		{name: "冲突负载缺失", err: constant.ErrConflictPayloadMissing, expected: http.StatusBadRequest},
		{name: "存储配置无效", err: constant.ErrStorageConfigInvalid, expected: http.StatusBadRequest},
		{name: "存储对象已消失", err: constant.ErrStorageObjectGone, expected: http.StatusConflict},
		{name: "清单重建失败", err: constant.ErrManifestRebuildFailed, expected: http.StatusConflict},
		{name: "租户不存在", err: constant.ErrTenantNotFound, expected: http.StatusUnauthorized},
		{name: "无权限", err: constant.ErrForbidden, expected: http.StatusForbidden},
		{name: "包装过的业务错误", err: fmt.Errorf("裁决失败: %w", constant.ErrConflict), expected: http.StatusConflict},
		{name: "未知错误兜底500", err: fmt.Errorf("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := httpStatusForError(tt.err); got != tt.expected {
				t.Errorf("httpStatusForError(%v) = %d, 期望 %d", tt.err, got, tt.expected)
			}
		})
	}
}
