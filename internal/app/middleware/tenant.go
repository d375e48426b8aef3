/*
 * @Description: 租户上下文中间件
 * @Author: 安知鱼
 * @Date: 2025-08-23 10:05:33
 * @LastEditTime: 2025-08-31 23:20:46
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anzhiyu-c/afilmory-app/internal/pkg/auth"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/repository"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
	"github.com/anzhiyu-c/afilmory-app/pkg/response"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/utility"

	"github.com/gin-gonic/gin"
)

// tenantCacheTTL 租户信息的缓存时长
const tenantCacheTTL = 5 * time.Minute

// TenantMiddleware 从访问令牌解析租户并注入请求上下文
type TenantMiddleware struct {
	tenantRepo repository.TenantRepository
	cacheSvc   utility.CacheService
}

func NewTenantMiddleware(tenantRepo repository.TenantRepository, cacheSvc utility.CacheService) *TenantMiddleware {
	return &TenantMiddleware{
		tenantRepo: tenantRepo,
		cacheSvc:   cacheSvc,
	}
}

// TenantContext 解析令牌中的租户公共 ID，校验租户状态后写入上下文。
// 必须在 JWTAuth 之后挂载。
func (m *TenantMiddleware) TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(auth.ClaimsKey)
		if !exists {
			response.Fail(c, http.StatusUnauthorized, "租户信息获取失败：缺少认证信息")
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*auth.CustomClaims)
		if !ok {
			response.Fail(c, http.StatusUnauthorized, "租户信息获取失败：认证信息格式不正确")
			c.Abort()
			return
		}

		tenantID, entityType, err := idgen.DecodePublicID(claims.TenantID)
		if err != nil || entityType != idgen.EntityTypeTenant {
			response.Fail(c, http.StatusUnauthorized, "租户信息无效：租户ID无法解析")
			c.Abort()
			return
		}

		tenant, err := m.loadTenant(c, tenantID)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "租户不存在")
			c.Abort()
			return
		}
		if tenant.Status != model.TenantStatusActive {
			response.Fail(c, http.StatusForbidden, "租户已被停用")
			c.Abort()
			return
		}

		c.Set(auth.TenantKey, tenant)
		c.Next()
	}
}

// loadTenant 先查缓存，未命中再回源数据库并写缓存
func (m *TenantMiddleware) loadTenant(c *gin.Context, tenantID uint) (*model.Tenant, error) {
	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("tenant:info:%d", tenantID)

	if cached, err := m.cacheSvc.Get(ctx, cacheKey); err == nil && cached != "" {
		var tenant model.Tenant
		if err := json.Unmarshal([]byte(cached), &tenant); err == nil {
			return &tenant, nil
		}
		// 缓存内容损坏时当作未命中处理
	}

	tenant, err := m.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tenant); err == nil {
		_ = m.cacheSvc.Set(ctx, cacheKey, string(data), tenantCacheTTL)
	}
	return tenant, nil
}

// TenantFromContext 从 gin 上下文取出租户对象，未注入时返回 nil
func TenantFromContext(c *gin.Context) *model.Tenant {
	value, exists := c.Get(auth.TenantKey)
	if !exists {
		return nil
	}
	tenant, ok := value.(*model.Tenant)
	if !ok {
		return nil
	}
	return tenant
}
