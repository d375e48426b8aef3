/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-23 11:02:19
 * @LastEditTime: 2025-09-01 17:30:48
 * @LastEditors: 安知鱼
 */
// afilmory-app/internal/infra/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/afilmory-app/internal/app/middleware"
	datasync_handler "github.com/anzhiyu-c/afilmory-app/pkg/handler/datasync"
)

// NoCacheMiddleware 全局反缓存中间件，确保所有API响应都不会被CDN缓存
func NoCacheMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate, private, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Next()
	})
}

// Router 封装了应用的所有路由和其依赖的处理器。
type Router struct {
	dataSyncHandler *datasync_handler.DataSyncHandler
	mw              *middleware.Middleware
	tenantMw        *middleware.TenantMiddleware
}

// NewRouter 是 Router 的构造函数
func NewRouter(
	dataSyncHandler *datasync_handler.DataSyncHandler,
	mw *middleware.Middleware,
	tenantMw *middleware.TenantMiddleware,
) *Router {
	return &Router{
		dataSyncHandler: dataSyncHandler,
		mw:              mw,
		tenantMw:        tenantMw,
	}
}

// Setup 注册全部 API 路由
func (r *Router) Setup(engine *gin.Engine) {
	apiGroup := engine.Group("/api")
	apiGroup.Use(NoCacheMiddleware())

	r.registerDataSyncRoutes(apiGroup)
}

// registerDataSyncRoutes 注册数据同步路由，全部要求管理员身份并注入租户上下文
func (r *Router) registerDataSyncRoutes(api *gin.RouterGroup) {
	syncGroup := api.Group("/data-sync")
	syncGroup.Use(r.mw.JWTAuth(), r.mw.AdminAuth(), r.tenantMw.TenantContext())
	{
		// 全量对账代价高，单独限流
		syncGroup.POST("/run", middleware.SyncRunRateLimit(), r.dataSyncHandler.RunSync)
		syncGroup.GET("/conflicts", r.dataSyncHandler.ListConflicts)
		syncGroup.POST("/conflicts/:id/resolve", r.dataSyncHandler.ResolveConflict)
	}
}
