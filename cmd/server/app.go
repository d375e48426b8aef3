/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-23 11:20:45
 * @LastEditTime: 2025-09-01 17:44:02
 * @LastEditors: 安知鱼
 */
// afilmory-app/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/anzhiyu-c/afilmory-app/internal/app/middleware"
	"github.com/anzhiyu-c/afilmory-app/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/afilmory-app/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/afilmory-app/internal/infra/router"
	"github.com/anzhiyu-c/afilmory-app/pkg/config"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/repository"
	datasync_handler "github.com/anzhiyu-c/afilmory-app/pkg/handler/datasync"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
	auth_service "github.com/anzhiyu-c/afilmory-app/pkg/service/auth"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/datasync"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/utility"
)

// App 聚合了应用的全部运行时依赖
type App struct {
	cfg         *config.Config
	engine      *gin.Engine
	sqlDB       *sql.DB
	redisClient *redis.Client

	tenantRepo repository.TenantRepository
	assetRepo  repository.PhotoAssetRepository

	cacheSvc utility.CacheService
	tokenSvc auth_service.TokenService
	syncSvc  *datasync.Service

	mw       *middleware.Middleware
	tenantMw *middleware.TenantMiddleware
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	// --- Phase 3: 初始化 ID 编码器 ---
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, cleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 4: 初始化数据仓库层 ---
	tenantRepo := ent_impl.NewTenantRepository(entClient)
	assetRepo := ent_impl.NewPhotoAssetRepository(entClient)

	// --- Phase 5: 初始化业务逻辑层 ---
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)
	tokenSvc := auth_service.NewTokenService(cfg, cacheSvc)
	syncSvc := datasync.NewService(assetRepo)

	// --- Phase 6: 初始化 HTTP 层 ---
	mw := middleware.NewMiddleware(tokenSvc)
	tenantMw := middleware.NewTenantMiddleware(tenantRepo, cacheSvc)
	dataSyncHandler := datasync_handler.NewDataSyncHandler(syncSvc)

	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(middleware.Cors())

	appRouter := router.NewRouter(dataSyncHandler, mw, tenantMw)
	appRouter.Setup(engine)

	app := &App{
		cfg:         cfg,
		engine:      engine,
		sqlDB:       sqlDB,
		redisClient: redisClient,
		tenantRepo:  tenantRepo,
		assetRepo:   assetRepo,
		cacheSvc:    cacheSvc,
		tokenSvc:    tokenSvc,
		syncSvc:     syncSvc,
		mw:          mw,
		tenantMw:    tenantMw,
	}
	return app, cleanup, nil
}

// Run 启动 HTTP 服务
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8091"
	}
	fmt.Printf("应用程序启动成功，正在监听端口: %s\n", port)

	return a.engine.Run(":" + port)
}

// Config 返回应用配置
func (a *App) Config() *config.Config {
	return a.cfg
}

// Engine 返回 gin 引擎，测试时用于直接发起请求
func (a *App) Engine() *gin.Engine {
	return a.engine
}
