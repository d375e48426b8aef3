package datasync_handler

import (
	"errors"
	"net/http"

	"github.com/anzhiyu-c/afilmory-app/internal/app/middleware"
	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/response"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/datasync"

	"github.com/gin-gonic/gin"
)

// DataSyncHandler 封装了数据同步相关的控制器方法
type DataSyncHandler struct {
	syncSvc *datasync.Service
}

// NewDataSyncHandler 是 DataSyncHandler 的构造函数
func NewDataSyncHandler(syncSvc *datasync.Service) *DataSyncHandler {
	return &DataSyncHandler{
		syncSvc: syncSvc,
	}
}

// runSyncRequest 是触发同步接口的请求体
type runSyncRequest struct {
	BuilderConfig *model.BuilderConfig `json:"builderConfig" binding:"required"`
	StorageConfig *model.StorageConfig `json:"storageConfig"`
	DryRun        bool                 `json:"dryRun"`
}

// resolveConflictRequest 是冲突裁决接口的请求体
type resolveConflictRequest struct {
	Strategy      model.ConflictResolutionStrategy `json:"strategy" binding:"required"`
	BuilderConfig *model.BuilderConfig             `json:"builderConfig"`
	StorageConfig *model.StorageConfig             `json:"storageConfig"`
	DryRun        bool                             `json:"dryRun"`
}

// RunSync 处理触发一次数据同步的请求
// @Summary      触发数据同步
// @Description  对当前租户执行一次存储端与数据库的全量对账，支持预演模式
// @Tags         数据同步
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response  "同步完成"
// @Failure      400  {object}  response.Response  "请求参数错误"
// @Router       /data-sync/run [post]
func (h *DataSyncHandler) RunSync(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	if tenant == nil {
		response.Fail(c, http.StatusUnauthorized, "租户信息获取失败")
		return
	}

	var req runSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}
	if err := req.BuilderConfig.Validate(); err != nil {
		response.Fail(c, http.StatusBadRequest, "构建配置无效: "+err.Error())
		return
	}
	if req.StorageConfig != nil {
		if err := req.StorageConfig.Validate(); err != nil {
			response.Fail(c, http.StatusBadRequest, "存储配置无效: "+err.Error())
			return
		}
	}

	result, err := h.syncSvc.RunSync(c.Request.Context(), tenant.ID, model.DataSyncOptions{
		BuilderConfig: req.BuilderConfig,
		StorageConfig: req.StorageConfig,
		DryRun:        req.DryRun,
	})
	if err != nil {
		response.Fail(c, httpStatusForError(err), "数据同步失败: "+err.Error())
		return
	}

	response.Success(c, result, "数据同步完成")
}

// ListConflicts 处理获取冲突列表的请求
// @Summary      获取冲突列表
// @Description  返回当前租户下所有处于冲突状态的资产记录
// @Tags         数据同步
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response  "获取成功"
// @Router       /data-sync/conflicts [get]
func (h *DataSyncHandler) ListConflicts(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	if tenant == nil {
		response.Fail(c, http.StatusUnauthorized, "租户信息获取失败")
		return
	}

	conflicts, err := h.syncSvc.ListConflicts(c.Request.Context(), tenant.ID)
	if err != nil {
		response.Fail(c, httpStatusForError(err), "获取冲突列表失败: "+err.Error())
		return
	}

	response.Success(c, conflicts, "获取成功")
}

// ResolveConflict 处理裁决单条冲突的请求
// @Summary      裁决冲突
// @Description  按 prefer-storage 或 prefer-database 策略裁决指定冲突记录
// @Tags         数据同步
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "冲突记录的公共ID"
// @Success      200  {object}  response.Response  "裁决完成"
// @Failure      404  {object}  response.Response  "记录不存在"
// @Failure      409  {object}  response.Response  "存储端状态已变化"
// @Router       /data-sync/conflicts/{id}/resolve [post]
func (h *DataSyncHandler) ResolveConflict(c *gin.Context) {
	tenant := middleware.TenantFromContext(c)
	if tenant == nil {
		response.Fail(c, http.StatusUnauthorized, "租户信息获取失败")
		return
	}

	publicID := c.Param("id")
	if publicID == "" {
		response.Fail(c, http.StatusBadRequest, "缺少冲突记录ID")
		return
	}

	var req resolveConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数错误: "+err.Error())
		return
	}
	if !req.Strategy.IsValid() {
		response.Fail(c, http.StatusBadRequest, "无效的裁决策略: "+string(req.Strategy))
		return
	}
	if req.Strategy == model.ResolutionPreferStorage && req.BuilderConfig == nil {
		response.Fail(c, http.StatusBadRequest, "prefer-storage 策略需要提供 builderConfig")
		return
	}
	if req.BuilderConfig != nil {
		if err := req.BuilderConfig.Validate(); err != nil {
			response.Fail(c, http.StatusBadRequest, "构建配置无效: "+err.Error())
			return
		}
	}
	if req.StorageConfig != nil {
		if err := req.StorageConfig.Validate(); err != nil {
			response.Fail(c, http.StatusBadRequest, "存储配置无效: "+err.Error())
			return
		}
	}

	action, err := h.syncSvc.ResolveConflict(c.Request.Context(), tenant.ID, publicID, model.ResolveConflictOptions{
		Strategy:      req.Strategy,
		BuilderConfig: req.BuilderConfig,
		StorageConfig: req.StorageConfig,
		DryRun:        req.DryRun,
	})
	if err != nil {
		response.Fail(c, httpStatusForError(err), "冲突裁决失败: "+err.Error())
		return
	}

	response.Success(c, action, "冲突裁决完成")
}

// httpStatusForError 把业务错误映射为 HTTP 状态码
func httpStatusForError(err error) int {
	switch {
	case errors.Is(err, constant.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, constant.ErrRecordNotInConflict),
		errors.Is(err, constant.ErrConflictPayloadMissing),
		errors.Is(err, constant.ErrStorageConfigInvalid),
		errors.Is(err, constant.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, constant.ErrStorageObjectGone),
		errors.Is(err, constant.ErrManifestRebuildFailed),
		errors.Is(err, constant.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, constant.ErrTenantNotFound),
		errors.Is(err, constant.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, constant.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
