/*
 * @Description: 照片资产仓储接口
 * @Author: 安知鱼
 * @Date: 2025-08-23 02:24:09
 * @LastEditTime: 2025-09-01 11:08:46
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// PhotoAssetRepository 定义了照片资产的持久化操作。
// 所有方法都带租户维度，实现层必须保证查询被租户 ID 约束。
type PhotoAssetRepository interface {
	// ListByTenant 返回租户下的全部资产记录。
	ListByTenant(ctx context.Context, tenantID uint) ([]*model.PhotoAsset, error)
	// ListConflicts 返回租户下所有处于冲突状态的记录，按更新时间倒序。
	ListConflicts(ctx context.Context, tenantID uint) ([]*model.PhotoAsset, error)
	// FindByID 按租户与主键查找，未找到时返回 constant.ErrNotFound。
	FindByID(ctx context.Context, tenantID, id uint) (*model.PhotoAsset, error)
	// Upsert 以 (tenant_id, storage_key) 为冲突键写入记录：
	// 不存在则插入，存在则用新值覆盖可变字段。
	Upsert(ctx context.Context, asset *model.PhotoAsset) error
	// Update 持久化记录的可变字段（元数据、清单、同步状态、冲突上下文）。
	Update(ctx context.Context, asset *model.PhotoAsset) error
	// Delete 按租户与主键删除记录。
	Delete(ctx context.Context, tenantID, id uint) error
}
