/*
 * @Description: 租户仓储接口
 * @Author: 安知鱼
 * @Date: 2025-08-23 02:20:31
 * @LastEditTime: 2025-08-23 02:20:31
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
)

// TenantRepository 定义了租户数据的持久化操作。
type TenantRepository interface {
	// FindByID 按主键查找租户，未找到时返回 constant.ErrTenantNotFound。
	FindByID(ctx context.Context, id uint) (*model.Tenant, error)
	// FindBySlug 按 slug 查找租户，未找到时返回 constant.ErrTenantNotFound。
	FindBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	// Create 创建租户。
	Create(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error)
	// List 返回全部租户。
	List(ctx context.Context) ([]*model.Tenant, error)
}
