/*
 * @Description: 租户仓储实现
 * @Author: 安知鱼
 * @Date: 2025-08-23 03:52:33
 * @LastEditTime: 2025-08-23 03:52:33
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/afilmory-app/ent"
	"github.com/anzhiyu-c/afilmory-app/ent/tenant"
	"github.com/anzhiyu-c/afilmory-app/pkg/constant"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/model"
	"github.com/anzhiyu-c/afilmory-app/pkg/domain/repository"
)

type entTenantRepository struct {
	client *ent.Client
}

// NewTenantRepository 创建租户仓储实例
func NewTenantRepository(client *ent.Client) repository.TenantRepository {
	return &entTenantRepository{client: client}
}

func (r *entTenantRepository) FindByID(ctx context.Context, id uint) (*model.Tenant, error) {
	row, err := r.client.Tenant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("查询租户 %d 失败: %w", id, err)
	}
	return mapEntTenantToDomain(row), nil
}

func (r *entTenantRepository) FindBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	row, err := r.client.Tenant.Query().
		Where(tenant.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("查询租户 '%s' 失败: %w", slug, err)
	}
	return mapEntTenantToDomain(row), nil
}

func (r *entTenantRepository) Create(ctx context.Context, t *model.Tenant) (*model.Tenant, error) {
	row, err := r.client.Tenant.Create().
		SetName(t.Name).
		SetSlug(t.Slug).
		SetStatus(t.Status).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrConflict
		}
		return nil, fmt.Errorf("创建租户失败: %w", err)
	}
	return mapEntTenantToDomain(row), nil
}

func (r *entTenantRepository) List(ctx context.Context) ([]*model.Tenant, error) {
	rows, err := r.client.Tenant.Query().
		Order(ent.Asc(tenant.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询租户列表失败: %w", err)
	}
	tenants := make([]*model.Tenant, len(rows))
	for i, row := range rows {
		tenants[i] = mapEntTenantToDomain(row)
	}
	return tenants, nil
}

func mapEntTenantToDomain(row *ent.Tenant) *model.Tenant {
	return &model.Tenant{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Name:      row.Name,
		Slug:      row.Slug,
		Status:    row.Status,
	}
}
