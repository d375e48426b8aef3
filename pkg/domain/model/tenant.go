/*
 * @Description: 租户模型
 * @Author: 安知鱼
 * @Date: 2025-08-23 01:38:51
 * @LastEditTime: 2025-09-01 10:12:40
 * @LastEditors: 安知鱼
 */
package model

import "time"

// 租户状态常量
const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

// Tenant 是租户的领域模型。
// 同步子系统中所有数据库读写都以租户 ID 作为过滤条件，互不可见。
type Tenant struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
}

// TenantResponse 是用于API响应的租户数据传输对象 (DTO)。
type TenantResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
}
