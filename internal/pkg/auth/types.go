/*
 * @Description: 认证上下文类型定义
 * @Author: 安知鱼
 * @Date: 2025-08-23 08:14:26
 * @LastEditTime: 2025-08-30 21:03:17
 * @LastEditors: 安知鱼
 */
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsKey 是认证信息在 gin.Context 中的存储键。
const ClaimsKey = "claims"

// TenantKey 是租户中间件解析出的租户对象在 gin.Context 中的存储键。
const TenantKey = "tenant"

// CustomClaims 是访问令牌携带的自定义声明，其中的 ID 均为对外公开 ID。
type CustomClaims struct {
	UserID      string `json:"user_id"`
	UserGroupID string `json:"user_group_id"`
	TenantID    string `json:"tenant_id"`
	jwt.RegisteredClaims
}
