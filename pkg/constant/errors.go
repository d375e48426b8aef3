/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-06-27 12:08:15
 * @LastEditTime: 2025-09-01 10:12:40
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrTenantNotFound 表示租户不存在或已停用，可以由 Handler 转换为 401
	ErrTenantNotFound = errors.New("租户不存在或已停用")

	// ErrStorageConfigInvalid 表示存储配置无效，可以由 Handler 转换为 400
	ErrStorageConfigInvalid = errors.New("存储配置无效")

	// ErrRecordNotInConflict 表示目标记录不处于冲突状态，可以由 Handler 转换为 400
	ErrRecordNotInConflict = errors.New("目标记录不处于冲突状态")

	// ErrConflictPayloadMissing 表示冲突记录缺少冲突上下文，可以由 Handler 转换为 400
	ErrConflictPayloadMissing = errors.New("冲突记录缺少冲突上下文")

	// ErrStorageObjectGone 表示冲突检测后存储对象已消失，需要重新执行同步，可以由 Handler 转换为 409
	ErrStorageObjectGone = errors.New("存储对象已不存在，请先重新执行数据同步")

	// ErrManifestRebuildFailed 表示重新处理存储对象生成清单失败，可以由 Handler 转换为 409
	ErrManifestRebuildFailed = errors.New("重新处理存储对象失败")
)
