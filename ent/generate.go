/*
 * @Description: ent 代码生成入口
 * @Author: 安知鱼
 * @Date: 2025-08-23 02:55:02
 * @LastEditTime: 2025-08-23 02:55:02
 * @LastEditors: 安知鱼
 */
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/upsert,intercept ./schema
