/*
 * @Description: 会话令牌服务
 * @Author: 安知鱼
 * @Date: 2025-08-23 09:30:41
 * @LastEditTime: 2025-08-31 23:02:15
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/anzhiyu-c/afilmory-app/internal/pkg/auth"
	"github.com/anzhiyu-c/afilmory-app/pkg/config"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/utility"
)

// revokedTokenKeyPrefix 是已吊销令牌在缓存中的键前缀
const revokedTokenKeyPrefix = "auth:revoked:"

type TokenService interface {
	GenerateSessionTokens(ctx context.Context, userID, userGroupID, tenantID uint) (accessToken, refreshToken string, expiresAt int64, err error)
	ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error)
	// RevokeToken 把令牌加入吊销名单，有效期与令牌剩余寿命一致
	RevokeToken(ctx context.Context, accessToken string) error
}

// tokenService 依赖配置提供密钥，依赖缓存服务保存吊销名单
type tokenService struct {
	cfg      *config.Config
	cacheSvc utility.CacheService
}

// NewTokenService 构造函数
func NewTokenService(cfg *config.Config, cacheSvc utility.CacheService) TokenService {
	return &tokenService{
		cfg:      cfg,
		cacheSvc: cacheSvc,
	}
}

func (s *tokenService) secret() ([]byte, error) {
	jwtSecret := s.cfg.GetString(config.KeyJWTSecret)
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET 未配置, 无法处理令牌")
	}
	return []byte(jwtSecret), nil
}

func (s *tokenService) GenerateSessionTokens(ctx context.Context, userID, userGroupID, tenantID uint) (string, string, int64, error) {
	secret, err := s.secret()
	if err != nil {
		return "", "", 0, err
	}

	accessToken, err := auth.GenerateToken(userID, userGroupID, tenantID, secret)
	if err != nil {
		return "", "", 0, err
	}
	refreshToken, err := auth.GenerateRefreshToken(userID, secret)
	if err != nil {
		return "", "", 0, err
	}

	claims, err := auth.ParseToken(accessToken, secret)
	if err != nil {
		return "", "", 0, err
	}
	expiresAt := claims.ExpiresAt.Time.UnixMilli()

	return accessToken, refreshToken, expiresAt, nil
}

func (s *tokenService) ParseAccessToken(ctx context.Context, accessToken string) (*auth.CustomClaims, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}

	claims, err := auth.ParseToken(accessToken, secret)
	if err != nil {
		return nil, err
	}

	revoked, err := s.cacheSvc.Get(ctx, revokedTokenKeyPrefix+tokenFingerprint(accessToken))
	if err != nil {
		return nil, fmt.Errorf("查询令牌吊销名单失败: %w", err)
	}
	if revoked != "" {
		return nil, fmt.Errorf("令牌已被吊销")
	}

	return claims, nil
}

func (s *tokenService) RevokeToken(ctx context.Context, accessToken string) error {
	secret, err := s.secret()
	if err != nil {
		return err
	}

	claims, err := auth.ParseToken(accessToken, secret)
	if err != nil {
		return fmt.Errorf("无法吊销无效令牌: %w", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // 已过期的令牌无需吊销
	}
	return s.cacheSvc.Set(ctx, revokedTokenKeyPrefix+tokenFingerprint(accessToken), "1", ttl)
}

// tokenFingerprint 返回令牌的短指纹，避免把完整令牌写进缓存键
func tokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
