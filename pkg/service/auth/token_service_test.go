package auth

import (
	"context"
	"testing"

	"github.com/anzhiyu-c/afilmory-app/pkg/config"
	"github.com/anzhiyu-c/afilmory-app/pkg/idgen"
	"github.com/anzhiyu-c/afilmory-app/pkg/service/utility"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// newTokenServiceWithSecret 在临时目录里加载配置，密钥通过环境变量注入
func newTokenServiceWithSecret(t *testing.T, secret string) TokenService {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("AFILMORY_SECURITY_JWTSECRET", secret)

	cfg, err := config.NewConfig()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	return NewTokenService(cfg, utility.NewMemoryCacheService())
}

func newTestTokenService(t *testing.T) TokenService {
	t.Helper()
	return newTokenServiceWithSecret(t, "unit-test-secret")
}

func TestTokenService_会话生命周期(t *testing.T) {
	ctx := context.Background()
	svc := newTestTokenService(t)

	accessToken, refreshToken, expiresAt, err := svc.GenerateSessionTokens(ctx, 1, 1, 1)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("期望同时返回访问令牌与刷新令牌")
	}
	if expiresAt <= 0 {
		t.Errorf("expiresAt = %d, 期望未来的毫秒时间戳", expiresAt)
	}

	claims, err := svc.ParseAccessToken(ctx, accessToken)
	if err != nil {
		t.Fatalf("解析刚签发的令牌失败: %v", err)
	}
	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser || userID != 1 {
		t.Errorf("UserID 声明 = %q, 解码结果 (%d, %d, %v)", claims.UserID, userID, entityType, err)
	}
	tenantID, entityType, err := idgen.DecodePublicID(claims.TenantID)
	if err != nil || entityType != idgen.EntityTypeTenant || tenantID != 1 {
		t.Errorf("TenantID 声明 = %q, 解码结果 (%d, %d, %v)", claims.TenantID, tenantID, entityType, err)
	}

	if err := svc.RevokeToken(ctx, accessToken); err != nil {
		t.Fatalf("吊销令牌失败: %v", err)
	}
	if _, err := svc.ParseAccessToken(ctx, accessToken); err == nil {
		t.Error("吊销后的令牌仍被接受")
	}
}

func TestTokenService_异常输入(t *testing.T) {
	ctx := context.Background()
	svc := newTestTokenService(t)

	t.Run("伪造令牌被拒绝", func(t *testing.T) {
		if _, err := svc.ParseAccessToken(ctx, "not-a-jwt"); err == nil {
			t.Error("期望解析失败")
		}
	})

	t.Run("错误密钥签发的令牌被拒绝", func(t *testing.T) {
		otherToken, _, _, err := svc.GenerateSessionTokens(ctx, 2, 1, 1)
		if err != nil {
			t.Fatalf("签发令牌失败: %v", err)
		}
		otherSvc := newTokenServiceWithSecret(t, "another-secret")
		if _, err := otherSvc.ParseAccessToken(ctx, otherToken); err == nil {
			t.Error("期望因密钥不符而解析失败")
		}
	})

	t.Run("吊销非法令牌返回错误", func(t *testing.T) {
		if err := svc.RevokeToken(ctx, "not-a-jwt"); err == nil {
			t.Error("期望吊销失败")
		}
	})
}
