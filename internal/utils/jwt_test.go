package utils

import (
	"testing"
	"time"
)

// TestJWTGenerateAndValidate 测试Token生成与验证
func TestJWTGenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", "HS256", time.Hour)

	token, err := manager.GenerateToken(42, "someone", "ADMIN")
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("验证Token失败: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "someone" || claims.Role != "ADMIN" {
		t.Errorf("声明内容错误: %+v", claims)
	}

	t.Run("篡改的Token验证失败", func(t *testing.T) {
		if _, err := manager.ValidateToken(token + "x"); err == nil {
			t.Errorf("篡改的Token应验证失败")
		}
	})

	t.Run("过期的Token验证失败", func(t *testing.T) {
		expired := NewJWTManager("test-secret", "HS256", -time.Minute)
		token, err := expired.GenerateToken(1, "u", "USER")
		if err != nil {
			t.Fatalf("生成Token失败: %v", err)
		}
		if _, err := manager.ValidateToken(token); err == nil {
			t.Errorf("过期的Token应验证失败")
		}
	})
}
