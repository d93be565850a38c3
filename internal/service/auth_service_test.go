package service

import (
	"context"
	"testing"
	"time"

	"articles-go/internal/config"
	"articles-go/internal/dto"
	"articles-go/internal/models"
	"articles-go/internal/repository"
	"articles-go/internal/utils"

	"gorm.io/gorm"
)

// setupAuthService 创建认证服务实例
func setupAuthService(t *testing.T, db *gorm.DB) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:     "test-secret",
			Algorithm:     "HS256",
			ExpireMinutes: 60,
		},
		Admin: config.AdminConfig{
			Username: "admin",
			Password: "admin-password",
			Email:    "admin@example.com",
		},
	}
	jwtManager := utils.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Algorithm, time.Hour)
	return NewAuthService(repository.NewUserRepository(db), jwtManager, nil, cfg)
}

// TestRegisterAndLogin 测试注册和登录
func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := setupAuthService(t, db)
	ctx := context.Background()

	user, err := svc.Register(&dto.RegisterRequest{
		Username: "newuser",
		Email:    "newuser@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.Role != models.RoleUser {
		t.Errorf("新用户角色应为 USER, 实际 %q", user.Role)
	}
	if user.PasswordHash == "secret123" {
		t.Errorf("密码不应明文存储")
	}

	t.Run("重复用户名注册失败", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Username: "newuser",
			Email:    "other@example.com",
			Password: "secret123",
		})
		if err == nil {
			t.Errorf("重复用户名应注册失败")
		}
	})

	t.Run("正确密码登录成功", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "newuser", Password: "secret123"})
		if err != nil {
			t.Fatalf("登录失败: %v", err)
		}
		if resp.AccessToken == "" {
			t.Errorf("登录应返回Token")
		}
		if resp.User.Username != "newuser" {
			t.Errorf("响应用户信息错误: %+v", resp.User)
		}
	})

	t.Run("错误密码登录失败", func(t *testing.T) {
		if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "newuser", Password: "wrong"}); err == nil {
			t.Errorf("错误密码应登录失败")
		}
	})

	t.Run("非法用户名注册失败", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{
			Username: "no spaces!",
			Email:    "x@example.com",
			Password: "secret123",
		})
		if err == nil {
			t.Errorf("非法用户名应注册失败")
		}
	})
}

// TestInitAdmin 测试管理员初始化
func TestInitAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := setupAuthService(t, db)

	if err := svc.InitAdmin(); err != nil {
		t.Fatalf("初始化管理员失败: %v", err)
	}

	var admin models.User
	if err := db.Where("role = ?", models.RoleAdmin).First(&admin).Error; err != nil {
		t.Fatalf("管理员应已创建: %v", err)
	}
	if admin.Username != "admin" {
		t.Errorf("管理员用户名错误: %q", admin.Username)
	}
	if admin.PasswordHash == "admin-password" {
		t.Errorf("管理员密码不应明文存储")
	}

	// 再次初始化不应重复创建
	if err := svc.InitAdmin(); err != nil {
		t.Fatalf("重复初始化不应报错: %v", err)
	}
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count != 1 {
		t.Errorf("管理员只应有一个, 实际 %d", count)
	}
}
