package service

import (
	"context"
	"errors"
	"fmt"

	"articles-go/internal/config"
	"articles-go/internal/dto"
	"articles-go/internal/models"
	"articles-go/internal/repository"
	"articles-go/internal/utils"
	"articles-go/pkg/redis_limiter"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
	limiter    *redis_limiter.LoginLimiter
	cfg        *config.Config
}

// NewAuthService 创建认证服务,limiter 可以为 nil(禁用登录限制)
func NewAuthService(
	userRepo *repository.UserRepository,
	jwtManager *utils.JWTManager,
	limiter *redis_limiter.LoginLimiter,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		limiter:    limiter,
		cfg:        cfg,
	}
}

// Register 用户注册
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, errors.New("用户名已存在")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
		Bio:          req.Bio,
		ImageURL:     req.ImageURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// Login 用户登录
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, req.Username)
		if err == nil && !allowed {
			return nil, ErrTooManyAttempts
		}
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		s.recordFailure(ctx, req.Username)
		return nil, errors.New("用户名或密码错误")
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		s.recordFailure(ctx, req.Username)
		return nil, errors.New("用户名或密码错误")
	}

	if s.limiter != nil {
		s.limiter.Reset(ctx, req.Username)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        UserInfoOf(user),
	}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter != nil {
		s.limiter.RecordFailure(ctx, username)
	}
}

// GetMe 获取当前用户信息
func (s *AuthService) GetMe(userID uint) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("用户 %d: %w", userID, ErrNotFound)
	}

	info := UserInfoOf(user)
	return &info, nil
}

// InitAdmin 初始化管理员账户
func (s *AuthService) InitAdmin() error {
	admin, err := s.userRepo.GetAdmin()
	if err == nil && admin != nil {
		return nil // 已存在管理员
	}

	// 检查密码是否已经是bcrypt哈希格式(以$2a$或$2b$开头)
	passwordHash := s.cfg.Admin.Password
	if len(passwordHash) < 4 || (passwordHash[:4] != "$2a$" && passwordHash[:4] != "$2b$") {
		hashedPassword, err := utils.HashPassword(s.cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("密码哈希失败: %w", err)
		}
		passwordHash = hashedPassword
	}

	user := &models.User{
		Username:     s.cfg.Admin.Username,
		Email:        s.cfg.Admin.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Bio:          "系统管理员",
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	return nil
}

// UserInfoOf 将用户模型转换为响应信息
func UserInfoOf(user *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Bio:      user.Bio,
		ImageURL: user.ImageURL,
	}
}
