package handler

import (
	"errors"

	"articles-go/internal/middleware"
	"articles-go/internal/models"
	"articles-go/internal/repository"
	"articles-go/internal/service"
	"articles-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// currentUser 从请求上下文解析当前用户,匿名请求返回nil
func currentUser(c *gin.Context, userRepo *repository.UserRepository) *models.User {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		return nil
	}
	user, err := userRepo.GetByID(userID)
	if err != nil {
		return nil
	}
	return user
}

// handleServiceError 将服务层错误映射为HTTP状态码
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrTooManyAttempts):
		utils.TooManyRequests(c, err.Error())
	case errors.Is(err, service.ErrIntegrity):
		utils.InternalError(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}
