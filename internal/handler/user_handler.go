package handler

import (
	"strconv"

	"articles-go/internal/dto"
	"articles-go/internal/service"
	"articles-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户管理处理器(管理员接口)
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler 创建用户管理处理器
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List 获取所有用户
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, users)
}

// Get 获取用户
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的用户ID")
		return
	}

	user, err := h.userService.Get(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, user)
}

// Update 更新用户资料
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的用户ID")
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Update(uint(id), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "用户已更新", user)
}

// Delete 删除用户及其全部数据
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.userService.Delete(uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "用户已删除", gin.H{"success": true})
}
