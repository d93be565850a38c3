package handler

import (
	"strconv"

	"articles-go/internal/dto"
	"articles-go/internal/service"
	"articles-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// TagHandler 标签处理器
type TagHandler struct {
	tagService *service.TagService
}

// NewTagHandler 创建标签处理器
func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// List 获取所有标签
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagService.List()
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, tags)
}

// Get 获取标签详情
func (h *TagHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的标签ID")
		return
	}

	tag, err := h.tagService.Get(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, tag)
}

// Create 创建标签
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	tag, err := h.tagService.Create(&req)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "标签已创建", tag)
}

// Delete 删除标签
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的标签ID")
		return
	}

	if err := h.tagService.Delete(uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "标签已删除", gin.H{"success": true})
}
