package handler

import (
	"strconv"

	"articles-go/internal/dto"
	"articles-go/internal/repository"
	"articles-go/internal/service"
	"articles-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ArticleHandler 文章处理器
type ArticleHandler struct {
	articleService *service.ArticleService
	userRepo       *repository.UserRepository
}

// NewArticleHandler 创建文章处理器
func NewArticleHandler(articleService *service.ArticleService, userRepo *repository.UserRepository) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		userRepo:       userRepo,
	}
}

// List 获取文章列表
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.List()
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, articles)
}

// Get 获取文章详情
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的文章ID")
		return
	}

	article, err := h.articleService.Get(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dto.ArticleDetailResponse{
		Article:       article,
		CommentCount:  len(article.Comments),
		FavoriteCount: len(article.Favorites),
	})
}

// Create 创建文章
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Create(&req, currentUser(c, h.userRepo))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "文章已创建", article)
}

// Update 更新文章
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的文章ID")
		return
	}

	var req dto.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Update(uint(id), &req, currentUser(c, h.userRepo))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "文章已更新", article)
}

// Delete 删除文章
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的文章ID")
		return
	}

	if err := h.articleService.Delete(uint(id), currentUser(c, h.userRepo)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "文章已删除", gin.H{"success": true})
}

// AddComment 添加评论
func (h *ArticleHandler) AddComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的文章ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	comment, err := h.articleService.AddComment(uint(id), req.Body, currentUser(c, h.userRepo))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "评论已添加", comment)
}

// Favorite 收藏文章
func (h *ArticleHandler) Favorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的文章ID")
		return
	}

	if err := h.articleService.Favorite(uint(id), currentUser(c, h.userRepo)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已收藏", gin.H{"success": true})
}

// Unfavorite 取消收藏
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的文章ID")
		return
	}

	if err := h.articleService.Unfavorite(uint(id), currentUser(c, h.userRepo)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "已取消收藏", gin.H{"success": true})
}

// Search 搜索文章,标题或正文的子串匹配
func (h *ArticleHandler) Search(c *gin.Context) {
	query := c.Query("query")

	articles, err := h.articleService.Search(query)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, articles)
}

// ListByOwner 获取用户拥有的文章
func (h *ArticleHandler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseUint(c.Param("owner_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的用户ID")
		return
	}

	articles, err := h.articleService.ListByOwner(uint(ownerID))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, articles)
}

// ListByTag 获取带有指定标签的文章
func (h *ArticleHandler) ListByTag(c *gin.Context) {
	tagID, err := strconv.ParseUint(c.Param("tag_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的标签ID")
		return
	}

	articles, err := h.articleService.ListByTag(uint(tagID))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, articles)
}
