package dto

// ArticleCreateRequest 创建文章请求
// 不包含 owner 字段,owner 始终取当前登录用户,防止伪造
type ArticleCreateRequest struct {
	Title       string `json:"title" binding:"required" validate:"required"`
	Slug        string `json:"slug" validate:"slug"`
	Description string `json:"description"`
	Body        string `json:"body" binding:"required" validate:"required"`
	AuthorID    *uint  `json:"author_id"`
	TagIDs      []uint `json:"tag_ids"`
}

// ArticleUpdateRequest 更新文章请求
// 只覆盖标量字段和标签集合,owner/评论/收藏不受影响
type ArticleUpdateRequest struct {
	Title       string `json:"title" binding:"required" validate:"required"`
	Slug        string `json:"slug" validate:"slug"`
	Description string `json:"description"`
	Body        string `json:"body" binding:"required" validate:"required"`
	AuthorID    *uint  `json:"author_id"`
	TagIDs      []uint `json:"tag_ids"`
}

// CommentCreateRequest 添加评论请求
type CommentCreateRequest struct {
	Body string `json:"body" binding:"required"`
}

// ArticleDetailResponse 文章详情响应
type ArticleDetailResponse struct {
	Article       interface{} `json:"article"`
	CommentCount  int         `json:"comment_count"`
	FavoriteCount int         `json:"favorite_count"`
}
