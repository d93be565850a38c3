package repository

import (
	"articles-go/internal/models"

	"gorm.io/gorm"
)

// CommentRepository 评论数据访问层
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论Repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// WithTx 返回绑定到事务的Repository
func (r *CommentRepository) WithTx(tx *gorm.DB) *CommentRepository {
	return &CommentRepository{db: tx}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *models.ArticleComment) error {
	return r.db.Create(comment).Error
}

// ListByArticleID 获取文章的评论
func (r *CommentRepository) ListByArticleID(articleID uint) ([]models.ArticleComment, error) {
	var comments []models.ArticleComment
	err := r.db.Preload("User").Where("article_id = ?", articleID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// CountByArticleID 统计文章的评论数
func (r *CommentRepository) CountByArticleID(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleComment{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}

// CountByUserID 统计用户发表的评论数
func (r *CommentRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleComment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// DeleteByArticleID 删除文章的全部评论
func (r *CommentRepository) DeleteByArticleID(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.ArticleComment{}).Error
}

// DeleteByUserID 删除用户发表的全部评论
func (r *CommentRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.ArticleComment{}).Error
}
