package repository

import (
	"articles-go/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository 收藏数据访问层
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建收藏Repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// WithTx 返回绑定到事务的Repository
func (r *FavoriteRepository) WithTx(tx *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: tx}
}

// Create 创建收藏
func (r *FavoriteRepository) Create(favorite *models.ArticleFavorite) error {
	return r.db.Create(favorite).Error
}

// Exists 检查用户是否已收藏文章
func (r *FavoriteRepository) Exists(articleID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ArticleFavorite{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByArticleID 统计文章的收藏数
func (r *FavoriteRepository) CountByArticleID(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArticleFavorite{}).Where("article_id = ?", articleID).Count(&count).Error
	return count, err
}

// DeleteByArticleAndUser 取消用户对文章的收藏
func (r *FavoriteRepository) DeleteByArticleAndUser(articleID, userID uint) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).Delete(&models.ArticleFavorite{}).Error
}

// DeleteByArticleID 删除文章的全部收藏
func (r *FavoriteRepository) DeleteByArticleID(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&models.ArticleFavorite{}).Error
}

// DeleteByUserID 删除用户的全部收藏
func (r *FavoriteRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.ArticleFavorite{}).Error
}
