package repository

import (
	"strings"

	"articles-go/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository 文章数据访问层
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository 创建文章Repository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// WithTx 返回绑定到事务的Repository
func (r *ArticleRepository) WithTx(tx *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: tx}
}

// Create 创建文章
func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID 根据ID获取文章,预加载关联
func (r *ArticleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.
		Preload("Author").
		Preload("Owner").
		Preload("Tags").
		Preload("Comments").
		Preload("Comments.User").
		Preload("Favorites").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Update 更新文章
func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// ReplaceTags 替换文章的标签集合
func (r *ArticleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

// ClearTags 清除文章的标签关联记录
func (r *ArticleRepository) ClearTags(articleID uint) error {
	return r.db.Exec("DELETE FROM article_tags WHERE article_id = ?", articleID).Error
}

// Delete 删除文章
func (r *ArticleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// List 获取所有文章
func (r *ArticleRepository) List() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Preload("Author").
		Preload("Owner").
		Preload("Tags").
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

// ListByOwnerID 获取用户拥有的文章
func (r *ArticleRepository) ListByOwnerID(ownerID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Preload("Author").
		Preload("Owner").
		Preload("Tags").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

// ListByTagID 获取带有指定标签的文章
func (r *ArticleRepository) ListByTagID(tagID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Preload("Author").
		Preload("Owner").
		Preload("Tags").
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("article_tags.tag_id = ?", tagID).
		Order("articles.created_at DESC").
		Find(&articles).Error
	return articles, err
}

// Search 按标题或正文做大小写不敏感的子串匹配
func (r *ArticleRepository) Search(query string) ([]models.Article, error) {
	var articles []models.Article
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.
		Preload("Author").
		Preload("Owner").
		Preload("Tags").
		Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}

// IDsByOwnerID 获取用户拥有的文章ID列表
func (r *ArticleRepository) IDsByOwnerID(ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Article{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error
	return ids, err
}
