package repository

import (
	"articles-go/internal/models"

	"gorm.io/gorm"
)

// AuthorRepository 作者数据访问层
type AuthorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者Repository
func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

// WithTx 返回绑定到事务的Repository
func (r *AuthorRepository) WithTx(tx *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: tx}
}

// Create 创建作者
func (r *AuthorRepository) Create(author *models.Author) error {
	return r.db.Create(author).Error
}

// GetByID 根据ID获取作者
func (r *AuthorRepository) GetByID(id uint) (*models.Author, error) {
	var author models.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List 获取所有作者
func (r *AuthorRepository) List() ([]models.Author, error) {
	var authors []models.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}
