package service

import (
	"errors"
	"fmt"

	"articles-go/internal/dto"
	"articles-go/internal/models"
	"articles-go/internal/repository"

	"gorm.io/gorm"
)

// TagService 标签服务
type TagService struct {
	db      *gorm.DB
	tagRepo *repository.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(db *gorm.DB, tagRepo *repository.TagRepository) *TagService {
	return &TagService{db: db, tagRepo: tagRepo}
}

// List 获取所有标签
func (s *TagService) List() ([]models.Tag, error) {
	return s.tagRepo.List()
}

// Get 获取标签
func (s *TagService) Get(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("标签 %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return tag, nil
}

// Create 创建标签
func (s *TagService) Create(req *dto.TagCreateRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}
	return tag, nil
}

// Delete 删除标签,先清除与文章的关联记录再删标签行
func (s *TagService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tagRepo := s.tagRepo.WithTx(tx)
		if err := tagRepo.ClearArticleLinks(id); err != nil {
			return fmt.Errorf("%w: 清除标签关联失败: %v", ErrIntegrity, err)
		}
		if err := tagRepo.Delete(id); err != nil {
			return fmt.Errorf("%w: 删除标签失败: %v", ErrIntegrity, err)
		}
		return nil
	})
}
