package service

import (
	"errors"
	"fmt"

	"articles-go/internal/dto"
	"articles-go/internal/models"
	"articles-go/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ArticleService 文章生命周期服务
// 负责文章聚合的创建/更新/删除,包括标签集合替换和评论/收藏的级联清理。
// 所有修改操作都显式接收当前用户,不从任何全局状态读取身份。
type ArticleService struct {
	db           *gorm.DB
	articleRepo  *repository.ArticleRepository
	authorRepo   *repository.AuthorRepository
	tagRepo      *repository.TagRepository
	commentRepo  *repository.CommentRepository
	favoriteRepo *repository.FavoriteRepository
	logger       *logrus.Logger
}

// NewArticleService 创建文章服务
func NewArticleService(
	db *gorm.DB,
	articleRepo *repository.ArticleRepository,
	authorRepo *repository.AuthorRepository,
	tagRepo *repository.TagRepository,
	commentRepo *repository.CommentRepository,
	favoriteRepo *repository.FavoriteRepository,
	logger *logrus.Logger,
) *ArticleService {
	return &ArticleService{
		db:           db,
		articleRepo:  articleRepo,
		authorRepo:   authorRepo,
		tagRepo:      tagRepo,
		commentRepo:  commentRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// List 获取所有文章
func (s *ArticleService) List() ([]models.Article, error) {
	return s.articleRepo.List()
}

// Get 获取文章详情
func (s *ArticleService) Get(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("文章 %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return article, nil
}

// Create 创建文章
// owner 无条件设为当前用户,请求中没有也不接受 owner 字段;
// 标签ID去重后逐个解析,任何一个不存在则整个操作失败,不留下半成品文章。
func (s *ArticleService) Create(req *dto.ArticleCreateRequest, actingUser *models.User) (*models.Article, error) {
	if actingUser == nil {
		return nil, ErrUnauthenticated
	}

	var created *models.Article
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := s.resolveTags(tx, req.TagIDs)
		if err != nil {
			return err
		}

		if req.AuthorID != nil {
			if _, err := s.authorRepo.WithTx(tx).GetByID(*req.AuthorID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("作者 %d: %w", *req.AuthorID, ErrNotFound)
				}
				return err
			}
		}

		ownerID := actingUser.ID
		article := &models.Article{
			Title:       req.Title,
			Slug:        req.Slug,
			Description: req.Description,
			Body:        req.Body,
			AuthorID:    req.AuthorID,
			OwnerID:     &ownerID,
		}

		articleRepo := s.articleRepo.WithTx(tx)
		if err := articleRepo.Create(article); err != nil {
			return fmt.Errorf("创建文章失败: %w", err)
		}
		if len(tags) > 0 {
			if err := articleRepo.ReplaceTags(article, tags); err != nil {
				return fmt.Errorf("设置标签失败: %w", err)
			}
		}

		created = article
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"article_id": created.ID,
		"owner_id":   actingUser.ID,
	}).Info("文章已创建")

	return s.Get(created.ID)
}

// Update 更新文章
// 权限校验针对数据库中已有的文章;标量字段和标签集合整体替换,
// owner、评论、收藏一律保持原值,更新请求无法触碰它们。
func (s *ArticleService) Update(id uint, req *dto.ArticleUpdateRequest, actingUser *models.User) (*models.Article, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !CanMutate(actingUser, existing) {
		return nil, fmt.Errorf("文章 %d: %w", id, ErrForbidden)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		tags, err := s.resolveTags(tx, req.TagIDs)
		if err != nil {
			return err
		}

		if req.AuthorID != nil {
			if _, err := s.authorRepo.WithTx(tx).GetByID(*req.AuthorID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("作者 %d: %w", *req.AuthorID, ErrNotFound)
				}
				return err
			}
		}

		// 只更新标量列,owner_id 不在更新集合内
		updates := map[string]interface{}{
			"title":       req.Title,
			"slug":        req.Slug,
			"description": req.Description,
			"body":        req.Body,
			"author_id":   req.AuthorID,
		}
		if err := tx.Model(&models.Article{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新文章失败: %w", err)
		}

		articleRepo := s.articleRepo.WithTx(tx)
		if err := articleRepo.ReplaceTags(&models.Article{ID: id}, tags); err != nil {
			return fmt.Errorf("替换标签失败: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete 删除文章
// 先删评论和收藏再删文章本身,整个序列在一个事务内,保证不会出现孤儿行。
func (s *ArticleService) Delete(id uint, actingUser *models.User) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}

	if !CanMutate(actingUser, existing) {
		return fmt.Errorf("文章 %d: %w", id, ErrForbidden)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.deleteArticleCascade(tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"article_id": id,
		"user_id":    actingUser.ID,
	}).Info("文章已删除")

	return nil
}

// deleteArticleCascade 在事务内删除文章及其全部从属记录,顺序不可调换
func (s *ArticleService) deleteArticleCascade(tx *gorm.DB, id uint) error {
	if err := s.commentRepo.WithTx(tx).DeleteByArticleID(id); err != nil {
		return fmt.Errorf("%w: 删除文章评论失败: %v", ErrIntegrity, err)
	}
	if err := s.favoriteRepo.WithTx(tx).DeleteByArticleID(id); err != nil {
		return fmt.Errorf("%w: 删除文章收藏失败: %v", ErrIntegrity, err)
	}
	articleRepo := s.articleRepo.WithTx(tx)
	if err := articleRepo.ClearTags(id); err != nil {
		return fmt.Errorf("%w: 清除标签关联失败: %v", ErrIntegrity, err)
	}
	if err := articleRepo.Delete(id); err != nil {
		return fmt.Errorf("%w: 删除文章失败: %v", ErrIntegrity, err)
	}
	return nil
}

// AddComment 添加评论,任何登录用户都可以评论任何文章
func (s *ArticleService) AddComment(articleID uint, body string, actingUser *models.User) (*models.ArticleComment, error) {
	if actingUser == nil {
		return nil, ErrUnauthenticated
	}

	if _, err := s.Get(articleID); err != nil {
		return nil, err
	}

	comment := &models.ArticleComment{
		Body:      body,
		ArticleID: articleID,
		UserID:    actingUser.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}
	return comment, nil
}

// Favorite 收藏文章,重复收藏是幂等的
func (s *ArticleService) Favorite(articleID uint, actingUser *models.User) error {
	if actingUser == nil {
		return ErrUnauthenticated
	}

	if _, err := s.Get(articleID); err != nil {
		return err
	}

	exists, err := s.favoriteRepo.Exists(articleID, actingUser.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	favorite := &models.ArticleFavorite{
		ArticleID: articleID,
		UserID:    actingUser.ID,
	}
	return s.favoriteRepo.Create(favorite)
}

// Unfavorite 取消收藏
func (s *ArticleService) Unfavorite(articleID uint, actingUser *models.User) error {
	if actingUser == nil {
		return ErrUnauthenticated
	}

	if _, err := s.Get(articleID); err != nil {
		return err
	}

	return s.favoriteRepo.DeleteByArticleAndUser(articleID, actingUser.ID)
}

// Search 按标题或正文做大小写不敏感的子串搜索,空查询匹配全部文章
func (s *ArticleService) Search(query string) ([]models.Article, error) {
	return s.articleRepo.Search(query)
}

// ListByOwner 获取用户拥有的文章
func (s *ArticleService) ListByOwner(ownerID uint) ([]models.Article, error) {
	return s.articleRepo.ListByOwnerID(ownerID)
}

// ListByTag 获取带有指定标签的文章
func (s *ArticleService) ListByTag(tagID uint) ([]models.Article, error) {
	return s.articleRepo.ListByTagID(tagID)
}

// resolveTags 解析标签ID列表,重复ID折叠为集合,未知ID使整个操作失败
func (s *ArticleService) resolveTags(tx *gorm.DB, tagIDs []uint) ([]models.Tag, error) {
	tagRepo := s.tagRepo.WithTx(tx)
	seen := make(map[uint]bool, len(tagIDs))
	tags := make([]models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		tag, err := tagRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("标签 %d: %w", id, ErrNotFound)
			}
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
