package service

import (
	"errors"
	"fmt"

	"articles-go/internal/dto"
	"articles-go/internal/models"
	"articles-go/internal/repository"
	"articles-go/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserService 账户生命周期服务
// 用户删除是一个原子操作:先删用户的评论和收藏,再级联删除其拥有的文章,
// 最后删用户本身,任何一步失败整体回滚。
type UserService struct {
	db           *gorm.DB
	userRepo     *repository.UserRepository
	articleRepo  *repository.ArticleRepository
	commentRepo  *repository.CommentRepository
	favoriteRepo *repository.FavoriteRepository
	logger       *logrus.Logger
}

// NewUserService 创建用户服务
func NewUserService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	articleRepo *repository.ArticleRepository,
	commentRepo *repository.CommentRepository,
	favoriteRepo *repository.FavoriteRepository,
	logger *logrus.Logger,
) *UserService {
	return &UserService{
		db:           db,
		userRepo:     userRepo,
		articleRepo:  articleRepo,
		commentRepo:  commentRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// List 获取所有用户
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// Get 获取用户
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("用户 %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// Update 更新用户资料,密码仅在非空时重新哈希
func (s *UserService) Update(id uint, req *dto.UserUpdateRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Bio = req.Bio
	user.ImageURL = req.ImageURL

	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("密码哈希失败: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}
	return user, nil
}

// Delete 删除用户及其全部数据
// 顺序:用户的评论 -> 用户的收藏 -> 拥有的每篇文章(含其评论/收藏/标签关联) -> 用户行。
// 整个序列在一个事务内执行,失败时不会观察到部分删除。
func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).DeleteByUserID(id); err != nil {
			return fmt.Errorf("%w: 删除用户评论失败: %v", ErrIntegrity, err)
		}
		if err := s.favoriteRepo.WithTx(tx).DeleteByUserID(id); err != nil {
			return fmt.Errorf("%w: 删除用户收藏失败: %v", ErrIntegrity, err)
		}

		articleIDs, err := s.articleRepo.WithTx(tx).IDsByOwnerID(id)
		if err != nil {
			return fmt.Errorf("%w: 查询用户文章失败: %v", ErrIntegrity, err)
		}
		for _, articleID := range articleIDs {
			if err := s.deleteArticleCascade(tx, articleID); err != nil {
				return err
			}
		}

		if err := s.userRepo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("%w: 删除用户失败: %v", ErrIntegrity, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithField("user_id", id).Info("用户已删除")
	return nil
}

// deleteArticleCascade 在事务内删除文章及其从属记录,与文章服务的删除顺序一致
func (s *UserService) deleteArticleCascade(tx *gorm.DB, articleID uint) error {
	if err := s.commentRepo.WithTx(tx).DeleteByArticleID(articleID); err != nil {
		return fmt.Errorf("%w: 删除文章评论失败: %v", ErrIntegrity, err)
	}
	if err := s.favoriteRepo.WithTx(tx).DeleteByArticleID(articleID); err != nil {
		return fmt.Errorf("%w: 删除文章收藏失败: %v", ErrIntegrity, err)
	}
	articleRepo := s.articleRepo.WithTx(tx)
	if err := articleRepo.ClearTags(articleID); err != nil {
		return fmt.Errorf("%w: 清除标签关联失败: %v", ErrIntegrity, err)
	}
	if err := articleRepo.Delete(articleID); err != nil {
		return fmt.Errorf("%w: 删除文章失败: %v", ErrIntegrity, err)
	}
	return nil
}
