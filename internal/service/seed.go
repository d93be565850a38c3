package service

import (
	"fmt"
	"time"

	"articles-go/internal/models"
	"articles-go/internal/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder 示例数据生成器,向空库填充作者、用户、标签、文章、评论和收藏
type Seeder struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewSeeder 创建示例数据生成器
func NewSeeder(db *gorm.DB, logger *logrus.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Run 填充示例数据,库中已有文章时跳过
func (s *Seeder) Run() error {
	var articleCount int64
	if err := s.db.Model(&models.Article{}).Count(&articleCount).Error; err != nil {
		return fmt.Errorf("检查文章数失败: %w", err)
	}
	if articleCount > 0 {
		return nil
	}

	faker := gofakeit.New(0)

	return s.db.Transaction(func(tx *gorm.DB) error {
		// 作者
		authors := make([]models.Author, 0, 5)
		for i := 0; i < 5; i++ {
			authors = append(authors, models.Author{
				Name: faker.Name(),
				Bio:  faker.Sentence(8),
			})
		}
		if err := tx.Create(&authors).Error; err != nil {
			return fmt.Errorf("创建作者失败: %w", err)
		}

		// 用户
		users := make([]models.User, 0, 10)
		for i := 0; i < 10; i++ {
			hashed, err := utils.HashPassword(faker.Password(true, true, true, false, false, 12))
			if err != nil {
				return fmt.Errorf("密码哈希失败: %w", err)
			}
			users = append(users, models.User{
				Username:     fmt.Sprintf("%s%d", faker.Username(), i),
				Email:        faker.Email(),
				PasswordHash: hashed,
				Role:         models.RoleUser,
				Bio:          faker.Sentence(6),
				ImageURL:     "https://static.vecteezy.com/system/resources/previews/009/292/244/non_2x/default-avatar-icon-of-social-media-user-vector.jpg",
				CreatedAt:    time.Now().AddDate(0, 0, -faker.Number(1, 30)),
			})
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}

		// 标签
		tags := make([]models.Tag, 0, 5)
		for i := 0; i < 5; i++ {
			tags = append(tags, models.Tag{
				Name:      fmt.Sprintf("%s-%d", faker.BookGenre(), i),
				CreatedAt: time.Now().AddDate(0, 0, -faker.Number(1, 30)),
			})
		}
		if err := tx.Create(&tags).Error; err != nil {
			return fmt.Errorf("创建标签失败: %w", err)
		}

		// 文章,每篇带随机作者、随机owner和1~2个标签
		articles := make([]models.Article, 0, 20)
		for i := 0; i < 20; i++ {
			author := authors[faker.Number(0, len(authors)-1)]
			owner := users[faker.Number(0, len(users)-1)]
			article := models.Article{
				Title:       faker.BookTitle(),
				Slug:        fmt.Sprintf("article-%d", i+1),
				Description: faker.Sentence(10),
				Body:        faker.Paragraph(3, 4, 10, " "),
				AuthorID:    &author.ID,
				OwnerID:     &owner.ID,
				CreatedAt:   time.Now().AddDate(0, 0, -faker.Number(1, 30)),
			}
			numTags := faker.Number(1, 2)
			seen := make(map[uint]bool)
			for j := 0; j < numTags; j++ {
				tag := tags[faker.Number(0, len(tags)-1)]
				if !seen[tag.ID] {
					seen[tag.ID] = true
					article.Tags = append(article.Tags, tag)
				}
			}
			articles = append(articles, article)
		}
		if err := tx.Create(&articles).Error; err != nil {
			return fmt.Errorf("创建文章失败: %w", err)
		}

		// 评论
		var comments []models.ArticleComment
		for _, article := range articles {
			count := faker.Number(1, 5)
			for i := 0; i < count; i++ {
				user := users[faker.Number(0, len(users)-1)]
				comments = append(comments, models.ArticleComment{
					Body:      faker.Sentence(12),
					ArticleID: article.ID,
					UserID:    user.ID,
					CreatedAt: time.Now().AddDate(0, 0, -faker.Number(1, 30)),
				})
			}
		}
		if err := tx.Create(&comments).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}

		// 收藏,同一用户对同一文章只收藏一次
		var favorites []models.ArticleFavorite
		for _, article := range articles {
			count := faker.Number(0, 3)
			seen := make(map[uint]bool)
			for i := 0; i < count; i++ {
				user := users[faker.Number(0, len(users)-1)]
				if seen[user.ID] {
					continue
				}
				seen[user.ID] = true
				favorites = append(favorites, models.ArticleFavorite{
					ArticleID: article.ID,
					UserID:    user.ID,
					CreatedAt: time.Now().AddDate(0, 0, -faker.Number(1, 30)),
				})
			}
		}
		if len(favorites) > 0 {
			if err := tx.Create(&favorites).Error; err != nil {
				return fmt.Errorf("创建收藏失败: %w", err)
			}
		}

		s.logger.WithFields(logrus.Fields{
			"authors":  len(authors),
			"users":    len(users),
			"tags":     len(tags),
			"articles": len(articles),
			"comments": len(comments),
		}).Info("示例数据已填充")

		return nil
	})
}
