package service

import (
	"io"
	"testing"

	"articles-go/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"articles-go/internal/repository"
)

// setupTestDB 创建测试数据库（使用 SQLite 内存数据库）
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("无法创建测试数据库: %v", err)
	}

	// 内存数据库限制为单连接,避免连接池中的其他连接拿到空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// 自动迁移所有表
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

// testLogger 创建静默日志器
func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupArticleService 创建文章服务实例
func setupArticleService(t *testing.T, db *gorm.DB) *ArticleService {
	return NewArticleService(
		db,
		repository.NewArticleRepository(db),
		repository.NewAuthorRepository(db),
		repository.NewTagRepository(db),
		repository.NewCommentRepository(db),
		repository.NewFavoriteRepository(db),
		testLogger(),
	)
}

// setupUserService 创建用户服务实例
func setupUserService(t *testing.T, db *gorm.DB) *UserService {
	return NewUserService(
		db,
		repository.NewUserRepository(db),
		repository.NewArticleRepository(db),
		repository.NewCommentRepository(db),
		repository.NewFavoriteRepository(db),
		testLogger(),
	)
}

// createTestUser 创建测试用户
func createTestUser(t *testing.T, db *gorm.DB, username string, role string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// createTestTag 创建测试标签
func createTestTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	tag := &models.Tag{Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("创建测试标签失败: %v", err)
	}
	return tag
}

// createTestArticle 创建归属于指定用户的测试文章
func createTestArticle(t *testing.T, db *gorm.DB, title string, owner *models.User) *models.Article {
	article := &models.Article{
		Title: title,
		Body:  "正文内容",
	}
	if owner != nil {
		ownerID := owner.ID
		article.OwnerID = &ownerID
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("创建测试文章失败: %v", err)
	}
	return article
}
