package service

import (
	"errors"
	"testing"

	"articles-go/internal/dto"
	"articles-go/internal/models"
	"articles-go/internal/repository"
)

// TestTagLifecycle 测试标签的创建和删除
func TestTagLifecycle(t *testing.T) {
	db := setupTestDB(t)
	tagSvc := NewTagService(db, repository.NewTagRepository(db))
	articleSvc := setupArticleService(t, db)

	user := createTestUser(t, db, "writer", models.RoleUser)

	tag, err := tagSvc.Create(&dto.TagCreateRequest{Name: "golang"})
	if err != nil {
		t.Fatalf("创建标签失败: %v", err)
	}

	article, err := articleSvc.Create(&dto.ArticleCreateRequest{
		Title:  "带标签的文章",
		Body:   "正文",
		TagIDs: []uint{tag.ID},
	}, user)
	if err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	t.Run("删除标签时清除关联记录", func(t *testing.T) {
		if err := tagSvc.Delete(tag.ID); err != nil {
			t.Fatalf("删除标签失败: %v", err)
		}

		var linkCount int64
		db.Table("article_tags").Where("tag_id = ?", tag.ID).Count(&linkCount)
		if linkCount != 0 {
			t.Errorf("标签关联应已清除, 剩余 %d", linkCount)
		}

		// 文章本身不受影响
		if _, err := articleSvc.Get(article.ID); err != nil {
			t.Errorf("删除标签不应影响文章: %v", err)
		}
	})

	t.Run("删除不存在的标签", func(t *testing.T) {
		if err := tagSvc.Delete(9999); !errors.Is(err, ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 实际 %v", err)
		}
	})
}
