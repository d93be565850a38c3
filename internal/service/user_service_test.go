package service

import (
	"errors"
	"testing"

	"articles-go/internal/dto"
	"articles-go/internal/models"
)

// TestDeleteUser 测试用户删除的级联清理
func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	userSvc := setupUserService(t, db)
	articleSvc := setupArticleService(t, db)

	victim := createTestUser(t, db, "victim", models.RoleUser)
	other := createTestUser(t, db, "other", models.RoleUser)
	tag := createTestTag(t, db, "tagged")

	// victim 拥有两篇文章,其中一篇带标签,且被other评论和收藏
	owned1, err := articleSvc.Create(&dto.ArticleCreateRequest{Title: "文章1", Body: "x", TagIDs: []uint{tag.ID}}, victim)
	if err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	if _, err := articleSvc.Create(&dto.ArticleCreateRequest{Title: "文章2", Body: "x"}, victim); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	if _, err := articleSvc.AddComment(owned1.ID, "别人的评论", other); err != nil {
		t.Fatalf("添加评论失败: %v", err)
	}
	if err := articleSvc.Favorite(owned1.ID, other); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}

	// victim 也评论并收藏了别人的文章
	otherArticle := createTestArticle(t, db, "别人的文章", other)
	if _, err := articleSvc.AddComment(otherArticle.ID, "victim的评论", victim); err != nil {
		t.Fatalf("添加评论失败: %v", err)
	}
	if err := articleSvc.Favorite(otherArticle.ID, victim); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}

	if err := userSvc.Delete(victim.ID); err != nil {
		t.Fatalf("删除用户失败: %v", err)
	}

	var count int64
	db.Model(&models.Article{}).Where("owner_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("用户拥有的文章应全部删除, 剩余 %d", count)
	}
	db.Model(&models.ArticleComment{}).Where("user_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("用户的评论应全部删除, 剩余 %d", count)
	}
	db.Model(&models.ArticleFavorite{}).Where("user_id = ?", victim.ID).Count(&count)
	if count != 0 {
		t.Errorf("用户的收藏应全部删除, 剩余 %d", count)
	}
	// 文章的级联也已执行:归属文章上别人的评论/收藏一并删除
	db.Model(&models.ArticleComment{}).Where("article_id = ?", owned1.ID).Count(&count)
	if count != 0 {
		t.Errorf("归属文章的评论应一并删除, 剩余 %d", count)
	}
	db.Model(&models.ArticleFavorite{}).Where("article_id = ?", owned1.ID).Count(&count)
	if count != 0 {
		t.Errorf("归属文章的收藏应一并删除, 剩余 %d", count)
	}

	if _, err := userSvc.Get(victim.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后的查询应返回 ErrNotFound, 实际 %v", err)
	}

	// 别人的文章及其剩余数据不受影响
	if _, err := articleSvc.Get(otherArticle.ID); err != nil {
		t.Errorf("别人的文章不应受影响: %v", err)
	}
}

// TestDeleteUserNotFound 测试删除不存在的用户
func TestDeleteUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	userSvc := setupUserService(t, db)

	if err := userSvc.Delete(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("期望 ErrNotFound, 实际 %v", err)
	}
}

// TestDeleteUserRollback 测试中途失败时整体回滚,不留部分删除
func TestDeleteUserRollback(t *testing.T) {
	db := setupTestDB(t)
	userSvc := setupUserService(t, db)
	articleSvc := setupArticleService(t, db)

	victim := createTestUser(t, db, "victim", models.RoleUser)
	other := createTestUser(t, db, "other", models.RoleUser)

	otherArticle := createTestArticle(t, db, "别人的文章", other)
	if _, err := articleSvc.AddComment(otherArticle.ID, "victim的评论", victim); err != nil {
		t.Fatalf("添加评论失败: %v", err)
	}

	// 删除收藏表,使删除序列中途失败
	if err := db.Migrator().DropTable(&models.ArticleFavorite{}); err != nil {
		t.Fatalf("删除收藏表失败: %v", err)
	}

	err := userSvc.Delete(victim.ID)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("期望 ErrIntegrity, 实际 %v", err)
	}

	// 回滚后用户和评论都还在
	if _, err := userSvc.Get(victim.ID); err != nil {
		t.Errorf("回滚后用户应仍存在: %v", err)
	}
	var count int64
	db.Model(&models.ArticleComment{}).Where("user_id = ?", victim.ID).Count(&count)
	if count != 1 {
		t.Errorf("回滚后评论应仍存在, 实际 %d", count)
	}
}

// TestUpdateUser 测试更新用户资料
func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	userSvc := setupUserService(t, db)

	user := createTestUser(t, db, "someone", models.RoleUser)
	oldHash := user.PasswordHash

	t.Run("密码为空时保持不变", func(t *testing.T) {
		updated, err := userSvc.Update(user.ID, &dto.UserUpdateRequest{
			Username: "someone",
			Email:    "new@example.com",
			Bio:      "新简介",
		})
		if err != nil {
			t.Fatalf("更新用户失败: %v", err)
		}
		if updated.Email != "new@example.com" || updated.Bio != "新简介" {
			t.Errorf("资料应已更新: %+v", updated)
		}
		if updated.PasswordHash != oldHash {
			t.Errorf("未提供密码时哈希不应改变")
		}
	})

	t.Run("提供密码时重新哈希", func(t *testing.T) {
		updated, err := userSvc.Update(user.ID, &dto.UserUpdateRequest{
			Username: "someone",
			Email:    "new@example.com",
			Password: "newpassword",
		})
		if err != nil {
			t.Fatalf("更新用户失败: %v", err)
		}
		if updated.PasswordHash == oldHash {
			t.Errorf("提供密码后哈希应改变")
		}
		if updated.PasswordHash == "newpassword" {
			t.Errorf("密码不应明文存储")
		}
	})

	t.Run("更新不存在的用户", func(t *testing.T) {
		_, err := userSvc.Update(9999, &dto.UserUpdateRequest{Username: "ghost", Email: "g@example.com"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 实际 %v", err)
		}
	})
}
