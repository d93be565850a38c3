package service

import (
	"articles-go/internal/models"
)

// CanMutate 判断用户对文章是否有修改/删除权限。
// 管理员对任何文章都有权限;其他用户仅当文章的 owner 是自己时有权限,
// 无主文章只有管理员可以操作。每个编辑、更新、删除操作执行前都必须调用。
func CanMutate(user *models.User, article *models.Article) bool {
	if user == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return article.OwnerID != nil && *article.OwnerID == user.ID
}
