package service

import (
	"testing"

	"articles-go/internal/models"
)

// TestCanMutate 测试文章修改权限判断
func TestCanMutate(t *testing.T) {
	ownerID := uint(1)

	owner := &models.User{ID: 1, Username: "owner", Role: models.RoleUser}
	other := &models.User{ID: 2, Username: "other", Role: models.RoleUser}
	admin := &models.User{ID: 3, Username: "admin", Role: models.RoleAdmin}

	owned := &models.Article{ID: 10, Title: "有主文章", OwnerID: &ownerID}
	ownerless := &models.Article{ID: 11, Title: "无主文章", OwnerID: nil}

	tests := []struct {
		name    string
		user    *models.User
		article *models.Article
		want    bool
	}{
		{"文章所有者可以修改", owner, owned, true},
		{"其他普通用户不能修改", other, owned, false},
		{"管理员可以修改任何文章", admin, owned, true},
		{"管理员可以修改无主文章", admin, ownerless, true},
		{"普通用户不能修改无主文章", owner, ownerless, false},
		{"匿名用户不能修改", nil, owned, false},
		{"匿名用户不能修改无主文章", nil, ownerless, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(tt.user, tt.article); got != tt.want {
				t.Errorf("CanMutate() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}
