package models

import (
	"time"
)

// 用户角色
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User 用户模型
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"size:255" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;default:'USER'" json:"role"`
	Bio          string    `gorm:"type:text" json:"bio"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联
	Articles  []Article         `gorm:"foreignKey:OwnerID" json:"articles,omitempty"`
	Comments  []ArticleComment  `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Favorites []ArticleFavorite `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 判断是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
