package models

import (
	"time"
)

// ArticleFavorite 文章收藏模型,(article, user) 逻辑上唯一
type ArticleFavorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Article *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (ArticleFavorite) TableName() string {
	return "article_favorites"
}
