package models

import (
	"time"
)

// ArticleComment 文章评论模型
type ArticleComment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联
	Article *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (ArticleComment) TableName() string {
	return "article_comments"
}
