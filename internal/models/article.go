package models

import (
	"time"
)

// Article 文章模型
// Owner 是拥有编辑/删除权限的登录用户,Author 只是展示用的署名,两者相互独立
type Article struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255" json:"slug"`
	Description string    `gorm:"size:512" json:"description"`
	Body        string    `gorm:"type:text" json:"body"`
	AuthorID    *uint     `gorm:"index" json:"author_id"`
	OwnerID     *uint     `gorm:"index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联
	Author    *Author           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Owner     *User             `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tags      []Tag             `gorm:"many2many:article_tags" json:"tags,omitempty"`
	Comments  []ArticleComment  `gorm:"foreignKey:ArticleID" json:"comments,omitempty"`
	Favorites []ArticleFavorite `gorm:"foreignKey:ArticleID" json:"favorites,omitempty"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}
