package models

// Author 作者署名模型,与登录用户无关,不参与权限判断
type Author struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Bio  string `gorm:"type:text" json:"bio"`
}

// TableName 指定表名
func (Author) TableName() string {
	return "authors"
}
