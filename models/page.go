package models

// Page statik içerik sayfasıdır. IsSystem=true olan sayfalar silinemez.
type Page struct {
	BaseModel
	Title           string `gorm:"type:varchar(200);not null" json:"title"`
	Slug            string `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Content         string `gorm:"type:text" json:"content"`
	MetaTitle       string `gorm:"type:varchar(200)" json:"metaTitle"`
	MetaDescription string `gorm:"type:varchar(320)" json:"metaDescription"`
	IsSystem        bool   `gorm:"default:false" json:"isSystem"`
	IsPublished     bool   `gorm:"default:true;index" json:"isPublished"`
}
