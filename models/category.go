package models

// Category işletmelerin sınıflandırıldığı hizmet kategorisidir (örn. Köpek Kuaförü).
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"type:varchar(255)" json:"icon"`
	SortOrder   int    `gorm:"default:0;index" json:"sortOrder"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`
}
