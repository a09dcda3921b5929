package models

type BusinessPhoto struct {
	BaseModel
	BusinessID uint   `gorm:"not null;index" json:"businessId"`
	URL        string `gorm:"type:varchar(500);not null" json:"url"`
	Caption    string `gorm:"type:varchar(255)" json:"caption"`
	SortOrder  int    `gorm:"type:integer;not null;default:0;index" json:"order"`
}
