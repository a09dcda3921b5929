package models

type PetType struct {
	BaseModel
	Name string `gorm:"type:varchar(60);not null" json:"name"`
	Slug string `gorm:"type:varchar(80);uniqueIndex;not null" json:"slug"`
	Icon string `gorm:"type:varchar(255)" json:"icon"`
}
