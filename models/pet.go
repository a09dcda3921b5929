package models

import "time"

type Pet struct {
	BaseModel
	UserID    uint       `gorm:"not null;index" json:"userId"`
	PetTypeID *uint      `gorm:"index" json:"petTypeId"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Breed     string     `gorm:"type:varchar(100)" json:"breed"`
	BirthDate *time.Time `gorm:"type:date" json:"birthDate"`
	Notes     string     `gorm:"type:text" json:"notes"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PetType *PetType `gorm:"foreignKey:PetTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"petType,omitempty"`
}
