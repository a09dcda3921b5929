package models

import "github.com/shopspring/decimal"

// Service bir işletmenin sunduğu bakım hizmetidir (örn. Tıraş + Banyo).
type Service struct {
	BaseModel
	BusinessID      uint            `gorm:"not null;index" json:"businessId"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	DurationMinutes int             `gorm:"type:integer;not null" json:"durationMinutes"`
	PetTypeID       *uint           `gorm:"index" json:"petTypeId"`
	IsActive        bool            `gorm:"default:true;index" json:"isActive"`

	PetType *PetType `gorm:"foreignKey:PetTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"petType,omitempty"`
}
