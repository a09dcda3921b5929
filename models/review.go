package models

type Review struct {
	BaseModel
	BusinessID uint   `gorm:"not null;uniqueIndex:idx_review_business_user" json:"businessId"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_review_business_user" json:"userId"`
	Rating     int    `gorm:"type:integer;not null" json:"rating"`
	Comment    string `gorm:"type:text" json:"comment"`
	IsApproved bool   `gorm:"default:true;index" json:"isApproved"`

	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}
