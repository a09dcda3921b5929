package models

type Notification struct {
	BaseModel
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	Link    string `gorm:"type:varchar(500)" json:"link"`
	IsRead  bool   `gorm:"default:false;index" json:"isRead"`
}
