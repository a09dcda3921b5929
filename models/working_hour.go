package models

// WorkingHour haftanın bir günü için çalışma saatidir. DayOfWeek: 0=Pazar ... 6=Cumartesi.
type WorkingHour struct {
	BaseModel
	BusinessID uint   `gorm:"not null;uniqueIndex:idx_working_hour_business_day" json:"businessId"`
	DayOfWeek  int    `gorm:"type:integer;not null;uniqueIndex:idx_working_hour_business_day" json:"dayOfWeek"`
	OpenTime   string `gorm:"type:varchar(5)" json:"openTime"`
	CloseTime  string `gorm:"type:varchar(5)" json:"closeTime"`
	IsClosed   bool   `gorm:"default:false" json:"isClosed"`
}
