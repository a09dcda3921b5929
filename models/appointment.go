package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Valid durumun tanımlı değerlerden biri olup olmadığını söyler.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentNoShow, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment bir evcil hayvan için bir işletmeye yapılan randevu talebidir.
// Her randevu tam olarak bir işletmeye ve bir evcil hayvana aittir.
type Appointment struct {
	BaseModel
	BusinessID uint              `gorm:"not null;index" json:"businessId"`
	PetID      uint              `gorm:"not null;index" json:"petId"`
	UserID     uint              `gorm:"not null;index" json:"userId"`
	ServiceID  *uint             `gorm:"index" json:"serviceId"`
	Date       time.Time         `gorm:"not null;index" json:"date"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Note       string            `gorm:"type:text" json:"note"`

	Business *Business `gorm:"foreignKey:BusinessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business,omitempty"`
	Pet      *Pet      `gorm:"foreignKey:PetID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet,omitempty"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	Service  *Service  `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`
}
