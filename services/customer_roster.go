package services

import (
	"time"

	"tiklabakim.com/models"
)

// CustomerRosterEntry bir evcil hayvanın işletmeyle geçmişinin özetidir.
type CustomerRosterEntry struct {
	PetID       uint       `json:"petId"`
	PetName     string     `json:"petName"`
	PetType     string     `json:"petType"`
	Breed       string     `json:"breed"`
	OwnerName   string     `json:"ownerName"`
	OwnerPhone  string     `json:"ownerPhone"`
	LastVisit   *time.Time `json:"lastVisit"`
	TotalVisits int        `json:"totalVisits"`
	NoShowCount int        `json:"noShowCount"`
}

// AggregateCustomers randevu geçmişini evcil hayvan başına tek kayıtta toplar.
//
// Sahip bilgisi evcil hayvan için görülen ilk randevudan alınır. Son ziyaret, tamamlanmış
// randevuların en büyük tarihidir ve girdinin sırasından bağımsızdır. Sonuç, evcil hayvanların
// ilk görüldüğü sırayı korur. Girdi değiştirilmez.
func AggregateCustomers(appointments []models.Appointment) []CustomerRosterEntry {
	index := make(map[uint]int, len(appointments))
	roster := make([]CustomerRosterEntry, 0)

	for i := range appointments {
		a := &appointments[i]

		pos, seen := index[a.PetID]
		if !seen {
			roster = append(roster, newRosterEntry(a))
			pos = len(roster) - 1
			index[a.PetID] = pos
		}
		entry := &roster[pos]

		switch a.Status {
		case models.AppointmentCompleted:
			entry.TotalVisits++
			if entry.LastVisit == nil || a.Date.After(*entry.LastVisit) {
				d := a.Date
				entry.LastVisit = &d
			}
		case models.AppointmentNoShow:
			entry.NoShowCount++
		}
	}
	return roster
}

func newRosterEntry(a *models.Appointment) CustomerRosterEntry {
	entry := CustomerRosterEntry{PetID: a.PetID}
	if a.Pet != nil {
		entry.PetName = a.Pet.Name
		entry.Breed = a.Pet.Breed
		if a.Pet.PetType != nil {
			entry.PetType = a.Pet.PetType.Name
		}
	}
	if a.User != nil {
		entry.OwnerName = a.User.Name
		entry.OwnerPhone = a.User.Phone
	}
	return entry
}
