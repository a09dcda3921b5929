package services

import (
	"math/rand"
	"testing"
	"time"

	"tiklabakim.com/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterAppointment(petID uint, petName string, owner string, date time.Time, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		PetID:  petID,
		Date:   date,
		Status: status,
		Pet:    &models.Pet{BaseModel: models.BaseModel{ID: petID}, Name: petName, Breed: "Tekir", PetType: &models.PetType{Name: "Kedi"}},
		User:   &models.User{Name: owner, Phone: "0555"},
	}
}

func TestAggregateCustomers_Empty(t *testing.T) {
	roster := AggregateCustomers(nil)
	assert.NotNil(t, roster)
	assert.Empty(t, roster)
}

func TestAggregateCustomers_CountsAndLastVisit(t *testing.T) {
	history := []models.Appointment{
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 1, 1), models.AppointmentCompleted),
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 2, 1), models.AppointmentNoShow),
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 3, 1), models.AppointmentCompleted),
	}

	roster := AggregateCustomers(history)
	require.Len(t, roster, 1)
	entry := roster[0]
	assert.Equal(t, uint(1), entry.PetID)
	assert.Equal(t, "Boncuk", entry.PetName)
	assert.Equal(t, "Kedi", entry.PetType)
	assert.Equal(t, "Tekir", entry.Breed)
	assert.Equal(t, "Ali", entry.OwnerName)
	assert.Equal(t, 2, entry.TotalVisits)
	assert.Equal(t, 1, entry.NoShowCount)
	require.NotNil(t, entry.LastVisit)
	assert.True(t, entry.LastVisit.Equal(day(2024, 3, 1)))
}

func TestAggregateCustomers_NoCompletedVisitKeepsLastVisitNil(t *testing.T) {
	roster := AggregateCustomers([]models.Appointment{
		rosterAppointment(7, "Karabaş", "Zeynep", day(2024, 5, 1), models.AppointmentPending),
		rosterAppointment(7, "Karabaş", "Zeynep", day(2024, 5, 2), models.AppointmentCancelled),
		rosterAppointment(7, "Karabaş", "Zeynep", day(2024, 5, 3), models.AppointmentConfirmed),
	})
	require.Len(t, roster, 1)
	assert.Nil(t, roster[0].LastVisit)
	assert.Zero(t, roster[0].TotalVisits)
	assert.Zero(t, roster[0].NoShowCount)
}

func TestAggregateCustomers_OwnerFromFirstAppointment(t *testing.T) {
	roster := AggregateCustomers([]models.Appointment{
		rosterAppointment(3, "Pamuk", "İlk Sahip", day(2024, 6, 1), models.AppointmentPending),
		rosterAppointment(3, "Pamuk", "İkinci Sahip", day(2024, 7, 1), models.AppointmentCompleted),
	})
	require.Len(t, roster, 1)
	assert.Equal(t, "İlk Sahip", roster[0].OwnerName)
}

func TestAggregateCustomers_FirstSeenOrder(t *testing.T) {
	roster := AggregateCustomers([]models.Appointment{
		rosterAppointment(5, "Duman", "A", day(2024, 3, 1), models.AppointmentCompleted),
		rosterAppointment(2, "Minnoş", "B", day(2024, 2, 1), models.AppointmentCompleted),
		rosterAppointment(5, "Duman", "A", day(2024, 1, 1), models.AppointmentCompleted),
		rosterAppointment(9, "Zeytin", "C", day(2024, 1, 1), models.AppointmentNoShow),
	})
	require.Len(t, roster, 3)
	assert.Equal(t, []uint{5, 2, 9}, []uint{roster[0].PetID, roster[1].PetID, roster[2].PetID})
}

func TestAggregateCustomers_SumsMatchInput(t *testing.T) {
	statuses := []models.AppointmentStatus{
		models.AppointmentPending, models.AppointmentConfirmed, models.AppointmentCompleted,
		models.AppointmentNoShow, models.AppointmentCancelled,
	}
	rng := rand.New(rand.NewSource(42))
	var history []models.Appointment
	completed, noShows := 0, 0
	for i := 0; i < 200; i++ {
		status := statuses[rng.Intn(len(statuses))]
		petID := uint(rng.Intn(12) + 1)
		history = append(history, rosterAppointment(petID, "pet", "owner", day(2023, 1, 1).AddDate(0, 0, rng.Intn(500)), status))
		switch status {
		case models.AppointmentCompleted:
			completed++
		case models.AppointmentNoShow:
			noShows++
		}
	}

	roster := AggregateCustomers(history)
	totalVisits, totalNoShows := 0, 0
	seen := map[uint]bool{}
	for _, entry := range roster {
		assert.False(t, seen[entry.PetID], "pet %d birden fazla kez listelendi", entry.PetID)
		seen[entry.PetID] = true
		totalVisits += entry.TotalVisits
		totalNoShows += entry.NoShowCount

		var latest *time.Time
		for _, a := range history {
			if a.PetID == entry.PetID && a.Status == models.AppointmentCompleted && (latest == nil || a.Date.After(*latest)) {
				d := a.Date
				latest = &d
			}
		}
		if latest == nil {
			assert.Nil(t, entry.LastVisit)
		} else {
			require.NotNil(t, entry.LastVisit)
			assert.True(t, latest.Equal(*entry.LastVisit))
		}
	}
	assert.Equal(t, completed, totalVisits)
	assert.Equal(t, noShows, totalNoShows)
}

func TestAggregateCustomers_ShuffleInvariant(t *testing.T) {
	history := []models.Appointment{
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 1, 1), models.AppointmentCompleted),
		rosterAppointment(2, "Tarçın", "Ali", day(2024, 1, 5), models.AppointmentNoShow),
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 4, 1), models.AppointmentCompleted),
		rosterAppointment(2, "Tarçın", "Ali", day(2024, 2, 5), models.AppointmentCompleted),
		rosterAppointment(3, "Fındık", "Veli", day(2024, 2, 9), models.AppointmentCancelled),
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 2, 1), models.AppointmentNoShow),
	}
	byPet := func(roster []CustomerRosterEntry) map[uint]CustomerRosterEntry {
		out := make(map[uint]CustomerRosterEntry, len(roster))
		for _, e := range roster {
			out[e.PetID] = e
		}
		return out
	}
	want := byPet(AggregateCustomers(history))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.Appointment(nil), history...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := byPet(AggregateCustomers(shuffled))
		require.Len(t, got, len(want))
		for petID, w := range want {
			g := got[petID]
			assert.Equal(t, w.TotalVisits, g.TotalVisits)
			assert.Equal(t, w.NoShowCount, g.NoShowCount)
			if w.LastVisit == nil {
				assert.Nil(t, g.LastVisit)
			} else {
				require.NotNil(t, g.LastVisit)
				assert.True(t, w.LastVisit.Equal(*g.LastVisit))
			}
		}
	}
}

func TestAggregateCustomers_DoesNotMutateInput(t *testing.T) {
	history := []models.Appointment{
		rosterAppointment(1, "Boncuk", "Ali", day(2024, 1, 1), models.AppointmentCompleted),
	}
	before := history[0]
	AggregateCustomers(history)
	assert.Equal(t, before.Status, history[0].Status)
	assert.True(t, before.Date.Equal(history[0].Date))
}

func TestCustomerService_RosterEndToEnd(t *testing.T) {
	f := newFixture(t)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	f.addAppointment(t, pet, day(2024, 1, 1), models.AppointmentCompleted)
	f.addAppointment(t, pet, day(2024, 2, 1), models.AppointmentNoShow)
	f.addAppointment(t, pet, day(2024, 3, 1), models.AppointmentCompleted)

	roster, err := NewCustomerService(f.db).Roster(f.ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	entry := roster[0]
	assert.Equal(t, pet.ID, entry.PetID)
	assert.Equal(t, "Boncuk", entry.PetName)
	assert.Equal(t, "Köpek", entry.PetType)
	assert.Equal(t, "Mehmet Yılmaz", entry.OwnerName)
	assert.Equal(t, "05551112233", entry.OwnerPhone)
	assert.Equal(t, 2, entry.TotalVisits)
	assert.Equal(t, 1, entry.NoShowCount)
	require.NotNil(t, entry.LastVisit)
	assert.True(t, entry.LastVisit.Equal(day(2024, 3, 1)))
}

func TestCustomerService_RosterWithoutBusinessIsEmpty(t *testing.T) {
	f := newFixture(t)
	roster, err := NewCustomerService(f.db).Roster(f.ctx, f.customer.ID)
	require.NoError(t, err)
	assert.NotNil(t, roster)
	assert.Empty(t, roster)
}
