package services

import (
	"testing"
	"time"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newAppointmentService(f *fixture) *AppointmentService {
	svc := NewAppointmentService(f.db).(*AppointmentService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func notificationsFor(t *testing.T, f *fixture, userID uint) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	require.NoError(t, f.db.Where("user_id = ?", userID).Order("id").Find(&notifications).Error)
	return notifications
}

func TestAppointmentService_Create(t *testing.T) {
	f := newFixture(t)
	svc := newAppointmentService(f)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	offering := models.Service{BusinessID: f.business.ID, Name: "Tıraş", Price: decimal.NewFromInt(450), DurationMinutes: 60, IsActive: true}
	require.NoError(t, f.db.Create(&offering).Error)

	appointment, err := svc.Create(f.ctx, f.customer.ID, AppointmentInput{
		BusinessID: f.business.ID,
		PetID:      pet.ID,
		ServiceID:  &offering.ID,
		Date:       fixedNow.Add(48 * time.Hour),
		Note:       "  ilk ziyaret ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appointment.Status)
	assert.Equal(t, f.customer.ID, appointment.UserID)
	assert.Equal(t, "ilk ziyaret", appointment.Note)

	notifications := notificationsFor(t, f, f.owner.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Yeni randevu talebi", notifications[0].Title)
	assert.False(t, notifications[0].IsRead)
}

func TestAppointmentService_CreateRejections(t *testing.T) {
	f := newFixture(t)
	svc := newAppointmentService(f)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	foreignPet := f.addPet(t, f.owner.ID, "Karabaş")
	future := fixedNow.Add(24 * time.Hour)

	other := models.Business{Name: "Diğer", Slug: "diger", CityID: f.city.ID, DistrictID: f.district.ID, CategoryID: f.category.ID, IsActive: true}
	require.NoError(t, f.db.Create(&other).Error)
	foreignService := models.Service{BusinessID: other.ID, Name: "Banyo", DurationMinutes: 30, IsActive: true}
	require.NoError(t, f.db.Create(&foreignService).Error)

	_, err := svc.Create(f.ctx, f.customer.ID, AppointmentInput{BusinessID: f.business.ID, PetID: pet.ID, Date: fixedNow})
	assert.ErrorIs(t, err, ErrAppointmentInPast)

	_, err = svc.Create(f.ctx, f.customer.ID, AppointmentInput{BusinessID: f.business.ID, PetID: foreignPet.ID, Date: future})
	assert.ErrorIs(t, err, ErrPetNotFound)

	_, err = svc.Create(f.ctx, f.customer.ID, AppointmentInput{BusinessID: 999, PetID: pet.ID, Date: future})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = svc.Create(f.ctx, f.customer.ID, AppointmentInput{BusinessID: f.business.ID, PetID: pet.ID, ServiceID: &foreignService.ID, Date: future})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	require.NoError(t, f.db.Model(&models.Business{}).Where("id = ?", f.business.ID).Update("is_active", false).Error)
	_, err = svc.Create(f.ctx, f.customer.ID, AppointmentInput{BusinessID: f.business.ID, PetID: pet.ID, Date: future})
	assert.ErrorIs(t, err, ErrBusinessInactive)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, notificationsFor(t, f, f.owner.ID))
}

func TestAppointmentService_UpdateStatusByOwner(t *testing.T) {
	f := newFixture(t)
	svc := newAppointmentService(f)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	appointment := f.addAppointment(t, pet, fixedNow.Add(time.Hour), models.AppointmentPending)

	_, err := svc.UpdateStatusByOwner(f.ctx, f.owner.ID, appointment.ID, StatusInput{Status: models.AppointmentPending})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatusByOwner(f.ctx, f.owner.ID, appointment.ID, StatusInput{Status: "ARCHIVED"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatusByOwner(f.ctx, f.customer.ID, appointment.ID, StatusInput{Status: models.AppointmentConfirmed})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	updated, err := svc.UpdateStatusByOwner(f.ctx, f.owner.ID, appointment.ID, StatusInput{Status: models.AppointmentConfirmed})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, updated.Status)

	var stored models.Appointment
	require.NoError(t, f.db.First(&stored, appointment.ID).Error)
	assert.Equal(t, models.AppointmentConfirmed, stored.Status)

	notifications := notificationsFor(t, f, f.customer.ID)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, "Onaylandı")
}

func TestAppointmentService_UpdateStatusByAdmin(t *testing.T) {
	f := newFixture(t)
	svc := newAppointmentService(f)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	appointment := f.addAppointment(t, pet, fixedNow.Add(time.Hour), models.AppointmentConfirmed)

	updated, err := svc.UpdateStatusByAdmin(f.ctx, f.owner.ID, appointment.ID, StatusInput{Status: models.AppointmentPending})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, updated.Status)

	_, err = svc.UpdateStatusByAdmin(f.ctx, f.owner.ID, 999, StatusInput{Status: models.AppointmentPending})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentService_ListForOwnerAndStats(t *testing.T) {
	f := newFixture(t)
	svc := newAppointmentService(f)
	boncuk := f.addPet(t, f.customer.ID, "Boncuk")
	tarcin := f.addPet(t, f.customer.ID, "Tarçın")
	f.addAppointment(t, boncuk, day(2024, 1, 1), models.AppointmentCompleted)
	f.addAppointment(t, boncuk, day(2024, 2, 1), models.AppointmentNoShow)
	f.addAppointment(t, tarcin, day(2024, 3, 1), models.AppointmentCompleted)

	result, err := svc.ListForOwner(f.ctx, f.owner.ID, queryparams.ListParams{Page: 1, PerPage: 10, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Meta.TotalItems)

	_, err = svc.ListForOwner(f.ctx, f.owner.ID, queryparams.ListParams{Status: "bilinmeyen"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	stats, err := svc.Stats(f.ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, 2, stats.CustomerPets)
	assert.Zero(t, stats.Rating.Count)
}

func TestAppointmentService_StatsCountsPetsOfOwnBusinessOnly(t *testing.T) {
	f := newFixture(t)
	svc := newAppointmentService(f)
	boncuk := f.addPet(t, f.customer.ID, "Boncuk")
	tarcin := f.addPet(t, f.customer.ID, "Tarçın")
	f.addAppointment(t, boncuk, day(2024, 1, 1), models.AppointmentCompleted)
	f.addAppointment(t, boncuk, day(2024, 2, 1), models.AppointmentCompleted)
	f.addAppointment(t, boncuk, day(2024, 3, 1), models.AppointmentCancelled)

	other := models.Business{Name: "Komşu Kuaför", Slug: "komsu-kuafor", CityID: f.city.ID, DistrictID: f.district.ID, CategoryID: f.category.ID, IsActive: true}
	require.NoError(t, f.db.Create(&other).Error)
	require.NoError(t, f.db.Create(&models.Appointment{BusinessID: other.ID, PetID: tarcin.ID, UserID: f.customer.ID, Date: day(2024, 4, 1), Status: models.AppointmentCompleted}).Error)

	stats, err := svc.Stats(f.ctx, f.owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, 1, stats.CustomerPets)
}
