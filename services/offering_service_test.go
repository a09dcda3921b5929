package services

import (
	"testing"

	"tiklabakim.com/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferingService_CreateAndList(t *testing.T) {
	f := newFixture(t)
	svc := NewOfferingService(f.db)

	offering, err := svc.Create(f.ctx, f.owner.ID, OfferingInput{
		Name:            " Tıraş + Banyo ",
		Price:           decimal.RequireFromString("449.999"),
		DurationMinutes: 90,
		PetTypeID:       &f.petType.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tıraş + Banyo", offering.Name)
	assert.Equal(t, f.business.ID, offering.BusinessID)
	assert.True(t, offering.IsActive)
	assert.True(t, decimal.RequireFromString("450").Equal(offering.Price), offering.Price.String())

	_, err = svc.Create(f.ctx, f.owner.ID, OfferingInput{Name: "Banyo", Price: decimal.Zero, DurationMinutes: 30})
	require.NoError(t, err)

	offerings, err := svc.List(f.ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, offerings, 2)
	assert.Equal(t, "Banyo", offerings[0].Name)
	assert.Nil(t, offerings[0].PetTypeID)
	require.NotNil(t, offerings[1].PetType)
	assert.Equal(t, "Köpek", offerings[1].PetType.Name)
}

func TestOfferingService_CreateRejections(t *testing.T) {
	f := newFixture(t)
	svc := NewOfferingService(f.db)
	unknownType := uint(999)

	tests := []struct {
		name    string
		ownerID uint
		input   OfferingInput
		want    ErrorKind
	}{
		{"negatif fiyat", f.owner.ID, OfferingInput{Name: "Banyo", Price: decimal.NewFromInt(-1), DurationMinutes: 30}, KindValidation},
		{"sıfır süre", f.owner.ID, OfferingInput{Name: "Banyo", DurationMinutes: 0}, KindValidation},
		{"bir günden uzun", f.owner.ID, OfferingInput{Name: "Banyo", DurationMinutes: 1441}, KindValidation},
		{"kısa ad", f.owner.ID, OfferingInput{Name: " B ", DurationMinutes: 30}, KindValidation},
		{"bilinmeyen tür", f.owner.ID, OfferingInput{Name: "Banyo", DurationMinutes: 30, PetTypeID: &unknownType}, KindNotFound},
		{"işletmesi olmayan kullanıcı", f.customer.ID, OfferingInput{Name: "Banyo", DurationMinutes: 30}, KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(f.ctx, tt.ownerID, tt.input)
			requireKind(t, err, tt.want)
		})
	}
}

func TestOfferingService_UpdateIsScopedToOwnBusiness(t *testing.T) {
	f := newFixture(t)
	svc := NewOfferingService(f.db)
	offering, err := svc.Create(f.ctx, f.owner.ID, OfferingInput{Name: "Banyo", Price: decimal.NewFromInt(200), DurationMinutes: 30})
	require.NoError(t, err)

	rival := models.User{Name: "Rakip", Email: "rakip@example.com", Role: models.RoleBusinessOwner, IsActive: true}
	require.NoError(t, f.db.Create(&rival).Error)
	require.NoError(t, f.db.Create(&models.Business{Name: "Rakip Kuaför", Slug: "rakip-kuafor", CityID: f.city.ID, DistrictID: f.district.ID, CategoryID: f.category.ID, OwnerID: &rival.ID, IsActive: true}).Error)

	price := decimal.NewFromInt(1)
	_, err = svc.Update(f.ctx, rival.ID, offering.ID, OfferingPatch{Price: &price})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(f.ctx, rival.ID, offering.ID), ErrServiceNotFound)

	negative := decimal.NewFromInt(-5)
	_, err = svc.Update(f.ctx, f.owner.ID, offering.ID, OfferingPatch{Price: &negative})
	requireKind(t, err, KindValidation)

	price = decimal.RequireFromString("249.5")
	inactive := false
	updated, err := svc.Update(f.ctx, f.owner.ID, offering.ID, OfferingPatch{Price: &price, IsActive: &inactive, PetTypeID: &f.petType.ID})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price), updated.Price.String())
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.PetType)

	none := uint(0)
	updated, err = svc.Update(f.ctx, f.owner.ID, offering.ID, OfferingPatch{PetTypeID: &none})
	require.NoError(t, err)
	assert.Nil(t, updated.PetTypeID)
}

func TestOfferingService_DeleteKeepsAppointments(t *testing.T) {
	f := newFixture(t)
	svc := NewOfferingService(f.db)
	offering, err := svc.Create(f.ctx, f.owner.ID, OfferingInput{Name: "Banyo", DurationMinutes: 30})
	require.NoError(t, err)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	appointment := models.Appointment{BusinessID: f.business.ID, PetID: pet.ID, UserID: f.customer.ID, ServiceID: &offering.ID, Date: day(2024, 1, 1), Status: models.AppointmentCompleted}
	require.NoError(t, f.db.Create(&appointment).Error)

	require.NoError(t, svc.Delete(f.ctx, f.owner.ID, offering.ID))

	var stored models.Appointment
	require.NoError(t, f.db.First(&stored, appointment.ID).Error)
	assert.Nil(t, stored.ServiceID)
	assert.ErrorIs(t, svc.Delete(f.ctx, f.owner.ID, offering.ID), ErrServiceNotFound)
}
