package services

import (
	"testing"
	"time"

	"tiklabakim.com/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetService_CreateAndList(t *testing.T) {
	f := newFixture(t)
	svc := NewPetService(f.db)

	born := time.Date(2021, 5, 10, 0, 0, 0, 0, time.UTC)
	pet, err := svc.Create(f.ctx, f.customer.ID, PetInput{Name: "  Tarçın ", PetTypeID: &f.petType.ID, Breed: " Pug ", BirthDate: &born})
	require.NoError(t, err)
	assert.Equal(t, "Tarçın", pet.Name)
	assert.Equal(t, "Pug", pet.Breed)
	assert.Equal(t, f.customer.ID, pet.UserID)

	noType := uint(0)
	_, err = svc.Create(f.ctx, f.customer.ID, PetInput{Name: "Boncuk", PetTypeID: &noType})
	require.NoError(t, err)
	f.addPet(t, f.owner.ID, "Karabaş")

	pets, err := svc.List(f.ctx, f.customer.ID)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Boncuk", pets[0].Name)
	assert.Nil(t, pets[0].PetTypeID)
	assert.Equal(t, "Tarçın", pets[1].Name)
	require.NotNil(t, pets[1].PetType)
	assert.Equal(t, "Köpek", pets[1].PetType.Name)
}

func TestPetService_CreateRejections(t *testing.T) {
	f := newFixture(t)
	svc := NewPetService(f.db)
	future := time.Now().AddDate(0, 1, 0)
	unknownType := uint(999)

	tests := []struct {
		name  string
		input PetInput
		want  ErrorKind
	}{
		{"boş ad", PetInput{Name: "   "}, KindValidation},
		{"gelecekte doğum tarihi", PetInput{Name: "Boncuk", BirthDate: &future}, KindValidation},
		{"bilinmeyen tür", PetInput{Name: "Boncuk", PetTypeID: &unknownType}, KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(f.ctx, f.customer.ID, tt.input)
			requireKind(t, err, tt.want)
		})
	}
}

func TestPetService_UpdateIsScopedToOwner(t *testing.T) {
	f := newFixture(t)
	svc := NewPetService(f.db)
	pet := f.addPet(t, f.customer.ID, "Boncuk")

	name := "Boncuk Hanım"
	_, err := svc.Update(f.ctx, f.owner.ID, pet.ID, PetPatch{Name: &name})
	assert.ErrorIs(t, err, ErrPetNotFound)

	notes := "Tırnak kesiminde huzursuz"
	updated, err := svc.Update(f.ctx, f.customer.ID, pet.ID, PetPatch{Name: &name, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, "Golden Retriever", updated.Breed)

	future := time.Now().AddDate(1, 0, 0)
	_, err = svc.Update(f.ctx, f.customer.ID, pet.ID, PetPatch{BirthDate: &future})
	requireKind(t, err, KindValidation)
}

func TestPetService_Delete(t *testing.T) {
	f := newFixture(t)
	svc := NewPetService(f.db)
	pet := f.addPet(t, f.customer.ID, "Boncuk")

	assert.ErrorIs(t, svc.Delete(f.ctx, f.owner.ID, pet.ID), ErrPetNotFound)
	require.NoError(t, svc.Delete(f.ctx, f.customer.ID, pet.ID))
	assert.ErrorIs(t, svc.Delete(f.ctx, f.customer.ID, pet.ID), ErrPetNotFound)
}

func TestPetService_DeleteKeepsAppointmentHistory(t *testing.T) {
	f := newFixture(t)
	svc := NewPetService(f.db)
	pet := f.addPet(t, f.customer.ID, "Boncuk")
	f.addAppointment(t, pet, day(2024, 1, 1), models.AppointmentCompleted)
	f.addAppointment(t, pet, day(2024, 2, 1), models.AppointmentCompleted)

	err := svc.Delete(f.ctx, f.customer.ID, pet.ID)
	require.ErrorIs(t, err, ErrInUse)
	requireKind(t, err, KindConflict)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Where("pet_id = ?", pet.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	require.NoError(t, f.db.First(&models.Pet{}, pet.ID).Error)
}
