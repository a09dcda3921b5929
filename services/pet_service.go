package services

import (
	"context"
	"strings"
	"time"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PetInput struct {
	Name      string     `json:"name" validate:"required,min=1,max=100"`
	PetTypeID *uint      `json:"petTypeId"`
	Breed     string     `json:"breed" validate:"max=100"`
	BirthDate *time.Time `json:"birthDate"`
	Notes     string     `json:"notes"`
}

type PetPatch struct {
	Name      *string    `json:"name" validate:"omitnil,min=1,max=100"`
	PetTypeID *uint      `json:"petTypeId"`
	Breed     *string    `json:"breed" validate:"omitnil,max=100"`
	BirthDate *time.Time `json:"birthDate"`
	Notes     *string    `json:"notes"`
}

// IPetService kullanıcının kendi evcil hayvanlarını yönetir.
type IPetService interface {
	List(ctx context.Context, userID uint) ([]models.Pet, error)
	Create(ctx context.Context, userID uint, input PetInput) (*models.Pet, error)
	Update(ctx context.Context, userID, id uint, patch PetPatch) (*models.Pet, error)
	Delete(ctx context.Context, userID, id uint) error
}

type PetService struct {
	repo     repositories.IPetRepository
	petTypes repositories.IPetTypeRepository
}

func NewPetService(db *gorm.DB) IPetService {
	return &PetService{
		repo:     repositories.NewPetRepository(db),
		petTypes: repositories.NewPetTypeRepository(db),
	}
}

func (s *PetService) List(ctx context.Context, userID uint) ([]models.Pet, error) {
	pets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "PetService.List", zap.Uint("userID", userID))
	}
	return pets, nil
}

func (s *PetService) Create(ctx context.Context, userID uint, input PetInput) (*models.Pet, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if err := s.checkPetType(ctx, input.PetTypeID); err != nil {
		return nil, err
	}
	if input.BirthDate != nil && input.BirthDate.After(time.Now()) {
		return nil, Validationf("birthDate gelecekte olamaz")
	}

	pet := &models.Pet{
		UserID:    userID,
		PetTypeID: nonZero(input.PetTypeID),
		Name:      input.Name,
		Breed:     strings.TrimSpace(input.Breed),
		BirthDate: input.BirthDate,
		Notes:     input.Notes,
	}
	if err := s.repo.Create(models.ContextWithUserID(ctx, userID), pet); err != nil {
		return nil, mapRepoError(err, nil, nil, "PetService.Create", zap.Uint("userID", userID))
	}
	return pet, nil
}

func (s *PetService) Update(ctx context.Context, userID, id uint, patch PetPatch) (*models.Pet, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if err := s.checkPetType(ctx, patch.PetTypeID); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindForUser(ctx, id, userID); err != nil {
		return nil, mapRepoError(err, ErrPetNotFound, nil, "PetService.Update", zap.Uint("id", id))
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.PetTypeID != nil {
		updates["pet_type_id"] = nonZero(patch.PetTypeID)
	}
	if patch.Breed != nil {
		updates["breed"] = strings.TrimSpace(*patch.Breed)
	}
	if patch.BirthDate != nil {
		if patch.BirthDate.After(time.Now()) {
			return nil, Validationf("birthDate gelecekte olamaz")
		}
		updates["birth_date"] = *patch.BirthDate
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	ctx = models.ContextWithUserID(ctx, userID)
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrPetNotFound, nil, "PetService.Update: güncellenemedi", zap.Uint("id", id))
	}
	pet, err := s.repo.FindForUser(ctx, id, userID)
	if err != nil {
		return nil, mapRepoError(err, ErrPetNotFound, nil, "PetService.Update: yeniden okunamadı", zap.Uint("id", id))
	}
	return pet, nil
}

func (s *PetService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.repo.FindForUser(ctx, id, userID); err != nil {
		return mapRepoError(err, ErrPetNotFound, nil, "PetService.Delete", zap.Uint("id", id))
	}
	return deleteWith(ctx, userID, id, s.repo.Delete, ErrPetNotFound, "PetService.Delete")
}

func (s *PetService) checkPetType(ctx context.Context, petTypeID *uint) error {
	if petTypeID == nil || *petTypeID == 0 {
		return nil
	}
	if _, err := s.petTypes.FindByID(ctx, *petTypeID); err != nil {
		return mapRepoError(err, ErrPetTypeNotFound, nil, "PetService.checkPetType", zap.Uint("petTypeID", *petTypeID))
	}
	return nil
}

var _ IPetService = (*PetService)(nil)
