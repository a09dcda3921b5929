package services

import (
	"context"
	"strings"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OfferingInput struct {
	Name            string          `json:"name" validate:"required,min=2,max=200"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes" validate:"gt=0,lte=1440"`
	PetTypeID       *uint           `json:"petTypeId"`
}

type OfferingPatch struct {
	Name            *string          `json:"name" validate:"omitnil,min=2,max=200"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	DurationMinutes *int             `json:"durationMinutes" validate:"omitnil,gt=0,lte=1440"`
	PetTypeID       *uint            `json:"petTypeId"`
	IsActive        *bool            `json:"isActive"`
}

// IOfferingService işletme sahibinin sunduğu hizmetleri yönetir.
type IOfferingService interface {
	List(ctx context.Context, ownerID uint) ([]models.Service, error)
	Create(ctx context.Context, ownerID uint, input OfferingInput) (*models.Service, error)
	Update(ctx context.Context, ownerID, id uint, patch OfferingPatch) (*models.Service, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type OfferingService struct {
	businesses repositories.IBusinessRepository
	repo       repositories.IServiceRepository
	petTypes   repositories.IPetTypeRepository
}

func NewOfferingService(db *gorm.DB) IOfferingService {
	return &OfferingService{
		businesses: repositories.NewBusinessRepository(db),
		repo:       repositories.NewServiceRepository(db),
		petTypes:   repositories.NewPetTypeRepository(db),
	}
}

func (s *OfferingService) List(ctx context.Context, ownerID uint) ([]models.Service, error) {
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "OfferingService.List")
	if err != nil {
		return nil, err
	}
	offerings, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "OfferingService.List", zap.Uint("businessID", businessID))
	}
	return offerings, nil
}

func (s *OfferingService) Create(ctx context.Context, ownerID uint, input OfferingInput) (*models.Service, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, Validationf("price negatif olamaz")
	}
	if err := s.checkPetType(ctx, input.PetTypeID); err != nil {
		return nil, err
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "OfferingService.Create")
	if err != nil {
		return nil, err
	}

	offering := &models.Service{
		BusinessID:      businessID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price.Round(2),
		DurationMinutes: input.DurationMinutes,
		PetTypeID:       nonZero(input.PetTypeID),
		IsActive:        true,
	}
	if err := s.repo.Create(models.ContextWithUserID(ctx, ownerID), offering); err != nil {
		return nil, mapRepoError(err, nil, nil, "OfferingService.Create", zap.Uint("businessID", businessID))
	}
	return offering, nil
}

func (s *OfferingService) Update(ctx context.Context, ownerID, id uint, patch OfferingPatch) (*models.Service, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, Validationf("price negatif olamaz")
	}
	if err := s.checkPetType(ctx, patch.PetTypeID); err != nil {
		return nil, err
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "OfferingService.Update")
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindForBusiness(ctx, id, businessID); err != nil {
		return nil, mapRepoError(err, ErrServiceNotFound, nil, "OfferingService.Update", zap.Uint("id", id))
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = patch.Price.Round(2)
	}
	if patch.DurationMinutes != nil {
		updates["duration_minutes"] = *patch.DurationMinutes
	}
	if patch.PetTypeID != nil {
		updates["pet_type_id"] = nonZero(patch.PetTypeID)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	ctx = models.ContextWithUserID(ctx, ownerID)
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrServiceNotFound, nil, "OfferingService.Update: güncellenemedi", zap.Uint("id", id))
	}
	offering, err := s.repo.FindByID(ctx, id, "PetType")
	if err != nil {
		return nil, mapRepoError(err, ErrServiceNotFound, nil, "OfferingService.Update: yeniden okunamadı", zap.Uint("id", id))
	}
	return offering, nil
}

func (s *OfferingService) Delete(ctx context.Context, ownerID, id uint) error {
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "OfferingService.Delete")
	if err != nil {
		return err
	}
	if _, err := s.repo.FindForBusiness(ctx, id, businessID); err != nil {
		return mapRepoError(err, ErrServiceNotFound, nil, "OfferingService.Delete", zap.Uint("id", id))
	}
	return deleteWith(ctx, ownerID, id, s.repo.Delete, ErrServiceNotFound, "OfferingService.Delete")
}

func (s *OfferingService) checkPetType(ctx context.Context, petTypeID *uint) error {
	if petTypeID == nil || *petTypeID == 0 {
		return nil
	}
	if _, err := s.petTypes.FindByID(ctx, *petTypeID); err != nil {
		return mapRepoError(err, ErrPetTypeNotFound, nil, "OfferingService.checkPetType", zap.Uint("petTypeID", *petTypeID))
	}
	return nil
}

// nonZero 0 değerli isteğe bağlı kimlikleri NULL olarak yazmak için nil'e çevirir.
func nonZero(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

var _ IOfferingService = (*OfferingService)(nil)
