package services

import (
	"context"
	"strings"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/slugify"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PetTypeInput struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
	Slug string `json:"slug" validate:"max=80"`
	Icon string `json:"icon" validate:"max=255"`
}

type PetTypePatch struct {
	Name *string `json:"name" validate:"omitnil,min=2,max=60"`
	Slug *string `json:"slug" validate:"omitnil,min=1,max=80"`
	Icon *string `json:"icon" validate:"omitnil,max=255"`
}

type IPetTypeService interface {
	List(ctx context.Context) ([]models.PetType, error)
	Create(ctx context.Context, actorID uint, input PetTypeInput) (*models.PetType, error)
	Update(ctx context.Context, actorID, id uint, patch PetTypePatch) (*models.PetType, error)
	Delete(ctx context.Context, actorID, id uint) error
}

type PetTypeService struct {
	repo repositories.IPetTypeRepository
}

func NewPetTypeService(db *gorm.DB) IPetTypeService {
	return &PetTypeService{repo: repositories.NewPetTypeRepository(db)}
}

func (s *PetTypeService) List(ctx context.Context) ([]models.PetType, error) {
	petTypes, err := s.repo.FindAll(ctx, "name ASC")
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "PetTypeService.List")
	}
	return petTypes, nil
}

func (s *PetTypeService) Create(ctx context.Context, actorID uint, input PetTypeInput) (*models.PetType, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	petType := &models.PetType{Name: input.Name, Slug: slugify.Resolve(input.Slug, input.Name), Icon: input.Icon}
	if petType.Slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}
	if err := s.repo.Create(models.ContextWithUserID(ctx, actorID), petType); err != nil {
		return nil, mapRepoError(err, nil, ErrPetTypeSlugTaken, "PetTypeService.Create", zap.String("slug", petType.Slug))
	}
	return petType, nil
}

func (s *PetTypeService) Update(ctx context.Context, actorID, id uint, patch PetTypePatch) (*models.PetType, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Slug != nil {
		slug := slugify.Make(*patch.Slug)
		if slug == "" {
			return nil, Validationf("slug alanı geçersiz")
		}
		updates["slug"] = slug
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}

	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrPetTypeNotFound, ErrPetTypeSlugTaken, "PetTypeService.Update", zap.Uint("id", id))
	}
	petType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrPetTypeNotFound, nil, "PetTypeService.Update: yeniden okunamadı", zap.Uint("id", id))
	}
	return petType, nil
}

func (s *PetTypeService) Delete(ctx context.Context, actorID, id uint) error {
	return deleteWith(ctx, actorID, id, s.repo.Delete, ErrPetTypeNotFound, "PetTypeService.Delete")
}

var _ IPetTypeService = (*PetTypeService)(nil)
