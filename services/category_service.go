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

type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"max=120"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=255"`
	SortOrder   int    `json:"sortOrder" validate:"gte=0"`
}

type CategoryPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=2,max=100"`
	Slug        *string `json:"slug" validate:"omitnil,min=1,max=120"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" validate:"omitnil,max=255"`
	SortOrder   *int    `json:"sortOrder" validate:"omitnil,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

type ICategoryService interface {
	ListActive(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, actorID uint, input CategoryInput) (*models.Category, error)
	Update(ctx context.Context, actorID, id uint, patch CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, actorID, id uint) error
}

type CategoryService struct {
	repo repositories.ICategoryRepository
}

func NewCategoryService(db *gorm.DB) ICategoryService {
	return &CategoryService{repo: repositories.NewCategoryRepository(db)}
}

func (s *CategoryService) ListActive(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "CategoryService.ListActive")
	}
	return categories, nil
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, ErrCategoryNotFound, nil, "CategoryService.GetBySlug", zap.String("slug", slug))
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, actorID uint, input CategoryInput) (*models.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	slug := slugify.Resolve(input.Slug, input.Name)
	if slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}

	category := &models.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Icon:        input.Icon,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}
	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, mapRepoError(err, nil, ErrCategorySlugTaken, "CategoryService.Create", zap.String("slug", slug))
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, actorID, id uint, patch CategoryPatch) (*models.Category, error) {
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
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Icon != nil {
		updates["icon"] = *patch.Icon
	}
	if patch.SortOrder != nil {
		updates["sort_order"] = *patch.SortOrder
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrCategoryNotFound, ErrCategorySlugTaken, "CategoryService.Update", zap.Uint("id", id))
	}
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrCategoryNotFound, nil, "CategoryService.Update: yeniden okunamadı", zap.Uint("id", id))
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, actorID, id uint) error {
	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.repo.Delete(ctx, id); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return mapRepoError(err, ErrCategoryNotFound, nil, "CategoryService.Delete", zap.Uint("id", id))
	}
	return nil
}

var _ ICategoryService = (*CategoryService)(nil)
