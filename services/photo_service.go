package services

import (
	"context"
	"strings"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PhotoInput struct {
	URL     string `json:"url" validate:"required,max=500"`
	Caption string `json:"caption" validate:"max=255"`
}

type PhotoPatch struct {
	Caption *string `json:"caption" validate:"omitnil,max=255"`
	Order   *int    `json:"order" validate:"omitnil,gte=0"`
}

type IPhotoService interface {
	List(ctx context.Context, ownerID uint) ([]models.BusinessPhoto, error)
	Add(ctx context.Context, ownerID uint, input PhotoInput) (*models.BusinessPhoto, error)
	Update(ctx context.Context, ownerID, id uint, patch PhotoPatch) (*models.BusinessPhoto, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type PhotoService struct {
	db         *gorm.DB
	businesses repositories.IBusinessRepository
	repo       repositories.IPhotoRepository
}

func NewPhotoService(db *gorm.DB) IPhotoService {
	return &PhotoService{
		db:         db,
		businesses: repositories.NewBusinessRepository(db),
		repo:       repositories.NewPhotoRepository(db),
	}
}

func (s *PhotoService) List(ctx context.Context, ownerID uint) ([]models.BusinessPhoto, error) {
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "PhotoService.List")
	if err != nil {
		return nil, err
	}
	photos, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "PhotoService.List", zap.Uint("businessID", businessID))
	}
	return photos, nil
}

// Add fotoğrafı işletmedeki en büyük sıra numarasının bir fazlasıyla ekler.
func (s *PhotoService) Add(ctx context.Context, ownerID uint, input PhotoInput) (*models.BusinessPhoto, error) {
	input.URL = strings.TrimSpace(input.URL)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "PhotoService.Add")
	if err != nil {
		return nil, err
	}

	photo := &models.BusinessPhoto{BusinessID: businessID, URL: input.URL, Caption: strings.TrimSpace(input.Caption)}
	ctx = models.ContextWithUserID(ctx, ownerID)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		maxOrder, err := s.repo.MaxSortOrder(txCtx, businessID)
		if err != nil {
			return err
		}
		photo.SortOrder = maxOrder + 1
		return s.repo.Create(txCtx, photo)
	})
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "PhotoService.Add", zap.Uint("businessID", businessID))
	}
	return photo, nil
}

func (s *PhotoService) Update(ctx context.Context, ownerID, id uint, patch PhotoPatch) (*models.BusinessPhoto, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "PhotoService.Update")
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindForBusiness(ctx, id, businessID); err != nil {
		return nil, mapRepoError(err, ErrPhotoNotFound, nil, "PhotoService.Update", zap.Uint("id", id))
	}

	updates := map[string]any{}
	if patch.Caption != nil {
		updates["caption"] = strings.TrimSpace(*patch.Caption)
	}
	if patch.Order != nil {
		updates["sort_order"] = *patch.Order
	}
	ctx = models.ContextWithUserID(ctx, ownerID)
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrPhotoNotFound, nil, "PhotoService.Update: güncellenemedi", zap.Uint("id", id))
	}
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrPhotoNotFound, nil, "PhotoService.Update: yeniden okunamadı", zap.Uint("id", id))
	}
	return photo, nil
}

func (s *PhotoService) Delete(ctx context.Context, ownerID, id uint) error {
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "PhotoService.Delete")
	if err != nil {
		return err
	}
	if _, err := s.repo.FindForBusiness(ctx, id, businessID); err != nil {
		return mapRepoError(err, ErrPhotoNotFound, nil, "PhotoService.Delete", zap.Uint("id", id))
	}
	return deleteWith(ctx, ownerID, id, s.repo.Delete, ErrPhotoNotFound, "PhotoService.Delete")
}

var _ IPhotoService = (*PhotoService)(nil)
