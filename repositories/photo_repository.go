package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

type IPhotoRepository interface {
	IBaseRepository[models.BusinessPhoto]
	ListByBusiness(ctx context.Context, businessID uint) ([]models.BusinessPhoto, error)
	FindForBusiness(ctx context.Context, id, businessID uint) (*models.BusinessPhoto, error)
	MaxSortOrder(ctx context.Context, businessID uint) (int, error)
}

type PhotoRepository struct {
	*BaseRepository[models.BusinessPhoto]
}

func NewPhotoRepository(db *gorm.DB) IPhotoRepository {
	return &PhotoRepository{BaseRepository: NewBaseRepository[models.BusinessPhoto](db)}
}

func (r *PhotoRepository) ListByBusiness(ctx context.Context, businessID uint) ([]models.BusinessPhoto, error) {
	var photos []models.BusinessPhoto
	err := r.getDB(ctx).Where("business_id = ?", businessID).Order("sort_order ASC, id ASC").Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) FindForBusiness(ctx context.Context, id, businessID uint) (*models.BusinessPhoto, error) {
	var photo models.BusinessPhoto
	if err := r.getDB(ctx).Where("id = ? AND business_id = ?", id, businessID).First(&photo).Error; err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}

// MaxSortOrder işletmedeki en büyük sıra numarasını döndürür; fotoğraf yoksa 0.
func (r *PhotoRepository) MaxSortOrder(ctx context.Context, businessID uint) (int, error) {
	var maxOrder int64
	err := r.getDB(ctx).Model(&models.BusinessPhoto{}).
		Where("business_id = ?", businessID).
		Select("COALESCE(MAX(sort_order), 0)").
		Row().Scan(&maxOrder)
	if err != nil {
		return 0, err
	}
	return int(maxOrder), nil
}

var _ IPhotoRepository = (*PhotoRepository)(nil)
