package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

type IPetTypeRepository interface {
	IBaseRepository[models.PetType]
}

func NewPetTypeRepository(db *gorm.DB) IPetTypeRepository {
	return NewBaseRepository[models.PetType](db)
}

type IPageRepository interface {
	IBaseRepository[models.Page]
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
}

type PageRepository struct {
	*BaseRepository[models.Page]
}

func NewPageRepository(db *gorm.DB) IPageRepository {
	base := NewBaseRepository[models.Page](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "title", "slug"})
	return &PageRepository{BaseRepository: base}
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	if err := r.getDB(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, translate(err)
	}
	return &page, nil
}

var _ IPageRepository = (*PageRepository)(nil)
