package repositories

import (
	"context"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/turkishsearch"

	"gorm.io/gorm"
)

type ICategoryRepository interface {
	IBaseRepository[models.Category]
	ListActive(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Search(ctx context.Context, term string, take int) ([]models.Category, error)
}

type CategoryRepository struct {
	*BaseRepository[models.Category]
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	base := NewBaseRepository[models.Category](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "sort_order"})
	return &CategoryRepository{BaseRepository: base}
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.getDB(ctx).Where("is_active = ?", true).Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.getDB(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *CategoryRepository) Search(ctx context.Context, term string, take int) ([]models.Category, error) {
	var categories []models.Category
	fragment, args := turkishsearch.SQLFilter("name", term)
	err := r.getDB(ctx).Where("is_active = ?", true).Where(fragment, args...).
		Order("sort_order ASC").Limit(take).Find(&categories).Error
	return categories, err
}

var _ ICategoryRepository = (*CategoryRepository)(nil)
