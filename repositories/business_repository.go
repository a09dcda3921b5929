package repositories

import (
	"context"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/pkg/turkishsearch"

	"gorm.io/gorm"
)

// BusinessFilter herkese açık listeleme filtreleridir. Sıfır değerler filtre uygulanmaz demektir.
type BusinessFilter struct {
	CityID         uint
	DistrictID     uint
	NeighborhoodID uint
	CategoryID     uint
}

type IBusinessRepository interface {
	IBaseRepository[models.Business]
	FindBySlug(ctx context.Context, slug string) (*models.Business, error)
	FindByOwnerID(ctx context.Context, ownerID uint) (*models.Business, error)
	ListPublic(ctx context.Context, filter BusinessFilter, params queryparams.ListParams) ([]models.Business, int64, error)
	ListFeatured(ctx context.Context, take int) ([]models.Business, error)
	Search(ctx context.Context, term string, take int) ([]models.Business, error)
}

type BusinessRepository struct {
	*BaseRepository[models.Business]
}

func NewBusinessRepository(db *gorm.DB) IBusinessRepository {
	base := NewBaseRepository[models.Business](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "featured_score"})
	return &BusinessRepository{BaseRepository: base}
}

// FindBySlug işletmeyi detay sayfası için tüm ilişkileriyle yükler.
func (r *BusinessRepository) FindBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var business models.Business
	err := r.getDB(ctx).
		Preload("City").Preload("District").Preload("Neighborhood").Preload("Category").
		Preload("Services", "is_active = ?", true).
		Preload("Services.PetType").
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB { return db.Order("day_of_week ASC") }).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("slug = ?", slug).
		First(&business).Error
	if err != nil {
		return nil, translate(err)
	}
	return &business, nil
}

// FindByOwnerID kullanıcının sahibi olduğu ilk işletmeyi döndürür.
func (r *BusinessRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*models.Business, error) {
	if ownerID == 0 {
		return nil, ErrInvalidID
	}
	var business models.Business
	err := r.getDB(ctx).Where("owner_id = ?", ownerID).Order("id ASC").First(&business).Error
	if err != nil {
		return nil, translate(err)
	}
	return &business, nil
}

func (r *BusinessRepository) ListPublic(ctx context.Context, filter BusinessFilter, params queryparams.ListParams) ([]models.Business, int64, error) {
	params.Validate()
	var (
		businesses []models.Business
		total      int64
	)

	query := r.getDB(ctx).Model(&models.Business{}).Where("is_active = ?", true)
	if filter.CityID != 0 {
		query = query.Where("city_id = ?", filter.CityID)
	}
	if filter.DistrictID != 0 {
		query = query.Where("district_id = ?", filter.DistrictID)
	}
	if filter.NeighborhoodID != 0 {
		query = query.Where("neighborhood_id = ?", filter.NeighborhoodID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if params.Name != "" {
		fragment, args := turkishsearch.SQLFilter("name", params.Name)
		query = query.Where(fragment, args...)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return businesses, 0, nil
	}

	err := query.Preload("City").Preload("District").Preload("Category").
		Order("featured_score DESC, name ASC").
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&businesses).Error
	if err != nil {
		return nil, total, err
	}
	return businesses, total, nil
}

func (r *BusinessRepository) ListFeatured(ctx context.Context, take int) ([]models.Business, error) {
	var businesses []models.Business
	err := r.getDB(ctx).Preload("City").Preload("District").Preload("Category").
		Where("is_active = ?", true).
		Order("featured_score DESC, created_at DESC").
		Limit(take).Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepository) Search(ctx context.Context, term string, take int) ([]models.Business, error) {
	var businesses []models.Business
	fragment, args := turkishsearch.SQLFilter("name", term)
	err := r.getDB(ctx).Preload("City").Preload("District").
		Where("is_active = ?", true).Where(fragment, args...).
		Order("featured_score DESC, name ASC").
		Limit(take).Find(&businesses).Error
	return businesses, err
}

var _ IBusinessRepository = (*BusinessRepository)(nil)
