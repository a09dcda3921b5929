package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

type ICityRepository interface {
	IBaseRepository[models.City]
	FindBySlug(ctx context.Context, slug string) (*models.City, error)
}

type CityRepository struct {
	*BaseRepository[models.City]
}

func NewCityRepository(db *gorm.DB) ICityRepository {
	return &CityRepository{BaseRepository: NewBaseRepository[models.City](db)}
}

func (r *CityRepository) FindBySlug(ctx context.Context, slug string) (*models.City, error) {
	var city models.City
	if err := r.getDB(ctx).Where("slug = ?", slug).First(&city).Error; err != nil {
		return nil, translate(err)
	}
	return &city, nil
}

type IDistrictRepository interface {
	IBaseRepository[models.District]
	ListByCity(ctx context.Context, cityID uint) ([]models.District, error)
	FindBySlug(ctx context.Context, cityID uint, slug string) (*models.District, error)
}

type DistrictRepository struct {
	*BaseRepository[models.District]
}

func NewDistrictRepository(db *gorm.DB) IDistrictRepository {
	return &DistrictRepository{BaseRepository: NewBaseRepository[models.District](db)}
}

func (r *DistrictRepository) ListByCity(ctx context.Context, cityID uint) ([]models.District, error) {
	var districts []models.District
	err := r.getDB(ctx).Where("city_id = ?", cityID).Order("name ASC").Find(&districts).Error
	return districts, err
}

func (r *DistrictRepository) FindBySlug(ctx context.Context, cityID uint, slug string) (*models.District, error) {
	var district models.District
	if err := r.getDB(ctx).Where("city_id = ? AND slug = ?", cityID, slug).First(&district).Error; err != nil {
		return nil, translate(err)
	}
	return &district, nil
}

type INeighborhoodRepository interface {
	IBaseRepository[models.Neighborhood]
	ListByDistrict(ctx context.Context, districtID uint) ([]models.Neighborhood, error)
	FindBySlug(ctx context.Context, districtID uint, slug string) (*models.Neighborhood, error)
}

type NeighborhoodRepository struct {
	*BaseRepository[models.Neighborhood]
}

func NewNeighborhoodRepository(db *gorm.DB) INeighborhoodRepository {
	return &NeighborhoodRepository{BaseRepository: NewBaseRepository[models.Neighborhood](db)}
}

func (r *NeighborhoodRepository) ListByDistrict(ctx context.Context, districtID uint) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := r.getDB(ctx).Where("district_id = ?", districtID).Order("name ASC").Find(&neighborhoods).Error
	return neighborhoods, err
}

func (r *NeighborhoodRepository) FindBySlug(ctx context.Context, districtID uint, slug string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	if err := r.getDB(ctx).Where("district_id = ? AND slug = ?", districtID, slug).First(&neighborhood).Error; err != nil {
		return nil, translate(err)
	}
	return &neighborhood, nil
}

var (
	_ ICityRepository         = (*CityRepository)(nil)
	_ IDistrictRepository     = (*DistrictRepository)(nil)
	_ INeighborhoodRepository = (*NeighborhoodRepository)(nil)
)
