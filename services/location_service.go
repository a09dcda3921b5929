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

type CityInput struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Slug      string `json:"slug" validate:"max=120"`
	PlateCode int    `json:"plateCode" validate:"gte=0,lte=81"`
}

type DistrictInput struct {
	CityID uint   `json:"cityId" validate:"required"`
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Slug   string `json:"slug" validate:"max=120"`
}

type NeighborhoodInput struct {
	DistrictID uint   `json:"districtId" validate:"required"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Slug       string `json:"slug" validate:"max=120"`
}

// LocationPatch şehir, ilçe ve mahalle güncellemelerinde ortak kullanılır.
type LocationPatch struct {
	Name      *string `json:"name" validate:"omitnil,min=2,max=100"`
	Slug      *string `json:"slug" validate:"omitnil,min=1,max=120"`
	PlateCode *int    `json:"plateCode" validate:"omitnil,gte=0,lte=81"`
}

type ILocationService interface {
	ListCities(ctx context.Context) ([]models.City, error)
	GetCityBySlug(ctx context.Context, slug string) (*models.City, error)
	ListDistrictsByCitySlug(ctx context.Context, citySlug string) ([]models.District, error)
	GetDistrictBySlug(ctx context.Context, cityID uint, slug string) (*models.District, error)
	ListNeighborhoods(ctx context.Context, districtID uint) ([]models.Neighborhood, error)

	CreateCity(ctx context.Context, actorID uint, input CityInput) (*models.City, error)
	UpdateCity(ctx context.Context, actorID, id uint, patch LocationPatch) (*models.City, error)
	DeleteCity(ctx context.Context, actorID, id uint) error
	CreateDistrict(ctx context.Context, actorID uint, input DistrictInput) (*models.District, error)
	UpdateDistrict(ctx context.Context, actorID, id uint, patch LocationPatch) (*models.District, error)
	DeleteDistrict(ctx context.Context, actorID, id uint) error
	CreateNeighborhood(ctx context.Context, actorID uint, input NeighborhoodInput) (*models.Neighborhood, error)
	UpdateNeighborhood(ctx context.Context, actorID, id uint, patch LocationPatch) (*models.Neighborhood, error)
	DeleteNeighborhood(ctx context.Context, actorID, id uint) error
}

type LocationService struct {
	cities        repositories.ICityRepository
	districts     repositories.IDistrictRepository
	neighborhoods repositories.INeighborhoodRepository
}

func NewLocationService(db *gorm.DB) ILocationService {
	return &LocationService{
		cities:        repositories.NewCityRepository(db),
		districts:     repositories.NewDistrictRepository(db),
		neighborhoods: repositories.NewNeighborhoodRepository(db),
	}
}

func (s *LocationService) ListCities(ctx context.Context) ([]models.City, error) {
	cities, err := s.cities.FindAll(ctx, "name ASC")
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "LocationService.ListCities")
	}
	return cities, nil
}

func (s *LocationService) GetCityBySlug(ctx context.Context, slug string) (*models.City, error) {
	city, err := s.cities.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, ErrCityNotFound, nil, "LocationService.GetCityBySlug", zap.String("slug", slug))
	}
	return city, nil
}

func (s *LocationService) ListDistrictsByCitySlug(ctx context.Context, citySlug string) ([]models.District, error) {
	city, err := s.GetCityBySlug(ctx, citySlug)
	if err != nil {
		return nil, err
	}
	districts, err := s.districts.ListByCity(ctx, city.ID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "LocationService.ListDistrictsByCitySlug", zap.Uint("cityID", city.ID))
	}
	return districts, nil
}

func (s *LocationService) GetDistrictBySlug(ctx context.Context, cityID uint, slug string) (*models.District, error) {
	district, err := s.districts.FindBySlug(ctx, cityID, slug)
	if err != nil {
		return nil, mapRepoError(err, ErrDistrictNotFound, nil, "LocationService.GetDistrictBySlug", zap.String("slug", slug))
	}
	return district, nil
}

func (s *LocationService) ListNeighborhoods(ctx context.Context, districtID uint) ([]models.Neighborhood, error) {
	if districtID == 0 {
		return nil, ErrInvalidID
	}
	neighborhoods, err := s.neighborhoods.ListByDistrict(ctx, districtID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "LocationService.ListNeighborhoods", zap.Uint("districtID", districtID))
	}
	return neighborhoods, nil
}

func (s *LocationService) CreateCity(ctx context.Context, actorID uint, input CityInput) (*models.City, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	city := &models.City{Name: input.Name, Slug: slugify.Resolve(input.Slug, input.Name), PlateCode: input.PlateCode}
	if city.Slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}
	if err := s.cities.Create(models.ContextWithUserID(ctx, actorID), city); err != nil {
		return nil, mapRepoError(err, nil, ErrCitySlugTaken, "LocationService.CreateCity", zap.String("slug", city.Slug))
	}
	return city, nil
}

func (s *LocationService) UpdateCity(ctx context.Context, actorID, id uint, patch LocationPatch) (*models.City, error) {
	updates, err := locationUpdates(patch)
	if err != nil {
		return nil, err
	}
	if patch.PlateCode != nil {
		updates["plate_code"] = *patch.PlateCode
	}
	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.cities.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrCityNotFound, ErrCitySlugTaken, "LocationService.UpdateCity", zap.Uint("id", id))
	}
	city, err := s.cities.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrCityNotFound, nil, "LocationService.UpdateCity: yeniden okunamadı", zap.Uint("id", id))
	}
	return city, nil
}

func (s *LocationService) DeleteCity(ctx context.Context, actorID, id uint) error {
	return deleteWith(ctx, actorID, id, s.cities.Delete, ErrCityNotFound, "LocationService.DeleteCity")
}

// CreateDistrict ilçe oluşturur. Slug yalnızca aynı şehir içinde benzersiz olmalıdır.
func (s *LocationService) CreateDistrict(ctx context.Context, actorID uint, input DistrictInput) (*models.District, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if _, err := s.cities.FindByID(ctx, input.CityID); err != nil {
		return nil, mapRepoError(err, ErrCityNotFound, nil, "LocationService.CreateDistrict: şehir alınamadı", zap.Uint("cityID", input.CityID))
	}

	district := &models.District{CityID: input.CityID, Name: input.Name, Slug: slugify.Resolve(input.Slug, input.Name)}
	if district.Slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}
	if err := s.districts.Create(models.ContextWithUserID(ctx, actorID), district); err != nil {
		return nil, mapRepoError(err, nil, ErrDistrictSlugTaken, "LocationService.CreateDistrict", zap.Uint("cityID", input.CityID), zap.String("slug", district.Slug))
	}
	return district, nil
}

func (s *LocationService) UpdateDistrict(ctx context.Context, actorID, id uint, patch LocationPatch) (*models.District, error) {
	updates, err := locationUpdates(patch)
	if err != nil {
		return nil, err
	}
	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.districts.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrDistrictNotFound, ErrDistrictSlugTaken, "LocationService.UpdateDistrict", zap.Uint("id", id))
	}
	district, err := s.districts.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrDistrictNotFound, nil, "LocationService.UpdateDistrict: yeniden okunamadı", zap.Uint("id", id))
	}
	return district, nil
}

func (s *LocationService) DeleteDistrict(ctx context.Context, actorID, id uint) error {
	return deleteWith(ctx, actorID, id, s.districts.Delete, ErrDistrictNotFound, "LocationService.DeleteDistrict")
}

// CreateNeighborhood mahalle oluşturur. Slug yalnızca aynı ilçe içinde benzersiz olmalıdır.
func (s *LocationService) CreateNeighborhood(ctx context.Context, actorID uint, input NeighborhoodInput) (*models.Neighborhood, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if _, err := s.districts.FindByID(ctx, input.DistrictID); err != nil {
		return nil, mapRepoError(err, ErrDistrictNotFound, nil, "LocationService.CreateNeighborhood: ilçe alınamadı", zap.Uint("districtID", input.DistrictID))
	}

	neighborhood := &models.Neighborhood{DistrictID: input.DistrictID, Name: input.Name, Slug: slugify.Resolve(input.Slug, input.Name)}
	if neighborhood.Slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}
	if err := s.neighborhoods.Create(models.ContextWithUserID(ctx, actorID), neighborhood); err != nil {
		return nil, mapRepoError(err, nil, ErrNeighborhoodSlugTaken, "LocationService.CreateNeighborhood", zap.Uint("districtID", input.DistrictID), zap.String("slug", neighborhood.Slug))
	}
	return neighborhood, nil
}

func (s *LocationService) UpdateNeighborhood(ctx context.Context, actorID, id uint, patch LocationPatch) (*models.Neighborhood, error) {
	updates, err := locationUpdates(patch)
	if err != nil {
		return nil, err
	}
	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.neighborhoods.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrNeighborhoodNotFound, ErrNeighborhoodSlugTaken, "LocationService.UpdateNeighborhood", zap.Uint("id", id))
	}
	neighborhood, err := s.neighborhoods.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrNeighborhoodNotFound, nil, "LocationService.UpdateNeighborhood: yeniden okunamadı", zap.Uint("id", id))
	}
	return neighborhood, nil
}

func (s *LocationService) DeleteNeighborhood(ctx context.Context, actorID, id uint) error {
	return deleteWith(ctx, actorID, id, s.neighborhoods.Delete, ErrNeighborhoodNotFound, "LocationService.DeleteNeighborhood")
}

func locationUpdates(patch LocationPatch) (map[string]any, error) {
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
	return updates, nil
}

// deleteWith taksonomi silme işlemlerinin ortak hata eşlemesini yapar.
func deleteWith(ctx context.Context, actorID, id uint, del func(context.Context, uint) error, notFound *ServiceError, op string) error {
	if err := del(models.ContextWithUserID(ctx, actorID), id); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return mapRepoError(err, notFound, nil, op, zap.Uint("id", id))
	}
	return nil
}

var _ ILocationService = (*LocationService)(nil)
