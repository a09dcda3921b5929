package services

import (
	"context"
	"errors"
	"strings"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/pkg/slugify"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BusinessQuery herkese açık listeleme filtreleridir; konum ve kategori slug ile verilir.
type BusinessQuery struct {
	City         string `query:"city"`
	District     string `query:"district"`
	Neighborhood string `query:"neighborhood"`
	Category     string `query:"category"`
	Name         string `query:"q"`
	Page         int    `query:"page"`
	PerPage      int    `query:"perPage"`
}

// BusinessDetail detay sayfasında işletme ile birlikte dönen puan özetidir.
type BusinessDetail struct {
	*models.Business
	Rating repositories.RatingSummary `json:"rating"`
}

type BusinessInput struct {
	Name           string `json:"name" validate:"required,min=2,max=200"`
	Slug           string `json:"slug" validate:"max=220"`
	Description    string `json:"description"`
	Phone          string `json:"phone" validate:"max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Address        string `json:"address" validate:"max=500"`
	CityID         uint   `json:"cityId" validate:"required"`
	DistrictID     uint   `json:"districtId" validate:"required"`
	NeighborhoodID *uint  `json:"neighborhoodId"`
	CategoryID     uint   `json:"categoryId" validate:"required"`
	OwnerID        *uint  `json:"ownerId"`
	CoverImage     string `json:"coverImage" validate:"max=500"`
	FeaturedScore  int    `json:"featuredScore" validate:"gte=0"`
}

// BusinessPatch işletme sahibinin panelden güncelleyebileceği alanlardır.
type BusinessPatch struct {
	Name           *string `json:"name" validate:"omitnil,min=2,max=200"`
	Description    *string `json:"description"`
	Phone          *string `json:"phone" validate:"omitnil,max=30"`
	Email          *string `json:"email" validate:"omitnil,max=255"`
	Address        *string `json:"address" validate:"omitnil,max=500"`
	CityID         *uint   `json:"cityId" validate:"omitnil,gt=0"`
	DistrictID     *uint   `json:"districtId" validate:"omitnil,gt=0"`
	NeighborhoodID *uint   `json:"neighborhoodId"`
	CategoryID     *uint   `json:"categoryId" validate:"omitnil,gt=0"`
	CoverImage     *string `json:"coverImage" validate:"omitnil,max=500"`
}

// AdminBusinessPatch yalnızca yöneticinin değiştirebileceği alanlardır. OwnerID 0 sahibi kaldırır.
type AdminBusinessPatch struct {
	IsActive      *bool `json:"isActive"`
	FeaturedScore *int  `json:"featuredScore" validate:"omitnil,gte=0"`
	OwnerID       *uint `json:"ownerId"`
}

type IBusinessService interface {
	ListPublic(ctx context.Context, query BusinessQuery) (*queryparams.PaginatedResult, error)
	ListFeatured(ctx context.Context, take int) ([]models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*BusinessDetail, error)
	GetOwned(ctx context.Context, ownerID uint) (*models.Business, error)
	UpdateOwned(ctx context.Context, ownerID uint, patch BusinessPatch) (*models.Business, error)
	AdminCreate(ctx context.Context, actorID uint, input BusinessInput) (*models.Business, error)
	AdminUpdate(ctx context.Context, actorID, id uint, patch AdminBusinessPatch) (*models.Business, error)
}

type BusinessService struct {
	db            *gorm.DB
	repo          repositories.IBusinessRepository
	reviews       repositories.IReviewRepository
	users         repositories.IUserRepository
	categories    repositories.ICategoryRepository
	cities        repositories.ICityRepository
	districts     repositories.IDistrictRepository
	neighborhoods repositories.INeighborhoodRepository
}

func NewBusinessService(db *gorm.DB) IBusinessService {
	return &BusinessService{
		db:            db,
		repo:          repositories.NewBusinessRepository(db),
		reviews:       repositories.NewReviewRepository(db),
		users:         repositories.NewUserRepository(db),
		categories:    repositories.NewCategoryRepository(db),
		cities:        repositories.NewCityRepository(db),
		districts:     repositories.NewDistrictRepository(db),
		neighborhoods: repositories.NewNeighborhoodRepository(db),
	}
}

// ListPublic yalnızca aktif işletmeleri öne çıkarılanlar önce olacak şekilde listeler.
// Bilinmeyen bir konum ya da kategori slug'ı bulunamadı hatası verir.
func (s *BusinessService) ListPublic(ctx context.Context, query BusinessQuery) (*queryparams.PaginatedResult, error) {
	params := queryparams.ListParams{Page: query.Page, PerPage: query.PerPage, Name: strings.TrimSpace(query.Name)}
	params.Validate()

	filter, err := s.resolveFilter(ctx, query)
	if err != nil {
		return nil, err
	}
	businesses, total, err := s.repo.ListPublic(ctx, filter, params)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "BusinessService.ListPublic")
	}
	return queryparams.NewPaginatedResult(businesses, total, params), nil
}

func (s *BusinessService) resolveFilter(ctx context.Context, query BusinessQuery) (repositories.BusinessFilter, error) {
	var filter repositories.BusinessFilter
	if query.Category != "" {
		category, err := s.categories.FindBySlug(ctx, query.Category)
		if err != nil {
			return filter, mapRepoError(err, ErrCategoryNotFound, nil, "BusinessService.resolveFilter: kategori", zap.String("slug", query.Category))
		}
		filter.CategoryID = category.ID
	}
	if query.City == "" {
		return filter, nil
	}

	city, err := s.cities.FindBySlug(ctx, query.City)
	if err != nil {
		return filter, mapRepoError(err, ErrCityNotFound, nil, "BusinessService.resolveFilter: şehir", zap.String("slug", query.City))
	}
	filter.CityID = city.ID
	if query.District == "" {
		return filter, nil
	}

	district, err := s.districts.FindBySlug(ctx, city.ID, query.District)
	if err != nil {
		return filter, mapRepoError(err, ErrDistrictNotFound, nil, "BusinessService.resolveFilter: ilçe", zap.String("slug", query.District))
	}
	filter.DistrictID = district.ID
	if query.Neighborhood == "" {
		return filter, nil
	}

	neighborhood, err := s.neighborhoods.FindBySlug(ctx, district.ID, query.Neighborhood)
	if err != nil {
		return filter, mapRepoError(err, ErrNeighborhoodNotFound, nil, "BusinessService.resolveFilter: mahalle", zap.String("slug", query.Neighborhood))
	}
	filter.NeighborhoodID = neighborhood.ID
	return filter, nil
}

func (s *BusinessService) ListFeatured(ctx context.Context, take int) ([]models.Business, error) {
	if take <= 0 {
		take = 8
	}
	businesses, err := s.repo.ListFeatured(ctx, take)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "BusinessService.ListFeatured")
	}
	return businesses, nil
}

// GetBySlug aktif olmayan işletmeleri bulunamadı olarak döndürür.
func (s *BusinessService) GetBySlug(ctx context.Context, slug string) (*BusinessDetail, error) {
	business, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.GetBySlug", zap.String("slug", slug))
	}
	if !business.IsActive {
		return nil, ErrBusinessNotFound
	}
	summary, err := s.reviews.Summary(ctx, business.ID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "BusinessService.GetBySlug: puan özeti", zap.Uint("businessID", business.ID))
	}
	return &BusinessDetail{Business: business, Rating: summary}, nil
}

func (s *BusinessService) GetOwned(ctx context.Context, ownerID uint) (*models.Business, error) {
	owned, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.GetOwned", zap.Uint("ownerID", ownerID))
	}
	business, err := s.repo.FindByID(ctx, owned.ID, "City", "District", "Neighborhood", "Category")
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.GetOwned: ilişkiler", zap.Uint("businessID", owned.ID))
	}
	return business, nil
}

func (s *BusinessService) UpdateOwned(ctx context.Context, ownerID uint, patch BusinessPatch) (*models.Business, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	current, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.UpdateOwned", zap.Uint("ownerID", ownerID))
	}

	cityID, districtID, neighborhoodID := current.CityID, current.DistrictID, current.NeighborhoodID
	if patch.CityID != nil {
		cityID = *patch.CityID
	}
	if patch.DistrictID != nil {
		districtID = *patch.DistrictID
	}
	if patch.NeighborhoodID != nil {
		neighborhoodID = nil
		if *patch.NeighborhoodID != 0 {
			neighborhoodID = patch.NeighborhoodID
		}
	}

	updates := map[string]any{}
	if patch.CityID != nil || patch.DistrictID != nil || patch.NeighborhoodID != nil {
		if err := s.checkLocation(ctx, cityID, districtID, neighborhoodID); err != nil {
			return nil, err
		}
		updates["city_id"] = cityID
		updates["district_id"] = districtID
		updates["neighborhood_id"] = neighborhoodID
	}
	if patch.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *patch.CategoryID); err != nil {
			return nil, mapRepoError(err, ErrCategoryNotFound, nil, "BusinessService.UpdateOwned: kategori", zap.Uint("categoryID", *patch.CategoryID))
		}
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Phone != nil {
		updates["phone"] = strings.TrimSpace(*patch.Phone)
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email != "" && getValidator().Var(email, "email") != nil {
			return nil, Validationf("email geçerli bir e-posta adresi olmalıdır")
		}
		updates["email"] = email
	}
	if patch.Address != nil {
		updates["address"] = strings.TrimSpace(*patch.Address)
	}
	if patch.CoverImage != nil {
		updates["cover_image"] = *patch.CoverImage
	}

	ctx = models.ContextWithUserID(ctx, ownerID)
	if err := s.repo.Updates(ctx, current.ID, updates); err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.UpdateOwned: güncellenemedi", zap.Uint("businessID", current.ID))
	}
	return s.GetOwned(ctx, ownerID)
}

// checkLocation ilçenin şehre, mahallenin ilçeye ait olduğunu doğrular.
func (s *BusinessService) checkLocation(ctx context.Context, cityID, districtID uint, neighborhoodID *uint) error {
	if _, err := s.cities.FindByID(ctx, cityID); err != nil {
		return mapRepoError(err, ErrCityNotFound, nil, "BusinessService.checkLocation: şehir", zap.Uint("cityID", cityID))
	}
	district, err := s.districts.FindByID(ctx, districtID)
	if err != nil {
		return mapRepoError(err, ErrDistrictNotFound, nil, "BusinessService.checkLocation: ilçe", zap.Uint("districtID", districtID))
	}
	if district.CityID != cityID {
		return Validationf("Seçilen ilçe seçilen şehre ait değil")
	}
	if neighborhoodID == nil {
		return nil
	}
	neighborhood, err := s.neighborhoods.FindByID(ctx, *neighborhoodID)
	if err != nil {
		return mapRepoError(err, ErrNeighborhoodNotFound, nil, "BusinessService.checkLocation: mahalle", zap.Uint("neighborhoodID", *neighborhoodID))
	}
	if neighborhood.DistrictID != districtID {
		return Validationf("Seçilen mahalle seçilen ilçeye ait değil")
	}
	return nil
}

func (s *BusinessService) AdminCreate(ctx context.Context, actorID uint, input BusinessInput) (*models.Business, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if input.NeighborhoodID != nil && *input.NeighborhoodID == 0 {
		input.NeighborhoodID = nil
	}
	if err := s.checkLocation(ctx, input.CityID, input.DistrictID, input.NeighborhoodID); err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, mapRepoError(err, ErrCategoryNotFound, nil, "BusinessService.AdminCreate: kategori", zap.Uint("categoryID", input.CategoryID))
	}

	business := &models.Business{
		Name:           input.Name,
		Slug:           slugify.Resolve(input.Slug, input.Name),
		Description:    input.Description,
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Address:        strings.TrimSpace(input.Address),
		CityID:         input.CityID,
		DistrictID:     input.DistrictID,
		NeighborhoodID: input.NeighborhoodID,
		CategoryID:     input.CategoryID,
		CoverImage:     input.CoverImage,
		IsActive:       true,
		FeaturedScore:  input.FeaturedScore,
	}
	if business.Slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}

	ctx = models.ContextWithUserID(ctx, actorID)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if input.OwnerID != nil && *input.OwnerID != 0 {
			if err := s.assignOwner(txCtx, *input.OwnerID); err != nil {
				return err
			}
			business.OwnerID = input.OwnerID
		}
		return s.repo.Create(txCtx, business)
	})
	if err != nil {
		return nil, mapRepoError(err, nil, ErrBusinessSlugTaken, "BusinessService.AdminCreate", zap.String("slug", business.Slug))
	}
	return business, nil
}

// AdminUpdate aktiflik, öne çıkarma puanı ve sahiplik bilgisini günceller.
// Sahip olarak atanan USER rolündeki kullanıcı BUSINESS_OWNER'a yükseltilir.
func (s *BusinessService) AdminUpdate(ctx context.Context, actorID, id uint, patch AdminBusinessPatch) (*models.Business, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.FeaturedScore != nil {
		updates["featured_score"] = *patch.FeaturedScore
	}

	ctx = models.ContextWithUserID(ctx, actorID)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if patch.OwnerID != nil {
			if *patch.OwnerID == 0 {
				updates["owner_id"] = nil
			} else {
				if err := s.assignOwner(txCtx, *patch.OwnerID); err != nil {
					return err
				}
				updates["owner_id"] = *patch.OwnerID
			}
		}
		if len(updates) == 0 {
			_, err := s.repo.FindByID(txCtx, id)
			return err
		}
		return s.repo.Updates(txCtx, id, updates)
	})
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.AdminUpdate", zap.Uint("id", id))
	}

	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "BusinessService.AdminUpdate: yeniden okunamadı", zap.Uint("id", id))
	}
	return business, nil
}

func (s *BusinessService) assignOwner(ctx context.Context, userID uint) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role != models.RoleUser {
		return nil
	}
	return s.users.Updates(ctx, user.ID, map[string]any{"role": models.RoleBusinessOwner})
}

// ownedBusinessID panel işlemlerinde kullanıcının işletmesini bulur.
func ownedBusinessID(ctx context.Context, repo repositories.IBusinessRepository, ownerID uint, op string) (uint, error) {
	business, err := repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, mapRepoError(err, ErrBusinessNotFound, nil, op, zap.Uint("ownerID", ownerID))
	}
	return business.ID, nil
}

var _ IBusinessService = (*BusinessService)(nil)
