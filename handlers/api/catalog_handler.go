package handlers

import (
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogHandler kategori, konum ve evcil hayvan türü listelerini sunar.
type CatalogHandler struct {
	categories services.ICategoryService
	locations  services.ILocationService
	petTypes   services.IPetTypeService
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{
		categories: services.NewCategoryService(db),
		locations:  services.NewLocationService(db),
		petTypes:   services.NewPetTypeService(db),
	}
}

// ListCategories GET /api/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListActive(c.UserContext())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, categories)
}

// CreateCategory POST /api/categories (yönetici)
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	category, err := h.categories.Create(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, category)
}

// ListCities GET /api/cities
func (h *CatalogHandler) ListCities(c *fiber.Ctx) error {
	cities, err := h.locations.ListCities(c.UserContext())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, cities)
}

// ListDistricts GET /api/cities/:slug/districts
func (h *CatalogHandler) ListDistricts(c *fiber.Ctx) error {
	districts, err := h.locations.ListDistrictsByCitySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, districts)
}

// ListNeighborhoods GET /api/districts/:id/neighborhoods
func (h *CatalogHandler) ListNeighborhoods(c *fiber.Ctx) error {
	districtID, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	neighborhoods, err := h.locations.ListNeighborhoods(c.UserContext(), districtID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, neighborhoods)
}

// ListPetTypes GET /api/pet-types
func (h *CatalogHandler) ListPetTypes(c *fiber.Ctx) error {
	petTypes, err := h.petTypes.List(c.UserContext())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, petTypes)
}
