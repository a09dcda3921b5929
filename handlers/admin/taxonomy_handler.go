package handlers

import (
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaxonomyHandler kategori, şehir, ilçe, mahalle ve evcil hayvan türü yönetimidir.
type TaxonomyHandler struct {
	categories services.ICategoryService
	locations  services.ILocationService
	petTypes   services.IPetTypeService
}

func NewTaxonomyHandler(db *gorm.DB) *TaxonomyHandler {
	return &TaxonomyHandler{
		categories: services.NewCategoryService(db),
		locations:  services.NewLocationService(db),
		petTypes:   services.NewPetTypeService(db),
	}
}

func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	return updateWith(c, h.categories.Update)
}

func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	return deleteWith(c, h.categories.Delete, "Kategori silindi")
}

func (h *TaxonomyHandler) CreateCity(c *fiber.Ctx) error {
	return createWith(c, h.locations.CreateCity)
}

func (h *TaxonomyHandler) UpdateCity(c *fiber.Ctx) error {
	return updateWith(c, h.locations.UpdateCity)
}

func (h *TaxonomyHandler) DeleteCity(c *fiber.Ctx) error {
	return deleteWith(c, h.locations.DeleteCity, "Şehir silindi")
}

func (h *TaxonomyHandler) CreateDistrict(c *fiber.Ctx) error {
	return createWith(c, h.locations.CreateDistrict)
}

func (h *TaxonomyHandler) UpdateDistrict(c *fiber.Ctx) error {
	return updateWith(c, h.locations.UpdateDistrict)
}

func (h *TaxonomyHandler) DeleteDistrict(c *fiber.Ctx) error {
	return deleteWith(c, h.locations.DeleteDistrict, "İlçe silindi")
}

// ListNeighborhoods GET /api/admin/neighborhoods?districtId=
func (h *TaxonomyHandler) ListNeighborhoods(c *fiber.Ctx) error {
	districtID, ok := reqparams.QueryID(c, "districtId")
	if !ok {
		return response.BadRequest(c, "districtId parametresi zorunludur")
	}
	neighborhoods, err := h.locations.ListNeighborhoods(c.UserContext(), districtID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, neighborhoods)
}

func (h *TaxonomyHandler) CreateNeighborhood(c *fiber.Ctx) error {
	return createWith(c, h.locations.CreateNeighborhood)
}

func (h *TaxonomyHandler) UpdateNeighborhood(c *fiber.Ctx) error {
	return updateWith(c, h.locations.UpdateNeighborhood)
}

func (h *TaxonomyHandler) DeleteNeighborhood(c *fiber.Ctx) error {
	return deleteWith(c, h.locations.DeleteNeighborhood, "Mahalle silindi")
}

func (h *TaxonomyHandler) ListPetTypes(c *fiber.Ctx) error {
	petTypes, err := h.petTypes.List(c.UserContext())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, petTypes)
}

func (h *TaxonomyHandler) CreatePetType(c *fiber.Ctx) error {
	return createWith(c, h.petTypes.Create)
}

func (h *TaxonomyHandler) UpdatePetType(c *fiber.Ctx) error {
	return updateWith(c, h.petTypes.Update)
}

func (h *TaxonomyHandler) DeletePetType(c *fiber.Ctx) error {
	return deleteWith(c, h.petTypes.Delete, "Evcil hayvan türü silindi")
}
