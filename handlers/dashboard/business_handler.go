package handlers

import (
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BusinessHandler işletme sahibinin kendi işletmesini, fotoğraflarını, hizmetlerini ve
// çalışma saatlerini yönettiği uç noktalardır. Tüm işlemler oturumdaki kullanıcının işletmesiyle sınırlıdır.
type BusinessHandler struct {
	businesses   services.IBusinessService
	photos       services.IPhotoService
	offerings    services.IOfferingService
	workingHours services.IWorkingHourService
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{
		businesses:   services.NewBusinessService(db),
		photos:       services.NewPhotoService(db),
		offerings:    services.NewOfferingService(db),
		workingHours: services.NewWorkingHourService(db),
	}
}

// GetBusiness GET /api/dashboard/business
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	business, err := h.businesses.GetOwned(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, business)
}

// UpdateBusiness PATCH /api/dashboard/business
func (h *BusinessHandler) UpdateBusiness(c *fiber.Ctx) error {
	var patch services.BusinessPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	business, err := h.businesses.UpdateOwned(c.UserContext(), middlewares.CurrentUserID(c), patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, business)
}

// ListPhotos GET /api/dashboard/photos
func (h *BusinessHandler) ListPhotos(c *fiber.Ctx) error {
	photos, err := h.photos.List(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, photos)
}

// AddPhoto POST /api/dashboard/photos
func (h *BusinessHandler) AddPhoto(c *fiber.Ctx) error {
	var input services.PhotoInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	photo, err := h.photos.Add(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, photo)
}

// UpdatePhoto PATCH /api/dashboard/photos/:id
func (h *BusinessHandler) UpdatePhoto(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	var patch services.PhotoPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	photo, err := h.photos.Update(c.UserContext(), middlewares.CurrentUserID(c), id, patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, photo)
}

// DeletePhoto DELETE /api/dashboard/photos/:id
func (h *BusinessHandler) DeletePhoto(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	if err := h.photos.Delete(c.UserContext(), middlewares.CurrentUserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Fotoğraf silindi")
}

// ListServices GET /api/dashboard/services
func (h *BusinessHandler) ListServices(c *fiber.Ctx) error {
	offerings, err := h.offerings.List(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, offerings)
}

// CreateService POST /api/dashboard/services
func (h *BusinessHandler) CreateService(c *fiber.Ctx) error {
	var input services.OfferingInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	offering, err := h.offerings.Create(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, offering)
}

// UpdateService PATCH /api/dashboard/services/:id
func (h *BusinessHandler) UpdateService(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	var patch services.OfferingPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	offering, err := h.offerings.Update(c.UserContext(), middlewares.CurrentUserID(c), id, patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, offering)
}

// DeleteService DELETE /api/dashboard/services/:id
func (h *BusinessHandler) DeleteService(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	if err := h.offerings.Delete(c.UserContext(), middlewares.CurrentUserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Hizmet silindi")
}

// ListWorkingHours GET /api/dashboard/working-hours
func (h *BusinessHandler) ListWorkingHours(c *fiber.Ctx) error {
	hours, err := h.workingHours.List(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, hours)
}

// ReplaceWorkingHours POST /api/dashboard/working-hours
func (h *BusinessHandler) ReplaceWorkingHours(c *fiber.Ctx) error {
	var input services.WorkingHoursInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	hours, err := h.workingHours.Replace(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, hours)
}
