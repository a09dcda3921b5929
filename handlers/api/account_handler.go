package handlers

import (
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AccountHandler kullanıcının kendi hesabı, evcil hayvanları, randevuları ve bildirimleri içindir.
type AccountHandler struct {
	auth          services.IAuthService
	users         services.IUserService
	pets          services.IPetService
	appointments  services.IAppointmentService
	notifications services.INotificationService
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{
		auth:          services.NewAuthService(db),
		users:         services.NewUserService(db),
		pets:          services.NewPetService(db),
		appointments:  services.NewAppointmentService(db),
		notifications: services.NewNotificationService(db),
	}
}

// Register POST /api/users/register
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	user, err := h.auth.Register(c.UserContext(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

// Me GET /api/users/me
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.GetUserByID(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

// UpdateMe PATCH /api/users/me
func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	var input services.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	user, err := h.users.UpdateProfile(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

// ChangePassword PATCH /api/users/me/password
func (h *AccountHandler) ChangePassword(c *fiber.Ctx) error {
	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	if err := h.auth.ChangePassword(c.UserContext(), middlewares.CurrentUserID(c), input); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Şifreniz güncellendi")
}

// ListPets GET /api/pets
func (h *AccountHandler) ListPets(c *fiber.Ctx) error {
	pets, err := h.pets.List(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, pets)
}

// CreatePet POST /api/pets
func (h *AccountHandler) CreatePet(c *fiber.Ctx) error {
	var input services.PetInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	pet, err := h.pets.Create(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, pet)
}

// UpdatePet PATCH /api/pets/:id
func (h *AccountHandler) UpdatePet(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	var patch services.PetPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	pet, err := h.pets.Update(c.UserContext(), middlewares.CurrentUserID(c), id, patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, pet)
}

// DeletePet DELETE /api/pets/:id
func (h *AccountHandler) DeletePet(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	if err := h.pets.Delete(c.UserContext(), middlewares.CurrentUserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, "Evcil hayvan silindi")
}

// CreateAppointment POST /api/appointments
func (h *AccountHandler) CreateAppointment(c *fiber.Ctx) error {
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	appointment, err := h.appointments.Create(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, appointment)
}

// ListAppointments GET /api/appointments
func (h *AccountHandler) ListAppointments(c *fiber.Ctx) error {
	appointments, err := h.appointments.ListMine(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, appointments)
}

// ListNotifications GET /api/notifications
func (h *AccountHandler) ListNotifications(c *fiber.Ctx) error {
	list, err := h.notifications.List(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, list)
}

// MarkNotificationsRead PATCH /api/notifications
func (h *AccountHandler) MarkNotificationsRead(c *fiber.Ctx) error {
	var input services.MarkReadInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, services.ErrNotificationIDsInvalid.Message)
		}
	}
	updated, err := h.notifications.MarkRead(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, fiber.Map{"updated": updated})
}
