package handlers

import (
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OperationsHandler işletme, randevu ve kullanıcı üzerindeki yönetici işlemleridir.
type OperationsHandler struct {
	businesses   services.IBusinessService
	appointments services.IAppointmentService
	users        services.IUserService
}

func NewOperationsHandler(db *gorm.DB) *OperationsHandler {
	return &OperationsHandler{
		businesses:   services.NewBusinessService(db),
		appointments: services.NewAppointmentService(db),
		users:        services.NewUserService(db),
	}
}

// CreateBusiness POST /api/admin/businesses
func (h *OperationsHandler) CreateBusiness(c *fiber.Ctx) error {
	return createWith(c, h.businesses.AdminCreate)
}

// UpdateBusiness PATCH /api/admin/businesses/:id
func (h *OperationsHandler) UpdateBusiness(c *fiber.Ctx) error {
	return updateWith(c, h.businesses.AdminUpdate)
}

// UpdateAppointment PATCH /api/admin/appointments/:id
func (h *OperationsHandler) UpdateAppointment(c *fiber.Ctx) error {
	return updateWith(c, h.appointments.UpdateStatusByAdmin)
}

// UpdateUser PATCH /api/admin/users/:id
func (h *OperationsHandler) UpdateUser(c *fiber.Ctx) error {
	return updateWith(c, h.users.AdminUpdateUser)
}
