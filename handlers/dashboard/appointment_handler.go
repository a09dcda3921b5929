package handlers

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppointmentHandler işletmeye gelen randevuları, müşteri listesini ve özet istatistikleri sunar.
type AppointmentHandler struct {
	appointments services.IAppointmentService
	customers    services.ICustomerService
}

func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: services.NewAppointmentService(db),
		customers:    services.NewCustomerService(db),
	}
}

// ListAppointments GET /api/dashboard/appointments?status=
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("date")
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard ListAppointments: sorgu parametreleri okunamadı", zap.Error(err))
		params = queryparams.DefaultListParams("date")
	}
	result, err := h.appointments.ListForOwner(c.UserContext(), middlewares.CurrentUserID(c), params)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

// UpdateStatus PATCH /api/dashboard/appointments/:id
func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	var input services.StatusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	appointment, err := h.appointments.UpdateStatusByOwner(c.UserContext(), middlewares.CurrentUserID(c), id, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, appointment)
}

// Customers GET /api/dashboard/customers
func (h *AppointmentHandler) Customers(c *fiber.Ctx) error {
	roster, err := h.customers.Roster(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, roster)
}

// Stats GET /api/dashboard/stats
func (h *AppointmentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.appointments.Stats(c.UserContext(), middlewares.CurrentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, stats)
}
