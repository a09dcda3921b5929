package routes

import (
	handlers "tiklabakim.com/handlers/dashboard"
	"tiklabakim.com/middlewares"
	"tiklabakim.com/models"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /api/dashboard altındaki işletme sahibi rotalarıdır.
// İşlemler oturumdaki kullanıcının işletmesiyle sınırlıdır; yöneticiler de erişebilir.
func registerDashboardRoutes(api fiber.Router, deps Dependencies) {
	businessHandler := handlers.NewBusinessHandler(deps.DB)
	appointmentHandler := handlers.NewAppointmentHandler(deps.DB)

	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.RequireAuth(),
		middlewares.RequireRole(models.RoleBusinessOwner, models.RoleAdmin),
	)

	// --- İşletme ---
	dashboardGroup.Get("/business", businessHandler.GetBusiness)
	dashboardGroup.Patch("/business", businessHandler.UpdateBusiness)

	// --- Fotoğraflar ---
	dashboardGroup.Get("/photos", businessHandler.ListPhotos)
	dashboardGroup.Post("/photos", businessHandler.AddPhoto)
	dashboardGroup.Patch("/photos/:id", businessHandler.UpdatePhoto)
	dashboardGroup.Delete("/photos/:id", businessHandler.DeletePhoto)

	// --- Hizmetler ---
	dashboardGroup.Get("/services", businessHandler.ListServices)
	dashboardGroup.Post("/services", businessHandler.CreateService)
	dashboardGroup.Patch("/services/:id", businessHandler.UpdateService)
	dashboardGroup.Delete("/services/:id", businessHandler.DeleteService)

	// --- Çalışma saatleri ---
	dashboardGroup.Get("/working-hours", businessHandler.ListWorkingHours)
	dashboardGroup.Post("/working-hours", businessHandler.ReplaceWorkingHours)

	// --- Randevular ve müşteriler ---
	dashboardGroup.Get("/appointments", appointmentHandler.ListAppointments)
	dashboardGroup.Patch("/appointments/:id", appointmentHandler.UpdateStatus)
	dashboardGroup.Get("/customers", appointmentHandler.Customers)
	dashboardGroup.Get("/stats", appointmentHandler.Stats)
}
