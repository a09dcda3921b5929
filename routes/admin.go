package routes

import (
	handlers "tiklabakim.com/handlers/admin"
	"tiklabakim.com/middlewares"
	"tiklabakim.com/models"

	"github.com/gofiber/fiber/v2"
)

var adminOnly = []models.UserRole{models.RoleAdmin}

// registerAdminRoutes /api/admin altındaki yönetici rotalarıdır.
func registerAdminRoutes(api fiber.Router, deps Dependencies) {
	taxonomyHandler := handlers.NewTaxonomyHandler(deps.DB)
	contentHandler := handlers.NewContentHandler(deps.DB)
	operationsHandler := handlers.NewOperationsHandler(deps.DB)

	adminGroup := api.Group("/admin")
	adminGroup.Use(
		middlewares.RequireAuth(),
		middlewares.RequireRole(adminOnly...),
	)

	// --- Kategoriler ---
	adminGroup.Patch("/categories/:id", taxonomyHandler.UpdateCategory)
	adminGroup.Delete("/categories/:id", taxonomyHandler.DeleteCategory)

	// --- Konumlar ---
	adminGroup.Post("/cities", taxonomyHandler.CreateCity)
	adminGroup.Patch("/cities/:id", taxonomyHandler.UpdateCity)
	adminGroup.Delete("/cities/:id", taxonomyHandler.DeleteCity)
	adminGroup.Post("/districts", taxonomyHandler.CreateDistrict)
	adminGroup.Patch("/districts/:id", taxonomyHandler.UpdateDistrict)
	adminGroup.Delete("/districts/:id", taxonomyHandler.DeleteDistrict)
	adminGroup.Get("/neighborhoods", taxonomyHandler.ListNeighborhoods)
	adminGroup.Post("/neighborhoods", taxonomyHandler.CreateNeighborhood)
	adminGroup.Patch("/neighborhoods/:id", taxonomyHandler.UpdateNeighborhood)
	adminGroup.Delete("/neighborhoods/:id", taxonomyHandler.DeleteNeighborhood)

	// --- Evcil hayvan türleri ---
	adminGroup.Get("/pet-types", taxonomyHandler.ListPetTypes)
	adminGroup.Post("/pet-types", taxonomyHandler.CreatePetType)
	adminGroup.Patch("/pet-types/:id", taxonomyHandler.UpdatePetType)
	adminGroup.Delete("/pet-types/:id", taxonomyHandler.DeletePetType)

	// --- Sayfalar ve yorumlar ---
	adminGroup.Get("/pages", contentHandler.ListPages)
	adminGroup.Post("/pages", contentHandler.CreatePage)
	adminGroup.Patch("/pages/:id", contentHandler.UpdatePage)
	adminGroup.Delete("/pages/:id", contentHandler.DeletePage)
	adminGroup.Get("/reviews", contentHandler.ListReviews)
	adminGroup.Patch("/reviews/:id", contentHandler.UpdateReview)

	// --- İşletmeler, randevular, kullanıcılar ---
	adminGroup.Post("/businesses", operationsHandler.CreateBusiness)
	adminGroup.Patch("/businesses/:id", operationsHandler.UpdateBusiness)
	adminGroup.Patch("/appointments/:id", operationsHandler.UpdateAppointment)
	adminGroup.Patch("/users/:id", operationsHandler.UpdateUser)
}
