package routes

import (
	handlers "tiklabakim.com/handlers/api"
	"tiklabakim.com/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes herkese açık ve giriş yapmış kullanıcıya ait /api rotalarıdır.
func registerPublicRoutes(api fiber.Router, deps Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.DB)
	businessHandler := handlers.NewBusinessHandler(deps.DB)
	accountHandler := handlers.NewAccountHandler(deps.DB)
	uploadHandler := handlers.NewUploadHandler(deps.Uploads)

	authRequired := middlewares.RequireAuth()

	// --- Katalog ---
	api.Get("/categories", catalogHandler.ListCategories)
	api.Post("/categories", authRequired, middlewares.RequireRole(adminOnly...), catalogHandler.CreateCategory)
	api.Get("/cities", catalogHandler.ListCities)
	api.Get("/cities/:slug/districts", catalogHandler.ListDistricts)
	api.Get("/districts/:id/neighborhoods", catalogHandler.ListNeighborhoods)
	api.Get("/pet-types", catalogHandler.ListPetTypes)

	// --- İşletmeler ve arama ---
	api.Get("/businesses", businessHandler.List)
	api.Get("/businesses/:id<int>/reviews", businessHandler.ListReviews)
	api.Post("/businesses/:id<int>/reviews", authRequired, businessHandler.CreateReview)
	api.Get("/businesses/:slug", businessHandler.Get)
	api.Get("/search", businessHandler.Search)

	// --- Hesap ---
	api.Post("/users/register", accountHandler.Register)
	users := api.Group("/users", authRequired)
	users.Get("/me", accountHandler.Me)
	users.Patch("/me", accountHandler.UpdateMe)
	users.Patch("/me/password", accountHandler.ChangePassword)

	api.Get("/pets", authRequired, accountHandler.ListPets)
	api.Post("/pets", authRequired, accountHandler.CreatePet)
	api.Patch("/pets/:id", authRequired, accountHandler.UpdatePet)
	api.Delete("/pets/:id", authRequired, accountHandler.DeletePet)

	api.Get("/appointments", authRequired, accountHandler.ListAppointments)
	api.Post("/appointments", authRequired, accountHandler.CreateAppointment)

	api.Get("/notifications", authRequired, accountHandler.ListNotifications)
	api.Patch("/notifications", authRequired, accountHandler.MarkNotificationsRead)

	api.Post("/upload", authRequired, uploadHandler.Upload)
}
