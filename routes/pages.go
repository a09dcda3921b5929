package routes

import (
	handlers "tiklabakim.com/handlers/pages"

	"github.com/gofiber/fiber/v2"
)

// registerPageRoutes sunucu tarafında render edilen herkese açık sayfalardır.
func registerPageRoutes(app *fiber.App, deps Dependencies) {
	pageHandler := handlers.NewPageHandler(deps.DB, deps.SEO)

	app.Get("/", pageHandler.Home)
	app.Get("/kategori/:slug", pageHandler.Category)
	app.Get("/sehir/:city", pageHandler.City)
	app.Get("/sehir/:city/:district", pageHandler.District)
	app.Get("/isletme/:slug", pageHandler.Business)
	app.Get("/sayfa/:slug", pageHandler.ContentPage)
}
