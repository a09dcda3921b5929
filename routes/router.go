package routes

import (
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/renderer"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/pkg/seo"
	"tiklabakim.com/pkg/session"
	"tiklabakim.com/repositories"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Dependencies rotaların ihtiyaç duyduğu süreç genelindeki bileşenlerdir.
type Dependencies struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Uploads  services.IUploadService
	SEO      seo.Builder
	Metrics  *middlewares.Metrics
	// AccessLog false verilirse istek loglama kapatılır (testlerde).
	AccessLog bool
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Handler())
		app.Get("/metrics", deps.Metrics.Endpoint())
	}
	app.Use(middlewares.Session(deps.Sessions, repositories.NewUserRepository(deps.DB)))

	// --- Rota Grupları ---
	api := app.Group("/api")
	registerPublicRoutes(api, deps)
	registerDashboardRoutes(api, deps)
	registerAdminRoutes(api, deps)
	api.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Kaynak bulunamadı")
	})

	registerPageRoutes(app, deps)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMEApplicationJSON {
		return response.NotFound(c, "Kaynak bulunamadı")
	}
	return renderer.NotFound(c, "Sayfa Bulunamadı")
}
