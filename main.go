package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"tiklabakim.com/configs"
	"tiklabakim.com/configs/configsdatabase"
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/seo"
	"tiklabakim.com/pkg/session"
	"tiklabakim.com/pkg/upload"
	"tiklabakim.com/routes"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	uploadsPrefix = "/uploads"
	sessionTTL    = 30 * 24 * time.Hour
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	configslog.InitLogger(cfg.Env)
	defer configslog.SyncLogger()

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      cfg.SiteName,
		Views:        configs.NewViewEngine(cfg),
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    int(cfg.UploadMaxBytes) + 1024*1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Static(uploadsPrefix, cfg.UploadDir)
	app.Static("/static", "./public")

	storage := upload.NewLocalStorage(cfg.UploadDir, uploadsPrefix)
	routes.SetupRoutes(app, routes.Dependencies{
		DB:        configsdatabase.GetDB(),
		Sessions:  session.NewManager(cfg.JWTSecret, cfg.SessionCookie, sessionTTL),
		Uploads:   services.NewUploadService(storage, cfg.UploadMaxBytes),
		SEO:       seo.NewBuilder(cfg.SiteName, cfg.BaseURL),
		Metrics:   middlewares.NewMetrics(),
		AccessLog: true,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Sunucu kapatılıyor...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Sunucu %s portunda başlatılıyor", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Error("Sunucu başlatılamadı", zap.Error(err))
	}
}
