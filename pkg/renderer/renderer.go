package renderer

import (
	"tiklabakim.com/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	DefaultLayout = "layouts/main"
	ErrorLayout   = "layouts/error"
)

// Render view'ı verilen layout ve durum koduyla render eder.
// Ortak alanlar (oturumdaki kullanıcı bilgisi) data içine eklenir.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["UserID"]; !ok {
		data["UserID"] = c.Locals("userID")
	}

	if err := c.Status(code).Render(view, data, layout); err != nil {
		configslog.Log.Error("Şablon render edilemedi", zap.String("view", view), zap.Error(err))
		return err
	}
	return nil
}

// NotFound 404 sayfasını render eder.
func NotFound(c *fiber.Ctx, title string) error {
	return Render(c, "errors/404", ErrorLayout, fiber.Map{"Title": title}, fiber.StatusNotFound)
}

// ServerError 500 sayfasını render eder.
func ServerError(c *fiber.Ctx, msg string) error {
	return Render(c, "errors/500", ErrorLayout, fiber.Map{"Title": "Bir Sorun Oluştu", "Message": msg}, fiber.StatusInternalServerError)
}
