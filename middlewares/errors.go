package middlewares

import (
	"errors"
	"strings"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/pkg/renderer"
	"tiklabakim.com/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler handler'lardan dönen ve yakalanmayan hataları işler.
// /api altındaki istekler JSON zarfı, diğerleri hata sayfası alır.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return response.Error(c, err)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
		return renderer.NotFound(c, "Sayfa Bulunamadı")
	}
	configslog.Log.Error("İstek işlenirken hata", zap.String("path", c.Path()), zap.Error(err))
	if renderErr := renderer.ServerError(c, ""); renderErr != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(response.InternalErrorMessage)
	}
	return nil
}
