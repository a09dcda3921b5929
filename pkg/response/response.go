// Package response JSON uç noktaları için ortak zarf biçimini uygular:
// {"success": true, "data": ...} veya {"success": false, "error": "..."}.
package response

import (
	"errors"

	"tiklabakim.com/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InternalErrorMessage beklenmeyen hatalarda kullanıcıya gösterilen genel mesajdır.
const InternalErrorMessage = "Beklenmeyen bir hata oluştu"

// StatusError HTTP durum koduna eşlenebilen hatalardır.
type StatusError interface {
	error
	StatusCode() int
}

func OK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

// Message yalnızca bir mesaj içeren başarılı yanıt döndürür.
func Message(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": msg})
}

// Fail verilen durum kodu ve mesajla hata yanıtı döndürür.
func Fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

func BadRequest(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusBadRequest, msg)
}

func Unauthorized(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusUnauthorized, msg)
}

func Forbidden(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusForbidden, msg)
}

func NotFound(c *fiber.Ctx, msg string) error {
	return Fail(c, fiber.StatusNotFound, msg)
}

// Error hatayı uygun durum koduna çevirir. Tanınmayan hatalar loglanır ve ayrıntı sızdırılmadan
// 500 olarak döner.
func Error(c *fiber.Ctx, err error) error {
	var se StatusError
	if errors.As(err, &se) && se.StatusCode() < fiber.StatusInternalServerError {
		return Fail(c, se.StatusCode(), se.Error())
	}
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return Fail(c, fe.Code, fe.Message)
	}

	configslog.Log.Error("İstek işlenirken beklenmeyen hata",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return Fail(c, fiber.StatusInternalServerError, InternalErrorMessage)
}
