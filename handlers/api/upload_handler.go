package handlers

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UploadHandler struct {
	service services.IUploadService
}

func NewUploadHandler(service services.IUploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload POST /api/upload (multipart: file, folder)
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, services.ErrUploadMissingFile.Message)
	}
	file, err := header.Open()
	if err != nil {
		configslog.Log.Error("UploadHandler.Upload: dosya açılamadı", zap.Error(err))
		return response.Error(c, services.ErrUploadFailed)
	}
	defer file.Close()

	result, err := h.service.Upload(c.UserContext(), middlewares.CurrentUserID(c), c.FormValue("folder"), file, header.Size)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}
