package handlers

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentHandler statik sayfaların ve yorum onaylarının yönetimidir.
type ContentHandler struct {
	pages   services.IPageService
	reviews services.IReviewService
}

func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{
		pages:   services.NewPageService(db),
		reviews: services.NewReviewService(db),
	}
}

func listParams(c *fiber.Ctx, sortBy string) queryparams.ListParams {
	params := queryparams.DefaultListParams(sortBy)
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Admin liste parametreleri okunamadı", zap.String("path", c.Path()), zap.Error(err))
		params = queryparams.DefaultListParams(sortBy)
	}
	params.Validate()
	return params
}

// ListPages GET /api/admin/pages
func (h *ContentHandler) ListPages(c *fiber.Ctx) error {
	result, err := h.pages.List(c.UserContext(), listParams(c, "created_at"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

func (h *ContentHandler) CreatePage(c *fiber.Ctx) error {
	return createWith(c, h.pages.Create)
}

func (h *ContentHandler) UpdatePage(c *fiber.Ctx) error {
	return updateWith(c, h.pages.Update)
}

func (h *ContentHandler) DeletePage(c *fiber.Ctx) error {
	return deleteWith(c, h.pages.Delete, "Sayfa silindi")
}

// ListReviews GET /api/admin/reviews?status=pending|approved
func (h *ContentHandler) ListReviews(c *fiber.Ctx) error {
	result, err := h.reviews.AdminList(c.UserContext(), listParams(c, "created_at"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

// UpdateReview PATCH /api/admin/reviews/:id
func (h *ContentHandler) UpdateReview(c *fiber.Ctx) error {
	return updateWith(c, h.reviews.SetApproval)
}
