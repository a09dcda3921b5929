package handlers

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BusinessHandler struct {
	businesses services.IBusinessService
	reviews    services.IReviewService
	search     services.ISearchService
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{
		businesses: services.NewBusinessService(db),
		reviews:    services.NewReviewService(db),
		search:     services.NewSearchService(db),
	}
}

// List GET /api/businesses?city=&district=&neighborhood=&category=&page=&perPage=
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	var query services.BusinessQuery
	if err := c.QueryParser(&query); err != nil {
		configslog.Log.Warn("BusinessHandler.List: sorgu parametreleri okunamadı", zap.Error(err))
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	result, err := h.businesses.ListPublic(c.UserContext(), query)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

// Get GET /api/businesses/:slug
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	detail, err := h.businesses.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, detail)
}

// ListReviews GET /api/businesses/:id/reviews
func (h *BusinessHandler) ListReviews(c *fiber.Ctx) error {
	businessID, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	reviews, err := h.reviews.ListApproved(c.UserContext(), businessID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, reviews)
}

// CreateReview POST /api/businesses/:id/reviews
func (h *BusinessHandler) CreateReview(c *fiber.Ctx) error {
	businessID, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	var input services.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	review, err := h.reviews.Create(c.UserContext(), middlewares.CurrentUserID(c), businessID, input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}

// Search GET /api/search?q=
func (h *BusinessHandler) Search(c *fiber.Ctx) error {
	result, err := h.search.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}
