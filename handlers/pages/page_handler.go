package handlers

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/pkg/renderer"
	"tiklabakim.com/pkg/seo"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HomeFeaturedLimit ana sayfada gösterilen öne çıkan işletme sayısıdır.
const HomeFeaturedLimit = 8

// PageHandler sunucu tarafında render edilen herkese açık sayfalardır.
type PageHandler struct {
	seo        seo.Builder
	categories services.ICategoryService
	locations  services.ILocationService
	businesses services.IBusinessService
	reviews    services.IReviewService
	pages      services.IPageService
}

func NewPageHandler(db *gorm.DB, builder seo.Builder) *PageHandler {
	return &PageHandler{
		seo:        builder,
		categories: services.NewCategoryService(db),
		locations:  services.NewLocationService(db),
		businesses: services.NewBusinessService(db),
		reviews:    services.NewReviewService(db),
		pages:      services.NewPageService(db),
	}
}

// renderError bulunamadı hatalarında 404, diğerlerinde 500 sayfası gösterir.
func (h *PageHandler) renderError(c *fiber.Ctx, err error, notFoundTitle string) error {
	if services.KindOf(err) == services.KindNotFound {
		return renderer.NotFound(c, notFoundTitle)
	}
	configslog.Log.Error("Sayfa render edilemedi", zap.String("path", c.Path()), zap.Error(err))
	return renderer.ServerError(c, "Sayfa yüklenirken bir hata oluştu.")
}

// Home GET /
func (h *PageHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()
	categories, err := h.categories.ListActive(ctx)
	if err != nil {
		return h.renderError(c, err, "")
	}
	featured, err := h.businesses.ListFeatured(ctx, HomeFeaturedLimit)
	if err != nil {
		return h.renderError(c, err, "")
	}
	cities, err := h.locations.ListCities(ctx)
	if err != nil {
		return h.renderError(c, err, "")
	}

	return renderer.Render(c, "home", renderer.DefaultLayout, fiber.Map{
		"Meta":       h.seo.Build("", "Şehrindeki pet kuaförlerini ve bakım salonlarını keşfet, online randevu al.", "/"),
		"Categories": categories,
		"Featured":   featured,
		"Cities":     cities,
	})
}

// Category GET /kategori/:slug
func (h *PageHandler) Category(c *fiber.Ctx) error {
	category, err := h.categories.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil || !category.IsActive {
		if err == nil {
			err = services.ErrCategoryNotFound
		}
		return h.renderError(c, err, "Kategori Bulunamadı")
	}
	result, err := h.businesses.ListPublic(c.UserContext(), services.BusinessQuery{Category: category.Slug, Page: c.QueryInt("page", 1)})
	if err != nil {
		return h.renderError(c, err, "Kategori Bulunamadı")
	}

	return renderer.Render(c, "listing", renderer.DefaultLayout, fiber.Map{
		"Meta":    h.seo.Build(category.Name, seo.FirstNonEmpty(category.Description, category.Name+" işletmeleri"), "/kategori/"+category.Slug),
		"Heading": category.Name,
		"Result":  result,
	})
}

// City GET /sehir/:city
func (h *PageHandler) City(c *fiber.Ctx) error {
	ctx := c.UserContext()
	city, err := h.locations.GetCityBySlug(ctx, c.Params("city"))
	if err != nil {
		return h.renderError(c, err, "Şehir Bulunamadı")
	}
	districts, err := h.locations.ListDistrictsByCitySlug(ctx, city.Slug)
	if err != nil {
		return h.renderError(c, err, "Şehir Bulunamadı")
	}
	result, err := h.businesses.ListPublic(ctx, services.BusinessQuery{City: city.Slug, Page: c.QueryInt("page", 1)})
	if err != nil {
		return h.renderError(c, err, "Şehir Bulunamadı")
	}

	return renderer.Render(c, "listing", renderer.DefaultLayout, fiber.Map{
		"Meta":      h.seo.Build(city.Name+" Pet Kuaförleri", city.Name+" ilindeki pet bakım işletmeleri.", "/sehir/"+city.Slug),
		"Heading":   city.Name,
		"City":      city,
		"Districts": districts,
		"Result":    result,
	})
}

// District GET /sehir/:city/:district
func (h *PageHandler) District(c *fiber.Ctx) error {
	ctx := c.UserContext()
	city, err := h.locations.GetCityBySlug(ctx, c.Params("city"))
	if err != nil {
		return h.renderError(c, err, "Şehir Bulunamadı")
	}
	district, err := h.locations.GetDistrictBySlug(ctx, city.ID, c.Params("district"))
	if err != nil {
		return h.renderError(c, err, "İlçe Bulunamadı")
	}
	result, err := h.businesses.ListPublic(ctx, services.BusinessQuery{City: city.Slug, District: district.Slug, Page: c.QueryInt("page", 1)})
	if err != nil {
		return h.renderError(c, err, "İlçe Bulunamadı")
	}

	title := district.Name + ", " + city.Name
	return renderer.Render(c, "listing", renderer.DefaultLayout, fiber.Map{
		"Meta":    h.seo.Build(title+" Pet Kuaförleri", title+" bölgesindeki pet bakım işletmeleri.", "/sehir/"+city.Slug+"/"+district.Slug),
		"Heading": title,
		"City":    city,
		"Result":  result,
	})
}

// Business GET /isletme/:slug
func (h *PageHandler) Business(c *fiber.Ctx) error {
	detail, err := h.businesses.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.renderError(c, err, "İşletme Bulunamadı")
	}
	reviews, err := h.reviews.ListApproved(c.UserContext(), detail.ID)
	if err != nil {
		return h.renderError(c, err, "İşletme Bulunamadı")
	}

	meta := h.seo.Build(detail.Name, seo.FirstNonEmpty(detail.Description, detail.Name+" pet bakım hizmetleri"), "/isletme/"+detail.Slug)
	meta.Image = detail.CoverImage
	return renderer.Render(c, "business", renderer.DefaultLayout, fiber.Map{
		"Meta":     meta,
		"Business": detail,
		"Reviews":  reviews,
		"Days":     dayNames,
	})
}

// ContentPage GET /sayfa/:slug
func (h *PageHandler) ContentPage(c *fiber.Ctx) error {
	page, err := h.pages.GetPublishedBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return h.renderError(c, err, "Sayfa Bulunamadı")
	}
	return renderer.Render(c, "page", renderer.DefaultLayout, fiber.Map{
		"Meta": h.seo.Build(seo.FirstNonEmpty(page.MetaTitle, page.Title), seo.FirstNonEmpty(page.MetaDescription, page.Content), "/sayfa/"+page.Slug),
		"Page": page,
	})
}

var dayNames = []string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"}
