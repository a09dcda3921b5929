package configs

import (
	"html/template"

	"github.com/gofiber/template/html/v2"
)

// NewViewEngine sayfa şablonlarını yükler. Geliştirme ortamında şablonlar her istekte yeniden okunur.
func NewViewEngine(cfg AppConfig) *html.Engine {
	engine := html.New(cfg.ViewsDir, ".html")
	engine.Reload(!cfg.IsProduction())
	engine.AddFunc("add", func(a, b int) int { return a + b })
	// Sayfa içerikleri yalnızca yönetici tarafından girilir.
	engine.AddFunc("safeHTML", func(s string) template.HTML { return template.HTML(s) })
	return engine
}
