package slugify

import (
	"strings"

	"github.com/gosimple/slug"
)

// Make metinden Türkçe karakterleri dönüştürerek URL uyumlu slug üretir.
func Make(text string) string {
	return slug.MakeLang(strings.TrimSpace(text), "tr")
}

// Resolve açıkça verilen slug'ı normalize eder; boşsa isimden üretir.
func Resolve(explicit, name string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return Make(s)
	}
	return Make(name)
}

// IsValid slug'ın yalnızca küçük harf, rakam ve tire içerdiğini doğrular.
func IsValid(s string) bool {
	return slug.IsSlug(s)
}
