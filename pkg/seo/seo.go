// Package seo sunucu tarafında render edilen sayfalar için arama motoru meta verisini üretir.
package seo

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionRunes meta açıklamasının üst sınırıdır.
const MaxDescriptionRunes = 160

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Meta bir sayfanın <head> alanına yazılan bilgilerdir.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Image       string
	NoIndex     bool
}

// Builder site genelindeki ayarlarla Meta üretir.
type Builder struct {
	SiteName string
	BaseURL  string
}

func NewBuilder(siteName, baseURL string) Builder {
	return Builder{SiteName: siteName, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Build başlığa site adını ekler, açıklamayı temizler ve kanonik adresi oluşturur.
// Boş başlık yalnızca site adını verir.
func (b Builder) Build(title, description, path string) Meta {
	fullTitle := b.SiteName
	if t := strings.TrimSpace(title); t != "" {
		fullTitle = t + " | " + b.SiteName
	}
	return Meta{
		Title:       fullTitle,
		Description: Describe(description),
		Canonical:   b.URL(path),
	}
}

// URL verilen yolu mutlak adrese çevirir.
func (b Builder) URL(path string) string {
	if path == "" || path == "/" {
		return b.BaseURL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.BaseURL + path
}

// Describe HTML etiketlerini ve fazla boşlukları temizleyip metni kelime sınırında keser.
func Describe(text string) string {
	plain := html.UnescapeString(tagPattern.ReplaceAllString(text, " "))
	plain = strings.Join(strings.Fields(plain), " ")
	if utf8.RuneCountInString(plain) <= MaxDescriptionRunes {
		return plain
	}

	runes := []rune(plain)
	cut := string(runes[:MaxDescriptionRunes-1])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:-") + "…"
}

// FirstNonEmpty ilk boş olmayan değeri döndürür; meta alanlarında yedek değer seçmek için kullanılır.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
