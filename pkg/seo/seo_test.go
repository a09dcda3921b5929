package seo

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("TıklaBakım", "https://tiklabakim.com/")

	meta := b.Build("Pati Bakım", "<p>Kadıköy&#39;de <b>köpek</b> kuaförü</p>", "/isletme/pati-bakim")
	assert.Equal(t, "Pati Bakım | TıklaBakım", meta.Title)
	assert.Equal(t, "Kadıköy'de köpek kuaförü", meta.Description)
	assert.Equal(t, "https://tiklabakim.com/isletme/pati-bakim", meta.Canonical)

	assert.Equal(t, "TıklaBakım", b.Build("  ", "", "").Title)
}

func TestBuilder_URL(t *testing.T) {
	b := NewBuilder("Site", "https://example.com")
	assert.Equal(t, "https://example.com/", b.URL(""))
	assert.Equal(t, "https://example.com/", b.URL("/"))
	assert.Equal(t, "https://example.com/sayfa/iletisim", b.URL("sayfa/iletisim"))
}

func TestDescribe_Truncates(t *testing.T) {
	long := strings.Repeat("tüylü dostlar için bakım ", 20)
	got := Describe(long)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxDescriptionRunes)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, "…"), " "))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "  ", "b", "c"))
	assert.Empty(t, FirstNonEmpty("", " "))
}
