package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := map[string]string{
		"Kadıköy":                "kadikoy",
		"  Şişli  ":              "sisli",
		"Köpek Kuaförü":          "kopek-kuaforu",
		"Gizlilik Politikası":    "gizlilik-politikasi",
		"İstanbul Çağlayan Ödül": "istanbul-caglayan-odul",
	}
	for in, want := range tests {
		assert.Equal(t, want, Make(in), in)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "ozel-slug", Resolve(" Özel Slug ", "İsim"))
	assert.Equal(t, "isim", Resolve("  ", "İsim"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("pati-bakim"))
	assert.False(t, IsValid("Pati Bakım"))
}
