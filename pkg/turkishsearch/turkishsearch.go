// Package turkishsearch Türkçe karakterlere duyarlı arama yardımcılarıdır.
// "İ/ı" gibi harfler standart strings.ToLower ile doğru küçültülemez.
package turkishsearch

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Turkish)

// Normalize terimi kırpar, boşlukları sadeleştirir ve Türkçe kurallarıyla küçültür.
func Normalize(term string) string {
	return lower.String(strings.Join(strings.Fields(term), " "))
}

// escapeLike LIKE desenindeki özel karakterleri kaçırır.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// Pattern LIKE sorgusu için "%terim%" desenini üretir.
func Pattern(term string) string {
	return "%" + escapeLike(Normalize(term)) + "%"
}

// SQLFilter verilen sütun için Türkçe duyarlı LIKE filtresi ve argümanlarını döndürür.
// Sütun değeri veritabanında da küçültülür; "I" ve "İ" farkı Go tarafında normalize edilen
// terim ile karşılaştırılmadan önce REPLACE ile giderilir.
func SQLFilter(column, term string) (string, []any) {
	expr := "LOWER(REPLACE(REPLACE(" + column + ", 'I', 'ı'), 'İ', 'i')) LIKE ? ESCAPE '\\'"
	return expr, []any{Pattern(term)}
}
