package seeders

import (
	"errors"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SystemPages silinemeyen ve her kurulumda bulunması gereken içerik sayfalarıdır.
var SystemPages = []models.Page{
	{Title: "Hakkımızda", Slug: "hakkimizda", MetaTitle: "Hakkımızda", IsSystem: true, IsPublished: true},
	{Title: "İletişim", Slug: "iletisim", MetaTitle: "İletişim", IsSystem: true, IsPublished: true},
	{Title: "Gizlilik Politikası", Slug: "gizlilik-politikasi", MetaTitle: "Gizlilik Politikası", IsSystem: true, IsPublished: true},
}

// SeedSystemPages eksik sistem sayfalarını oluşturur; mevcut olanların yalnızca IsSystem bayrağını düzeltir.
func SeedSystemPages(db *gorm.DB) error {
	errorOccurred := false
	for _, page := range SystemPages {
		var existing models.Page
		result := db.Where("slug = ?", page.Slug).First(&existing)
		if result.Error == nil {
			if !existing.IsSystem {
				if err := db.Model(&existing).Update("is_system", true).Error; err != nil {
					configslog.Log.Error("Sistem sayfası işaretlenemedi", zap.String("slug", page.Slug), zap.Error(err))
					errorOccurred = true
				}
			}
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Sistem sayfası kontrol edilirken veritabanı hatası", zap.String("slug", page.Slug), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		p := page
		if err := db.Create(&p).Error; err != nil {
			configslog.Log.Error("Sistem sayfası oluşturulamadı", zap.String("slug", page.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Sistem sayfası '%s' oluşturuldu.", page.Slug)
	}

	if errorOccurred {
		return errors.New("sistem sayfaları seed edilirken en az bir hata oluştu")
	}
	return nil
}
