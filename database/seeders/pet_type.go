package seeders

import (
	"errors"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SeedPetTypes(db *gorm.DB) error {
	typesToSeed := []models.PetType{
		{Name: "Köpek", Slug: "kopek"},
		{Name: "Kedi", Slug: "kedi"},
		{Name: "Kuş", Slug: "kus"},
		{Name: "Tavşan", Slug: "tavsan"},
	}

	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Evcil hayvan türleri seed işlemi başlıyor...")

	for _, typeToSeed := range typesToSeed {
		var existing models.PetType
		result := db.Where("slug = ?", typeToSeed.Slug).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Evcil hayvan türü '%s' zaten mevcut, oluşturma atlanıyor.", typeToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Evcil hayvan türü kontrol edilirken veritabanı hatası",
				zap.String("slug", typeToSeed.Slug),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		t := typeToSeed
		if err := db.Create(&t).Error; err != nil {
			configslog.Log.Error("Evcil hayvan türü oluşturulamadı", zap.String("slug", t.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni evcil hayvan türü seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm evcil hayvan türleri zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("evcil hayvan türleri seed edilirken en az bir hata oluştu")
	}
	return nil
}
