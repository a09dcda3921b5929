package migrations

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateTaxonomyTables kategori, konum ve evcil hayvan türü tablolarını oluşturur.
// Sıra önemlidir: districts -> cities, neighborhoods -> districts.
func MigrateTaxonomyTables(db *gorm.DB) error {
	configslog.SLog.Info("Taxonomy tabloları migrate ediliyor...")
	err := db.AutoMigrate(
		&models.Category{},
		&models.City{},
		&models.District{},
		&models.Neighborhood{},
		&models.PetType{},
	)
	if err != nil {
		configslog.Log.Error("Taxonomy tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Taxonomy tabloları migrate işlemi tamamlandı.")
	return nil
}
