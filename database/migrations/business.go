package migrations

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateBusinessTables(db *gorm.DB) error {
	configslog.SLog.Info("Businesses, services, working_hours & business_photos tabloları migrate ediliyor...")
	err := db.AutoMigrate(
		&models.Business{},
		&models.Service{},
		&models.WorkingHour{},
		&models.BusinessPhoto{},
		&models.Review{},
	)
	if err != nil {
		configslog.Log.Error("İşletme tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("İşletme tabloları migrate işlemi tamamlandı.")
	return nil
}
