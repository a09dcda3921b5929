package migrations

import (
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAppointmentsTables(db *gorm.DB) error {
	configslog.SLog.Info("Pets & appointments tabloları migrate ediliyor...")
	err := db.AutoMigrate(&models.Pet{}, &models.Appointment{})
	if err != nil {
		configslog.Log.Error("Pets & appointments tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Pets & appointments tabloları migrate işlemi tamamlandı.")
	return nil
}
