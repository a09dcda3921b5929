package migrations

import (
	"errors"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"gorm.io/gorm"
)

func MigrateContentTables(db *gorm.DB) error {
	configslog.SLog.Info("Pages & notifications tabloları migrate ediliyor...")

	if err := db.AutoMigrate(&models.Page{}, &models.Notification{}); err != nil {
		errMsg := "Pages & notifications tabloları migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Pages & notifications tabloları migrate işlemi tamamlandı.")
	return nil
}
