package database

import (
	"errors"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/database/migrations"
	"tiklabakim.com/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedOptions seeder'ların ihtiyaç duyduğu ayarlardır.
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

// Initialize migrasyon ve seed işlemlerini tek transaction içinde çalıştırır.
// Herhangi bir adım başarısız olursa tüm işlem geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool, opts SeedOptions) error {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
			if err := RunMigrationsInOrder(tx); err != nil {
				return err
			}
			configslog.SLog.Info("Migrasyonlar tamamlandı.")
		} else {
			configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
		}

		if seed {
			configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
			if err := CheckAndRunSeeders(tx, opts); err != nil {
				return err
			}
			configslog.SLog.Info("Seeder'lar tamamlandı.")
		} else {
			configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
		}
		return nil
	})
	if err != nil {
		configslog.Log.Error("Veritabanı başlatma işlemi başarısız oldu, değişiklikler geri alındı", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

type migrationStep struct {
	name string
	run  func(*gorm.DB) error
}

// RunMigrationsInOrder tabloları bağımlılık sırasına göre oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []migrationStep{
		{"User", migrations.MigrateUsersTable},
		{"Taxonomy", migrations.MigrateTaxonomyTables},
		{"Business", migrations.MigrateBusinessTables},
		{"Appointment", migrations.MigrateAppointmentsTables},
		{"Content", migrations.MigrateContentTables},
	}

	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, opts SeedOptions) error {
	configslog.SLog.Info("Sistem yöneticisi kontrol ediliyor/oluşturuluyor/güncelleniyor...")
	if err := seeders.SeedSystemUser(db, opts.AdminEmail, opts.AdminPassword); err != nil {
		configslog.Log.Error("Sistem yöneticisi seed/update işlemi başarısız", zap.Error(err))
		return err
	}

	var errs []error
	configslog.SLog.Info(" -> Sistem sayfaları seeder çalıştırılıyor...")
	if err := seeders.SeedSystemPages(db); err != nil {
		errs = append(errs, err)
	}
	configslog.SLog.Info(" -> Evcil hayvan türleri seeder çalıştırılıyor...")
	if err := seeders.SeedPetTypes(db); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
