// Package testdb testler için gerçek migrasyonlarla kurulmuş, bellek içi SQLite veritabanı açar.
package testdb

import (
	"fmt"
	"testing"
	"time"

	"tiklabakim.com/database"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open her test için izole bir veritabanı döndürür ve test bitince kapatır.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("test migrasyonları başarısız: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test veritabanı havuzu alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
