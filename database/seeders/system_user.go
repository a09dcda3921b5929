package seeders

import (
	"errors"
	"strings"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemUser sistem yöneticisini oluşturur; varsa rolünü ve (verildiyse) şifresini günceller.
func SeedSystemUser(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("sistem yöneticisi e-postası boş olamaz")
	}

	var hash *string
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			configslog.Log.Error("Sistem yöneticisi şifresi hashlenemedi", zap.Error(err))
			return err
		}
		h := string(hashed)
		hash = &h
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]any{"role": models.RoleAdmin, "is_active": true}
		if hash != nil {
			updates["password_hash"] = *hash
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			configslog.Log.Error("Sistem yöneticisi güncellenemedi", zap.String("email", email), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Sistem yöneticisi zaten mevcut, bilgileri güncellendi (ID: %d).", existing.ID)
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		configslog.Log.Error("Sistem yöneticisi kontrol edilirken veritabanı hatası", zap.Error(err))
		return err
	}

	if hash == nil {
		return errors.New("yeni sistem yöneticisi için SYSTEM_ADMIN_PASSWORD gerekli")
	}
	admin := models.User{
		Name:         "Sistem Yöneticisi",
		Email:        email,
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Sistem yöneticisi oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Sistem yöneticisi oluşturuldu (ID: %d).", admin.ID)
	return nil
}
