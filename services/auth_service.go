package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MinRegisterPasswordLength = 8
	MinChangePasswordLength   = 6
)

// RegisterInput kayıt formunun alanlarıdır.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"max=30"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput şifre değiştirme formunun alanlarıdır.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// IAuthService kayıt ve şifre işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	ChangePassword(ctx context.Context, userID uint, input ChangePasswordInput) error
}

type AuthService struct {
	repo repositories.IUserRepository
}

func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{repo: repositories.NewUserRepository(db)}
}

// Register yeni bir kullanıcı oluşturur. Dönen kullanıcıda şifre hash'i bulunmaz.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)

	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(input.Password) < MinRegisterPasswordLength {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		configslog.Log.Error("AuthService.Register: e-posta kontrolü başarısız", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("AuthService.Register: şifre hashlenemedi", zap.Error(err))
		return nil, ErrInternal
	}
	hash := string(hashed)

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         models.RoleUser,
		PasswordHash: &hash,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, mapRepoError(err, nil, ErrEmailTaken, "AuthService.Register: kullanıcı oluşturulamadı", zap.String("email", input.Email))
	}

	configslog.SLog.Infof("Yeni kullanıcı kaydı: ID %d", user.ID)
	user.PasswordHash = nil
	return user, nil
}

// ChangePassword mevcut şifreyi doğrulayarak yeni şifreyi kaydeder.
// Şifresi olmayan (yalnızca sosyal girişli) hesaplar şifre değiştiremez.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, input ChangePasswordInput) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return mapRepoError(err, ErrUserNotFound, nil, "AuthService.ChangePassword: kullanıcı alınamadı", zap.Uint("userID", userID))
	}
	if !user.HasPassword() {
		return ErrPasswordChangeDisabled
	}
	if utf8.RuneCountInString(input.NewPassword) < MinChangePasswordLength {
		return ErrNewPasswordTooShort
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.CurrentPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrCurrentPasswordWrong
		}
		configslog.Log.Error("AuthService.ChangePassword: şifre karşılaştırılamadı", zap.Uint("userID", userID), zap.Error(err))
		return ErrCurrentPasswordWrong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("AuthService.ChangePassword: şifre hashlenemedi", zap.Error(err))
		return ErrInternal
	}

	ctx = models.ContextWithUserID(ctx, userID)
	if err := s.repo.Updates(ctx, userID, map[string]any{"password_hash": string(hashed)}); err != nil {
		return mapRepoError(err, ErrUserNotFound, nil, "AuthService.ChangePassword: şifre güncellenemedi", zap.Uint("userID", userID))
	}
	configslog.SLog.Infof("Kullanıcı şifresi güncellendi: ID %d", userID)
	return nil
}

var _ IAuthService = (*AuthService)(nil)
