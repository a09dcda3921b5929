package services

import (
	"context"
	"testing"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAuthService(db)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Elif Demir ",
		Email:    " Elif@Example.com ",
		Password: "gizli-sifre",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Elif Demir", user.Name)
	assert.Equal(t, "elif@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Nil(t, user.PasswordHash)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("gizli-sifre")))
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(testdb.Open(t))
	input := RegisterInput{Name: "Elif", Email: "elif@example.com", Password: "gizli-sifre"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	input.Email = "ELIF@example.com"
	_, err = svc.Register(context.Background(), input)
	requireKind(t, err, KindConflict)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := NewAuthService(testdb.Open(t))

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Elif", Email: "elif@example.com", Password: "1234567"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "Elif", Email: "gecersiz", Password: "12345678"})
	requireKind(t, err, KindValidation)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "E", Email: "elif@example.com", Password: "12345678"})
	requireKind(t, err, KindValidation)
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAuthService(db)
	user, err := svc.Register(context.Background(), RegisterInput{Name: "Elif", Email: "elif@example.com", Password: "eski-sifre"})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), user.ID, ChangePasswordInput{CurrentPassword: "yanlis-sifre", NewPassword: "yeni-sifre"})
	assert.ErrorIs(t, err, ErrCurrentPasswordWrong)

	err = svc.ChangePassword(context.Background(), user.ID, ChangePasswordInput{CurrentPassword: "eski-sifre", NewPassword: "kisa"})
	assert.ErrorIs(t, err, ErrNewPasswordTooShort)

	require.NoError(t, svc.ChangePassword(context.Background(), user.ID, ChangePasswordInput{CurrentPassword: "eski-sifre", NewPassword: "yeni-sifre"}))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("yeni-sifre")))
}

func TestAuthService_ChangePasswordOAuthOnly(t *testing.T) {
	db := testdb.Open(t)
	user := models.User{Name: "Sosyal", Email: "sosyal@example.com", Role: models.RoleUser, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	err := NewAuthService(db).ChangePassword(context.Background(), user.ID, ChangePasswordInput{NewPassword: "yeni-sifre"})
	assert.ErrorIs(t, err, ErrPasswordChangeDisabled)
}

func TestAuthService_ChangePasswordUnknownUser(t *testing.T) {
	err := NewAuthService(testdb.Open(t)).ChangePassword(context.Background(), 999, ChangePasswordInput{NewPassword: "yeni-sifre"})
	requireKind(t, err, KindNotFound)
}
