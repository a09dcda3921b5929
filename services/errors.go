package services

import (
	"errors"
	"fmt"
	"net/http"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
)

// ErrorKind servis hatasının sınıfıdır; HTTP durum koduna bire bir eşlenir.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// ServiceError kullanıcıya gösterilebilecek Türkçe mesaj taşıyan servis hatasıdır.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind ErrorKind, msg string) *ServiceError {
	return &ServiceError{Kind: kind, Message: msg}
}

// Validationf dinamik mesajlı doğrulama hatası üretir.
func Validationf(format string, args ...any) *ServiceError {
	return newError(KindValidation, fmt.Sprintf(format, args...))
}

// KindOf hatanın sınıfını döndürür; servis hatası değilse KindInternal.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// Genel hatalar
var (
	ErrUnauthenticated = newError(KindUnauthenticated, "Bu işlem için giriş yapmanız gerekiyor")
	ErrForbidden       = newError(KindForbidden, "Bu işlem için yetkiniz yok")
	ErrInvalidInput    = newError(KindValidation, "Geçersiz istek verisi")
	ErrInvalidID       = newError(KindValidation, "Geçersiz ID")
	ErrInternal        = newError(KindInternal, "Beklenmeyen bir hata oluştu")
)

// Kullanıcı / kimlik hataları
var (
	ErrUserNotFound           = newError(KindNotFound, "Kullanıcı bulunamadı")
	ErrEmailTaken             = newError(KindConflict, "Bu e-posta adresi zaten kayıtlı")
	ErrPasswordTooShort       = newError(KindValidation, "Şifre en az 8 karakter olmalıdır")
	ErrNewPasswordTooShort    = newError(KindValidation, "Yeni şifre en az 6 karakter olmalıdır")
	ErrCurrentPasswordWrong   = newError(KindValidation, "Mevcut şifre yanlış")
	ErrPasswordChangeDisabled = newError(KindValidation, "Bu hesap sosyal giriş ile oluşturulduğu için şifre değiştirilemez")
	ErrInvalidRole            = newError(KindValidation, "Geçersiz kullanıcı rolü")
)

// Taksonomi ve içerik hataları
var (
	ErrCategoryNotFound      = newError(KindNotFound, "Kategori bulunamadı")
	ErrCategorySlugTaken     = newError(KindConflict, "Bu slug ile bir kategori zaten mevcut")
	ErrCityNotFound          = newError(KindNotFound, "Şehir bulunamadı")
	ErrCitySlugTaken         = newError(KindConflict, "Bu slug ile bir şehir zaten mevcut")
	ErrDistrictNotFound      = newError(KindNotFound, "İlçe bulunamadı")
	ErrDistrictSlugTaken     = newError(KindConflict, "Bu şehirde aynı slug ile bir ilçe zaten mevcut")
	ErrNeighborhoodNotFound  = newError(KindNotFound, "Mahalle bulunamadı")
	ErrNeighborhoodSlugTaken = newError(KindConflict, "Bu ilçede aynı slug ile bir mahalle zaten mevcut")
	ErrPetTypeNotFound       = newError(KindNotFound, "Evcil hayvan türü bulunamadı")
	ErrPetTypeSlugTaken      = newError(KindConflict, "Bu slug ile bir evcil hayvan türü zaten mevcut")
	ErrPageNotFound          = newError(KindNotFound, "Sayfa bulunamadı")
	ErrPageSlugTaken         = newError(KindConflict, "Bu slug ile bir sayfa zaten mevcut")
	ErrSystemPageProtected   = newError(KindForbidden, "Sistem sayfaları silinemez veya slug'ı değiştirilemez")
	ErrInUse                 = newError(KindConflict, "Kayıt başka kayıtlar tarafından kullanıldığı için silinemez")
)

// İşletme hataları
var (
	ErrBusinessNotFound      = newError(KindNotFound, "İşletme bulunamadı")
	ErrBusinessSlugTaken     = newError(KindConflict, "Bu slug ile bir işletme zaten mevcut")
	ErrBusinessInactive      = newError(KindValidation, "İşletme şu anda randevu kabul etmiyor")
	ErrServiceNotFound       = newError(KindNotFound, "Hizmet bulunamadı")
	ErrPhotoNotFound         = newError(KindNotFound, "Fotoğraf bulunamadı")
	ErrWorkingHoursDuplicate = newError(KindValidation, "Aynı gün için birden fazla çalışma saati girilemez")
)

// Randevu, evcil hayvan, yorum ve bildirim hataları
var (
	ErrAppointmentNotFound    = newError(KindNotFound, "Randevu bulunamadı")
	ErrInvalidStatus          = newError(KindValidation, "Geçersiz randevu durumu")
	ErrAppointmentInPast      = newError(KindValidation, "Randevu tarihi gelecekte olmalıdır")
	ErrPetNotFound            = newError(KindNotFound, "Evcil hayvan bulunamadı")
	ErrReviewNotFound         = newError(KindNotFound, "Yorum bulunamadı")
	ErrReviewAlreadyExists    = newError(KindConflict, "Bu işletme için zaten bir yorumunuz var")
	ErrOwnBusinessReview      = newError(KindForbidden, "Kendi işletmenize yorum yapamazsınız")
	ErrSearchTermTooShort     = newError(KindValidation, "Arama terimi en az 2 karakter olmalıdır")
	ErrUploadMissingFile      = newError(KindValidation, "Yüklenecek dosya bulunamadı")
	ErrUploadUnsupportedType  = newError(KindValidation, "Yalnızca JPEG, PNG, WEBP veya GIF yüklenebilir")
	ErrUploadTooLarge         = newError(KindValidation, "Dosya boyutu sınırı aşıldı")
	ErrUploadFailed           = newError(KindInternal, "Dosya yüklenemedi")
	ErrNotificationIDsInvalid = newError(KindValidation, "Geçersiz bildirim listesi")
)

// mapRepoError repository hatalarını servis hatalarına çevirir.
// notFound ve conflict nil verilirse ilgili durum iç hata olarak ele alınır.
func mapRepoError(err error, notFound, conflict *ServiceError, op string, fields ...zap.Field) error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	if notFound != nil && (errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrInvalidID)) {
		return notFound
	}
	if conflict != nil && repositories.IsDuplicate(err) {
		return conflict
	}
	configslog.Log.Error(op, append(fields, zap.Error(err))...)
	return err
}
