package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AppointmentInput struct {
	BusinessID uint      `json:"businessId" validate:"required"`
	PetID      uint      `json:"petId" validate:"required"`
	ServiceID  *uint     `json:"serviceId"`
	Date       time.Time `json:"date" validate:"required"`
	Note       string    `json:"note" validate:"max=1000"`
}

type StatusInput struct {
	Status models.AppointmentStatus `json:"status" validate:"required"`
}

// AppointmentStats işletme panelindeki özet bilgilerdir.
type AppointmentStats struct {
	Total        int64                      `json:"total"`
	ByStatus     []repositories.StatusCount `json:"byStatus"`
	Rating       repositories.RatingSummary `json:"rating"`
	CustomerPets int                        `json:"customerPets"`
}

type IAppointmentService interface {
	Create(ctx context.Context, userID uint, input AppointmentInput) (*models.Appointment, error)
	ListMine(ctx context.Context, userID uint) ([]models.Appointment, error)
	ListForOwner(ctx context.Context, ownerID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateStatusByOwner(ctx context.Context, ownerID, id uint, input StatusInput) (*models.Appointment, error)
	UpdateStatusByAdmin(ctx context.Context, adminID, id uint, input StatusInput) (*models.Appointment, error)
	Stats(ctx context.Context, ownerID uint) (*AppointmentStats, error)
}

type AppointmentService struct {
	db            *gorm.DB
	repo          repositories.IAppointmentRepository
	businesses    repositories.IBusinessRepository
	pets          repositories.IPetRepository
	offerings     repositories.IServiceRepository
	reviews       repositories.IReviewRepository
	notifications INotificationService
	now           func() time.Time
}

func NewAppointmentService(db *gorm.DB) IAppointmentService {
	return &AppointmentService{
		db:            db,
		repo:          repositories.NewAppointmentRepository(db),
		businesses:    repositories.NewBusinessRepository(db),
		pets:          repositories.NewPetRepository(db),
		offerings:     repositories.NewServiceRepository(db),
		reviews:       repositories.NewReviewRepository(db),
		notifications: NewNotificationService(db),
		now:           time.Now,
	}
}

// Create randevu talebini PENDING olarak kaydeder ve işletme sahibine bildirim gönderir.
func (s *AppointmentService) Create(ctx context.Context, userID uint, input AppointmentInput) (*models.Appointment, error) {
	input.Note = strings.TrimSpace(input.Note)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if !input.Date.After(s.now()) {
		return nil, ErrAppointmentInPast
	}

	pet, err := s.pets.FindForUser(ctx, input.PetID, userID)
	if err != nil {
		return nil, mapRepoError(err, ErrPetNotFound, nil, "AppointmentService.Create: evcil hayvan", zap.Uint("petID", input.PetID))
	}
	business, err := s.businesses.FindByID(ctx, input.BusinessID)
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "AppointmentService.Create: işletme", zap.Uint("businessID", input.BusinessID))
	}
	if !business.IsActive {
		return nil, ErrBusinessInactive
	}
	serviceID := nonZero(input.ServiceID)
	if serviceID != nil {
		if _, err := s.offerings.FindForBusiness(ctx, *serviceID, business.ID); err != nil {
			return nil, mapRepoError(err, ErrServiceNotFound, nil, "AppointmentService.Create: hizmet", zap.Uint("serviceID", *serviceID))
		}
	}

	appointment := &models.Appointment{
		BusinessID: business.ID,
		PetID:      pet.ID,
		UserID:     userID,
		ServiceID:  serviceID,
		Date:       input.Date.UTC(),
		Status:     models.AppointmentPending,
		Note:       input.Note,
	}
	ctx = models.ContextWithUserID(ctx, userID)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if err := s.repo.Create(txCtx, appointment); err != nil {
			return err
		}
		if business.OwnerID == nil {
			return nil
		}
		return s.notifications.Notify(txCtx, *business.OwnerID,
			"Yeni randevu talebi",
			fmt.Sprintf("%s için %s tarihli yeni bir randevu talebi var.", pet.Name, appointment.Date.Format("02.01.2006 15:04")),
			"/dashboard/appointments")
	})
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "AppointmentService.Create", zap.Uint("businessID", business.ID))
	}
	return appointment, nil
}

func (s *AppointmentService) ListMine(ctx context.Context, userID uint) ([]models.Appointment, error) {
	appointments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "AppointmentService.ListMine", zap.Uint("userID", userID))
	}
	return appointments, nil
}

func (s *AppointmentService) ListForOwner(ctx context.Context, ownerID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.Status != "" {
		params.Status = strings.ToUpper(params.Status)
		if !models.AppointmentStatus(params.Status).Valid() {
			return nil, ErrInvalidStatus
		}
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "AppointmentService.ListForOwner")
	if err != nil {
		return nil, err
	}
	appointments, total, err := s.repo.ListForBusiness(ctx, businessID, params)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "AppointmentService.ListForOwner", zap.Uint("businessID", businessID))
	}
	return queryparams.NewPaginatedResult(appointments, total, params), nil
}

// UpdateStatusByOwner işletme sahibinin randevuyu onaylamasını, tamamlamasını, gelmedi olarak
// işaretlemesini veya iptal etmesini sağlar. PENDING'e geri dönüş yapılamaz.
func (s *AppointmentService) UpdateStatusByOwner(ctx context.Context, ownerID, id uint, input StatusInput) (*models.Appointment, error) {
	if err := checkStatus(input.Status); err != nil {
		return nil, err
	}
	if input.Status == models.AppointmentPending {
		return nil, ErrInvalidStatus
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "AppointmentService.UpdateStatusByOwner")
	if err != nil {
		return nil, err
	}
	appointment, err := s.repo.FindForBusiness(ctx, id, businessID)
	if err != nil {
		return nil, mapRepoError(err, ErrAppointmentNotFound, nil, "AppointmentService.UpdateStatusByOwner", zap.Uint("id", id))
	}
	return s.applyStatus(ctx, ownerID, appointment, input.Status)
}

func (s *AppointmentService) UpdateStatusByAdmin(ctx context.Context, adminID, id uint, input StatusInput) (*models.Appointment, error) {
	if err := checkStatus(input.Status); err != nil {
		return nil, err
	}
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrAppointmentNotFound, nil, "AppointmentService.UpdateStatusByAdmin", zap.Uint("id", id))
	}
	return s.applyStatus(ctx, adminID, appointment, input.Status)
}

func checkStatus(status models.AppointmentStatus) error {
	if status == "" {
		return Validationf("status alanı zorunludur")
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// applyStatus durumu yazar ve randevu sahibine aynı transaction içinde bildirim gönderir.
func (s *AppointmentService) applyStatus(ctx context.Context, actorID uint, appointment *models.Appointment, status models.AppointmentStatus) (*models.Appointment, error) {
	if appointment.Status == status {
		return appointment, nil
	}
	ctx = models.ContextWithUserID(ctx, actorID)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if err := s.repo.Updates(txCtx, appointment.ID, map[string]any{"status": status}); err != nil {
			return err
		}
		return s.notifications.Notify(txCtx, appointment.UserID,
			"Randevu durumu güncellendi",
			fmt.Sprintf("%s tarihli randevunuzun durumu: %s", appointment.Date.Format("02.01.2006 15:04"), statusLabel(status)),
			"/hesabim/randevular")
	})
	if err != nil {
		return nil, mapRepoError(err, ErrAppointmentNotFound, nil, "AppointmentService.applyStatus", zap.Uint("id", appointment.ID))
	}
	appointment.Status = status
	return appointment, nil
}

func statusLabel(status models.AppointmentStatus) string {
	switch status {
	case models.AppointmentPending:
		return "Beklemede"
	case models.AppointmentConfirmed:
		return "Onaylandı"
	case models.AppointmentCompleted:
		return "Tamamlandı"
	case models.AppointmentNoShow:
		return "Gelmedi"
	case models.AppointmentCancelled:
		return "İptal edildi"
	}
	return string(status)
}

func (s *AppointmentService) Stats(ctx context.Context, ownerID uint) (*AppointmentStats, error) {
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "AppointmentService.Stats")
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountByStatus(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "AppointmentService.Stats: durum sayıları", zap.Uint("businessID", businessID))
	}
	rating, err := s.reviews.Summary(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "AppointmentService.Stats: puan özeti", zap.Uint("businessID", businessID))
	}
	pets, err := s.repo.CountDistinctPets(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "AppointmentService.Stats: müşteri sayısı", zap.Uint("businessID", businessID))
	}

	stats := &AppointmentStats{ByStatus: counts, Rating: rating, CustomerPets: int(pets)}
	if stats.ByStatus == nil {
		stats.ByStatus = []repositories.StatusCount{}
	}
	for _, c := range counts {
		stats.Total += c.Count
	}
	return stats, nil
}

var _ IAppointmentService = (*AppointmentService)(nil)
