package services

import (
	"context"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkingHourInput haftanın tek bir günüdür. Kapalı günlerde saatler yok sayılır.
type WorkingHourInput struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	OpenTime  string `json:"openTime" validate:"omitempty,hhmm"`
	CloseTime string `json:"closeTime" validate:"omitempty,hhmm"`
	IsClosed  bool   `json:"isClosed"`
}

type WorkingHoursInput struct {
	Hours []WorkingHourInput `json:"hours" validate:"max=7,dive"`
}

type IWorkingHourService interface {
	List(ctx context.Context, ownerID uint) ([]models.WorkingHour, error)
	Replace(ctx context.Context, ownerID uint, input WorkingHoursInput) ([]models.WorkingHour, error)
}

type WorkingHourService struct {
	businesses repositories.IBusinessRepository
	repo       repositories.IWorkingHourRepository
}

func NewWorkingHourService(db *gorm.DB) IWorkingHourService {
	return &WorkingHourService{
		businesses: repositories.NewBusinessRepository(db),
		repo:       repositories.NewWorkingHourRepository(db),
	}
}

func (s *WorkingHourService) List(ctx context.Context, ownerID uint) ([]models.WorkingHour, error) {
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "WorkingHourService.List")
	if err != nil {
		return nil, err
	}
	hours, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "WorkingHourService.List", zap.Uint("businessID", businessID))
	}
	return hours, nil
}

// Replace işletmenin haftalık çalışma saatlerini tek seferde değiştirir.
func (s *WorkingHourService) Replace(ctx context.Context, ownerID uint, input WorkingHoursInput) ([]models.WorkingHour, error) {
	hours, err := buildWorkingHours(input)
	if err != nil {
		return nil, err
	}
	businessID, err := ownedBusinessID(ctx, s.businesses, ownerID, "WorkingHourService.Replace")
	if err != nil {
		return nil, err
	}

	ctx = models.ContextWithUserID(ctx, ownerID)
	if err := s.repo.ReplaceForBusiness(ctx, businessID, hours); err != nil {
		return nil, mapRepoError(err, nil, ErrWorkingHoursDuplicate, "WorkingHourService.Replace", zap.Uint("businessID", businessID))
	}
	return s.List(ctx, ownerID)
}

func buildWorkingHours(input WorkingHoursInput) ([]models.WorkingHour, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(input.Hours))
	hours := make([]models.WorkingHour, 0, len(input.Hours))
	for _, h := range input.Hours {
		if _, dup := seen[h.DayOfWeek]; dup {
			return nil, ErrWorkingHoursDuplicate
		}
		seen[h.DayOfWeek] = struct{}{}

		wh := models.WorkingHour{DayOfWeek: h.DayOfWeek, IsClosed: h.IsClosed}
		if !h.IsClosed {
			open, ok1 := parseClock(h.OpenTime)
			closing, ok2 := parseClock(h.CloseTime)
			if !ok1 || !ok2 {
				return nil, Validationf("Açık günler için açılış ve kapanış saati zorunludur")
			}
			if open >= closing {
				return nil, Validationf("Açılış saati kapanış saatinden önce olmalıdır")
			}
			wh.OpenTime, wh.CloseTime = h.OpenTime, h.CloseTime
		}
		hours = append(hours, wh)
	}
	return hours, nil
}

var _ IWorkingHourService = (*WorkingHourService)(nil)
