package services

import (
	"context"
	"errors"

	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICustomerService işletme panelindeki müşteri listesi içindir.
type ICustomerService interface {
	Roster(ctx context.Context, ownerUserID uint) ([]CustomerRosterEntry, error)
}

type CustomerService struct {
	businessRepo    repositories.IBusinessRepository
	appointmentRepo repositories.IAppointmentRepository
}

func NewCustomerService(db *gorm.DB) ICustomerService {
	return &CustomerService{
		businessRepo:    repositories.NewBusinessRepository(db),
		appointmentRepo: repositories.NewAppointmentRepository(db),
	}
}

// Roster kullanıcının işletmesine ait müşteri (evcil hayvan) listesini üretir.
// Kullanıcının işletmesi yoksa boş liste döner.
func (s *CustomerService) Roster(ctx context.Context, ownerUserID uint) ([]CustomerRosterEntry, error) {
	business, err := s.businessRepo.FindByOwnerID(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			return []CustomerRosterEntry{}, nil
		}
		return nil, mapRepoError(err, nil, nil, "CustomerService.Roster: işletme alınamadı", zap.Uint("ownerUserID", ownerUserID))
	}

	history, err := s.appointmentRepo.ListHistoryForBusiness(ctx, business.ID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "CustomerService.Roster: randevu geçmişi alınamadı", zap.Uint("businessID", business.ID))
	}
	return AggregateCustomers(history), nil
}

var _ ICustomerService = (*CustomerService)(nil)
