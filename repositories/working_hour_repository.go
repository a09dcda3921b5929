package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

type IWorkingHourRepository interface {
	ListByBusiness(ctx context.Context, businessID uint) ([]models.WorkingHour, error)
	ReplaceForBusiness(ctx context.Context, businessID uint, hours []models.WorkingHour) error
}

type WorkingHourRepository struct {
	*BaseRepository[models.WorkingHour]
}

func NewWorkingHourRepository(db *gorm.DB) IWorkingHourRepository {
	return &WorkingHourRepository{BaseRepository: NewBaseRepository[models.WorkingHour](db)}
}

func (r *WorkingHourRepository) ListByBusiness(ctx context.Context, businessID uint) ([]models.WorkingHour, error) {
	var hours []models.WorkingHour
	err := r.getDB(ctx).Where("business_id = ?", businessID).Order("day_of_week ASC").Find(&hours).Error
	return hours, err
}

// ReplaceForBusiness işletmenin tüm çalışma saatlerini tek transaction içinde siler ve yeniden yazar.
// Eşzamanlı bir okuma hiçbir zaman boş bir hafta görmez.
func (r *WorkingHourRepository) ReplaceForBusiness(ctx context.Context, businessID uint, hours []models.WorkingHour) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("business_id = ?", businessID).Delete(&models.WorkingHour{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		for i := range hours {
			hours[i].ID = 0
			hours[i].BusinessID = businessID
		}
		return tx.Create(&hours).Error
	})
}

var _ IWorkingHourRepository = (*WorkingHourRepository)(nil)
