package repositories

import (
	"context"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"

	"gorm.io/gorm"
)

// StatusCount durum bazında gruplanmış randevu sayısıdır.
type StatusCount struct {
	Status models.AppointmentStatus `json:"status"`
	Count  int64                    `json:"count"`
}

// IAppointmentRepository randevu veritabanı işlemleri için arayüz.
type IAppointmentRepository interface {
	IBaseRepository[models.Appointment]
	FindForBusiness(ctx context.Context, id, businessID uint) (*models.Appointment, error)
	ListForBusiness(ctx context.Context, businessID uint, params queryparams.ListParams) ([]models.Appointment, int64, error)
	ListHistoryForBusiness(ctx context.Context, businessID uint) ([]models.Appointment, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error)
	CountByStatus(ctx context.Context, businessID uint) ([]StatusCount, error)
	CountDistinctPets(ctx context.Context, businessID uint) (int64, error)
}

type AppointmentRepository struct {
	*BaseRepository[models.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) IAppointmentRepository {
	base := NewBaseRepository[models.Appointment](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "date", "status"})
	return &AppointmentRepository{BaseRepository: base}
}

func (r *AppointmentRepository) FindForBusiness(ctx context.Context, id, businessID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.getDB(ctx).Where("id = ? AND business_id = ?", id, businessID).First(&appointment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// ListForBusiness işletmenin randevularını sayfalayarak getirir. params.Status verilirse filtrelenir.
func (r *AppointmentRepository) ListForBusiness(ctx context.Context, businessID uint, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	params.Validate()
	var (
		appointments []models.Appointment
		total        int64
	)
	query := r.getDB(ctx).Model(&models.Appointment{}).Where("business_id = ?", businessID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return appointments, 0, nil
	}

	orderColumn := "date"
	if params.SortBy == "created_at" || params.SortBy == "status" {
		orderColumn = params.SortBy
	}
	err := query.Preload("Pet").Preload("Pet.PetType").Preload("User").Preload("Service").
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&appointments).Error
	if err != nil {
		return nil, total, err
	}
	return appointments, total, nil
}

// ListHistoryForBusiness müşteri listesi için işletmenin tüm randevularını tarihe göre azalan sırada getirir.
func (r *AppointmentRepository) ListHistoryForBusiness(ctx context.Context, businessID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.getDB(ctx).
		Preload("Pet").Preload("Pet.PetType").Preload("User").
		Where("business_id = ?", businessID).
		Order("date DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepository) ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.getDB(ctx).
		Preload("Business").Preload("Pet").Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&appointments).Error
	return appointments, err
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, businessID uint) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.getDB(ctx).Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("business_id = ?", businessID).
		Group("status").
		Order("status ASC").
		Scan(&counts).Error
	return counts, err
}

// CountDistinctPets işletmeden en az bir kez randevu almış evcil hayvan sayısını döndürür.
func (r *AppointmentRepository) CountDistinctPets(ctx context.Context, businessID uint) (int64, error) {
	var n int64
	err := r.getDB(ctx).Model(&models.Appointment{}).
		Select("COUNT(DISTINCT pet_id)").
		Where("business_id = ?", businessID).
		Scan(&n).Error
	return n, err
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
