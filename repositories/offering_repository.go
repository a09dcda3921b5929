package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

// IServiceRepository işletmelerin sunduğu hizmetler (models.Service) içindir.
type IServiceRepository interface {
	IBaseRepository[models.Service]
	ListByBusiness(ctx context.Context, businessID uint) ([]models.Service, error)
	FindForBusiness(ctx context.Context, id, businessID uint) (*models.Service, error)
}

type ServiceRepository struct {
	*BaseRepository[models.Service]
}

func NewServiceRepository(db *gorm.DB) IServiceRepository {
	return &ServiceRepository{BaseRepository: NewBaseRepository[models.Service](db)}
}

func (r *ServiceRepository) ListByBusiness(ctx context.Context, businessID uint) ([]models.Service, error) {
	var services []models.Service
	err := r.getDB(ctx).Preload("PetType").Where("business_id = ?", businessID).Order("name ASC").Find(&services).Error
	return services, err
}

func (r *ServiceRepository) FindForBusiness(ctx context.Context, id, businessID uint) (*models.Service, error) {
	var service models.Service
	err := r.getDB(ctx).Where("id = ? AND business_id = ?", id, businessID).First(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

var _ IServiceRepository = (*ServiceRepository)(nil)
