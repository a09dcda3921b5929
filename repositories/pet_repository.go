package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

type IPetRepository interface {
	IBaseRepository[models.Pet]
	ListByUser(ctx context.Context, userID uint) ([]models.Pet, error)
	FindForUser(ctx context.Context, id, userID uint) (*models.Pet, error)
}

type PetRepository struct {
	*BaseRepository[models.Pet]
}

func NewPetRepository(db *gorm.DB) IPetRepository {
	return &PetRepository{BaseRepository: NewBaseRepository[models.Pet](db)}
}

func (r *PetRepository) ListByUser(ctx context.Context, userID uint) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.getDB(ctx).Preload("PetType").Where("user_id = ?", userID).Order("name ASC").Find(&pets).Error
	return pets, err
}

func (r *PetRepository) FindForUser(ctx context.Context, id, userID uint) (*models.Pet, error) {
	var pet models.Pet
	if err := r.getDB(ctx).Preload("PetType").Where("id = ? AND user_id = ?", id, userID).First(&pet).Error; err != nil {
		return nil, translate(err)
	}
	return &pet, nil
}

var _ IPetRepository = (*PetRepository)(nil)
