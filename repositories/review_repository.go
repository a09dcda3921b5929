package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

// RatingSummary onaylı yorumların ortalama puanı ve sayısıdır.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type IReviewRepository interface {
	IBaseRepository[models.Review]
	ListApprovedByBusiness(ctx context.Context, businessID uint, take int) ([]models.Review, error)
	Summary(ctx context.Context, businessID uint) (RatingSummary, error)
}

type ReviewRepository struct {
	*BaseRepository[models.Review]
}

func NewReviewRepository(db *gorm.DB) IReviewRepository {
	return &ReviewRepository{BaseRepository: NewBaseRepository[models.Review](db)}
}

// ListApprovedByBusiness yorum yapanın yalnızca herkese açık alanlarını yükler.
func (r *ReviewRepository) ListApprovedByBusiness(ctx context.Context, businessID uint, take int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.getDB(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name", "image") }).
		Where("business_id = ? AND is_approved = ?", businessID, true).
		Order("created_at DESC").
		Limit(take).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Summary(ctx context.Context, businessID uint) (RatingSummary, error) {
	var summary RatingSummary
	err := r.getDB(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("business_id = ? AND is_approved = ?", businessID, true).
		Scan(&summary).Error
	return summary, err
}

var _ IReviewRepository = (*ReviewRepository)(nil)
