package repositories

import (
	"context"

	"tiklabakim.com/models"

	"gorm.io/gorm"
)

type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint, take int) ([]models.Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, userID uint, ids []uint) (int64, error)
}

type NotificationRepository struct {
	*BaseRepository[models.Notification]
}

func NewNotificationRepository(db *gorm.DB) INotificationRepository {
	return &NotificationRepository{BaseRepository: NewBaseRepository[models.Notification](db)}
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, take int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.getDB(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Limit(take).Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

// MarkRead kullanıcının bildirimlerini okundu yapar. ids boşsa tümü işaretlenir.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID uint, ids []uint) (int64, error) {
	query := r.getDB(ctx).Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false)
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	result := query.Update("is_read", true)
	return result.RowsAffected, result.Error
}

var _ INotificationRepository = (*NotificationRepository)(nil)
