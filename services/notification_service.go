package services

import (
	"context"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotificationListLimit bildirim listesinde dönen en fazla kayıt sayısıdır.
const NotificationListLimit = 50

type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}

// MarkReadInput ids boşsa kullanıcının tüm bildirimleri okundu yapılır.
type MarkReadInput struct {
	IDs []uint `json:"ids" validate:"max=500"`
}

type INotificationService interface {
	List(ctx context.Context, userID uint) (*NotificationList, error)
	MarkRead(ctx context.Context, userID uint, input MarkReadInput) (int64, error)
	Notify(ctx context.Context, userID uint, title, message, link string) error
}

type NotificationService struct {
	repo repositories.INotificationRepository
}

func NewNotificationService(db *gorm.DB) INotificationService {
	return &NotificationService{repo: repositories.NewNotificationRepository(db)}
}

func (s *NotificationService) List(ctx context.Context, userID uint) (*NotificationList, error) {
	notifications, err := s.repo.ListByUser(ctx, userID, NotificationListLimit)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "NotificationService.List", zap.Uint("userID", userID))
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "NotificationService.List: okunmamış sayısı", zap.Uint("userID", userID))
	}
	return &NotificationList{Notifications: notifications, UnreadCount: unread}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uint, input MarkReadInput) (int64, error) {
	if err := validateStruct(input); err != nil {
		return 0, err
	}
	for _, id := range input.IDs {
		if id == 0 {
			return 0, ErrNotificationIDsInvalid
		}
	}
	affected, err := s.repo.MarkRead(ctx, userID, input.IDs)
	if err != nil {
		return 0, mapRepoError(err, nil, nil, "NotificationService.MarkRead", zap.Uint("userID", userID))
	}
	return affected, nil
}

// Notify kullanıcıya bildirim yazar. Context'te transaction varsa ona katılır.
func (s *NotificationService) Notify(ctx context.Context, userID uint, title, message, link string) error {
	notification := &models.Notification{UserID: userID, Title: title, Message: message, Link: link}
	if err := s.repo.Create(ctx, notification); err != nil {
		return mapRepoError(err, nil, nil, "NotificationService.Notify", zap.Uint("userID", userID))
	}
	return nil
}

var _ INotificationService = (*NotificationService)(nil)
