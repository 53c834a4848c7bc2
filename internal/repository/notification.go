package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notif *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID uint) error
	CountUnread(ctx context.Context, recipientID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notif).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByRecipient returns the recipient's notifications newest-first.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	var notifs []models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifs, nil
}

// MarkAllRead flips every unread notification for the recipient. Running it
// again is a no-op.
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
