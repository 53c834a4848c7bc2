package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// NotificationService exposes the notification outbox. Listing and marking
// read are separate operations; the HTTP layer composes them to keep the
// original view-marks-read behavior.
type NotificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// ListFor returns the recipient's notifications newest-first without
// touching their read state.
func (s *NotificationService) ListFor(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	return s.notifRepo.ListByRecipient(ctx, recipientID)
}

// MarkAllRead flips every unread notification for the recipient; calling it
// again is a no-op.
func (s *NotificationService) MarkAllRead(ctx context.Context, recipientID uint) error {
	return s.notifRepo.MarkAllRead(ctx, recipientID)
}

// UnreadCount is a pure read used for the notification badge.
func (s *NotificationService) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return s.notifRepo.CountUnread(ctx, recipientID)
}
