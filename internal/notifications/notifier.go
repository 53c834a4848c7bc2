// Package notifications provides best-effort real-time delivery of
// notification events over Redis pub/sub. The durable record lives in the
// notifications table; this layer only wakes up connected clients.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inkwell/internal/models"

	"github.com/redis/go-redis/v9"
)

// Notifier publishes notification payloads into per-user Redis channels.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// LikeEvent is the payload published when a like creates a notification.
type LikeEvent struct {
	Type       string    `json:"type"`
	PostID     uint      `json:"post_id"`
	SenderID   uint      `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserChannel is the pub/sub channel for one recipient.
func UserChannel(userID uint) string {
	return fmt.Sprintf("notifications:user:%d", userID)
}

// PublishLike sends a like notification event to the recipient's channel.
// A nil Redis client or publish failure is not an error for the caller:
// the durable notification row already exists.
func (n *Notifier) PublishLike(ctx context.Context, recipientID uint, notif *models.Notification) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(LikeEvent{
		Type:       "like",
		PostID:     notif.PostID,
		SenderID:   notif.SenderID,
		SenderName: notif.SenderName,
		Message:    notif.Message,
		CreatedAt:  notif.CreatedAt,
	})
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, UserChannel(recipientID), payload).Err()
}

// Subscribe subscribes to one user's channel and invokes onMessage for each
// payload until ctx is cancelled.
func (n *Notifier) Subscribe(ctx context.Context, userID uint, onMessage func(payload string)) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, UserChannel(userID))
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				onMessage(msg.Payload)
			}
		}
	}()

	return nil
}
