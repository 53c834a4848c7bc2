package server

import (
	"inkwell/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications.
// Viewing the list marks everything as read: the payload carries each item's
// pre-view is_read flag so clients can still highlight what was new, and the
// mark-read write happens after the snapshot is taken.
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	notifs, err := s.notifService.ListFor(c.Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}

	if err := s.notifService.MarkAllRead(c.Context(), userID); err != nil {
		// The list itself is good; losing the mark-read write only means the
		// same items show as unread next time.
		observability.Logger.WarnContext(c.UserContext(),
			"failed to mark notifications read", "error", err, "user_id", userID)
	}

	return c.JSON(notifs)
}

// GetUnreadCount handles GET /api/notifications/unread-count
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	count, err := s.notifService.UnreadCount(c.Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

// MarkNotificationsRead handles POST /api/notifications/read. Idempotent:
// calling it with nothing unread succeeds and changes nothing.
func (s *Server) MarkNotificationsRead(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := s.notifService.MarkAllRead(c.Context(), userID); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notifications marked as read"})
}
