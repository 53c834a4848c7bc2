package service

import (
	"context"
	"log/slog"

	"inkwell/internal/cache"
	"inkwell/internal/notifications"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// LikeService toggles likes and pushes the resulting notification event to
// connected clients.
type LikeService struct {
	likeRepo repository.LikeRepository
	notifier *notifications.Notifier
}

// ToggleOutcome is what the handler returns to the client.
type ToggleOutcome struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

func NewLikeService(likeRepo repository.LikeRepository, notifier *notifications.Notifier) *LikeService {
	return &LikeService{likeRepo: likeRepo, notifier: notifier}
}

// Toggle flips the like state for (userID, postID). The write and any
// notification fan-out happen atomically in the repository; the pub/sub
// publish afterwards is best-effort and never fails the request.
func (s *LikeService) Toggle(ctx context.Context, userID, postID uint) (*ToggleOutcome, error) {
	res, err := s.likeRepo.Toggle(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if res.Liked {
		observability.LikesToggled.WithLabelValues("liked").Inc()
	} else {
		observability.LikesToggled.WithLabelValues("unliked").Inc()
	}

	cache.Invalidate(ctx, cache.PostKey(postID))

	if res.Notification != nil {
		observability.NotificationsCreated.Inc()
		if err := s.notifier.PublishLike(ctx, res.Notification.UserID, res.Notification); err != nil {
			observability.Logger.WarnContext(ctx, "like event publish failed",
				slog.Any("post_id", postID),
				slog.String("error", err.Error()),
			)
		}
	}

	count, err := s.likeRepo.CountForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &ToggleOutcome{Liked: res.Liked, LikesCount: int(count)}, nil
}

// IsLiked reports whether the user currently likes the post.
func (s *LikeService) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, postID)
}
