package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs for cached entities.
const (
	UserTTL = 15 * time.Minute
	PostTTL = 30 * time.Minute
	FeedTTL = 1 * time.Minute
)

// UserKey returns the cache key for a user by ID.
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// PostKey returns the cache key for a post by ID.
func PostKey(postID uint) string {
	return fmt.Sprintf("post:%d", postID)
}

// FeedKey returns the cache key for the public feed of a category.
// An empty category keys the unfiltered feed.
func FeedKey(category string) string {
	if category == "" {
		return "feed:all"
	}
	return "feed:cat:" + category
}

// Invalidate removes a single key (best-effort).
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	client.Del(ctx, key)
}

// InvalidateFeed drops the unfiltered feed and the given category's feed.
func InvalidateFeed(ctx context.Context, category string) {
	Invalidate(ctx, FeedKey(""))
	if category != "" {
		Invalidate(ctx, FeedKey(category))
	}
}
