package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeService_Toggle(t *testing.T) {
	t.Parallel()

	t.Run("Like On Reports State And Count", func(t *testing.T) {
		t.Parallel()
		repo := &likeRepoStub{
			toggleFn: func(_ context.Context, userID, postID uint) (*repository.ToggleResult, error) {
				return &repository.ToggleResult{
					Liked: true,
					Post:  &models.Post{ID: postID, UserID: 99},
					Notification: &models.Notification{
						UserID: 99, SenderID: userID, PostID: postID, Message: "x liked your post",
					},
				}, nil
			},
			countForPostFn: func(_ context.Context, _ uint) (int64, error) { return 4, nil },
		}

		out, err := NewLikeService(repo, nil).Toggle(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.True(t, out.Liked)
		assert.Equal(t, 4, out.LikesCount)
	})

	t.Run("Like Off", func(t *testing.T) {
		t.Parallel()
		repo := &likeRepoStub{
			toggleFn: func(_ context.Context, _, postID uint) (*repository.ToggleResult, error) {
				return &repository.ToggleResult{Liked: false, Post: &models.Post{ID: postID}}, nil
			},
			countForPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		}

		out, err := NewLikeService(repo, nil).Toggle(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.False(t, out.Liked)
		assert.Equal(t, 0, out.LikesCount)
	})

	t.Run("Unknown Post Propagates NotFound", func(t *testing.T) {
		t.Parallel()
		repo := &likeRepoStub{
			toggleFn: func(_ context.Context, _, postID uint) (*repository.ToggleResult, error) {
				return nil, models.NewNotFoundError("Post", postID)
			},
		}

		_, err := NewLikeService(repo, nil).Toggle(context.Background(), 1, 404)
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})
}
