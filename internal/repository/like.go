package repository

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleResult reports what a like toggle did.
type ToggleResult struct {
	Liked bool
	Post  *models.Post
	// Notification is non-nil only on a like-on transition against
	// somebody else's post.
	Notification *models.Notification
}

// LikeRepository owns the likes table and the notification fan-out that a
// like-on transition produces.
type LikeRepository interface {
	Toggle(ctx context.Context, userID, postID uint) (*ToggleResult, error)
	CountForPost(ctx context.Context, postID uint) (int64, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle flips the like state for (userID, postID) atomically. The insert
// path relies on the unique index via ON CONFLICT DO NOTHING, so two
// concurrent toggles from the same user cannot create a duplicate row; the
// loser of the race falls through to the delete path. The notification row
// is written in the same transaction as the like.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (*ToggleResult, error) {
	result := &ToggleResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", postID)
			}
			return err
		}
		result.Post = &post

		like := models.Like{UserID: userID, PostID: postID}
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).Create(&like)
		if insert.Error != nil {
			return insert.Error
		}

		if insert.RowsAffected == 0 {
			// Already liked: this toggle removes the like. No
			// notification is ever produced on the way down.
			if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
				Delete(&models.Like{}).Error; err != nil {
				return err
			}
			result.Liked = false
			return nil
		}

		result.Liked = true

		// Self-likes never notify.
		if post.UserID == userID {
			return nil
		}

		var sender models.User
		if err := tx.First(&sender, userID).Error; err != nil {
			return err
		}

		notif := &models.Notification{
			UserID:     post.UserID,
			SenderID:   sender.ID,
			SenderName: sender.Username,
			PostID:     post.ID,
			Message:    fmt.Sprintf("%s liked your post %q", sender.Username, post.Title),
		}
		if err := tx.Create(notif).Error; err != nil {
			return err
		}
		result.Notification = notif
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, models.NewInternalError(err)
	}
	return result, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
