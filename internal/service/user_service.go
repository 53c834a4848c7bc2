package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// UpdateProfileInput is a partial update; empty fields keep their value.
// Picture references are storage names produced by the upload layer.
type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      string
	Facebook string
	Telegram string
	Avatar   string
	Cover    string
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns the user for a public profile page together with their
// posts, newest first. currentUserID feeds the posts' liked state.
func (s *UserService) GetProfile(ctx context.Context, username string, currentUserID uint) (*models.User, []*models.Post, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByUserID(ctx, user.ID, currentUserID)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}

// UpdateProfile applies the non-empty fields. A username change is re-checked
// for uniqueness by the store and surfaces as a conflict.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Facebook != "" {
		user.Facebook = in.Facebook
	}
	if in.Telegram != "" {
		user.Telegram = in.Telegram
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Cover != "" {
		user.Cover = in.Cover
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
