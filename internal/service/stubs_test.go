package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	listFeedFn      func(context.Context, string, uint) ([]*models.Post, error)
	listByUserIDFn  func(context.Context, uint, uint) ([]*models.Post, error)
	searchByTitleFn func(context.Context, string, int) ([]models.SearchResult, error)
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) ListFeed(ctx context.Context, category string, currentUserID uint) ([]*models.Post, error) {
	return s.listFeedFn(ctx, category, currentUserID)
}
func (s *postRepoStub) ListByUserID(ctx context.Context, userID, currentUserID uint) ([]*models.Post, error) {
	return s.listByUserIDFn(ctx, userID, currentUserID)
}
func (s *postRepoStub) SearchByTitle(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	return s.searchByTitleFn(ctx, query, limit)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:       func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listFeedFn:      func(_ context.Context, _ string, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserIDFn:  func(_ context.Context, _, _ uint) ([]*models.Post, error) { return nil, nil },
		searchByTitleFn: func(_ context.Context, _ string, _ int) ([]models.SearchResult, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	toggleFn       func(context.Context, uint, uint) (*repository.ToggleResult, error)
	countForPostFn func(context.Context, uint) (int64, error)
	existsFn       func(context.Context, uint, uint) (bool, error)
}

func (s *likeRepoStub) Toggle(ctx context.Context, userID, postID uint) (*repository.ToggleResult, error) {
	return s.toggleFn(ctx, userID, postID)
}
func (s *likeRepoStub) CountForPost(ctx context.Context, postID uint) (int64, error) {
	return s.countForPostFn(ctx, postID)
}
func (s *likeRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsFn(ctx, userID, postID)
}

// notifRepoStub is a stub for repository.NotificationRepository.
type notifRepoStub struct {
	createFn          func(context.Context, *models.Notification) error
	listByRecipientFn func(context.Context, uint) ([]models.Notification, error)
	markAllReadFn     func(context.Context, uint) error
	countUnreadFn     func(context.Context, uint) (int64, error)
}

func (s *notifRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notifRepoStub) ListByRecipient(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	return s.listByRecipientFn(ctx, recipientID)
}
func (s *notifRepoStub) MarkAllRead(ctx context.Context, recipientID uint) error {
	return s.markAllReadFn(ctx, recipientID)
}
func (s *notifRepoStub) CountUnread(ctx context.Context, recipientID uint) (int64, error) {
	return s.countUnreadFn(ctx, recipientID)
}
