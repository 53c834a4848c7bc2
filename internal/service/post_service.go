package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// DefaultSearchLimit caps title search results when the caller does not.
const DefaultSearchLimit = 5

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID    uint
	Title     string
	Content   string
	Category  string
	MediaFile string
}

type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Title     string
	Content   string
	Category  string
	MediaFile string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 200

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if in.Category == "" {
		in.Category = models.DefaultCategory
	}

	post := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		MediaFile: in.MediaFile,
		UserID:    in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// UpdatePost mutates title/content/category/media. Only the post's author may
// edit it; the author and creation time never change.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You do not own this post")
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.Category != "" {
		post.Category = in.Category
	}
	if in.MediaFile != "" {
		post.MediaFile = in.MediaFile
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post and its likes. Non-owners get a forbidden
// error, distinct from not-found, so the caller can answer 403 vs 404.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You do not own this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

func (s *PostService) ListFeed(ctx context.Context, category string, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.ListFeed(ctx, category, currentUserID)
}

func (s *PostService) SearchByTitle(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	if query == "" {
		return []models.SearchResult{}, nil
	}
	if limit <= 0 || limit > DefaultSearchLimit {
		limit = DefaultSearchLimit
	}
	return s.postRepo.SearchByTitle(ctx, query, limit)
}
