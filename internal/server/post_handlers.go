package server

import (
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postForm carries the writable post fields. Requests may arrive as JSON or
// as multipart form data when a media file is attached.
type postForm struct {
	Title    string `json:"title" form:"title"`
	Content  string `json:"content" form:"content"`
	Category string `json:"category" form:"category"`
}

// saveUploadedMedia stores the "media" multipart file if one was sent and
// returns its storage reference. An absent file is not an error.
func (s *Server) saveUploadedMedia(c *fiber.Ctx) (string, error) {
	return s.saveUploadedImage(c, "media")
}

// GetPosts handles GET /api/posts?category=...
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListFeed(c.Context(), c.Query("category"), currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(posts)
}

// SearchPosts handles GET /api/posts/search?q=...
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	results, err := s.postService.SearchByTitle(c.Context(), q, service.DefaultSearchLimit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(results)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req postForm
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	media, err := s.saveUploadedMedia(c)
	if err != nil {
		return respondErr(c, err)
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		MediaFile: media,
	})
	if err != nil {
		return respondErr(c, err)
	}

	observability.Logger.InfoContext(c.UserContext(), "post created",
		"post_id", post.ID, "user_id", userID)

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postForm
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	media, err := s.saveUploadedMedia(c)
	if err != nil {
		return respondErr(c, err)
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:    userID,
		PostID:    id,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		MediaFile: media,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), id, userID); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like. The same endpoint both likes and
// unlikes; the response reports the resulting state.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	outcome, err := s.likeService.Toggle(c.Context(), userID, id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(outcome)
}
