package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username/profile (public)
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	user, posts, err := s.userService.GetProfile(c.Context(), username, currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"posts": posts,
	})
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetByID(c.Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me. Accepts JSON or multipart form
// data; avatar and cover images ride along as multipart files.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username string `json:"username" form:"username"`
		Bio      string `json:"bio" form:"bio"`
		Facebook string `json:"facebook" form:"facebook"`
		Telegram string `json:"telegram" form:"telegram"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	avatar, err := s.saveUploadedImage(c, "avatar")
	if err != nil {
		return respondErr(c, err)
	}
	cover, err := s.saveUploadedImage(c, "cover")
	if err != nil {
		return respondErr(c, err)
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Bio:      req.Bio,
		Facebook: req.Facebook,
		Telegram: req.Telegram,
		Avatar:   avatar,
		Cover:    cover,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(user)
}

// saveUploadedImage stores a named multipart image field if present.
func (s *Server) saveUploadedImage(c *fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", models.NewValidationError("Unreadable " + field + " file")
	}
	defer f.Close()
	return s.store.Save(fh.Filename, f)
}
