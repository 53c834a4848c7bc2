package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer spins up a full server against an in-memory SQLite database.
// Redis is nil, so caching and pub/sub degrade to no-ops.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test_secret",
		UploadDir: t.TempDir(),
		Env:       "test",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// doJSON performs a JSON request against the test app, with an optional
// bearer token, and decodes the response body into out (when non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// signupUser registers a fresh account and returns its token and user ID.
func signupUser(t *testing.T, app *fiber.App, username string) (string, uint) {
	t.Helper()

	var got struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "password1",
	}, &got)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, got.Token)
	return got.Token, got.User.ID
}

// createTestPost creates a post through the API and returns its ID.
func createTestPost(t *testing.T, app *fiber.App, token, title string) uint {
	t.Helper()

	var got struct {
		ID uint `json:"id"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/posts/", token, map[string]string{
		"title":   title,
		"content": "some content",
	}, &got)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return got.ID
}
