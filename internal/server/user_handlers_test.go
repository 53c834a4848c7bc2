package server

import (
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	_, app := newTestServer(t)
	token, userID := signupUser(t, app, "profilee")
	createTestPost(t, app, token, "Visible on profile")

	var got struct {
		User  models.User   `json:"user"`
		Posts []models.Post `json:"posts"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/users/profilee/profile", "", nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, userID, got.User.ID)
	assert.Equal(t, models.DefaultBio, got.User.Bio)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "Visible on profile", got.Posts[0].Title)

	resp = doJSON(t, app, http.MethodGet, "/api/users/nobody/profile", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetMyProfile(t *testing.T) {
	_, app := newTestServer(t)
	token, userID := signupUser(t, app, "selfie")

	var got models.User
	resp := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, userID, got.ID)
	assert.Empty(t, got.Password)
}

func TestUpdateMyProfile(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := signupUser(t, app, "mutable")
	signupUser(t, app, "taken")

	t.Run("Partial update", func(t *testing.T) {
		var got models.User
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
			"bio":      "Writing about writing.",
			"telegram": "mutable_tg",
		}, &got)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Writing about writing.", got.Bio)
		assert.Equal(t, "mutable_tg", got.Telegram)
		assert.Equal(t, "mutable", got.Username, "username untouched")
	})

	t.Run("Rename to taken username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
			"username": "taken",
		}, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Invalid username", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
			"username": "x",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
