package server

import (
	"fmt"
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetPost(t *testing.T) {
	_, app := newTestServer(t)
	token, userID := signupUser(t, app, "writer")

	var created models.Post
	resp := doJSON(t, app, http.MethodPost, "/api/posts/", token, map[string]string{
		"title":   "First Post",
		"content": "hello world",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, models.DefaultCategory, created.Category)

	var got models.Post
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", created.ID), "", nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "First Post", got.Title)
	assert.EqualValues(t, 0, got.LikesCount)
}

func TestGetPost_NotFound(t *testing.T) {
	_, app := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/api/posts/999", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/abc", "", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFeedCategoryFilter(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := signupUser(t, app, "curator")

	doJSON(t, app, http.MethodPost, "/api/posts/", token, map[string]string{
		"title": "Tech post", "content": "c", "category": "Tech",
	}, nil)
	doJSON(t, app, http.MethodPost, "/api/posts/", token, map[string]string{
		"title": "General post", "content": "c",
	}, nil)

	var all []models.Post
	resp := doJSON(t, app, http.MethodGet, "/api/posts/", "", nil, &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, all, 2)

	var tech []models.Post
	resp = doJSON(t, app, http.MethodGet, "/api/posts/?category=Tech", "", nil, &tech)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, tech, 1)
	assert.Equal(t, "Tech post", tech[0].Title)
}

func TestSearchPosts(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := signupUser(t, app, "searcher")

	for _, title := range []string{"Cat facts", "Concatenation tricks", "Dog days"} {
		createTestPost(t, app, token, title)
	}

	var results []models.SearchResult
	resp := doJSON(t, app, http.MethodGet, "/api/posts/search?q=cat", "", nil, &results)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, results, 2)

	// Blank query returns an empty result set, not an error.
	resp = doJSON(t, app, http.MethodGet, "/api/posts/search?q=", "", nil, &results)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, results)
}

func TestUpdatePost_Ownership(t *testing.T) {
	_, app := newTestServer(t)
	ownerToken, _ := signupUser(t, app, "owner")
	otherToken, _ := signupUser(t, app, "intruder")

	postID := createTestPost(t, app, ownerToken, "Mine")
	path := fmt.Sprintf("/api/posts/%d", postID)
	body := map[string]string{"title": "Hijacked", "content": "nope"}

	resp := doJSON(t, app, http.MethodPut, path, otherToken, body, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"non-owner must get 403, not 404")

	var updated models.Post
	resp = doJSON(t, app, http.MethodPut, path, ownerToken,
		map[string]string{"title": "Mine v2", "content": "better"}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Mine v2", updated.Title)
}

func TestDeletePost(t *testing.T) {
	_, app := newTestServer(t)
	ownerToken, _ := signupUser(t, app, "deleter")
	otherToken, _ := signupUser(t, app, "bystander")

	postID := createTestPost(t, app, ownerToken, "Ephemeral")
	path := fmt.Sprintf("/api/posts/%d", postID)

	resp := doJSON(t, app, http.MethodDelete, path, otherToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, path, ownerToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, path, "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, path, ownerToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLikePostEndpoint(t *testing.T) {
	_, app := newTestServer(t)
	authorToken, _ := signupUser(t, app, "author")
	fanToken, _ := signupUser(t, app, "fan")

	postID := createTestPost(t, app, authorToken, "Likeable")
	path := fmt.Sprintf("/api/posts/%d/like", postID)

	var outcome struct {
		Liked      bool `json:"liked"`
		LikesCount int  `json:"likes_count"`
	}

	resp := doJSON(t, app, http.MethodPost, path, fanToken, nil, &outcome)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, outcome.Liked)
	assert.Equal(t, 1, outcome.LikesCount)

	resp = doJSON(t, app, http.MethodPost, path, fanToken, nil, &outcome)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, outcome.Liked)
	assert.Equal(t, 0, outcome.LikesCount)

	resp = doJSON(t, app, http.MethodPost, "/api/posts/999/like", fanToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
