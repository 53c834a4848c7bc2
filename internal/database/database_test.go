package database

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "posts", "likes", "notifications"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	// The like uniqueness invariant lives in the schema, not application timing.
	assert.True(t, db.Migrator().HasIndex(&models.Like{}, "idx_likes_user_post"))
}

func TestMigrate_DuplicateLikeRejected(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	user := models.User{Username: "a", Email: "a@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	post := models.Post{Title: "t", Content: "c", UserID: user.ID}
	require.NoError(t, db.Create(&post).Error)

	require.NoError(t, db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error)
	err = db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
