package models

import "time"

// DefaultCategory is applied when a post is created without one.
const DefaultCategory = "General"

// Post represents a published entry in the Inkwell application.
// CreatedAt is assigned by the store at creation and never changes;
// deleting a post removes its likes through the Like foreign key.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	MediaFile string `gorm:"size:100" json:"media_file,omitempty"`
	Category  string `gorm:"size:50;not null;default:'General';index" json:"category"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// Liked indicates whether the requesting user liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Likes []Like `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// SearchResult is the trimmed projection returned by title search.
type SearchResult struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}
