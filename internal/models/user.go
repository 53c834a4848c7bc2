// Package models contains data structures for the application's domain models.
package models

import "time"

// Default media references applied when a user has not uploaded anything yet.
const (
	DefaultAvatar = "default.jpg"
	DefaultCover  = "default_cover.jpg"
	DefaultBio    = "Just another Inkwell writer."
)

// User represents a registered account in the Inkwell application.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Avatar    string    `gorm:"size:100;not null;default:'default.jpg'" json:"avatar"`
	Cover     string    `gorm:"size:100;not null;default:'default_cover.jpg'" json:"cover"`
	Facebook  string    `gorm:"size:120" json:"facebook,omitempty"`
	Telegram  string    `gorm:"size:120" json:"telegram,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
