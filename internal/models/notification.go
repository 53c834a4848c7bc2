package models

import "time"

// Notification is created when somebody likes a post owned by another
// user. SenderName is denormalized at write time so the text survives a
// later username change without a join.
type Notification struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"` // recipient
	User       User      `gorm:"foreignKey:UserID" json:"-"`
	SenderID   uint      `gorm:"not null" json:"sender_id"`
	SenderName string    `gorm:"size:50;not null" json:"sender_name"`
	PostID     uint      `gorm:"not null" json:"post_id"`
	Message    string    `gorm:"size:255;not null" json:"message"`
	IsRead     bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
