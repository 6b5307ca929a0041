// Package domain holds DTOs and ports for user likes
package domain

import "time"

// LikeInput is the request body for POST /likes
type LikeInput struct {
	UserID   string `json:"user_id" validate:"required,min=1,max=100" example:"u-123"`
	SongName string `json:"song_name" validate:"required,min=1,max=200" example:"Blinding Lights"`
}

// UserLikeRecord is one persisted like
type UserLikeRecord struct {
	UserID    string    `json:"user_id"`
	SongName  string    `json:"song_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Likes is the list payload for GET /likes/{user_id}
type Likes struct {
	Items []UserLikeRecord `json:"items"`
}
