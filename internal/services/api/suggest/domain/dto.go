// Package domain holds DTOs and ports for song suggestions
package domain

import "time"

// SuggestInput is the request body for POST /suggestions
type SuggestInput struct {
	Songs  []string `json:"songs" validate:"required,min=1,max=50,dive,min=1,max=200" example:"Blinding Lights"`
	UserID string   `json:"user_id,omitempty" validate:"omitempty,min=1,max=100" example:"u-123"`
}

// ScoredSuggestion is one ranked result
type ScoredSuggestion struct {
	VideoID string  `json:"video_id"`
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
}

// Suggestions is the aggregate result for one request
type Suggestions struct {
	Items []ScoredSuggestion `json:"items"`

	// Fallback marks results produced by the popularity chart rather
	// than seed ranking
	Fallback bool `json:"fallback,omitempty"`
}

// Candidate is the normalized external catalog item the ranker consumes
type Candidate struct {
	ID          string
	Title       string
	Channel     string
	ChannelID   string
	Description string
	Tags        []string
	ViewCount   uint64
	Duration    time.Duration
}
