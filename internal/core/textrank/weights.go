package textrank

import "time"

// Weights holds the tuning constants for the heuristic boosts.
// Each boost is independently capped by its constant so none of them
// can dominate the cosine term
type Weights struct {
	// OfficialBonus is added when the title carries an "official" video phrase
	OfficialBonus float64

	// OverlapBonus scales the fractional token overlap between seed and
	// candidate titles
	OverlapBonus float64

	// ChannelBonus is added when seed and candidate share a channel
	ChannelBonus float64

	// ViewPriorScale multiplies log1p(views); the product is capped at
	// ViewPriorCap
	ViewPriorScale float64
	ViewPriorCap   float64

	// MinDuration excludes short-form content before scoring
	MinDuration time.Duration
}

// DefaultWeights returns the stock tuning
func DefaultWeights() Weights {
	return Weights{
		OfficialBonus:  0.10,
		OverlapBonus:   0.15,
		ChannelBonus:   0.05,
		ViewPriorScale: 0.01,
		ViewPriorCap:   0.15,
		MinDuration:    60 * time.Second,
	}
}
