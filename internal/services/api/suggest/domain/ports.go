package domain

import "context"

// Gateway is the external candidate catalog the aggregator pulls from.
// All methods surface transient failures with retryable error codes;
// none of them retry internally
type Gateway interface {
	FindSeedCandidate(ctx context.Context, text string) (Candidate, error)
	RelatedCandidates(ctx context.Context, id string, limit int) ([]Candidate, error)
	BatchDetails(ctx context.Context, ids []string) (map[string]Candidate, error)
	PopularChart(ctx context.Context, categoryID string, limit int) ([]Candidate, error)
}

// ServicePort is the suggestion contract exposed to transports and
// other modules
type ServicePort interface {
	Suggest(ctx context.Context, seeds []string) (Suggestions, error)
}
