package module

import (
	"context"

	"setlist/internal/adapters/youtube"
	"setlist/internal/services/api/suggest/domain"
)

// GatewayFromClient adapts a youtube client to the domain gateway port
func GatewayFromClient(c *youtube.Client) domain.Gateway { return gatewayAdapter{c: c} }

type gatewayAdapter struct{ c *youtube.Client }

func (g gatewayAdapter) FindSeedCandidate(ctx context.Context, text string) (domain.Candidate, error) {
	cand, err := g.c.FindSeedCandidate(ctx, text)
	if err != nil {
		return domain.Candidate{}, err
	}
	return toDomain(cand), nil
}

func (g gatewayAdapter) RelatedCandidates(ctx context.Context, id string, limit int) ([]domain.Candidate, error) {
	cands, err := g.c.RelatedCandidates(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(cands), nil
}

func (g gatewayAdapter) BatchDetails(ctx context.Context, ids []string) (map[string]domain.Candidate, error) {
	cands, err := g.c.BatchDetails(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Candidate, len(cands))
	for id, c := range cands {
		out[id] = toDomain(c)
	}
	return out, nil
}

func (g gatewayAdapter) PopularChart(ctx context.Context, categoryID string, limit int) ([]domain.Candidate, error) {
	cands, err := g.c.PopularChart(ctx, categoryID, limit)
	if err != nil {
		return nil, err
	}
	return toDomainSlice(cands), nil
}

func toDomain(c youtube.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:          c.ID,
		Title:       c.Title,
		Channel:     c.Channel,
		ChannelID:   c.ChannelID,
		Description: c.Description,
		Tags:        c.Tags,
		ViewCount:   c.ViewCount,
		Duration:    c.Duration,
	}
}

func toDomainSlice(cands []youtube.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		out = append(out, toDomain(c))
	}
	return out
}
