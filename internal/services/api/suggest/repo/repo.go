// Package repo provides postgres read-through caches for suggestions
package repo

import (
	"context"
	stdsql "database/sql"
	stderrs "errors"
	"time"

	"setlist/internal/modkit/repokit"
	perr "setlist/internal/platform/errors"
	"setlist/internal/services/api/suggest/domain"
)

// Repo is the durable side cache for seed lookups and candidate features.
// Both surfaces are opportunistic; callers treat every error as a miss
type Repo interface {
	// SeedVideoID returns the cached best video id for a normalized query,
	// empty when unknown
	SeedVideoID(ctx context.Context, query string) (string, error)

	// PutSeedVideoID records the resolved id for a normalized query
	PutSeedVideoID(ctx context.Context, query, videoID string) error

	// Features returns cached candidate metadata for the given ids;
	// unknown ids are absent from the map
	Features(ctx context.Context, ids []string) (map[string]domain.Candidate, error)

	// PutFeatures upserts candidate metadata
	PutFeatures(ctx context.Context, cands []domain.Candidate) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) SeedVideoID(ctx context.Context, query string) (string, error) {
	const sql = `select video_id from query_cache where query = $1`
	var id string
	if err := r.q.QueryRow(ctx, sql, query).Scan(&id); err != nil {
		if stderrs.Is(err, stdsql.ErrNoRows) {
			return "", nil
		}
		return "", perr.FromPostgres(err, "query cache lookup")
	}
	return id, nil
}

func (r *queries) PutSeedVideoID(ctx context.Context, query, videoID string) error {
	const sql = `
insert into query_cache (query, video_id)
values ($1, $2)
on conflict (query) do update set video_id = excluded.video_id
`
	_, err := r.q.Exec(ctx, sql, query, videoID)
	return perr.FromPostgres(err, "query cache upsert")
}

func (r *queries) Features(ctx context.Context, ids []string) (map[string]domain.Candidate, error) {
	if len(ids) == 0 {
		return map[string]domain.Candidate{}, nil
	}
	const sql = `
select video_id, title, channel, channel_id, description, tags, view_count, duration_ms
from video_features
where video_id = any($1)
`
	rows, err := r.q.Query(ctx, sql, ids)
	if err != nil {
		return nil, perr.FromPostgres(err, "feature cache read")
	}
	defer rows.Close()

	out := make(map[string]domain.Candidate, len(ids))
	for rows.Next() {
		var c domain.Candidate
		var durMs int64
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Channel,
			&c.ChannelID,
			&c.Description,
			&c.Tags,
			&c.ViewCount,
			&durMs,
		); err != nil {
			return nil, perr.FromPostgres(err, "feature cache scan")
		}
		c.Duration = time.Duration(durMs) * time.Millisecond
		out[c.ID] = c
	}
	return out, rows.Err()
}

func (r *queries) PutFeatures(ctx context.Context, cands []domain.Candidate) error {
	const sql = `
insert into video_features (video_id, title, channel, channel_id, description, tags, view_count, duration_ms)
values ($1, $2, $3, $4, $5, $6, $7, $8)
on conflict (video_id) do update set
	title = excluded.title,
	channel = excluded.channel,
	channel_id = excluded.channel_id,
	description = excluded.description,
	tags = excluded.tags,
	view_count = excluded.view_count,
	duration_ms = excluded.duration_ms
`
	for _, c := range cands {
		if _, err := r.q.Exec(ctx, sql,
			c.ID, c.Title, c.Channel, c.ChannelID, c.Description,
			c.Tags, c.ViewCount, c.Duration.Milliseconds(),
		); err != nil {
			return perr.FromPostgresf(err, "feature cache upsert for %s", c.ID)
		}
	}
	return nil
}
