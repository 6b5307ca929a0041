// Package repo provides durable store implementations for likes
package repo

import (
	"context"

	"setlist/internal/modkit/repokit"
	perr "setlist/internal/platform/errors"
	"setlist/internal/platform/store"
	"setlist/internal/services/api/likes/domain"
)

// PG persists likes in Postgres, one transaction per write
type PG struct{ db repokit.TxRunner }

// NewPG wraps a transaction runner as a likes store
func NewPG(db repokit.TxRunner) *PG {
	if db == nil {
		panic("likes.PG requires a non nil TxRunner")
	}
	return &PG{db: db}
}

// Name returns the store identity used in diagnostics
func (s *PG) Name() string { return "pg" }

// Upsert records a like, ignoring duplicates on (user_id, song_name)
func (s *PG) Upsert(ctx context.Context, userID, songName string) error {
	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		const sql = `
insert into user_liked_songs (user_id, song_name)
values ($1, $2)
on conflict (user_id, song_name) do nothing
`
		_, err := q.Exec(ctx, sql, userID, songName)
		return perr.FromPostgresf(err, "like upsert for user %s", userID)
	})
}

// List returns every like recorded for the user, oldest first
func (s *PG) List(ctx context.Context, userID string) ([]domain.UserLikeRecord, error) {
	const sql = `
select user_id, song_name, created_at
from user_liked_songs
where user_id = $1
order by created_at asc
`
	out, err := store.Many(ctx, s.db, func(r store.Row) (domain.UserLikeRecord, error) {
		var rec domain.UserLikeRecord
		err := r.Scan(&rec.UserID, &rec.SongName, &rec.CreatedAt)
		return rec, err
	}, sql, userID)
	if err != nil {
		return nil, perr.FromPostgresf(err, "like list for user %s", userID)
	}
	return out, nil
}

// Ping reports connectivity when the underlying runner exposes it
func (s *PG) Ping(ctx context.Context) error {
	if p, ok := s.db.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}
