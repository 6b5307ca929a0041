package repo

import (
	"context"
	"time"

	"setlist/internal/platform/store"
	"setlist/internal/services/api/likes/domain"
)

// CH persists likes in ClickHouse. The table is append-only, so reads
// collapse duplicates per (user_id, song_name) keeping the earliest row
type CH struct{ db store.Clickhouse }

// NewCH wraps a clickhouse seam as a likes store
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("likes.CH requires a non nil Clickhouse")
	}
	return &CH{db: db}
}

// Name returns the store identity used in diagnostics
func (s *CH) Name() string { return "ch" }

// Upsert appends a like row; dedup happens on read
func (s *CH) Upsert(ctx context.Context, userID, songName string) error {
	const sql = `insert into user_liked_songs (user_id, song_name, created_at)`
	return s.db.Insert(ctx, sql, []any{userID, songName, time.Now().UTC()})
}

// List returns the user's likes with duplicates collapsed, oldest first
func (s *CH) List(ctx context.Context, userID string) ([]domain.UserLikeRecord, error) {
	const sql = `
select user_id, song_name, min(created_at) as created_at
from user_liked_songs
where user_id = ?
group by user_id, song_name
order by created_at asc
`
	rows, err := s.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.UserLikeRecord
	for rows.Next() {
		var rec domain.UserLikeRecord
		if err := rows.Scan(&rec.UserID, &rec.SongName, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Ping reports connectivity of the clickhouse connection
func (s *CH) Ping(ctx context.Context) error { return s.db.Ping(ctx) }
