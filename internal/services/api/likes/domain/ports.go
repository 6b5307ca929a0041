package domain

import "context"

// Store is one durable backend for likes. Upsert is idempotent on
// (user_id, song_name); a second like of the same song is a no-op
type Store interface {
	Name() string
	Upsert(ctx context.Context, userID, songName string) error
	List(ctx context.Context, userID string) ([]UserLikeRecord, error)
	Ping(ctx context.Context) error
}

// ServicePort is the likes contract exposed to transports.
// LoadLikes degrades through the configured stores and the in-process
// journal instead of failing
type ServicePort interface {
	RecordLike(ctx context.Context, userID, songName string) error
	LoadLikes(ctx context.Context, userID string) []UserLikeRecord
}
