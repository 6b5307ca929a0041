package module

import (
	"context"

	likesdom "setlist/internal/services/api/likes/domain"
	likessvc "setlist/internal/services/api/likes/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptLikesPort adapts the likes service to the domain port interface
type adaptLikesPort struct{ svc likessvc.Service }

// RecordLike implements the domain ServicePort interface
func (a adaptLikesPort) RecordLike(ctx context.Context, userID, songName string) error {
	return a.svc.RecordLike(ctx, userID, songName)
}

// LoadLikes implements the domain ServicePort interface
func (a adaptLikesPort) LoadLikes(ctx context.Context, userID string) []likesdom.UserLikeRecord {
	return a.svc.LoadLikes(ctx, userID)
}
