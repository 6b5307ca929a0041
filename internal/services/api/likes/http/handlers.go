// Package http provides http transport for likes
package http

import (
	stdhttp "net/http"

	chi "github.com/go-chi/chi/v5"

	"setlist/internal/modkit/httpkit"
	perr "setlist/internal/platform/errors"
	"setlist/internal/services/api/likes/domain"
)

// Register mounts likes endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.LikeInput](r, "/", h.record)
	httpkit.Get(r, "/{user_id}", h.list)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) record(r *stdhttp.Request, in domain.LikeInput) (any, error) {
	if err := h.svc.RecordLike(r.Context(), in.UserID, in.SongName); err != nil {
		return nil, err
	}
	return map[string]string{"status": "recorded"}, nil
}

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "user_id is required")
	}
	items := h.svc.LoadLikes(r.Context(), userID)
	if items == nil {
		items = []domain.UserLikeRecord{}
	}
	return domain.Likes{Items: items}, nil
}
