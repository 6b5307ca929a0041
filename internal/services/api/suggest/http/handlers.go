// Package http provides http transport for suggestions
package http

import (
	stdhttp "net/http"

	"setlist/internal/modkit/httpkit"
	perr "setlist/internal/platform/errors"
	"setlist/internal/services/api/suggest/domain"
)

// Register mounts suggestion endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SuggestInput](r, "/", h.suggest)
}

type handlers struct{ svc domain.ServicePort }

func (h *handlers) suggest(r *stdhttp.Request, in domain.SuggestInput) (any, error) {
	out, err := h.svc.Suggest(r.Context(), in.Songs)
	if err != nil {
		// an empty outcome is a normal result, not a fault
		if perr.IsCode(err, perr.ErrorCodeNoSuggestions) {
			return domain.Suggestions{Items: []domain.ScoredSuggestion{}}, nil
		}
		return nil, err
	}
	return out, nil
}
