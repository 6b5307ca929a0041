package module

import (
	"context"

	suggestdom "setlist/internal/services/api/suggest/domain"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSuggestPort adapts the cached suggester to the domain port interface
type adaptSuggestPort struct{ svc suggestdom.ServicePort }

// Suggest implements the domain ServicePort interface
func (a adaptSuggestPort) Suggest(ctx context.Context, seeds []string) (suggestdom.Suggestions, error) {
	return a.svc.Suggest(ctx, seeds)
}
