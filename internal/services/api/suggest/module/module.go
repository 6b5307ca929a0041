// Package module wires suggestions into the API using modkit
package module

import (
	"net/http"

	modkit "setlist/internal/modkit"
	"setlist/internal/modkit/httpkit"
	str "setlist/internal/platform/strings"
	"setlist/internal/services/api/suggest/cache"
	suggesthttp "setlist/internal/services/api/suggest/http"
	suggestrepo "setlist/internal/services/api/suggest/repo"
	suggestsvc "setlist/internal/services/api/suggest/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *cache.Suggester
}

// New constructs a suggestions module with the provided dependencies and options
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	if opt.Gateway == nil {
		panic("suggest module requires a gateway")
	}
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("suggest"), modkit.WithPrefix("/suggestions")},
		opts...,
	)...)

	inner := suggestsvc.New(opt.Gateway, deps.PG, suggestrepo.NewPG(), opt.Service)
	svc := cache.New(inner, deps.RDS, opt.Cache)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSuggestPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		suggesthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Close releases cache resources held by the module
func (m *Module) Close() { m.svc.Close() }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
