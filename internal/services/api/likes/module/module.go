// Package module wires likes into the API using modkit
package module

import (
	"net/http"

	modkit "setlist/internal/modkit"
	"setlist/internal/modkit/httpkit"
	str "setlist/internal/platform/strings"
	"setlist/internal/services/api/likes/domain"
	likeshttp "setlist/internal/services/api/likes/http"
	likesrepo "setlist/internal/services/api/likes/repo"
	likessvc "setlist/internal/services/api/likes/service"
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

	svc likessvc.Service
}

// New constructs a likes module over every store the deps carry.
// Postgres is always first; ClickHouse joins when configured
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("likes"), modkit.WithPrefix("/likes")},
		opts...,
	)...)

	var stores []domain.Store
	if deps.PG != nil {
		stores = append(stores, likesrepo.NewPG(deps.PG))
	}
	if deps.CH != nil {
		stores = append(stores, likesrepo.NewCH(deps.CH))
	}
	svc := likessvc.New(stores, opt.ReadPreference)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptLikesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		likeshttp.Register(r, m.svc)
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

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
