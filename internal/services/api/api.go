// Package api provides the HTTP API for the application
package api

import (
	"setlist/internal/platform/config"
	"setlist/internal/platform/logger"
	phttp "setlist/internal/platform/net/http"
	"setlist/internal/platform/store"

	"setlist/internal/adapters/youtube"
	"setlist/internal/modkit"
	"setlist/internal/modkit/httpkit"
	"setlist/internal/modkit/module"

	likesmod "setlist/internal/services/api/likes/module"
	metamod "setlist/internal/services/api/meta/module"
	suggestdom "setlist/internal/services/api/suggest/domain"
	suggestmod "setlist/internal/services/api/suggest/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger

	// Gateway overrides the youtube-backed candidate gateway, used by
	// tests; nil builds one from YOUTUBE_* config
	Gateway suggestdom.Gateway
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RDS: opt.Store.RDS,
	}

	gw := opt.Gateway
	if gw == nil {
		yc := opt.Config.Prefix("YOUTUBE_")
		gw = suggestmod.GatewayFromClient(youtube.NewClient(youtube.Options{
			APIKey:    yc.MustString("API_KEY"),
			BaseURL:   yc.MayString("BASE_URL", ""),
			UserAgent: yc.MayString("UA", ""),
			Timeout:   yc.MayDuration("TIMEOUT", 0),
		}))
	}

	sgOpts := suggestmod.FromConfig(deps.Cfg)
	sgOpts.Gateway = gw

	mods := []module.Module{
		metamod.New(deps),
		suggestmod.New(deps, sgOpts),
		likesmod.New(deps, likesmod.FromConfig(deps.Cfg)),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
