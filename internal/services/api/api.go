// Package api assembles the HTTP surface of the service
package api

import (
	"time"

	"showcase/internal/platform/config"
	"showcase/internal/platform/logger"
	phttp "showcase/internal/platform/net/http"
	"showcase/internal/platform/net/middleware"
	"showcase/internal/platform/session"

	"showcase/internal/modkit"
	"showcase/internal/modkit/httpkit"
	"showcase/internal/modkit/swaggerkit"

	metamod "showcase/internal/services/meta/module"
	relaymod "showcase/internal/services/relay/module"
	showcasemod "showcase/internal/services/showcase/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Sessions       *session.Store
	CORSOrigins    []string
	EnableProfiler bool
	EnableDocs     bool

	// Registry receives every module's ports; a fresh one is used when nil
	Registry *modkit.Registry
}

// Mount mounts the page, the versioned API, the relay, the docs and the profiler onto r
func Mount(r phttp.Router, opt Options) error {
	sessions := opt.Sessions
	if sessions == nil {
		sessions = session.NewStore(0)
	}
	deps := modkit.Deps{
		Log:       opt.Logger,
		Cfg:       opt.Config,
		Sessions:  sessions,
		StartedAt: time.Now(),
	}

	showcase, err := showcasemod.New(deps, showcasemod.FromConfig(deps.Cfg))
	if err != nil {
		return err
	}
	relay := relaymod.New(deps, relaymod.FromConfig(deps.Cfg))

	reg := opt.Registry
	if reg == nil {
		reg = modkit.NewRegistry()
	}
	mods := []modkit.Module{
		metamod.New(deps),
		showcase,
	}
	for _, m := range []modkit.Module{mods[0], mods[1], relay} {
		if err := reg.Add(m); err != nil {
			return err
		}
	}

	// root middleware must precede every route
	r.Use(middleware.Heartbeat("/ping"))
	phttp.Fallbacks(r)

	// page and API share sessions; the relay is stateless and open to any origin
	r.Group(func(app httpkit.Router) {
		app.Use(httpkit.CommonStack(httpkit.StackOptions{
			CORSOrigins: opt.CORSOrigins,
			Sessions:    sessions,
			QuietPaths:  []string{httpkit.APIPrefix("v1") + "/meta/health"},
		})...)
		showcase.MountPage(app)
		httpkit.MountAPIV1(app, nil, func(api httpkit.Router) {
			for _, m := range mods {
				m.MountRoutes(api)
			}
		})
	})
	r.Group(func(open httpkit.Router) {
		open.Use(httpkit.CommonStack(httpkit.StackOptions{CORSOrigins: []string{"*"}})...)
		relay.MountRoutes(open)
	})

	swaggerkit.Mount(r, opt.EnableDocs)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	return nil
}
