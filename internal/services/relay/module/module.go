// Package module wires the CORS relay using modkit
package module

import (
	"time"

	"showcase/internal/core/version"
	"showcase/internal/modkit"
	"showcase/internal/modkit/httpkit"
	"showcase/internal/platform/config"
	relayhttp "showcase/internal/services/relay/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Options for the relay
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string

	// MaxInflight bounds concurrent forwards; extra requests get 429
	MaxInflight int

	// AllowPrivate permits loopback and private targets
	AllowPrivate bool
}

// FromConfig reads SHOWCASE_RELAY_* settings
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SHOWCASE_")
	rc := c.Prefix("RELAY_")
	return Options{
		Timeout:   rc.MayDuration("TIMEOUT", c.MayDuration("HTTP_TIMEOUT", 10*time.Second)),
		MaxBytes:  int64(rc.MayInt("MAX_BYTES", 5<<20)),
		UserAgent: c.MayString("USER_AGENT", version.UserAgent()),

		MaxInflight:  rc.MayInt("MAX_INFLIGHT", 32),
		AllowPrivate: rc.MayBool("ALLOW_PRIVATE", false),
	}
}

// Module implements modkit.Module for the relay
type Module struct {
	modkit.Base
	deps relayhttp.Deps
}

// New constructs the relay module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	base := []modkit.Option{modkit.WithName("relay")}
	if o.MaxInflight > 0 {
		base = append(base, modkit.WithMiddlewares(chimw.Throttle(o.MaxInflight)))
	}
	b := modkit.Build(append(base, opts...)...)
	return &Module{
		Base: modkit.NewBase(b),
		deps: relayhttp.Deps{
			Client:    relayhttp.NewClient(o.Timeout, o.AllowPrivate),
			UserAgent: o.UserAgent,
			MaxBytes:  o.MaxBytes,
		},
	}
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { relayhttp.Register(rr, m.deps) })
}

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return nil }
