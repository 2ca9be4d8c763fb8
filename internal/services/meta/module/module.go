// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"showcase/internal/core/version"
	"showcase/internal/modkit"
	"showcase/internal/modkit/httpkit"

	metahttp "showcase/internal/services/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	deps metahttp.Deps
}

// New constructs a meta module mounted under /meta by default
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	started := deps.StartedAt
	if started.IsZero() {
		started = time.Now()
	}
	md := metahttp.Deps{ServiceName: version.Info().Service, StartedAt: started}
	if deps.Sessions != nil {
		md.Sessions = deps.Sessions
	}
	return &Module{Base: modkit.NewBase(b), deps: md}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
