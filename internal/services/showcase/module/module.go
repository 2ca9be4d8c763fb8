// Package module wires the showcase service into the API using modkit
package module

import (
	"net/http"

	"showcase/internal/modkit"
	"showcase/internal/modkit/httpkit"
	"showcase/internal/platform/net/http/bind"
	"showcase/internal/services/showcase/domain"
	showcasehttp "showcase/internal/services/showcase/http"
	"showcase/internal/services/showcase/service"
	"showcase/internal/services/showcase/widget"
)

// Ports exposed by the showcase module
type Ports struct {
	Lister   domain.ListerPort
	Enricher domain.EnricherPort
	Profile  domain.ProfilePort
	Widget   *widget.Widget
}

// Module implements modkit.Module for the showcase endpoints
type Module struct {
	modkit.Base

	deps  modkit.Deps
	ports Ports
}

// New validates o and constructs the module. The JSON routes mount under the
// module prefix; the HTML page is mounted separately with MountPage.
func New(deps modkit.Deps, o domain.Options, opts ...modkit.Option) (*Module, error) {
	if err := bind.Struct(o); err != nil {
		return nil, err
	}
	svc, err := service.New(o, nil)
	if err != nil {
		return nil, err
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("showcase")}, opts...)...)

	m := &Module{Base: modkit.NewBase(b), deps: deps}
	m.ports = Ports{
		Lister:   svc,
		Enricher: svc,
		Profile:  svc,
		Widget:   widget.New(svc, svc, svc, o),
	}
	deps.Logger("showcase").Info().
		Str("username", o.Username).
		Str("strategy", string(o.Strategy)).
		Str("site", o.SiteURL).
		Bool("relay", o.RelayURL != "").
		Msg("showcase module ready")
	return m, nil
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { showcasehttp.Register(rr, m.ports.Widget) })
}

// MountPage mounts the HTML page at the root of r
func (m *Module) MountPage(r httpkit.Router, mws ...func(http.Handler) http.Handler) {
	r.Group(func(rr httpkit.Router) {
		if len(mws) > 0 {
			rr.Use(mws...)
		}
		showcasehttp.RegisterPage(rr, m.ports.Widget)
	})
}

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
