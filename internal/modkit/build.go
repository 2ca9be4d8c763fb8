package modkit

import (
	"net/http"

	phttp "showcase/internal/platform/net/http"
	str "showcase/internal/platform/strings"
)

// Built is the resolved mount configuration of a module
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
}

// Build folds opts left to right; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	// never alias a caller's slice
	b.Mw = append([]func(http.Handler) http.Handler(nil), b.Mw...)
	return b
}

// Base is embedded by modules and supplies Name and Mount
type Base struct{ b Built }

// NewBase wraps a Built configuration
func NewBase(b Built) Base { return Base{b: b} }

// Mount calls register on a router scoped to the module prefix and middleware.
// Without a prefix the routes land in a group on r.
func (m Base) Mount(r phttp.Router, register func(phttp.Router)) {
	scoped := func(rr phttp.Router) {
		if len(m.b.Mw) > 0 {
			rr.Use(m.b.Mw...)
		}
		register(rr)
	}
	if m.b.Prefix == "" {
		r.Group(scoped)
		return
	}
	r.Route(str.MustPrefix(m.b.Prefix), scoped)
}

// Name returns the module name and panics when none was set
func (m Base) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix, possibly empty
func (m Base) Prefix() string { return m.b.Prefix }
