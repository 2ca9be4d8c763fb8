package modkit

import (
	phttp "showcase/internal/platform/net/http"
)

// Module is one feature slice of the API: meta, showcase, relay.
// Modules never import each other; they meet in the Registry through Ports.
type Module interface {
	MountRoutes(r phttp.Router)
	// Ports returns the values other parts of the binary may use, or nil
	Ports() any
	Name() string
}
