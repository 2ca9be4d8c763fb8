package http

import (
	"net/http"

	perr "showcase/internal/platform/errors"
	pnet "showcase/internal/platform/net"
)

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing seam modules mount against; chi backs it in production
type Router interface {
	// Get registers a GET route; Head registers the same path for HEAD probes
	Get(path string, h Handler)
	Head(path string, h Handler)

	// Handle mounts h for every method on path, wildcards included
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// NotFound and MethodNotAllowed replace the plain text fallbacks
	NotFound(h Handler)
	MethodNotAllowed(h Handler)

	Mux() http.Handler
}

// Fallbacks installs JSON envelope responses for unmatched routes and methods
func Fallbacks(r Router) {
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		RespondError(w, req, perr.NotFoundf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		status := http.StatusMethodNotAllowed
		JSON(w, status, Envelope{
			StatusCode: status,
			Status:     http.StatusText(status),
			Code:       perr.ErrorCodeInvalidArgument,
			Error:      req.Method + " not allowed on " + req.URL.Path,
			RequestID:  pnet.RequestID(req.Context()),
		})
	})
}
