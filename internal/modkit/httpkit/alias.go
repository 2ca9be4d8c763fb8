// Package httpkit provides tiny HTTP helpers and adapters for modules
package httpkit

import (
	"io"
	"net/http"

	phttp "showcase/internal/platform/net/http"
)

type (
	// Envelope is the standard JSON response body
	Envelope = phttp.Envelope

	// Response is a return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response mapped from err
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a no-input handler to the envelope writer
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Handle adapts a Response-returning handler
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Page adapts a handler that renders HTML; errors fall back to the JSON error envelope
func Page(fn func(r *http.Request) (func(io.Writer) error, error)) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		render, err := fn(r)
		if err != nil {
			phttp.RespondError(w, r, err)
			return
		}
		phttp.HTML(w, r, http.StatusOK, render)
	}
}
