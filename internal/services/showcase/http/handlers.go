// Package http provides the showcase page and JSON endpoints
package http

import (
	"io"
	stdhttp "net/http"

	"showcase/internal/modkit/httpkit"
	"showcase/internal/platform/logger"
	"showcase/internal/platform/session"
	"showcase/internal/services/showcase/card"
	"showcase/internal/services/showcase/widget"
)

type handlers struct{ w *widget.Widget }

// Register mounts the JSON endpoints
func Register(r httpkit.Router, w *widget.Widget) {
	h := &handlers{w: w}

	httpkit.Get(r, "/projects", h.projects)
	httpkit.Get(r, "/profile", h.profile)
}

// RegisterPage mounts the HTML page at /
func RegisterPage(r httpkit.Router, w *widget.Widget) {
	h := &handlers{w: w}
	httpkit.GetPage(r, "/", h.page)
}

// GET /api/v1/projects
// card snapshots in listing order; a failed listing is returned as the error envelope
//
// @Summary Enriched project cards
// @Tags Showcase
// @Produce json
// @Success 200 {array} card.Snapshot "ok"
// @Router /api/v1/projects [get]
func (h *handlers) projects(r *stdhttp.Request) (any, error) {
	var l card.List
	if err := h.w.Render(r.Context(), session.FromContext(r.Context()), &l); err != nil {
		return nil, err
	}
	return l.Snapshots(), nil
}

// GET /api/v1/profile
//
// @Summary Account profile
// @Tags Showcase
// @Produce json
// @Success 200 {object} domain.Profile "ok"
// @Router /api/v1/profile [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	return h.w.Profile(r.Context()), nil
}

// GET /
// a failed listing still renders the page, with no cards
func (h *handlers) page(r *stdhttp.Request) (func(io.Writer) error, error) {
	ctx := r.Context()
	data := card.PageData{Profile: h.w.Profile(ctx)}

	var l card.List
	if err := h.w.Render(ctx, session.FromContext(ctx), &l); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("rendering page without projects")
		data.Error = "projects unavailable"
	}
	data.Cards = l.Snapshots()

	return func(out io.Writer) error { return card.RenderPage(out, data) }, nil
}
