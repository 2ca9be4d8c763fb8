// Package http provides the CORS relay endpoint
package http

import (
	"errors"
	"io"
	stdhttp "net/http"
	"time"

	"showcase/internal/core/version"
	"showcase/internal/modkit/httpkit"
	perr "showcase/internal/platform/errors"
	"showcase/internal/platform/logger"
	phttp "showcase/internal/platform/net/http"
	"showcase/internal/platform/net/http/bind"
)

// Query is the relay request; target must be an absolute http(s) URL
type Query struct {
	Target string `query:"target" validate:"required,httpurl"`
}

// Deps are the handler dependencies
type Deps struct {
	Client    *stdhttp.Client
	UserAgent string
	MaxBytes  int64

	// AllowPrivate lets the default client reach loopback and private networks
	AllowPrivate bool
}

// forwarded response headers; Content-Type is filtered separately
var passHeaders = []string{"Cache-Control", "ETag", "Last-Modified", "Expires"}

type handlers struct{ deps Deps }

// Register mounts GET /relay
func Register(r httpkit.Router, d Deps) {
	if d.Client == nil {
		d.Client = NewClient(10*time.Second, d.AllowPrivate)
	}
	if d.UserAgent == "" {
		d.UserAgent = version.UserAgent()
	}
	if d.MaxBytes <= 0 {
		d.MaxBytes = 5 << 20
	}
	h := &handlers{deps: d}
	r.Get("/relay", h.relay)
}

// GET /relay?target=<url>
// @Summary Forward a GET to a public http(s) target
// @Tags Relay
// @Param target query string true "absolute http(s) URL"
// @Success 200 {string} string "upstream body"
// @Failure 403 {object} phttp.Envelope "non-public target"
// @Failure 503 {object} phttp.Envelope "target unreachable"
// @Router /relay [get]
//
// upstream status and body are passed through; transport failures answer 503
// and non-public targets 403
func (h *handlers) relay(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q, err := bind.ParseQuery[Query](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	log := logger.C(r.Context()).With().Str("component", "relay").Str("target", q.Target).Logger()

	req, err := stdhttp.NewRequestWithContext(r.Context(), stdhttp.MethodGet, q.Target, nil)
	if err != nil {
		phttp.RespondError(w, r, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad target"))
		return
	}
	req.Header.Set("User-Agent", h.deps.UserAgent)
	if a := r.Header.Get("Accept"); a != "" {
		req.Header.Set("Accept", a)
	}

	resp, err := h.deps.Client.Do(req)
	if errors.Is(err, ErrBlockedTarget) {
		log.Warn().Err(err).Msg("relay target refused")
		phttp.RespondError(w, r, perr.Wrapf(err, perr.ErrorCodeForbidden, "target not allowed"))
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("relay upstream unreachable")
		phttp.RespondError(w, r, perr.Wrapf(err, perr.ErrorCodeUnavailable, "target unreachable"))
		return
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("relay close body failed")
		}
	}()

	hdr := w.Header()
	for _, k := range passHeaders {
		if v := resp.Header.Get(k); v != "" {
			hdr.Set(k, v)
		}
	}
	hdr.Set("Content-Type", safeContentType(resp.Header.Get("Content-Type")))
	hdr.Set("X-Content-Type-Options", "nosniff")
	hdr.Set("Content-Security-Policy", "sandbox; default-src 'none'")
	w.WriteHeader(resp.StatusCode)
	n, err := io.Copy(w, io.LimitReader(resp.Body, h.deps.MaxBytes))
	if err != nil {
		log.Warn().Err(err).Int64("bytes", n).Msg("relay copy interrupted")
		return
	}
	log.Debug().Int("status", resp.StatusCode).Int64("bytes", n).Msg("relayed")
}
