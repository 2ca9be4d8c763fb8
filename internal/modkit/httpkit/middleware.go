package httpkit

import (
	"net/http"
	"time"

	"showcase/internal/platform/net/middleware"
	"showcase/internal/platform/session"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Sessions    *session.Store
	SlowLog     time.Duration
	QuietPaths  []string // served without an access log line
}

// CommonStack is the root middleware chain: the platform defaults, sessions, access log then CORS
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	mws := append([]func(http.Handler) http.Handler{}, middleware.Defaults()...)
	if o.Sessions != nil {
		mws = append(mws, session.Middleware(o.Sessions))
	}
	slow := o.SlowLog
	if slow <= 0 {
		slow = 5 * time.Second
	}
	return append(mws,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slow, SkipPaths: o.QuietPaths}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
	)
}
