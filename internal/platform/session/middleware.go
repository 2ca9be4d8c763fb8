package session

import (
	"context"
	"net/http"

	pnet "showcase/internal/platform/net"

	"github.com/google/uuid"
)

// CookieName carries the session id
const CookieName = "showcase_session"

type ctxKey struct{}

// Middleware reads or issues the session cookie and puts the session's cache on the context
func Middleware(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(CookieName); err == nil {
				if u, err := uuid.Parse(c.Value); err == nil {
					id = u.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
			}
			// session cookie: no Expires, dies with the browser session
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   r.TLS != nil,
			})

			ctx := pnet.WithRequest(r.Context(), "", id)
			ctx = context.WithValue(ctx, ctxKey{}, store.Scope(id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the session cache placed by Middleware, or a throwaway one
func FromContext(ctx context.Context) Cache {
	if c, ok := ctx.Value(ctxKey{}).(Cache); ok {
		return c
	}
	return NewMemory()
}
