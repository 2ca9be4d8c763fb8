package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"net/url"
	"strings"
	"testing"
	"time"

	phttp "showcase/internal/platform/net/http"
	"showcase/internal/platform/net/middleware"
	kit "showcase/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func newRelay(t *testing.T, d Deps) *chi.Mux {
	t.Helper()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Use(middleware.CORS(middleware.CORSOptions{}))
	Register(r, d)
	return mux
}

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/relay?target="+url.QueryEscape(target), nil)
	req.Header.Set("Origin", "https://octocat.github.io")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestRelay_StreamsBodyWithCORS(t *testing.T) {
	up := kit.NewFakeServer(t)
	up.Handle("/favicon.png", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "relay-test" {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Set-Cookie", "secret=1")
		_, _ = w.Write([]byte("PNGDATA"))
	})
	mux := newRelay(t, Deps{UserAgent: "relay-test", AllowPrivate: true})

	rr := get(mux, up.URL+"/favicon.png")
	if rr.Code != http.StatusOK || rr.Body.String() != "PNGDATA" {
		t.Fatalf("code=%d body=%q", rr.Code, rr.Body)
	}
	if rr.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("content type = %q", rr.Header().Get("Content-Type"))
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatal("upstream cookies must not be forwarded")
	}
	if rr.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("missing CORS header")
	}
}

func TestRelay_PassesUpstreamStatus(t *testing.T) {
	up := kit.NewFakeServer(t)
	mux := newRelay(t, Deps{AllowPrivate: true})
	if rr := get(mux, up.URL+"/missing"); rr.Code != http.StatusNotFound {
		t.Fatalf("code=%d", rr.Code)
	}
}

func TestRelay_TruncatesAtMaxBytes(t *testing.T) {
	up := kit.NewFakeServer(t)
	up.Raw("/big", http.StatusOK, "text/plain", "0123456789")
	mux := newRelay(t, Deps{MaxBytes: 4, AllowPrivate: true})
	if rr := get(mux, up.URL+"/big"); rr.Body.String() != "0123" {
		t.Fatalf("body = %q", rr.Body)
	}
}

func TestRelay_RejectsBadTargets(t *testing.T) {
	mux := newRelay(t, Deps{})
	for _, target := range []string{"", "ftp://example.com/x", "/relative", "javascript:alert(1)"} {
		rr := get(mux, target)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("target %q: code=%d", target, rr.Code)
		}
		kit.MustContain(t, rr.Body.String(), "target")
	}
}

func TestRelay_UnreachableIs503(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	addr := dead.URL
	dead.Close()

	mux := newRelay(t, Deps{Client: &http.Client{Timeout: time.Second}})
	if rr := get(mux, addr+"/x"); rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("code=%d", rr.Code)
	}
}

func TestRelay_RefusesLoopbackTargets(t *testing.T) {
	internal := kit.NewFakeServer(t)
	internal.Raw("/admin", http.StatusOK, "text/plain", "internal-admin-secret")
	mux := newRelay(t, Deps{})

	rr := get(mux, internal.URL+"/admin")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("code=%d body=%q", rr.Code, rr.Body)
	}
	kit.MustNotContain(t, rr.Body.String(), "internal-admin-secret")
	kit.MustContain(t, rr.Body.String(), "target not allowed")
}

func TestNewClient_GuardsResolvedHostnames(t *testing.T) {
	internal := kit.NewFakeServer(t)
	internal.Raw("/admin", http.StatusOK, "text/plain", "internal-admin-secret")
	target := "http://localhost:" + internal.URL[strings.LastIndex(internal.URL, ":")+1:] + "/admin"
	client := NewClient(time.Second, false)

	_, err := client.Get(target)
	if !errors.Is(err, ErrBlockedTarget) {
		t.Fatalf("err = %v, want ErrBlockedTarget", err)
	}
}

func TestRelay_HTMLIsServedInert(t *testing.T) {
	up := kit.NewFakeServer(t)
	up.Raw("/page", http.StatusOK, "text/html; charset=utf-8", "<script>alert(document.cookie)</script>")
	mux := newRelay(t, Deps{AllowPrivate: true})

	rr := get(mux, up.URL+"/page")
	if rr.Code != http.StatusOK {
		t.Fatalf("code=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("missing nosniff")
	}
	kit.MustContain(t, rr.Header().Get("Content-Security-Policy"), "sandbox")
}

func TestPublicAddr(t *testing.T) {
	for in, want := range map[string]bool{
		"127.0.0.1":        false,
		"::1":              false,
		"10.1.2.3":         false,
		"192.168.0.10":     false,
		"172.16.5.4":       false,
		"169.254.169.254":  false,
		"100.64.0.1":       false,
		"0.0.0.0":          false,
		"::ffff:127.0.0.1": false,
		"fe80::1":          false,
		"140.82.112.3":     true,
		"2606:50c0::153":   true,
	} {
		if got := PublicAddr(netip.MustParseAddr(in)); got != want {
			t.Fatalf("PublicAddr(%s) = %v, want %v", in, got, want)
		}
	}
}
