package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "showcase/internal/platform/net/http"
	kit "showcase/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func mounted(t *testing.T, enabled bool) *chi.Mux {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), enabled)
	return mux
}

func get(mux http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestMount_Disabled(t *testing.T) {
	mux := mounted(t, false)
	for _, p := range []string{DocsPath, DocsPath + "/doc.json", DocsPath + "/index.html"} {
		if rr := get(mux, p); rr.Code != http.StatusNotFound {
			t.Fatalf("%s code=%d", p, rr.Code)
		}
	}
}

func TestMount_ServesUIAndDocument(t *testing.T) {
	mux := mounted(t, true)

	rr := get(mux, DocsPath)
	if rr.Code != http.StatusPermanentRedirect || rr.Header().Get("Location") != DocsPath+"/index.html" {
		t.Fatalf("redirect code=%d location=%q", rr.Code, rr.Header().Get("Location"))
	}

	rr = get(mux, DocsPath+"/index.html")
	if rr.Code != http.StatusOK {
		t.Fatalf("ui code=%d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), "swagger-ui")

	rr = get(mux, DocsPath+"/doc.json")
	if rr.Code != http.StatusOK || rr.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("doc code=%d cache=%q", rr.Code, rr.Header().Get("Cache-Control"))
	}
	var spec struct {
		OpenAPI string                               `json:"openapi"`
		Paths   map[string]map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.OpenAPI != "3.0.3" {
		t.Fatalf("openapi = %q", spec.OpenAPI)
	}
	for _, p := range []string{"/api/v1/projects", "/api/v1/profile", "/api/v1/meta/health", "/relay"} {
		op, ok := spec.Paths[p]["get"]
		if !ok {
			t.Fatalf("missing GET %s", p)
		}
		resps, _ := op["responses"].(map[string]any)
		if _, ok := resps["500"]; !ok {
			t.Fatalf("GET %s lacks the default 500", p)
		}
	}
}

func TestServeDocJSON_Unparseable(t *testing.T) {
	kit.Swap(t, &docReader, func() string { return "{" })
	rr := get(mounted(t, true), DocsPath+"/doc.json")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", rr.Code)
	}
}

func TestDecorate(t *testing.T) {
	spec := map[string]any{
		"swagger": "2.0",
		"paths": map[string]any{
			"/x": map[string]any{
				"get": map[string]any{"responses": map[string]any{"400": "kept"}},
			},
		},
	}
	decorate(spec)
	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("version not lifted: %v", spec)
	}
	if _, ok := spec["servers"]; !ok {
		t.Fatal("servers missing")
	}
	resps := spec["paths"].(map[string]any)["/x"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	if resps["400"] != "kept" || resps["500"] == nil {
		t.Fatalf("responses = %v", resps)
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if schemas["ErrorResponse"] == nil {
		t.Fatal("ErrorResponse schema missing")
	}
}
