// Package swaggerkit mounts Swagger UI and the OpenAPI document
package swaggerkit

import (
	"encoding/json"
	"net/http"

	"showcase/internal/platform/logger"
	phttp "showcase/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI and doc.json are served
const DocsPath = "/api/docs"

// Mount the Swagger UI and JSON document if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/index.html", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON)
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(InstanceName),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}

// serveDocJSON serves the decorated document
func serveDocJSON(w http.ResponseWriter, r *http.Request) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		logger.C(r.Context()).Error().Err(err).Str("component", "docs").Msg("openapi document unreadable")
		http.Error(w, "spec parse error", http.StatusInternalServerError)
		return
	}
	decorate(spec)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(spec)
}
