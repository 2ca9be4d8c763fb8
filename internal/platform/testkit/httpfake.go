package testkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeServer is an httptest server with per-path handlers and hit counters
type FakeServer struct {
	*httptest.Server

	mu     sync.Mutex
	hits   map[string]int
	routes map[string]http.HandlerFunc
}

// NewFakeServer starts a server closed on test cleanup; unknown paths answer 404
func NewFakeServer(t *testing.T) *FakeServer {
	t.Helper()
	fs := &FakeServer{hits: map[string]int{}, routes: map[string]http.HandlerFunc{}}
	fs.Server = httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *FakeServer) serve(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	fs.hits[r.URL.Path]++
	h := fs.routes[r.URL.Path]
	fs.mu.Unlock()
	if h == nil {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Handle registers h for the exact path
func (fs *FakeServer) Handle(path string, h http.HandlerFunc) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.routes[path] = h
}

// JSON registers a handler answering status with v encoded as JSON
func (fs *FakeServer) JSON(path string, status int, v any) {
	fs.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	})
}

// Raw registers a handler answering status with body and content type
func (fs *FakeServer) Raw(path string, status int, contentType, body string) {
	fs.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Hits returns how many requests reached path
func (fs *FakeServer) Hits(path string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.hits[path]
}

// TotalHits returns the number of requests across all paths
func (fs *FakeServer) TotalHits() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	n := 0
	for _, v := range fs.hits {
		n += v
	}
	return n
}
