package testkit

import (
	"io"
	"net/http"
	"testing"
)

func TestFakeServer_RoutesAndCounts(t *testing.T) {
	fs := NewFakeServer(t)
	fs.JSON("/users/octocat", http.StatusOK, map[string]string{"login": "octocat"})
	fs.Raw("/page/", http.StatusOK, "text/html", "<title>x</title>")

	for range 2 {
		resp, err := http.Get(fs.URL + "/users/octocat")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		b, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		MustContain(t, string(b), `"login":"octocat"`)
	}

	resp, err := http.Get(fs.URL + "/missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if fs.Hits("/users/octocat") != 2 || fs.Hits("/page/") != 0 || fs.TotalHits() != 3 {
		t.Fatalf("unexpected hits: %d %d %d", fs.Hits("/users/octocat"), fs.Hits("/page/"), fs.TotalHits())
	}
}
