// Package testkit provides testing helpers
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic fails the test unless fn panics and returns the recovered value
func MustPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
	return nil
}

// MustContain fails unless every needle occurs in haystack.
// On failure the haystack is written to a temp file and its path reported.
func MustContain(t testing.TB, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("expected output to contain %q\n\nfull output written to %s", n, dump(t, haystack))
		}
	}
}

// MustNotContain fails if any needle occurs in haystack
func MustNotContain(t testing.TB, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			t.Fatalf("expected output not to contain %q\n\nfull output written to %s", n, dump(t, haystack))
		}
	}
}

func dump(t testing.TB, haystack string) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + ".txt"
	p := filepath.Join(t.TempDir(), name)
	_ = os.WriteFile(p, []byte(haystack), 0o600)
	return p
}
