package github

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// GHStatusError wraps non-2xx HTTP responses from GitHub
type GHStatusError struct {
	Status int
	Body   string
	Path   string
}

// Error interface
func (e *GHStatusError) Error() string { return fmt.Sprintf("github %s: status %d", e.Path, e.Status) }

// HTTPStatus interface
func (e *GHStatusError) HTTPStatus() int { return e.Status }

func parseRateHeaders(h http.Header) (remaining int, reset time.Time) {
	remaining = atoi(h.Get("X-RateLimit-Remaining"))
	if sec := atoi(h.Get("X-RateLimit-Reset")); sec > 0 {
		reset = time.Unix(int64(sec), 0).UTC()
	}
	return
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

// IsRateLimited reports whether err is a GHStatusError with 429 or 403 status
func IsRateLimited(err error) bool {
	var gse *GHStatusError
	if errors.As(err, &gse) {
		// GitHub may use 429 or 403 (secondary RL)
		return gse.Status == http.StatusTooManyRequests || gse.Status == http.StatusForbidden
	}
	return false
}

// StatusOf returns the upstream status carried by err, 0 when none
func StatusOf(err error) int {
	var gse *GHStatusError
	if errors.As(err, &gse) {
		return gse.Status
	}
	return 0
}
