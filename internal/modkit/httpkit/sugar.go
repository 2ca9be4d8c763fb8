package httpkit

import (
	"io"
	"net/http"
)

// Get registers a no-input JSON handler
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
	r.Head(path, Call(h))
}

// GetPage registers an HTML handler
func GetPage(r Router, path string, h func(*http.Request) (func(io.Writer) error, error)) {
	r.Get(path, Page(h))
}
