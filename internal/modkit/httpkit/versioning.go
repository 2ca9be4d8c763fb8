package httpkit

import (
	"net/http"
	"strconv"
	"strings"
)

// APIPrefix returns the mount path of an API version, e.g. "v1" -> "/api/v1".
// It panics unless version is a "v" followed by a positive number.
func APIPrefix(version string) string {
	v := strings.Trim(version, "/ ")
	n, err := strconv.Atoi(strings.TrimPrefix(v, "v"))
	if !strings.HasPrefix(v, "v") || err != nil || n < 1 {
		panic("invalid api version " + strconv.Quote(version))
	}
	return "/api/" + v
}

// MountAPI scopes mount to APIPrefix(version) with optional middleware
//
//	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
//	  showcase.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix(version), func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 mounts the current API version
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
