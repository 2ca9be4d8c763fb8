package http

import (
	"errors"
	"fmt"
	"mime"
	"net"
	stdhttp "net/http"
	"net/netip"
	"strings"
	"syscall"
	"time"
)

// ErrBlockedTarget is returned when a forward would dial a non-public address
var ErrBlockedTarget = errors.New("relay target is not a public address")

// NewClient returns the relay's upstream client. Unless allowPrivate is set,
// every dial (redirect hops included) is checked after DNS resolution and
// refused for loopback, private, link-local, multicast and unspecified IPs.
func NewClient(timeout time.Duration, allowPrivate bool) *stdhttp.Client {
	d := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}
	if !allowPrivate {
		d.Control = guardDial
	}
	return &stdhttp.Client{
		Timeout: timeout,
		Transport: &stdhttp.Transport{
			// no env proxy: the guard must see the real peer
			Proxy:               nil,
			DialContext:         d.DialContext,
			TLSHandshakeTimeout: timeout,
			MaxIdleConns:        32,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func guardDial(_, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedTarget, address)
	}
	if !PublicAddr(ap.Addr()) {
		return fmt.Errorf("%w: %s", ErrBlockedTarget, ap.Addr())
	}
	return nil
}

// PublicAddr reports whether a is routable on the public internet
func PublicAddr(a netip.Addr) bool {
	a = a.Unmap()
	switch {
	case !a.IsValid(),
		a.IsUnspecified(),
		a.IsLoopback(),
		a.IsPrivate(),
		a.IsLinkLocalUnicast(),
		a.IsLinkLocalMulticast(),
		a.IsInterfaceLocalMulticast(),
		a.IsMulticast():
		return false
	}
	// carrier-grade NAT
	if a.Is4() && netip.MustParsePrefix("100.64.0.0/10").Contains(a) {
		return false
	}
	return true
}

// safeContentType keeps image types and serves everything else as plain text
// so relayed markup can never render on this origin
func safeContentType(upstream string) string {
	mt, _, err := mime.ParseMediaType(upstream)
	if err == nil && strings.HasPrefix(mt, "image/") {
		return upstream
	}
	return "text/plain; charset=utf-8"
}
