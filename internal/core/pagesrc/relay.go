package pagesrc

import (
	"fmt"
	"net/url"
	"strings"
)

// Relay rewrites cross-host URLs through a query-parameter CORS relay
type Relay struct {
	site  *url.URL
	relay *url.URL
}

// NewRelay builds a Relay; empty relayURL disables rewriting
func NewRelay(siteURL, relayURL string) (Relay, error) {
	var r Relay
	if siteURL != "" {
		u, err := url.Parse(siteURL)
		if err != nil || !u.IsAbs() {
			return Relay{}, fmt.Errorf("site url %q is not absolute", siteURL)
		}
		r.site = u
	}
	if relayURL != "" {
		u, err := url.Parse(relayURL)
		if err != nil || !u.IsAbs() {
			return Relay{}, fmt.Errorf("relay url %q is not absolute", relayURL)
		}
		r.relay = u
	}
	return r, nil
}

// Enabled reports whether a relay is configured
func (r Relay) Enabled() bool { return r.relay != nil }

// SameHost reports whether target has the site's host (port included);
// the scheme is ignored, so an http:// asset on an https:// site is not relayed
func (r Relay) SameHost(target string) bool {
	if r.site == nil {
		return false
	}
	u, err := url.Parse(target)
	if err != nil || !u.IsAbs() {
		// relative references stay on the site
		return err == nil
	}
	return strings.EqualFold(u.Host, r.site.Host)
}

// Wrap returns <relay>?target=<escaped> for cross-host targets and target otherwise
func (r Relay) Wrap(target string) string {
	if r.relay == nil || target == "" || r.SameHost(target) || r.isRelayed(target) {
		return target
	}
	u := *r.relay
	q := u.Query()
	q.Set("target", target)
	u.RawQuery = q.Encode()
	return u.String()
}

func (r Relay) isRelayed(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.relay.Host) && u.Path == r.relay.Path && u.Query().Has("target")
}
