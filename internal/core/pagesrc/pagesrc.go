// Package pagesrc decides where a repository's deployed page lives and how to reach it
package pagesrc

import (
	"net/url"
	"strings"
)

// Kind tags a page source
type Kind uint8

const (
	// NoPage means the repository has nothing deployed
	NoPage Kind = iota
	// Homepage means the repository declares a homepage URL
	Homepage
	// PagesDefault means pages are enabled and served under <site>/<name>/
	PagesDefault
)

func (k Kind) String() string {
	switch k {
	case Homepage:
		return "homepage"
	case PagesDefault:
		return "pages"
	default:
		return "none"
	}
}

// Source is resolved once per repository
type Source struct {
	Kind Kind
	URL  string // set for Homepage only
}

// Resolve picks the homepage when declared, else the pages default when enabled
func Resolve(homepage string, hasPages bool) Source {
	if h := strings.TrimSpace(homepage); h != "" {
		return Source{Kind: Homepage, URL: h}
	}
	if hasPages {
		return Source{Kind: PagesDefault}
	}
	return Source{Kind: NoPage}
}

// PageURL returns the absolute URL of the deployed index page
// site is the base of the personal site, e.g. https://octocat.github.io
func (s Source) PageURL(site, repoName string) (string, bool) {
	switch s.Kind {
	case Homepage:
		u, err := url.Parse(s.URL)
		if err != nil || !u.IsAbs() {
			return "", false
		}
		return u.String(), true
	case PagesDefault:
		return DefaultPath(site, repoName)
	default:
		return "", false
	}
}

// DefaultPath builds <site>/<name>/; false when site is not an absolute URL
func DefaultPath(site, repoName string) (string, bool) {
	base, err := url.Parse(strings.TrimRight(site, "/"))
	if err != nil || !base.IsAbs() || repoName == "" {
		return "", false
	}
	return base.JoinPath(repoName).String() + "/", true
}

// ResolveRef resolves href against the page it was found on
func ResolveRef(pageURL, href string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
