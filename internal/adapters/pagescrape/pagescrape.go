// Package pagescrape fetches a deployed page and extracts its title and icon links
package pagescrape

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"showcase/internal/core/favicon"
	"showcase/internal/core/version"
	perr "showcase/internal/platform/errors"
	"showcase/internal/platform/logger"
	str "showcase/internal/platform/strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const maxPage = 1 << 20

// Page is what enrichment needs from an HTML document
type Page struct {
	URL   string
	Title string
	Links []favicon.Link
}

// Fetcher downloads pages over plain HTTP GET
type Fetcher struct {
	http *http.Client
	ua   string
	log  logger.Logger
}

// NewFetcher builds a Fetcher; a nil client gets one with timeout
func NewFetcher(hc *http.Client, timeout time.Duration, userAgent string) *Fetcher {
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	return &Fetcher{http: hc, ua: userAgent, log: *logger.Named("pagescrape")}
}

// Fetch downloads rawURL and parses it. The returned Page.URL is rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad page url %q", rawURL)
	}
	req.Header.Set("User-Agent", f.ua)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := f.http.Do(req)
	if err != nil {
		return Page{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "fetch %s failed", rawURL)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Error().Err(cerr).Str("url", rawURL).Msg("close body failed")
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Page{}, perr.Newf(perr.CodeFromStatus(resp.StatusCode), "fetch %s returned %d", rawURL, resp.StatusCode)
	}

	p, err := Parse(io.LimitReader(resp.Body, maxPage))
	if err != nil {
		return Page{}, err
	}
	p.URL = rawURL
	f.log.Debug().Str("url", rawURL).Str("title", str.Truncate(p.Title, 80)).Int("links", len(p.Links)).Msg("page parsed")
	return p, nil
}

// Parse extracts the first <title> text and every <link> carrying a rel attribute
func Parse(r io.Reader) (Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Page{}, perr.Wrapf(err, perr.ErrorCodeJSON, "parse html failed")
	}
	var (
		p        Page
		gotTitle bool
	)
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Namespace != "" {
			continue
		}
		switch n.DataAtom {
		case atom.Title:
			if !gotTitle {
				p.Title = strings.TrimSpace(text(n))
				gotTitle = true
			}
		case atom.Link:
			rel := attr(n, "rel")
			if rel == "" {
				continue
			}
			p.Links = append(p.Links, favicon.Link{Rel: rel, Href: attr(n, "href"), Sizes: attr(n, "sizes")})
		}
	}
	return p, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	for c := range n.Descendants() {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
