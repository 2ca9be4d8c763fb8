package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"showcase/internal/adapters/github"
	"showcase/internal/core/badges"
	"showcase/internal/core/favicon"
	"showcase/internal/core/pagesrc"
	perr "showcase/internal/platform/errors"
	"showcase/internal/platform/logger"
	"showcase/internal/platform/session"
	"showcase/internal/services/showcase/domain"
)

// located says where a page is fetched from and what its relative links resolve against
type located struct {
	fetch string
	base  string
	link  string
}

// Resolve implements domain.EnricherPort. A cached record is returned untouched;
// otherwise the record is fetched, stored in cache and returned. Failures only
// leave fields empty. The fetch outlives a canceled caller and is bounded by
// the enrichment budget; records that hit a transport failure, cancellation or
// rate limiting are returned but not cached.
func (s *Service) Resolve(ctx context.Context, cache session.Cache, repo domain.Repository) domain.Enrichment {
	key := repo.CacheKey()
	if cache != nil {
		if raw, ok := cache.Get(key); ok {
			var e domain.Enrichment
			err := json.Unmarshal(raw, &e)
			if err == nil {
				return e
			}
			s.warn(ctx, repo, github.Malformed("session cache", err))
		}
	}

	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.budget())
	defer cancel()
	p := &pass{Service: s, repo: repo}
	e := p.fetch(fctx)
	if p.transient || fctx.Err() != nil {
		logger.C(ctx).Debug().Str("component", "enrich").Str("repo", repo.FullName).Msg("enrichment not cached")
		return e
	}
	if cache != nil {
		if raw, err := json.Marshal(e); err == nil {
			cache.Set(key, raw)
		}
	}
	return e
}

// budget bounds one enrichment: languages, contents listing and page fetch
func (s *Service) budget() time.Duration {
	if s.opts.HTTPTimeout <= 0 {
		return 30 * time.Second
	}
	return 3 * s.opts.HTTPTimeout
}

// pass is a single enrichment attempt for one repository
type pass struct {
	*Service
	repo domain.Repository

	// transient is set once any step fails in a way a later attempt may not
	transient bool
}

func (p *pass) fail(ctx context.Context, err error) {
	if isTransient(err) || ctx.Err() != nil {
		p.transient = true
	}
	p.warn(ctx, p.repo, err)
}

func isTransient(err error) bool {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeUnavailable, perr.ErrorCodeTooManyRequests:
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (p *pass) fetch(ctx context.Context) domain.Enrichment {
	var e domain.Enrichment
	repo := p.repo

	ls, err := p.gh.RepoLanguages(ctx, repo.FullName)
	if err != nil {
		p.fail(ctx, err)
	} else {
		e.Languages = ls
	}

	if loc, ok := p.locate(ctx); ok {
		page, err := p.pages.Fetch(ctx, loc.fetch)
		if err != nil {
			p.fail(ctx, err)
		} else {
			e.Link = loc.link
			e.Subtitle = strings.TrimSpace(page.Title)
			e.Image = p.icon(ctx, loc.base, page.Links)
		}
	}

	if e.Image == "" {
		if u, ok := badges.Fallback(e.Languages, p.opts.IconURLTemplate); ok {
			e.Image = u
		}
	}
	return e
}

// locate finds the deployed index page per strategy
func (p *pass) locate(ctx context.Context) (located, bool) {
	if p.opts.Strategy == domain.StrategyContents {
		return p.locateContents(ctx)
	}
	pageURL, ok := p.repo.PageSource().PageURL(p.opts.SiteURL, p.repo.Name)
	if !ok {
		return located{}, false
	}
	return located{fetch: p.relay.Wrap(pageURL), base: pageURL, link: pageURL}, true
}

func (p *pass) locateContents(ctx context.Context) (located, bool) {
	entries, err := p.gh.RepoContents(ctx, p.repo.FullName)
	if err != nil {
		p.fail(ctx, err)
		return located{}, false
	}
	idx, ok := github.FindFile(entries, "index.html")
	if !ok || idx.DownloadURL == "" {
		return located{}, false
	}
	loc := located{fetch: idx.DownloadURL, base: idx.DownloadURL}
	if site, ok := pagesrc.DefaultPath(p.opts.SiteURL, p.repo.Name); ok {
		loc.base, loc.link = site, site
	}
	return loc, true
}

// icon picks the favicon, resolves it against base and routes it through the relay when cross-host
func (p *pass) icon(ctx context.Context, base string, links []favicon.Link) string {
	href, ok := favicon.Select(links, p.opts.FaviconTarget)
	if !ok {
		return ""
	}
	abs, err := pagesrc.ResolveRef(base, href)
	if err != nil {
		p.fail(ctx, err)
		return ""
	}
	return p.relay.Wrap(abs)
}

func (s *Service) warn(ctx context.Context, repo domain.Repository, err error) {
	l := logger.C(ctx).With().Str("component", "enrich").Logger()
	l.Warn().
		Err(domain.EnrichmentError(repo.FullName, err)).
		Str("repo", repo.FullName).
		Bool("malformed", domain.IsMalformed(err)).
		Bool("rate_limited", github.IsRateLimited(err)).
		Int("upstream_status", github.StatusOf(err)).
		Bool("relayed", s.relay.Enabled()).
		Msg("enrichment degraded")
}
