// Package widget drives a showcase render: list once, render cards in order, enrich them in parallel
package widget

import (
	"context"

	"showcase/internal/core/badges"
	"showcase/internal/platform/logger"
	"showcase/internal/platform/session"
	str "showcase/internal/platform/strings"
	"showcase/internal/services/showcase/card"
	"showcase/internal/services/showcase/domain"

	"golang.org/x/sync/errgroup"
)

// Container receives cards in listing order
type Container interface {
	Append(c *card.Card)
}

// ProfileSource provides the profile picture shown next to the cards
type ProfileSource interface {
	Profile(ctx context.Context) (domain.Profile, error)
}

// Widget is constructed once and rendered per request
type Widget struct {
	lister   domain.ListerPort
	enricher domain.EnricherPort
	profiles ProfileSource
	opts     domain.Options
}

// New wires a Widget from its collaborators
func New(l domain.ListerPort, e domain.EnricherPort, p ProfileSource, opts domain.Options) *Widget {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Widget{lister: l, enricher: e, profiles: p, opts: opts}
}

// Render lists the repositories once and appends one card per repository to c
// before any enrichment starts. Cards are then enriched concurrently against cache.
// Only the listing can fail.
func (w *Widget) Render(ctx context.Context, cache session.Cache, c Container) error {
	repos, err := w.lister.List(ctx)
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("component", "widget").Msg("listing failed")
		return err
	}

	cards := make([]*card.Card, 0, len(repos))
	for _, r := range repos {
		cd := card.New(r)
		c.Append(cd)
		cards = append(cards, cd)
	}

	var g errgroup.Group
	g.SetLimit(w.opts.Concurrency)
	for _, cd := range cards {
		g.Go(func() error {
			w.Enrich(ctx, cache, cd)
			return nil
		})
	}
	return g.Wait()
}

// Enrich resolves and applies the enrichment of one card
func (w *Widget) Enrich(ctx context.Context, cache session.Cache, cd *card.Card) {
	Apply(cd, w.enricher.Resolve(ctx, cache, cd.Repository()), w.opts)
}

// Profile loads the profile; failures are logged and yield the login alone
func (w *Widget) Profile(ctx context.Context) domain.Profile {
	if w.profiles == nil {
		return domain.Profile{Login: w.opts.Username}
	}
	p, err := w.profiles.Profile(ctx)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("component", "widget").Msg("profile unavailable")
		return domain.Profile{Login: w.opts.Username}
	}
	return p
}

// Apply writes an enrichment record onto a card
func Apply(cd *card.Card, e domain.Enrichment, opts domain.Options) {
	cd.SetSubtitle(str.Or(e.Subtitle, cd.Repository().FullName))
	cd.SetImage(e.Image)
	if e.Link != "" {
		cd.AddLink(str.Or(opts.ViewLabel, "Afficher"), e.Link)
	}
	cd.SetLanguages(badges.Icons(e.Languages, opts.BadgeRatio, opts.IconURLTemplate))
}
