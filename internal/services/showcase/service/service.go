// Package service lists repositories, resolves their enrichment records and loads the profile
package service

import (
	"net/http"

	"showcase/internal/adapters/github"
	"showcase/internal/adapters/pagescrape"
	"showcase/internal/core/pagesrc"
	perr "showcase/internal/platform/errors"
	"showcase/internal/services/showcase/domain"
)

// Service implements domain.ListerPort, domain.EnricherPort and domain.ProfilePort
type Service struct {
	gh    *github.Client
	pages *pagescrape.Fetcher
	relay pagesrc.Relay
	opts  domain.Options
}

// New builds a Service against the GitHub API and the deployed pages.
// hc may be nil; one with opts.HTTPTimeout is created.
func New(opts domain.Options, hc *http.Client) (*Service, error) {
	relay, err := pagesrc.NewRelay(opts.SiteURL, opts.RelayURL)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "relay configuration")
	}
	return &Service{
		gh: github.NewClient(github.Options{
			BaseURL:    opts.APIBaseURL,
			UserAgent:  opts.UserAgent,
			Timeout:    opts.HTTPTimeout,
			HTTPClient: hc,
		}),
		pages: pagescrape.NewFetcher(hc, opts.HTTPTimeout, opts.UserAgent),
		relay: relay,
		opts:  opts,
	}, nil
}
