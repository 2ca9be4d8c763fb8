package domain

import (
	"context"

	"showcase/internal/platform/session"
)

// ListerPort lists the repositories to show, filtered per Options
type ListerPort interface {
	List(ctx context.Context) ([]Repository, error)
}

// EnricherPort resolves the enrichment record of one repository, consulting cache first
type EnricherPort interface {
	Resolve(ctx context.Context, cache session.Cache, repo Repository) Enrichment
}

// ProfilePort returns the account profile
type ProfilePort interface {
	Profile(ctx context.Context) (Profile, error)
}
