package service

import (
	"context"

	"showcase/internal/adapters/github"
	"showcase/internal/platform/logger"
	str "showcase/internal/platform/strings"
	"showcase/internal/services/showcase/domain"
)

// List implements domain.ListerPort with a single listing call
func (s *Service) List(ctx context.Context) ([]domain.Repository, error) {
	rs, err := s.gh.ListUserRepos(ctx, s.opts.Username)
	if err != nil {
		if github.IsRateLimited(err) {
			logger.C(ctx).Warn().Str("component", "github").Str("user", s.opts.Username).
				Int("upstream_status", github.StatusOf(err)).Msg("listing rate limited")
		}
		return nil, domain.ListingError(err)
	}
	dropArchived := s.opts.ExcludeArchived || s.opts.Strategy == domain.StrategyContents

	out := make([]domain.Repository, 0, len(rs))
	for _, r := range rs {
		if r.Archived && dropArchived {
			continue
		}
		if r.Fork && s.opts.ExcludeForks {
			continue
		}
		out = append(out, toRepository(r))
	}
	return out, nil
}

func toRepository(r github.Repo) domain.Repository {
	return domain.Repository{
		FullName:    r.FullName,
		Name:        r.Name,
		Description: str.Deref(r.Description),
		HTMLURL:     r.HTMLURL,
		Homepage:    str.Deref(r.Homepage),
		HasPages:    r.HasPages,
		Archived:    r.Archived,
		Fork:        r.Fork,
		UpdatedAt:   r.UpdatedAt,
	}
}
