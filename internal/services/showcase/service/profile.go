package service

import (
	"context"

	perr "showcase/internal/platform/errors"
	"showcase/internal/services/showcase/domain"
)

// Profile implements domain.ProfilePort
func (s *Service) Profile(ctx context.Context) (domain.Profile, error) {
	u, err := s.gh.UserByLogin(ctx, s.opts.Username)
	if err != nil {
		return domain.Profile{}, perr.WrapOp(err, "profile", "load profile")
	}
	return domain.Profile{Login: u.Login, Name: u.Name, AvatarURL: u.AvatarURL, HTMLURL: u.HTMLURL}, nil
}
