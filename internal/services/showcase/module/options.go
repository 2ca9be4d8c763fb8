package module

import (
	"strings"

	"showcase/internal/core/version"
	"showcase/internal/platform/config"
	"showcase/internal/services/showcase/domain"
)

// FromConfig reads SHOWCASE_* settings; SHOWCASE_USERNAME is required.
// The site defaults to the user's GitHub Pages root.
func FromConfig(cfg config.Conf) domain.Options {
	c := cfg.Prefix("SHOWCASE_")
	o := domain.Defaults(c.MustString("USERNAME"))

	o.APIBaseURL = c.MayURL("API_BASE_URL", o.APIBaseURL)
	o.SiteURL = c.MayURL("SITE_URL", "https://"+strings.ToLower(o.Username)+".github.io")
	o.RelayURL = c.MayURL("RELAY_URL", "")
	o.Strategy = domain.Strategy(c.MayEnum("STRATEGY", string(o.Strategy),
		string(domain.StrategyDeployed), string(domain.StrategyContents)))
	o.ExcludeArchived = c.MayBool("EXCLUDE_ARCHIVED", o.ExcludeArchived)
	o.ExcludeForks = c.MayBool("EXCLUDE_FORKS", o.ExcludeForks)
	o.FaviconTarget = c.MayInt("FAVICON_TARGET", o.FaviconTarget)
	o.BadgeRatio = c.MayFloat64("BADGE_RATIO", o.BadgeRatio)
	o.IconURLTemplate = c.MayString("ICON_URL_TEMPLATE", o.IconURLTemplate)
	o.Concurrency = c.MayInt("CONCURRENCY", o.Concurrency)
	o.HTTPTimeout = c.MayDuration("HTTP_TIMEOUT", o.HTTPTimeout)
	o.ViewLabel = c.MayString("VIEW_LABEL", o.ViewLabel)
	o.UserAgent = c.MayString("USER_AGENT", version.UserAgent())
	return o
}
