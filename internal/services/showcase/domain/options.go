package domain

import (
	"time"

	"showcase/internal/core/badges"
	"showcase/internal/core/favicon"
)

// Options are the showcase knobs, validated with go-playground tags
type Options struct {
	Username        string        `json:"username"          validate:"required,max=39"`
	APIBaseURL      string        `json:"api_base_url"      validate:"required,httpurl"`
	SiteURL         string        `json:"site_url"          validate:"omitempty,httpurl"`
	RelayURL        string        `json:"relay_url"         validate:"omitempty,httpurl"`
	Strategy        Strategy      `json:"strategy"          validate:"oneof=deployed contents"`
	ExcludeArchived bool          `json:"exclude_archived"`
	ExcludeForks    bool          `json:"exclude_forks"`
	FaviconTarget   int           `json:"favicon_target"    validate:"min=1,max=1024"`
	BadgeRatio      float64       `json:"badge_ratio"       validate:"gt=0,lte=1"`
	IconURLTemplate string        `json:"icon_url_template" validate:"required,contains={slug}"`
	Concurrency     int           `json:"concurrency"       validate:"min=1,max=64"`
	HTTPTimeout     time.Duration `json:"http_timeout"      validate:"min=1ms"`
	ViewLabel       string        `json:"view_label"        validate:"required"`
	UserAgent       string        `json:"user_agent"`
}

// Defaults returns Options for username with every knob at its default
func Defaults(username string) Options {
	return Options{
		Username:        username,
		APIBaseURL:      "https://api.github.com",
		Strategy:        StrategyDeployed,
		FaviconTarget:   favicon.DefaultTarget,
		BadgeRatio:      badges.DefaultRatio,
		IconURLTemplate: badges.DefaultIconTemplate,
		Concurrency:     8,
		HTTPTimeout:     10 * time.Second,
		ViewLabel:       "Afficher",
	}
}
