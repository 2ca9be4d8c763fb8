// Package domain defines the types and ports of the showcase service
package domain

import (
	"time"

	"showcase/internal/core/langs"
	"showcase/internal/core/pagesrc"
)

// Strategy selects how the deployed page of a repository is located
type Strategy string

const (
	// StrategyDeployed fetches the homepage or <site>/<name>/
	StrategyDeployed Strategy = "deployed"
	// StrategyContents lists the repository root and fetches index.html's raw URL
	StrategyContents Strategy = "contents"
)

// Repository is one listed repository; immutable once fetched
type Repository struct {
	FullName    string    `json:"full_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage,omitempty"`
	HasPages    bool      `json:"has_pages"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PageSource resolves where the deployed page lives
func (r Repository) PageSource() pagesrc.Source { return pagesrc.Resolve(r.Homepage, r.HasPages) }

// CacheKey is the session cache key of the repository's enrichment record
func (r Repository) CacheKey() string { return "project:" + r.FullName }

// Enrichment is the derived data cached per repository for a session
type Enrichment struct {
	Image     string          `json:"image,omitempty"`
	Subtitle  string          `json:"subtitle,omitempty"`
	Languages langs.Languages `json:"languages,omitempty"`
	// Link is the deployed page, shown as the view link when set
	Link string `json:"link,omitempty"`
}

// Profile is the account whose repositories are shown
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}
