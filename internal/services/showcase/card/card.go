// Package card builds and renders project cards
package card

import (
	"sync"

	"showcase/internal/core/badges"
	"showcase/internal/services/showcase/domain"
)

// GlyphPath is the generic picture glyph shown until an icon is known (24x24 viewBox)
const GlyphPath = "M20 5H4V19L13.2923 9.70649C13.6828 9.31595 14.3159 9.31591 14.7065 9.70641L20 15.0104V5ZM2 3.9934C2 3.44476 2.45531 3 2.9918 3H21.0082C21.556 3 22 3.44495 22 3.9934V20.0066C22 20.5552 21.5447 21 21.0082 21H2.9918C2.44405 21 2 20.5551 2 20.0066V3.9934ZM8 11C6.89543 11 6 10.1046 6 9C6 7.89543 6.89543 7 8 7C9.10457 7 10 7.89543 10 9C10 10.1046 9.10457 11 8 11Z"

// Status is the badge shown for archived or forked repositories
type Status string

// Statuses
const (
	StatusNone     Status = ""
	StatusArchived Status = "archived"
	StatusFork     Status = "fork"
)

// Link is one entry of the link list
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Card is bound to one repository and mutated in place as enrichment arrives.
// All methods are safe for concurrent use.
type Card struct {
	repo domain.Repository

	mu          sync.RWMutex
	title       string
	titleHref   string
	subtitle    string
	description string
	links       []Link
	image       string
	languages   []badges.Icon
	status      Status
}

// New builds the initial card: name, description, the GitHub link, status and the glyph
func New(repo domain.Repository) *Card {
	c := &Card{repo: repo}
	c.SetTitle(repo.Name)
	c.SetDescription(repo.Description)
	c.AddLink("GitHub", repo.HTMLURL)
	switch {
	case repo.Archived:
		c.status = StatusArchived
	case repo.Fork:
		c.status = StatusFork
	}
	return c
}

// Repository returns the descriptor the card is bound to
func (c *Card) Repository() domain.Repository { return c.repo }

// SetTitle replaces the title text
func (c *Card) SetTitle(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
}

// SetSubtitle replaces the subtitle text
func (c *Card) SetSubtitle(subtitle string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subtitle = subtitle
}

// SetDescription replaces the description text
func (c *Card) SetDescription(description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.description = description
}

// AddLink prepends a link and points the title at it
func (c *Card) AddLink(label, href string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.titleHref = href
	c.links = append([]Link{{Label: label, Href: href}}, c.links...)
}

// SetImage replaces the icon; an empty src restores the glyph
func (c *Card) SetImage(src string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = src
}

// SetLanguages replaces the language icon strip
func (c *Card) SetLanguages(icons []badges.Icon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.languages = append([]badges.Icon(nil), icons...)
}

// Snapshot is an immutable view of a card, used for rendering and JSON
type Snapshot struct {
	FullName    string        `json:"full_name"`
	Title       string        `json:"title"`
	TitleHref   string        `json:"title_href"`
	Subtitle    string        `json:"subtitle"`
	Description string        `json:"description,omitempty"`
	Links       []Link        `json:"links"`
	Image       string        `json:"image,omitempty"`
	Glyph       bool          `json:"glyph"`
	Languages   []badges.Icon `json:"languages,omitempty"`
	Status      Status        `json:"status,omitempty"`
}

// Snapshot copies the current state
func (c *Card) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		FullName:    c.repo.FullName,
		Title:       c.title,
		TitleHref:   c.titleHref,
		Subtitle:    c.subtitle,
		Description: c.description,
		Links:       append([]Link(nil), c.links...),
		Image:       c.image,
		Glyph:       c.image == "",
		Languages:   append([]badges.Icon(nil), c.languages...),
		Status:      c.status,
	}
}

// List is an ordered, concurrency safe container of cards
type List struct {
	mu    sync.RWMutex
	cards []*Card
}

// Append adds c at the end
func (l *List) Append(c *Card) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cards = append(l.cards, c)
}

// Len returns the number of cards
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cards)
}

// Snapshots returns the cards' snapshots in insertion order
func (l *List) Snapshots() []Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Snapshot, 0, len(l.cards))
	for _, c := range l.cards {
		out = append(out, c.Snapshot())
	}
	return out
}
