// Package badges picks the dominant languages of a repository and maps them to icons
package badges

import (
	"strings"

	"showcase/internal/core/langs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultRatio is the share of the running maximum a language needs to keep the strip going
const DefaultRatio = 0.25

// DefaultIconTemplate points at the devicon CDN; {slug} is replaced by the language slug
const DefaultIconTemplate = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/{slug}/{slug}-original.svg"

// Select walks l in order and stops at the first language lighter than ratio times
// the heaviest language seen so far. The first language is always kept.
func Select(l langs.Languages, ratio float64) langs.Languages {
	if len(l) == 0 {
		return nil
	}
	if ratio <= 0 {
		ratio = DefaultRatio
	}
	out := langs.Languages{l[0]}
	maxSeen := l[0].Bytes
	for _, w := range l[1:] {
		if float64(w.Bytes) < ratio*float64(maxSeen) {
			break
		}
		out = append(out, w)
		if w.Bytes > maxSeen {
			maxSeen = w.Bytes
		}
	}
	return out
}

// slugs covers languages whose icon name is not just the lowercased language
var slugs = map[string]string{
	"c#":               "csharp",
	"c++":              "cplusplus",
	"css":              "css3",
	"html":             "html5",
	"shell":            "bash",
	"jupyter notebook": "jupyter",
	"vue":              "vuejs",
	"objective-c":      "objectivec",
	"f#":               "fsharp",
	"dockerfile":       "docker",
	"scss":             "sass",
	"vim script":       "vim",
	"hcl":              "terraform",
}

var lower = cases.Lower(language.Und)

// Slug maps a language name to its icon slug, the lowercased name by default
func Slug(name string) string {
	k := lower.String(strings.TrimSpace(name))
	if s, ok := slugs[k]; ok {
		return s
	}
	return k
}

// Icon is a rendered language badge
type Icon struct {
	Language string `json:"language"`
	Slug     string `json:"slug"`
	URL      string `json:"url"`
}

// IconURL expands tmpl for the language; an empty template uses DefaultIconTemplate
func IconURL(tmpl, name string) string {
	if tmpl == "" {
		tmpl = DefaultIconTemplate
	}
	return strings.ReplaceAll(tmpl, "{slug}", Slug(name))
}

// Icons selects the dominant languages and turns them into icons
func Icons(l langs.Languages, ratio float64, tmpl string) []Icon {
	sel := Select(l, ratio)
	if len(sel) == 0 {
		return nil
	}
	out := make([]Icon, 0, len(sel))
	for _, w := range sel {
		out = append(out, Icon{Language: w.Name, Slug: Slug(w.Name), URL: IconURL(tmpl, w.Name)})
	}
	return out
}

// Fallback returns the icon URL of the most used language, or false when l is empty
func Fallback(l langs.Languages, tmpl string) (string, bool) {
	w, ok := l.MostUsed()
	if !ok {
		return "", false
	}
	return IconURL(tmpl, w.Name), true
}
