package card

import (
	"embed"
	"html/template"
	"io"

	"showcase/internal/services/showcase/domain"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var tmpl = template.Must(
	template.New("showcase").
		Funcs(template.FuncMap{"glyph": func() string { return GlyphPath }}).
		ParseFS(templatesFS, "templates/*.gohtml"),
)

// Render writes the card as an HTML fragment
func Render(w io.Writer, s Snapshot) error {
	return tmpl.ExecuteTemplate(w, "card", s)
}

// PageData feeds the full page template
type PageData struct {
	Profile domain.Profile
	Cards   []Snapshot
	Error   string
}

// RenderPage writes the full HTML page with the profile picture and every card
func RenderPage(w io.Writer, d PageData) error {
	return tmpl.ExecuteTemplate(w, "page", d)
}
