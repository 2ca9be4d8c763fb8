package card

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"showcase/internal/core/badges"
	kit "showcase/internal/platform/testkit"
	"showcase/internal/services/showcase/domain"
)

var hello = domain.Repository{
	FullName:    "octocat/hello",
	Name:        "hello",
	Description: "Says hi",
	HTMLURL:     "https://github.com/octocat/hello",
}

func TestNew_InitialState(t *testing.T) {
	s := New(hello).Snapshot()
	if s.Title != "hello" || s.TitleHref != hello.HTMLURL || s.Description != "Says hi" {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	if len(s.Links) != 1 || s.Links[0] != (Link{Label: "GitHub", Href: hello.HTMLURL}) {
		t.Fatalf("links = %+v", s.Links)
	}
	if !s.Glyph || s.Image != "" || s.Status != StatusNone {
		t.Fatalf("expected glyph and no status: %+v", s)
	}
}

func TestNew_Status(t *testing.T) {
	r := hello
	r.Archived, r.Fork = true, true
	if st := New(r).Snapshot().Status; st != StatusArchived {
		t.Fatalf("archived wins, got %q", st)
	}
	r.Archived = false
	if st := New(r).Snapshot().Status; st != StatusFork {
		t.Fatalf("status = %q", st)
	}
}

func TestAddLink_PrependsAndRetargetsTitle(t *testing.T) {
	c := New(hello)
	c.AddLink("Afficher", "https://octocat.github.io/hello/")
	s := c.Snapshot()
	if s.TitleHref != "https://octocat.github.io/hello/" {
		t.Fatalf("title href = %q", s.TitleHref)
	}
	if len(s.Links) != 2 || s.Links[0].Label != "Afficher" || s.Links[1].Label != "GitHub" {
		t.Fatalf("links = %+v", s.Links)
	}
}

func TestSetImage_EmptyRestoresGlyph(t *testing.T) {
	c := New(hello)
	c.SetImage("https://octocat.github.io/hello/icon.png")
	if s := c.Snapshot(); s.Glyph || s.Image == "" {
		t.Fatalf("image not applied: %+v", s)
	}
	c.SetImage("")
	if !c.Snapshot().Glyph {
		t.Fatal("empty image should restore the glyph")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := New(hello)
	c.SetLanguages([]badges.Icon{{Language: "Go", Slug: "go"}})
	s := c.Snapshot()
	s.Links[0].Label = "changed"
	s.Languages[0].Language = "changed"
	again := c.Snapshot()
	if again.Links[0].Label != "GitHub" || again.Languages[0].Language != "Go" {
		t.Fatalf("snapshot aliases card state: %+v", again)
	}
}

func TestRender_GlyphThenImage(t *testing.T) {
	c := New(hello)
	var buf bytes.Buffer
	if err := Render(&buf, c.Snapshot()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	kit.MustContain(t, out, `viewBox="0 0 24 24"`)
	kit.MustContain(t, out, GlyphPath[:40])
	kit.MustContain(t, out, `href="https://github.com/octocat/hello"`)
	kit.MustContain(t, out, "Says hi")

	c.SetImage("https://cdn.example.com/i.png")
	c.SetSubtitle("Hello <World>")
	c.SetLanguages([]badges.Icon{{Language: "Go", Slug: "go", URL: "https://icons.example.com/go.svg"}})
	buf.Reset()
	if err := Render(&buf, c.Snapshot()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out = buf.String()
	kit.MustNotContain(t, out, "<svg")
	kit.MustContain(t, out, `src="https://cdn.example.com/i.png"`)
	kit.MustContain(t, out, "Hello &lt;World&gt;")
	kit.MustContain(t, out, `alt="Go"`)
}

func TestRenderPage_ProfileAndOrder(t *testing.T) {
	var l List
	for _, name := range []string{"one", "two", "three"} {
		r := hello
		r.Name, r.FullName = name, "octocat/"+name
		l.Append(New(r))
	}
	var buf bytes.Buffer
	err := RenderPage(&buf, PageData{
		Profile: domain.Profile{Login: "octocat", AvatarURL: "https://avatars.example.com/u/1", HTMLURL: "https://github.com/octocat"},
		Cards:   l.Snapshots(),
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	out := buf.String()
	kit.MustContain(t, out, `id="profile-picture" src="https://avatars.example.com/u/1"`)
	if strings.Count(out, `class="card"`) != 3 {
		t.Fatalf("want 3 cards in:\n%s", out)
	}
	one, two, three := strings.Index(out, "octocat/one"), strings.Index(out, "octocat/two"), strings.Index(out, "octocat/three")
	if one >= two || two >= three {
		t.Fatalf("cards out of order: %d %d %d", one, two, three)
	}
}

func TestCard_ConcurrentMutation(t *testing.T) {
	c := New(hello)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.SetSubtitle("sub")
			c.SetImage("https://cdn.example.com/i.png")
			c.AddLink("x", "https://example.com")
			_ = c.Snapshot()
		}()
	}
	wg.Wait()
	if n := len(c.Snapshot().Links); n != 17 {
		t.Fatalf("links = %d", n)
	}
}
