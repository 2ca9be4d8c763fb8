package pagesrc

import (
	"net/url"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		homepage string
		pages    bool
		want     Kind
	}{
		{"https://demo.example.com", true, Homepage},
		{"  https://demo.example.com ", false, Homepage},
		{"", true, PagesDefault},
		{"   ", false, NoPage},
	}
	for _, c := range cases {
		if got := Resolve(c.homepage, c.pages); got.Kind != c.want {
			t.Fatalf("Resolve(%q,%v) = %v, want %v", c.homepage, c.pages, got.Kind, c.want)
		}
	}
	if Resolve(" https://a.b ", false).URL != "https://a.b" {
		t.Fatal("homepage should be trimmed")
	}
}

func TestPageURL(t *testing.T) {
	site := "https://octocat.github.io/"
	if u, ok := Resolve("https://demo.example.com/app", true).PageURL(site, "demo"); !ok || u != "https://demo.example.com/app" {
		t.Fatalf("homepage url = %q %v", u, ok)
	}
	if u, ok := Resolve("", true).PageURL(site, "demo"); !ok || u != "https://octocat.github.io/demo/" {
		t.Fatalf("pages url = %q %v", u, ok)
	}
	if _, ok := Resolve("", true).PageURL("", "demo"); ok {
		t.Fatal("pages without site should not resolve")
	}
	if _, ok := Resolve("", false).PageURL(site, "demo"); ok {
		t.Fatal("no page should not resolve")
	}
	if _, ok := Resolve("demo.example.com", false).PageURL(site, "demo"); ok {
		t.Fatal("scheme-less homepage should not resolve")
	}
}

func TestResolveRef(t *testing.T) {
	cases := []struct{ page, href, want string }{
		{"https://octocat.github.io/demo/", "favicon.ico", "https://octocat.github.io/demo/favicon.ico"},
		{"https://octocat.github.io/demo/", "/img/icon.png", "https://octocat.github.io/img/icon.png"},
		{"https://octocat.github.io/demo/", "https://cdn.example.com/i.png", "https://cdn.example.com/i.png"},
		{"https://octocat.github.io/demo/index.html", "./icons/32.png", "https://octocat.github.io/demo/icons/32.png"},
	}
	for _, c := range cases {
		got, err := ResolveRef(c.page, c.href)
		if err != nil || got != c.want {
			t.Fatalf("ResolveRef(%q,%q) = %q, %v; want %q", c.page, c.href, got, err, c.want)
		}
	}
}

func TestRelay_WrapCrossHostOnly(t *testing.T) {
	r, err := NewRelay("https://octocat.github.io", "https://relay.example.com/")
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	same := "https://octocat.github.io/demo/favicon.ico"
	if got := r.Wrap(same); got != same {
		t.Fatalf("same host wrapped: %q", got)
	}
	plain := "http://octocat.github.io/demo/favicon.ico"
	if got := r.Wrap(plain); got != plain {
		t.Fatalf("same host over http wrapped: %q", got)
	}

	cross := "https://demo.example.com/favicon.png?v=2"
	got := r.Wrap(cross)
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse wrapped: %v", err)
	}
	if u.Host != "relay.example.com" || u.Query().Get("target") != cross {
		t.Fatalf("wrapped = %q", got)
	}
	if again := r.Wrap(got); again != got {
		t.Fatalf("double wrapped: %q", again)
	}
}

func TestRelay_Disabled(t *testing.T) {
	r, err := NewRelay("https://octocat.github.io", "")
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	if r.Enabled() {
		t.Fatal("relay should be disabled")
	}
	if got := r.Wrap("https://elsewhere.example.com/x"); got != "https://elsewhere.example.com/x" {
		t.Fatalf("disabled relay rewrote %q", got)
	}
	if _, err := NewRelay("/relative", ""); err == nil {
		t.Fatal("expected error for relative site")
	}
	if _, err := NewRelay("", "relay"); err == nil {
		t.Fatal("expected error for relative relay")
	}
}

func TestRelay_SameHost(t *testing.T) {
	r, _ := NewRelay("https://octocat.github.io", "https://relay.example.com")
	cases := map[string]bool{
		"https://OCTOCAT.github.io/x":      true,
		"https://cdn.example.com/x":        false,
		"http://octocat.github.io/x":       true,
		"https://octocat.github.io:8443/x": false,
		"/demo/icon.png":                   true,
	}
	for in, want := range cases {
		if got := r.SameHost(in); got != want {
			t.Fatalf("SameHost(%q) = %v, want %v", in, got, want)
		}
	}
	noSite, _ := NewRelay("", "https://relay.example.com")
	if noSite.SameHost("https://a.b/c") {
		t.Fatal("without a site nothing is same host")
	}
}
