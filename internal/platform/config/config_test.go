package config

import (
	"testing"
	"time"

	kit "showcase/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	sc := root.Prefix("SHOWCASE_")
	if got := sc.key("USERNAME"); got != "SHOWCASE_USERNAME" {
		t.Fatalf("key() = %q, want %q", got, "SHOWCASE_USERNAME")
	}
	nested := sc.Prefix("HTTP_")
	if got := nested.key("PORT"); got != "SHOWCASE_HTTP_PORT" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_USERNAME", "  octocat ")
	if got := c.MustString("USERNAME"); got != "octocat" {
		t.Fatalf("MustString = %q, want %q", got, "octocat")
	}
	if r := kit.MustPanic(t, func() { _ = c.MustString("MISSING") }); r != "missing required env" {
		t.Fatalf("panic value = %v", r)
	}

	t.Setenv("APP_WS", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("WS") })
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("S_NAME", " showcase ")
	if got := c.MayString("NAME", "x"); got != "showcase" {
		t.Fatalf("MayString value = %q", got)
	}
}

func TestMayNumbers(t *testing.T) {
	c := New().Prefix("N_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("N_OK", " 7 ")
	if got := c.MayInt("OK", 0); got != 7 {
		t.Fatalf("MayInt ok = %d", got)
	}
	t.Setenv("N_BAD", "x")
	if got := c.MayInt("BAD", 3); got != 3 {
		t.Fatalf("MayInt bad -> default = %d", got)
	}

	t.Setenv("N_RATIO", "0.4")
	if got := c.MayFloat64("RATIO", 0.25); got != 0.4 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayFloat64("BAD", 0.25); got != 0.25 {
		t.Fatalf("MayFloat64 bad -> default = %v", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool default true expected")
	}
	t.Setenv("B_T", "true")
	if !c.MayBool("T", false) {
		t.Fatalf("MayBool true expected")
	}
	t.Setenv("B_ON", "on")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool on expected true")
	}
	t.Setenv("B_NO", "No")
	if c.MayBool("NO", true) {
		t.Fatalf("MayBool No expected false")
	}
	t.Setenv("B_BAD", "nope")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool bad -> default false expected")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("DUR_")
	if got := c.MayDuration("MISS", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration default expected")
	}
	t.Setenv("DUR_OK", "150ms")
	if got := c.MayDuration("OK", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration ok = %v", got)
	}
	t.Setenv("DUR_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad -> default expected")
	}
}

func TestMayURL(t *testing.T) {
	c := New().Prefix("U_")
	if got := c.MayURL("MISS", "https://api.github.com"); got != "https://api.github.com" {
		t.Fatalf("MayURL default = %q", got)
	}
	t.Setenv("U_SITE", "https://octocat.github.io/")
	if got := c.MayURL("SITE", ""); got != "https://octocat.github.io" {
		t.Fatalf("MayURL trims trailing slash, got %q", got)
	}
	t.Setenv("U_BAD", "/relative")
	kit.MustPanic(t, func() { _ = c.MayURL("BAD", "") })
}

func TestMayPort(t *testing.T) {
	c := New().Prefix("P_")
	if got := c.MayPort("MISS", 4000); got != ":4000" {
		t.Fatalf("MayPort default = %q", got)
	}
	t.Setenv("P_PORT", "8080")
	if got := c.MayPort("PORT", 4000); got != ":8080" {
		t.Fatalf("MayPort = %q", got)
	}
	t.Setenv("P_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MayPort("BAD", 1) })
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MayPort("OOB", 1) })
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"*"}
	if got := c.MayCSV("MISS", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	t.Setenv("CSV_EMPTY", " , ,")
	if got := c.MayCSV("EMPTY", def); len(got) != 1 {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "deployed", "deployed", "contents"); got != "deployed" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_STRATEGY", "Contents")
	if got := c.MayEnum("STRATEGY", "deployed", "deployed", "contents"); got != "contents" {
		t.Fatalf("MayEnum canonical value = %q", got)
	}
	if got := c.MayEnum("MISSING", "", "a"); got != "" {
		t.Fatalf("MayEnum empty def = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "deployed", "deployed", "contents") })
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"SHOWCASE_USERNAME":    "octocat",
		"SHOWCASE_CONCURRENCY": "3",
		"SHOWCASE_SITE_URL":    " ",
	}).Prefix("SHOWCASE_")

	if got := c.MustString("USERNAME"); got != "octocat" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MayInt("CONCURRENCY", 8); got != 3 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayURL("SITE_URL", "https://octocat.github.io"); got != "https://octocat.github.io" {
		t.Fatalf("blank value should use default, got %q", got)
	}
}
