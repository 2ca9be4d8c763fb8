// Package config is the typed settings view used once the logger is up.
// It layers parsing, defaults and logging over raw.Conf.
package config

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"showcase/internal/platform/config/raw"
	"showcase/internal/platform/logger"
)

// Conf is a namespaced view over environment variables, e.g. Prefix("SHOWCASE_").
// Blank values count as unset everywhere.
type Conf struct{ src raw.Conf }

// New returns a root Conf over the process environment
func New() Conf { return Conf{src: raw.New()} }

// FromMap returns a root Conf over m
func FromMap(m map[string]string) Conf { return Conf{src: raw.FromMap(m)} }

// Prefix returns a child Conf with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{src: c.src.Prefix(p)} }

func (c Conf) key(k string) string { return c.src.Name(k) }

func (c Conf) lookup(k string) (string, bool) {
	v := c.src.Get(k, "")
	return v, v != ""
}

// fatal logs at panic level, which panics with msg
func (c Conf) fatal(key, value, msg string) {
	ev := logger.Get().Panic().Str("key", c.key(key))
	if value != "" {
		ev = ev.Str("value", value)
	}
	ev.Msg(msg)
}

// mayParse returns def when key is unset and warns when the value does not parse
func mayParse[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

// MustString panics if the given key is unset
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		c.fatal(key, "", "missing required env")
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; unparsable values warn
func (c Conf) MayInt(key string, def int) int {
	return mayParse(c, key, def, "int", strconv.Atoi)
}

// MayFloat64 returns the value or def; unparsable values warn
func (c Conf) MayFloat64(key string, def float64) float64 {
	return mayParse(c, key, def, "float64", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

// MayBool accepts strconv bools plus yes/no and on/off
func (c Conf) MayBool(key string, def bool) bool {
	return mayParse(c, key, def, "bool", parseBool)
}

// MayDuration accepts time.ParseDuration syntax, e.g. 250ms or 2m
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return mayParse(c, key, def, "duration", time.ParseDuration)
}

// MayURL returns an absolute URL without trailing slash, or def; panics on a relative value
func (c Conf) MayURL(key, def string) string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if u, err := url.Parse(s); err != nil || !u.IsAbs() {
		c.fatal(key, s, "invalid absolute URL")
	}
	return strings.TrimRight(s, "/")
}

// MayPort returns a listen addr like ":4000"; panics outside 1..65535
func (c Conf) MayPort(key string, def int) string {
	s, ok := c.lookup(key)
	if !ok {
		return ":" + strconv.Itoa(def)
	}
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		c.fatal(key, s, "invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum matches the value case-insensitively against allowed and returns the allowed spelling.
// An unset key gives def; any other value panics.
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
