// Package favicon parses icon link sizes and picks the icon closest to a target size
package favicon

import (
	"strconv"
	"strings"
)

// SizeKind tags a parsed sizes token
type SizeKind uint8

const (
	// Unspecified is a missing or unparseable token
	Unspecified SizeKind = iota
	// Any is the literal "any", used by scalable icons
	Any
	// Dimensions is a "WxH" pair
	Dimensions
)

// Size is one parsed entry of a sizes attribute
type Size struct {
	Kind SizeKind
	W, H int
}

// String renders the size back the way it is declared
func (s Size) String() string {
	switch s.Kind {
	case Any:
		return "any"
	case Dimensions:
		return strconv.Itoa(s.W) + "x" + strconv.Itoa(s.H)
	default:
		return ""
	}
}

// ParseSize parses one token: "any", "32x32", "96X96"
func ParseSize(tok string) Size {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if tok == "any" {
		return Size{Kind: Any}
	}
	ws, hs, ok := strings.Cut(tok, "x")
	if !ok {
		return Size{}
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return Size{}
	}
	return Size{Kind: Dimensions, W: w, H: h}
}

// ParseSizes splits a sizes attribute on whitespace; an empty attribute yields nil
func ParseSizes(attr string) []Size {
	fields := strings.Fields(attr)
	if len(fields) == 0 {
		return nil
	}
	out := make([]Size, 0, len(fields))
	for _, f := range fields {
		out = append(out, ParseSize(f))
	}
	return out
}
