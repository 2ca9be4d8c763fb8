package favicon

import "strings"

// DefaultTarget is the edge length in pixels icons are matched against
const DefaultTarget = 100

// Link is a <link> element reduced to what selection needs
type Link struct {
	Rel   string
	Href  string
	Sizes string
}

// IsIcon reports whether rel mentions an icon anywhere, matching the CSS
// selector link[rel*=icon]: "icon shortcut" and "apple-touch-icon-precomposed" count
func (l Link) IsIcon() bool {
	return strings.Contains(strings.ToLower(l.Rel), "icon")
}

// Select returns the href of the preferred icon link, or false if there is none.
//
// A link declaring "any" wins outright. Otherwise the sized link with the smallest
// |w-t|+|h-t| wins, first one on ties, stopping early on an exact match. Links larger
// than the target on both axes are not considered. When nothing sized qualifies the
// first icon link is used.
func Select(links []Link, target int) (string, bool) {
	if target <= 0 {
		target = DefaultTarget
	}
	if href, ok := firstAny(links); ok {
		return href, true
	}

	var (
		first     *Link
		best      *Link
		bestDelta = -1
	)

scan:
	for i := range links {
		l := &links[i]
		if !usable(*l) {
			continue
		}
		if first == nil {
			first = l
		}
		for _, sz := range ParseSizes(l.Sizes) {
			if sz.Kind != Dimensions {
				continue
			}
			nx, ny := sz.W-target, sz.H-target
			if nx > 0 && ny > 0 {
				continue
			}
			d := abs(nx) + abs(ny)
			if bestDelta < 0 || d < bestDelta {
				best, bestDelta = l, d
			}
			if d == 0 {
				break scan
			}
		}
	}

	switch {
	case best != nil:
		return best.Href, true
	case first != nil:
		return first.Href, true
	default:
		return "", false
	}
}

func usable(l Link) bool { return l.IsIcon() && strings.TrimSpace(l.Href) != "" }

func firstAny(links []Link) (string, bool) {
	for _, l := range links {
		if !usable(l) {
			continue
		}
		for _, sz := range ParseSizes(l.Sizes) {
			if sz.Kind == Any {
				return l.Href, true
			}
		}
	}
	return "", false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
