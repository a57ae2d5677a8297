package lauds

import (
	"regexp"
	"unicode/utf8"
)

// Occurrence selects which match of a start marker opens a window.
type Occurrence int

const (
	// First uses the first match of the start marker.
	First Occurrence = iota
	// Last uses the last match. Labels repeated in navigation chrome need it.
	Last
	// FirstFollowedBy uses the first match that is followed by a stop marker
	// within Locator.Lookahead characters. It skips optional blocks offered
	// as alternatives to the one in force.
	FirstFollowedBy
)

// Locator describes how to find a section window in flattened text.
type Locator struct {
	// Start is the marker that opens the window.
	Start *regexp.Regexp

	// Stops are candidate markers that close the window. The earliest match
	// of any of them wins, regardless of order.
	Stops []*regexp.Regexp

	// Occurrence selects which Start match is used.
	Occurrence Occurrence

	// Lookahead bounds the stop-marker search for FirstFollowedBy.
	Lookahead int

	// Limit bounds the window length in bytes; stop markers beyond it are
	// not considered. Zero means no bound.
	Limit int

	// Fallback bounds the window length in bytes when no stop marker
	// matches. Zero means the window runs to the end of the text.
	Fallback int
}

// Window is a bounded region of text located by a Locator.
type Window struct {
	// MarkerStart is the offset of the start marker itself.
	MarkerStart int

	// Start is the offset just past the start marker.
	Start int

	// End is the offset of the stop marker, or the applicable bound.
	End int

	// Terminated is true when a stop marker closed the window.
	Terminated bool

	// Text is the text between Start and End.
	Text string
}

// Marker compiles a case-insensitive marker pattern.
func Marker(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// Locate finds the window described by loc in text.
// Returns ENOTFOUND if the start marker does not occur.
func Locate(text string, loc Locator) (Window, error) {
	if loc.Start == nil {
		return Window{}, Errorf(EINVALID, "locator has no start marker")
	}

	matches := loc.Start.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return Window{}, Errorf(ENOTFOUND, "marker %q not found", loc.Start.String())
	}

	var m []int
	switch loc.Occurrence {
	case Last:
		m = matches[len(matches)-1]
	case FirstFollowedBy:
		for _, candidate := range matches {
			if _, ok := earliestStop(text, candidate[1], loc.Lookahead, loc.Stops); ok {
				m = candidate
				break
			}
		}
		if m == nil {
			return Window{}, Errorf(ENOTFOUND, "marker %q not followed by a stop marker within %d characters",
				loc.Start.String(), loc.Lookahead)
		}
	default:
		m = matches[0]
	}

	w := Window{MarkerStart: m[0], Start: m[1]}
	if end, ok := earliestStop(text, w.Start, loc.Limit, loc.Stops); ok {
		w.End = end
		w.Terminated = true
	} else {
		w.End = bound(text, w.Start, loc.Limit)
		if loc.Fallback > 0 {
			w.End = min(w.End, bound(text, w.Start, loc.Fallback))
		}
	}
	w.Text = text[w.Start:w.End]
	return w, nil
}

// earliestStop returns the offset of the earliest stop-marker match at or
// after from, searching at most limit bytes when limit > 0.
func earliestStop(text string, from, limit int, stops []*regexp.Regexp) (int, bool) {
	region := text[from:bound(text, from, limit)]
	best := -1
	for _, stop := range stops {
		loc := stop.FindStringIndex(region)
		if loc != nil && (best < 0 || loc[0] < best) {
			best = loc[0]
		}
	}
	if best < 0 {
		return 0, false
	}
	return from + best, true
}

// bound returns from+limit clamped to the text and moved back to a rune
// boundary, or len(text) when limit is zero.
func bound(text string, from, limit int) int {
	if limit <= 0 || from+limit >= len(text) {
		return len(text)
	}
	end := from + limit
	for end > from && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}
