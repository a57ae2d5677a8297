package lauds

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResponsorySegments is the number of em-dash delimited segments a
// responsory must yield: statement, response, verse, shortened response,
// doxology, final response.
const ResponsorySegments = 6

// readingLookahead bounds how far after a READING marker the RESPONSORY
// marker must appear for that reading to be the one in force.
const readingLookahead = 1000

var (
	readingRe    = Marker(`READING`)
	responsoryRe = Marker(`RESPONSORY`)

	responsoryStops = []*regexp.Regexp{
		Marker(`\bOr:`),
		Marker(`GOSPEL\s+CANTICLE`),
		Marker(`CANTICLE\s+OF\s+ZECHARIAH`),
	}

	categoryTagRe = regexp.MustCompile(`^\[.*?\]\s*`)
	citationRe    = regexp.MustCompile(`^([1-3]?\s*[A-Za-z]+\s+\d+:\d+[a-z]?(?:-\d+[a-z]?)?)`)
	gloryMarkerRe = Marker(`Glory\s+(?:to\s+the\s+Father|be)\b`)
)

// ShortReadingLocator is the locator for the short reading: the first
// READING followed by a RESPONSORY, ending at that RESPONSORY.
var ShortReadingLocator = Locator{
	Start:      readingRe,
	Stops:      []*regexp.Regexp{responsoryRe},
	Occurrence: FirstFollowedBy,
	Lookahead:  readingLookahead,
}

// ResponsoryLocator is the locator for the responsory window.
var ResponsoryLocator = Locator{
	Start: responsoryRe,
	Stops: responsoryStops,
}

// ExtractShortReading extracts the short reading from the flattened
// psalmody text. A leading bracketed category tag is dropped. The citation
// is optional and empty when the body does not start with one.
func ExtractShortReading(text string) (ShortReading, error) {
	w, err := Locate(text, ShortReadingLocator)
	if err != nil {
		return ShortReading{}, err
	}

	section := strings.TrimSpace(w.Text)
	section = categoryTagRe.ReplaceAllString(section, "")

	var r ShortReading
	if loc := citationRe.FindStringSubmatchIndex(section); loc != nil {
		r.Citation = CollapseWhitespace(section[loc[2]:loc[3]])
		section = section[loc[1]:]
	}
	r.Text = CollapseWhitespace(section)
	if r.Text == "" {
		return ShortReading{}, Errorf(ENOTFOUND, "short reading is empty")
	}
	return r, nil
}

// ExtractResponsory parses the responsory into its three combined blocks.
//
// The window is split on em dashes. Each dash introduces a response; the part
// that follows a response up to the next dash also carries the next
// statement, which is separated at the doxology, at a repeat of an earlier
// segment, or at the first sentence boundary. Fewer than six segments means
// the structure is not understood and an EINVALID error is returned with no
// blocks. Segments beyond the sixth are ignored.
func ExtractResponsory(text string) ([]ResponsoryBlock, error) {
	w, err := Locate(text, ResponsoryLocator)
	if err != nil {
		return nil, err
	}

	segments := SplitResponsory(w.Text)
	if len(segments) < ResponsorySegments {
		return nil, Errorf(EINVALID, "responsory has %d segments, want %d", len(segments), ResponsorySegments)
	}

	join := func(call, response string) string {
		return call + "\n" + EmDash + " " + response
	}
	return []ResponsoryBlock{
		{Speaker: SpeakerAll, Text: join(segments[0], segments[1]), IncludeTitle: true},
		{Speaker: SpeakerPriest, Text: join(segments[2], segments[3])},
		{Speaker: SpeakerPriest, Text: join(segments[4], segments[5])},
	}, nil
}

// SplitResponsory splits a responsory window into its non-empty segments.
func SplitResponsory(window string) []string {
	var parts []string
	for _, p := range strings.Split(NormalizeDashes(window), EmDash) {
		if p = NormalizeLines(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	segments := []string{parts[0]}
	for i := 1; i < len(parts); i++ {
		if i == len(parts)-1 {
			segments = append(segments, parts[i])
			break
		}
		response, statement := splitResponse(parts[i], segments)
		segments = append(segments, response)
		if statement != "" {
			segments = append(segments, statement)
		}
	}
	return segments
}

// splitResponse separates the response that opens part from the statement
// that follows it.
func splitResponse(part string, known []string) (response, statement string) {
	if loc := gloryMarkerRe.FindStringIndex(part); loc != nil && loc[0] > 0 {
		return NormalizeLines(part[:loc[0]]), NormalizeLines(part[loc[0]:])
	}

	// A response usually repeats an earlier segment verbatim, line by line.
	lines := strings.Split(part, "\n")
	for n := 1; n < len(lines); n++ {
		head := CollapseWhitespace(strings.Join(lines[:n], " "))
		for _, k := range known {
			if head == CollapseWhitespace(k) {
				return strings.Join(lines[:n], "\n"), strings.Join(lines[n:], "\n")
			}
		}
	}

	if i := sentenceBoundary(part); i > 0 {
		return NormalizeLines(part[:i]), NormalizeLines(part[i:])
	}
	return part, ""
}

// sentenceBoundary returns the offset just past the first terminal
// punctuation mark that is followed by whitespace and an upper-case letter,
// or -1.
func sentenceBoundary(s string) int {
	for i, r := range s {
		if !isTerminal(r) {
			continue
		}
		rest := s[i+1:]
		trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
		if len(trimmed) == len(rest) || trimmed == "" {
			continue
		}
		next, _ := utf8.DecodeRuneInString(trimmed)
		if unicode.IsUpper(next) {
			return i + 1
		}
	}
	return -1
}
