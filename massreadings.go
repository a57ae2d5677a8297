package lauds

import (
	"regexp"
	"strings"
)

// Fixed formulas of the Liturgy of the Word.
const (
	ReadingClosing = "The word of the Lord."
	GospelClosing  = "The Gospel of the Lord."
	GospelResponse = "Praise to you, Lord Jesus Christ."
	ResponseSign   = "℟."
)

// LineWidth is the width first-reading lines are wrapped to.
const LineWidth = 80

// introLineLimit is the longest line accepted as the opening formula of a
// reading before falling back to the first sentence.
const introLineLimit = 120

var (
	firstReadingCitationRe = regexp.MustCompile(`(?i)First\s+Reading[ \t]*\n\s*([\w \t,:.-]+?)\s*\n`)
	readingFromRe          = Marker(`A\s+reading\s+from\s`)
	readingClosingRe       = Marker(`The\s+word\s+of\s+the\s+Lord\.?`)

	psalmCitationRe = regexp.MustCompile(`(?i)Responsorial\s+Psalm\s*((?:Ps?\s*)?\d+[a-e]?(?:\s*[:,-]\s*\d+[a-e]?)*)`)
	responseRefRe   = regexp.MustCompile(`℟\.\s*\(([^)]+)\)\s*([^\n]+?)\s*(?:or:|\n|$)`)
	responseRe      = regexp.MustCompile(`℟\.\s*([^\n]+?)\s*(?:or:|\n|$)`)
	responseLineRe  = regexp.MustCompile(`℟\.[^\n]*(?:\n\s*or:\s*\n\s*℟\.[^\n]*)?`)
	blankLinesRe    = regexp.MustCompile(`\n\s*\n+`)
	trailingAlleRe  = regexp.MustCompile(`(?i)\s+Alleluia\.\s*$`)

	gospelRubricLineRe = regexp.MustCompile(`(?im)^.*(?:At the end of the Gospel|Then he kisses|Through the words of the Gospel).*$`)
)

// ExtractFirstReading extracts the first Mass reading from the flattened
// readings text. The body runs from the "A reading from" formula to "The
// word of the Lord." and is re-split into sentences wrapped to LineWidth.
// The opening formula is the first line and the closing formula the last.
func ExtractFirstReading(text string) (FirstReading, error) {
	var r FirstReading
	if m := firstReadingCitationRe.FindStringSubmatch(text); m != nil {
		r.Citation = CollapseWhitespace(m[1])
	}

	w, err := Locate(text, Locator{
		Start: readingFromRe,
		Stops: []*regexp.Regexp{readingClosingRe},
	})
	if err != nil {
		return r, err
	}
	if !w.Terminated {
		return r, Errorf(ENOTFOUND, "first reading has no closing formula")
	}

	reading := text[w.MarkerStart:w.End]
	intro, body := splitIntro(reading)

	r.Verses = append(r.Verses, intro)
	for _, sentence := range SplitSentences(body) {
		r.Verses = append(r.Verses, WrapLines(sentence, LineWidth)...)
	}
	r.Verses = append(r.Verses, ReadingClosing)
	return r, nil
}

// splitIntro separates the "A reading from ..." line from the body.
func splitIntro(reading string) (intro, body string) {
	line, rest, _ := strings.Cut(reading, "\n")
	line = CollapseWhitespace(line)
	if line != "" && len(line) <= introLineLimit {
		return EnsureTerminalPunctuation(line), rest
	}

	sentences := SplitSentences(reading)
	if len(sentences) == 0 {
		return "", ""
	}
	first := sentences[0]
	if len(first) > introLineLimit {
		first = truncateWords(first, LineWidth)
	}
	return EnsureTerminalPunctuation(first), strings.Join(sentences[1:], " ")
}

// ParsePsalmCitation extracts the citation following a "Responsorial Psalm"
// label, normalized to start with "Ps ".
func ParsePsalmCitation(text string) (string, error) {
	m := psalmCitationRe.FindStringSubmatch(text)
	if m == nil {
		return "", Errorf(ENOTFOUND, "responsorial psalm citation not found")
	}
	citation := CollapseWhitespace(m[1])
	citation = strings.TrimRight(citation, ", -")
	if !strings.HasPrefix(citation, "Ps ") {
		citation = "Ps " + strings.TrimSpace(strings.TrimLeft(citation, "Psp"))
	}
	return citation, nil
}

// PsalmResponse is the congregational response of the responsorial psalm.
type PsalmResponse struct {
	// Full is the response as announced, with its reference.
	Full string
	// Short is the response text repeated after each stanza.
	Short string
}

// ParsePsalmResponse parses a "℟. (ref) text" line.
func ParsePsalmResponse(text string) (PsalmResponse, error) {
	if m := responseRefRe.FindStringSubmatch(text); m != nil {
		short := strings.TrimSpace(m[2])
		return PsalmResponse{
			Full:  ResponseSign + " (" + strings.TrimSpace(m[1]) + ") " + short,
			Short: short,
		}, nil
	}
	if m := responseRe.FindStringSubmatch(text); m != nil {
		short := strings.TrimSpace(m[1])
		return PsalmResponse{Full: ResponseSign + " " + short, Short: short}, nil
	}
	return PsalmResponse{}, Errorf(ENOTFOUND, "psalm response not found")
}

// PsalmStanzas splits psalm paragraphs into stanzas. Paragraph line breaks
// must already be newlines. Response lines, "or:" alternatives, bare
// alleluias and fragments shorter than 15 characters are dropped.
func PsalmStanzas(paragraphs []string) []string {
	var stanzas []string
	for _, p := range paragraphs {
		p = responseLineRe.ReplaceAllString(p, "\n\n")
		for _, stanza := range blankLinesRe.Split(p, -1) {
			stanza = strings.TrimSpace(stanza)
			lower := strings.ToLower(stanza)
			if len(stanza) < 15 || strings.HasPrefix(lower, "or:") || strings.TrimRight(lower, ".") == "alleluia" {
				continue
			}
			stanza = trailingAlleRe.ReplaceAllString(stanza, "")
			if stanza = NormalizeLines(stanza); stanza != "" {
				stanzas = append(stanzas, stanza)
			}
		}
	}
	return stanzas
}

// BuildResponsorialPsalm interleaves stanzas with the short response.
func BuildResponsorialPsalm(citation string, response PsalmResponse, stanzas []string) ResponsorialPsalm {
	p := ResponsorialPsalm{Citation: citation}
	p.Verses = append(p.Verses, response.Full)
	for _, stanza := range stanzas {
		p.Verses = append(p.Verses, stanza, ResponseSign+" "+response.Short)
	}
	return p
}

// CleanGospelText removes rubrical instructions from the Gospel body and
// the proclamation line when it leads the text.
func CleanGospelText(text string) string {
	text = gospelRubricLineRe.ReplaceAllString(text, "")
	text = NormalizeLines(text)
	if strings.HasPrefix(text, "✠") || strings.HasPrefix(text, "A reading from the holy Gospel") {
		if _, rest, ok := strings.Cut(text, "\n"); ok {
			text = rest
		}
	}
	return strings.TrimSpace(text)
}
