package lauds

import (
	"fmt"
	"regexp"
	"strings"
)

// SubtitleLimit is the maximum length of a psalm subtitle before it is
// truncated with an ellipsis.
const SubtitleLimit = 100

var (
	psalmTokenRe    = Marker(`Psalm\s+\d`)
	nextAntiphonRe  = Marker(`\nAnt\.`)
	psalmHeadingRe  = regexp.MustCompile(`(?i)Psalm\s+(\d+)([A-Z])?(?::(\d+)(?:-(\d+))?)?[ \t]*([^\n]*)`)
	trailingPsalmRe = regexp.MustCompile(`(?i)\bP?salm\b.*$`)

	canticleHeadingRe = regexp.MustCompile(`(?i)^(Canticle:\s+(?:[1-3]\s*)?[A-Za-z\s]+\d+:\d+(?:[-—]\d+(?::\d+)?)?(?:,\s*\d+)?)(.*)`)
	canticleSplitRe   = regexp.MustCompile(`\d+([A-Z])`)
)

// ordinal2Limit bounds the search for the sentence that ends the second
// antiphon, which has no psalm heading to stop at.
const ordinal2Limit = 500

// AntiphonMarker returns the marker for the antiphon with the given ordinal,
// matching both "Ant. 2" and "Antiphon 2".
func AntiphonMarker(ordinal int) *regexp.Regexp {
	return Marker(fmt.Sprintf(`\b(?:Ant\.|Antiphon)\s*%d\b[:\s]*`, ordinal))
}

// PsalmHeading is the title and subtitle printed in red above a psalm.
type PsalmHeading struct {
	Title    string
	Subtitle string
}

// ExtractAntiphon extracts antiphon ordinal (1, 2 or 3) from the flattened
// psalmody text. For ordinals 1 and 3 the psalm heading is parsed from the
// text following the antiphon marker.
//
// A missing marker yields an empty antiphon and an ENOTFOUND error.
func ExtractAntiphon(text string, ordinal int) (Antiphon, error) {
	ant := Antiphon{Format: FormatAllResponse}

	body, w, err := extractAntiphonText(text, ordinal)
	if err != nil {
		return ant, err
	}
	ant.Text = body

	if ordinal != 2 {
		if h, err := ParsePsalmHeading(text[w.Start:]); err == nil {
			ant.PsalmTitle = h.Title
			ant.PsalmSubtitle = h.Subtitle
		}
	}
	return ant, nil
}

// ExtractAntiphonText returns only the antiphon text for an ordinal.
func ExtractAntiphonText(text string, ordinal int) (string, error) {
	body, _, err := extractAntiphonText(text, ordinal)
	return body, err
}

func extractAntiphonText(text string, ordinal int) (string, Window, error) {
	if ordinal < 1 || ordinal > 3 {
		return "", Window{}, Errorf(EINVALID, "invalid antiphon ordinal %d", ordinal)
	}

	loc := Locator{
		Start: AntiphonMarker(ordinal),
		Stops: []*regexp.Regexp{psalmTokenRe, nextAntiphonRe},
	}
	if ordinal == 2 {
		loc = Locator{Start: AntiphonMarker(ordinal), Limit: ordinal2Limit}
	}
	w, err := Locate(text, loc)
	if err != nil {
		return "", w, err
	}

	// Ordinals 1 and 3 run to the psalm heading so that multi-sentence
	// antiphons stay whole. Without a heading, only the first sentence is
	// trustworthy.
	body := w.Text
	if ordinal == 2 || !w.Terminated {
		sentence, ok := firstSentence(w.Text)
		if !ok {
			return "", w, Errorf(ENOTFOUND, "antiphon %d has no sentence terminator", ordinal)
		}
		body = sentence
	}

	body = CollapseWhitespace(body)
	if body == "" {
		return "", w, Errorf(ENOTFOUND, "antiphon %d is empty", ordinal)
	}
	return body, w, nil
}

// ParsePsalmHeading finds the first "Psalm <num>[letter][:<v>[-<v>]]" heading
// in text. The rest of its line becomes the subtitle, truncated at a word
// boundary to SubtitleLimit characters.
func ParsePsalmHeading(text string) (PsalmHeading, error) {
	m := psalmHeadingRe.FindStringSubmatch(text)
	if m == nil {
		return PsalmHeading{}, Errorf(ENOTFOUND, "psalm heading not found")
	}

	title := "Psalm " + m[1] + strings.ToUpper(m[2])
	if m[3] != "" {
		title += ":" + m[3]
		if m[4] != "" {
			title += "-" + m[4]
		}
	}

	subtitle := CollapseWhitespace(trailingPsalmRe.ReplaceAllString(m[5], ""))
	return PsalmHeading{Title: title, Subtitle: truncateWords(subtitle, SubtitleLimit)}, nil
}

// ParseHeadingLines splits the text of a red heading node into title and
// subtitle lines.
func ParseHeadingLines(text string) PsalmHeading {
	lines := strings.Split(NormalizeLines(text), "\n")
	h := PsalmHeading{Title: lines[0]}
	if len(lines) > 1 {
		h.Subtitle = truncateWords(lines[1], SubtitleLimit)
	}
	return h
}

// ParseCanticleHeading splits a "Canticle: Book c:v-v" rubric into the
// reference title and the descriptive subtitle that follows it.
func ParseCanticleHeading(rubric string) PsalmHeading {
	rubric = CollapseWhitespace(rubric)
	if m := canticleHeadingRe.FindStringSubmatch(rubric); m != nil {
		return PsalmHeading{
			Title:    strings.TrimSpace(m[1]),
			Subtitle: strings.TrimLeft(strings.TrimSpace(m[2]), "—- "),
		}
	}
	if loc := canticleSplitRe.FindStringSubmatchIndex(rubric); loc != nil {
		return PsalmHeading{
			Title:    strings.TrimSpace(rubric[:loc[2]]),
			Subtitle: strings.TrimSpace(rubric[loc[2]:]),
		}
	}
	return PsalmHeading{Title: rubric}
}
