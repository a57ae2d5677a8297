package goquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lauds"
)

var headingTitleRe = regexp.MustCompile(`(?i)^(?:Psalm\s+\d|Canticle\b)`)

// antiphonRubricRe matches the red "Ant. N" label preceding a psalm.
func antiphonRubricRe(ordinal int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)^Ant\.\s*%d$`, ordinal))
}

// ExtractAntiphon extracts antiphon ordinal from a Morning Prayer document.
// The antiphon text comes from the flattened psalmody. For ordinals 1 and 3
// the psalm heading is read from the red rubric following the antiphon
// label, falling back to the heading pattern in the text.
func ExtractAntiphon(doc *Document, ordinal int) (lauds.Antiphon, error) {
	ant, err := lauds.ExtractAntiphon(doc.Psalmody, ordinal)
	if err != nil || ordinal == 2 {
		return ant, err
	}

	if h, ok := PsalmHeading(doc, ordinal); ok {
		ant.PsalmTitle = h.Title
		ant.PsalmSubtitle = h.Subtitle
	}
	return ant, nil
}

// PsalmHeading returns the red title and subtitle printed after the
// "Ant. N" rubric. ok is false when no such heading exists.
func PsalmHeading(doc *Document, ordinal int) (h lauds.PsalmHeading, ok bool) {
	re := antiphonRubricRe(ordinal)
	rubrics := doc.Selection.Find("span.rubrica")
	label := rubrics.FilterFunction(func(_ int, s *goquery.Selection) bool {
		return re.MatchString(strings.TrimSpace(s.Text()))
	}).First()
	if label.Length() == 0 {
		return h, false
	}

	next := rubrics.Eq(rubrics.IndexOfSelection(label) + 1)
	if next.Length() == 0 {
		return h, false
	}

	h = lauds.ParseHeadingLines(flatten(next.Nodes...))
	if !headingTitleRe.MatchString(h.Title) {
		return lauds.PsalmHeading{}, false
	}
	return h, true
}
