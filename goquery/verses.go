package goquery

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lauds"
)

// MinStanzaLength is the length below which a stanza is treated as noise.
const MinStanzaLength = 20

// bleedLimit is the length below which a punctuated first stanza is taken
// for antiphon text bleeding into the psalm.
const bleedLimit = 150

var (
	stanzaBreakRe   = regexp.MustCompile(`(?i)<br\s*/?>\s*<br\s*/?>`)
	lineBreakRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	parentheticalRe = regexp.MustCompile(`^\([^)]*\)\.?$`)

	psalmPrayerStopRe = regexp.MustCompile(`(?i)<span class="rubrica">\s*Psalm\s+Prayer\s*</span>`)
	bareAntStopRe     = regexp.MustCompile(`(?i)<span class="rubrica">\s*Ant\.\s*</span>`)
	gloryRubricStopRe = regexp.MustCompile(`(?i)<span class="rubrica">\s*Glory to the Father\s*</span>`)
	gloryTextStopRe   = regexp.MustCompile(`(?i)Glory to the Father`)
	omitGloryRe       = regexp.MustCompile(`(?is)Glory\s+to\s+the\s+Father.*?is\s+not\s+said`)

	canticleRubricRe = regexp.MustCompile(`(?s)^Canticle:.*\d+:\d+`)
)

func antiphonStopRe(ordinal int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)<span class="rubrica">\s*Ant\.\s*%d\s*</span>`, ordinal))
}

// ExtractPsalmVerses extracts the verses of psalm 1 or 3 from the markup
// following the "Ant. N" rubric, up to the psalm prayer or the next
// antiphon. knownAntiphons are phrases identifying antiphon text that bleeds
// into the first stanza.
func ExtractPsalmVerses(doc *Document, ordinal int, knownAntiphons []string) ([]lauds.Verse, error) {
	label := findRubric(doc.Selection, antiphonRubricRe(ordinal))
	if label.Length() == 0 {
		return nil, lauds.Errorf(lauds.ENOTFOUND, "rubric Ant. %d not found", ordinal)
	}

	window := renderSiblings(label.Nodes[0])
	window = window[:earliest(window,
		psalmPrayerStopRe,
		antiphonStopRe(ordinal+1),
		bareAntStopRe,
	)]

	verses := SplitStanzas(window, knownAntiphons)
	if len(verses) == 0 {
		return nil, lauds.Errorf(lauds.ENOTFOUND, "psalm %d has no verses", ordinal)
	}
	return verses, nil
}

// ExtractCanticle extracts the Old Testament canticle following the
// "Canticle: <reference>" rubric. The verses end at the doxology or the
// third antiphon. OmitGloryBe is set when the page states the doxology is
// not said.
func ExtractCanticle(doc *Document, knownAntiphons []string) (lauds.Canticle, error) {
	rubric := findRubric(doc.Selection, canticleRubricRe)
	if rubric.Length() == 0 {
		return lauds.Canticle{}, lauds.Errorf(lauds.ENOTFOUND, "canticle rubric not found")
	}

	heading := lauds.ParseCanticleHeading(flatten(rubric.Nodes...))
	c := lauds.Canticle{Title: heading.Title, Subtitle: heading.Subtitle}

	after := renderSiblings(rubric.Nodes[0])
	section := after[:earliest(after, antiphonStopRe(3), bareAntStopRe)]
	c.OmitGloryBe = omitGloryRe.MatchString(section)

	window := section[:earliest(section, gloryRubricStopRe, gloryTextStopRe)]
	c.Verses = SplitStanzas(window, knownAntiphons)
	if len(c.Verses) == 0 {
		return c, lauds.Errorf(lauds.ENOTFOUND, "canticle has no verses")
	}
	return c, nil
}

// stanzaState tracks whether the bleed-through check has run.
type stanzaState int

const (
	// awaitingFirstContent holds until the first stanza long enough to be
	// content has been seen.
	awaitingFirstContent stanzaState = iota
	// scanning keeps every remaining content stanza.
	scanning
)

// SplitStanzas splits a markup window on double line breaks into verses.
// Italic attributions and red rubrics are removed, short fragments and bare
// parenthetical references dropped. The first content stanza is discarded
// when it looks like antiphon text: shorter than 150 characters ending in
// terminal punctuation, or containing one of knownAntiphons. Speakers
// alternate from Priest with the doxology left unattributed.
func SplitStanzas(window string, knownAntiphons []string) []lauds.Verse {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(window))
	if err != nil {
		return nil
	}
	doc.Find("em").Remove()
	body, err := doc.Find("body").Html()
	if err != nil {
		return nil
	}

	var texts []string
	state := awaitingFirstContent
	for _, section := range stanzaBreakRe.Split(body, -1) {
		text := stanzaText(section)
		if utf8.RuneCountInString(text) < MinStanzaLength || parentheticalRe.MatchString(text) {
			continue
		}

		if state == awaitingFirstContent {
			state = scanning
			if isBleedThrough(text, knownAntiphons) {
				continue
			}
		}
		texts = append(texts, lauds.NormalizeVerse(text))
	}
	return lauds.AssignSpeakers(texts)
}

// stanzaText returns the text of one stanza's markup without rubrics.
func stanzaText(section string) string {
	section = lineBreakRe.ReplaceAllString(section, "\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(section))
	if err != nil {
		return ""
	}
	doc.Find("span.rubrica").Remove()
	return strings.TrimSpace(doc.Text())
}

func isBleedThrough(text string, knownAntiphons []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range knownAntiphons {
		if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	if utf8.RuneCountInString(text) >= bleedLimit {
		return false
	}
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?")
}

// earliest returns the offset of the earliest match of any pattern in s, or
// len(s).
func earliest(s string, patterns ...*regexp.Regexp) int {
	end := len(s)
	for _, re := range patterns {
		if loc := re.FindStringIndex(s); loc != nil && loc[0] < end {
			end = loc[0]
		}
	}
	return end
}
