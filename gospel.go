package lauds

import "regexp"

// Gospel canticle window bounds.
const (
	gospelAntiphonLookahead = 500
	gospelAntiphonLimit     = 2000
)

var (
	gospelCanticleRe = Marker(`GOSPEL\s+CANTICLE`)
	bareAntiphonRe   = Marker(`\bAnt\.\s*`)
	startOfText      = regexp.MustCompile(`^`)

	gospelAntiphonStops = []*regexp.Regexp{
		Marker(`Canticle\s+of\s+Zechariah`),
		Marker(`Benedictus`),
		Marker(`Canticle:`),
		Marker(`INTERCESSIONS`),
		Marker(`Let\s+us\s+pray`),
	}
)

// ExtractGospelAntiphon extracts the antiphon said with the Benedictus: the
// first "Ant." within a short distance of the GOSPEL CANTICLE label, up to
// the canticle heading or the intercessions.
func ExtractGospelAntiphon(text string) (Antiphon, error) {
	ant := Antiphon{Format: FormatAllResponse}

	label, err := Locate(text, Locator{Start: gospelCanticleRe, Limit: gospelAntiphonLookahead})
	if err != nil {
		return ant, err
	}

	w, err := Locate(label.Text, Locator{Start: bareAntiphonRe})
	if err != nil {
		return ant, Errorf(ENOTFOUND, "gospel canticle antiphon not found")
	}

	// The antiphon may extend past the label lookahead, so the body window is
	// taken from the full text.
	start := label.Start + w.Start
	body, err := Locate(text[start:], Locator{
		Start: startOfText,
		Stops: gospelAntiphonStops,
		Limit: gospelAntiphonLimit,
	})
	if err != nil {
		return ant, err
	}

	ant.Text = CollapseWhitespace(body.Text)
	if ant.Text == "" {
		return ant, Errorf(ENOTFOUND, "gospel canticle antiphon is empty")
	}
	return ant, nil
}

// benedictus is the Canticle of Zechariah (Luke 1:68-79). It never varies by
// date.
var benedictus = []string{
	"Blessed be the Lord, the God of Israel; he has come to his people and set them free.",
	"He has raised up for us a mighty savior, born of the house of his servant David.",
	"Through his holy prophets he promised of old that he would save us from our enemies, from the hands of all who hate us.",
	"He promised to show mercy to our fathers and to remember his holy covenant.",
	"This was the oath he swore to our father Abraham: to set us free from the hands of our enemies,",
	"free to worship him without fear, holy and righteous in his sight all the days of our life.",
	"You, my child, shall be called the prophet of the Most High, for you will go before the Lord to prepare his way,",
	"to give his people knowledge of salvation by the forgiveness of their sins.",
	"In the tender compassion of our God the dawn from on high shall break upon us,",
	"to shine on those who dwell in darkness and the shadow of death, and to guide our feet into the way of peace.",
}

// GloryBe is the doxology said after psalms and canticles.
const GloryBe = "Glory to the Father, and to the Son, and to the Holy Spirit: as it was in the beginning, is now, and will be for ever. Amen."

// Benedictus returns the verses of the Canticle of Zechariah alternating
// Priest and People, closed by the doxology.
func Benedictus() []Verse {
	verses := make([]Verse, 0, len(benedictus)+1)
	for i, text := range benedictus {
		verses = append(verses, Verse{Speaker: alternate(i), Text: text})
	}
	return append(verses, Verse{Text: GloryBe})
}

// alternate returns the speaker for the i-th verse of a sequence.
func alternate(i int) Speaker {
	if i%2 == 0 {
		return SpeakerPriest
	}
	return SpeakerPeople
}

// AssignSpeakers attributes texts by strict alternation starting at Priest.
// Doxology stanzas get no speaker and do not advance the alternation.
func AssignSpeakers(texts []string) []Verse {
	verses := make([]Verse, 0, len(texts))
	n := 0
	for _, text := range texts {
		if IsDoxology(text) {
			verses = append(verses, Verse{Text: text})
			continue
		}
		verses = append(verses, Verse{Speaker: alternate(n), Text: text})
		n++
	}
	return verses
}

// CheckAlternation reports whether verses alternate Priest and People from
// Priest, ignoring doxology verses.
func CheckAlternation(verses []Verse) bool {
	n := 0
	for _, v := range verses {
		if v.Speaker == SpeakerNone && IsDoxology(v.Text) {
			continue
		}
		if v.Speaker != alternate(n) {
			return false
		}
		n++
	}
	return true
}
