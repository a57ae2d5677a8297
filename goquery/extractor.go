package goquery

import (
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/lauds"
)

// Ensure Extractor implements lauds.Extractor.
var _ lauds.Extractor = (*Extractor)(nil)

// Extractor assembles a Record from the Morning Prayer and readings pages.
// Every section is extracted independently; a section that fails yields
// its placeholder and a Failure on the record.
type Extractor struct {
	knownAntiphons []string
	responses      []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithKnownAntiphons sets the phrases identifying antiphon text that bleeds
// into the first stanza of a psalm.
func WithKnownAntiphons(phrases []string) Option {
	return func(e *Extractor) {
		e.knownAntiphons = phrases
	}
}

// WithIntercessionResponses sets the congregational responses that open
// intercessions.
func WithIntercessionResponses(responses []string) Option {
	return func(e *Extractor) {
		e.responses = responses
	}
}

// NewExtractor creates an Extractor with the default heuristics.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		knownAntiphons: lauds.DefaultKnownAntiphons,
		responses:      lauds.DefaultIntercessionResponses,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract builds the record for date. It never fails and never returns nil.
func (e *Extractor) Extract(date time.Time, pages *lauds.Pages) *lauds.Record {
	r := &lauds.Record{Date: date}
	if pages == nil {
		pages = &lauds.Pages{}
	}

	if doc := parsePage(r, lauds.SectionMorningPrayer, pages.MorningPrayer); doc != nil {
		e.extractMorningPrayer(r, doc)
	} else {
		fillMorningPrayer(r)
	}

	if doc := parsePage(r, lauds.SectionReadings, pages.Readings); doc != nil {
		e.extractReadings(r, doc)
	} else {
		r.MassReadings = lauds.PlaceholderMassReadings()
	}
	return r
}

func (e *Extractor) extractMorningPrayer(r *lauds.Record, doc *Document) {
	p := &r.Psalmody
	p.Antiphon1 = antiphon(r, doc, 1, lauds.SectionAntiphon1)
	p.Psalm1 = extract(r, lauds.SectionPsalm1, func() ([]lauds.Verse, error) {
		return ExtractPsalmVerses(doc, 1, e.knownAntiphons)
	}, func() []lauds.Verse { return lauds.PlaceholderVerses("Psalm 1") })
	p.Antiphon2 = antiphon(r, doc, 2, lauds.SectionAntiphon2)
	p.Canticle = extract(r, lauds.SectionCanticle, func() (lauds.Canticle, error) {
		return ExtractCanticle(doc, e.knownAntiphons)
	}, lauds.PlaceholderCanticle)
	p.Antiphon3 = antiphon(r, doc, 3, lauds.SectionAntiphon3)
	p.Psalm3 = extract(r, lauds.SectionPsalm3, func() ([]lauds.Verse, error) {
		return ExtractPsalmVerses(doc, 3, e.knownAntiphons)
	}, func() []lauds.Verse { return lauds.PlaceholderVerses("Psalm 3") })

	r.Reading.ShortReading = extract(r, lauds.SectionShortReading, func() (lauds.ShortReading, error) {
		return lauds.ExtractShortReading(doc.Psalmody)
	}, lauds.PlaceholderShortReading)
	r.Reading.Responsory = extract(r, lauds.SectionResponsory, func() ([]lauds.ResponsoryBlock, error) {
		return lauds.ExtractResponsory(doc.Psalmody)
	}, func() []lauds.ResponsoryBlock { return nil })

	r.GospelCanticle.Antiphon = extract(r, lauds.SectionGospelAntiphon, func() (lauds.Antiphon, error) {
		return lauds.ExtractGospelAntiphon(doc.Psalmody)
	}, lauds.PlaceholderGospelAntiphon)
	r.GospelCanticle.Verses = lauds.Benedictus()

	r.Intercessions = extract(r, lauds.SectionIntercessions, func() ([]lauds.IntercessionGroup, error) {
		return ExtractIntercessions(doc, e.responses)
	}, lauds.PlaceholderIntercessions)
	r.ConcludingPrayer = extract(r, lauds.SectionConcludingPrayer, func() (string, error) {
		return lauds.ExtractConcludingPrayer(doc.Text)
	}, func() string { return lauds.PlaceholderConcludingPrayer })
}

func (e *Extractor) extractReadings(r *lauds.Record, doc *Document) {
	m := &r.MassReadings
	m.FirstReading = extract(r, lauds.SectionFirstReading, func() (lauds.FirstReading, error) {
		return ExtractFirstReading(doc)
	}, lauds.PlaceholderFirstReading)
	m.ResponsorialPsalm = extract(r, lauds.SectionResponsorialPsalm, func() (lauds.ResponsorialPsalm, error) {
		return ExtractResponsorialPsalm(doc)
	}, lauds.PlaceholderResponsorialPsalm)
	m.GospelAcclamation = extract(r, lauds.SectionAcclamation, func() (lauds.GospelAcclamation, error) {
		return ExtractGospelAcclamation(doc)
	}, lauds.PlaceholderGospelAcclamation)
	m.Gospel = extract(r, lauds.SectionGospel, func() (lauds.Gospel, error) {
		return ExtractGospel(doc)
	}, lauds.PlaceholderGospel)
}

// antiphon extracts one psalmody antiphon. An empty antiphon is replaced by
// its bracketed placeholder.
func antiphon(r *lauds.Record, doc *Document, ordinal int, section string) lauds.Antiphon {
	return extract(r, section, func() (lauds.Antiphon, error) {
		return ExtractAntiphon(doc, ordinal)
	}, func() lauds.Antiphon { return lauds.PlaceholderAntiphon(ordinal) })
}

// parsePage parses one page, recording a failure when it is empty or
// cannot be parsed.
func parsePage(r *lauds.Record, section, content string) *Document {
	if strings.TrimSpace(content) == "" {
		fail(r, section, lauds.Errorf(lauds.ENOTFOUND, "%s page is empty", section))
		return nil
	}
	doc, err := NewDocument(content)
	if err != nil {
		fail(r, section, err)
		return nil
	}
	return doc
}

// fillMorningPrayer sets every Morning Prayer section to its placeholder.
func fillMorningPrayer(r *lauds.Record) {
	r.Psalmody = lauds.Psalmody{
		Antiphon1: lauds.PlaceholderAntiphon(1),
		Psalm1:    lauds.PlaceholderVerses("Psalm 1"),
		Antiphon2: lauds.PlaceholderAntiphon(2),
		Canticle:  lauds.PlaceholderCanticle(),
		Antiphon3: lauds.PlaceholderAntiphon(3),
		Psalm3:    lauds.PlaceholderVerses("Psalm 3"),
	}
	r.Reading = lauds.Reading{ShortReading: lauds.PlaceholderShortReading()}
	r.GospelCanticle = lauds.GospelCanticle{
		Antiphon: lauds.PlaceholderGospelAntiphon(),
		Verses:   lauds.Benedictus(),
	}
	r.Intercessions = lauds.PlaceholderIntercessions()
	r.ConcludingPrayer = lauds.PlaceholderConcludingPrayer
}

// extract runs one section extractor. An error or a panic is recorded as a
// Failure and the fallback value is returned instead.
func extract[T any](r *lauds.Record, section string, fn func() (T, error), fallback func() T) (v T) {
	defer func() {
		if p := recover(); p != nil {
			fail(r, section, lauds.Errorf(lauds.EINTERNAL, "panic: %v", p))
			v = fallback()
		}
	}()

	v, err := fn()
	if err != nil {
		fail(r, section, err)
		return fallback()
	}
	return v
}

func fail(r *lauds.Record, section string, err error) {
	msg := err.Error()
	var e *lauds.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	r.Failures = append(r.Failures, lauds.Failure{
		Section: section,
		Code:    lauds.ErrorCode(err),
		Message: msg,
	})
}
