// Package etree exports records as OpenLyrics XML documents, the format
// presentation software imports song and liturgy texts from.
package etree

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/lauds"
)

// Namespace is the OpenLyrics XML namespace.
const Namespace = "http://openlyrics.info/namespace/2009/song"

// Version is the OpenLyrics schema version written.
const Version = "0.9"

// Verse name prefixes. OpenLyrics names verses by a letter and a number.
const (
	kindAntiphon = "c"
	kindVerse    = "v"
	kindReading  = "o"
	kindBlock    = "b"
	kindPrayer   = "p"
)

// Ensure Exporter implements lauds.Exporter at compile time.
var _ lauds.Exporter = (*Exporter)(nil)

// Exporter writes a record as one OpenLyrics song. Each antiphon, stanza,
// responsory block, intention, and reading becomes its own verse, listed in
// liturgical order by the verse order property.
type Exporter struct {
	createdIn string
	now       func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithCreatedIn sets the application name recorded in the document.
func WithCreatedIn(name string) Option {
	return func(e *Exporter) {
		e.createdIn = name
	}
}

// WithClock sets the function providing the modification date.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates a new Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		createdIn: "lauds",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes record to w.
func (e *Exporter) Export(w io.Writer, record *lauds.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	song := doc.CreateElement("song")
	song.CreateAttr("xmlns", Namespace)
	song.CreateAttr("version", Version)
	song.CreateAttr("createdIn", e.createdIn)
	song.CreateAttr("modifiedDate", e.now().UTC().Format(time.RFC3339))

	props := song.CreateElement("properties")
	props.CreateElement("titles").CreateElement("title").SetText("Morning Prayer " + record.Date.Format(lauds.DateLayout))

	b := &builder{counts: make(map[string]int), lyrics: song.CreateElement("lyrics")}
	b.addRecord(record)

	props.CreateElement("verseOrder").SetText(strings.Join(b.order, " "))

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write openlyrics: %w", err)
	}
	return nil
}

// builder appends verses to the lyrics element and tracks their order.
type builder struct {
	lyrics *etree.Element
	counts map[string]int
	order  []string
}

func (b *builder) addRecord(r *lauds.Record) {
	p := r.Psalmody
	b.antiphon(p.Antiphon1)
	b.verses(p.Psalm1)
	b.antiphon(p.Antiphon2)
	b.verses(p.Canticle.Verses)
	b.antiphon(p.Antiphon3)
	b.verses(p.Psalm3)

	sr := r.Reading.ShortReading
	b.add(kindReading, "", heading("Reading", sr.Citation), sr.Text)
	for _, block := range r.Reading.Responsory {
		b.add(kindBlock, string(block.Speaker), "", block.Text)
	}

	b.antiphon(r.GospelCanticle.Antiphon)
	b.verses(r.GospelCanticle.Verses)

	for _, g := range r.Intercessions {
		b.add(kindPrayer, "", g.Category, g.Introduction, g.ResponseLine)
		for _, in := range g.Intentions {
			b.add(kindPrayer, "", "", in.Petition, "— "+in.Response)
		}
	}
	b.add(kindPrayer, "", "", r.ConcludingPrayer)

	m := r.MassReadings
	b.add(kindReading, "", heading("First Reading", m.FirstReading.Citation), m.FirstReading.Verses...)
	for i, v := range m.ResponsorialPsalm.Verses {
		title := ""
		if i == 0 {
			title = heading("Responsorial Psalm", m.ResponsorialPsalm.Citation)
		}
		b.add(kindVerse, "", title, v)
	}
	b.add(kindReading, "", heading("Acclamation", m.GospelAcclamation.Citation), m.GospelAcclamation.Verse)
	g := m.Gospel
	b.add(kindReading, "", heading("Gospel", g.Citation), g.IntroText, g.Proclamation, g.Text, g.Closing, g.Response)
}

func (b *builder) antiphon(a lauds.Antiphon) {
	if a.Text == "" {
		return
	}
	b.add(kindAntiphon, string(lauds.SpeakerAll), heading(a.PsalmTitle, a.PsalmSubtitle), "Ant. "+a.Text)
}

func (b *builder) verses(vs []lauds.Verse) {
	for _, v := range vs {
		b.add(kindVerse, string(v.Speaker), "", v.Text)
	}
}

// add appends one verse of kind holding title followed by the lines of
// texts. Nothing is written when texts hold no line.
func (b *builder) add(kind, part, title string, texts ...string) {
	var lines []string
	for _, t := range texts {
		for _, line := range strings.Split(t, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	if len(lines) == 0 {
		return
	}
	if title != "" {
		lines = append([]string{title}, lines...)
	}

	b.counts[kind]++
	name := fmt.Sprintf("%s%d", kind, b.counts[kind])
	b.order = append(b.order, name)

	verse := b.lyrics.CreateElement("verse")
	verse.CreateAttr("name", name)
	el := verse.CreateElement("lines")
	if part != "" {
		el.CreateAttr("part", part)
	}
	for i, line := range lines {
		if i > 0 {
			el.CreateElement("br")
		}
		el.CreateText(line)
	}
}

// heading joins a label and a citation as "Label - Citation".
func heading(label, citation string) string {
	switch {
	case label == "":
		return citation
	case citation == "":
		return label
	}
	return label + " - " + citation
}
