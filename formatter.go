package lauds

import (
	"fmt"
	"strings"
)

// FormatRecord renders a record as Markdown for previewing in a terminal.
// Sections are separated by blank lines; verses carry their speaker.
func FormatRecord(r *Record) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Morning Prayer %s\n", r.Date.Format(DateLayout))

	p := r.Psalmody
	writeAntiphon(&b, "Antiphon 1", p.Antiphon1)
	writeVerses(&b, p.Psalm1)
	writeAntiphon(&b, "Antiphon 2", p.Antiphon2)
	b.WriteString("\n### " + joinNonEmpty(" - ", p.Canticle.Title, p.Canticle.Subtitle) + "\n")
	writeVerses(&b, p.Canticle.Verses)
	if p.Canticle.OmitGloryBe {
		b.WriteString("\n_Glory to the Father is not said._\n")
	}
	writeAntiphon(&b, "Antiphon 3", p.Antiphon3)
	writeVerses(&b, p.Psalm3)

	sr := r.Reading.ShortReading
	b.WriteString("\n## " + joinNonEmpty(" - ", "Reading", sr.Citation) + "\n\n" + sr.Text + "\n")
	if len(r.Reading.Responsory) > 0 {
		b.WriteString("\n## Responsory\n")
		for _, block := range r.Reading.Responsory {
			fmt.Fprintf(&b, "\n**%s:** %s\n", block.Speaker, strings.ReplaceAll(block.Text, "\n", "  \n"))
		}
	}

	writeAntiphon(&b, "Gospel Canticle", r.GospelCanticle.Antiphon)
	writeVerses(&b, r.GospelCanticle.Verses)

	b.WriteString("\n## Intercessions\n")
	for _, g := range r.Intercessions {
		if g.Category != "" {
			b.WriteString("\n### " + g.Category + "\n")
		}
		if g.Introduction != "" {
			b.WriteString("\n" + g.Introduction + "\n")
		}
		if g.ResponseLine != "" {
			b.WriteString("\n_" + g.ResponseLine + "_\n")
		}
		for _, in := range g.Intentions {
			fmt.Fprintf(&b, "\n- %s\n  — %s\n", in.Petition, in.Response)
		}
	}

	b.WriteString("\n## Concluding Prayer\n\n" + r.ConcludingPrayer + "\n")

	m := r.MassReadings
	b.WriteString("\n## " + joinNonEmpty(" - ", "First Reading", m.FirstReading.Citation) + "\n\n")
	b.WriteString(strings.Join(m.FirstReading.Verses, "\n") + "\n")
	b.WriteString("\n## " + joinNonEmpty(" - ", "Responsorial Psalm", m.ResponsorialPsalm.Citation) + "\n\n")
	b.WriteString(strings.Join(m.ResponsorialPsalm.Verses, "\n\n") + "\n")
	b.WriteString("\n## " + joinNonEmpty(" - ", "Acclamation", m.GospelAcclamation.Citation) + "\n\n")
	b.WriteString(m.GospelAcclamation.Verse + "\n")
	g := m.Gospel
	b.WriteString("\n## " + joinNonEmpty(" - ", "Gospel", g.Citation) + "\n\n")
	for _, s := range []string{g.IntroText, g.Proclamation, g.Text, g.Closing, g.Response} {
		if s != "" {
			b.WriteString(s + "\n\n")
		}
	}

	if len(r.Failures) > 0 {
		b.WriteString("## Placeholders\n\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "- %s (%s): %s\n", f.Section, f.Code, f.Message)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeAntiphon(b *strings.Builder, label string, a Antiphon) {
	b.WriteString("\n## " + joinNonEmpty(" - ", label, a.PsalmTitle, a.PsalmSubtitle) + "\n")
	if a.Text != "" {
		b.WriteString("\n**Ant.** " + a.Text + "\n")
	}
}

func writeVerses(b *strings.Builder, verses []Verse) {
	for _, v := range verses {
		if v.Speaker == SpeakerNone {
			b.WriteString("\n" + v.Text + "\n")
			continue
		}
		fmt.Fprintf(b, "\n**%s:** %s\n", v.Speaker, v.Text)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
