package lauds

import "fmt"

// Section names used in failures and placeholders.
const (
	SectionAntiphon1         = "antiphon_1"
	SectionPsalm1            = "psalm_1"
	SectionAntiphon2         = "antiphon_2"
	SectionCanticle          = "canticle"
	SectionAntiphon3         = "antiphon_3"
	SectionPsalm3            = "psalm_3"
	SectionShortReading      = "short_reading"
	SectionResponsory        = "responsory"
	SectionGospelAntiphon    = "gospel_antiphon"
	SectionIntercessions     = "intercessions"
	SectionConcludingPrayer  = "concluding_prayer"
	SectionFirstReading      = "first_reading"
	SectionResponsorialPsalm = "responsorial_psalm"
	SectionAcclamation       = "gospel_acclamation"
	SectionGospel            = "gospel"
	SectionMorningPrayer     = "morning_prayer"
	SectionReadings          = "readings"
)

// PlaceholderVerses returns four bracketed verses alternating Priest and
// People, labelled with the psalm or canticle they stand in for.
func PlaceholderVerses(label string) []Verse {
	verses := make([]Verse, 4)
	for i := range verses {
		speaker := alternate(i)
		verses[i] = Verse{
			Speaker: speaker,
			Text:    fmt.Sprintf("[%s verse %d - %s]", label, i+1, speaker),
		}
	}
	return verses
}

// PlaceholderAntiphon returns the bracketed antiphon shown when antiphon
// ordinal could not be extracted.
func PlaceholderAntiphon(ordinal int) Antiphon {
	return Antiphon{
		Text:   fmt.Sprintf("[Antiphon %d for today]", ordinal),
		Format: FormatAllResponse,
	}
}

// PlaceholderCanticle returns the canticle shown when it could not be
// extracted.
func PlaceholderCanticle() Canticle {
	return Canticle{Title: "[Canticle title]", Verses: PlaceholderVerses("Canticle")}
}

// PlaceholderShortReading returns the reading shown when it could not be
// extracted.
func PlaceholderShortReading() ShortReading {
	return ShortReading{Text: "[Short reading for today]"}
}

// PlaceholderGospelAntiphon returns the antiphon shown when the gospel
// canticle antiphon could not be extracted.
func PlaceholderGospelAntiphon() Antiphon {
	return Antiphon{Text: "[Gospel canticle antiphon for today]", Format: FormatAllResponse}
}

// PlaceholderIntercessions returns a single untagged group.
func PlaceholderIntercessions() []IntercessionGroup {
	return []IntercessionGroup{{Introduction: "[Intercessions for today]"}}
}

// PlaceholderConcludingPrayer is shown when the prayer could not be extracted.
const PlaceholderConcludingPrayer = "[Concluding prayer for today]"

// PlaceholderFirstReading returns the first reading placeholder.
func PlaceholderFirstReading() FirstReading {
	return FirstReading{Citation: "[Citation]", Verses: []string{"[Reading text]", ReadingClosing}}
}

// PlaceholderResponsorialPsalm returns the responsorial psalm placeholder.
func PlaceholderResponsorialPsalm() ResponsorialPsalm {
	return ResponsorialPsalm{
		Citation: "[Psalm citation]",
		Verses:   []string{ResponseSign + " [Response]", "[Psalm text]"},
	}
}

// PlaceholderGospelAcclamation returns the acclamation placeholder.
func PlaceholderGospelAcclamation() GospelAcclamation {
	return GospelAcclamation{Citation: "[Citation]", Verse: "[Alleluia verse]"}
}

// PlaceholderGospel returns the Gospel placeholder with its fixed formulas.
func PlaceholderGospel() Gospel {
	return Gospel{
		Citation: "[Gospel citation]",
		Text:     "[Gospel text]",
		Closing:  GospelClosing,
		Response: GospelResponse,
	}
}

// PlaceholderMassReadings returns the complete readings placeholder.
func PlaceholderMassReadings() MassReadings {
	return MassReadings{
		FirstReading:      PlaceholderFirstReading(),
		ResponsorialPsalm: PlaceholderResponsorialPsalm(),
		GospelAcclamation: PlaceholderGospelAcclamation(),
		Gospel:            PlaceholderGospel(),
	}
}
