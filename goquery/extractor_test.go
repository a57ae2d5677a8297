package goquery_test

import (
	"testing"
	"time"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("assembles a complete record", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		r := e.Extract(testDate, &lauds.Pages{
			MorningPrayer: morningPrayerHTML,
			Readings:      readingsHTML,
		})

		require.NotNil(t, r)
		assert.Empty(t, r.Failures)
		require.NoError(t, r.Validate())
		assert.Equal(t, testDate, r.Date)

		assert.Equal(t, "My soul is thirsting for you, O Lord my God.", r.Psalmody.Antiphon1.Text)
		assert.Equal(t, "Psalm 63:2-9", r.Psalmody.Antiphon1.PsalmTitle)
		assert.Len(t, r.Psalmody.Psalm1, 4)
		assert.Equal(t, "Let the heavens rejoice in the Lord.", r.Psalmody.Antiphon2.Text)
		assert.Equal(t, "Canticle: Daniel 3:57-88, 56", r.Psalmody.Canticle.Title)
		assert.True(t, r.Psalmody.Canticle.OmitGloryBe)
		assert.Equal(t, "Psalm 148", r.Psalmody.Antiphon3.PsalmTitle)
		assert.Len(t, r.Psalmody.Psalm3, 3)

		assert.Equal(t, lauds.ShortReading{
			Citation: "Romans 13:11b-12",
			Text:     "It is the hour now for you to awake from sleep.",
		}, r.Reading.ShortReading)
		assert.Equal(t, []lauds.ResponsoryBlock{
			{Speaker: lauds.SpeakerAll, Text: "The just are the friends of God.\n— The just are the friends of God.", IncludeTitle: true},
			{Speaker: lauds.SpeakerPriest, Text: "God himself is their reward.\n— They live with him for ever."},
			{Speaker: lauds.SpeakerPriest, Text: "Glory be.\n— The just are the friends of God, They live with him for ever."},
		}, r.Reading.Responsory)

		assert.Equal(t, "Blessed be the Lord, for he has visited his people.", r.GospelCanticle.Antiphon.Text)
		assert.Equal(t, lauds.Benedictus(), r.GospelCanticle.Verses)

		require.Len(t, r.Intercessions, 1)
		assert.Len(t, r.Intercessions[0].Intentions, 2)
		assert.Equal(t, "Lord God,\nyou gave us Saint Martin.\n— Amen.", r.ConcludingPrayer)

		assert.Equal(t, "Wis 1:1-7", r.MassReadings.FirstReading.Citation)
		assert.Equal(t, "Ps 139:1b-3, 4-6", r.MassReadings.ResponsorialPsalm.Citation)
		assert.Equal(t, "Phil 2:15d, 16a", r.MassReadings.GospelAcclamation.Citation)
		assert.Equal(t, "Lk 17:1-6", r.MassReadings.Gospel.Citation)
	})

	t.Run("fills placeholders for missing pages", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		r := e.Extract(testDate, &lauds.Pages{})

		require.NotNil(t, r)
		assert.True(t, r.Failed(lauds.SectionMorningPrayer))
		assert.True(t, r.Failed(lauds.SectionReadings))
		assert.Len(t, r.Failures, 2)

		assert.Equal(t, lauds.PlaceholderAntiphon(1), r.Psalmody.Antiphon1)
		assert.Equal(t, lauds.PlaceholderVerses("Psalm 1"), r.Psalmody.Psalm1)
		assert.Equal(t, lauds.PlaceholderCanticle(), r.Psalmody.Canticle)
		assert.Equal(t, lauds.PlaceholderShortReading(), r.Reading.ShortReading)
		assert.Equal(t, lauds.Benedictus(), r.GospelCanticle.Verses)
		assert.Equal(t, lauds.PlaceholderIntercessions(), r.Intercessions)
		assert.Equal(t, lauds.PlaceholderConcludingPrayer, r.ConcludingPrayer)
		assert.Equal(t, lauds.PlaceholderMassReadings(), r.MassReadings)
	})

	t.Run("accepts nil pages", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewExtractor().Extract(testDate, nil)

		require.NotNil(t, r)
		assert.Len(t, r.Failures, 2)
	})

	t.Run("records one failure per missing section", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewExtractor().Extract(testDate, &lauds.Pages{
			MorningPrayer: `<html><body><p>PSALMODY</p></body></html>`,
			Readings:      readingsHTML,
		})

		require.NotNil(t, r)
		assert.True(t, r.Failed(lauds.SectionAntiphon1))
		assert.True(t, r.Failed(lauds.SectionPsalm1))
		assert.True(t, r.Failed(lauds.SectionCanticle))
		assert.True(t, r.Failed(lauds.SectionResponsory))
		assert.True(t, r.Failed(lauds.SectionIntercessions))
		assert.False(t, r.Failed(lauds.SectionGospel))

		assert.Equal(t, "[Antiphon 1 for today]", r.Psalmody.Antiphon1.Text)
		assert.Empty(t, r.Reading.Responsory)
		for _, f := range r.Failures {
			assert.NotEmpty(t, f.Code, f.Section)
			assert.NotEmpty(t, f.Message, f.Section)
		}
	})

	t.Run("never panics on malformed input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"<",
			"<<<>>>",
			"PSALMODY Ant. 1",
			"<p><span class=\"rubrica\">Ant. 1</span></p>",
			"<p><span class=\"rubrica\">Canticle: Isaiah 1:1</span></p>",
			"<p><span class=\"titolo\">Gospel</span></p>",
			"INTERCESSIONS INTERCESSIONS [Pastors] [Doctors]",
			"RESPONSORY — — — —",
			"\x00\xff\xfe",
		}
		e := goquery.NewExtractor()
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				r := e.Extract(testDate, &lauds.Pages{MorningPrayer: in, Readings: in})
				require.NotNil(t, r)
			}, in)
		}
	})

	t.Run("applies known antiphon overrides", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.WithKnownAntiphons([]string{"Bless the Lord, all you works"}))

		r := e.Extract(testDate, &lauds.Pages{MorningPrayer: morningPrayerHTML, Readings: readingsHTML})

		require.Len(t, r.Psalmody.Canticle.Verses, 2)
		assert.Equal(t, "All you hosts of the Lord, bless the Lord; sun and moon, bless the Lord.", r.Psalmody.Canticle.Verses[0].Text)
	})

	t.Run("applies intercession response overrides", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(goquery.WithIntercessionResponses([]string{"Lord, hear our prayer."}))

		r := e.Extract(testDate, &lauds.Pages{MorningPrayer: morningPrayerHTML, Readings: readingsHTML})

		require.Len(t, r.Intercessions, 1)
		assert.Empty(t, r.Intercessions[0].ResponseLine)
	})
}
