package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStanzas(t *testing.T) {
	t.Parallel()

	t.Run("drops antiphon bleed-through and leaves the doxology unattributed", func(t *testing.T) {
		t.Parallel()

		window := `Short antiphon text here.<br><br>` +
			`First stanza line one<br>line two of stanza.<br><br>` +
			`Second stanza is here now<br>and continues.<br><br>` +
			`Glory to the Father, and to the Son<br>and to the Holy Spirit.`

		verses := goquery.SplitStanzas(window, nil)

		assert.Equal(t, []lauds.Verse{
			{Speaker: lauds.SpeakerPriest, Text: "First stanza line one line two of stanza."},
			{Speaker: lauds.SpeakerPeople, Text: "Second stanza is here now and continues."},
			{Text: "Glory to the Father, and to the Son and to the Holy Spirit."},
		}, verses)
	})

	t.Run("checks for bleed-through only once", func(t *testing.T) {
		t.Parallel()

		window := `This is a first stanza ending.<br><br>This is a second short one.`

		verses := goquery.SplitStanzas(window, nil)

		require.Len(t, verses, 1)
		assert.Equal(t, "This is a second short one.", verses[0].Text)
		assert.Equal(t, lauds.SpeakerPriest, verses[0].Speaker)
	})

	t.Run("keeps a first stanza without terminal punctuation", func(t *testing.T) {
		t.Parallel()

		window := `O God, you are my God, for you I long<br>for you my soul is thirsting`

		verses := goquery.SplitStanzas(window, nil)

		require.Len(t, verses, 1)
		assert.Equal(t, "O God, you are my God, for you I long for you my soul is thirsting.", verses[0].Text)
	})

	t.Run("drops a first stanza containing a known antiphon", func(t *testing.T) {
		t.Parallel()

		long := "Each morning we sing your praise " + strings.Repeat("and we sing it again ", 8) + "without end"
		window := long + `<br><br>The heavens proclaim the glory of God`

		verses := goquery.SplitStanzas(window, []string{"each MORNING"})

		require.Len(t, verses, 1)
		assert.Equal(t, "The heavens proclaim the glory of God.", verses[0].Text)
	})

	t.Run("skips parenthetical references and short fragments", func(t *testing.T) {
		t.Parallel()

		window := `(Revelation 19:5)<br><br>Abc<br><br>Bless the Lord, all you works of the Lord`

		verses := goquery.SplitStanzas(window, nil)

		assert.Equal(t, []lauds.Verse{
			{Speaker: lauds.SpeakerPriest, Text: "Bless the Lord, all you works of the Lord."},
		}, verses)
	})

	t.Run("removes italic attributions and rubrics", func(t *testing.T) {
		t.Parallel()

		window := `<em>Christ speaks to the Father</em><br><br>` +
			`<span class="rubrica">I</span> I will bless the Lord at all times,<br>his praise always on my lips`

		verses := goquery.SplitStanzas(window, nil)

		require.Len(t, verses, 1)
		assert.Equal(t, "I will bless the Lord at all times, his praise always on my lips.", verses[0].Text)
	})

	t.Run("returns nothing for an empty window", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.SplitStanzas("", nil))
	})
}

func TestExtractPsalmVerses(t *testing.T) {
	t.Parallel()

	t.Run("extracts the first psalm up to the repeated antiphon", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, morningPrayerHTML)

		verses, err := goquery.ExtractPsalmVerses(doc, 1, lauds.DefaultKnownAntiphons)

		require.NoError(t, err)
		assert.Equal(t, []lauds.Verse{
			{Speaker: lauds.SpeakerPriest, Text: "O God, you are my God, for you I long; for you my soul is thirsting. My body pines for you like a dry, weary land without water."},
			{Speaker: lauds.SpeakerPeople, Text: "So I gaze on you in the sanctuary to see your strength and your glory."},
			{Speaker: lauds.SpeakerPriest, Text: "For your love is better than life, my lips will speak your praise."},
			{Text: "Glory to the Father, and to the Son, and to the Holy Spirit."},
		}, verses)
		assert.True(t, lauds.CheckAlternation(verses))
	})

	t.Run("extracts the third psalm", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, morningPrayerHTML)

		verses, err := goquery.ExtractPsalmVerses(doc, 3, nil)

		require.NoError(t, err)
		require.Len(t, verses, 3)
		assert.Equal(t, "Praise the Lord from the heavens, praise him in the heights.", verses[0].Text)
		assert.Equal(t, lauds.SpeakerPeople, verses[1].Speaker)
		assert.True(t, verses[2].IsDoxology())
	})

	t.Run("stops at the psalm prayer", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, `<p><span class="rubrica">Ant. 1</span> Sing to the Lord a new song of praise.<br><br>`+
			`Sing to the Lord a new song,<br>his praise in the assembly.<br><br>`+
			`<span class="rubrica">Psalm Prayer</span><br>Lord, we praise you for your mighty deeds.</p>`)

		verses, err := goquery.ExtractPsalmVerses(doc, 1, nil)

		require.NoError(t, err)
		require.Len(t, verses, 1)
		assert.Equal(t, "Sing to the Lord a new song, his praise in the assembly.", verses[0].Text)
	})

	t.Run("returns not found without the rubric", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, `<p>Ant. 1 Sing to the Lord.</p>`)

		_, err := goquery.ExtractPsalmVerses(doc, 1, nil)

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
	})

	t.Run("returns not found when nothing follows the rubric", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, `<p><span class="rubrica">Ant. 3</span> Short.</p>`)

		_, err := goquery.ExtractPsalmVerses(doc, 3, nil)

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
	})
}

func TestExtractCanticle(t *testing.T) {
	t.Parallel()

	t.Run("extracts heading, verses and the omitted doxology", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, morningPrayerHTML)

		c, err := goquery.ExtractCanticle(doc, lauds.DefaultKnownAntiphons)

		require.NoError(t, err)
		assert.Equal(t, "Canticle: Daniel 3:57-88, 56", c.Title)
		assert.Equal(t, "Let all creatures praise the Lord", c.Subtitle)
		assert.True(t, c.OmitGloryBe)
		require.Len(t, c.Verses, 3)
		assert.True(t, strings.HasPrefix(c.Verses[0].Text, "Bless the Lord, all you works of the Lord"))
		assert.Equal(t, "All you hosts of the Lord, bless the Lord; sun and moon, bless the Lord.", c.Verses[1].Text)
		assert.True(t, lauds.CheckAlternation(c.Verses))
	})

	t.Run("stops at the doxology when it is said", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, `<p><span class="rubrica">Canticle: Isaiah 12:1-6</span><br><br>`+
			strings.Repeat("God indeed is my savior; I am confident and unafraid, ", 3)+`my strength and my courage is the Lord<br><br>`+
			`With joy you will draw water at the fountain of salvation<br><br>`+
			`Glory to the Father, and to the Son,<br>and to the Holy Spirit.<br><br>`+
			`<span class="rubrica">Ant.</span> Repeat.</p>`)

		c, err := goquery.ExtractCanticle(doc, nil)

		require.NoError(t, err)
		assert.Equal(t, "Canticle: Isaiah 12:1-6", c.Title)
		assert.False(t, c.OmitGloryBe)
		require.Len(t, c.Verses, 2)
		for _, v := range c.Verses {
			assert.False(t, v.IsDoxology())
		}
	})

	t.Run("returns not found without the rubric", func(t *testing.T) {
		t.Parallel()

		doc := newDocument(t, `<p><span class="rubrica">Psalm 148</span></p>`)

		_, err := goquery.ExtractCanticle(doc, nil)

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
	})
}
