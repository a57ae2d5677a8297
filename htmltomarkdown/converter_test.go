package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements lauds.Converter at compile time.
var _ lauds.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<p>Blessed be the Lord, the God of Israel.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Blessed be the Lord, the God of Israel.")
	})

	t.Run("renders rubrics as emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><span class="rubrica">Ant. 1</span> My soul is thirsting for you.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "*Ant. 1*")
		assert.Contains(t, md, "My soul is thirsting for you.")
	})

	t.Run("renders section titles as strong text", func(t *testing.T) {
		t.Parallel()

		html := `<p><span class="titolo">Gospel</span> <span class="citazione">Lk 17:1-6</span></p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Gospel**")
		assert.Contains(t, md, "Lk 17:1-6")
	})

	t.Run("keeps lines separated at line breaks", func(t *testing.T) {
		t.Parallel()

		html := `<p>O God, you are my God, for you I long;<br>for you my soul is thirsting.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		lines := strings.Split(md, "\n")
		require.GreaterOrEqual(t, len(lines), 2)
		assert.Contains(t, lines[0], "for you I long;")
		assert.Contains(t, md, "\nfor you my soul is thirsting.")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>The word of the Lord.</strong> <em>Thanks be to God.</em></p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**The word of the Lord.**")
		assert.Contains(t, md, "*Thanks be to God.*")
	})

	t.Run("drops scripts", func(t *testing.T) {
		t.Parallel()

		html := `<div><script>var x = "PSALMODY";</script><p>Psalm 148</p></div>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Psalm 148")
		assert.NotContains(t, md, "PSALMODY")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  \n")

		require.Error(t, err)
		assert.Equal(t, lauds.EINVALID, lauds.ErrorCode(err))
	})

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="/m2/letture.php?s=letture">Readings</a></p>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL("https://www.ibreviary.com/m2/"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Readings](https://www.ibreviary.com/m2/letture.php?s=letture)")
	})

	t.Run("converts an intercessions window", func(t *testing.T) {
		t.Parallel()

		html := `<span class="rubrica">INTERCESSIONS</span><br>Christ is the shepherd of his people; let us pray:<br><em>Nourish your people, Lord.</em><br><br>
You chose your apostles to be shepherds of your flock,<br><span class="rubrica">—</span> keep us faithful to their teaching.<br><br>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "*INTERCESSIONS*")
		assert.Contains(t, md, "*Nourish your people, Lord.*")
		assert.Contains(t, md, "keep us faithful to their teaching.")
	})
}
