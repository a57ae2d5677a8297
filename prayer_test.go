package lauds_test

import (
	"testing"

	"github.com/fwojciec/lauds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractConcludingPrayer(t *testing.T) {
	t.Parallel()

	t.Run("cuts the prayer after the amen response", func(t *testing.T) {
		t.Parallel()

		text := "CONCLUDING PRAYER\nLord God,\nyou gave us Saint Martin.\n– Amen.\nDISMISSAL\nMay the Lord bless us."
		prayer, err := lauds.ExtractConcludingPrayer(text)

		require.NoError(t, err)
		assert.Equal(t, "Lord God,\nyou gave us Saint Martin.\n— Amen.", prayer)
	})

	t.Run("stops at an alternative prayer", func(t *testing.T) {
		t.Parallel()

		text := "CONCLUDING PRAYER\nAlmighty Father, hear us.\nOr:\nGod of mercy, — Amen."
		prayer, err := lauds.ExtractConcludingPrayer(text)

		require.NoError(t, err)
		assert.Equal(t, "Almighty Father, hear us.", prayer)
	})

	t.Run("stops at the mass readings", func(t *testing.T) {
		t.Parallel()

		prayer, err := lauds.ExtractConcludingPrayer("CONCLUDING PRAYER God our Father. MASS READINGS First Reading")

		require.NoError(t, err)
		assert.Equal(t, "God our Father.", prayer)
	})

	t.Run("returns not found without the marker", func(t *testing.T) {
		t.Parallel()

		_, err := lauds.ExtractConcludingPrayer("INTERCESSIONS Lord, hear us.")

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
	})

	t.Run("returns not found for an empty prayer", func(t *testing.T) {
		t.Parallel()

		_, err := lauds.ExtractConcludingPrayer("CONCLUDING PRAYER\n\nOr:")

		assert.Equal(t, lauds.ENOTFOUND, lauds.ErrorCode(err))
	})
}
