package lauds_test

import (
	"testing"

	"github.com/fwojciec/lauds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIntercessionCategories(t *testing.T) {
	t.Parallel()

	t.Run("treats an untagged window as one group", func(t *testing.T) {
		t.Parallel()

		segs := lauds.SplitIntercessionCategories("Christ is our shepherd.")

		require.Len(t, segs, 1)
		assert.Empty(t, segs[0].Category)
		assert.Equal(t, "Christ is our shepherd.", segs[0].Text)
	})

	t.Run("splits on each category tag", func(t *testing.T) {
		t.Parallel()

		segs := lauds.SplitIntercessionCategories("heading [Pastors] first [Doctors] second [Holy Men and Women] third")

		require.Len(t, segs, 3)
		assert.Equal(t, "Pastors", segs[0].Category)
		assert.Equal(t, " first ", segs[0].Text)
		assert.Equal(t, "Doctors", segs[1].Category)
		assert.Equal(t, "Holy Men and Women", segs[2].Category)
		assert.Equal(t, " third", segs[2].Text)
	})
}

func TestParseIntercessionGroup(t *testing.T) {
	t.Parallel()

	t.Run("parses introduction, response line and intentions", func(t *testing.T) {
		t.Parallel()

		text := "INTERCESSIONS Christ is the shepherd of his people; let us pray: " +
			"Nourish your people, Lord. " +
			"You chose your apostles to be shepherds of your flock, — keep us faithful to their teaching. " +
			"Nourish your people, Lord. " +
			"You sent your Spirit upon the Church at Pentecost, — renew us in holiness."
		g, ok := lauds.ParseIntercessionGroup(lauds.IntercessionSegment{Text: text}, nil)

		require.True(t, ok)
		assert.Equal(t, "Christ is the shepherd of his people; let us pray:", g.Introduction)
		assert.Equal(t, "Nourish your people, Lord.", g.ResponseLine)
		assert.Equal(t, []lauds.Intention{
			{Petition: "You chose your apostles to be shepherds of your flock,", Response: "keep us faithful to their teaching."},
			{Petition: "You sent your Spirit upon the Church at Pentecost,", Response: "renew us in holiness."},
		}, g.Intentions)
	})

	t.Run("uses the second known response", func(t *testing.T) {
		t.Parallel()

		text := "Let us praise Christ: You redeemed us by your blood. " +
			"Christ, you gave your life for the flock, – gather your scattered children."
		g, ok := lauds.ParseIntercessionGroup(lauds.IntercessionSegment{Category: "Martyrs", Text: text}, nil)

		require.True(t, ok)
		assert.Equal(t, "Martyrs", g.Category)
		assert.Equal(t, "You redeemed us by your blood.", g.ResponseLine)
		require.Len(t, g.Intentions, 1)
		assert.Equal(t, "gather your scattered children.", g.Intentions[0].Response)
	})

	t.Run("drops short petitions as noise", func(t *testing.T) {
		t.Parallel()

		text := "Intro Nourish your people, Lord. Too short — ignored. " +
			"Lord, you call us to serve our neighbors, — make us generous."
		g, _ := lauds.ParseIntercessionGroup(lauds.IntercessionSegment{Text: text}, nil)

		require.Len(t, g.Intentions, 1)
		assert.Equal(t, "Lord, you call us to serve our neighbors,", g.Intentions[0].Petition)
	})

	t.Run("drops petitions that contain the section label", func(t *testing.T) {
		t.Parallel()

		text := "INTERCESSIONS repeated in a long mis-split petition — oops. "
		g, ok := lauds.ParseIntercessionGroup(lauds.IntercessionSegment{Text: text}, nil)

		assert.False(t, ok)
		assert.Empty(t, g.Intentions)
	})

	t.Run("accepts configured response phrases", func(t *testing.T) {
		t.Parallel()

		text := "Let us pray to the Lord: Lord, hear our prayer. " +
			"For the Church throughout the world, — may she be one."
		g, ok := lauds.ParseIntercessionGroup(lauds.IntercessionSegment{Text: text}, []string{"Lord, hear our prayer."})

		require.True(t, ok)
		assert.Equal(t, "Let us pray to the Lord:", g.Introduction)
		assert.Equal(t, "Lord, hear our prayer.", g.ResponseLine)
		require.Len(t, g.Intentions, 1)
	})

	t.Run("scopes intentions to each category independently", func(t *testing.T) {
		t.Parallel()

		window := "INTERCESSIONS [Pastors] Christ the shepherd: Nourish your people, Lord. " +
			"You made your saints shepherds of the flock, — guide us always. " +
			"[Doctors] Christ the teacher: Nourish your people, Lord. " +
			"You filled the doctors with wisdom and light, — teach us your ways. " +
			"You opened the scriptures to your disciples, — open our minds."

		var groups []lauds.IntercessionGroup
		for _, seg := range lauds.SplitIntercessionCategories(window) {
			if g, ok := lauds.ParseIntercessionGroup(seg, nil); ok {
				groups = append(groups, g)
			}
		}

		require.Len(t, groups, 2)
		assert.Equal(t, "Pastors", groups[0].Category)
		assert.Len(t, groups[0].Intentions, 1)
		assert.Equal(t, "Doctors", groups[1].Category)
		assert.Len(t, groups[1].Intentions, 2)
	})
}
