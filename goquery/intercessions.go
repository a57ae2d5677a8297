package goquery

import (
	"html"

	"github.com/fwojciec/lauds"
	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every tag, leaving a space where one stood so that
// petitions split across line breaks keep their word boundaries.
var stripPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// ExtractIntercessions extracts the intercession groups from the rendered
// markup of a Morning Prayer document. The window runs from the last
// INTERCESSIONS label to the Lord's Prayer or "Let us pray.", and is split
// on category tags into independently parsed groups. responses overrides
// the known congregational responses.
func ExtractIntercessions(doc *Document, responses []string) ([]lauds.IntercessionGroup, error) {
	w, err := lauds.Locate(doc.HTML(), lauds.IntercessionsLocator)
	if err != nil {
		return nil, err
	}

	text := StripMarkup(w.Text)

	var groups []lauds.IntercessionGroup
	for _, seg := range lauds.SplitIntercessionCategories(text) {
		if g, ok := lauds.ParseIntercessionGroup(seg, responses); ok {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return nil, lauds.Errorf(lauds.ENOTFOUND, "no intercessions found")
	}
	return groups, nil
}

// StripMarkup removes all tags from a markup fragment and decodes entities.
func StripMarkup(fragment string) string {
	return html.UnescapeString(stripPolicy.Sanitize(fragment))
}
