package lauds

import (
	"regexp"
	"strings"
)

// IntercessionsFallback bounds the intercessions window when neither the
// Lord's Prayer nor "Let us pray." follows it.
const IntercessionsFallback = 3000

// MinPetitionLength is the length below which a petition is treated as a
// mis-split fragment.
const MinPetitionLength = 20

// DefaultIntercessionResponses are the congregational responses the
// breviary uses to introduce intercessions.
var DefaultIntercessionResponses = []string{
	"Nourish your people, Lord.",
	"You redeemed us by your blood.",
}

// IntercessionCategories are the commons that tag alternative groups of
// intercessions on memorials.
var IntercessionCategories = []string{
	"Martyrs",
	"Pastors",
	"Doctors",
	"Virgins",
	"Holy Men and Women",
}

var (
	intercessionsRe = Marker(`INTERCESSIONS`)
	categoryTagsRe  = Marker(`\[(Martyrs|Pastors|Doctors|Virgins|Holy Men and Women)\]`)
	intentionRe     = regexp.MustCompile(`([^—]+?)—\s*([^—]+?)\.`)
)

// IntercessionsLocator is the locator for the intercessions window. The
// label also appears in navigation chrome, so the last occurrence is used.
var IntercessionsLocator = Locator{
	Start:      intercessionsRe,
	Stops:      []*regexp.Regexp{Marker(`THE\s+LORD\S{1,6}S\s+PRAYER`), Marker(`Let\s+us\s+pray\.`)},
	Occurrence: Last,
	Fallback:   IntercessionsFallback,
}

// IntercessionSegment is the raw text of one intercession group.
type IntercessionSegment struct {
	Category string
	Text     string
}

// SplitIntercessionCategories splits an intercessions window on category
// tags. A window without tags is one untagged segment. When tags are present
// the text before the first tag is the ferial heading and is dropped.
func SplitIntercessionCategories(window string) []IntercessionSegment {
	locs := categoryTagsRe.FindAllStringSubmatchIndex(window, -1)
	if len(locs) == 0 {
		return []IntercessionSegment{{Text: window}}
	}

	segments := make([]IntercessionSegment, 0, len(locs))
	for i, loc := range locs {
		end := len(window)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segments = append(segments, IntercessionSegment{
			Category: window[loc[2]:loc[3]],
			Text:     window[loc[1]:end],
		})
	}
	return segments
}

// ParseIntercessionGroup parses the plain text of one group. The
// introduction is the text before the first response phrase, and intentions
// are the "petition — response." pairs after it with response phrases
// removed. ok is false when the group has neither an introduction nor
// intentions.
func ParseIntercessionGroup(seg IntercessionSegment, responses []string) (group IntercessionGroup, ok bool) {
	if len(responses) == 0 {
		responses = DefaultIntercessionResponses
	}
	phrases := responsePatterns(responses)

	group.Category = seg.Category
	text := NormalizeDashes(seg.Text)

	intentions := text
	if i, phrase := firstPhrase(text, phrases); i >= 0 {
		intro := intercessionsRe.ReplaceAllString(text[:i], "")
		group.Introduction = CollapseWhitespace(intro)
		group.ResponseLine = responses[phrase]
		intentions = text[i:]
	}

	for _, p := range phrases {
		intentions = p.full.ReplaceAllString(intentions, " ")
	}

	for _, m := range intentionRe.FindAllStringSubmatch(intentions, -1) {
		petition := strings.TrimLeft(CollapseWhitespace(m[1]), ", ")
		response := EnsureTerminalPunctuation(CollapseWhitespace(m[2]))
		if len(petition) < MinPetitionLength || isNoisePetition(petition, phrases) {
			continue
		}
		if petition == "" || response == "" {
			continue
		}
		group.Intentions = append(group.Intentions, Intention{Petition: petition, Response: response})
	}

	return group, group.Introduction != "" || len(group.Intentions) > 0
}

// phrasePattern matches a response phrase with and without its punctuation.
type phrasePattern struct {
	prefix *regexp.Regexp
	full   *regexp.Regexp
}

func responsePatterns(responses []string) []phrasePattern {
	patterns := make([]phrasePattern, 0, len(responses))
	for _, r := range responses {
		words := strings.Fields(strings.TrimRight(r, ".!?"))
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		body := strings.Join(words, `\s+`)
		patterns = append(patterns, phrasePattern{
			prefix: Marker(body),
			full:   Marker(body + `[.!?]?`),
		})
	}
	return patterns
}

// firstPhrase returns the offset of the earliest response phrase and its
// index, or -1.
func firstPhrase(text string, phrases []phrasePattern) (offset, index int) {
	offset, index = -1, -1
	for i, p := range phrases {
		if loc := p.prefix.FindStringIndex(text); loc != nil && (offset < 0 || loc[0] < offset) {
			offset, index = loc[0], i
		}
	}
	return offset, index
}

func isNoisePetition(petition string, phrases []phrasePattern) bool {
	if intercessionsRe.MatchString(petition) {
		return true
	}
	for _, p := range phrases {
		if p.prefix.MatchString(petition) {
			return true
		}
	}
	return false
}
