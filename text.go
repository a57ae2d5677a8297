package lauds

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// EmDash is the canonical repeat marker used by responsories and intercessions.
const EmDash = "—"

var dashReplacer = strings.NewReplacer("–", EmDash, "―", EmDash)

var doxologyRe = regexp.MustCompile(`(?i)^\W*glory\s+(?:to\s+the\s+father|be)\b`)

// CollapseWhitespace replaces every run of whitespace (including non-breaking
// spaces) with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EnsureTerminalPunctuation appends a period unless s already ends with
// terminal punctuation or a closing quote. Empty input stays empty.
func EnsureTerminalPunctuation(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if s == "" {
		return s
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	switch r {
	case '.', '!', '?', '"', '”', '’':
		return s
	}
	return s + "."
}

// NormalizeVerse collapses whitespace and guarantees terminal punctuation.
func NormalizeVerse(s string) string {
	return EnsureTerminalPunctuation(CollapseWhitespace(s))
}

// NormalizeDashes maps the en dash and horizontal bar to the em dash.
func NormalizeDashes(s string) string {
	return dashReplacer.Replace(s)
}

// NormalizeLines NFC-normalizes s, collapses whitespace within each line and
// drops blank lines. Line breaks are preserved.
func NormalizeLines(s string) string {
	s = norm.NFC.String(s)
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = CollapseWhitespace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// IsDoxology reports whether s opens with the "Glory to the Father" or
// "Glory be" formula.
func IsDoxology(s string) bool {
	return doxologyRe.MatchString(s)
}

// SplitSentences splits s after '.', '!' or '?' (and any closing quotes) when
// the next non-space character is an upper-case letter or an opening quote.
// Whitespace is collapsed; no text is lost.
func SplitSentences(s string) []string {
	s = CollapseWhitespace(s)
	if s == "" {
		return nil
	}

	var sentences []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		end := i + 1
		for end < len(runes) && isClosingQuote(runes[end]) {
			end++
		}
		if end+1 >= len(runes) || runes[end] != ' ' {
			continue
		}
		next := runes[end+1]
		if !unicode.IsUpper(next) && !isOpeningQuote(next) {
			continue
		}
		sentences = append(sentences, strings.TrimSpace(string(runes[start:end])))
		start = end + 1
		i = end
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// firstSentence returns s up to and including the first terminal punctuation
// mark. ok is false when s has no terminator.
func firstSentence(s string) (sentence string, ok bool) {
	i := strings.IndexAny(s, ".!?")
	if i < 0 {
		return s, false
	}
	return s[:i+1], true
}

// WrapLines splits a sentence into lines no longer than width characters.
// It prefers breaking after clause punctuation and falls back to packing
// words. A single word longer than width gets a line of its own.
func WrapLines(s string, width int) []string {
	s = CollapseWhitespace(s)
	if s == "" {
		return nil
	}
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return []string{s}
	}

	var lines []string
	var current string
	for _, clause := range splitClauses(s) {
		switch {
		case current == "":
			current = clause
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(clause) <= width:
			current += " " + clause
		default:
			lines = append(lines, packWords(current, width)...)
			current = clause
		}
	}
	if current != "" {
		lines = append(lines, packWords(current, width)...)
	}
	return lines
}

// splitClauses splits after commas, semicolons and colons.
func splitClauses(s string) []string {
	var clauses []string
	start := 0
	for i, r := range s {
		if r != ',' && r != ';' && r != ':' {
			continue
		}
		if i+1 < len(s) && s[i+1] == ' ' {
			clauses = append(clauses, s[start:i+1])
			start = i + 2
		}
	}
	if start < len(s) {
		clauses = append(clauses, s[start:])
	}
	return clauses
}

func packWords(s string, width int) []string {
	var lines []string
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		if b.Len() > 0 && utf8.RuneCountInString(b.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// truncateWords cuts s to at most limit characters at a word boundary and
// appends "...".
func truncateWords(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "..."
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosingQuote(r rune) bool {
	return r == '"' || r == '”' || r == '’' || r == ')'
}

func isOpeningQuote(r rune) bool {
	return r == '"' || r == '“' || r == '‘' || r == '('
}
