package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lauds"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var psalmodyRe = regexp.MustCompile(`(?i)PSALMODY`)

// Document is a parsed breviary page: its tag tree and flattened text.
type Document struct {
	// Selection is the root of the parsed tag tree.
	Selection *goquery.Selection

	// Text is the tree flattened with one newline between text nodes.
	Text string

	// Psalmody is Text from the first "PSALMODY" label onwards, or all of
	// Text when the label is missing. Hymn and navigation text precede it.
	Psalmody string

	hasPsalmody bool
}

// NewDocument parses html into a Document.
func NewDocument(htmlContent string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, lauds.Errorf(lauds.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{
		Selection: doc.Selection,
		Text:      flatten(doc.Nodes...),
	}
	d.Psalmody = d.Text
	if loc := psalmodyRe.FindStringIndex(d.Text); loc != nil {
		d.Psalmody = d.Text[loc[0]:]
		d.hasPsalmody = true
	}
	return d, nil
}

// HasPsalmody reports whether the PSALMODY label was found.
func (d *Document) HasPsalmody() bool {
	return d.hasPsalmody
}

// HTML renders the parsed tree back to markup.
func (d *Document) HTML() string {
	s, err := d.Selection.Html()
	if err != nil {
		return ""
	}
	return s
}

// flatten joins the text nodes under nodes with newlines, skipping scripts,
// styles and whitespace-only text.
func flatten(nodes ...*html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				parts = append(parts, n.Data)
			}
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

// lineText returns the text under n with <br> as a line break. Red rubric
// spans are skipped when skipRubrics is set.
func lineText(n *html.Node, skipRubrics bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch {
			case n.DataAtom == atom.Br:
				b.WriteByte('\n')
				return
			case n.DataAtom == atom.Script || n.DataAtom == atom.Style:
				return
			case skipRubrics && isRubric(n):
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.DataAtom == atom.P || n.DataAtom == atom.Div {
			b.WriteByte('\n')
		}
	}
	walk(n)
	return b.String()
}

// renderSiblings renders the nodes following n within its parent.
func renderSiblings(n *html.Node) string {
	var b strings.Builder
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if err := html.Render(&b, s); err != nil {
			break
		}
	}
	return b.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func isRubric(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Span && hasClass(n, "rubrica")
}

// findRubric returns the first red rubric whose trimmed text matches re.
func findRubric(root *goquery.Selection, re *regexp.Regexp) *goquery.Selection {
	return root.Find("span.rubrica").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return re.MatchString(strings.TrimSpace(s.Text()))
	}).First()
}
