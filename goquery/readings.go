package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lauds"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	psalmLabelRe       = regexp.MustCompile(`(?i)Responsorial\s+Psalm`)
	psalmSectionEndRe  = regexp.MustCompile(`(?i)Second\s+Reading|Gospel|Acclamation`)
	psalmSkipRe        = regexp.MustCompile(`R\. :|Ps |(?i:Responsorial\s+Psalm)|(?i:Second\s+Reading)`)
	acclamationTitleRe = regexp.MustCompile(`(?i)Acclamation\s+before\s+the\s+Gospel`)
	gospelTitleRe      = regexp.MustCompile(`(?i)^Gospel$`)
	alleluiaRe         = regexp.MustCompile(`(?i)^Alleluia,\s*alleluia\.?$`)
	proclamationRe     = regexp.MustCompile(`reading from the holy Gospel`)
	gospelClosingRe    = regexp.MustCompile(`(?i)^The\s+Gospel\s+of\s+the\s+Lord\.?$`)
)

// ExtractFirstReading extracts the first reading from a readings document.
func ExtractFirstReading(doc *Document) (lauds.FirstReading, error) {
	return lauds.ExtractFirstReading(doc.Text)
}

// ExtractResponsorialPsalm extracts the responsorial psalm. The paragraphs
// following the "Responsorial Psalm" label up to a horizontal rule or the
// next section label hold the response and the stanzas.
func ExtractResponsorialPsalm(doc *Document) (lauds.ResponsorialPsalm, error) {
	citation, err := lauds.ParsePsalmCitation(doc.Text)
	if err != nil {
		return lauds.ResponsorialPsalm{}, err
	}

	paragraphs := psalmParagraphs(doc)
	if len(paragraphs) == 0 {
		return lauds.ResponsorialPsalm{}, lauds.Errorf(lauds.ENOTFOUND, "responsorial psalm has no paragraphs")
	}

	response, err := psalmResponse(paragraphs)
	if err != nil {
		return lauds.ResponsorialPsalm{}, err
	}

	var texts []string
	for _, p := range paragraphs {
		if psalmSkipRe.MatchString(flatten(p)) {
			continue
		}
		texts = append(texts, lineText(p, false))
	}
	stanzas := lauds.PsalmStanzas(texts)
	if len(stanzas) == 0 {
		return lauds.ResponsorialPsalm{}, lauds.Errorf(lauds.ENOTFOUND, "responsorial psalm has no stanzas")
	}
	return lauds.BuildResponsorialPsalm(citation, response, stanzas), nil
}

// psalmParagraphs returns the paragraphs after the psalm label in document
// order, stopping at a horizontal rule or the paragraph opening the next
// section.
func psalmParagraphs(doc *Document) []*html.Node {
	label := findText(doc.Selection.Nodes[0], psalmLabelRe)
	if label == nil || label.Parent == nil {
		return nil
	}

	var paragraphs []*html.Node
	started, done := false, false
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if done {
			return
		}
		if n == label.Parent {
			started = true
			return
		}
		if started && n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Hr:
				done = true
				return
			case atom.P:
				if psalmSectionEndRe.MatchString(flatten(n)) {
					done = true
					return
				}
				paragraphs = append(paragraphs, n)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Selection.Nodes[0])
	return paragraphs
}

// psalmResponse finds the response announced after the "R. :" marker
// paragraph, or in the first paragraph carrying a response sign.
func psalmResponse(paragraphs []*html.Node) (lauds.PsalmResponse, error) {
	for i, p := range paragraphs {
		if strings.TrimSpace(flatten(p)) == "R. :" && i+1 < len(paragraphs) {
			return lauds.ParsePsalmResponse(lineText(paragraphs[i+1], false))
		}
	}
	for _, p := range paragraphs {
		if text := lineText(p, false); strings.Contains(text, lauds.ResponseSign) {
			return lauds.ParsePsalmResponse(text)
		}
	}
	return lauds.PsalmResponse{}, lauds.Errorf(lauds.ENOTFOUND, "psalm response not found")
}

// ExtractGospelAcclamation extracts the verse sung before the Gospel from
// the paragraph following its title, without the alleluia refrain.
func ExtractGospelAcclamation(doc *Document) (lauds.GospelAcclamation, error) {
	title := sectionTitle(doc, acclamationTitleRe)
	if title.Length() == 0 {
		return lauds.GospelAcclamation{}, lauds.Errorf(lauds.ENOTFOUND, "acclamation title not found")
	}

	acc := lauds.GospelAcclamation{Citation: strings.TrimSpace(title.Find("span.citazione").First().Text())}

	verse := title.NextAllFiltered("p").First()
	if verse.Length() == 0 {
		return acc, lauds.Errorf(lauds.ENOTFOUND, "acclamation verse not found")
	}
	verse = verse.Clone()
	verse.Find("span.rubrica").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == lauds.ResponseSign
	}).Remove()
	verse.Find("strong").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return alleluiaRe.MatchString(strings.TrimSpace(s.Text()))
	}).Remove()

	acc.Verse = lauds.NormalizeLines(lineText(verse.Nodes[0], false))
	if acc.Verse == "" {
		return acc, lauds.Errorf(lauds.ENOTFOUND, "acclamation verse is empty")
	}
	return acc, nil
}

// ExtractGospel extracts the Gospel. The title paragraph carries the
// citation, the next paragraph the introduction, and the one after it the
// proclamation followed by the text up to "The Gospel of the Lord.".
func ExtractGospel(doc *Document) (lauds.Gospel, error) {
	title := sectionTitle(doc, gospelTitleRe)
	if title.Length() == 0 {
		return lauds.Gospel{}, lauds.Errorf(lauds.ENOTFOUND, "gospel title not found")
	}

	g := lauds.Gospel{
		Citation: strings.TrimSpace(title.Find("span.citazione").First().Text()),
		Closing:  lauds.GospelClosing,
		Response: lauds.GospelResponse,
	}

	intro := title.NextAllFiltered("p").First()
	if intro.Length() == 0 {
		return g, lauds.Errorf(lauds.ENOTFOUND, "gospel introduction not found")
	}
	g.IntroText = strings.TrimSpace(intro.Text())

	body := intro.NextAllFiltered("p").First()
	if body.Length() == 0 {
		return g, lauds.Errorf(lauds.ENOTFOUND, "gospel text not found")
	}

	body.Find("strong").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := strings.TrimSpace(s.Text()); proclamationRe.MatchString(t) {
			g.Proclamation = "✠ " + strings.TrimSpace(strings.TrimPrefix(t, "✠"))
			return false
		}
		return true
	})

	g.Text = lauds.CleanGospelText(gospelBody(body.Nodes[0]))
	if g.Text == "" {
		return g, lauds.Errorf(lauds.ENOTFOUND, "gospel text is empty")
	}
	return g, nil
}

// gospelBody returns the text of the Gospel paragraph between the first
// bold heading and the closing acclamation. Rubrics are skipped.
func gospelBody(p *html.Node) string {
	var b strings.Builder
	opened := false
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Strong {
			text := strings.TrimSpace(flatten(c))
			if gospelClosingRe.MatchString(text) {
				break
			}
			if !opened {
				opened = true
				continue
			}
		}
		if !opened {
			continue
		}
		if isRubric(c) {
			continue
		}
		b.WriteString(lineText(c, true))
	}
	if !opened {
		return lineText(p, true)
	}
	return b.String()
}

// sectionTitle returns the paragraph containing the span.titolo heading
// matching re.
func sectionTitle(doc *Document, re *regexp.Regexp) *goquery.Selection {
	return doc.Selection.Find("span.titolo").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return re.MatchString(strings.TrimSpace(s.Text()))
	}).First().Closest("p")
}

// findText returns the first text node under n matching re.
func findText(n *html.Node, re *regexp.Regexp) *html.Node {
	if n.Type == html.TextNode && re.MatchString(n.Data) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findText(c, re); found != nil {
			return found
		}
	}
	return nil
}
