// Package htmltomarkdown renders breviary markup as Markdown for inspection.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lauds"
	"golang.org/x/net/html/atom"
)

// spanTags maps the styled spans of the breviary to the tags whose Markdown
// rendering matches their meaning: red rubrics read as emphasis and section
// titles as strong text.
var spanTags = map[string]atom.Atom{
	"span.rubrica": atom.Em,
	"span.titolo":  atom.Strong,
}

// Ensure Converter implements lauds.Converter at compile time.
var _ lauds.Converter = (*Converter)(nil)

// Converter converts breviary HTML fragments to Markdown.
type Converter struct {
	conv    *converter.Converter
	baseURL string
}

// Option configures a Converter.
type Option func(*Converter)

// WithBaseURL resolves relative links against u.
func WithBaseURL(u string) Option {
	return func(c *Converter) {
		c.baseURL = u
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", lauds.Errorf(lauds.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", lauds.Errorf(lauds.EINVALID, "failed to parse HTML: %v", err)
	}
	for selector, tag := range spanTags {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			n := s.Nodes[0]
			n.DataAtom = tag
			n.Data = tag.String()
			s.RemoveAttr("class")
		})
	}
	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	if c.baseURL != "" {
		return c.conv.ConvertString(body, converter.WithDomain(c.baseURL))
	}
	return c.conv.ConvertString(body)
}
