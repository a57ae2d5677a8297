package main

import (
	"fmt"

	"github.com/fwojciec/lauds"
	"github.com/fwojciec/lauds/fs"
	"github.com/fwojciec/lauds/goquery"
)

// inspectLocators maps the sections that can be inspected to the locators
// that find them.
var inspectLocators = map[string]lauds.Locator{
	lauds.SectionShortReading:     lauds.ShortReadingLocator,
	lauds.SectionResponsory:       lauds.ResponsoryLocator,
	lauds.SectionIntercessions:    lauds.IntercessionsLocator,
	lauds.SectionConcludingPrayer: lauds.ConcludingPrayerLocator,
}

// Run executes the inspect command. The section is located on the rendered
// markup, so rubrics and line breaks survive into the Markdown.
func (c *InspectCmd) Run(deps *Dependencies) error {
	loc, ok := inspectLocators[c.Section]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: cannot inspect section %q\n", c.Section)
		return lauds.Errorf(lauds.EINVALID, "cannot inspect section %q", c.Section)
	}

	content, err := fs.ReadPage(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	doc, err := goquery.NewDocument(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	w, err := lauds.Locate(doc.HTML(), loc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(w.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lauds.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	if !w.Terminated {
		fmt.Fprintln(deps.Stderr, "warning: no end marker found, window was cut at its length bound")
	}
	return nil
}
