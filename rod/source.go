package rod

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/lauds"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// DefaultTimeout bounds the whole navigation for one date.
const DefaultTimeout = 60 * time.Second

// consentTimeout bounds the search for a cookie banner, which is usually
// absent.
const consentTimeout = 2 * time.Second

// Link patterns, as JavaScript regular expressions matched against link
// text.
const (
	consentButtonRe = `/accept|accetta|chiudi|close/i`
	morningPrayerRe = `/Morning Prayer|Lauds|Lodi/i`
	readingsRe      = `/Readings|Letture/i`
)

// Ensure Source implements lauds.PageSource at compile time.
var _ lauds.PageSource = (*Source)(nil)

// Source fetches the pages for a date by navigating the site as a visitor
// would: set the date on the options page, open Breviary then Morning
// Prayer, then Reading then Readings.
//
// Source is safe for concurrent use; every call runs in its own incognito
// session.
type Source struct {
	manager *BrowserManager
	baseURL string
	timeout time.Duration
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithBaseURL sets the site root. Defaults to lauds.DefaultBaseURL.
func WithBaseURL(u string) SourceOption {
	return func(s *Source) {
		s.baseURL = u
	}
}

// WithTimeout bounds the navigation for one date. Defaults to
// DefaultTimeout.
func WithTimeout(d time.Duration) SourceOption {
	return func(s *Source) {
		s.timeout = d
	}
}

// NewSource creates a Source on top of manager. Closing the Source closes
// the manager.
func NewSource(manager *BrowserManager, opts ...SourceOption) *Source {
	s := &Source{
		manager: manager,
		baseURL: lauds.DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchPages returns the Morning Prayer and readings pages for date. A
// failure to reach the readings leaves Pages.Readings empty.
func (s *Source) FetchPages(ctx context.Context, date time.Time) (*lauds.Pages, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session, release, err := s.manager.Session()
	if err != nil {
		return nil, err
	}
	defer release()

	page, err := stealth.Page(session)
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := s.selectDate(page, date); err != nil {
		return nil, fmt.Errorf("selecting date %s: %w", date.Format(lauds.DateLayout), err)
	}

	morning, err := navigate(page, "a[href*='breviario.php']", morningPrayerRe)
	if err != nil {
		return nil, fmt.Errorf("morning prayer: %w", err)
	}

	pages := &lauds.Pages{MorningPrayer: morning}
	if readings, err := navigate(page, "a[href*='letture.php']", readingsRe); err == nil {
		pages.Readings = readings
	}
	return pages, nil
}

// selectDate opens the options page and submits the date form.
func (s *Source) selectDate(page *rod.Page, date time.Time) error {
	if err := page.Navigate(s.baseURL); err != nil {
		return err
	}
	if err := page.WaitLoad(); err != nil {
		return err
	}
	dismissConsent(page)

	if err := click(page, "a[href*='opzioni.php']"); err != nil {
		return fmt.Errorf("options link: %w", err)
	}

	if err := input(page, "input[name='giorno']", strconv.Itoa(date.Day())); err != nil {
		return fmt.Errorf("day field: %w", err)
	}
	month, err := page.Element("select[name='mese']")
	if err != nil {
		return fmt.Errorf("month field: %w", err)
	}
	if _, err := month.Eval(`(i) => { this.selectedIndex = i }`, int(date.Month())-1); err != nil {
		return fmt.Errorf("month field: %w", err)
	}
	if err := input(page, "input[name='anno']", strconv.Itoa(date.Year())); err != nil {
		return fmt.Errorf("year field: %w", err)
	}

	return click(page, "[name='ok']")
}

// navigate follows the section tab matching selector, then the link whose
// text matches linkRe, and returns the resulting page.
func navigate(page *rod.Page, selector, linkRe string) (string, error) {
	if err := click(page, selector); err != nil {
		return "", err
	}
	link, err := page.ElementR("a", linkRe)
	if err != nil {
		return "", err
	}
	if err := follow(page, link); err != nil {
		return "", err
	}
	html, err := page.HTML()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(html) == "" {
		return "", lauds.Errorf(lauds.ENOTFOUND, "empty page")
	}
	return html, nil
}

func click(page *rod.Page, selector string) error {
	el, err := page.Element(selector)
	if err != nil {
		return err
	}
	return follow(page, el)
}

// follow clicks el and waits for the navigation it triggers to load.
func follow(page *rod.Page, el *rod.Element) error {
	wait := page.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return err
	}
	wait()
	return nil
}

func input(page *rod.Page, selector, value string) error {
	el, err := page.Element(selector)
	if err != nil {
		return err
	}
	if err := el.SelectAllText(); err != nil {
		return err
	}
	return el.Input(value)
}

// dismissConsent clicks away a cookie banner if one appears.
func dismissConsent(page *rod.Page) {
	el, err := page.Timeout(consentTimeout).ElementR("button", consentButtonRe)
	if err != nil {
		return
	}
	_ = el.CancelTimeout().Click(proto.InputMouseButtonLeft, 1)
}

// Close closes the browser manager.
func (s *Source) Close() error {
	return s.manager.Close()
}
