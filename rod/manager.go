// Package rod acquires breviary pages by driving a headless Chrome browser
// with go-rod. The site only lets a visitor pick a date through its options
// form, so each date is fetched in its own incognito session.
package rod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxSessions is the default number of sessions before the browser
// is relaunched.
const DefaultMaxSessions = 20

// errClosed is returned for sessions requested after Close.
var errClosed = errors.New("browser manager closed")

// chrome is one launched Chrome process and the connection to it.
type chrome struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	open     int  // sessions not yet released
	retired  bool // replaced; closed when the last session is released
}

func launchChrome() (*chrome, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("window-size", "1920,1080").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &chrome{browser: b, launcher: l}, nil
}

func (c *chrome) close() error {
	err := c.browser.Close()
	c.launcher.Kill()
	return err
}

// BrowserManager owns the Chrome process and hands out incognito sessions.
// Chrome's memory never returns to its baseline, so a fresh process is
// launched once maxSessions sessions have been opened on the current one.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu          sync.Mutex
	current     *chrome
	sessions    int
	maxSessions int
	closed      bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxSessions sets the number of sessions opened on one Chrome process
// before it is replaced.
func WithMaxSessions(n int) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxSessions = n
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxSessions: DefaultMaxSessions}
	for _, opt := range opts {
		opt(bm)
	}

	c, err := launchChrome()
	if err != nil {
		return nil, err
	}
	bm.current = c
	return bm, nil
}

// Session returns a fresh incognito browser context with its own cookies,
// so that the date chosen in one session does not leak into another. The
// caller must call release when done with it.
func (bm *BrowserManager) Session() (session *rod.Browser, release func(), err error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, errClosed
	}
	bm.relaunchIfWorn()

	c := bm.current
	session, err = c.browser.Incognito()
	if err != nil {
		return nil, nil, fmt.Errorf("opening incognito session: %w", err)
	}
	bm.sessions++
	c.open++

	var once sync.Once
	release = func() {
		once.Do(func() {
			_ = session.Close()
			bm.mu.Lock()
			defer bm.mu.Unlock()
			c.open--
			if c.retired && c.open == 0 {
				_ = c.close()
			}
		})
	}
	return session, release, nil
}

// Browser returns the browser sessions are currently opened on.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.relaunchIfWorn()
	return bm.current.browser
}

// relaunchIfWorn replaces the current Chrome once it has served
// maxSessions sessions. The old process lives on until its open sessions
// are released. A failed launch keeps the old process in service.
// Must be called with mu held.
func (bm *BrowserManager) relaunchIfWorn() {
	if bm.sessions < bm.maxSessions {
		return
	}
	fresh, err := launchChrome()
	if err != nil {
		return
	}
	old := bm.current
	old.retired = true
	if old.open == 0 {
		_ = old.close()
	}
	bm.current = fresh
	bm.sessions = 0
}

// Close shuts down the current Chrome. Retired processes with sessions
// still open are closed by their last release. Close is safe to call
// multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return bm.current.close()
}

// LauncherPID returns the process ID of the running Chrome launcher, or 0
// once the manager is closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return 0
	}
	return bm.current.launcher.PID()
}
