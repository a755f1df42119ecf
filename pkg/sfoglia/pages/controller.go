package pages

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"
)

// Controller owns an ordered sequence of pages and the navigation state:
// the currently displayed page, the furthest page reached, and the reach
// enforcement policy. All state mutation goes through its methods; pages
// never mutate navigation state themselves.
//
// A Controller is not safe for concurrent use. Guards run synchronously on
// the calling goroutine.
type Controller struct {
	pages     []Page
	current   int
	upTo      int
	enforce   bool
	observer  Observer
	presenter Presenter
	log       *slog.Logger

	// busy trips when a guard calls back into the controller.
	busy atomic.Bool

	initial []Page
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithPages sets the initial page sequence. Equivalent to calling AddPages
// immediately after New, so the first page's enter guard runs during
// construction.
func WithPages(pgs ...Page) Option {
	return func(c *Controller) { c.initial = pgs }
}

// WithUpTo sets the initial reach ceiling. The value may exceed what has
// actually been visited; it is a configured ceiling, not only an observed
// one.
func WithUpTo(upTo int) Option {
	return func(c *Controller) { c.upTo = upTo }
}

// WithEnforceUpTo forbids skimming pages that have never been visited.
// Every page must then be displayed at least once on the way forward, and
// the furthest page reachable in a single forward change is UpTo()+1.
func WithEnforceUpTo() Option {
	return func(c *Controller) { c.enforce = true }
}

// WithObserver sets the progress observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithPresenter sets the page presenter.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) { c.presenter = p }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a Controller. With no pages the controller starts empty:
// page count 0, current page -1.
func New(opts ...Option) *Controller {
	c := &Controller{
		current: -1,
		upTo:    -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if len(c.initial) > 0 {
		c.addPages(c.initial)
		c.initial = nil
	}
	return c
}

// UpTo returns the furthest page index successfully entered so far, or -1
// if no page has been entered and no ceiling was configured.
func (c *Controller) UpTo() int {
	return c.upTo
}

// Count returns the number of pages being managed.
func (c *Controller) Count() int {
	return len(c.pages)
}

// Current returns the id of the displayed page, or -1 if none.
func (c *Controller) Current() int {
	return c.current
}

// Page returns the page with the given id.
func (c *Controller) Page(id int) (Page, error) {
	if id < 0 || id >= len(c.pages) {
		return Page{}, &RangeError{Op: "get", ID: id, Count: len(c.pages)}
	}
	return c.pages[id], nil
}

// CurrentPage returns the displayed page. Fails with a RangeError when the
// controller is empty.
func (c *Controller) CurrentPage() (Page, error) {
	return c.Page(c.current)
}

// AddPages appends pages to the end of the sequence. If no page is
// displayed yet, the controller immediately tries to open page 0; if that
// entry is vetoed, the current page stays -1 until the next navigation.
func (c *Controller) AddPages(pgs ...Page) {
	if len(pgs) == 0 {
		return
	}
	if !c.busy.CompareAndSwap(false, true) {
		c.log.Error("Re-entrant AddPages call from guard ignored")
		return
	}
	defer c.busy.Store(false)

	c.addPages(pgs)
}

func (c *Controller) addPages(pgs []Page) {
	c.pages = append(c.pages, pgs...)
	if c.current < 0 {
		if !c.openPage(0) {
			c.log.Debug("First page vetoed entry, no page displayed")
		}
	}
	if c.observer != nil {
		c.observer.PageCountChanged(len(c.pages))
	}
}

// RemovePage detaches the page with the given id. Indices above id shift
// down by one; the current page and the reach ceiling shift with them,
// never below -1. No guards run.
func (c *Controller) RemovePage(id int) error {
	if id < 0 || id >= len(c.pages) {
		return &RangeError{Op: "remove", ID: id, Count: len(c.pages)}
	}
	c.pages = append(c.pages[:id], c.pages[id+1:]...)
	if c.current >= id {
		c.current--
	}
	if c.upTo >= id {
		c.upTo--
	}
	if c.observer != nil {
		c.observer.PageCountChanged(len(c.pages))
		c.observer.PageChanged(c.current, c.upTo)
	}
	return nil
}

// ChangePage navigates to the given page, or to the next page when no
// target is given. Changing to the current page refreshes it.
//
// Forward changes skim every intermediate page: each one's enter and leave
// guards run back to back without the page being displayed. Backward
// changes run only the current page's leave guard and the target's enter
// guard. On any veto the controller falls back to the last page whose
// entry succeeded and returns ErrVetoed; a target more than one page past
// UpTo() fails with ErrBeyondReach; an id outside [0, Count()) fails with
// a RangeError before any guard runs.
func (c *Controller) ChangePage(target ...int) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrReentrant
	}
	defer c.busy.Store(false)

	id := c.current + 1
	if len(target) > 0 {
		id = target[0]
	}
	return c.changePage(id)
}

func (c *Controller) changePage(id int) error {
	if id < 0 || id >= len(c.pages) {
		return &RangeError{Op: "change", ID: id, Count: len(c.pages)}
	}

	if c.current >= 0 && !c.closePage() {
		c.log.Debug("Leave vetoed", "page", c.current)
		return fmt.Errorf("leave page %d: %w", c.current, ErrVetoed)
	}

	if id < c.current {
		return c.skipToPage(id)
	}

	for c.canSkimNext(id) {
		c.current++
		skimmed := c.current
		if !c.pages[skimmed].enter() {
			c.fallbackTo(skimmed - 1)
			return fmt.Errorf("skim enter page %d: %w", skimmed, ErrVetoed)
		}
		if !c.pages[skimmed].leave() {
			// Entry succeeded, so the skimmed page becomes the
			// displayed page instead of being passed through.
			c.openPage(skimmed)
			return fmt.Errorf("skim leave page %d: %w", skimmed, ErrVetoed)
		}
		if c.upTo < skimmed {
			c.upTo = skimmed
		}
	}

	return c.skipToPage(id)
}

// SkipToPage jumps directly to the given page without skimming. The caller
// must already have closed the displayed page; ChangePage does this itself.
// A jump more than one page past UpTo() is denied regardless of policy.
func (c *Controller) SkipToPage(id int) error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrReentrant
	}
	defer c.busy.Store(false)

	return c.skipToPage(id)
}

func (c *Controller) skipToPage(id int) error {
	if id < 0 || id >= len(c.pages) {
		return &RangeError{Op: "skip", ID: id, Count: len(c.pages)}
	}
	if id > c.upTo+1 {
		c.reopenCurrent()
		return fmt.Errorf("skip to page %d with reach %d: %w", id, c.upTo+1, ErrBeyondReach)
	}
	if !c.openPage(id) {
		c.reopenCurrent()
		return fmt.Errorf("enter page %d: %w", id, ErrVetoed)
	}
	return nil
}

// canSkimNext reports whether the page after the current one may have its
// guards run without being displayed. Only pages strictly before the
// target qualify (the target itself is always opened for real). Under
// enforcement the next page must additionally have been reached before.
func (c *Controller) canSkimNext(target int) bool {
	if c.enforce {
		return c.upTo > c.current && c.current < target-1
	}
	return c.current < target-1
}

// openPage runs the enter guard and, on success, makes the page the
// displayed page, raises the reach ceiling and notifies the observer.
func (c *Controller) openPage(id int) bool {
	if !c.pages[id].enter() {
		return false
	}
	if c.presenter != nil {
		c.presenter.ShowPage(id)
	}
	c.current = id
	if c.upTo < id {
		c.upTo = id
	}
	if c.observer != nil {
		c.observer.PageChanged(c.current, c.upTo)
	}
	return true
}

// closePage runs the displayed page's leave guard and, on success, hides
// it. The current page is unchanged either way; the follow-up open decides
// where navigation lands.
func (c *Controller) closePage() bool {
	if !c.pages[c.current].leave() {
		return false
	}
	if c.presenter != nil {
		c.presenter.HidePage(c.current)
	}
	return true
}

// reopenCurrent reasserts the displayed page after a failed transition.
// The result is ignored: the page was displayable a moment ago and there
// is no better page to fall back to.
func (c *Controller) reopenCurrent() {
	if c.current >= 0 {
		c.openPage(c.current)
	}
}

// fallbackTo reopens the page navigation falls back to after a failed
// skim step. Skimming can start with no page ever displayed; falling back
// then returns to the empty state instead of a page.
func (c *Controller) fallbackTo(id int) {
	if id < 0 {
		c.current = -1
		return
	}
	c.openPage(id)
}

func (c *Controller) String() string {
	return fmt.Sprintf("pages.Controller{current: %d, upTo: %d, count: %d}",
		c.current, c.upTo, len(c.pages))
}
