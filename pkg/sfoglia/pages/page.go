package pages

// Guard is a predicate run when a page is entered or left.
// Returning false vetoes the transition. A nil Guard always permits it.
//
// Guards must be safe to call multiple times: the controller re-runs the
// current page's enter guard when it falls back after a failed transition,
// and never assumes a guard remembers earlier calls.
type Guard func() bool

// Page is a single step in a wizard flow. It holds the two transition
// guards and a display label; all navigation behavior lives in the
// Controller.
type Page struct {
	Enter Guard  // Runs when the page becomes the displayed page
	Leave Guard  // Runs when the page stops being the displayed page
	Label string // Display label (cosmetic, owned by rendering)
}

func (p Page) enter() bool {
	return p.Enter == nil || p.Enter()
}

func (p Page) leave() bool {
	return p.Leave == nil || p.Leave()
}

// Observer is notified after every successful state change so a progress
// indicator can mirror the controller. Calls are advisory and synchronous;
// implementations must not block or call back into the controller.
type Observer interface {
	// PageCountChanged fires when pages are added or removed.
	PageCountChanged(count int)
	// PageChanged fires when a page is opened. upTo is the furthest
	// page index successfully entered so far.
	PageChanged(current, upTo int)
}

// Presenter receives show/hide callbacks for the page that is actually
// displayed. Skimmed pages are never shown. Implementations must not call
// back into the controller.
type Presenter interface {
	ShowPage(id int)
	HidePage(id int)
}
