// Package pages provides guarded linear navigation for wizard-style flows.
//
// A Controller owns an ordered sequence of pages and decides whether a
// transition between them is allowed. Every page carries two guards: an
// enter guard that runs when the page becomes the displayed page, and a
// leave guard that runs when it stops being displayed. A guard returning
// false vetoes the transition; the controller falls back to the last
// known-good page and reports the failure.
//
// Moving forward past intermediate pages "skims" them: each skipped page's
// enter and leave guards run back to back with no display in between, so
// one-time side effects (validation, initialization) still fire exactly once
// per pass. Backward and same-page moves never skim.
//
// # Basic Usage
//
//	ctrl := pages.New(
//	    pages.WithPages(
//	        pages.Page{Label: "Welcome"},
//	        pages.Page{Label: "License", Leave: acceptedLicense},
//	        pages.Page{Label: "Install"},
//	    ),
//	)
//
//	// Advance to the next page. Fails with ErrVetoed if the license
//	// page's leave guard says no.
//	if err := ctrl.ChangePage(); err != nil {
//	    // still on the license page
//	}
//
// # Reach Enforcement
//
// The controller tracks upTo, the furthest page index ever successfully
// entered. A direct jump can never land more than one page past upTo.
// With WithEnforceUpTo the policy is stricter: pages never visited before
// cannot be skimmed either, so every page must be displayed at least once
// on the way forward.
//
// # Observers and Presenters
//
// An Observer is notified after every successful state change so a progress
// indicator can redraw. A Presenter receives show/hide callbacks for the
// page that is actually displayed. Both are optional; the controller never
// depends on their behavior.
//
// Controllers are single-threaded and synchronous. Guards must not call
// back into their own controller; such calls fail with ErrReentrant.
package pages
