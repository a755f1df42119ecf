package pages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/pages"
)

// recorder captures observer and presenter callbacks for assertions.
type recorder struct {
	countChanges []int
	pageChanges  [][2]int
	shown        []int
	hidden       []int
}

func (r *recorder) PageCountChanged(count int)    { r.countChanges = append(r.countChanges, count) }
func (r *recorder) PageChanged(current, upTo int) { r.pageChanges = append(r.pageChanges, [2]int{current, upTo}) }
func (r *recorder) ShowPage(id int)               { r.shown = append(r.shown, id) }
func (r *recorder) HidePage(id int)               { r.hidden = append(r.hidden, id) }

func no() bool { return false }

// counted returns a guard that increments n on every call.
func counted(n *int, result bool) pages.Guard {
	return func() bool {
		*n++
		return result
	}
}

// freePages returns n pages with nil guards, free to enter and leave.
func freePages(n int) []pages.Page {
	return make([]pages.Page, n)
}

func assertState(t *testing.T, ctrl *pages.Controller, upTo, count, current int) {
	t.Helper()
	assert.Equal(t, upTo, ctrl.UpTo(), "upTo")
	assert.Equal(t, count, ctrl.Count(), "count")
	assert.Equal(t, current, ctrl.Current(), "current")
}

func TestEmptyController(t *testing.T) {
	ctrl := pages.New()
	assertState(t, ctrl, -1, 0, -1)

	_, err := ctrl.CurrentPage()
	assert.True(t, pages.IsRangeError(err))
}

func TestAddPagesOpensFirstPage(t *testing.T) {
	ctrl := pages.New()
	ctrl.AddPages(freePages(2)...)
	assertState(t, ctrl, 0, 2, 0)

	require.NoError(t, ctrl.ChangePage())
	assertState(t, ctrl, 1, 2, 1)
}

func TestAddPagesFirstEntryVetoed(t *testing.T) {
	enters := 0
	ctrl := pages.New(pages.WithPages(pages.Page{Enter: counted(&enters, false)}))

	assert.Equal(t, 1, enters)
	assertState(t, ctrl, -1, 1, -1)

	// Later adds retry page 0 while nothing is displayed.
	ctrl.AddPages(freePages(1)...)
	assert.Equal(t, 2, enters)
	assertState(t, ctrl, -1, 2, -1)
}

func TestDirectJumpCeiling(t *testing.T) {
	// Scenario: 4 free pages, initial ceiling 1, no enforcement.
	ctrl := pages.New(pages.WithPages(freePages(4)...), pages.WithUpTo(1))
	assertState(t, ctrl, 1, 4, 0)

	err := ctrl.SkipToPage(3)
	require.ErrorIs(t, err, pages.ErrBeyondReach)
	assertState(t, ctrl, 1, 4, 0)

	require.NoError(t, ctrl.SkipToPage(2))
	assertState(t, ctrl, 2, 4, 2)
}

func TestSkimEnterVetoFallsBack(t *testing.T) {
	// Page 2 refuses entry; navigation lands back on page 1, the last
	// page whose entry succeeded.
	p1Enters, p1Leaves, p2Enters := 0, 0, 0
	ctrl := pages.New(
		pages.WithPages(
			pages.Page{},
			pages.Page{Enter: counted(&p1Enters, true), Leave: counted(&p1Leaves, true)},
			pages.Page{Enter: counted(&p2Enters, false)},
			pages.Page{},
		),
		pages.WithUpTo(2),
	)

	err := ctrl.ChangePage(2)
	require.ErrorIs(t, err, pages.ErrVetoed)
	assertState(t, ctrl, 2, 4, 1)

	// Page 1 was skimmed once, then re-entered as the fallback page.
	assert.Equal(t, 2, p1Enters)
	assert.Equal(t, 1, p1Leaves)
	assert.Equal(t, 1, p2Enters)
}

func TestSkimLeaveVetoDisplaysSkimmedPage(t *testing.T) {
	// Page 1 lets you in but not out; since its entry succeeded it
	// becomes the displayed page.
	ctrl := pages.New(
		pages.WithPages(
			pages.Page{},
			pages.Page{Leave: no},
			pages.Page{},
			pages.Page{},
		),
		pages.WithUpTo(2),
	)

	err := ctrl.ChangePage(2)
	require.ErrorIs(t, err, pages.ErrVetoed)
	assertState(t, ctrl, 2, 4, 1)
}

func TestOutOfRangeTarget(t *testing.T) {
	leaves := 0
	ctrl := pages.New(pages.WithPages(
		pages.Page{Leave: counted(&leaves, true)},
		pages.Page{},
	))

	for _, target := range []int{-1, 2, 99} {
		err := ctrl.ChangePage(target)

		var rangeErr *pages.RangeError
		require.ErrorAs(t, err, &rangeErr, "target %d", target)
		assert.Equal(t, target, rangeErr.ID)
		assert.Equal(t, 2, rangeErr.Count)
		assert.False(t, pages.IsVetoed(err))
		assertState(t, ctrl, 0, 2, 0)
	}

	// Validation happens before any guard runs.
	assert.Equal(t, 0, leaves)
}

func TestRefreshIsIdempotent(t *testing.T) {
	ctrl := pages.New(pages.WithPages(freePages(3)...))
	require.NoError(t, ctrl.ChangePage(1))

	require.NoError(t, ctrl.ChangePage(1))
	assertState(t, ctrl, 1, 3, 1)
}

func TestLeaveVetoAbortsWholeChange(t *testing.T) {
	rec := &recorder{}
	ctrl := pages.New(
		pages.WithPages(pages.Page{Leave: no}, pages.Page{}),
		pages.WithPresenter(rec),
	)

	err := ctrl.ChangePage(1)
	require.ErrorIs(t, err, pages.ErrVetoed)
	assertState(t, ctrl, 0, 2, 0)

	// The vetoed page was never hidden.
	assert.Empty(t, rec.hidden)
}

func TestForwardSkimsOnlyStrictlyBetween(t *testing.T) {
	p1Enters, p1Leaves, p2Enters, p2Leaves, p3Enters := 0, 0, 0, 0, 0
	ctrl := pages.New(pages.WithPages(
		pages.Page{},
		pages.Page{Enter: counted(&p1Enters, true), Leave: counted(&p1Leaves, true)},
		pages.Page{Enter: counted(&p2Enters, true), Leave: counted(&p2Leaves, true)},
		pages.Page{Enter: counted(&p3Enters, true)},
	))

	require.NoError(t, ctrl.ChangePage(3))
	assertState(t, ctrl, 3, 4, 3)

	// Pages 1 and 2 were skimmed: enter and leave ran back to back.
	// Page 3 is the destination: entered, never left.
	assert.Equal(t, 1, p1Enters)
	assert.Equal(t, 1, p1Leaves)
	assert.Equal(t, 1, p2Enters)
	assert.Equal(t, 1, p2Leaves)
	assert.Equal(t, 1, p3Enters)
}

func TestAdjacentForwardNeverSkims(t *testing.T) {
	p1Enters, p1Leaves := 0, 0
	ctrl := pages.New(pages.WithPages(
		pages.Page{},
		pages.Page{Enter: counted(&p1Enters, true), Leave: counted(&p1Leaves, true)},
	))

	require.NoError(t, ctrl.ChangePage())
	assert.Equal(t, 1, p1Enters)
	assert.Equal(t, 0, p1Leaves)
}

func TestBackwardNeverSkims(t *testing.T) {
	p1Enters, p1Leaves, p2Enters, p2Leaves := 0, 0, 0, 0
	ctrl := pages.New(pages.WithPages(
		pages.Page{},
		pages.Page{Enter: counted(&p1Enters, true), Leave: counted(&p1Leaves, true)},
		pages.Page{Enter: counted(&p2Enters, true), Leave: counted(&p2Leaves, true)},
		pages.Page{},
	))
	require.NoError(t, ctrl.ChangePage(3))
	p1Enters, p1Leaves, p2Enters, p2Leaves = 0, 0, 0, 0

	require.NoError(t, ctrl.ChangePage(0))
	assertState(t, ctrl, 3, 4, 0)

	// Only page 3's leave and page 0's enter ran.
	assert.Zero(t, p1Enters)
	assert.Zero(t, p1Leaves)
	assert.Zero(t, p2Enters)
	assert.Zero(t, p2Leaves)
}

func TestEnforceUpToStepsOnePageAtATime(t *testing.T) {
	rec := &recorder{}
	ctrl := pages.New(
		pages.WithPages(freePages(4)...),
		pages.WithEnforceUpTo(),
		pages.WithPresenter(rec),
	)
	assertState(t, ctrl, 0, 4, 0)

	// Never-visited pages cannot be skimmed past.
	err := ctrl.ChangePage(2)
	require.ErrorIs(t, err, pages.ErrBeyondReach)
	assertState(t, ctrl, 0, 4, 0)

	require.NoError(t, ctrl.ChangePage())
	require.NoError(t, ctrl.ChangePage())
	assertState(t, ctrl, 2, 4, 2)

	// Once visited, pages may be skimmed on a later pass.
	require.NoError(t, ctrl.ChangePage(0))
	rec.shown = nil
	require.NoError(t, ctrl.ChangePage(2))
	assertState(t, ctrl, 2, 4, 2)
	assert.Equal(t, []int{2}, rec.shown, "page 1 should be skimmed, not displayed")
}

func TestRemovePage(t *testing.T) {
	ctrl := pages.New(pages.WithPages(freePages(4)...))
	require.NoError(t, ctrl.ChangePage(2))
	assertState(t, ctrl, 2, 4, 2)

	// Removing above the current page shifts nothing.
	require.NoError(t, ctrl.RemovePage(3))
	assertState(t, ctrl, 2, 3, 2)

	// Removing at or below shifts current and upTo down.
	require.NoError(t, ctrl.RemovePage(0))
	assertState(t, ctrl, 1, 2, 1)

	err := ctrl.RemovePage(5)
	assert.True(t, pages.IsRangeError(err))

	err = ctrl.RemovePage(-1)
	assert.True(t, pages.IsRangeError(err))
}

func TestRemovePageNeverBelowMinusOne(t *testing.T) {
	ctrl := pages.New(pages.WithPages(freePages(1)...))
	assertState(t, ctrl, 0, 1, 0)

	require.NoError(t, ctrl.RemovePage(0))
	assertState(t, ctrl, -1, 0, -1)

	err := ctrl.RemovePage(0)
	assert.True(t, pages.IsRangeError(err))
}

func TestUpToRaisedBySkimming(t *testing.T) {
	ctrl := pages.New(pages.WithPages(freePages(5)...))
	require.NoError(t, ctrl.ChangePage(4))
	assert.Equal(t, 4, ctrl.UpTo())

	// upTo is non-decreasing on backward moves.
	require.NoError(t, ctrl.ChangePage(1))
	assert.Equal(t, 4, ctrl.UpTo())
}

func TestObserverNotifications(t *testing.T) {
	rec := &recorder{}
	ctrl := pages.New(pages.WithObserver(rec))

	ctrl.AddPages(freePages(2)...)
	assert.Equal(t, []int{2}, rec.countChanges)
	assert.Equal(t, [][2]int{{0, 0}}, rec.pageChanges)

	require.NoError(t, ctrl.ChangePage())
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}}, rec.pageChanges)

	// Out-of-range failures never reach the observer.
	rec.pageChanges = nil
	_ = ctrl.ChangePage(9)
	assert.Empty(t, rec.pageChanges)
}

func TestPresenterSeesOnlyDisplayedPages(t *testing.T) {
	rec := &recorder{}
	ctrl := pages.New(
		pages.WithPages(freePages(4)...),
		pages.WithPresenter(rec),
	)

	require.NoError(t, ctrl.ChangePage(3))

	assert.Equal(t, []int{0, 3}, rec.shown)
	assert.Equal(t, []int{0}, rec.hidden)
}

func TestReentrantCallFails(t *testing.T) {
	var ctrl *pages.Controller
	var innerErr error

	ctrl = pages.New(pages.WithPages(
		pages.Page{},
		pages.Page{Enter: func() bool {
			innerErr = ctrl.ChangePage(0)
			return true
		}},
	))

	require.NoError(t, ctrl.ChangePage())
	assert.ErrorIs(t, innerErr, pages.ErrReentrant)
	assertState(t, ctrl, 1, 2, 1)
}

func TestStateInvariantsHold(t *testing.T) {
	ctrl := pages.New(pages.WithPages(freePages(5)...), pages.WithUpTo(3))

	check := func() {
		t.Helper()
		count, current, upTo := ctrl.Count(), ctrl.Current(), ctrl.UpTo()
		if count == 0 {
			assert.Equal(t, -1, current)
			return
		}
		if current >= 0 {
			assert.Less(t, current, count)
			assert.LessOrEqual(t, current, upTo)
		}
	}

	_ = ctrl.ChangePage(4)
	check()
	_ = ctrl.ChangePage(2)
	check()
	_ = ctrl.SkipToPage(1)
	check()
	_ = ctrl.RemovePage(0)
	check()
	_ = ctrl.ChangePage(0)
	check()
	for ctrl.Count() > 0 {
		require.NoError(t, ctrl.RemovePage(ctrl.Count()-1))
		check()
	}
}

func TestPageQueries(t *testing.T) {
	ctrl := pages.New(pages.WithPages(
		pages.Page{Label: "intro"},
		pages.Page{Label: "details"},
	))

	page, err := ctrl.Page(1)
	require.NoError(t, err)
	assert.Equal(t, "details", page.Label)

	page, err = ctrl.CurrentPage()
	require.NoError(t, err)
	assert.Equal(t, "intro", page.Label)

	_, err = ctrl.Page(7)
	assert.True(t, pages.IsRangeError(err))
}

func TestVetoErrorsAreNotRangeErrors(t *testing.T) {
	ctrl := pages.New(pages.WithPages(pages.Page{Leave: no}, pages.Page{}))

	err := ctrl.ChangePage(1)
	assert.True(t, pages.IsVetoed(err))
	assert.False(t, pages.IsRangeError(err))
	assert.False(t, errors.Is(err, pages.ErrBeyondReach))
}
