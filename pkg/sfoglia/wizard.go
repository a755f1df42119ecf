package sfoglia

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/pages"
	"github.com/holoplot/go-evdev"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/veandco/go-sdl2/sdl"
)

// WizardPage describes one step of a wizard. Guards decide whether the
// page may be entered or left; see the pages package for the navigation
// rules they participate in.
type WizardPage struct {
	Label   string      // Page title; also drawn under the progress marker with bar labels on
	LabelID string      // i18n message id for the title; overrides Label when a localizer is set
	Body    string      // Body text, word-wrapped
	BodyID  string      // i18n message id for the body
	Enter   pages.Guard // Runs when the page becomes the displayed page
	Leave   pages.Guard // Runs when the page stops being displayed, and on completion for the last page
}

// WizardSettings configures the wizard component.
type WizardSettings struct {
	// InitialUpTo is the furthest page the user counts as having already
	// viewed. Direct jumps can never land more than one page past it.
	InitialUpTo int
	// EnforceUpTo forbids skipping pages never viewed before: every page
	// must be displayed at least once on the way forward.
	EnforceUpTo bool
	// Localizer resolves LabelID/BodyID message ids (optional).
	Localizer *i18n.Localizer
	// ProgressStyle overrides the progress bar appearance (optional).
	ProgressStyle *ProgressStyle
	// FooterHelpItems replaces the default footer hints (optional).
	FooterHelpItems []FooterHelpItem
	// PageKeyDevice is an evdev device path for hardware page-turn keys.
	// Empty falls back to the PAGE_KEY_DEVICE environment variable; if
	// that is empty too, hardware keys are disabled.
	PageKeyDevice string
	// PageKeyNext and PageKeyPrev are the evdev key codes that page
	// forward and backward. Defaults: KEY_PAGEDOWN, KEY_PAGEUP.
	PageKeyNext evdev.EvCode
	PageKeyPrev evdev.EvCode
}

// WizardResult reports how the wizard ended.
type WizardResult struct {
	Completed bool // True when the user confirmed past the last page
	LastPage  int  // Page displayed when the wizard ended
}

type wizardController struct {
	ctrl          *pages.Controller
	bar           *ProgressBar
	labels        []string
	bodies        []string
	footerItems   []FooterHelpItem
	log           *slog.Logger
	pageKeys      <-chan internal.PageKeyEvent
	inputDelay    time.Duration
	lastInputTime time.Time
	completed     bool
	cancelled     bool
}

// wizardPresenter receives the controller's show/hide callbacks. The
// wizard redraws from controller state every frame, so display changes
// only need to be traced.
type wizardPresenter struct {
	log *slog.Logger
}

func (p *wizardPresenter) ShowPage(id int) {
	p.log.Debug("Page shown", "page", id)
}

func (p *wizardPresenter) HidePage(id int) {
	p.log.Debug("Page hidden", "page", id)
}

// Wizard runs a guarded multi-page wizard until the user completes or
// cancels it. Left/Right and Enter navigate; clicking a progress marker
// jumps to that page, subject to the controller's reach rules; Escape or
// closing the window cancels with ErrCancelled.
//
// Pressing Enter on the last page completes the wizard if that page's
// leave guard permits it.
func Wizard(wizPages []WizardPage, settings WizardSettings) (*WizardResult, error) {
	if len(wizPages) == 0 {
		return nil, ErrCancelled
	}

	window := internal.GetWindow()
	log := internal.GetInternalLogger()

	style := DefaultProgressStyle()
	if settings.ProgressStyle != nil {
		style = *settings.ProgressStyle
	}
	bar := NewProgressBar(style)
	defer bar.Destroy()

	labels := make([]string, len(wizPages))
	bodies := make([]string, len(wizPages))
	corePages := make([]pages.Page, len(wizPages))
	for i, wp := range wizPages {
		labels[i] = localizedText(settings.Localizer, wp.LabelID, wp.Label)
		bodies[i] = localizedText(settings.Localizer, wp.BodyID, wp.Body)
		corePages[i] = pages.Page{Enter: wp.Enter, Leave: wp.Leave, Label: labels[i]}
	}
	bar.SetLabels(labels)

	opts := []pages.Option{
		pages.WithPages(corePages...),
		pages.WithUpTo(settings.InitialUpTo),
		pages.WithObserver(bar),
		pages.WithPresenter(&wizardPresenter{log: log}),
		pages.WithLogger(log),
	}
	if settings.EnforceUpTo {
		opts = append(opts, pages.WithEnforceUpTo())
	}
	ctrl := pages.New(opts...)

	if ctrl.Current() < 0 {
		return nil, fmt.Errorf("first page refused entry: %w", pages.ErrVetoed)
	}

	controller := &wizardController{
		ctrl:          ctrl,
		bar:           bar,
		labels:        labels,
		bodies:        bodies,
		footerItems:   settings.FooterHelpItems,
		log:           log,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}
	if controller.footerItems == nil {
		controller.footerItems = []FooterHelpItem{
			{ButtonName: "←/→", HelpText: "Navigate"},
			{ButtonName: "Enter", HelpText: "Next"},
			{ButtonName: "Esc", HelpText: "Cancel"},
		}
	}

	done := make(chan struct{})
	defer close(done)
	controller.startPageKeys(done, settings)

	for {
		if !controller.handleEvents() {
			break
		}
		if !controller.handlePageKeys() {
			break
		}
		controller.render(window)
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}
	return &WizardResult{
		Completed: controller.completed,
		LastPage:  ctrl.Current(),
	}, nil
}

func (c *wizardController) startPageKeys(done <-chan struct{}, settings WizardSettings) {
	devicePath := settings.PageKeyDevice
	if devicePath == "" {
		devicePath = os.Getenv(constants.PageKeyDeviceEnvVar)
	}
	if devicePath == "" {
		return
	}

	next := settings.PageKeyNext
	if next == 0 {
		next = evdev.KEY_PAGEDOWN
	}
	prev := settings.PageKeyPrev
	if prev == 0 {
		prev = evdev.KEY_PAGEUP
	}

	keys, err := internal.PageKeyWatcher(done, internal.PageKeyConfig{
		DevicePath: devicePath,
		NextCode:   next,
		PrevCode:   prev,
	})
	if err != nil {
		c.log.Warn("Hardware page keys unavailable", "device", devicePath, "error", err)
		return
	}
	c.pageKeys = keys
}

func (c *wizardController) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || !c.debounce() {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_RIGHT, sdl.K_RETURN, sdl.K_KP_ENTER:
				if !c.advance() {
					return false
				}
			case sdl.K_LEFT:
				c.back()
			case sdl.K_ESCAPE:
				c.cancelled = true
				return false
			}

		case *sdl.MouseButtonEvent:
			if ev.Type == sdl.MOUSEBUTTONDOWN && ev.Button == sdl.BUTTON_LEFT && c.debounce() {
				if !c.click(ev.X, ev.Y) {
					return false
				}
			}
		}
	}
	return true
}

func (c *wizardController) handlePageKeys() bool {
	if c.pageKeys == nil {
		return true
	}
	select {
	case key, ok := <-c.pageKeys:
		if !ok {
			c.pageKeys = nil
			return true
		}
		if key == internal.PageKeyNext {
			return c.advance()
		}
		c.back()
	default:
	}
	return true
}

func (c *wizardController) debounce() bool {
	if time.Since(c.lastInputTime) < c.inputDelay {
		return false
	}
	c.lastInputTime = time.Now()
	return true
}

// advance moves to the next page, or completes the wizard from the last
// page. Returns false when the event loop should stop.
func (c *wizardController) advance() bool {
	if c.ctrl.Current() == c.ctrl.Count()-1 {
		// The last page's leave guard has the final say on completion.
		page, err := c.ctrl.CurrentPage()
		if err != nil {
			return true
		}
		if page.Leave == nil || page.Leave() {
			c.completed = true
			return false
		}
		c.log.Debug("Completion vetoed", "page", c.ctrl.Current())
		return true
	}
	c.navigate(c.ctrl.Current() + 1)
	return true
}

func (c *wizardController) back() {
	if c.ctrl.Current() > 0 {
		c.navigate(c.ctrl.Current() - 1)
	}
}

// click routes a mouse press through the progress bar's hit areas.
// Returns false when the event loop should stop.
func (c *wizardController) click(x, y int32) bool {
	if dir := c.bar.ArrowHitTest(x, y); dir != 0 {
		if dir < 0 {
			c.back()
			return true
		}
		return c.advance()
	}
	if id := c.bar.HitTest(x, y); id >= 0 {
		c.navigate(id)
	}
	return true
}

func (c *wizardController) navigate(id int) {
	err := c.ctrl.ChangePage(id)
	switch {
	case err == nil:
	case pages.IsRangeError(err):
		c.log.Error("Navigation target out of range", "target", id, "error", err)
	case errors.Is(err, pages.ErrBeyondReach):
		c.log.Debug("Jump beyond reach denied", "target", id)
	case pages.IsVetoed(err):
		c.log.Debug("Transition vetoed", "target", id, "landed", c.ctrl.Current())
	default:
		c.log.Error("Navigation failed", "target", id, "error", err)
	}
}

func (c *wizardController) render(window *internal.Window) {
	renderer := window.Renderer
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G,
		theme.BackgroundColor.B, theme.BackgroundColor.A)
	renderer.Clear()

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()
	centerX := windowWidth / 2

	current := c.ctrl.Current()
	if current >= 0 && current < len(c.labels) {
		titleY := windowHeight / 8
		internal.RenderMultilineText(renderer, c.labels[current], internal.Fonts.LargeFont,
			windowWidth*3/4, centerX, titleY, theme.TextColor, constants.TextAlignCenter)

		bodyY := windowHeight / 4
		internal.RenderMultilineText(renderer, c.bodies[current], internal.Fonts.MediumFont,
			windowWidth*3/4, centerX, bodyY, theme.TextColor, constants.TextAlignCenter)
	}

	pad := internal.UniformPadding(40)
	barHeight := int32(80)
	c.bar.SetBounds(sdl.Rect{
		X: pad.Left,
		Y: windowHeight - barHeight - 100,
		W: windowWidth - pad.Horizontal(),
		H: barHeight,
	})
	c.bar.Render(renderer)

	renderFooter(renderer, internal.Fonts.SmallFont, c.footerItems, 20)

	window.Present()
}
