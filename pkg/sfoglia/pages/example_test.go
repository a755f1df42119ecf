package pages_test

import (
	"fmt"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/pages"
)

// Example demonstrates guarded navigation through a three-step setup flow.
func Example() {
	licenseAccepted := false

	ctrl := pages.New(pages.WithPages(
		pages.Page{Label: "Welcome"},
		pages.Page{
			Label: "License",
			Leave: func() bool {
				if !licenseAccepted {
					fmt.Println("License: not accepted, staying put")
				}
				return licenseAccepted
			},
		},
		pages.Page{Label: "Install"},
	))

	fmt.Printf("Start: page %d\n", ctrl.Current())

	// Forward onto the license page.
	if err := ctrl.ChangePage(); err == nil {
		fmt.Printf("Now on: page %d\n", ctrl.Current())
	}

	// The license page refuses to let us leave until accepted.
	if err := ctrl.ChangePage(); pages.IsVetoed(err) {
		fmt.Printf("Still on: page %d\n", ctrl.Current())
	}

	licenseAccepted = true
	if err := ctrl.ChangePage(); err == nil {
		fmt.Printf("Now on: page %d\n", ctrl.Current())
	}

	// Output:
	// Start: page 0
	// Now on: page 1
	// License: not accepted, staying put
	// Still on: page 1
	// License: not accepted, staying put
	// Now on: page 2
}

// Example_skimming shows intermediate pages running their guards without
// being displayed when jumping several pages forward.
func Example_skimming() {
	logged := func(name string) (pages.Guard, pages.Guard) {
		enter := func() bool {
			fmt.Printf("%s: enter\n", name)
			return true
		}
		leave := func() bool {
			fmt.Printf("%s: leave\n", name)
			return true
		}
		return enter, leave
	}

	var pgs []pages.Page
	for _, name := range []string{"p0", "p1", "p2", "p3"} {
		enter, leave := logged(name)
		pgs = append(pgs, pages.Page{Enter: enter, Leave: leave, Label: name})
	}

	ctrl := pages.New(pages.WithPages(pgs...))

	// Jump straight to the last page: p1 and p2 are skimmed, their
	// guards running back to back with no display in between.
	if err := ctrl.ChangePage(3); err == nil {
		fmt.Printf("Landed on page %d, reached %d\n", ctrl.Current(), ctrl.UpTo())
	}

	// Output:
	// p0: enter
	// p0: leave
	// p1: enter
	// p1: leave
	// p2: enter
	// p2: leave
	// p3: enter
	// Landed on page 3, reached 3
}
