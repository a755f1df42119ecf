package internal

import (
	"github.com/holoplot/go-evdev"
)

// PageKeyConfig configures a raw evdev watcher for hardware page-turn keys.
// Some devices (clicker remotes, foot pedals, volume rockers on custom
// firmware) deliver key events that never reach the SDL event queue, so
// they are read straight from the input device.
type PageKeyConfig struct {
	DevicePath string       // e.g. /dev/input/event1
	NextCode   evdev.EvCode // Key code that pages forward
	PrevCode   evdev.EvCode // Key code that pages backward
}

// PageKeyEvent is a hardware page-turn request.
type PageKeyEvent int

const (
	PageKeyNext PageKeyEvent = iota
	PageKeyPrev
)

// PageKeyWatcher reads key events from the configured device on a
// background goroutine and delivers page-turn requests on the returned
// channel. The channel closes when done is closed or the device read fails.
// Events are dropped rather than buffered unboundedly when the consumer
// falls behind.
func PageKeyWatcher(done <-chan struct{}, cfg PageKeyConfig) (<-chan PageKeyEvent, error) {
	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, err
	}

	events := make(chan PageKeyEvent, 4)

	go func() {
		defer device.Close()
		defer close(events)

		for {
			select {
			case <-done:
				return
			default:
			}

			event, err := device.ReadOne()
			if err != nil {
				GetInternalLogger().Error("Page key device read failed", "device", cfg.DevicePath, "error", err)
				return
			}

			if event.Type != evdev.EV_KEY || event.Value != 1 {
				continue
			}

			var pk PageKeyEvent
			switch event.Code {
			case cfg.NextCode:
				pk = PageKeyNext
			case cfg.PrevCode:
				pk = PageKeyPrev
			default:
				continue
			}

			select {
			case events <- pk:
			default:
			}
		}
	}()

	return events, nil
}
