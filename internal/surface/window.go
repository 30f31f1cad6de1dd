package surface

import (
	"fmt"
	"image"
	"os"
	"sync/atomic"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"

	"linestorm/internal/raster"
)

// WindowOptions configures an on-screen window.
type WindowOptions struct {
	Width  int
	Height int
	Title  string
}

// Window is a Surface backed by a native window. It is closed by the window
// manager or by pressing Escape.
type Window struct {
	wnd    screen.Window
	buf    screen.Buffer
	closed atomic.Bool
}

// RunWindow opens a window and calls run with it on a new goroutine while the
// calling goroutine services window events. It returns once run has returned.
// Platform drivers require this to be called from the main goroutine.
func RunWindow(opts WindowOptions, run func(w *Window)) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		wnd, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  opts.Width,
			Height: opts.Height,
			Title:  opts.Title,
		})
		if err != nil {
			runErr = fmt.Errorf("surface: create window: %w", err)
			return
		}
		defer wnd.Release()

		buf, err := s.NewBuffer(image.Point{X: opts.Width, Y: opts.Height})
		if err != nil {
			runErr = fmt.Errorf("surface: create buffer: %w", err)
			return
		}
		defer buf.Release()

		w := &Window{wnd: wnd, buf: buf}
		done := make(chan struct{})
		go func() {
			defer close(done)
			run(w)
			w.Close()
			wnd.Send(lifecycle.Event{From: lifecycle.StageAlive, To: lifecycle.StageDead})
		}()

		for {
			switch e := wnd.NextEvent().(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					w.closed.Store(true)
					<-done
					return
				}
			case key.Event:
				if e.Code == key.CodeEscape && e.Direction == key.DirPress {
					w.closed.Store(true)
				}
			case paint.Event:
				// Contents are re-sent with the next frame.
			case error:
				fmt.Fprintf(os.Stderr, "Warning: window: %v\n", e)
			}
		}
	})
	return runErr
}

// Present uploads buf to the window and publishes it.
func (w *Window) Present(buf *raster.PixelBuffer) error {
	if w.closed.Load() {
		return fmt.Errorf("surface: present on closed window")
	}
	buf.CopyToRGBA(w.buf.RGBA())
	w.wnd.Upload(image.Point{}, w.buf, w.buf.Bounds())
	w.wnd.Publish()
	return nil
}

// Closed reports whether the window was closed or Escape was pressed.
func (w *Window) Closed() bool {
	return w.closed.Load()
}

// Close marks the window closed; the event loop in RunWindow releases it.
func (w *Window) Close() error {
	w.closed.Store(true)
	return nil
}
