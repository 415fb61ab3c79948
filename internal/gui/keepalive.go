package gui

import "fyne.io/fyne/v2"

// keepAliveWindow is returned in persistent mode. A user close hides the
// window and reports it closed; the hidden window stays registered with the
// driver until another window is shown, so the driver never runs out of
// windows and quits on its own.
type keepAliveWindow struct {
	fyne.Window
	factory  *Factory
	onClosed func()
	closed   bool
}

func (w *keepAliveWindow) SetOnClosed(fn func()) {
	w.onClosed = fn
	w.Window.SetOnClosed(w.reportClosed)
}

// RequestClose is the close intercept.
func (w *keepAliveWindow) RequestClose() {
	if w.closed {
		return
	}
	w.Window.Hide()
	w.factory.park(w)
	w.reportClosed()
}

func (w *keepAliveWindow) reportClosed() {
	if w.closed {
		return
	}
	w.closed = true
	if w.onClosed != nil {
		w.onClosed()
	}
}

// park holds w hidden, releasing any window parked before it.
func (f *Factory) park(w *keepAliveWindow) {
	if f.parked != nil && f.parked != w {
		f.parked.Window.Close()
	}
	f.parked = w
}

// releaseParked destroys the hidden window once another one is visible.
func (f *Factory) releaseParked() {
	if f.parked == nil {
		return
	}
	parked := f.parked
	f.parked = nil
	parked.Window.Close()
}
