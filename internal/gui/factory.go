// Package gui builds the shell's Fyne windows. Each window's content is
// presentation only and reaches the host solely through the bridge it is
// handed.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"office97/internal/bridge"
	"office97/internal/hostsvc"
	"office97/internal/logger"
	"office97/internal/window"
)

var navy = color.RGBA{R: 0, G: 0, B: 128, A: 255}

// IconSource supplies window icons and installer artwork. Nil resources are
// allowed and fall back to Fyne defaults.
type IconSource interface {
	Icon(name string) fyne.Resource
	Sidebar() fyne.Resource
	Header() fyne.Resource
}

type FactoryOptions struct {
	LegacyLauncher bool
	SplashDuration time.Duration
	// Persistent hides windows on user close instead of destroying them.
	Persistent bool
	Icons          IconSource
	Logger         logger.Logger
}

// Factory creates shell windows on a Fyne application. Create must run on
// the UI goroutine.
type Factory struct {
	app    fyne.App
	opts   FactoryOptions
	logger logger.Logger
	parked *keepAliveWindow
}

func NewFactory(a fyne.App, opts FactoryOptions) *Factory {
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Factory{app: a, opts: opts, logger: log}
}

// Spec returns the geometry used for kind.
func (f *Factory) Spec(kind window.Kind) window.Spec {
	if kind == window.Launcher && f.opts.LegacyLauncher {
		return window.LegacyLauncher
	}
	return window.SpecFor(kind)
}

// Create builds, shows and returns the window for kind.
func (f *Factory) Create(kind window.Kind, caps bridge.Set) (window.Handle, error) {
	if err := checkCapabilities(kind, caps); err != nil {
		return nil, err
	}

	spec := f.Spec(kind)
	w := f.newWindow(spec)
	w.Resize(fyne.NewSize(spec.Size.Width, spec.Size.Height))
	w.SetFixedSize(!spec.Resizable)
	w.SetMainMenu(nil)
	if res := f.icon(spec.Icon); res != nil {
		w.SetIcon(res)
	}

	var handle window.Handle = w
	if f.opts.Persistent {
		kw := &keepAliveWindow{Window: w, factory: f}
		w.SetCloseIntercept(kw.RequestClose)
		handle = kw
	}

	bindOwner(caps, w)
	content, shown := f.content(kind, caps, w)
	w.SetContent(content)
	w.CenterOnScreen()
	w.Show()
	f.releaseParked()
	if shown != nil {
		shown()
	}

	f.logger.Debug("WindowFactory", "window created", map[string]interface{}{
		"kind":      kind.String(),
		"width":     spec.Size.Width,
		"height":    spec.Size.Height,
		"frameless": spec.Frameless,
	})
	return handle, nil
}

func (f *Factory) newWindow(spec window.Spec) fyne.Window {
	if spec.Frameless {
		if drv, ok := f.app.Driver().(desktop.Driver); ok {
			return drv.CreateSplashWindow()
		}
	}
	return f.app.NewWindow(spec.Title)
}

func (f *Factory) icon(name string) fyne.Resource {
	if f.opts.Icons == nil || name == "" {
		return nil
	}
	return f.opts.Icons.Icon(name)
}

func (f *Factory) artwork(get func(IconSource) fyne.Resource) fyne.Resource {
	if f.opts.Icons == nil {
		return nil
	}
	return get(f.opts.Icons)
}

// content builds the body for kind. The returned func, if any, runs after
// the window is shown.
func (f *Factory) content(kind window.Kind, caps bridge.Set, w fyne.Window) (fyne.CanvasObject, func()) {
	switch kind {
	case window.Splash:
		v := newSplashView(caps.Splash, f.artwork(IconSource.Sidebar), f.opts.SplashDuration)
		return v.content, v.run
	case window.Setup:
		v := newSetupView(caps.Setup, w, f.artwork(IconSource.Header))
		return v.content, nil
	case window.Launcher:
		v := newLauncherView(caps.Launcher, f.opts.Icons, f.opts.LegacyLauncher)
		return v.content, nil
	case window.Outlook:
		v := newMailView(caps.Mail, f.logger)
		if caps.Mail == nil {
			return v.content, nil
		}
		return v.content, func() { fyne.Do(caps.Mail.Ready) }
	default:
		v := newDocumentView(kind, caps.Documents, f.logger)
		return v.content, nil
	}
}

func checkCapabilities(kind window.Kind, caps bridge.Set) error {
	var missing bool
	switch kind {
	case window.Splash:
		missing = caps.Splash == nil
	case window.Setup:
		missing = caps.Setup == nil
	case window.Launcher:
		missing = caps.Launcher == nil
	default:
		if !kind.IsApp() {
			return fmt.Errorf("unknown window kind %d", int(kind))
		}
	}
	if missing {
		return fmt.Errorf("%s window requires its bridge", kind)
	}
	return nil
}

// bindOwner makes the bridge's dialogs modal to w.
func bindOwner(caps bridge.Set, w fyne.Window) {
	dialogs := hostsvc.NewFyneDialogs(w)
	for _, b := range []interface{}{caps.Documents, caps.Mail} {
		if binder, ok := b.(bridge.OwnerBinder); ok {
			binder.BindOwner(dialogs)
		}
	}
}
