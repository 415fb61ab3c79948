package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office97/internal/bridge"
	"office97/internal/events"
	"office97/internal/firstrun"
	"office97/internal/startup"
	"office97/internal/window"
)

type fakeWindow struct {
	kind     window.Kind
	caps     bridge.Set
	closed   bool
	shown    int
	focused  int
	onClosed func()
}

func (w *fakeWindow) Show()                { w.shown++ }
func (w *fakeWindow) RequestFocus()        { w.focused++ }
func (w *fakeWindow) SetOnClosed(f func()) { w.onClosed = f }
func (w *fakeWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.onClosed != nil {
		w.onClosed()
	}
}

type fakeFactory struct {
	windows []*fakeWindow
	fail    map[window.Kind]error
}

func (f *fakeFactory) Create(kind window.Kind, caps bridge.Set) (window.Handle, error) {
	if err := f.fail[kind]; err != nil {
		return nil, err
	}
	w := &fakeWindow{kind: kind, caps: caps}
	f.windows = append(f.windows, w)
	return w, nil
}

func (f *fakeFactory) kinds() []window.Kind {
	out := make([]window.Kind, len(f.windows))
	for i, w := range f.windows {
		out[i] = w.kind
	}
	return out
}

func (f *fakeFactory) last(kind window.Kind) *fakeWindow {
	for i := len(f.windows) - 1; i >= 0; i-- {
		if f.windows[i].kind == kind {
			return f.windows[i]
		}
	}
	return nil
}

type harness struct {
	orch    *Orchestrator
	factory *fakeFactory
	bus     *events.Bus
	marker  *firstrun.Marker
	quits   int
	delays  []time.Duration
	queued  []func()
}

func newHarness(t *testing.T, args []string, mutate func(*OrchestratorOptions)) *harness {
	t.Helper()
	h := &harness{
		factory: &fakeFactory{},
		bus:     events.NewBus(nil),
		marker:  firstrun.NewMarker(filepath.Join(t.TempDir(), "userdata"), nil),
	}
	opts := OrchestratorOptions{
		Flags:   startup.ParseArgs(args),
		Factory: h.factory,
		Bus:     h.bus,
		Gate:    h.marker,
		Bridged: bridge.NewRegistry(window.Apps...),
		Quit:    func() { h.quits++ },
		Schedule: func(d time.Duration, fn func()) {
			h.delays = append(h.delays, d)
			h.queued = append(h.queued, fn)
		},
	}
	if mutate != nil {
		mutate(&opts)
	}
	h.orch = NewOrchestrator(opts)
	return h
}

func (h *harness) runQueued() {
	queued := h.queued
	h.queued = nil
	for _, fn := range queued {
		fn()
	}
}

func TestFirstRunGoesThroughSetup(t *testing.T) {
	h := newHarness(t, nil, nil)
	require.NoError(t, h.orch.Start())

	assert.Equal(t, startup.FirstRunSetup, h.orch.Intent().Mode)
	assert.Equal(t, []window.Kind{window.Splash}, h.factory.kinds())
	assert.Equal(t, PhaseSplash, h.orch.Phase())

	h.factory.last(window.Splash).caps.Splash.InstallerComplete()

	assert.Equal(t, []window.Kind{window.Splash, window.Setup}, h.factory.kinds())
	assert.True(t, h.factory.last(window.Splash).closed)
	assert.Equal(t, PhaseSetup, h.orch.Phase())
	assert.False(t, h.marker.Exists())

	h.factory.last(window.Setup).caps.Setup.Finish()

	assert.Equal(t, []window.Kind{window.Splash, window.Setup, window.Launcher}, h.factory.kinds())
	assert.True(t, h.factory.last(window.Setup).closed)
	assert.Equal(t, PhaseLauncher, h.orch.Phase())
	assert.True(t, h.marker.Exists())
	assert.Same(t, h.factory.last(window.Launcher), h.orch.Current())
	assert.Equal(t, 1, h.orch.LiveWindows())
	assert.Zero(t, h.quits)
}

func TestMarkerPresentSkipsSetup(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.marker.MarkDone()
	require.NoError(t, h.orch.Start())

	assert.Equal(t, startup.NormalLaunch, h.orch.Intent().Mode)
	h.factory.last(window.Splash).caps.Splash.InstallerComplete()

	assert.Equal(t, []window.Kind{window.Splash, window.Launcher}, h.factory.kinds())
	assert.Equal(t, PhaseLauncher, h.orch.Phase())
}

func TestNoSetupFlagFallsThroughToLauncher(t *testing.T) {
	h := newHarness(t, []string{"--no-setup"}, nil)
	require.NoError(t, h.orch.Start())
	h.bus.Publish(events.Event{Type: events.InstallerComplete})

	assert.Equal(t, []window.Kind{window.Splash, window.Launcher}, h.factory.kinds())
	assert.False(t, h.marker.Exists())
}

func TestDirectAppLaunchCreatesSingleWindow(t *testing.T) {
	h := newHarness(t, []string{"--excel"}, nil)
	require.NoError(t, h.orch.Start())

	assert.Equal(t, []window.Kind{window.Excel}, h.factory.kinds())
	assert.Equal(t, PhaseDirectApp, h.orch.Phase())
	assert.NotNil(t, h.factory.windows[0].caps.Documents)
	assert.Equal(t, window.Size{Width: 1000, Height: 720}, window.SpecFor(window.Excel).Size)

	h.bus.Publish(events.Event{Type: events.InstallerComplete})
	assert.Len(t, h.factory.windows, 1)
}

func TestDuplicateSignalsAreIgnored(t *testing.T) {
	h := newHarness(t, nil, nil)
	require.NoError(t, h.orch.Start())

	splash := h.factory.last(window.Splash).caps.Splash
	splash.InstallerComplete()
	splash.InstallerComplete()
	assert.Equal(t, []window.Kind{window.Splash, window.Setup}, h.factory.kinds())

	setup := h.factory.last(window.Setup).caps.Setup
	setup.Finish()
	setup.Finish()
	setup.Abort()

	assert.Equal(t, []window.Kind{window.Splash, window.Setup, window.Launcher}, h.factory.kinds())
	assert.Equal(t, PhaseLauncher, h.orch.Phase())
	assert.Zero(t, h.quits)
}

func TestSetupAbortQuits(t *testing.T) {
	h := newHarness(t, nil, nil)
	require.NoError(t, h.orch.Start())
	h.factory.last(window.Splash).caps.Splash.InstallerComplete()

	h.factory.last(window.Setup).caps.Setup.Abort()
	assert.Equal(t, 1, h.quits)
	assert.Equal(t, PhaseQuit, h.orch.Phase())

	h.factory.last(window.Setup).caps.Setup.Finish()
	assert.False(t, h.marker.Exists())
	assert.Equal(t, 1, h.quits)
}

func TestLaunchAppKeepsLauncherOpen(t *testing.T) {
	h := newHarness(t, []string{"--no-setup"}, nil)
	require.NoError(t, h.orch.Start())
	h.bus.Publish(events.Event{Type: events.InstallerComplete})

	launcher := h.factory.last(window.Launcher)
	launcher.caps.Launcher.LaunchApp(window.Word)
	launcher.caps.Launcher.LaunchApp(window.Access)

	assert.Equal(t, []window.Kind{window.Splash, window.Launcher, window.Word, window.Access}, h.factory.kinds())
	assert.False(t, launcher.closed)
	assert.Equal(t, PhaseLauncher, h.orch.Phase())
	assert.Same(t, launcher, h.orch.Current())
}

func TestUnbridgedAppGetsNoCapabilities(t *testing.T) {
	h := newHarness(t, []string{"--word"}, func(o *OrchestratorOptions) {
		o.Bridged = bridge.NewRegistry(window.Excel)
	})
	require.NoError(t, h.orch.Start())

	caps := h.factory.windows[0].caps
	assert.Nil(t, caps.Documents)
	assert.Nil(t, caps.Mail)
}

func TestSendToMailCreatesWindowAndDeliversOnceOnReady(t *testing.T) {
	h := newHarness(t, []string{"--word"}, func(o *OrchestratorOptions) {
		o.ComposeDelay = 500 * time.Millisecond
	})
	require.NoError(t, h.orch.Start())

	doc := bridge.DocumentInfo{Name: "report.doc", Path: "/docs/report.doc"}
	h.factory.last(window.Word).caps.Documents.SendToMail(doc)

	mailWin := h.factory.last(window.Outlook)
	require.NotNil(t, mailWin)
	require.NotNil(t, mailWin.caps.Mail)

	var received []bridge.DocumentInfo
	mailWin.caps.Mail.OnCompose(func(d bridge.DocumentInfo) { received = append(received, d) })
	assert.Empty(t, received)

	mailWin.caps.Mail.Ready()
	assert.Empty(t, received, "delivery waits for the compose delay")
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, h.delays)

	h.runQueued()
	mailWin.caps.Mail.Ready()
	h.runQueued()

	require.Len(t, received, 1)
	assert.Equal(t, "report.doc", received[0].Name)
	assert.Equal(t, "word", received[0].App)
	assert.Len(t, h.factory.windows, 2)
}

func TestSendToMailReusesReadyWindow(t *testing.T) {
	h := newHarness(t, []string{"--outlook"}, nil)
	require.NoError(t, h.orch.Start())

	mailWin := h.factory.last(window.Outlook)
	var received []bridge.DocumentInfo
	mailWin.caps.Mail.OnCompose(func(d bridge.DocumentInfo) { received = append(received, d) })
	mailWin.caps.Mail.Ready()

	mailWin.caps.Mail.SendToMail(bridge.DocumentInfo{Name: "a.xls", App: "excel"})

	assert.Len(t, h.factory.windows, 1)
	require.Len(t, received, 1)
	assert.Equal(t, "excel", received[0].App)
	assert.Equal(t, 1, mailWin.shown)
	assert.Equal(t, 1, mailWin.focused)
}

func TestSendToMailQueuesUntilExistingWindowReady(t *testing.T) {
	h := newHarness(t, []string{"--outlook"}, nil)
	require.NoError(t, h.orch.Start())
	mailWin := h.factory.last(window.Outlook)

	var received []bridge.DocumentInfo
	mailWin.caps.Mail.OnCompose(func(d bridge.DocumentInfo) { received = append(received, d) })

	mailWin.caps.Mail.SendToMail(bridge.DocumentInfo{Name: "one"})
	mailWin.caps.Mail.SendToMail(bridge.DocumentInfo{Name: "two"})
	assert.Empty(t, received)

	mailWin.caps.Mail.Ready()
	require.Len(t, received, 2)
	assert.Equal(t, "one", received[0].Name)
	assert.Equal(t, "two", received[1].Name)
}

func TestMailWindowClosedBeforeReadyDropsPending(t *testing.T) {
	h := newHarness(t, []string{"--word"}, nil)
	require.NoError(t, h.orch.Start())
	h.factory.last(window.Word).caps.Documents.SendToMail(bridge.DocumentInfo{Name: "x"})

	mailWin := h.factory.last(window.Outlook)
	delivered := 0
	mailWin.caps.Mail.OnCompose(func(bridge.DocumentInfo) { delivered++ })
	mailWin.Close()
	mailWin.caps.Mail.Ready()

	assert.Zero(t, delivered)
}

func TestSendToMailWithoutMailBridgeIsDropped(t *testing.T) {
	h := newHarness(t, []string{"--word"}, func(o *OrchestratorOptions) {
		o.Bridged = bridge.NewRegistry(window.Word)
	})
	require.NoError(t, h.orch.Start())
	h.factory.last(window.Word).caps.Documents.SendToMail(bridge.DocumentInfo{Name: "x"})

	assert.Equal(t, []window.Kind{window.Word}, h.factory.kinds())
}

func TestLastWindowClosedQuitsUnlessPersistent(t *testing.T) {
	h := newHarness(t, []string{"--word"}, nil)
	require.NoError(t, h.orch.Start())
	h.factory.windows[0].Close()
	assert.Equal(t, 1, h.quits)

	p := newHarness(t, []string{"--word"}, func(o *OrchestratorOptions) { o.Persistent = true })
	require.NoError(t, p.orch.Start())
	p.factory.windows[0].Close()
	assert.Zero(t, p.quits)
	assert.Zero(t, p.orch.LiveWindows())
}

func TestActivateRecreatesWindows(t *testing.T) {
	direct := newHarness(t, []string{"--access"}, func(o *OrchestratorOptions) { o.Persistent = true })
	require.NoError(t, direct.orch.Start())
	direct.orch.Activate()
	assert.Len(t, direct.factory.windows, 1, "windows still open")

	direct.factory.windows[0].Close()
	direct.orch.Activate()
	assert.Equal(t, []window.Kind{window.Access, window.Access}, direct.factory.kinds())

	normal := newHarness(t, []string{"--no-setup"}, func(o *OrchestratorOptions) { o.Persistent = true })
	require.NoError(t, normal.orch.Start())
	normal.bus.Publish(events.Event{Type: events.InstallerComplete})
	normal.factory.last(window.Launcher).Close()

	normal.orch.Activate()
	assert.Equal(t, []window.Kind{window.Splash, window.Launcher, window.Launcher}, normal.factory.kinds())
	assert.Same(t, normal.factory.last(window.Launcher), normal.orch.Current())
}

func TestActivateBeforeStartIsNoop(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.orch.Activate()
	assert.Empty(t, h.factory.windows)
}

func TestStartErrors(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.factory.fail = map[window.Kind]error{window.Splash: errors.New("no display")}
	assert.Error(t, h.orch.Start())
	assert.Error(t, h.orch.Start(), "second start")

	d := newHarness(t, []string{"--ppt"}, nil)
	d.factory.fail = map[window.Kind]error{window.PowerPoint: errors.New("no display")}
	assert.Error(t, d.orch.Start())
}

func TestFailedTransitionQuits(t *testing.T) {
	h := newHarness(t, nil, nil)
	require.NoError(t, h.orch.Start())
	h.factory.fail = map[window.Kind]error{window.Setup: errors.New("boom")}

	h.bus.Publish(events.Event{Type: events.InstallerComplete})
	assert.Equal(t, 1, h.quits)
	assert.Equal(t, PhaseQuit, h.orch.Phase())
}

func TestStopDropsSubscriptions(t *testing.T) {
	h := newHarness(t, nil, nil)
	require.NoError(t, h.orch.Start())
	h.orch.Stop()

	assert.Zero(t, h.bus.Publish(events.Event{Type: events.InstallerComplete}))
	assert.Zero(t, h.bus.Subscribers(events.LaunchApp))
}
