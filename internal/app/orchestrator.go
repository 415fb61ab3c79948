package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"office97/internal/bridge"
	"office97/internal/events"
	"office97/internal/hostsvc"
	"office97/internal/logger"
	"office97/internal/startup"
	"office97/internal/window"
)

// Factory creates native windows.
type Factory interface {
	Create(kind window.Kind, caps bridge.Set) (window.Handle, error)
}

// Gate is the first-run decision and its persisted marker.
type Gate interface {
	SetupRequired(f startup.Flags) bool
	MarkDone()
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSplash
	PhaseSetup
	PhaseLauncher
	PhaseDirectApp
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseSetup:
		return "setup"
	case PhaseLauncher:
		return "launcher"
	case PhaseDirectApp:
		return "direct-app"
	case PhaseQuit:
		return "quit"
	default:
		return "idle"
	}
}

type OrchestratorOptions struct {
	Flags    startup.Flags
	Factory  Factory
	Bus      *events.Bus
	Gate     Gate
	Host     *hostsvc.Service
	Recorder bridge.Recorder
	Bridged  bridge.Registry
	Logger   logger.Logger

	// Quit terminates the application.
	Quit func()
	// Schedule runs fn on the UI goroutine after d. Nil runs fn immediately.
	Schedule func(d time.Duration, fn func())
	// ComposeDelay is waited after the mail window reports ready.
	ComposeDelay time.Duration
	// Persistent keeps the process alive after the last window closes.
	Persistent bool
}

type liveWindow struct {
	id     string
	kind   window.Kind
	handle window.Handle
	mail   *bridge.MailPort
	ready  bool
}

// Orchestrator drives the window sequence. All methods must be called from
// the UI goroutine.
type Orchestrator struct {
	opts   OrchestratorOptions
	logger logger.Logger

	started bool
	intent  startup.Intent
	phase   Phase
	current *liveWindow

	live    map[string]*liveWindow
	byKind  map[window.Kind]*liveWindow
	pending []bridge.DocumentInfo

	subs      []*events.Subscription
	finishSub *events.Subscription
	exitSub   *events.Subscription
}

func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus(log)
	}
	if opts.Host == nil {
		opts.Host = hostsvc.NewService(log)
	}
	return &Orchestrator{
		opts:   opts,
		logger: log,
		live:   make(map[string]*liveWindow),
		byKind: make(map[window.Kind]*liveWindow),
	}
}

// Start computes the startup intent and opens the first window.
func (o *Orchestrator) Start() error {
	if o.started {
		return errors.New("orchestrator already started")
	}
	o.started = true

	bus := o.opts.Bus
	o.subs = append(o.subs,
		bus.Subscribe(events.LaunchApp, o.handleLaunchApp),
		bus.Subscribe(events.SendToMail, o.handleSendToMail),
		bus.Subscribe(events.MailReady, o.handleMailReady),
	)

	o.intent = startup.Resolve(o.opts.Flags, o.opts.Gate.SetupRequired(o.opts.Flags))
	o.logger.Info("Orchestrator", "startup intent resolved", map[string]interface{}{
		"mode": o.intent.Mode.String(),
		"app":  o.intent.App.String(),
	})

	if o.intent.Mode == startup.DirectAppLaunch {
		lw, err := o.launchApp(o.intent.App)
		if err != nil {
			return err
		}
		o.transition(PhaseDirectApp, lw)
		return nil
	}

	next := PhaseLauncher
	if o.intent.Mode == startup.FirstRunSetup {
		next = PhaseSetup
	}
	return o.showSplash(next)
}

// Stop drops every subscription the orchestrator holds.
func (o *Orchestrator) Stop() {
	for _, sub := range append(o.subs, o.finishSub, o.exitSub) {
		o.opts.Bus.Unsubscribe(sub)
	}
	o.subs = nil
}

func (o *Orchestrator) Intent() startup.Intent {
	return o.intent
}

func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Current returns the window the current phase is centred on.
func (o *Orchestrator) Current() window.Handle {
	if o.current == nil {
		return nil
	}
	return o.current.handle
}

func (o *Orchestrator) LiveWindows() int {
	return len(o.live)
}

// Activate reopens a window when the process is alive without any.
func (o *Orchestrator) Activate() {
	if !o.started || o.phase == PhaseQuit || len(o.live) > 0 {
		return
	}

	o.logger.Info("Orchestrator", "re-activated without windows", map[string]interface{}{
		"mode": o.intent.Mode.String(),
	})

	if o.intent.Mode == startup.DirectAppLaunch {
		lw, err := o.launchApp(o.intent.App)
		if err != nil {
			o.logger.Error("Orchestrator", err, nil)
			return
		}
		o.transition(PhaseDirectApp, lw)
		return
	}
	if err := o.showLauncher(); err != nil {
		o.logger.Error("Orchestrator", err, nil)
	}
}

func (o *Orchestrator) showSplash(next Phase) error {
	splash, err := o.open(&liveWindow{kind: window.Splash}, bridge.Set{Splash: bridge.NewSplash(o.opts.Bus)})
	if err != nil {
		return err
	}
	o.transition(PhaseSplash, splash)

	o.subs = append(o.subs, o.opts.Bus.SubscribeOnce(events.InstallerComplete, func(events.Event) {
		o.advance(splash, func() error {
			if next == PhaseSetup {
				return o.showSetup()
			}
			return o.showLauncher()
		})
	}))
	return nil
}

func (o *Orchestrator) showSetup() error {
	setup, err := o.open(&liveWindow{kind: window.Setup}, bridge.Set{Setup: bridge.NewSetup(o.opts.Bus)})
	if err != nil {
		return err
	}
	o.transition(PhaseSetup, setup)

	bus := o.opts.Bus
	o.finishSub = bus.SubscribeOnce(events.SetupFinish, func(events.Event) {
		bus.Unsubscribe(o.exitSub)
		o.opts.Gate.MarkDone()
		o.advance(setup, o.showLauncher)
	})
	o.exitSub = bus.SubscribeOnce(events.SetupExit, func(events.Event) {
		bus.Unsubscribe(o.finishSub)
		o.logger.Info("Orchestrator", "setup aborted", nil)
		o.quit()
	})
	return nil
}

func (o *Orchestrator) showLauncher() error {
	launcher, err := o.open(&liveWindow{kind: window.Launcher}, bridge.Set{Launcher: bridge.NewLauncher(o.opts.Bus)})
	if err != nil {
		return err
	}
	o.transition(PhaseLauncher, launcher)
	return nil
}

// advance opens the next window before closing from, so the application
// never passes through a state with no windows.
func (o *Orchestrator) advance(from *liveWindow, next func() error) {
	if err := next(); err != nil {
		o.logger.Error("Orchestrator", err, map[string]interface{}{
			"from": from.kind.String(),
		})
		o.quit()
		return
	}
	o.closeWindow(from)
}

func (o *Orchestrator) launchApp(kind window.Kind) (*liveWindow, error) {
	lw := &liveWindow{kind: kind, id: uuid.NewString()}

	var caps bridge.Set
	if o.opts.Bridged.Has(kind) {
		docs := bridge.NewDocuments(kind, o.opts.Host, o.opts.Bus, o.opts.Recorder, o.logger)
		if kind == window.Outlook {
			lw.mail = bridge.NewMail(lw.id, docs)
			caps.Mail = lw.mail
		} else {
			caps.Documents = docs
		}
	} else {
		o.logger.Debug("Orchestrator", "no bridge registered, window gets no host capabilities", map[string]interface{}{
			"app": kind.String(),
		})
	}

	if _, err := o.open(lw, caps); err != nil {
		return nil, err
	}
	return lw, nil
}

// open registers lw before creating it so signals the content sends while
// it is being built find their window.
func (o *Orchestrator) open(lw *liveWindow, caps bridge.Set) (*liveWindow, error) {
	if lw.id == "" {
		lw.id = uuid.NewString()
	}
	previous := o.byKind[lw.kind]
	o.live[lw.id] = lw
	o.byKind[lw.kind] = lw

	handle, err := o.opts.Factory.Create(lw.kind, caps)
	if err != nil {
		delete(o.live, lw.id)
		if previous != nil {
			o.byKind[lw.kind] = previous
		} else {
			delete(o.byKind, lw.kind)
		}
		return nil, fmt.Errorf("create %s window: %w", lw.kind, err)
	}

	lw.handle = handle
	handle.SetOnClosed(func() { o.windowClosed(lw) })

	o.logger.Debug("Orchestrator", "window opened", map[string]interface{}{
		"kind":   lw.kind.String(),
		"window": lw.id,
	})
	return lw, nil
}

func (o *Orchestrator) closeWindow(lw *liveWindow) {
	if _, ok := o.live[lw.id]; !ok {
		return
	}
	lw.handle.Close()
	// Handles that do not report their own close are settled here.
	o.windowClosed(lw)
}

func (o *Orchestrator) windowClosed(lw *liveWindow) {
	if _, ok := o.live[lw.id]; !ok {
		return
	}
	delete(o.live, lw.id)
	if o.byKind[lw.kind] == lw {
		delete(o.byKind, lw.kind)
		if lw.kind == window.Outlook && len(o.pending) > 0 {
			o.logger.Warning("Orchestrator", "mail window closed before compose delivery", map[string]interface{}{
				"dropped": len(o.pending),
			})
			o.pending = nil
		}
	}
	if o.current == lw {
		o.current = nil
	}

	o.logger.Debug("Orchestrator", "window closed", map[string]interface{}{
		"kind":      lw.kind.String(),
		"remaining": len(o.live),
	})

	if len(o.live) == 0 && !o.opts.Persistent {
		o.quit()
	}
}

func (o *Orchestrator) transition(phase Phase, lw *liveWindow) {
	o.logger.Info("Orchestrator", "phase changed", map[string]interface{}{
		"from": o.phase.String(),
		"to":   phase.String(),
	})
	o.phase = phase
	o.current = lw
}

func (o *Orchestrator) quit() {
	if o.phase == PhaseQuit {
		return
	}
	o.phase = PhaseQuit
	o.current = nil
	if o.opts.Quit != nil {
		o.opts.Quit()
	}
}

func (o *Orchestrator) handleLaunchApp(e events.Event) {
	kind, ok := bridge.AppFromEvent(e)
	if !ok {
		o.logger.Warning("Orchestrator", "launch request without a valid app", nil)
		return
	}
	if _, err := o.launchApp(kind); err != nil {
		o.logger.Error("Orchestrator", err, map[string]interface{}{"app": kind.String()})
	}
}

func (o *Orchestrator) handleSendToMail(e events.Event) {
	doc, ok := bridge.DocumentFromEvent(e)
	if !ok {
		o.logger.Warning("Orchestrator", "send-to-mail without document info", nil)
		return
	}
	o.sendToMail(doc)
}

func (o *Orchestrator) sendToMail(doc bridge.DocumentInfo) {
	if lw := o.byKind[window.Outlook]; lw != nil {
		switch {
		case lw.mail == nil:
			o.logger.Warning("Orchestrator", "mail window has no bridge, document dropped", map[string]interface{}{
				"document": doc.Name,
			})
		case lw.ready:
			o.deliver(lw, doc)
			lw.handle.Show()
			lw.handle.RequestFocus()
		default:
			o.pending = append(o.pending, doc)
		}
		return
	}

	if !o.opts.Bridged.Has(window.Outlook) {
		o.logger.Warning("Orchestrator", "no mail bridge registered, document dropped", map[string]interface{}{
			"document": doc.Name,
		})
		return
	}

	o.pending = append(o.pending, doc)
	if _, err := o.launchApp(window.Outlook); err != nil {
		o.pending = nil
		o.logger.Error("Orchestrator", err, map[string]interface{}{"document": doc.Name})
	}
}

func (o *Orchestrator) handleMailReady(e events.Event) {
	id, _ := bridge.WindowFromEvent(e)
	lw := o.live[id]
	if lw == nil || lw.mail == nil || lw.ready {
		return
	}
	lw.ready = true

	if o.byKind[window.Outlook] != lw {
		return
	}
	docs := o.pending
	o.pending = nil
	for _, doc := range docs {
		doc := doc
		o.after(o.opts.ComposeDelay, func() { o.deliver(lw, doc) })
	}
}

func (o *Orchestrator) deliver(lw *liveWindow, doc bridge.DocumentInfo) {
	if _, alive := o.live[lw.id]; !alive {
		o.logger.Warning("Orchestrator", "mail window gone before delivery", map[string]interface{}{
			"document": doc.Name,
		})
		return
	}
	if !lw.mail.Deliver(doc) {
		o.logger.Warning("Orchestrator", "mail window has no compose receiver", map[string]interface{}{
			"document": doc.Name,
		})
		return
	}
	o.logger.Info("Orchestrator", "compose request delivered", map[string]interface{}{
		"document": doc.Name,
		"app":      doc.App,
	})
}

func (o *Orchestrator) after(d time.Duration, fn func()) {
	if d <= 0 || o.opts.Schedule == nil {
		fn()
		return
	}
	o.opts.Schedule(d, fn)
}
