package app

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"office97/internal/bridge"
	"office97/internal/config"
	"office97/internal/events"
	"office97/internal/firstrun"
	"office97/internal/gui"
	"office97/internal/history"
	"office97/internal/hostsvc"
	"office97/internal/icons"
	"office97/internal/logger"
	"office97/internal/shutdown"
	"office97/internal/startup"
)

const (
	AppName    = "Microsoft Office 97"
	AppID      = "com.office97.shell"
	AppVersion = "1.0.0"
)

type Options struct {
	Config *config.Config
	Flags  startup.Flags
	Logger logger.Logger
}

type Application struct {
	fyneApp      fyne.App
	orchestrator *Orchestrator
	lifecycle    *Lifecycle
	shutdown     *shutdown.Manager
	logger       logger.Logger
	running      atomic.Bool
}

func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	if err := os.MkdirAll(cfg.Paths.UserDataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create user data dir: %w", err)
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"user_data":  cfg.Paths.UserDataDir,
		"persistent": cfg.PersistentProcess(),
	})

	fyneApp := fyneapp.NewWithID(AppID)
	provider := icons.NewProvider(log)
	if res := provider.Icon("office"); res != nil {
		fyneApp.SetIcon(res)
	}

	// Recent documents are optional; the shell runs without them.
	var (
		recorder bridge.Recorder
		closer   io.Closer
	)
	store, err := history.Open(cfg.Paths.UserDataDir)
	if err != nil {
		log.Warning("Application", "recent documents unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		recorder, closer = store, store
	}

	factory := gui.NewFactory(fyneApp, gui.FactoryOptions{
		LegacyLauncher: cfg.Shell.LegacyLauncher,
		SplashDuration: cfg.SplashDuration(),
		Persistent:     cfg.PersistentProcess(),
		Icons:          provider,
		Logger:         log,
	})

	orchestrator := NewOrchestrator(OrchestratorOptions{
		Flags:    opts.Flags,
		Factory:  factory,
		Bus:      events.NewBus(log),
		Gate:     firstrun.NewMarker(cfg.Paths.UserDataDir, log),
		Host:     hostsvc.NewService(log),
		Recorder: recorder,
		Bridged:  bridge.NewRegistry(cfg.BridgedKinds()...),
		Logger:   log,
		Quit:     fyneApp.Quit,
		Schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, func() { fyne.Do(fn) })
		},
		ComposeDelay: cfg.ComposeDelay(),
		Persistent:   cfg.PersistentProcess(),
	})

	a := &Application{
		fyneApp:      fyneApp,
		orchestrator: orchestrator,
		lifecycle:    NewLifecycle(orchestrator, closer, log),
		shutdown:     shutdown.NewManager(log),
		logger:       log,
	}
	a.registerShutdown()
	return a, nil
}

// registerShutdown hands the signal manager only the UI quit. Orchestrator
// and store teardown happen in finish, on the goroutine that ran the loop.
func (a *Application) registerShutdown() {
	a.shutdown.Register("ui", shutdown.Func(func() {
		if a.running.Load() {
			fyne.Do(a.fyneApp.Quit)
		}
	}))
}

// finish runs after the event loop has returned.
func (a *Application) finish() {
	a.lifecycle.Shutdown()
	a.shutdown.Shutdown()
}

// Run opens the first window and blocks until the application quits.
func (a *Application) Run() error {
	a.fyneApp.Lifecycle().SetOnEnteredForeground(a.orchestrator.Activate)

	if err := a.orchestrator.Start(); err != nil {
		a.lifecycle.Shutdown()
		return err
	}

	a.shutdown.Listen()
	a.logger.Info("Application", "GUI displayed", map[string]interface{}{
		"mode": a.orchestrator.Intent().Mode.String(),
	})
	a.running.Store(true)
	a.fyneApp.Run()
	a.running.Store(false)

	a.finish()
	return nil
}
