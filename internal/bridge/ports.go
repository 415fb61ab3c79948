package bridge

import (
	"context"
	"time"

	"office97/internal/events"
	"office97/internal/history"
	"office97/internal/hostsvc"
	"office97/internal/logger"
	"office97/internal/window"
)

type SplashPort struct {
	bus Publisher
}

func NewSplash(bus Publisher) *SplashPort {
	return &SplashPort{bus: bus}
}

func (p *SplashPort) InstallerComplete() {
	p.bus.Publish(events.Event{Type: events.InstallerComplete})
}

type SetupPort struct {
	bus Publisher
}

func NewSetup(bus Publisher) *SetupPort {
	return &SetupPort{bus: bus}
}

func (p *SetupPort) Finish() {
	p.bus.Publish(events.Event{Type: events.SetupFinish})
}

func (p *SetupPort) Abort() {
	p.bus.Publish(events.Event{Type: events.SetupExit})
}

type LauncherPort struct {
	bus Publisher
}

func NewLauncher(bus Publisher) *LauncherPort {
	return &LauncherPort{bus: bus}
}

func (p *LauncherPort) LaunchApp(kind window.Kind) {
	p.bus.Publish(events.Event{
		Type: events.LaunchApp,
		Data: map[string]interface{}{keyApp: kind},
	})
}

// Recorder receives successful document reads and writes.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// DocumentPort routes an app window's requests to the shared host services.
type DocumentPort struct {
	kind     window.Kind
	service  *hostsvc.Service
	dialogs  hostsvc.Dialogs
	recorder Recorder
	bus      Publisher
	logger   logger.Logger
}

func NewDocuments(kind window.Kind, svc *hostsvc.Service, bus Publisher, rec Recorder, log logger.Logger) *DocumentPort {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &DocumentPort{
		kind:     kind,
		service:  svc,
		recorder: rec,
		bus:      bus,
		logger:   log,
	}
}

func (p *DocumentPort) BindOwner(d hostsvc.Dialogs) {
	p.dialogs = d
}

// OpenDialog reports a cancelled selection when no owner window is bound.
func (p *DocumentPort) OpenDialog(opts hostsvc.DialogOptions, done func(hostsvc.Selection)) {
	if p.dialogs == nil {
		done(hostsvc.Selection{Canceled: true})
		return
	}
	p.dialogs.Open(opts, done)
}

func (p *DocumentPort) SaveDialog(opts hostsvc.DialogOptions, done func(hostsvc.Selection)) {
	if p.dialogs == nil {
		done(hostsvc.Selection{Canceled: true})
		return
	}
	p.dialogs.Save(opts, done)
}

func (p *DocumentPort) ReadFileBinary(path string) hostsvc.Result {
	return p.record(path, history.ActionOpen, p.service.ReadFileBinary(path))
}

func (p *DocumentPort) WriteFileBinary(path, data string) hostsvc.Result {
	return p.record(path, history.ActionSave, p.service.WriteFileBinary(path, data))
}

func (p *DocumentPort) ReadFileText(path string) hostsvc.Result {
	return p.record(path, history.ActionOpen, p.service.ReadFileText(path))
}

func (p *DocumentPort) WriteFileText(path, text string) hostsvc.Result {
	return p.record(path, history.ActionSave, p.service.WriteFileText(path, text))
}

func (p *DocumentPort) ExportDocument(payload interface{}) hostsvc.Result {
	return p.service.ExportDocument(payload)
}

func (p *DocumentPort) SendToMail(doc DocumentInfo) {
	if doc.App == "" {
		doc.App = p.kind.String()
	}
	p.bus.Publish(events.Event{
		Type: events.SendToMail,
		Data: map[string]interface{}{keyDocument: doc},
	})
}

func (p *DocumentPort) record(path string, action history.Action, res hostsvc.Result) hostsvc.Result {
	if !res.Success || p.recorder == nil {
		return res
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := p.recorder.Record(ctx, history.Entry{
		Path:   path,
		App:    p.kind.String(),
		Action: action,
	})
	if err != nil {
		p.logger.Warning("Bridge", "recent document not recorded", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
	return res
}

// MailPort is the bridge of one mail window.
type MailPort struct {
	*DocumentPort
	windowID  string
	receivers []func(DocumentInfo)
}

func NewMail(windowID string, docs *DocumentPort) *MailPort {
	return &MailPort{DocumentPort: docs, windowID: windowID}
}

func (p *MailPort) WindowID() string {
	return p.windowID
}

func (p *MailPort) OnCompose(receiver func(DocumentInfo)) {
	p.receivers = append(p.receivers, receiver)
}

func (p *MailPort) Ready() {
	p.bus.Publish(events.Event{
		Type: events.MailReady,
		Data: map[string]interface{}{keyWindow: p.windowID},
	})
}

// Deliver hands doc to the window content. It reports false when the
// content never registered a receiver.
func (p *MailPort) Deliver(doc DocumentInfo) bool {
	for _, r := range p.receivers {
		r(doc)
	}
	return len(p.receivers) > 0
}
