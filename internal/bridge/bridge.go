// Package bridge defines the capability bridges: the only host operations
// the content of each window kind can reach. Content is handed one of the
// interfaces below and nothing else.
package bridge

import (
	"office97/internal/events"
	"office97/internal/hostsvc"
	"office97/internal/window"
)

type Splash interface {
	InstallerComplete()
}

type Setup interface {
	Finish()
	Abort()
}

type Launcher interface {
	LaunchApp(kind window.Kind)
}

// Documents is the surface of the office application windows.
type Documents interface {
	OpenDialog(opts hostsvc.DialogOptions, done func(hostsvc.Selection))
	SaveDialog(opts hostsvc.DialogOptions, done func(hostsvc.Selection))
	ReadFileBinary(path string) hostsvc.Result
	WriteFileBinary(path, data string) hostsvc.Result
	ReadFileText(path string) hostsvc.Result
	WriteFileText(path, text string) hostsvc.Result
	ExportDocument(payload interface{}) hostsvc.Result
	SendToMail(doc DocumentInfo)
}

// Mail adds compose delivery for the mail window. Content registers its
// receiver with OnCompose and calls Ready once it can accept deliveries.
type Mail interface {
	Documents
	OnCompose(receiver func(DocumentInfo))
	Ready()
}

// OwnerBinder is implemented by bridges whose dialogs must be modal to the
// window that ends up hosting them.
type OwnerBinder interface {
	BindOwner(d hostsvc.Dialogs)
}

// Set carries the bridge for one window. Only the field matching the window
// kind is read; a nil Documents/Mail means no host capabilities.
type Set struct {
	Splash    Splash
	Setup     Setup
	Launcher  Launcher
	Documents Documents
	Mail      Mail
}

// DocumentInfo describes a document handed to the mail window.
type DocumentInfo struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	App  string `json:"app,omitempty"`
}

// Publisher is the slice of the event bus the bridges use.
type Publisher interface {
	Publish(event events.Event) int
}

// Registry lists the app kinds that have a bridge registered.
type Registry map[window.Kind]bool

func NewRegistry(kinds ...window.Kind) Registry {
	r := make(Registry, len(kinds))
	for _, k := range kinds {
		if k.IsApp() {
			r[k] = true
		}
	}
	return r
}

func (r Registry) Has(kind window.Kind) bool {
	return r[kind]
}

const (
	keyApp      = "app"
	keyDocument = "document"
	keyWindow   = "window"
)

// AppFromEvent extracts the app kind of a launch-app event.
func AppFromEvent(e events.Event) (window.Kind, bool) {
	k, ok := e.Data[keyApp].(window.Kind)
	return k, ok && k.IsApp()
}

// DocumentFromEvent extracts the payload of a send-to-mail event.
func DocumentFromEvent(e events.Event) (DocumentInfo, bool) {
	doc, ok := e.Data[keyDocument].(DocumentInfo)
	return doc, ok
}

// WindowFromEvent extracts the sending window id of a mail-ready event.
func WindowFromEvent(e events.Event) (string, bool) {
	id, ok := e.Data[keyWindow].(string)
	return id, ok
}
