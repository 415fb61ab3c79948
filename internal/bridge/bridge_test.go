package bridge

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office97/internal/events"
	"office97/internal/history"
	"office97/internal/hostsvc"
	"office97/internal/window"
)

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(e events.Event) int {
	b.published = append(b.published, e)
	return 1
}

type memoryRecorder struct {
	entries []history.Entry
	err     error
}

func (r *memoryRecorder) Record(_ context.Context, e history.Entry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

type stubDialogs struct {
	selection hostsvc.Selection
	opened    int
	saved     int
}

func (d *stubDialogs) Open(_ hostsvc.DialogOptions, done func(hostsvc.Selection)) {
	d.opened++
	done(d.selection)
}

func (d *stubDialogs) Save(_ hostsvc.DialogOptions, done func(hostsvc.Selection)) {
	d.saved++
	done(d.selection)
}

func TestShellPortsPublishSignals(t *testing.T) {
	bus := &recordingBus{}
	NewSplash(bus).InstallerComplete()
	setup := NewSetup(bus)
	setup.Finish()
	setup.Abort()
	NewLauncher(bus).LaunchApp(window.Excel)

	require.Len(t, bus.published, 4)
	assert.Equal(t, events.InstallerComplete, bus.published[0].Type)
	assert.Equal(t, events.SetupFinish, bus.published[1].Type)
	assert.Equal(t, events.SetupExit, bus.published[2].Type)

	kind, ok := AppFromEvent(bus.published[3])
	assert.True(t, ok)
	assert.Equal(t, window.Excel, kind)
}

func TestAppFromEventRejectsShellKinds(t *testing.T) {
	_, ok := AppFromEvent(events.Event{Data: map[string]interface{}{keyApp: window.Launcher}})
	assert.False(t, ok)
	_, ok = AppFromEvent(events.Event{})
	assert.False(t, ok)
}

func TestDocumentPortRecordsSuccessfulIO(t *testing.T) {
	rec := &memoryRecorder{}
	port := NewDocuments(window.Word, hostsvc.NewService(nil), &recordingBus{}, rec, nil)
	path := filepath.Join(t.TempDir(), "letter.txt")

	require.True(t, port.WriteFileText(path, "Dear Sir").Success)
	res := port.ReadFileText(path)
	require.True(t, res.Success)
	assert.Equal(t, "Dear Sir", res.Data)

	assert.False(t, port.ReadFileBinary(filepath.Join(t.TempDir(), "missing")).Success)

	require.Len(t, rec.entries, 2)
	assert.Equal(t, history.ActionSave, rec.entries[0].Action)
	assert.Equal(t, history.ActionOpen, rec.entries[1].Action)
	assert.Equal(t, "word", rec.entries[1].App)
}

func TestDocumentPortRecorderFailureKeepsResult(t *testing.T) {
	rec := &memoryRecorder{err: errors.New("db locked")}
	port := NewDocuments(window.Excel, hostsvc.NewService(nil), &recordingBus{}, rec, nil)
	path := filepath.Join(t.TempDir(), "book.csv")

	assert.True(t, port.WriteFileText(path, "a,b").Success)
}

func TestDocumentPortDialogs(t *testing.T) {
	port := NewDocuments(window.Word, hostsvc.NewService(nil), &recordingBus{}, nil, nil)

	var got hostsvc.Selection
	port.OpenDialog(hostsvc.DialogOptions{}, func(s hostsvc.Selection) { got = s })
	assert.True(t, got.Canceled, "unbound dialogs cancel")

	d := &stubDialogs{selection: hostsvc.Selection{FilePaths: []string{"/tmp/a.doc"}}}
	port.BindOwner(d)
	port.OpenDialog(hostsvc.DialogOptions{}, func(s hostsvc.Selection) { got = s })
	assert.Equal(t, "/tmp/a.doc", got.Path())
	port.SaveDialog(hostsvc.DialogOptions{}, func(s hostsvc.Selection) { got = s })
	assert.Equal(t, 1, d.opened)
	assert.Equal(t, 1, d.saved)
}

func TestSendToMailFillsApp(t *testing.T) {
	bus := &recordingBus{}
	port := NewDocuments(window.PowerPoint, hostsvc.NewService(nil), bus, nil, nil)

	port.SendToMail(DocumentInfo{Name: "deck.ppt"})

	require.Len(t, bus.published, 1)
	doc, ok := DocumentFromEvent(bus.published[0])
	require.True(t, ok)
	assert.Equal(t, DocumentInfo{Name: "deck.ppt", App: "powerpoint"}, doc)
}

func TestMailPortReadyAndDeliver(t *testing.T) {
	bus := &recordingBus{}
	mail := NewMail("win-1", NewDocuments(window.Outlook, hostsvc.NewService(nil), bus, nil, nil))

	assert.False(t, mail.Deliver(DocumentInfo{Name: "x"}))

	var received []DocumentInfo
	mail.OnCompose(func(d DocumentInfo) { received = append(received, d) })
	assert.True(t, mail.Deliver(DocumentInfo{Name: "report.doc"}))
	assert.Equal(t, []DocumentInfo{{Name: "report.doc"}}, received)

	mail.Ready()
	id, ok := WindowFromEvent(bus.published[0])
	assert.True(t, ok)
	assert.Equal(t, "win-1", id)
	assert.Equal(t, "win-1", mail.WindowID())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(window.Word, window.Launcher, window.Outlook)
	assert.True(t, r.Has(window.Word))
	assert.True(t, r.Has(window.Outlook))
	assert.False(t, r.Has(window.Launcher))
	assert.False(t, r.Has(window.Excel))
}
