package gui

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"office97/internal/bridge"
	"office97/internal/gui/components"
	"office97/internal/hostsvc"
	"office97/internal/logger"
	"office97/internal/window"
)

var textExtensions = map[string]bool{".txt": true, ".csv": true, ".md": true, ".eml": true}

// fileFilters returns the picker filters for an app, native formats first.
func fileFilters(kind window.Kind) []hostsvc.FileFilter {
	var native hostsvc.FileFilter
	switch kind {
	case window.Word:
		native = hostsvc.FileFilter{Name: "Word Documents", Extensions: []string{"doc", "docx"}}
	case window.Excel:
		native = hostsvc.FileFilter{Name: "Excel Workbooks", Extensions: []string{"xls", "xlsx", "csv"}}
	case window.PowerPoint:
		native = hostsvc.FileFilter{Name: "Presentations", Extensions: []string{"ppt", "pptx"}}
	case window.Access:
		native = hostsvc.FileFilter{Name: "Databases", Extensions: []string{"mdb", "accdb"}}
	case window.Outlook:
		native = hostsvc.FileFilter{Name: "Messages", Extensions: []string{"eml"}}
	}
	return []hostsvc.FileFilter{
		native,
		{Name: "Text Files", Extensions: []string{"txt"}},
		{Name: "All Files", Extensions: []string{"*"}},
	}
}

// documentView is the body of an office application window. It edits plain
// text; other formats are carried through unchanged as opaque bytes.
type documentView struct {
	kind   window.Kind
	docs   bridge.Documents
	logger logger.Logger

	toolbar *components.Toolbar
	body    *widget.Entry
	status  *components.StatusBar
	content fyne.CanvasObject

	path   string
	binary string
}

func newDocumentView(kind window.Kind, docs bridge.Documents, log logger.Logger) *documentView {
	v := &documentView{
		kind:    kind,
		docs:    docs,
		logger:  log,
		toolbar: components.NewToolbar(),
		body:    widget.NewMultiLineEntry(),
		status:  components.NewStatusBar(),
	}
	v.body.Wrapping = fyne.TextWrapWord
	v.body.SetPlaceHolder("Type here")

	v.toolbar.SetOpenHandler(v.open)
	v.toolbar.SetSaveHandler(v.save)
	v.toolbar.SetSaveAsHandler(v.saveAs)
	v.toolbar.SetExportHandler(v.export)
	v.toolbar.SetMailHandler(v.sendToMail)

	if docs == nil {
		v.toolbar.SetEnabled(false)
		v.status.SetStatus("Host access unavailable")
	}
	v.status.SetDetail(v.name())

	v.content = container.NewBorder(v.toolbar.GetContainer(), v.status.GetContainer(), nil, nil, v.body)
	return v
}

func (v *documentView) name() string {
	if v.path == "" {
		return "Untitled"
	}
	return filepath.Base(v.path)
}

func (v *documentView) open() {
	if v.docs == nil {
		return
	}
	v.docs.OpenDialog(hostsvc.DialogOptions{
		ConfirmText: "Open",
		DefaultPath: v.path,
		Filters:     fileFilters(v.kind),
	}, func(sel hostsvc.Selection) {
		if path := sel.Path(); path != "" {
			v.load(path)
		}
	})
}

// load reads path off the UI goroutine and applies the result back on it.
func (v *documentView) load(path string) {
	v.status.SetStatus("Opening " + filepath.Base(path) + "...")
	text := isText(path)
	go func() {
		var res hostsvc.Result
		if text {
			res = v.docs.ReadFileText(path)
		} else {
			res = v.docs.ReadFileBinary(path)
		}
		fyne.Do(func() { v.applyLoaded(path, text, res) })
	}()
}

func (v *documentView) applyLoaded(path string, text bool, res hostsvc.Result) {
	if !res.Success {
		v.status.SetStatus("Cannot open " + filepath.Base(path) + ": " + res.Error)
		return
	}

	v.path = path
	if text {
		v.binary = ""
		v.body.SetText(res.Data)
		v.body.Enable()
		v.status.SetStatus("Opened")
		v.status.SetDetail(fmt.Sprintf("%s (%s)", v.name(), humanize.Bytes(uint64(len(res.Data)))))
		return
	}

	v.binary = res.Data
	size := base64.StdEncoding.DecodedLen(len(res.Data))
	if raw, err := base64.StdEncoding.DecodeString(res.Data); err == nil {
		size = len(raw)
	}
	v.body.SetText(fmt.Sprintf("%s is a %s document and opens read-only.", v.name(), strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))))
	v.body.Disable()
	v.status.SetStatus("Opened read-only")
	v.status.SetDetail(fmt.Sprintf("%s (%s)", v.name(), humanize.Bytes(uint64(size))))
}

func (v *documentView) save() {
	if v.path == "" {
		v.saveAs()
		return
	}
	v.store(v.path)
}

func (v *documentView) saveAs() {
	if v.docs == nil {
		return
	}
	v.docs.SaveDialog(hostsvc.DialogOptions{
		ConfirmText: "Save",
		DefaultPath: v.suggestedPath(),
		Filters:     fileFilters(v.kind),
	}, func(sel hostsvc.Selection) {
		if path := sel.Path(); path != "" {
			v.store(path)
		}
	})
}

func (v *documentView) suggestedPath() string {
	if v.path != "" {
		return v.path
	}
	return "Untitled.txt"
}

func (v *documentView) store(path string) {
	if v.docs == nil {
		return
	}
	v.status.SetStatus("Saving...")
	binary, text := v.binary, v.body.Text
	go func() {
		var res hostsvc.Result
		if binary != "" {
			res = v.docs.WriteFileBinary(path, binary)
		} else {
			res = v.docs.WriteFileText(path, text)
		}
		fyne.Do(func() {
			if !res.Success {
				v.status.SetStatus("Cannot save " + filepath.Base(path) + ": " + res.Error)
				return
			}
			v.path = path
			v.status.SetStatus("Saved")
			v.status.SetDetail(v.name())
		})
	}()
}

func (v *documentView) export() {
	if v.docs == nil {
		return
	}
	res := v.docs.ExportDocument(map[string]interface{}{
		"name":   v.name(),
		"app":    v.kind.String(),
		"format": "pdf",
	})
	if res.Success {
		v.status.SetStatus("Exported " + v.name())
	}
}

func (v *documentView) sendToMail() {
	if v.docs == nil {
		return
	}
	v.docs.SendToMail(bridge.DocumentInfo{Name: v.name(), Path: v.path})
	v.status.SetStatus("Sent to Outlook")
}

func isText(path string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(path))]
}
