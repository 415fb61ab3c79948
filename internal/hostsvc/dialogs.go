package hostsvc

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

type FileFilter struct {
	Name       string
	Extensions []string
}

type DialogOptions struct {
	ConfirmText string
	DefaultPath string
	Filters     []FileFilter
}

// Selection mirrors what a native picker returns. Save dialogs fill a
// single path.
type Selection struct {
	Canceled  bool
	FilePaths []string
}

// Path returns the first selected path, or "".
func (s Selection) Path() string {
	if s.Canceled || len(s.FilePaths) == 0 {
		return ""
	}
	return s.FilePaths[0]
}

// Dialogs shows pickers modal to one window. done is called exactly once
// on the UI goroutine.
type Dialogs interface {
	Open(opts DialogOptions, done func(Selection))
	Save(opts DialogOptions, done func(Selection))
}

type FyneDialogs struct {
	window fyne.Window
}

func NewFyneDialogs(w fyne.Window) *FyneDialogs {
	return &FyneDialogs{window: w}
}

func (d *FyneDialogs) Open(opts DialogOptions, done func(Selection)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			done(Selection{Canceled: true})
			return
		}
		path := reader.URI().Path()
		reader.Close()
		done(Selection{FilePaths: []string{path}})
	}, d.window)
	configure(fd, opts)
	fd.Show()
}

func (d *FyneDialogs) Save(opts DialogOptions, done func(Selection)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			done(Selection{Canceled: true})
			return
		}
		path := writer.URI().Path()
		// Content is written later through the file operations.
		writer.Close()
		done(Selection{FilePaths: []string{path}})
	}, d.window)
	configure(fd, opts)
	if opts.DefaultPath != "" {
		fd.SetFileName(filepath.Base(opts.DefaultPath))
	}
	fd.Show()
}

func configure(fd *dialog.FileDialog, opts DialogOptions) {
	if opts.ConfirmText != "" {
		fd.SetConfirmText(opts.ConfirmText)
	}
	if exts := filterExtensions(opts.Filters); len(exts) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	if opts.DefaultPath != "" {
		dir := opts.DefaultPath
		if filepath.Ext(dir) != "" {
			dir = filepath.Dir(dir)
		}
		if uri, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(uri)
		}
	}
}

// filterExtensions flattens filters into ".ext" form. A "*" wildcard
// disables filtering.
func filterExtensions(filters []FileFilter) []string {
	var exts []string
	for _, f := range filters {
		for _, e := range f.Extensions {
			e = strings.TrimSpace(e)
			if e == "*" || e == "" {
				return nil
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts = append(exts, strings.ToLower(e))
		}
	}
	return exts
}
