package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar is the document window command strip.
type Toolbar struct {
	container    *fyne.Container
	OpenButton   *widget.Button
	SaveButton   *widget.Button
	SaveAsButton *widget.Button
	ExportButton *widget.Button
	MailButton   *widget.Button

	openHandler   func()
	saveHandler   func()
	saveAsHandler func()
	exportHandler func()
	mailHandler   func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	// Win95 face grey with a light rule underneath
	background := canvas.NewRectangle(color.RGBA{R: 192, G: 192, B: 192, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	t.OpenButton = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), t.onOpen)
	t.SaveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), t.onSave)
	t.SaveAsButton = widget.NewButton("Save As", t.onSaveAs)
	leftSection := container.NewHBox(t.OpenButton, t.SaveButton, t.SaveAsButton)

	t.ExportButton = widget.NewButtonWithIcon("Export", theme.UploadIcon(), t.onExport)
	t.MailButton = widget.NewButtonWithIcon("Send to Mail", theme.MailSendIcon(), t.onMail)
	rightSection := container.NewHBox(t.ExportButton, widget.NewSeparator(), t.MailButton)

	toolbarContent := container.NewBorder(
		nil, nil,
		leftSection,
		rightSection,
	)

	t.container = container.NewStack(
		border,
		container.NewPadded(
			container.NewStack(background, container.NewPadded(toolbarContent)),
		),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// SetEnabled toggles every command; windows without host access run with
// the toolbar disabled.
func (t *Toolbar) SetEnabled(enabled bool) {
	for _, b := range []*widget.Button{t.OpenButton, t.SaveButton, t.SaveAsButton, t.ExportButton, t.MailButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

func (t *Toolbar) SetSaveAsHandler(handler func()) {
	t.saveAsHandler = handler
}

func (t *Toolbar) SetExportHandler(handler func()) {
	t.exportHandler = handler
}

func (t *Toolbar) SetMailHandler(handler func()) {
	t.mailHandler = handler
}

func (t *Toolbar) onOpen() {
	if t.openHandler != nil {
		t.openHandler()
	}
}

func (t *Toolbar) onSave() {
	if t.saveHandler != nil {
		t.saveHandler()
	}
}

func (t *Toolbar) onSaveAs() {
	if t.saveAsHandler != nil {
		t.saveAsHandler()
	}
}

func (t *Toolbar) onExport() {
	if t.exportHandler != nil {
		t.exportHandler()
	}
}

func (t *Toolbar) onMail() {
	if t.mailHandler != nil {
		t.mailHandler()
	}
}
