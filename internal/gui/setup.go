package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"office97/internal/bridge"
)

const licenseText = `MICROSOFT OFFICE 97 END-USER LICENSE AGREEMENT

This is a recreation for entertainment purposes. By continuing you
agree to enjoy the nostalgia responsibly. No real software licence
is granted and no paperclips were harmed.`

var installTypes = []string{"Typical", "Custom", "Compact"}

const (
	stepWelcome = iota
	stepLicense
	stepInstallType
)

type setupView struct {
	bridge bridge.Setup
	window fyne.Window

	step     int
	pages    []fyne.CanvasObject
	accept   *widget.Check
	install  *widget.RadioGroup
	back     *widget.Button
	next     *widget.Button
	exit     *widget.Button
	heading  *widget.Label
	pageArea *fyne.Container
	content  fyne.CanvasObject

	done bool
}

func newSetupView(b bridge.Setup, w fyne.Window, header fyne.Resource) *setupView {
	v := &setupView{bridge: b, window: w}

	v.accept = widget.NewCheck("I accept the terms of the License Agreement", func(bool) { v.refresh() })
	v.install = widget.NewRadioGroup(installTypes, nil)
	v.install.SetSelected(installTypes[0])

	license := widget.NewMultiLineEntry()
	license.SetText(licenseText)
	license.Wrapping = fyne.TextWrapWord
	license.Disable()

	v.pages = []fyne.CanvasObject{
		container.NewVBox(
			widget.NewLabel("Welcome to the Microsoft Office 97 installation program."),
			widget.NewLabel("Setup will install Word, Excel, PowerPoint, Access and Outlook."),
			widget.NewLabel("Click Next to continue or Exit Setup to quit."),
		),
		container.NewBorder(nil, v.accept, nil, nil, license),
		container.NewVBox(
			widget.NewLabel("Choose the type of installation you want:"),
			v.install,
		),
	}

	v.heading = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.back = widget.NewButton("< Back", v.previous)
	v.next = widget.NewButton("Next >", v.advance)
	v.next.Importance = widget.HighImportance
	v.exit = widget.NewButton("Exit Setup", v.confirmExit)
	v.pageArea = container.NewStack()

	var top fyne.CanvasObject = v.heading
	if header != nil {
		img := canvas.NewImageFromResource(header)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(500, 58))
		top = container.NewVBox(img, v.heading)
	}

	buttons := container.NewHBox(v.exit, widget.NewSeparator(), v.back, v.next)
	v.content = container.NewBorder(
		top,
		container.NewVBox(widget.NewSeparator(), container.NewBorder(nil, nil, nil, buttons)),
		nil, nil,
		container.NewPadded(v.pageArea),
	)
	v.show(stepWelcome)
	return v
}

func (v *setupView) show(step int) {
	v.step = step
	v.pageArea.Objects = []fyne.CanvasObject{v.pages[step]}
	v.pageArea.Refresh()
	v.heading.SetText([]string{"Welcome", "License Agreement", "Installation Type"}[step])
	v.refresh()
}

func (v *setupView) refresh() {
	if v.step == stepWelcome {
		v.back.Disable()
	} else {
		v.back.Enable()
	}

	if v.step == stepInstallType {
		v.next.SetText("Finish")
	} else {
		v.next.SetText("Next >")
	}

	if v.done || (v.step == stepLicense && !v.accept.Checked) {
		v.next.Disable()
	} else {
		v.next.Enable()
	}
}

func (v *setupView) previous() {
	if v.step > stepWelcome {
		v.show(v.step - 1)
	}
}

func (v *setupView) advance() {
	if v.step < stepInstallType {
		v.show(v.step + 1)
		return
	}
	v.finish()
}

func (v *setupView) finish() {
	if v.done {
		return
	}
	v.done = true
	v.refresh()
	v.bridge.Finish()
}

func (v *setupView) confirmExit() {
	dialog.ShowConfirm("Exit Setup",
		"Setup is not complete. If you exit now, Office 97 will not be installed.\n\nExit Setup?",
		v.exitConfirmed, v.window)
}

func (v *setupView) exitConfirmed(ok bool) {
	if !ok || v.done {
		return
	}
	v.done = true
	v.bridge.Abort()
}
