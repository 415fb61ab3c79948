package gui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"office97/internal/bridge"
	"office97/internal/gui/layout"
	"office97/internal/icons"
)

const splashSteps = 20

var splashMessages = []string{
	"Setup is starting...",
	"Checking system configuration...",
	"Copying Setup files...",
	"Preparing Microsoft Office 97...",
}

type splashView struct {
	bridge   bridge.Splash
	duration time.Duration

	progress *widget.ProgressBar
	status   *widget.Label
	content  fyne.CanvasObject

	once sync.Once
}

func newSplashView(b bridge.Splash, sidebar fyne.Resource, duration time.Duration) *splashView {
	v := &splashView{
		bridge:   b,
		duration: duration,
		progress: widget.NewProgressBar(),
		status:   widget.NewLabel(splashMessages[0]),
	}

	title := widget.NewLabelWithStyle("Microsoft Office 97", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	body := container.NewVBox(
		title,
		widget.NewLabel("Professional Edition"),
		widget.NewSeparator(),
		v.status,
		v.progress,
	)

	var art fyne.CanvasObject = canvas.NewRectangle(navy)
	if sidebar != nil {
		img := canvas.NewImageFromResource(sidebar)
		img.FillMode = canvas.ImageFillStretch
		art = img
	}
	v.content = layout.NewSidebar(icons.SidebarWidth, art, container.NewPadded(body))
	return v
}

// run animates the progress bar over the splash duration and then reports
// completion. It must be started after the window is shown.
func (v *splashView) run() {
	go func() {
		step := v.duration / splashSteps
		for i := 1; i <= splashSteps; i++ {
			if step > 0 {
				time.Sleep(step)
			}
			i := i
			fyne.Do(func() { v.setStep(i) })
		}
		fyne.Do(v.complete)
	}()
}

func (v *splashView) setStep(i int) {
	v.progress.SetValue(float64(i) / splashSteps)
	msg := splashMessages[(i*len(splashMessages)-1)/splashSteps]
	if v.status.Text != msg {
		v.status.SetText(msg)
	}
}

// complete signals the orchestrator once, however often it is called.
func (v *splashView) complete() {
	v.once.Do(func() {
		v.progress.SetValue(1)
		v.bridge.InstallerComplete()
	})
}
