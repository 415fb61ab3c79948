package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	detailLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	detailLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		widget.NewSeparator(), nil,
		statusLabel,
		detailLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		detailLabel: detailLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

// SetDetail sets the right-hand text, typically the document name and size.
func (sb *StatusBar) SetDetail(detail string) {
	sb.detailLabel.SetText(detail)
}

func (sb *StatusBar) Detail() string {
	return sb.detailLabel.Text
}
