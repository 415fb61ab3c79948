package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"office97/internal/bridge"
	"office97/internal/window"
)

type launcherView struct {
	bridge  bridge.Launcher
	buttons map[window.Kind]*widget.Button
	content fyne.CanvasObject
}

// newLauncherView builds the application grid. The legacy layout is the
// original single column of plain buttons.
func newLauncherView(b bridge.Launcher, icons IconSource, legacy bool) *launcherView {
	v := &launcherView{
		bridge:  b,
		buttons: make(map[window.Kind]*widget.Button, len(window.Apps)),
	}

	var items []fyne.CanvasObject
	for _, kind := range window.Apps {
		kind := kind
		spec := window.SpecFor(kind)

		var icon fyne.Resource
		if icons != nil && !legacy {
			icon = icons.Icon(spec.Icon)
		}
		btn := widget.NewButtonWithIcon(appLabel(kind), icon, func() { v.launch(kind) })
		v.buttons[kind] = btn
		items = append(items, btn)
	}

	heading := widget.NewLabelWithStyle("Microsoft Office 97", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	if legacy {
		v.content = container.NewBorder(heading, nil, nil, nil, container.NewVBox(items...))
		return v
	}

	hint := widget.NewLabelWithStyle("Select a program to start", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	v.content = container.NewBorder(heading, hint, nil, nil, container.NewPadded(container.NewGridWithColumns(3, items...)))
	return v
}

func (v *launcherView) launch(kind window.Kind) {
	v.bridge.LaunchApp(kind)
}

func appLabel(kind window.Kind) string {
	switch kind {
	case window.Word:
		return "Word"
	case window.Excel:
		return "Excel"
	case window.PowerPoint:
		return "PowerPoint"
	case window.Access:
		return "Access"
	case window.Outlook:
		return "Outlook"
	default:
		return kind.String()
	}
}
