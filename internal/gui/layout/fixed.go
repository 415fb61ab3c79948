package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// FixedColumnLayout gives the leading objects fixed widths and stretches the
// last one over what is left. Installer windows use it to pin the sidebar
// artwork at its native width.
type FixedColumnLayout struct {
	columnWidths []float32
	padding      float32
}

func NewFixedColumnLayout(columnWidths []float32, padding float32) *FixedColumnLayout {
	return &FixedColumnLayout{
		columnWidths: columnWidths,
		padding:      padding,
	}
}

// NewSidebar lays out sidebar at width and content beside it.
func NewSidebar(width float32, sidebar, content fyne.CanvasObject) *fyne.Container {
	return container.New(NewFixedColumnLayout([]float32{width}, 8), sidebar, content)
}

func (fcl *FixedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	x := float32(0)
	for i, obj := range objects {
		width := containerSize.Width - x
		if i < len(fcl.columnWidths) && i < len(objects)-1 {
			width = fcl.columnWidths[i]
		}
		if width < 0 {
			width = 0
		}

		obj.Resize(fyne.NewSize(width, containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width + fcl.padding
	}
}

func (fcl *FixedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	totalWidth := float32(0)
	maxHeight := float32(0)

	for i, obj := range objects {
		objMin := obj.MinSize()
		if i < len(fcl.columnWidths) && i < len(objects)-1 {
			totalWidth += fcl.columnWidths[i] + fcl.padding
		} else {
			totalWidth += objMin.Width
		}
		if objMin.Height > maxHeight {
			maxHeight = objMin.Height
		}
	}

	return fyne.NewSize(totalWidth, maxHeight)
}
