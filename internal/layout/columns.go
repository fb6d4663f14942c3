// Package layout provides the fixed-size arrangements the kiosk screens use.
package layout

import (
	"fyne.io/fyne/v2"
)

// FixedColumnLayout places objects side by side in columns of fixed width, centred
// horizontally in the container. Content changes never shift the columns.
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

func (fcl *FixedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	x := (containerSize.Width - fcl.totalWidth()) / 2
	if x < 0 {
		x = 0
	}

	for i, obj := range objects {
		if i >= len(fcl.columnWidths) {
			obj.Hide()
			continue
		}

		width := fcl.columnWidths[i]
		height := obj.MinSize().Height
		if height > containerSize.Height {
			height = containerSize.Height
		}
		obj.Resize(fyne.NewSize(width, height))
		obj.Move(fyne.NewPos(x, (containerSize.Height-height)/2))
		x += width + fcl.padding
	}
}

func (fcl *FixedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	maxHeight := float32(0)
	for i := range fcl.columnWidths {
		if i < len(objects) {
			if h := objects[i].MinSize().Height; h > maxHeight {
				maxHeight = h
			}
		}
	}

	return fyne.NewSize(fcl.totalWidth(), maxHeight)
}

func (fcl *FixedColumnLayout) totalWidth() float32 {
	total := float32(0)
	for _, width := range fcl.columnWidths {
		total += width
	}
	if n := len(fcl.columnWidths); n > 1 {
		total += fcl.padding * float32(n-1)
	}
	return total
}
