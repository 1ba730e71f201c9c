package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// PanelHeight returns the height of the card for the given available height.
func PanelHeight(available float32) float32 {
	return available * PanelHeightRatio
}

// insetLayout places every object inside the container shrunk by fixed
// amounts on each side. It is how the card expresses one-sided padding
// such as "10 before the label" or "100 below the header".
type insetLayout struct {
	top, trailing, bottom, leading float32
}

func (l *insetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos := fyne.NewPos(l.leading, l.top)
	inner := fyne.NewSize(
		max(size.Width-l.leading-l.trailing, 0),
		max(size.Height-l.top-l.bottom, 0),
	)
	for _, o := range objects {
		o.Move(pos)
		o.Resize(inner)
	}
}

func (l *insetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		minSize = minSize.Max(o.MinSize())
	}
	return minSize.Add(fyne.NewSize(l.leading+l.trailing, l.top+l.bottom))
}

// newInset wraps content with the given top, trailing, bottom and leading gaps.
func newInset(content fyne.CanvasObject, top, trailing, bottom, leading float32) *fyne.Container {
	return container.New(&insetLayout{top: top, trailing: trailing, bottom: bottom, leading: leading}, content)
}

// panelRegionLayout is the area the card lives in: it fills the height,
// keeps a fixed horizontal inset and centres a panel of PanelHeight
// vertically.
type panelRegionLayout struct {
	inset float32
}

func (l *panelRegionLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	width := max(size.Width-2*l.inset, 0)
	height := PanelHeight(size.Height)
	pos := fyne.NewPos(l.inset, (size.Height-height)/2)
	for _, o := range objects {
		o.Resize(fyne.NewSize(width, height))
		o.Move(pos)
	}
}

// MinSize only reserves the inset; the panel height follows the window.
func (l *panelRegionLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		minSize = minSize.Max(o.MinSize())
	}
	return fyne.NewSize(minSize.Width+2*l.inset, minSize.Height/PanelHeightRatio)
}

// spacedGridLayout arranges objects in a fixed number of equal-width
// columns, wrapping into as many rows as needed, with the same gap between
// rows and columns. Rows are as tall as the tallest object.
type spacedGridLayout struct {
	cols    int
	spacing float32
}

func (g *spacedGridLayout) visible(objects []fyne.CanvasObject) []fyne.CanvasObject {
	shown := make([]fyne.CanvasObject, 0, len(objects))
	for _, o := range objects {
		if o.Visible() {
			shown = append(shown, o)
		}
	}
	return shown
}

func (g *spacedGridLayout) rows(count int) int {
	return (count + g.cols - 1) / g.cols
}

func (g *spacedGridLayout) cellMinSize(objects []fyne.CanvasObject) fyne.Size {
	var cell fyne.Size
	for _, o := range objects {
		cell = cell.Max(o.MinSize())
	}
	return cell
}

func (g *spacedGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	shown := g.visible(objects)
	colWidth := max((size.Width-float32(g.cols-1)*g.spacing)/float32(g.cols), 0)
	rowHeight := g.cellMinSize(shown).Height

	for i, o := range shown {
		row, col := i/g.cols, i%g.cols
		o.Move(fyne.NewPos(
			float32(col)*(colWidth+g.spacing),
			float32(row)*(rowHeight+g.spacing),
		))
		o.Resize(fyne.NewSize(colWidth, rowHeight))
	}
}

func (g *spacedGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	shown := g.visible(objects)
	if len(shown) == 0 {
		return fyne.NewSize(0, 0)
	}
	cell := g.cellMinSize(shown)
	cols := min(g.cols, len(shown))
	rows := g.rows(len(shown))
	return fyne.NewSize(
		float32(cols)*cell.Width+float32(cols-1)*g.spacing,
		float32(rows)*cell.Height+float32(rows-1)*g.spacing,
	)
}
