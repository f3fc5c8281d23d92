package layout

import (
	"fyne.io/fyne/v2"
)

// Grid lays gauges out in fixed cells, row by row from the top left.
type Grid struct {
	Cols, Rows int
	Padding    float32
	lastSize   fyne.Size
	lastCount  int
}

// NewGrid returns a grid with enough rows for count cells.
func NewGrid(cols, count int, padding float32) *Grid {
	cols = max(cols, 1)
	return &Grid{
		Cols:    cols,
		Rows:    max((count+cols-1)/cols, 1),
		Padding: padding,
	}
}

func (g *Grid) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size == g.lastSize && len(objects) == g.lastCount {
		return
	}
	g.lastSize = size
	g.lastCount = len(objects)

	padding2 := g.Padding * 2
	cellWidth := (size.Width - float32(g.Cols)*padding2) / float32(g.Cols)
	cellHeight := (size.Height - float32(g.Rows)*padding2) / float32(g.Rows)

	for i, obj := range objects[:min(len(objects), g.Rows*g.Cols)] {
		row := i / g.Cols
		col := i % g.Cols
		obj.Move(fyne.NewPos(
			float32(col)*(cellWidth+padding2)+g.Padding,
			float32(row)*(cellHeight+padding2)+g.Padding,
		))
		obj.Resize(fyne.NewSize(cellWidth, cellHeight))
	}
}

func (g *Grid) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var cell fyne.Size
	for _, o := range objects {
		cell = cell.Max(o.MinSize())
	}
	w := cell.Width + 2*g.Padding
	h := cell.Height + 2*g.Padding
	return fyne.NewSize(w*float32(g.Cols), h*float32(g.Rows))
}
