package canvasgauge

import (
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/txgauge/pkg/geometry"
	"github.com/roffe/txgauge/pkg/surface"
)

type item struct {
	handle  surface.Handle
	objects []fyne.CanvasObject
}

// fyneSurface turns gauge drawables into canvas objects. The gauge draws
// y-up, fyne is y-down, so every y is flipped against height.
type fyneSurface struct {
	height float32
	items  []item
	next   surface.Handle

	objects []fyne.CanvasObject // flattened items, nil when stale
}

func (s *fyneSurface) Clear() {
	s.items = s.items[:0]
	s.objects = nil
}

func (s *fyneSurface) Add(d surface.Drawable) surface.Handle {
	s.next++
	s.items = append(s.items, item{handle: s.next, objects: s.convert(nil, d)})
	s.objects = nil
	return s.next
}

func (s *fyneSurface) Replace(h surface.Handle, d surface.Drawable) bool {
	i := s.index(h)
	if i < 0 {
		return false
	}
	s.items[i].objects = s.convert(nil, d)
	s.objects = nil
	return true
}

func (s *fyneSurface) Remove(h surface.Handle) bool {
	i := s.index(h)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.objects = nil
	return true
}

func (s *fyneSurface) index(h surface.Handle) int {
	return slices.IndexFunc(s.items, func(it item) bool { return it.handle == h })
}

// Objects returns the canvas objects bottom to top.
func (s *fyneSurface) Objects() []fyne.CanvasObject {
	if s.objects == nil {
		objs := make([]fyne.CanvasObject, 0, len(s.items)*2)
		for _, it := range s.items {
			objs = append(objs, it.objects...)
		}
		s.objects = objs
	}
	return s.objects
}

func (s *fyneSurface) pos(p geometry.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), s.height-float32(p.Y))
}

func (s *fyneSurface) convert(dst []fyne.CanvasObject, d surface.Drawable) []fyne.CanvasObject {
	switch v := d.(type) {
	case surface.Ellipse:
		e := canvas.NewRasterWithPixels(ellipsePixels(v.Fill))
		e.Move(s.pos(geometry.Point{X: v.Pos.X, Y: v.Pos.Y + v.Size.Y}))
		e.Resize(fyne.NewSize(float32(v.Size.X), float32(v.Size.Y)))
		return append(dst, e)
	case surface.Line:
		return append(dst, &canvas.Line{
			Position1:   s.pos(v.P1),
			Position2:   s.pos(v.P2),
			StrokeColor: v.Color,
			StrokeWidth: float32(v.Width),
		})
	case surface.Text:
		t := canvas.NewText(v.Text, orDefault(v.Color))
		t.TextSize = v.FontSize
		t.TextStyle = fyne.TextStyle{Bold: v.Bold}
		size := fyne.MeasureText(v.Text, t.TextSize, t.TextStyle)
		t.Move(s.pos(v.Pos).SubtractXY(size.Width/2, size.Height/2))
		t.Resize(size)
		return append(dst, t)
	case surface.Points:
		r := float32(v.PointSize) / 2
		for _, p := range v.Points {
			c := &canvas.Circle{FillColor: v.Color}
			c.Move(s.pos(p).SubtractXY(r, r))
			c.Resize(fyne.NewSize(r*2, r*2))
			dst = append(dst, c)
		}
		return dst
	case surface.Group:
		for _, it := range v.Items {
			dst = s.convert(dst, it)
		}
		return dst
	}
	return dst
}

func orDefault(c color.Color) color.Color {
	if c == nil {
		return color.White
	}
	return c
}

// ellipsePixels fills the ellipse inscribed in the raster bounds.
// canvas.Circle can not be used, it always draws a circle.
func ellipsePixels(fill color.Color) func(x, y, w, h int) color.Color {
	var c color.NRGBA
	if fill != nil {
		c = color.NRGBAModel.Convert(fill).(color.NRGBA)
	}
	return func(x, y, w, h int) color.Color {
		a, b := float64(w)/2, float64(h)/2
		dx := (float64(x) + .5 - a) / a
		dy := (float64(y) + .5 - b) / b
		if dx*dx+dy*dy <= 1 {
			return c
		}
		return color.NRGBA{}
	}
}
