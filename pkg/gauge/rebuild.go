package gauge

import (
	"strconv"

	"github.com/roffe/txgauge/pkg/colors"
	"github.com/roffe/txgauge/pkg/common"
	"github.com/roffe/txgauge/pkg/geometry"
	"github.com/roffe/txgauge/pkg/surface"
)

var (
	labelColor = colors.FromFloats(1, 1, 1, .5)
	tickColor  = colors.FromFloats(1, 1, 1, 1)
)

// rebuild redraws the whole dial face and then the needles.
func (g *Gauge) rebuild() error {
	g.ready = false

	mapping, err := geometry.NewMapping(g.cfg.Begin, g.cfg.End, g.cfg.Min, g.cfg.Max)
	if err != nil {
		return &ConfigError{Field: "Min/Max", Reason: "cannot map values to angles", Err: err}
	}

	// The surface is cleared below, every needle has to be drawn again.
	g.syncNeedles()
	for i := range g.needles {
		g.needles[i].drawn = false
		g.needles[i].handle = 0
	}

	g.surf.Clear()

	a, b := g.size.X*common.OneHalf, g.size.Y*common.OneHalf
	center := geometry.Point{X: g.pos.X + a, Y: g.pos.Y + b}

	g.backgroundHandle = g.surf.Add(g.backgroundEllipse())

	if len(g.cfg.Labels) > 0 {
		for _, l := range g.cfg.Labels {
			g.drawLabel(center, a, b, mapping.Angle(l.Value), l.Text)
		}
	} else {
		for off := 0.0; off <= mapping.Span(); off += common.LabelStep {
			g.drawLabel(center, a, b, mapping.OffsetAngle(off), strconv.Itoa(int(off+g.cfg.Min)))
		}
	}

	// Custom graduations are not drawn yet, see Config.Graduations.
	if len(g.cfg.Graduations) == 0 {
		var pts []geometry.Point
		for i := 1; float64(i) <= mapping.Span(); i++ {
			if i%common.LabelStep == 0 {
				continue
			}
			pts = append(pts, geometry.PointOnEllipse(center.X, center.Y,
				a-common.GraduationInset, b-common.GraduationInset, mapping.OffsetAngle(float64(i))))
		}
		if len(pts) > 0 {
			g.surf.Add(surface.Points{Points: pts, Color: tickColor, PointSize: common.GraduationSize})
		}
	}

	g.center = center
	g.semiA, g.semiB = a, b
	g.mapping = mapping
	g.ready = true

	g.updateValues()
	g.evaluateAlarms()
	return nil
}

// drawLabel places text inside the rim and a major tick on the rim.
func (g *Gauge) drawLabel(center geometry.Point, a, b, angle float64, text string) {
	g.surf.Add(surface.Text{
		Pos:      geometry.PointOnEllipse(center.X, center.Y, a-common.LabelInset, b-common.LabelInset, angle),
		Text:     text,
		Color:    labelColor,
		FontSize: common.LabelFontSize,
		Bold:     true,
	})
	g.surf.Add(surface.Line{
		P1:    geometry.PointOnEllipse(center.X, center.Y, a, b, angle),
		P2:    geometry.PointOnEllipse(center.X, center.Y, a-common.TickInset, b-common.TickInset, angle),
		Color: tickColor,
		Width: common.TickWidth,
	})
}

func (g *Gauge) backgroundEllipse() surface.Ellipse {
	return surface.Ellipse{Pos: g.pos, Size: g.size, Fill: g.background}
}
