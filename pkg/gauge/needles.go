package gauge

import (
	"github.com/roffe/txgauge/pkg/common"
	"github.com/roffe/txgauge/pkg/geometry"
	"github.com/roffe/txgauge/pkg/surface"
)

// updateValues redraws the needles whose value differs from the one last
// drawn. It returns the number of needles redrawn.
func (g *Gauge) updateValues() int {
	if !g.ready {
		return 0
	}
	redrawn := 0
	for i, v := range g.values {
		n := &g.needles[i]
		if n.drawn && n.prev == v {
			continue
		}
		n.prev, n.drawn = v, true
		if n.handle != 0 {
			g.surf.Remove(n.handle)
			n.handle = 0
		}
		n.tip = geometry.PointOnEllipse(g.center.X, g.center.Y,
			(g.semiA-common.NeedleInset)*n.style.length,
			(g.semiB-common.NeedleInset)*n.style.length,
			g.mapping.Angle(v))
		n.handle = g.surf.Add(surface.Group{Items: []surface.Drawable{
			surface.Line{
				P1:    n.tip,
				P2:    g.center,
				Color: n.style.color,
				Width: n.style.width,
				Cap:   surface.CapRound,
			},
		}})
		redrawn++
	}
	return redrawn
}
