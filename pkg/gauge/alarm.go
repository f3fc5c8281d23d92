package gauge

import (
	"image/color"
	"math"

	"github.com/roffe/txgauge/pkg/colors"
)

// evaluateAlarms applies the first alarm band containing the first value.
// When no band matches the background is left as is.
func (g *Gauge) evaluateAlarms() {
	if !g.ready || len(g.values) == 0 {
		return
	}
	v := g.values[0]
	if g.alarmEvaluated && g.alarmValue == v {
		return
	}
	g.alarmValue, g.alarmEvaluated = v, true

	for i, band := range g.cfg.Alarms {
		if !band.Contains(v) {
			continue
		}
		if i == g.activeBand {
			return
		}
		g.activeBand = i
		g.setBackground(band.Color)
		if g.cfg.OnAlarm != nil {
			g.cfg.OnAlarm(AlarmEvent{Index: i, Band: band, Value: v})
		}
		return
	}
}

func (g *Gauge) setBackground(c color.Color) {
	g.background = c
	if g.backgroundHandle != 0 {
		g.surf.Replace(g.backgroundHandle, g.backgroundEllipse())
	}
}

// GradientAlarms splits [min, max) into n bands colored along the palette
// of mode. The outer bands are open ended so out of range values saturate.
func GradientAlarms(min, max float64, n int, alpha float64, mode colors.ColorBlindMode) []AlarmBand {
	if n <= 0 || max <= min {
		return nil
	}
	step := (max - min) / float64(n)
	bands := make([]AlarmBand, n)
	for i := range bands {
		low := min + step*float64(i)
		bands[i] = AlarmBand{
			Low:   low,
			High:  low + step,
			Color: colors.WithAlpha(colors.Interpolate(min, max, low+step/2, mode), alpha),
		}
	}
	bands[0].Low = math.Inf(-1)
	bands[n-1].High = math.Inf(1)
	return bands
}
