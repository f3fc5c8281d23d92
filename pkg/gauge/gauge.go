// Package gauge draws an analog dial and its needles onto a surface.
//
// A Gauge is rebuilt completely when its geometry or configuration changes
// and only the needles whose value changed are redrawn on value updates.
// Nothing is drawn before the first SetGeometry call. A Gauge is not safe
// for concurrent use.
package gauge

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/roffe/txgauge/pkg/geometry"
	"github.com/roffe/txgauge/pkg/surface"
)

type needle struct {
	style  needleStyle
	prev   float64
	drawn  bool // prev holds the last rendered value
	handle surface.Handle
	tip    geometry.Point
}

type Gauge struct {
	cfg  *Config
	surf surface.Surface

	pos, size   geometry.Point
	hasGeometry bool

	values  []float64
	needles []needle

	// ready is set once a rebuild has completed, no needle or alarm work
	// happens before that.
	ready bool

	background       color.Color
	backgroundHandle surface.Handle
	activeBand       int
	alarmValue       float64
	alarmEvaluated   bool

	// geometry cache written by rebuild
	center       geometry.Point
	semiA, semiB float64
	mapping      geometry.Mapping
}

// New returns a gauge drawing into s. Without values the gauge tracks a
// single value of 0.
func New(cfg *Config, s surface.Surface, values ...float64) (*Gauge, error) {
	if s == nil {
		return nil, errors.New("gauge.New: nil surface")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		values = []float64{0}
	}
	g := &Gauge{
		surf:   s,
		values: slices.Clone(values),
	}
	g.apply(cfg.Clone())
	return g, nil
}

func (g *Gauge) apply(cfg *Config) {
	if cfg.Background == nil {
		cfg.Background = DefaultConfig().Background
	}
	g.cfg = cfg
	g.mapping, _ = geometry.NewMapping(cfg.Begin, cfg.End, cfg.Min, cfg.Max)
	g.background = cfg.Background
	g.activeBand = -1
	g.alarmEvaluated = false
	g.needles = g.needles[:0]
}

// SetGeometry moves and resizes the gauge, the dial is rebuilt.
func (g *Gauge) SetGeometry(pos, size geometry.Point) error {
	for _, v := range [...]float64{pos.X, pos.Y, size.X, size.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non finite position or size", ErrGeometry)
		}
	}
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: negative size %vx%v", ErrGeometry, size.X, size.Y)
	}
	g.pos, g.size = pos, size
	g.hasGeometry = true
	return g.rebuild()
}

// Reconfigure replaces the static configuration. On error the gauge is
// left untouched.
func (g *Gauge) Reconfigure(cfg *Config) error {
	if cfg == nil {
		return &ConfigError{Field: "Config", Reason: "nil"}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.apply(cfg.Clone())
	if !g.hasGeometry {
		return nil
	}
	return g.rebuild()
}

// SetValues replaces the tracked values. Needles are added or dropped to
// match the new count.
func (g *Gauge) SetValues(values ...float64) {
	for i := len(values); i < len(g.needles); i++ {
		if h := g.needles[i].handle; h != 0 {
			g.surf.Remove(h)
		}
	}
	if len(values) < len(g.needles) {
		g.needles = g.needles[:len(values)]
	}
	g.values = append(g.values[:0], values...)
	g.refresh()
}

// SetValue sets value i, growing the tracked values with zeros if needed.
func (g *Gauge) SetValue(i int, v float64) {
	if i < 0 {
		return
	}
	for len(g.values) <= i {
		g.values = append(g.values, 0)
	}
	g.values[i] = v
	g.refresh()
}

func (g *Gauge) refresh() {
	g.syncNeedles()
	g.updateValues()
	g.evaluateAlarms()
}

// syncNeedles extends the per needle state to match the tracked values.
func (g *Gauge) syncNeedles() {
	for i := len(g.needles); i < len(g.values); i++ {
		g.needles = append(g.needles, needle{style: g.cfg.needleStyle(i)})
	}
}

func (g *Gauge) Values() []float64 { return slices.Clone(g.values) }

func (g *Gauge) Ready() bool { return g.ready }

// Background is the current background color, alarm bands included.
func (g *Gauge) Background() color.Color { return g.background }

func (g *Gauge) Center() geometry.Point { return g.center }

func (g *Gauge) SemiAxes() (a, b float64) { return g.semiA, g.semiB }

// Angle returns the dial angle in degrees for v.
func (g *Gauge) Angle(v float64) float64 { return g.mapping.Angle(v) }

// NeedleTip returns where needle i was last drawn.
func (g *Gauge) NeedleTip(i int) (geometry.Point, bool) {
	if i < 0 || i >= len(g.needles) || !g.needles[i].drawn {
		return geometry.Point{}, false
	}
	return g.needles[i].tip, true
}

// Config returns a copy of the active configuration.
func (g *Gauge) Config() *Config { return g.cfg.Clone() }
