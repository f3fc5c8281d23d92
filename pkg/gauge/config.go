package gauge

import (
	"fmt"
	"image/color"
	"math"

	"github.com/roffe/txgauge/pkg/colors"
	"github.com/roffe/txgauge/pkg/common"
	"github.com/roffe/txgauge/pkg/geometry"
)

type Label struct {
	Value float64
	Text  string
}

// AlarmBand applies Color to the background while Low <= value < High.
type AlarmBand struct {
	Low, High float64
	Color     color.Color
}

func (b AlarmBand) Contains(v float64) bool {
	return b.Low <= v && v < b.High
}

// NeedleSpec overrides the drawing of one needle, zero values mean default.
type NeedleSpec struct {
	Color  color.Color
	Length float64 // fraction of the dial radius
	Width  float64
}

// AlarmEvent is passed to Config.OnAlarm when a band gets applied.
type AlarmEvent struct {
	Index int
	Band  AlarmBand
	Value float64
}

type Config struct {
	Begin, End float64 // degrees at Min and Max
	Min, Max   float64
	Background color.Color

	// Labels replace the default labels every 10 units when set.
	Labels []Label
	// Graduations is accepted but not drawn yet, setting it only removes the
	// default minor graduations.
	Graduations []float64
	// Alarms are scanned in order against the first value, first match wins.
	Alarms  []AlarmBand
	Needles []NeedleSpec

	OnAlarm func(AlarmEvent)
}

func DefaultConfig() *Config {
	return &Config{
		Begin:      common.DefaultBegin,
		End:        common.DefaultEnd,
		Min:        common.DefaultMin,
		Max:        common.DefaultMax,
		Background: colors.FromFloats(1, 1, 1, .1),
	}
}

func (c *Config) Validate() error {
	if _, err := geometry.NewMapping(c.Begin, c.End, c.Min, c.Max); err != nil {
		return &ConfigError{Field: "Min/Max", Reason: "cannot map values to angles", Err: err}
	}
	for i, n := range c.Needles {
		if n.Length < 0 || math.IsNaN(n.Length) {
			return &ConfigError{Field: fmt.Sprintf("Needles[%d].Length", i), Reason: fmt.Sprintf("invalid length %v", n.Length)}
		}
		if n.Width < 0 || math.IsNaN(n.Width) {
			return &ConfigError{Field: fmt.Sprintf("Needles[%d].Width", i), Reason: fmt.Sprintf("invalid width %v", n.Width)}
		}
	}
	for i, b := range c.Alarms {
		if b.Color == nil {
			return &ConfigError{Field: fmt.Sprintf("Alarms[%d].Color", i), Reason: "missing color"}
		}
	}
	return nil
}

// Clone returns a copy that does not share slices with c.
func (c *Config) Clone() *Config {
	n := *c
	n.Labels = append([]Label(nil), c.Labels...)
	n.Graduations = append([]float64(nil), c.Graduations...)
	n.Alarms = append([]AlarmBand(nil), c.Alarms...)
	n.Needles = append([]NeedleSpec(nil), c.Needles...)
	return &n
}

type needleStyle struct {
	color  color.Color
	length float64
	width  float64
}

// needleStyle resolves how needle i is drawn.
func (c *Config) needleStyle(i int) needleStyle {
	st := needleStyle{
		color:  colors.Needle(i),
		length: common.DefaultNeedleLength,
		width:  common.DefaultNeedleWidth,
	}
	if len(c.Needles) == 0 {
		return st
	}
	st.width = common.ExplicitNeedleWidth
	if i >= len(c.Needles) {
		return st
	}
	n := c.Needles[i]
	if n.Color != nil {
		st.color = n.Color
	}
	if n.Length > 0 {
		st.length = n.Length
	}
	if n.Width > 0 {
		st.width = n.Width
	}
	return st
}
