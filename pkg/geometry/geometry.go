// Package geometry maps gauge values onto points of the dial ellipse.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/roffe/txgauge/pkg/common"
)

var ErrDegenerateRange = errors.New("degenerate value range")

type Point struct {
	X, Y float64
}

// PointOnEllipse returns the cartesian coordinates of the point at angle
// (degrees) on the ellipse centered at (cx, cy) with semi-axes a and b.
func PointOnEllipse(cx, cy, a, b, angle float64) Point {
	s, c := math.Sincos(angle * common.PiDiv180)
	return Point{X: cx + a*c, Y: cy + b*s}
}

// Mapping converts values of the [Min, Max] domain into angles of the
// [Begin, End] sweep. Begin may be larger or smaller than End, the sign of
// the scale carries the direction.
type Mapping struct {
	Begin, End float64
	Min, Max   float64
	scale      float64
}

func NewMapping(begin, end, min, max float64) (Mapping, error) {
	for _, v := range [...]float64{begin, end, min, max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Mapping{}, fmt.Errorf("%w: non finite bound %v", ErrDegenerateRange, v)
		}
	}
	if max == min {
		return Mapping{}, fmt.Errorf("%w: min and max are both %v", ErrDegenerateRange, min)
	}
	return Mapping{
		Begin: begin,
		End:   end,
		Min:   min,
		Max:   max,
		scale: (begin - end) / (max - min),
	}, nil
}

// Scale is degrees per value unit, (Begin-End)/(Max-Min).
func (m Mapping) Scale() float64 { return m.scale }

func (m Mapping) Span() float64 { return m.Max - m.Min }

// Angle returns the angle in degrees for a domain value.
func (m Mapping) Angle(value float64) float64 {
	return m.OffsetAngle(value - m.Min)
}

// OffsetAngle returns the angle for an offset from Min.
func (m Mapping) OffsetAngle(offset float64) float64 {
	return m.Begin - m.scale*offset
}
