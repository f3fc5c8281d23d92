package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestPointOnEllipse(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		a, b   float64
		angle  float64
		want   Point
	}{
		{"east", 10, 20, 5, 3, 0, Point{15, 20}},
		{"north", 10, 20, 5, 3, 90, Point{10, 23}},
		{"west", 10, 20, 5, 3, 180, Point{5, 20}},
		{"south negative angle", 10, 20, 5, 3, -90, Point{10, 17}},
		{"full turn", 0, 0, 1, 1, 360, Point{1, 0}},
		{"degenerate axes", 7, 8, 0, 0, 123, Point{7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnEllipse(tt.cx, tt.cy, tt.a, tt.b, tt.angle)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestMappingScenario(t *testing.T) {
	m, err := NewMapping(210, -30, 0, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, m.Scale(), eps)
	assert.InDelta(t, 210, m.Angle(0), eps)
	assert.InDelta(t, -30, m.Angle(100), eps)
	assert.InDelta(t, 90, m.Angle(50), eps)
	assert.InDelta(t, 100, m.Span(), eps)
}

func TestMappingEndpointsAndMonotonic(t *testing.T) {
	tests := []struct {
		name                 string
		begin, end, min, max float64
	}{
		{"clockwise", 210, -30, 0, 100},
		{"reversed", -30, -150, 50, 150},
		{"right sided", 120, -120, -40, 140},
		{"counter clockwise", -30, 210, 0, 100},
		{"clock", 90, -270, 0, 60},
		{"fractional", 45, 135, 0.5, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMapping(tt.begin, tt.end, tt.min, tt.max)
			require.NoError(t, err)
			assert.InDelta(t, tt.begin, m.Angle(tt.min), eps)
			assert.InDelta(t, tt.end, m.Angle(tt.max), eps)

			increasing := tt.end > tt.begin
			prev := m.Angle(tt.min)
			step := (tt.max - tt.min) / 50
			for v := tt.min + step; v <= tt.max; v += step {
				a := m.Angle(v)
				if increasing {
					assert.Greater(t, a, prev)
				} else {
					assert.Less(t, a, prev)
				}
				// linear: equal steps give equal angle deltas
				assert.InDelta(t, -m.Scale()*step, a-prev, 1e-6)
				prev = a
			}
		})
	}
}

func TestOffsetAngleMatchesAngle(t *testing.T) {
	m, err := NewMapping(120, -120, -40, 140)
	require.NoError(t, err)
	for off := 0.0; off <= m.Span(); off += 10 {
		assert.InDelta(t, m.Angle(m.Min+off), m.OffsetAngle(off), eps)
	}
}

func TestNewMappingRejectsDegenerateRange(t *testing.T) {
	tests := []struct {
		name                 string
		begin, end, min, max float64
	}{
		{"equal bounds", 210, -30, 5, 5},
		{"nan min", 210, -30, math.NaN(), 5},
		{"inf max", 210, -30, 0, math.Inf(1)},
		{"nan angle", math.NaN(), -30, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMapping(tt.begin, tt.end, tt.min, tt.max)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDegenerateRange))
		})
	}
}
