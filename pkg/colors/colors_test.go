package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedleCycle(t *testing.T) {
	tests := []struct {
		index int
		want  color.NRGBA
	}{
		{0, color.NRGBA{0, 128, 255, 255}},
		{1, color.NRGBA{128, 255, 0, 255}},
		{2, color.NRGBA{255, 0, 128, 255}},
		{3, color.NRGBA{0, 128, 255, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Needle(tt.index), "needle %d", tt.index)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "hex6", in: "#ff8000", want: color.NRGBA{255, 128, 0, 255}},
		{name: "hex8", in: "#ff800080", want: color.NRGBA{255, 128, 0, 128}},
		{name: "hex3", in: "#f00", want: color.NRGBA{255, 0, 0, 255}},
		{name: "name", in: "SteelBlue", want: color.NRGBA{70, 130, 180, 255}},
		{name: "floats", in: "0, 0, 1, .5", want: color.NRGBA{0, 0, 255, 128}},
		{name: "floats rgb", in: "1,1,1", want: color.NRGBA{255, 255, 255, 255}},
		{name: "bad hex", in: "#zzzzzz", wantErr: true},
		{name: "bad name", in: "notacolor", wantErr: true},
		{name: "empty", in: " ", wantErr: true},
		{name: "too many floats", in: "1,1,1,1,1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatParse(t *testing.T) {
	c := color.NRGBA{1, 2, 3, 4}
	got, err := Parse(Format(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, Interpolate(0, 100, -5, ModeNormal))
	assert.Equal(t, color.NRGBA{255, 255, 0, 255}, Interpolate(0, 100, 50, ModeNormal))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, Interpolate(0, 100, 200, ModeNormal))
	assert.Equal(t, color.NRGBA{128, 128, 128, 255}, Interpolate(0, 0, 0, ModeNormal))
	assert.Equal(t, color.NRGBA{33, 102, 172, 255}, Interpolate(0, 1, 0, ModeUniversal))
}

func TestStringToColorBlindMode(t *testing.T) {
	assert.Equal(t, ModeTritanopia, StringToColorBlindMode("tritanopia"))
	assert.Equal(t, ModeNormal, StringToColorBlindMode("bogus"))
	assert.Equal(t, Protanopia, ModeProtanopia.String())
}
