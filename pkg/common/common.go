package common

import "math"

const (
	PiDiv180 = math.Pi / 180
	OneHalf  = 1.0 / 2.0 // 0.5
)

// Dial face insets, measured inwards from the ellipse rim.
const (
	LabelInset      = 30.0
	TickInset       = 10.0
	GraduationInset = 5.0
	NeedleInset     = 20.0
)

const (
	LabelStep      = 10 // default labels and major ticks every 10 units
	LabelFontSize  = 20
	TickWidth      = 2.0
	GraduationSize = 2.0

	DefaultBegin = 210.0
	DefaultEnd   = -30.0
	DefaultMin   = 0.0
	DefaultMax   = 100.0

	DefaultNeedleLength = 1.0
	DefaultNeedleWidth  = 2.0 // when no needle specs are configured
	ExplicitNeedleWidth = 1.0 // when needle specs are configured
	DefaultMinSizeDip   = 100
)
