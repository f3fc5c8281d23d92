// Package surface is the retained drawing list a gauge renders into.
//
// Coordinates are y-up with the origin at the bottom left of the host area.
// Backends that draw y-down flip the axis themselves.
package surface

import (
	"image/color"

	"github.com/roffe/txgauge/pkg/geometry"
)

// Handle identifies a drawable on a Surface. The zero Handle is never issued.
type Handle uint64

type Cap int

const (
	CapNone Cap = iota
	CapRound
	CapSquare
)

// Drawable is one of Ellipse, Line, Text, Points or Group.
type Drawable interface {
	drawable()
}

// Ellipse is filled inside the box at Pos (bottom left) with Size.
type Ellipse struct {
	Pos  geometry.Point
	Size geometry.Point
	Fill color.Color
}

type Line struct {
	P1, P2 geometry.Point
	Color  color.Color
	Width  float64
	Cap    Cap
	Closed bool
}

// Text is anchored at its center.
type Text struct {
	Pos      geometry.Point
	Text     string
	Color    color.Color
	FontSize float32
	Bold     bool
}

type Points struct {
	Points    []geometry.Point
	Color     color.Color
	PointSize float64
}

// Group is added, replaced and removed as a single unit.
type Group struct {
	Items []Drawable
}

func (Ellipse) drawable() {}
func (Line) drawable()    {}
func (Text) drawable()    {}
func (Points) drawable()  {}
func (Group) drawable()   {}

// Surface is exclusively owned by one gauge.
type Surface interface {
	// Clear drops every drawable.
	Clear()
	// Add puts d on top and returns its handle.
	Add(d Drawable) Handle
	// Replace swaps the drawable behind h for d, keeping its z-order.
	Replace(h Handle, d Drawable) bool
	// Remove discards the drawable behind h.
	Remove(h Handle) bool
}
