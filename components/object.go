package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the body's collision object. X and Y are its top-left corner.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Center returns the midpoint of the body.
func (o ObjectData) Center() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the body so its midpoint is at (x, y) and refreshes its
// position in the collision space.
func (o ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
	o.Update()
}

// Overlaps reports whether two bodies intersect with non-zero area.
func (o ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}
