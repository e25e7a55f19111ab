package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the arcade integration state of a body. Velocity is in
// units per second, acceleration in units per second squared.
type PhysicsData struct {
	Vel Vector
	Acc Vector

	// Blocks lists the resolv tags this body cannot pass through.
	Blocks []string
}

var Physics = donburi.NewComponentType[PhysicsData]()
