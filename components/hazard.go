package components

import (
	"github.com/yohamta/donburi"
)

// RockData tracks the falling rock. IntendedVel is its fall velocity, kept
// aside while the physics step resolves a contact with the player so the
// player cannot stop it.
type RockData struct {
	IntendedVel Vector
	Landed      bool
}

var Rock = donburi.NewComponentType[RockData]()

type ArrowData struct {
	Wave int
}

var Arrow = donburi.NewComponentType[ArrowData]()

type PortalData struct {
	Reached bool
}

var Portal = donburi.NewComponentType[PortalData]()
