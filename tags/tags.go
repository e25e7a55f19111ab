package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Rock     = donburi.NewTag().SetName("Rock")
	Arrow    = donburi.NewTag().SetName("Arrow")
	Portal   = donburi.NewTag().SetName("Portal")

	// Transient marks entities that belong to a single level attempt and are
	// removed when the level is set up again.
	Transient = donburi.NewTag().SetName("Transient")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvRock   = "rock"
	ResolvArrow  = "arrow"
	ResolvPortal = "portal"
)
