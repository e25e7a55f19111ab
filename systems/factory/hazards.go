package factory

import (
	"github.com/automoto/rogueratou/archetypes"
	"github.com/automoto/rogueratou/assets"
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRock spawns the falling rock at its drop point, already falling.
func CreateRock(ecs *ecs.ECS, drop assets.Rect) *donburi.Entry {
	rock := archetypes.Rock.Spawn(ecs)

	center := drop.Center()
	obj := newBody(rock, center.X, center.Y, drop.Width, drop.Height, tags.ResolvRock)

	fall := components.Vector{Y: cfg.Rock.FallSpeed}
	components.Rock.SetValue(rock, components.RockData{IntendedVel: fall})
	components.Physics.SetValue(rock, components.PhysicsData{
		Vel:    fall,
		Blocks: []string{tags.ResolvSolid, tags.ResolvPlayer},
	})
	components.Color.SetValue(rock, components.ColorData{Color: cfg.Rock.Color})

	addToSpace(ecs, obj)
	return rock
}

// CreateArrow spawns one projectile centered on (x, y) moving horizontally at vx.
func CreateArrow(ecs *ecs.ECS, x, y, vx float64, wave int) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(ecs)

	obj := newBody(arrow, x, y, cfg.Arrow.Width, cfg.Arrow.Height, tags.ResolvArrow)
	components.Arrow.SetValue(arrow, components.ArrowData{Wave: wave})
	components.Physics.SetValue(arrow, components.PhysicsData{
		Vel:    components.Vector{X: vx},
		Blocks: []string{tags.ResolvSolid},
	})
	components.Color.SetValue(arrow, components.ColorData{Color: cfg.Arrow.Color})

	addToSpace(ecs, obj)
	return arrow
}

// CreatePortal spawns the victory portal. It is a sensor: it reports
// overlaps but never blocks movement.
func CreatePortal(ecs *ecs.ECS, area assets.Rect) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)

	center := area.Center()
	obj := newBody(portal, center.X, center.Y, area.Width, area.Height, tags.ResolvPortal)
	components.Portal.SetValue(portal, components.PortalData{})
	components.Color.SetValue(portal, components.ColorData{Color: cfg.Portal.Color})

	addToSpace(ecs, obj)
	return portal
}
