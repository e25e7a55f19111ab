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

// CreatePlayer spawns the player at the arena spawn point. The player
// survives level resets; the level driver resets it each attempt.
func CreatePlayer(ecs *ecs.ECS, spawn assets.Rect) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	center := spawn.Center()
	obj := newBody(player, center.X, center.Y, spawn.Width, spawn.Height, tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Ability:        cfg.AbilityNone,
		JumpsRemaining: cfg.Player.MaxJumps,
		MaxJumps:       cfg.Player.MaxJumps,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Acc:    components.Vector{Y: cfg.Player.Gravity},
		Blocks: []string{tags.ResolvSolid, tags.ResolvRock},
	})
	components.Color.SetValue(player, components.ColorData{Color: cfg.White})

	addToSpace(ecs, obj)
	return player
}
