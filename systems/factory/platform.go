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

// CreatePlatform spawns one immovable solid block.
func CreatePlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	center := spawn.Center()
	obj := newBody(platform, center.X, center.Y, spawn.Width, spawn.Height, tags.ResolvSolid)

	c := cfg.Platform.PlatformColor
	if spawn.Kind == assets.KindGround {
		c = cfg.Platform.GroundColor
	}
	components.Color.SetValue(platform, components.ColorData{Color: c})

	addToSpace(ecs, obj)
	return platform
}

// CreateStandardPlatforms builds the arena's ground and ledges. Every level
// uses the same layout.
func CreateStandardPlatforms(ecs *ecs.ECS, arena *assets.Arena) []*donburi.Entry {
	platforms := make([]*donburi.Entry, 0, len(arena.Platforms))
	for _, spawn := range arena.Platforms {
		platforms = append(platforms, CreatePlatform(ecs, spawn))
	}
	return platforms
}
