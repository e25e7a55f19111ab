package systems

import (
	"github.com/automoto/rogueratou/components"
	"github.com/automoto/rogueratou/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// drawOrder lists body kinds back to front.
var drawOrder = []*donburi.ComponentType[donburi.Tag]{
	tags.Platform,
	tags.Portal,
	tags.Rock,
	tags.Arrow,
	tags.Player,
}

// DrawBodies renders every body as a filled rectangle in its color.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	for _, tag := range drawOrder {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			if !e.HasComponent(components.Color) {
				return
			}
			o := components.Object.Get(e)
			c := components.Color.Get(e).Color
			vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
		})
	}
}
