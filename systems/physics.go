package systems

import (
	"math"

	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/systems/factory"
	"github.com/automoto/rogueratou/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// arrowCullMargin is how far past the screen edge an arrow may fly before
// it is removed.
const arrowCullMargin = 100

// TickSeconds is the simulated time of one update.
func TickSeconds() float64 {
	return 1 / float64(cfg.C.TPS)
}

// UpdatePhysics integrates every moving body, resolves blocking contacts
// axis by axis, keeps the player on screen and reports sensor overlaps.
// Bodies move in a fixed order: player, rock, arrows.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := TickSeconds()

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Player, tags.Rock, tags.Arrow} {
		var bodies []*donburi.Entry
		tag.Each(ecs.World, func(e *donburi.Entry) {
			bodies = append(bodies, e)
		})
		for _, e := range bodies {
			if e.Valid() {
				stepBody(ecs.World, e, dt)
			}
		}
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		clampToScreen(components.Object.Get(e), components.Physics.Get(e), components.Player.Get(e))
		reportSensorOverlaps(ecs.World, e)
	})

	cullArrows(ecs)
}

func stepBody(w donburi.World, e *donburi.Entry, dt float64) {
	obj := components.Object.Get(e)
	ph := components.Physics.Get(e)

	ph.Vel.X += ph.Acc.X * dt
	ph.Vel.Y += ph.Acc.Y * dt

	moveAxis(w, e, obj.Object, ph, ph.Vel.X*dt, 0)
	if !e.Valid() {
		return
	}
	moveAxis(w, e, obj.Object, ph, 0, ph.Vel.Y*dt)
}

// moveAxis moves obj along one axis, stopping it flush against the nearest
// body it is not allowed to pass through.
func moveAxis(w donburi.World, e *donburi.Entry, obj *resolv.Object, ph *components.PhysicsData, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}

	var hit *resolv.Object
	var hitEntry *donburi.Entry
	if len(ph.Blocks) > 0 {
		hit, hitEntry = nearestBlocker(obj, dx, dy, ph.Blocks)
	}

	if hit == nil {
		obj.X += dx
		obj.Y += dy
		obj.Update()
		return
	}

	normal := surfaceNormal(dx, dy)
	publishContact(w, PreCollision, e, hitEntry, normal)
	if !e.Valid() {
		return
	}

	snapFlush(obj, hit, dx, dy)
	if dx != 0 {
		ph.Vel.X = 0
	} else {
		ph.Vel.Y = 0
	}
	obj.Update()

	if hitEntry.Valid() {
		publishContact(w, PostCollision, e, hitEntry, normal)
	}
}

// nearestBlocker finds the closest body with one of the given tags that obj
// would run into when moved by (dx, dy).
func nearestBlocker(obj *resolv.Object, dx, dy float64, blocks []string) (*resolv.Object, *donburi.Entry) {
	// resolv rounds the far edge of the checked area down a whole unit, so a
	// step that enters a blocker by less than that would miss its cells.
	check := obj.Check(padStep(dx), padStep(dy), blocks...)
	if check == nil {
		return nil, nil
	}

	var hit *resolv.Object
	var hitEntry *donburi.Entry
	best := math.Inf(1)
	for _, other := range check.Objects {
		// Bodies that already overlap do not block, so nothing gets stuck.
		if !overlapsAt(obj, dx, dy, other) || overlapsAt(obj, 0, 0, other) {
			continue
		}
		otherEntry, ok := entryOf(other)
		if !ok {
			continue
		}
		if d := math.Abs(contactDelta(obj, other, dx, dy)); d < best {
			best, hit, hitEntry = d, other, otherEntry
		}
	}
	return hit, hitEntry
}

// padStep widens a non-zero step by one unit in its own direction.
func padStep(d float64) float64 {
	if d == 0 {
		return 0
	}
	return d + math.Copysign(1, d)
}

// reportSensorOverlaps sends pre-collision events for bodies the player
// passes through: arrows and the portal.
func reportSensorOverlaps(w donburi.World, player *donburi.Entry) {
	obj := components.Object.Get(player)
	for _, other := range sensorCandidates(obj.Object, tags.ResolvArrow, tags.ResolvPortal) {
		if !player.Valid() {
			return
		}
		if !overlapsAt(obj.Object, 0, 0, other) {
			continue
		}
		otherEntry, ok := entryOf(other)
		if !ok {
			continue
		}
		publishContact(w, PreCollision, player, otherEntry, overlapNormal(obj.Object, other))
	}
}

// sensorCandidates returns the tagged bodies in every cell obj could touch.
// The area is grown a unit each way since a single resolv check drops the
// last partial unit on its far edges.
func sensorCandidates(obj *resolv.Object, sensorTags ...string) []*resolv.Object {
	var found []*resolv.Object
	seen := map[*resolv.Object]bool{}
	for _, pad := range []float64{-1, 1} {
		check := obj.Check(pad, pad, sensorTags...)
		if check == nil {
			continue
		}
		for _, other := range check.Objects {
			if !seen[other] {
				seen[other] = true
				found = append(found, other)
			}
		}
	}
	return found
}

func cullArrows(ecs *ecs.ECS) {
	var gone []*donburi.Entry
	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.X+obj.W < -arrowCullMargin || obj.X > float64(cfg.C.Width)+arrowCullMargin {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.Destroy(ecs, e)
	}
}
