package systems

import (
	"github.com/automoto/rogueratou/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionPhase tells handlers whether a contact is about to be resolved
// or already was.
type CollisionPhase int

const (
	PreCollision CollisionPhase = iota
	PostCollision
)

func (p CollisionPhase) String() string {
	if p == PreCollision {
		return "pre"
	}
	return "post"
}

// CollisionEvent is delivered once per side of every contact. Normal is the
// unit normal of Other's surface at the contact, pointing toward Self, in
// screen coordinates: a body landing on a floor gets Normal.Y == -1.
type CollisionEvent struct {
	Phase  CollisionPhase
	Self   *donburi.Entry
	Other  *donburi.Entry
	Normal components.Vector
}

var CollisionEvents = events.NewEventType[CollisionEvent]()

// publishContact notifies both sides of a contact and dispatches the events
// immediately, so handlers run inside the physics step that found it.
func publishContact(w donburi.World, phase CollisionPhase, self, other *donburi.Entry, normal components.Vector) {
	CollisionEvents.Publish(w, CollisionEvent{Phase: phase, Self: self, Other: other, Normal: normal})
	CollisionEvents.Publish(w, CollisionEvent{
		Phase:  phase,
		Self:   other,
		Other:  self,
		Normal: components.Vector{X: -normal.X, Y: -normal.Y},
	})
	CollisionEvents.ProcessEvents(w)
}

func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

// overlapsAt reports whether obj, shifted by (dx, dy), overlaps other with
// non-zero area. Touching edges do not count.
func overlapsAt(obj *resolv.Object, dx, dy float64, other *resolv.Object) bool {
	x, y := obj.X+dx, obj.Y+dy
	return x < other.X+other.W && other.X < x+obj.W &&
		y < other.Y+other.H && other.Y < y+obj.H
}

// contactDelta is how far obj can move along the given axis before touching
// other. Only the sign of dx or dy matters.
func contactDelta(obj, other *resolv.Object, dx, dy float64) float64 {
	switch {
	case dx > 0:
		return other.X - (obj.X + obj.W)
	case dx < 0:
		return other.X + other.W - obj.X
	case dy > 0:
		return other.Y - (obj.Y + obj.H)
	case dy < 0:
		return other.Y + other.H - obj.Y
	}
	return 0
}

// snapFlush places obj against the face of other it ran into while moving
// by (dx, dy).
func snapFlush(obj, other *resolv.Object, dx, dy float64) {
	switch {
	case dx > 0:
		obj.X = other.X - obj.W
	case dx < 0:
		obj.X = other.X + other.W
	case dy > 0:
		obj.Y = other.Y - obj.H
	case dy < 0:
		obj.Y = other.Y + other.H
	}
}

// surfaceNormal is the normal of the face that a body moving by (dx, dy)
// runs into.
func surfaceNormal(dx, dy float64) components.Vector {
	switch {
	case dx > 0:
		return components.Vector{X: -1}
	case dx < 0:
		return components.Vector{X: 1}
	case dy > 0:
		return components.Vector{Y: -1}
	case dy < 0:
		return components.Vector{Y: 1}
	}
	return components.Vector{}
}

// overlapNormal picks the axis of least penetration for two overlapping
// bodies and returns other's surface normal pointing toward obj.
func overlapNormal(obj, other *resolv.Object) components.Vector {
	left := obj.X + obj.W - other.X
	right := other.X + other.W - obj.X
	up := obj.Y + obj.H - other.Y
	down := other.Y + other.H - obj.Y

	best, normal := left, components.Vector{X: -1}
	if right < best {
		best, normal = right, components.Vector{X: 1}
	}
	if up < best {
		best, normal = up, components.Vector{Y: -1}
	}
	if down < best {
		normal = components.Vector{Y: 1}
	}
	return normal
}
