package systems

import (
	"github.com/automoto/rogueratou/archetypes"
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeyState reports whether a key is held. Swapped out by tests.
var KeyState = ebiten.IsKeyPressed

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE the player controller in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	PollInput(input, KeyState)
}

// PollInput swaps the frame buffers and samples every binding.
func PollInput(input *components.InputData, pressed func(ebiten.Key) bool) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if pressed(key) {
				input.Current[actionID] = true
				break
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetInput returns the shared input buffer, creating it on first use.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
