package systems

import (
	"github.com/automoto/rogueratou/assets"
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/logging"
	"github.com/automoto/rogueratou/systems/factory"
	"github.com/automoto/rogueratou/tags"
	"github.com/automoto/rogueratou/timers"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HazardOrchestrator spawns the falling rock every level and, from
// cfg.Arrow.MinLevel on, the timed arrow waves that follow it.
type HazardOrchestrator struct {
	ecs     *ecs.ECS
	session *components.SessionData
	timers  *timers.Queue
	arena   *assets.Arena

	rock    *donburi.Entry
	attempt int

	startTimer timers.Handle
	waveTimers []timers.Handle
}

func NewHazardOrchestrator(e *ecs.ECS, session *components.SessionData, queue *timers.Queue, arena *assets.Arena) *HazardOrchestrator {
	return &HazardOrchestrator{
		ecs:     e,
		session: session,
		timers:  queue,
		arena:   arena,
	}
}

// Rock returns the current attempt's rock, or nil before Start.
func (h *HazardOrchestrator) Rock() *donburi.Entry {
	return h.rock
}

// Start spawns the rock and, on arrow levels, schedules the first wave.
func (h *HazardOrchestrator) Start() {
	h.attempt = h.session.Attempt
	h.rock = factory.CreateRock(h.ecs, h.arena.RockDrop)

	if h.session.Level >= cfg.Arrow.MinLevel && h.startTimer == 0 {
		attempt := h.attempt
		h.startTimer = h.timers.Schedule(cfg.Arrow.StartDelay, func() {
			h.startTimer = 0
			if h.stale(attempt) {
				return
			}
			h.scheduleWaves(attempt)
		})
	}
}

// Cancel drops every pending hazard timer. Safe to call repeatedly.
func (h *HazardOrchestrator) Cancel() {
	if h.startTimer != 0 {
		h.timers.Cancel(h.startTimer)
		h.startTimer = 0
	}
	for _, handle := range h.waveTimers {
		h.timers.Cancel(handle)
	}
	h.waveTimers = h.waveTimers[:0]
}

// Pending reports how many hazard timers are still waiting.
func (h *HazardOrchestrator) Pending() int {
	n := len(h.waveTimers)
	if h.startTimer != 0 {
		n++
	}
	return n
}

func (h *HazardOrchestrator) scheduleWaves(attempt int) {
	for i, offset := range cfg.Arrow.WaveOffsets {
		wave := i
		var handle timers.Handle
		handle = h.timers.Schedule(offset, func() {
			h.forgetWave(handle)
			h.launchWave(wave, attempt)
		})
		h.waveTimers = append(h.waveTimers, handle)
	}
}

func (h *HazardOrchestrator) forgetWave(handle timers.Handle) {
	for i, pending := range h.waveTimers {
		if pending == handle {
			h.waveTimers = append(h.waveTimers[:i], h.waveTimers[i+1:]...)
			return
		}
	}
}

// stale reports whether a callback scheduled during attempt no longer
// applies: the level dropped below the arrow levels or was set up again.
func (h *HazardOrchestrator) stale(attempt int) bool {
	return h.session.Level < cfg.Arrow.MinLevel || h.session.Attempt != attempt
}

func (h *HazardOrchestrator) launchWave(wave, attempt int) {
	if h.stale(attempt) {
		logging.L.Debug("skipping stale arrow wave", "wave", wave+1, "attempt", attempt)
		return
	}

	y := WaveHeight(wave)
	factory.CreateArrow(h.ecs, cfg.Arrow.LeftStartX, y, cfg.Arrow.Speed, wave)
	factory.CreateArrow(h.ecs, cfg.Arrow.RightStartX, y, -cfg.Arrow.Speed, wave)
	logging.L.Info("arrow wave launched", "wave", wave+1, "height", y)
}

// WaveHeight is the center height of a wave's arrows. Waves past the end of
// the table reuse its last entry.
func WaveHeight(wave int) float64 {
	heights := cfg.Arrow.Heights
	if wave < 0 {
		wave = 0
	}
	if wave >= len(heights) {
		wave = len(heights) - 1
	}
	return heights[wave]
}

// Lethal reports whether touching other kills the player. Arrows always
// kill; the rock kills only while falling onto the player from above.
func (h *HazardOrchestrator) Lethal(player, other *donburi.Entry) bool {
	switch {
	case other.HasComponent(tags.Arrow):
		return true
	case other.HasComponent(tags.Rock):
		rock := components.Object.Get(other).Center()
		body := components.Object.Get(player).Center()
		above := rock.Y < body.Y-cfg.Rock.KillMargin
		falling := components.Physics.Get(other).Vel.Y > 0
		return above && falling
	}
	return false
}

// OnCollision keeps the player from pushing the rock around and freezes the
// rock once it lands on anything.
func (h *HazardOrchestrator) OnCollision(evt CollisionEvent) {
	if !evt.Self.HasComponent(tags.Rock) {
		return
	}
	rock := components.Rock.Get(evt.Self)
	physics := components.Physics.Get(evt.Self)
	touchingPlayer := evt.Other.HasComponent(tags.Player)

	switch evt.Phase {
	case PreCollision:
		if touchingPlayer {
			rock.IntendedVel = physics.Vel
		}
	case PostCollision:
		if touchingPlayer {
			physics.Vel = rock.IntendedVel
		}
		if evt.Normal.Y < cfg.Rock.LandNormalY {
			if !rock.Landed {
				logging.L.Debug("rock landed", "x", components.Object.Get(evt.Self).X)
			}
			physics.Vel = components.Vector{}
			physics.Acc = components.Vector{}
			rock.IntendedVel = components.Vector{}
			rock.Landed = true
			components.Color.Get(evt.Self).Color = cfg.Rock.LandedColor
		}
	}
}
