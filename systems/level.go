package systems

import (
	"time"

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

// Modal is an overlay that blocks play until dismissed. The dismiss
// callback runs once per show.
type Modal interface {
	Show()
	Hide()
	Visible() bool
	OnDismiss(fn func())
}

// LevelDriver owns the level lifecycle: set up, watch for death or victory,
// and move on once the player dismisses the modal.
type LevelDriver struct {
	ecs     *ecs.ECS
	session *components.SessionData
	timers  *timers.Queue
	arena   *assets.Arena

	player     *donburi.Entry
	controller *PlayerController
	hazards    *HazardOrchestrator

	deathModal   Modal
	victoryModal Modal
}

func NewLevelDriver(e *ecs.ECS, session *components.SessionData, queue *timers.Queue, arena *assets.Arena, deathModal, victoryModal Modal) *LevelDriver {
	d := &LevelDriver{
		ecs:          e,
		session:      session,
		timers:       queue,
		arena:        arena,
		deathModal:   deathModal,
		victoryModal: victoryModal,
	}

	d.player = factory.CreatePlayer(e, arena.PlayerSpawn)
	d.hazards = NewHazardOrchestrator(e, session, queue, arena)

	CollisionEvents.Subscribe(e.World, d.onCollision)
	deathModal.OnDismiss(d.NextLife)
	victoryModal.OnDismiss(d.Restart)
	return d
}

func (d *LevelDriver) Player() *donburi.Entry {
	return d.player
}

func (d *LevelDriver) Controller() *PlayerController {
	return d.controller
}

func (d *LevelDriver) Hazards() *HazardOrchestrator {
	return d.hazards
}

// SetupLevel resets the arena for session.Level and starts play.
func (d *LevelDriver) SetupLevel() {
	d.session.HasWon = false
	d.session.State = components.LevelConfigured
	d.session.Attempt++

	d.hazards.Cancel()
	d.removeLevelEntities()

	levelConfig, ok := cfg.Level(d.session.Level)
	if !ok {
		logging.L.Error("no configuration for level, restarting from level 1", "level", d.session.Level)
		d.session.Level = 1
		levelConfig, _ = cfg.Level(1)
	}

	logging.L.Info(levelConfig.ConsoleMessage)

	d.resetPlayer(levelConfig)
	d.controller = NewPlayerController(d.session, d.player, levelConfig.Ability)

	factory.CreateStandardPlatforms(d.ecs, d.arena)
	d.hazards.Start()
	factory.CreatePortal(d.ecs, d.arena.Portal)
}

func (d *LevelDriver) resetPlayer(levelConfig cfg.LevelConfiguration) {
	spawn := d.arena.PlayerSpawn.Center()
	components.Object.Get(d.player).SetCenter(spawn.X, spawn.Y)

	physics := components.Physics.Get(d.player)
	physics.Vel = components.Vector{}
	physics.Acc = components.Vector{Y: cfg.Player.Gravity}

	components.Color.Get(d.player).Color = levelConfig.PlayerColor
}

// removeLevelEntities drops everything spawned for the previous attempt.
// The player entity is kept and reset instead.
func (d *LevelDriver) removeLevelEntities() {
	var stale []*donburi.Entry
	tags.Transient.Each(d.ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e)
	})
	for _, e := range stale {
		factory.Destroy(d.ecs, e)
	}
}

// PlayerDeath ends the attempt and offers the next life. Only the first
// lethal contact of an attempt counts.
func (d *LevelDriver) PlayerDeath() {
	if d.session.State != components.LevelConfigured {
		return
	}

	d.hazards.Cancel()
	d.session.State = components.Dead
	components.Color.Get(d.player).Color = cfg.Player.DeathColor

	if levelConfig, ok := cfg.Level(d.session.Level); ok {
		d.session.UnlockMessage = levelConfig.UnlockMessage
	}
	d.session.Deaths++
	SaveSessionStats(d.session)

	logging.L.Info("You died! But you learned something...", "level", d.session.Level, "unlocked", d.session.UnlockMessage)
	d.deathModal.Show()
}

// GameVictory ends the run once the portal is reached.
func (d *LevelDriver) GameVictory() {
	if d.session.HasWon || d.session.State != components.LevelConfigured {
		return
	}

	d.session.HasWon = true
	d.session.State = components.Won
	d.hazards.Cancel()

	physics := components.Physics.Get(d.player)
	physics.Vel = components.Vector{}
	physics.Acc = components.Vector{}
	components.Color.Get(d.player).Color = cfg.Player.VictoryColor

	d.session.Victories++
	SaveSessionStats(d.session)

	logging.L.Info("VICTORY! You have mastered the roguelike platformer!", "level", d.session.Level)
	d.victoryModal.Show()
}

// NextLife runs when the death modal is dismissed: advance a level unless
// already on the last one, then set up again.
func (d *LevelDriver) NextLife() {
	if d.session.Level < cfg.LastLevel() {
		d.session.Level++
	}
	d.SetupLevel()
}

// Restart runs when the victory modal is dismissed.
func (d *LevelDriver) Restart() {
	logging.L.Info("Restarting game from Level 1!")
	d.session.Level = 1
	d.SetupLevel()
}

func (d *LevelDriver) onCollision(w donburi.World, evt CollisionEvent) {
	if d.controller != nil {
		d.controller.OnCollision(evt)
	}
	d.hazards.OnCollision(evt)

	if evt.Phase != PreCollision || evt.Self != d.player {
		return
	}
	logging.L.Debug("player contact", "other", evt.Other.Entity(), "normal", evt.Normal)

	if d.hazards.Lethal(evt.Self, evt.Other) {
		d.PlayerDeath()
		return
	}
	if evt.Other.HasComponent(tags.Portal) {
		components.Portal.Get(evt.Other).Reached = true
		d.GameVictory()
	}
}

// UpdateController is the system that drives the active PlayerController.
func (d *LevelDriver) UpdateController(e *ecs.ECS) {
	if d.controller == nil {
		return
	}
	d.controller.Update(getOrCreateInput(e))
}

// UpdateTimers advances the level clock by one tick.
func (d *LevelDriver) UpdateTimers(e *ecs.ECS) {
	d.timers.Advance(time.Second / time.Duration(cfg.C.TPS))
}

// WithSessionCheck wraps a system to skip execution unless a level is in play.
func WithSessionCheck(session *components.SessionData, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !session.Playing() {
			return
		}
		system(e)
	}
}
