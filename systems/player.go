package systems

import (
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/yohamta/donburi"
)

// PlayerController applies the movement policy of one ability tier to the
// player. A new controller is installed every time a level is set up.
type PlayerController struct {
	session *components.SessionData
	player  *donburi.Entry
	ability cfg.AbilityTier
}

func NewPlayerController(session *components.SessionData, player *donburi.Entry, ability cfg.AbilityTier) *PlayerController {
	pc := &PlayerController{
		session: session,
		player:  player,
		ability: ability,
	}
	data := components.Player.Get(player)
	data.Ability = ability
	data.MaxJumps = cfg.Player.MaxJumps
	data.JumpsRemaining = data.MaxJumps
	return pc
}

func (pc *PlayerController) Ability() cfg.AbilityTier {
	return pc.ability
}

// Update runs once per tick before physics integration.
func (pc *PlayerController) Update(input *components.InputData) {
	if !pc.session.Playing() || !pc.player.Valid() {
		return
	}

	player := components.Player.Get(pc.player)
	physics := components.Physics.Get(pc.player)
	obj := components.Object.Get(pc.player)

	if pc.ability.CanMove() {
		handleMovementInput(GetAction(input, cfg.ActionMoveLeft), GetAction(input, cfg.ActionMoveRight), physics)
	} else {
		physics.Vel.X = 0
	}

	if pc.ability.CanJump() {
		handleJumpInput(GetAction(input, cfg.ActionJump), player, physics)
	}

	clampToScreen(obj, physics, player)
}

// OnCollision refills jump charges when the player is stopped by a surface.
// Normals point from the surface toward the player, so with the default
// threshold of 1 every blocking contact counts.
func (pc *PlayerController) OnCollision(evt CollisionEvent) {
	if evt.Phase != PostCollision || evt.Self != pc.player || !pc.ability.CanJump() {
		return
	}
	if evt.Normal.Y <= cfg.Player.JumpResetNormalY {
		player := components.Player.Get(pc.player)
		player.JumpsRemaining = player.MaxJumps
	}
}

func handleMovementInput(moveLeftAction, moveRightAction components.ActionState, physics *components.PhysicsData) {
	switch {
	case moveLeftAction.Pressed:
		physics.Vel.X = -cfg.Player.Speed
	case moveRightAction.Pressed:
		physics.Vel.X = cfg.Player.Speed
	default:
		physics.Vel.X = 0
	}
}

func handleJumpInput(jumpAction components.ActionState, player *components.PlayerData, physics *components.PhysicsData) {
	if jumpAction.JustPressed && player.JumpsRemaining > 0 {
		physics.Vel.Y = cfg.Player.JumpForce
		player.JumpsRemaining--
	}
}

// clampToScreen keeps the body inside the screen, zeroing the velocity of
// each clamped axis. Touching the bottom edge counts as landing.
func clampToScreen(obj *components.ObjectData, physics *components.PhysicsData, player *components.PlayerData) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	moved := false

	if obj.X < 0 {
		obj.X = 0
		physics.Vel.X = 0
		moved = true
	}
	if obj.X+obj.W > width {
		obj.X = width - obj.W
		physics.Vel.X = 0
		moved = true
	}
	if obj.Y < 0 {
		obj.Y = 0
		physics.Vel.Y = 0
		moved = true
	}
	if obj.Y+obj.H > height {
		obj.Y = height - obj.H
		physics.Vel.Y = 0
		player.JumpsRemaining = player.MaxJumps
		moved = true
	}

	if moved {
		obj.Update()
	}
}
