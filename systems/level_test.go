package systems

import (
	"testing"

	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/systems/factory"
	"github.com/automoto/rogueratou/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSetupLevelBuildsArena(t *testing.T) {
	lv := newTestLevel(t, 1)

	if lv.session.State != components.LevelConfigured || lv.session.Attempt != 1 {
		t.Fatalf("session = %+v, want configured first attempt", *lv.session)
	}
	if got := countTag(lv.ecs.World, tags.Platform); got != len(lv.arena.Platforms) {
		t.Errorf("platforms = %d, want %d", got, len(lv.arena.Platforms))
	}
	singles := []struct {
		name string
		tag  *donburi.ComponentType[donburi.Tag]
	}{
		{"player", tags.Player},
		{"rock", tags.Rock},
		{"portal", tags.Portal},
	}
	for _, s := range singles {
		if got := countTag(lv.ecs.World, s.tag); got != 1 {
			t.Errorf("%s count = %d, want 1", s.name, got)
		}
	}
	if got := countTag(lv.ecs.World, tags.Arrow); got != 0 {
		t.Errorf("arrows = %d, want 0", got)
	}

	level1, _ := cfg.Level(1)
	player := lv.driver.Player()
	if got := components.Color.Get(player).Color; got != level1.PlayerColor {
		t.Errorf("player color = %v, want %v", got, level1.PlayerColor)
	}
	if got := lv.driver.Controller().Ability(); got != cfg.AbilityNone {
		t.Errorf("ability = %v, want none", got)
	}
}

func TestSetupLevelReplacesTransientEntities(t *testing.T) {
	lv := newTestLevel(t, 2)
	factory.CreateArrow(lv.ecs, 100, 100, cfg.Arrow.Speed, 0)

	lv.driver.SetupLevel()

	if got := countTag(lv.ecs.World, tags.Arrow); got != 0 {
		t.Errorf("arrows after setup = %d, want 0", got)
	}
	if got := countTag(lv.ecs.World, tags.Rock); got != 1 {
		t.Errorf("rocks after setup = %d, want 1", got)
	}
	if got := countTag(lv.ecs.World, tags.Player); got != 1 {
		t.Errorf("players after setup = %d, want 1", got)
	}
	if lv.session.Attempt != 2 {
		t.Errorf("attempt = %d, want 2", lv.session.Attempt)
	}
}

func TestLevelOneRockKillsAndUnlocksMovement(t *testing.T) {
	lv := newTestLevel(t, 1)

	for i := 0; i < 300 && lv.session.Playing(); i++ {
		lv.tick()
	}

	if lv.session.State != components.Dead {
		t.Fatalf("state = %v, want Dead", lv.session.State)
	}
	if lv.death.shows != 1 || !lv.death.visible {
		t.Fatalf("death modal shows = %d visible = %v", lv.death.shows, lv.death.visible)
	}
	if want := "You can now move with ARROW KEYS!"; lv.session.UnlockMessage != want {
		t.Errorf("unlock message = %q, want %q", lv.session.UnlockMessage, want)
	}
	if lv.session.Deaths != 1 {
		t.Errorf("deaths = %d, want 1", lv.session.Deaths)
	}
	if got := components.Color.Get(lv.driver.Player()).Color; got != cfg.Player.DeathColor {
		t.Errorf("player color = %v, want death color", got)
	}

	lv.death.dismiss(t)

	if lv.session.Level != 2 || !lv.session.Playing() {
		t.Fatalf("after next life: level %d state %v", lv.session.Level, lv.session.State)
	}
	if got := lv.driver.Controller().Ability(); got != cfg.AbilityMovement {
		t.Errorf("ability = %v, want movement", got)
	}
	spawn := lv.arena.PlayerSpawn.Center()
	if got := components.Object.Get(lv.driver.Player()).Center(); got != spawn {
		t.Errorf("player center = %v, want spawn %v", got, spawn)
	}
	if got := countTag(lv.ecs.World, tags.Rock); got != 1 {
		t.Errorf("rocks = %d, want 1", got)
	}
}

func TestLevelTwoLaunchesFirstArrowWave(t *testing.T) {
	lv := newTestLevel(t, 2)

	lv.run(60)
	if got := countTag(lv.ecs.World, tags.Arrow); got != 0 {
		t.Fatalf("arrows before the start delay = %d, want 0", got)
	}

	lv.tick()
	arrows := entriesWith(lv.ecs.World, tags.Arrow)
	if len(arrows) != 2 {
		t.Fatalf("arrows after the start delay = %d, want 2", len(arrows))
	}
	for _, a := range arrows {
		if got := components.Object.Get(a).Center().Y; got != cfg.Arrow.Heights[0] {
			t.Errorf("arrow height = %v, want %v", got, cfg.Arrow.Heights[0])
		}
	}
}

func TestLevelTwoPlayerCanWalk(t *testing.T) {
	lv := newTestLevel(t, 2)
	startX := components.Object.Get(lv.driver.Player()).X

	GetInput(lv.ecs).Current[cfg.ActionMoveRight] = true
	lv.run(10)

	if got := components.Object.Get(lv.driver.Player()).X; got <= startX {
		t.Errorf("player x = %v, want right of %v", got, startX)
	}
}

func TestLevelTwoArrowKillsPlayerWhoDodgedTheRock(t *testing.T) {
	lv := newTestLevel(t, 2)
	input := GetInput(lv.ecs)

	// Step out from under the rock, then stand still on the ground.
	input.Current[cfg.ActionMoveRight] = true
	lv.run(40)
	input.Current[cfg.ActionMoveRight] = false

	ticks := 40
	for ; ticks < 600 && lv.session.Playing(); ticks++ {
		lv.tick()
	}

	if lv.session.State != components.Dead {
		t.Fatalf("state after %d ticks = %v, want Dead", ticks, lv.session.State)
	}
	if ticks <= cfg.C.TPS {
		t.Errorf("died on tick %d, before the first wave", ticks)
	}
	if !components.Rock.Get(lv.driver.Hazards().Rock()).Landed {
		t.Error("rock still falling when the player died")
	}
	if want := "You can now jump with SPACE!"; lv.session.UnlockMessage != want {
		t.Errorf("unlock message = %q, want %q", lv.session.UnlockMessage, want)
	}
	if lv.death.shows != 1 || lv.session.Deaths != 1 {
		t.Errorf("death shows = %d deaths = %d, want 1 and 1", lv.death.shows, lv.session.Deaths)
	}

	player := components.Object.Get(lv.driver.Player())
	if got := player.Y + player.H; got != 540 {
		t.Errorf("player bottom = %v, want standing on the ground at 540", got)
	}
	var hit bool
	for _, a := range entriesWith(lv.ecs.World, tags.Arrow) {
		arrow := components.Object.Get(a)
		if arrow.Center().Y == cfg.Arrow.Heights[0] && player.Overlaps(arrow.Object) {
			hit = true
		}
	}
	if !hit {
		t.Error("no first-wave arrow overlapping the player")
	}
}

func TestDeathOnLastLevelStaysThere(t *testing.T) {
	lv := newTestLevel(t, cfg.LastLevel())

	lv.driver.PlayerDeath()
	lv.death.dismiss(t)

	if lv.session.Level != cfg.LastLevel() {
		t.Errorf("level = %d, want %d", lv.session.Level, cfg.LastLevel())
	}
	if want := "You have mastered all abilities!"; lv.session.UnlockMessage != want {
		t.Errorf("unlock message = %q, want %q", lv.session.UnlockMessage, want)
	}
}

func TestSimultaneousHitsCountOneDeath(t *testing.T) {
	lv := newTestLevel(t, 2)
	center := components.Object.Get(lv.driver.Player()).Center()
	factory.CreateArrow(lv.ecs, center.X, center.Y, 0, 0)
	factory.CreateArrow(lv.ecs, center.X, center.Y, 0, 1)

	UpdatePhysics(lv.ecs)
	lv.driver.PlayerDeath()

	if lv.session.Deaths != 1 || lv.death.shows != 1 {
		t.Errorf("deaths = %d shows = %d, want 1 and 1", lv.session.Deaths, lv.death.shows)
	}
	if want := "You can now jump with SPACE!"; lv.session.UnlockMessage != want {
		t.Errorf("unlock message = %q, want %q", lv.session.UnlockMessage, want)
	}
	if got := lv.driver.Hazards().Pending(); got != 0 {
		t.Errorf("pending hazard timers = %d, want 0", got)
	}
}

func TestPortalWinsOnceAndRestarts(t *testing.T) {
	lv := newTestLevel(t, 3)
	portal := lv.arena.Portal.Center()
	components.Object.Get(lv.driver.Player()).SetCenter(portal.X, portal.Y)

	UpdatePhysics(lv.ecs)

	if lv.session.State != components.Won || !lv.session.HasWon {
		t.Fatalf("session = %+v, want won", *lv.session)
	}
	if lv.victory.shows != 1 || lv.session.Victories != 1 {
		t.Fatalf("victory shows = %d victories = %d", lv.victory.shows, lv.session.Victories)
	}
	physics := components.Physics.Get(lv.driver.Player())
	if physics.Vel != (components.Vector{}) || physics.Acc != (components.Vector{}) {
		t.Errorf("player still moving: %+v", *physics)
	}
	if got := components.Color.Get(lv.driver.Player()).Color; got != cfg.Player.VictoryColor {
		t.Errorf("player color = %v, want victory color", got)
	}

	lv.driver.GameVictory()
	lv.driver.PlayerDeath()
	if lv.victory.shows != 1 || lv.death.shows != 0 {
		t.Errorf("after repeat: victory shows = %d death shows = %d", lv.victory.shows, lv.death.shows)
	}

	lv.victory.dismiss(t)

	if lv.session.Level != 1 || lv.session.HasWon || !lv.session.Playing() {
		t.Errorf("after restart: %+v", *lv.session)
	}
}

func TestStaleWavesAfterRestart(t *testing.T) {
	lv := newTestLevel(t, 2)
	lv.run(61)
	if got := countTag(lv.ecs.World, tags.Arrow); got != 2 {
		t.Fatalf("arrows = %d, want 2", got)
	}

	lv.driver.Restart()
	lv.run(600)

	if got := countTag(lv.ecs.World, tags.Arrow); got != 0 {
		t.Errorf("arrows on level 1 = %d, want 0", got)
	}
}

func TestWithSessionCheck(t *testing.T) {
	session := components.NewSession(1)
	calls := 0
	system := WithSessionCheck(session, func(*ecs.ECS) { calls++ })

	system(nil)
	session.State = components.Dead
	system(nil)
	session.State = components.Won
	system(nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
