package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rogueratou/assets"
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/logging"
	"github.com/automoto/rogueratou/systems"
	"github.com/automoto/rogueratou/systems/factory"
	"github.com/automoto/rogueratou/timers"
	"github.com/automoto/rogueratou/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the three-level game.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startLevel   int
	once         sync.Once

	session      *components.SessionData
	driver       *systems.LevelDriver
	deathModal   *ui.Modal
	victoryModal *ui.Modal
	watcher      *cfg.LevelWatcher
}

// NewPlatformerScene creates the level scene starting at the given level
func NewPlatformerScene(sc SceneChanger, startLevel int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, startLevel: startLevel}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.reloadLevels()
	ps.ecs.Update()
	ps.updateModals()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.deathModal.Draw(screen)
	ps.victoryModal.Draw(screen)
}

// Close stops the level file watcher, if one was started.
func (ps *PlatformerScene) Close() error {
	if ps.watcher == nil {
		return nil
	}
	err := ps.watcher.Close()
	ps.watcher = nil
	return err
}

// updateModals feeds the visible modal; Enter dismisses it like its button.
func (ps *PlatformerScene) updateModals() {
	confirm := systems.GetAction(systems.GetInput(ps.ecs), cfg.ActionMenuSelect).JustPressed
	for _, m := range []*ui.Modal{ps.deathModal, ps.victoryModal} {
		if !m.Visible() {
			continue
		}
		m.Update()
		if confirm {
			m.Dismiss()
			return
		}
	}
}

// reloadLevels picks up edits to the level table file. The new table takes
// effect the next time a level is set up.
func (ps *PlatformerScene) reloadLevels() {
	if ps.watcher == nil {
		return
	}
	changed, err := ps.watcher.Poll()
	if err != nil {
		logging.L.Warn("level watcher error", "error", err)
	}
	if !changed {
		return
	}
	if err := cfg.LoadLevels(cfg.Debug.LevelsPath); err != nil {
		logging.L.Warn("keeping previous level table", "error", err)
		return
	}
	logging.L.Info("level table reloaded", "path", cfg.Debug.LevelsPath, "levels", cfg.LastLevel())
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	ps.ecs = ecs

	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.C.CellSize, cfg.C.CellSize)
	arena := assets.MustLoadArena(cfg.C.ArenaMap)

	ps.session = components.NewSession(ps.startLevel)
	stats := systems.LoadStats()
	ps.session.Deaths = stats.Deaths
	ps.session.Victories = stats.Victories

	ps.deathModal = ui.NewDeathModal(ps.session)
	ps.victoryModal = ui.NewVictoryModal(ps.session)
	ps.driver = systems.NewLevelDriver(ecs, ps.session, timers.NewQueue(), arena, ps.deathModal, ps.victoryModal)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)

	// Gameplay systems stop while a modal is up
	ecs.AddSystem(systems.WithSessionCheck(ps.session, ps.driver.UpdateController))
	ecs.AddSystem(systems.WithSessionCheck(ps.session, systems.UpdatePhysics))

	ecs.AddSystem(ps.driver.UpdateTimers)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(ps.session))
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	if cfg.Debug.WatchLevels && cfg.Debug.LevelsPath != "" {
		w, err := cfg.WatchLevels(cfg.Debug.LevelsPath)
		if err != nil {
			logging.L.Warn("could not watch level table", "path", cfg.Debug.LevelsPath, "error", err)
		} else {
			ps.watcher = w
		}
	}

	ps.driver.SetupLevel()
}
