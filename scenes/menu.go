package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/systems"
	"github.com/automoto/rogueratou/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menu         *ui.MainMenu
	once         sync.Once
	started      bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if !ms.started {
		ms.menu.Update()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menu.Draw(screen)
}

func (ms *MenuScene) play() {
	if ms.started {
		return
	}
	ms.started = true
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, cfg.Debug.StartLevel))
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.menu = ui.NewMainMenu(ms.play)

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.play))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
