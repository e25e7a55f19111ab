package systems

import (
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the menu system; selecting starts the game.
func NewUpdateMenu(onPlay func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			onPlay()
		}
	}
}

// DrawMenu renders the title screen text. The PLAY button is a widget drawn
// on top by the scene.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	centerX := width / 2
	drawCentered(screen, cfg.Menu.Title, fonts.MenuTitle.Get(), centerX, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.HUDTitle.Get(), centerX, cfg.Menu.SubtitleY, cfg.Menu.SubtitleColor)
	drawCentered(screen, cfg.Menu.Instructions, fonts.HUDSmall.Get(), centerX, cfg.Menu.InstructionY, cfg.Menu.InstructionColor)
	drawCentered(screen, cfg.Menu.Controls, fonts.HUDSmall.Get(), centerX, cfg.Menu.ControlsY, cfg.Menu.TextColor)
}
