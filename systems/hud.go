package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// LevelLabel is the heading shown above the arena.
func LevelLabel(session *components.SessionData) string {
	return fmt.Sprintf("Level %d", session.Level)
}

// AbilityHint describes what the player can do on the current level.
func AbilityHint(ability cfg.AbilityTier) string {
	switch ability {
	case cfg.AbilityMovement:
		return "Move: Arrows or A/D"
	case cfg.AbilityMovementAndJump:
		return "Move: Arrows or A/D   Jump (twice): Space or Up"
	}
	return "You cannot move"
}

// NewDrawHUD returns a renderer for the level label and ability hint.
func NewDrawHUD(session *components.SessionData) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		labelFont := fonts.HUDTitle.Get()
		label := LevelLabel(session)
		drawCentered(screen, label, labelFont, cfg.HUD.LabelX, cfg.HUD.LabelY, cfg.HUD.LabelColor)

		if levelConfig, ok := cfg.Level(session.Level); ok {
			hint := AbilityHint(levelConfig.Ability)
			drawCentered(screen, hint, fonts.HUDSmall.Get(), cfg.HUD.LabelX, cfg.HUD.LabelY+24, cfg.HUD.HintColor)
		}
	}
}

// drawCentered draws s with its baseline at y, centered on x.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, int(x)-bounds.Dx()/2, int(y), clr)
}
