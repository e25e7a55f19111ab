package ui

import (
	cfg "github.com/automoto/rogueratou/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainMenu is the PLAY button of the title screen.
type MainMenu struct {
	UI     *ebitenui.UI
	OnPlay func()
}

// NewMainMenu creates the title screen widgets.
func NewMainMenu(onPlay func()) *MainMenu {
	mm := &MainMenu{OnPlay: onPlay}
	f := loadFaces()

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	play := actionButton(cfg.Menu.PlayLabel, &f.normal, func() { mm.OnPlay() })
	play.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	root.AddChild(play)

	mm.UI = &ebitenui.UI{Container: root}
	return mm
}

func (mm *MainMenu) Update() {
	mm.UI.Update()
}

func (mm *MainMenu) Draw(screen *ebiten.Image) {
	mm.UI.Draw(screen)
}
