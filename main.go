// rogueratou is a three-level roguelike platformer. Every death unlocks a
// new movement skill and moves the player to the next level.
//
// Usage:
//
//	rogueratou                      - Start at the title screen
//	rogueratou --skip-menu          - Jump straight into level 1
//	rogueratou --levels levels.yaml --watch
//	                                - Use an external level table and reload it on save
package main

import (
	"fmt"
	"image"
	"io"
	"os"

	cfg "github.com/automoto/rogueratou/config"
	"github.com/automoto/rogueratou/fonts"
	"github.com/automoto/rogueratou/logging"
	"github.com/automoto/rogueratou/scenes"
	"github.com/automoto/rogueratou/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const appName = "rogueratou"

var (
	flagSkipMenu   bool
	flagStartLevel int
	flagLevels     string
	flagWatch      bool
	flagNoSave     bool
	flagDebug      bool
	flagDrawBoxes  bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, cfg.Debug.StartLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Close releases whatever the current scene holds open.
func (g *Game) Close() error {
	if c, ok := g.scene.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Rogue Ratou - a roguelike platformer",
	Long: `Rogue Ratou is a three-level platformer. You start unable to move;
each death unlocks a new skill and sends you to the next level.

Controls:
  Left/Right or A/D  - Move (from level 2)
  Space/Up           - Jump, twice in the air (from level 3)
  Enter              - Confirm menus and dialogs`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start playing without the title screen")
	rootCmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start on")
	rootCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level table overriding the built-in one")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --levels file when it changes")
	rootCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Don't read or write lifetime stats")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagDrawBoxes, "draw-boxes", false, "Outline collision boxes")
}

func run(cmd *cobra.Command, args []string) error {
	logging.Init(os.Stderr, flagDebug)

	if flagWatch && flagLevels == "" {
		return fmt.Errorf("--watch needs --levels")
	}
	if flagLevels != "" {
		if err := cfg.LoadLevels(flagLevels); err != nil {
			return fmt.Errorf("load level table: %w", err)
		}
	}
	if _, ok := cfg.Level(flagStartLevel); !ok {
		return fmt.Errorf("--start-level must be between 1 and %d", cfg.LastLevel())
	}

	cfg.Debug.SkipMenu = flagSkipMenu
	cfg.Debug.StartLevel = flagStartLevel
	cfg.Debug.LevelsPath = flagLevels
	cfg.Debug.WatchLevels = flagWatch
	cfg.Debug.NoSave = flagNoSave
	cfg.Debug.DrawBoxes = flagDrawBoxes

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	if !cfg.Debug.NoSave {
		// Stats are a nicety; play on without them
		_ = systems.InitPersistence(appName)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("Rogue Ratou")
	ebiten.SetTPS(cfg.C.TPS)

	logging.L.Info("starting", "level", cfg.Debug.StartLevel, "levels", cfg.LastLevel())
	game := NewGame()
	defer func() {
		if err := game.Close(); err != nil {
			logging.L.Warn("closing scene", "error", err)
		}
	}()
	return ebiten.RunGame(game)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
