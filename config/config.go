package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order is the renderer registration order.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (units per second)
	Speed     float64
	JumpForce float64
	MaxJumps  int

	// Physics
	Gravity float64

	// JumpResetNormalY is the largest contact normal Y that refills jump charges.
	// Normals point from the touched surface toward the player, so -1 is a floor.
	JumpResetNormalY float64

	// Colors used for death/victory feedback
	DeathColor   color.RGBA
	VictoryColor color.RGBA
}

// RockConfig contains the falling hazard configuration
type RockConfig struct {
	FallSpeed   float64
	LandNormalY float64 // landing when contact normal Y is below this
	KillMargin  float64 // rock must be this far above the player to be lethal
	Color       color.RGBA
	LandedColor color.RGBA
}

// ArrowConfig contains the projectile wave configuration
type ArrowConfig struct {
	Width       float64
	Height      float64
	Speed       float64
	LeftStartX  float64 // center
	RightStartX float64 // center
	Color       color.RGBA

	// StartDelay is measured from rock spawn to the first wave.
	StartDelay time.Duration
	// WaveOffsets are measured from the first wave; index 0 fires immediately.
	WaveOffsets []time.Duration
	// Heights is indexed by wave number; later waves reuse the last entry.
	Heights []float64
	// MinLevel is the first level that launches waves.
	MinLevel int
}

// PortalConfig contains the victory portal configuration
type PortalConfig struct {
	Color color.RGBA
}

// PlatformConfig holds colors for the static geometry
type PlatformConfig struct {
	GroundColor   color.RGBA
	PlatformColor color.RGBA
}

// HUDConfig contains the level label configuration
type HUDConfig struct {
	LabelX     float64 // center
	LabelY     float64
	LabelColor color.RGBA
	HintColor  color.RGBA
}

// ModalConfig contains death/victory overlay configuration
type ModalConfig struct {
	OverlayColor  color.RGBA
	OverlayAlpha  float32 // final overlay opacity after the fade
	FadeDuration  float32 // seconds
	PanelColor    color.RGBA
	PanelWidth    int
	PanelHeight   int
	ButtonColor   color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonWidth   int
	ButtonHeight  int

	DeathTitle      string
	DeathTitleColor color.RGBA
	DeathSubtitle   string
	DeathSkillColor color.RGBA
	DeathButton     string

	VictoryTitle      string
	VictoryTitleColor color.RGBA
	VictoryLines      []string
	VictoryButton     string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor  color.RGBA
	TitleColor       color.RGBA
	SubtitleColor    color.RGBA
	InstructionColor color.RGBA
	TextColor        color.RGBA
	Title            string
	Subtitle         string
	Instructions     string
	Controls         string
	PlayLabel        string
	TitleY           float64
	SubtitleY        float64
	InstructionY     float64
	ControlsY        float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	// Collision space cell size
	CellSize int

	// ArenaMap is the embedded Tiled map that lays out the static geometry.
	ArenaMap string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	StartLevel int  // Level to start the first run at
	DrawBoxes  bool // Outline collision boxes
	NoSave     bool // Don't read or write lifetime stats

	LevelsPath  string // Level table file overriding the embedded one
	WatchLevels bool   // Reload LevelsPath when it changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Rock RockConfig
var Arrow ArrowConfig
var Portal PortalConfig
var Platform PlatformConfig
var HUD HUDConfig
var Modal ModalConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Brown        = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	DarkRed      = color.RGBA{R: 120, G: 20, B: 20, A: 255}
	Charcoal     = color.RGBA{R: 42, G: 42, B: 42, A: 255}
	NearBlack    = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:    800,
		Height:   600,
		TPS:      60,
		CellSize: 20,
		ArenaMap: "levels/arena.tmx",
	}

	// Player Config
	Player = PlayerConfig{
		Speed:            150,
		JumpForce:        -300,
		MaxJumps:         2,
		Gravity:          800,
		JumpResetNormalY: 1,
		DeathColor:       Red,
		VictoryColor:     Yellow,
	}

	// Rock Config
	Rock = RockConfig{
		FallSpeed:   200,
		LandNormalY: -0.5,
		KillMargin:  10,
		Color:       Red,
		LandedColor: DarkRed,
	}

	// Arrow Config
	Arrow = ArrowConfig{
		Width:       30,
		Height:      8,
		Speed:       150,
		LeftStartX:  -50,
		RightStartX: 850,
		Color:       Yellow,
		StartDelay:  1000 * time.Millisecond,
		WaveOffsets: []time.Duration{
			0,
			1500 * time.Millisecond,
			3000 * time.Millisecond,
			4500 * time.Millisecond,
		},
		// Ground level, first platform, just above it, near the second platform
		Heights:  []float64{520, 400, 350, 320},
		MinLevel: 2,
	}

	// Portal Config
	Portal = PortalConfig{
		Color: Blue,
	}

	Platform = PlatformConfig{
		GroundColor:   Gray,
		PlatformColor: Brown,
	}

	HUD = HUDConfig{
		LabelX:     400,
		LabelY:     50,
		LabelColor: White,
		HintColor:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}

	// Modal Config
	Modal = ModalConfig{
		OverlayColor:  BlackOverlay,
		OverlayAlpha:  0.8,
		FadeDuration:  0.25,
		PanelColor:    Charcoal,
		PanelWidth:    500,
		PanelHeight:   300,
		ButtonColor:   Green,
		ButtonHover:   LightGreen,
		ButtonPressed: color.RGBA{R: 0, G: 96, B: 0, A: 255},
		ButtonWidth:   200,
		ButtonHeight:  50,

		DeathTitle:      "YOU DIED",
		DeathTitleColor: Red,
		DeathSubtitle:   "BUT you unlocked a new skill in the after life:",
		DeathSkillColor: LightGreen,
		DeathButton:     "Next Life",

		VictoryTitle:      "VICTORY!",
		VictoryTitleColor: Yellow,
		VictoryLines: []string{
			"You have mastered the roguelike platformer!",
			"Death taught you movement, jumping, and survival!",
		},
		VictoryButton: "Play Again",
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:  NearBlack,
		TitleColor:       White,
		SubtitleColor:    Gray,
		InstructionColor: Yellow,
		TextColor:        White,
		Title:            "ROGUE RATOU",
		Subtitle:         "A Roguelike Platformer",
		Instructions:     "Learn through death. Each death unlocks new abilities.",
		Controls:         "Arrows/A/D: move   Space/Up: jump   Enter: continue",
		PlayLabel:        "PLAY",
		TitleY:           150,
		SubtitleY:        200,
		InstructionY:     250,
		ControlsY:        520,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:   false,
		StartLevel: 1,
	}
}
