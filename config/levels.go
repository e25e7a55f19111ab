package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevels []byte

// AbilityTier is the set of movement abilities the player has on a level.
type AbilityTier int

const (
	AbilityNone AbilityTier = iota
	AbilityMovement
	AbilityMovementAndJump
)

var abilityNames = map[AbilityTier]string{
	AbilityNone:            "none",
	AbilityMovement:        "movement",
	AbilityMovementAndJump: "movement_and_jump",
}

func (a AbilityTier) String() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AbilityTier(%d)", int(a))
}

// CanMove reports whether horizontal input is honoured.
func (a AbilityTier) CanMove() bool {
	return a >= AbilityMovement
}

// CanJump reports whether jump input is honoured.
func (a AbilityTier) CanJump() bool {
	return a >= AbilityMovementAndJump
}

func (a *AbilityTier) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	for tier, name := range abilityNames {
		if strings.EqualFold(name, s) {
			*a = tier
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown ability %q", node.Line, s)
}

// LevelConfiguration describes one entry of the level progression table.
type LevelConfiguration struct {
	Number         int
	PlayerColor    color.RGBA
	Ability        AbilityTier
	ConsoleMessage string
	UnlockMessage  string
}

type levelEntry struct {
	Number  int         `yaml:"number"`
	Color   string      `yaml:"color"`
	Ability AbilityTier `yaml:"ability"`
	Console string      `yaml:"console"`
	Unlock  string      `yaml:"unlock"`
}

type levelFile struct {
	Levels []levelEntry `yaml:"levels"`
}

var levels []LevelConfiguration

func init() {
	table, err := ParseLevels(defaultLevels)
	if err != nil {
		panic("embedded level table: " + err.Error())
	}
	levels = table
}

// Level returns the configuration for level n. Levels outside the table
// report false.
func Level(n int) (LevelConfiguration, bool) {
	if n < 1 || n > len(levels) {
		return LevelConfiguration{}, false
	}
	return levels[n-1], true
}

// LastLevel is the highest level number in the table.
func LastLevel() int {
	return len(levels)
}

// SetLevels replaces the active level table.
func SetLevels(table []LevelConfiguration) {
	levels = table
}

// LoadLevels reads a level table from disk and makes it the active table.
// The active table is left untouched when the file is invalid.
func LoadLevels(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level table %s: %w", path, err)
	}
	table, err := ParseLevels(data)
	if err != nil {
		return fmt.Errorf("invalid level table %s: %w", path, err)
	}
	SetLevels(table)
	return nil
}

// ParseLevels decodes and validates a YAML level table.
func ParseLevels(data []byte) ([]LevelConfiguration, error) {
	var file levelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse level table: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("at least one level is required")
	}

	table := make([]LevelConfiguration, 0, len(file.Levels))
	for i, entry := range file.Levels {
		if entry.Number != i+1 {
			return nil, fmt.Errorf("level %d: expected number %d", entry.Number, i+1)
		}
		if i > 0 && entry.Ability < file.Levels[i-1].Ability {
			return nil, fmt.Errorf("level %d: ability %s is weaker than level %d", entry.Number, entry.Ability, i)
		}
		if entry.Console == "" {
			return nil, fmt.Errorf("level %d: console message is required", entry.Number)
		}
		if entry.Unlock == "" {
			return nil, fmt.Errorf("level %d: unlock message is required", entry.Number)
		}
		c, err := parseHexColor(entry.Color)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", entry.Number, err)
		}
		table = append(table, LevelConfiguration{
			Number:         entry.Number,
			PlayerColor:    c,
			Ability:        entry.Ability,
			ConsoleMessage: entry.Console,
			UnlockMessage:  entry.Unlock,
		})
	}
	return table, nil
}

// parseHexColor accepts #rrggbb.
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
