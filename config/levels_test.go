package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLevels(t *testing.T) {
	tests := []struct {
		level   int
		color   string
		ability AbilityTier
		console string
		unlock  string
	}{
		{1, "green", AbilityNone, "You can't move!", "You can now move with ARROW KEYS!"},
		{2, "blue", AbilityMovement, "Avoid the falling rock and the arrow!", "You can now jump with SPACE!"},
		{3, "purple", AbilityMovementAndJump, "You can move AND jump!", "You have mastered all abilities!"},
	}

	colors := map[string]struct{ r, g, b uint8 }{
		"green":  {0, 128, 0},
		"blue":   {0, 0, 255},
		"purple": {128, 0, 128},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			lc, ok := Level(tt.level)
			if !ok {
				t.Fatalf("Level(%d) not found", tt.level)
			}
			if lc.Number != tt.level {
				t.Errorf("Number = %d, want %d", lc.Number, tt.level)
			}
			want := colors[tt.color]
			if lc.PlayerColor.R != want.r || lc.PlayerColor.G != want.g || lc.PlayerColor.B != want.b || lc.PlayerColor.A != 255 {
				t.Errorf("PlayerColor = %v, want %s", lc.PlayerColor, tt.color)
			}
			if lc.Ability != tt.ability {
				t.Errorf("Ability = %v, want %v", lc.Ability, tt.ability)
			}
			if !strings.Contains(lc.ConsoleMessage, tt.console) {
				t.Errorf("ConsoleMessage = %q, want it to contain %q", lc.ConsoleMessage, tt.console)
			}
			if lc.UnlockMessage != tt.unlock {
				t.Errorf("UnlockMessage = %q, want %q", lc.UnlockMessage, tt.unlock)
			}
		})
	}

	if LastLevel() != 3 {
		t.Errorf("LastLevel() = %d, want 3", LastLevel())
	}
}

func TestLevelOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 4} {
		if _, ok := Level(n); ok {
			t.Errorf("Level(%d) reported ok", n)
		}
	}
}

func TestAbilityTier(t *testing.T) {
	tests := []struct {
		tier     AbilityTier
		move     bool
		jump     bool
		wantName string
	}{
		{AbilityNone, false, false, "none"},
		{AbilityMovement, true, false, "movement"},
		{AbilityMovementAndJump, true, true, "movement_and_jump"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tier.CanMove() != tt.move {
				t.Errorf("CanMove() = %v, want %v", tt.tier.CanMove(), tt.move)
			}
			if tt.tier.CanJump() != tt.jump {
				t.Errorf("CanJump() = %v, want %v", tt.tier.CanJump(), tt.jump)
			}
			if tt.tier.String() != tt.wantName {
				t.Errorf("String() = %q, want %q", tt.tier.String(), tt.wantName)
			}
		})
	}
}

func TestParseLevelsRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "levels: []"},
		{"bad yaml", "levels: [:"},
		{"unknown ability", `levels:
  - {number: 1, color: "#008000", ability: fly, console: a, unlock: b}`},
		{"gap in numbering", `levels:
  - {number: 2, color: "#008000", ability: none, console: a, unlock: b}`},
		{"ability regresses", `levels:
  - {number: 1, color: "#008000", ability: movement, console: a, unlock: b}
  - {number: 2, color: "#008000", ability: none, console: a, unlock: b}`},
		{"bad color", `levels:
  - {number: 1, color: green, ability: none, console: a, unlock: b}`},
		{"missing unlock", `levels:
  - {number: 1, color: "#008000", ability: none, console: a}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevels([]byte(tt.yaml)); err == nil {
				t.Error("ParseLevels() returned no error")
			}
		})
	}
}

func TestLoadLevels(t *testing.T) {
	original := levels
	t.Cleanup(func() { SetLevels(original) })

	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	data := `levels:
  - {number: 1, color: "#ff0000", ability: movement_and_jump, console: "go", unlock: "done"}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadLevels(path); err != nil {
		t.Fatalf("LoadLevels() error = %v", err)
	}
	if LastLevel() != 1 {
		t.Fatalf("LastLevel() = %d, want 1", LastLevel())
	}
	lc, _ := Level(1)
	if lc.Ability != AbilityMovementAndJump || lc.PlayerColor.R != 255 {
		t.Errorf("Level(1) = %+v", lc)
	}

	// An invalid file keeps the current table.
	if err := os.WriteFile(path, []byte("levels: []"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadLevels(path); err == nil {
		t.Fatal("LoadLevels() accepted an empty table")
	}
	if LastLevel() != 1 {
		t.Errorf("LastLevel() = %d after failed reload, want 1", LastLevel())
	}
}
