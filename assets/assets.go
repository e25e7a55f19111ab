package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/rogueratou/components"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ErrIncompleteArena is returned when a map lacks a required object group.
var ErrIncompleteArena = errors.New("incomplete arena")

// Rect is an axis-aligned box in screen space; X and Y are its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the box.
func (r Rect) Center() components.Vector {
	return components.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// PlatformKind separates the ground slab from floating ledges; they are
// drawn differently but collide the same.
type PlatformKind string

const (
	KindGround   PlatformKind = "ground"
	KindPlatform PlatformKind = "platform"
)

type PlatformSpawn struct {
	Rect
	Name string
	Kind PlatformKind
}

// Arena is the static layout shared by every level: solid geometry plus the
// spawn points of the player, the falling rock and the victory portal.
type Arena struct {
	Name        string
	Width       int
	Height      int
	Platforms   []PlatformSpawn
	PlayerSpawn Rect
	RockDrop    Rect
	Portal      Rect
}

// LoadArena reads a Tiled map from the embedded levels directory.
func LoadArena(path string) (*Arena, error) {
	return LoadArenaFS(assetFS, path)
}

// MustLoadArena is LoadArena for startup code where a broken embedded map
// is a programming error.
func MustLoadArena(path string) *Arena {
	arena, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return arena
}

// LoadArenaFS reads a Tiled map from fsys.
func LoadArenaFS(fsys fs.FS, path string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", path, err)
	}

	arena := &Arena{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	var hasPlayer, hasRock, hasPortal bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				kind := PlatformKind(o.Properties.GetString("kind"))
				if kind == "" {
					kind = KindPlatform
				}
				arena.Platforms = append(arena.Platforms, PlatformSpawn{
					Rect: objectRect(o),
					Name: o.Name,
					Kind: kind,
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				arena.PlayerSpawn = objectRect(og.Objects[0])
				hasPlayer = true
			}
		case "Rock":
			if len(og.Objects) > 0 {
				arena.RockDrop = objectRect(og.Objects[0])
				hasRock = true
			}
		case "Portal":
			if len(og.Objects) > 0 {
				arena.Portal = objectRect(og.Objects[0])
				hasPortal = true
			}
		}
	}

	if len(arena.Platforms) == 0 {
		return nil, fmt.Errorf("arena %s: no platforms defined: %w", path, ErrIncompleteArena)
	}
	if !hasPlayer {
		return nil, fmt.Errorf("arena %s: no player spawn defined: %w", path, ErrIncompleteArena)
	}
	if !hasRock {
		return nil, fmt.Errorf("arena %s: no rock drop point defined: %w", path, ErrIncompleteArena)
	}
	if !hasPortal {
		return nil, fmt.Errorf("arena %s: no portal defined: %w", path, ErrIncompleteArena)
	}
	return arena, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}
