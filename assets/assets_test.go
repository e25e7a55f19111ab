package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/rogueratou/components"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena("levels/arena.tmx")
	if err != nil {
		t.Fatalf("LoadArena() error = %v", err)
	}

	if arena.Width != 800 || arena.Height != 600 {
		t.Errorf("arena size = %dx%d, want 800x600", arena.Width, arena.Height)
	}

	wantPlatforms := []struct {
		kind   PlatformKind
		center components.Vector
		w, h   float64
	}{
		{KindGround, components.Vector{X: 400, Y: 570}, 800, 60},
		{KindPlatform, components.Vector{X: 200, Y: 400}, 200, 20},
		{KindPlatform, components.Vector{X: 580, Y: 300}, 200, 20},
	}
	if len(arena.Platforms) != len(wantPlatforms) {
		t.Fatalf("got %d platforms, want %d", len(arena.Platforms), len(wantPlatforms))
	}
	for i, want := range wantPlatforms {
		got := arena.Platforms[i]
		if got.Kind != want.kind || got.Center() != want.center || got.Width != want.w || got.Height != want.h {
			t.Errorf("platform %d = %+v center %+v, want %+v", i, got, got.Center(), want)
		}
	}

	spawns := []struct {
		name   string
		rect   Rect
		center components.Vector
		w, h   float64
	}{
		{"player", arena.PlayerSpawn, components.Vector{X: 400, Y: 520}, 32, 32},
		{"rock", arena.RockDrop, components.Vector{X: 400, Y: -50}, 40, 40},
		{"portal", arena.Portal, components.Vector{X: 750, Y: 140}, 60, 80},
	}
	for _, tt := range spawns {
		t.Run(tt.name, func(t *testing.T) {
			if tt.rect.Center() != tt.center {
				t.Errorf("center = %+v, want %+v", tt.rect.Center(), tt.center)
			}
			if tt.rect.Width != tt.w || tt.rect.Height != tt.h {
				t.Errorf("size = %vx%v, want %vx%v", tt.rect.Width, tt.rect.Height, tt.w, tt.h)
			}
		})
	}
}

func TestLoadArenaMissingPortal(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="20" tileheight="20" infinite="0">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="540" width="800" height="60"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="384" y="504" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="3" name="Rock">
  <object id="3" x="380" y="-70" width="40" height="40"/>
 </objectgroup>
</map>
`)},
	}

	_, err := LoadArenaFS(fsys, "broken.tmx")
	if !errors.Is(err, ErrIncompleteArena) {
		t.Fatalf("LoadArenaFS() error = %v, want ErrIncompleteArena", err)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena("levels/nope.tmx"); err == nil {
		t.Fatal("LoadArena() on a missing file returned no error")
	}
}
