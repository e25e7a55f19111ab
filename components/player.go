package components

import (
	cfg "github.com/automoto/rogueratou/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Ability        cfg.AbilityTier
	JumpsRemaining int
	MaxJumps       int
}

var Player = donburi.NewComponentType[PlayerData]()
