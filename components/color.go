package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ColorData struct {
	Color color.RGBA
}

var Color = donburi.NewComponentType[ColorData]()
