package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/rogueratou/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

var loadedFaces *faces

func loadFaces() *faces {
	if loadedFaces != nil {
		return loadedFaces
	}
	// Load fonts using go fonts
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	loadedFaces = &faces{
		title:  &text.GoTextFace{Source: fontSource, Size: 36},
		normal: &text.GoTextFace{Source: fontSource, Size: 18},
		small:  &text.GoTextFace{Source: fontSource, Size: 14},
	}
	return loadedFaces
}

// panelUI wraps content in a centered panel on a transparent root.
func panelUI(content *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Modal.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(24)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Modal.PanelWidth, cfg.Modal.PanelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	content.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	panel.AddChild(content)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func column() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
		)),
	)
}

func centeredLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
		),
	)
}

func actionButton(label string, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Modal.ButtonWidth, cfg.Modal.ButtonHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.Black,
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Modal.ButtonColor),
		Hover:    image.NewNineSliceColor(cfg.Modal.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Modal.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Gray),
	}
}
