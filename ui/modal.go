package ui

import (
	"image/color"

	cfg "github.com/automoto/rogueratou/config"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ModalState is the show/hide/dismiss bookkeeping shared by every modal.
// The dismiss callback runs at most once per Show.
type ModalState struct {
	visible   bool
	onDismiss func()
}

func (m *ModalState) Show() {
	m.visible = true
}

func (m *ModalState) Hide() {
	m.visible = false
}

func (m *ModalState) Visible() bool {
	return m.visible
}

// OnDismiss registers the continuation run when the player dismisses the
// modal. Registering again replaces the previous callback.
func (m *ModalState) OnDismiss(fn func()) {
	m.onDismiss = fn
}

// Dismiss hides a visible modal and runs the continuation. It reports
// whether anything happened.
func (m *ModalState) Dismiss() bool {
	if !m.visible {
		return false
	}
	m.visible = false
	if m.onDismiss != nil {
		m.onDismiss()
	}
	return true
}

// Modal is a centered ebitenui panel over a fading overlay. Widgets are built
// on first use so a modal can be created before the game loop starts.
type Modal struct {
	ModalState

	build   func(m *Modal) *ebitenui.UI
	refresh func()

	ui    *ebitenui.UI
	fade  *gween.Tween
	alpha float32
}

func newModal(build func(m *Modal) *ebitenui.UI) *Modal {
	return &Modal{build: build}
}

// Show displays the modal and restarts the overlay fade.
func (m *Modal) Show() {
	m.ModalState.Show()
	m.alpha = 0
	m.fade = gween.New(0, cfg.Modal.OverlayAlpha, cfg.Modal.FadeDuration, ease.OutQuad)
	if m.refresh != nil {
		m.refresh()
	}
}

// Destroy releases the widgets. The modal rebuilds them if shown again.
func (m *Modal) Destroy() {
	m.Hide()
	m.ui = nil
	m.refresh = nil
}

// OverlayAlpha is the current opacity of the backdrop.
func (m *Modal) OverlayAlpha() float32 {
	return m.alpha
}

// Update advances the fade and feeds input to the widgets.
func (m *Modal) Update() {
	if !m.Visible() {
		return
	}
	if m.fade != nil {
		var done bool
		m.alpha, done = m.fade.Update(1 / float32(cfg.C.TPS))
		if done {
			m.fade = nil
		}
	}
	m.ensureBuilt()
	m.ui.Update()
}

func (m *Modal) Draw(screen *ebiten.Image) {
	if !m.Visible() {
		return
	}
	m.ensureBuilt()

	bounds := screen.Bounds()
	overlay := cfg.Modal.OverlayColor
	a := m.alpha
	overlay = color.RGBA{
		R: uint8(float32(overlay.R) * a),
		G: uint8(float32(overlay.G) * a),
		B: uint8(float32(overlay.B) * a),
		A: uint8(255 * a),
	}
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlay, false)
	m.ui.Draw(screen)
}

func (m *Modal) ensureBuilt() {
	if m.ui != nil {
		return
	}
	m.ui = m.build(m)
	if m.refresh != nil {
		m.refresh()
	}
}
