package ui

import (
	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/ebitenui/ebitenui"
)

// NewDeathModal builds the "YOU DIED" modal. The unlocked skill is read from
// the session each time the modal is shown.
func NewDeathModal(session *components.SessionData) *Modal {
	return newModal(func(m *Modal) *ebitenui.UI {
		f := loadFaces()
		content := column()

		content.AddChild(centeredLabel(cfg.Modal.DeathTitle, &f.title, cfg.Modal.DeathTitleColor))
		content.AddChild(centeredLabel(cfg.Modal.DeathSubtitle, &f.small, cfg.White))
		skill := centeredLabel(session.UnlockMessage, &f.normal, cfg.Modal.DeathSkillColor)
		content.AddChild(skill)
		content.AddChild(actionButton(cfg.Modal.DeathButton, &f.normal, func() { m.Dismiss() }))

		m.refresh = func() {
			skill.Label = session.UnlockMessage
		}
		return panelUI(content)
	})
}
