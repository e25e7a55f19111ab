package ui

import (
	"fmt"

	"github.com/automoto/rogueratou/components"
	cfg "github.com/automoto/rogueratou/config"
	"github.com/ebitenui/ebitenui"
)

// StatsLine summarizes the lifetime counters shown on the victory modal.
func StatsLine(session *components.SessionData) string {
	return fmt.Sprintf("Lifetime deaths: %d   Victories: %d", session.Deaths, session.Victories)
}

// NewVictoryModal builds the end-of-game modal.
func NewVictoryModal(session *components.SessionData) *Modal {
	return newModal(func(m *Modal) *ebitenui.UI {
		f := loadFaces()
		content := column()

		content.AddChild(centeredLabel(cfg.Modal.VictoryTitle, &f.title, cfg.Modal.VictoryTitleColor))
		for _, line := range cfg.Modal.VictoryLines {
			content.AddChild(centeredLabel(line, &f.small, cfg.White))
		}
		stats := centeredLabel(StatsLine(session), &f.small, cfg.Gray)
		content.AddChild(stats)
		content.AddChild(actionButton(cfg.Modal.VictoryButton, &f.normal, func() { m.Dismiss() }))

		m.refresh = func() {
			stats.Label = StatsLine(session)
		}
		return panelUI(content)
	})
}
