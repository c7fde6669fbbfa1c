package app

import (
	"fmt"

	"github.com/dshills/daygrid/internal/config"
	"github.com/dshills/daygrid/internal/renderer/backend"
)

const helpText = "drag to select, click a day, m mode, r direction, q quit"

// render draws the whole screen.
func (app *Application) render() {
	if app.backend == nil {
		return
	}

	app.mu.RLock()
	row, engine, cfg, status := app.row, app.engine, app.cfg, app.status
	app.mu.RUnlock()

	b := app.backend
	width, _ := b.Size()
	b.Clear()

	first, last := row.dates(0, len(row.days)-1)
	title := fmt.Sprintf("daygrid  %s to %s  mode: %s  %s",
		first.Format(config.DateLayout), last.Format(config.DateLayout),
		engine.Config().Mode, directionName(cfg.Row.RTL))
	bold := backend.DefaultStyle()
	bold.Bold = true
	drawText(b, 0, 0, width, title, bold)

	row.draw(b, engine.IsCellSelected)

	drawText(b, 0, row.statusLine(), width, status, backend.DefaultStyle())
	dim := backend.DefaultStyle()
	dim.Dim = true
	drawText(b, 0, row.statusLine()+1, width, helpText, dim)

	b.Show()
}
