package app

import (
	"fmt"
	"time"

	"github.com/dshills/daygrid/internal/config"
	"github.com/dshills/daygrid/internal/geometry"
	"github.com/dshills/daygrid/internal/plugin/lua"
	"github.com/dshills/daygrid/internal/renderer/backend"
	"github.com/dshills/daygrid/internal/selection"
)

// HandleEvent processes one backend event.
// Returns ErrQuit if the application should exit.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		return app.handleMouseEvent(ev)
	case backend.EventResize:
		app.Logger().Debug("resize %dx%d", ev.Width, ev.Height)
		return nil
	case backend.EventInterrupt:
		if _, ok := ev.Data.(quitRequest); ok {
			return ErrQuit
		}
		return nil
	default:
		return nil
	}
}

// handleMouseEvent feeds translated pointer events to the bus.
func (app *Application) handleMouseEvent(ev backend.Event) error {
	for _, p := range app.pointer.translate(ev) {
		app.bus.Dispatch(p)
	}
	return nil
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyCtrlL:
		if app.backend != nil {
			app.backend.Clear()
		}
		return nil
	case backend.KeyRune:
	default:
		return nil
	}

	switch ev.Rune {
	case 'q':
		return ErrQuit
	case 'm':
		return app.cycleMode()
	case 'r':
		return app.toggleDirection()
	}
	return nil
}

// nextMode is the order the mode key cycles through.
var nextMode = map[selection.Mode]selection.Mode{
	selection.ModeEnabled:        selection.ModeIgnoreExcluded,
	selection.ModeIgnoreExcluded: selection.ModeDisabled,
	selection.ModeDisabled:       selection.ModeEnabled,
}

func (app *Application) cycleMode() error {
	engine := app.Engine()
	mode := nextMode[engine.Config().Mode]
	if err := engine.SetMode(mode); err != nil {
		return NewOperationError("set mode", mode.String(), err)
	}

	app.mu.Lock()
	app.cfg.Selection.Mode = mode.String()
	app.mu.Unlock()

	app.Logger().Info("selection mode %s", mode)
	app.setStatus("mode: " + mode.String())
	return nil
}

// toggleDirection rebuilds the engine with the row mirrored.
func (app *Application) toggleDirection() error {
	cfg := *app.Config()
	cfg.Row.RTL = !cfg.Row.RTL
	if err := app.configure(&cfg); err != nil {
		return NewOperationError("toggle", "direction", err)
	}
	app.setStatus("direction: " + directionName(cfg.Row.RTL))
	return nil
}

func directionName(rtl bool) string {
	if rtl {
		return "right to left"
	}
	return "left to right"
}

// callbacks wires engine notifications for one row and hook script.
func (app *Application) callbacks(row *rowView, hooks *lua.Hooks) selection.Callbacks {
	log := app.Logger().WithComponent("selection")

	return selection.Callbacks{
		OnSelectStart: func(box geometry.Box) {
			log.Debug("drag started at (%.1f, %.1f)", box.X, box.Y)
		},
		OnSelecting: func(s selection.State) {
			r := s.Range()
			if !r.IsValid() {
				app.setStatus("outside the row")
				return
			}
			app.setStatus(fmt.Sprintf("selecting %s", dayCount(r.Len())))
		},
		OnSelectEnd: func(s selection.State) {
			log.Debug("drag ended at cells %d..%d", s.StartIdx, s.EndIdx)
		},
		OnSelectSlot: func(slot selection.Slot) {
			first, last := row.dates(slot.Start, slot.End)
			msg := slotMessage(slot, first, last)

			if hooks != nil {
				custom, err := hooks.SelectSlot(lua.SlotEvent{
					Start:  slot.Start,
					End:    slot.End,
					Action: string(slot.Action),
					First:  first.Format(config.DateLayout),
					Last:   last.Format(config.DateLayout),
				})
				if err != nil {
					app.logComponentError("lua", err)
				} else if custom != "" {
					msg = custom
				}
			}

			log.WithField("action", slot.Action).Info("slot %d..%d (%s to %s)",
				slot.Start, slot.End, first.Format(config.DateLayout), last.Format(config.DateLayout))

			app.mu.Lock()
			app.lastSlot = &slot
			app.status = msg
			app.mu.Unlock()
		},
	}
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// slotMessage is the default status text for a finalized slot.
func slotMessage(slot selection.Slot, first, last time.Time) string {
	if slot.Action == selection.ActionClick || slot.Start == slot.End {
		return fmt.Sprintf("%s %s", slot.Action, first.Format("Mon 2006-01-02"))
	}
	return fmt.Sprintf("%s %s to %s (%s)", slot.Action,
		first.Format("Mon 2006-01-02"), last.Format("Mon 2006-01-02"),
		dayCount(slot.End-slot.Start+1))
}
