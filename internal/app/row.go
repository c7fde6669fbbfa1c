package app

import (
	"math"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/daygrid/internal/config"
	"github.com/dshills/daygrid/internal/geometry"
	"github.com/dshills/daygrid/internal/renderer/backend"
)

// Screen placement of the row.
const (
	rowTop  = 2
	rowLeft = 1
)

// dayLabelLayout is the per-cell heading.
const dayLabelLayout = "Mon 02"

type day struct {
	date time.Time
	busy bool
}

// rowView lays the configured days out in terminal cells. It implements
// selection.Host: the region is measured from the current configuration
// on every call, and the item line of a busy day is the excluded area.
type rowView struct {
	days      []day
	cellWidth int
	height    int
	rtl       bool
	today     time.Time
}

func newRowView(cfg *config.Config, now time.Time) (*rowView, error) {
	start, err := cfg.Start(now)
	if err != nil {
		return nil, NewOperationError("layout", "row", err).WithContext("start date")
	}

	busy := cfg.BusyDays()
	days := make([]day, cfg.Row.Days)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = day{date: d, busy: busy[d.Format(config.DateLayout)]}
	}

	return &rowView{
		days:      days,
		cellWidth: cfg.Row.CellWidth,
		height:    cfg.Row.Height,
		rtl:       cfg.Row.RTL,
		today:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}, nil
}

// MeasureRegion returns the row bounds in terminal cell units.
func (r *rowView) MeasureRegion() geometry.Box {
	return geometry.Box{
		Top:    rowTop,
		Left:   rowLeft,
		Right:  float64(rowLeft + len(r.days)*r.cellWidth),
		Bottom: float64(rowTop + r.height),
	}
}

// HitTest reports whether p lies on the item line of a busy day.
func (r *rowView) HitTest(p geometry.Point) bool {
	if int(math.Floor(p.Y)) != r.itemLine() {
		return false
	}
	region := r.MeasureRegion()
	if p.X < region.Left || p.X >= region.Right {
		return false
	}
	idx := r.cellAt(p.X)
	return idx != geometry.NoCell && r.days[idx].busy
}

func (r *rowView) itemLine() int {
	return rowTop + 1
}

// statusLine is the screen line below the row.
func (r *rowView) statusLine() int {
	return rowTop + r.height + 1
}

func (r *rowView) cellAt(x float64) int {
	region := r.MeasureRegion()
	width := geometry.SlotWidth(region, len(r.days))
	return geometry.CellAtX(region, x, width, r.rtl, len(r.days))
}

// column returns the left screen column of cell idx.
func (r *rowView) column(idx int) int {
	v := idx
	if r.rtl {
		v = len(r.days) - 1 - idx
	}
	return rowLeft + v*r.cellWidth
}

// dates returns the dates of cells start and end.
func (r *rowView) dates(start, end int) (time.Time, time.Time) {
	return r.days[start].date, r.days[end].date
}

// draw renders the row. selected reports whether a cell is in the live
// drag range.
func (r *rowView) draw(b backend.Backend, selected func(int) bool) {
	border := backend.Style{Fg: backend.ColorGray, Bg: backend.ColorDefault}
	for idx, d := range r.days {
		x0 := r.column(idx)

		style := backend.DefaultStyle()
		if selected(idx) {
			style.Reverse = true
		}
		b.Fill(backend.Rect{
			Top:    rowTop,
			Left:   x0 + 1,
			Bottom: rowTop + r.height,
			Right:  x0 + r.cellWidth,
		}, backend.Cell{Rune: ' ', Style: style})

		for y := rowTop; y < rowTop+r.height; y++ {
			b.SetCell(x0, y, backend.Cell{Rune: '│', Style: border})
		}

		label := style
		label.Bold = d.date.Equal(r.today)
		drawText(b, x0+1, rowTop, r.cellWidth-1, d.date.Format(dayLabelLayout), label)

		if d.busy {
			item := style
			item.Fg = backend.ColorBlack
			item.Bg = backend.ColorYellow
			b.Fill(backend.Rect{
				Top:    r.itemLine(),
				Left:   x0 + 1,
				Bottom: r.itemLine() + 1,
				Right:  x0 + r.cellWidth,
			}, backend.Cell{Rune: ' ', Style: item})
			drawText(b, x0+1, r.itemLine(), r.cellWidth-1, "busy", item)
		}
	}

	right := rowLeft + len(r.days)*r.cellWidth
	for y := rowTop; y < rowTop+r.height; y++ {
		b.SetCell(right, y, backend.Cell{Rune: '│', Style: border})
	}
}

// drawText writes s starting at (x, y), truncated to width columns.
func drawText(b backend.Backend, x, y, width int, s string, style backend.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	for _, ch := range s {
		b.SetCell(x, y, backend.Cell{Rune: ch, Style: style})
		x += runewidth.RuneWidth(ch)
	}
}
