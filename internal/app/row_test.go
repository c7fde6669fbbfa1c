package app

import (
	"testing"

	"github.com/dshills/daygrid/internal/geometry"
	"github.com/dshills/daygrid/internal/renderer/backend"
)

func TestRowViewRegion(t *testing.T) {
	row, err := newRowView(testConfig(), fixedNow())
	if err != nil {
		t.Fatal(err)
	}

	got := row.MeasureRegion()
	want := geometry.Box{Top: 2, Left: 1, Right: 71, Bottom: 6}
	if got != want {
		t.Errorf("MeasureRegion() = %+v, want %+v", got, want)
	}
	if row.statusLine() != 7 {
		t.Errorf("statusLine() = %d, want 7", row.statusLine())
	}
}

func TestRowViewHitTest(t *testing.T) {
	row, _ := newRowView(testConfig(), fixedNow())

	tests := []struct {
		name string
		p    geometry.Point
		want bool
	}{
		{"busy item line", geometry.Point{X: 25.5, Y: 3.5}, true},
		{"busy label line", geometry.Point{X: 25.5, Y: 2.5}, false},
		{"free item line", geometry.Point{X: 15.5, Y: 3.5}, false},
		{"left of row", geometry.Point{X: 0.5, Y: 3.5}, false},
		{"right of row", geometry.Point{X: 75.5, Y: 3.5}, false},
	}
	for _, tt := range tests {
		if got := row.HitTest(tt.p); got != tt.want {
			t.Errorf("%s: HitTest(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRowViewRTLColumns(t *testing.T) {
	cfg := testConfig()
	cfg.Row.RTL = true
	row, _ := newRowView(cfg, fixedNow())

	if got := row.column(0); got != 61 {
		t.Errorf("column(0) = %d, want 61", got)
	}
	if got := row.column(6); got != 1 {
		t.Errorf("column(6) = %d, want 1", got)
	}
	// Day 2 is busy; under RTL it is drawn at columns 41..50.
	if !row.HitTest(geometry.Point{X: 45.5, Y: 3.5}) {
		t.Error("HitTest should follow the mirrored layout")
	}
}

func TestRowViewBadStartDate(t *testing.T) {
	cfg := testConfig()
	cfg.Row.StartDate = "01/01/2024"
	if _, err := newRowView(cfg, fixedNow()); err == nil {
		t.Error("newRowView() should reject a malformed start date")
	}
}

func TestDrawTextTruncates(t *testing.T) {
	b := backend.NewNullBackend(10, 1)
	_ = b.Init()

	drawText(b, 0, 0, 5, "Wednesday", backend.DefaultStyle())
	if got := b.Row(0); got != "Wedn…     " {
		t.Errorf("Row(0) = %q", got)
	}
}
