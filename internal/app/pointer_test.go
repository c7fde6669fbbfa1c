package app

import (
	"testing"
	"time"

	"github.com/dshills/daygrid/internal/event"
	"github.com/dshills/daygrid/internal/geometry"
	"github.com/dshills/daygrid/internal/renderer/backend"
)

func kinds(evs []event.Pointer) []event.Kind {
	out := make([]event.Kind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func TestPointerTranslator(t *testing.T) {
	tr := newPointerTranslator(fixedNow)

	steps := []struct {
		ev   backend.Event
		want []event.Kind
	}{
		{release(1, 1), nil},
		{press(1, 1), []event.Kind{event.KindPointerDown}},
		{press(1, 1), nil},
		{press(2, 1), []event.Kind{event.KindPointerMove}},
		{backend.Event{Type: backend.EventMouse, MouseX: 3, MouseY: 1, MouseButton: backend.MouseRight}, nil},
		{release(2, 1), []event.Kind{event.KindPointerUp, event.KindClick}},
		{release(2, 1), nil},
	}

	for i, s := range steps {
		got := kinds(tr.translate(s.ev))
		if len(got) != len(s.want) {
			t.Fatalf("step %d: kinds = %v, want %v", i, got, s.want)
		}
		for j := range got {
			if got[j] != s.want[j] {
				t.Errorf("step %d: kinds = %v, want %v", i, got, s.want)
			}
		}
	}
}

func TestPointerTranslatorCoordinates(t *testing.T) {
	tr := newPointerTranslator(fixedNow)

	evs := tr.translate(press(4, 7))
	if len(evs) != 1 {
		t.Fatalf("got %d events", len(evs))
	}
	want := geometry.Point{X: 4.5, Y: 7.5}
	if evs[0].Point != want {
		t.Errorf("Point = %+v, want %+v", evs[0].Point, want)
	}
	if !evs[0].Timestamp.Equal(fixedNow()) {
		t.Errorf("Timestamp = %v", evs[0].Timestamp)
	}
}

func TestPointerTranslatorReset(t *testing.T) {
	tr := newPointerTranslator(time.Now)

	tr.translate(press(1, 1))
	tr.reset()

	if got := kinds(tr.translate(press(1, 1))); len(got) != 1 || got[0] != event.KindPointerDown {
		t.Errorf("after reset kinds = %v, want [pointer.down]", got)
	}
}
