package event

import (
	"errors"
	"testing"

	"github.com/dshills/daygrid/internal/geometry"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNone, "none"},
		{KindPointerDown, "pointer.down"},
		{KindPointerMove, "pointer.move"},
		{KindPointerUp, "pointer.up"},
		{KindClick, "pointer.click"},
		{Kind(42), "none"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPriorityString(t *testing.T) {
	if PriorityCritical.String() != "critical" || PriorityNormal.String() != "normal" || PriorityLow.String() != "low" {
		t.Error("unexpected priority names")
	}
}

func TestBus_SubscribeErrors(t *testing.T) {
	bus := NewBus()

	if _, err := bus.Subscribe(KindPointerDown, nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("Subscribe(nil) error = %v, want ErrNilHandler", err)
	}
	if _, err := bus.Subscribe(KindNone, func(Pointer) {}); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Subscribe(KindNone) error = %v, want ErrInvalidKind", err)
	}
	if err := bus.Unsubscribe(KindPointerDown, "missing"); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("Unsubscribe(missing) error = %v, want ErrSubscriptionNotFound", err)
	}
}

func TestBus_DispatchByKind(t *testing.T) {
	bus := NewBus()

	var downs, ups []geometry.Point
	if _, err := bus.Subscribe(KindPointerDown, func(p Pointer) { downs = append(downs, p.Point) }); err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	if _, err := bus.Subscribe(KindPointerUp, func(p Pointer) { ups = append(ups, p.Point) }); err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	bus.Dispatch(Pointer{Kind: KindPointerDown, Point: geometry.Point{X: 1, Y: 2}})
	bus.Dispatch(Pointer{Kind: KindPointerMove, Point: geometry.Point{X: 3, Y: 4}})
	bus.Dispatch(Pointer{Kind: KindPointerUp, Point: geometry.Point{X: 5, Y: 6}})
	bus.Dispatch(Pointer{Kind: KindNone})

	if len(downs) != 1 || downs[0] != (geometry.Point{X: 1, Y: 2}) {
		t.Errorf("downs = %v, want [{1 2}]", downs)
	}
	if len(ups) != 1 || ups[0] != (geometry.Point{X: 5, Y: 6}) {
		t.Errorf("ups = %v, want [{5 6}]", ups)
	}

	stats := bus.Stats()
	if stats.Dispatched != 3 {
		t.Errorf("Dispatched = %d, want 3", stats.Dispatched)
	}
	if stats.Delivered != 2 {
		t.Errorf("Delivered = %d, want 2", stats.Delivered)
	}
	if stats.Subscriptions != 2 {
		t.Errorf("Subscriptions = %d, want 2", stats.Subscriptions)
	}
}

func TestBus_PriorityOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	add := func(name string, p Priority) {
		if _, err := bus.Subscribe(KindClick, func(Pointer) { order = append(order, name) }, WithPriority(p)); err != nil {
			t.Fatalf("Subscribe(%s) failed: %v", name, err)
		}
	}
	add("log", PriorityLow)
	add("a", PriorityNormal)
	add("engine", PriorityCritical)
	add("b", PriorityNormal)

	bus.Dispatch(Pointer{Kind: KindClick})

	want := []string{"engine", "a", "b", "log"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestBus_UnsubscribeDuringDispatch(t *testing.T) {
	bus := NewBus()

	calls := 0
	var id SubscriptionID
	id, err := bus.Subscribe(KindPointerMove, func(Pointer) {
		calls++
		if err := bus.Unsubscribe(KindPointerMove, id); err != nil {
			t.Errorf("Unsubscribe() in handler failed: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	other := 0
	if _, err := bus.Subscribe(KindPointerMove, func(Pointer) { other++ }); err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	bus.Dispatch(Pointer{Kind: KindPointerMove})
	bus.Dispatch(Pointer{Kind: KindPointerMove})

	if calls != 1 {
		t.Errorf("self-removing handler called %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other handler called %d times, want 2", other)
	}
	if bus.Count(KindPointerMove) != 1 {
		t.Errorf("Count() = %d, want 1", bus.Count(KindPointerMove))
	}
}

func TestBus_PanicRecovered(t *testing.T) {
	var got *PanicError
	bus := NewBus(WithPanicHandler(func(e *PanicError) { got = e }))

	if _, err := bus.Subscribe(KindPointerDown, func(Pointer) { panic("boom") }); err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}
	reached := false
	if _, err := bus.Subscribe(KindPointerDown, func(Pointer) { reached = true }); err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	bus.Dispatch(Pointer{Kind: KindPointerDown})

	if got == nil {
		t.Fatal("panic handler not called")
	}
	if got.Kind != KindPointerDown || got.Value != "boom" {
		t.Errorf("PanicError = %+v", got)
	}
	if got.Error() == "" {
		t.Error("PanicError.Error() is empty")
	}
	if !reached {
		t.Error("handler after the panicking one was not called")
	}
	if bus.Stats().Panics != 1 {
		t.Errorf("Panics = %d, want 1", bus.Stats().Panics)
	}
}

func TestBus_SubscriptionIDsUnique(t *testing.T) {
	bus := NewBus()
	seen := make(map[SubscriptionID]bool)
	for i := 0; i < 50; i++ {
		id, err := bus.Subscribe(KindClick, func(Pointer) {})
		if err != nil {
			t.Fatalf("Subscribe() failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate subscription ID %s", id)
		}
		seen[id] = true
	}
}
