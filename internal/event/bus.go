package event

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Source is the subscription surface of a pointer event source.
type Source interface {
	// Subscribe registers handler for kind and returns its ID.
	Subscribe(kind Kind, handler Handler, opts ...SubscribeOption) (SubscriptionID, error)

	// Unsubscribe removes a subscription previously returned by Subscribe.
	Unsubscribe(kind Kind, id SubscriptionID) error
}

// SubscribeOption configures a subscription.
type SubscribeOption func(*subscription)

// WithPriority sets the handler priority.
func WithPriority(p Priority) SubscribeOption {
	return func(s *subscription) {
		s.priority = p
	}
}

type subscription struct {
	id       SubscriptionID
	handler  Handler
	priority Priority
	seq      uint64
}

// Stats holds dispatch counters.
type Stats struct {
	Dispatched    uint64
	Delivered     uint64
	Panics        uint64
	Subscriptions int
}

// Bus is a synchronous, in-process Source.
type Bus struct {
	mu   sync.RWMutex
	subs map[Kind][]*subscription
	seq  uint64

	onPanic func(*PanicError)

	dispatched atomic.Uint64
	delivered  atomic.Uint64
	panics     atomic.Uint64
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithPanicHandler sets the hook called when a handler panics.
func WithPanicHandler(fn func(*PanicError)) BusOption {
	return func(b *Bus) {
		b.onPanic = fn
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		subs: make(map[Kind][]*subscription),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handler for kind.
// This method is safe to call concurrently.
func (b *Bus) Subscribe(kind Kind, handler Handler, opts ...SubscribeOption) (SubscriptionID, error) {
	if handler == nil {
		return "", ErrNilHandler
	}
	if !kind.Valid() {
		return "", ErrInvalidKind
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	sub := &subscription{
		id:       SubscriptionID(uuid.NewString()),
		handler:  handler,
		priority: PriorityNormal,
		seq:      b.seq,
	}
	for _, opt := range opts {
		opt(sub)
	}

	// Copy on write: in-flight dispatches keep their snapshot.
	list := make([]*subscription, 0, len(b.subs[kind])+1)
	list = append(list, b.subs[kind]...)
	list = append(list, sub)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority < list[j].priority
		}
		return list[i].seq < list[j].seq
	})
	b.subs[kind] = list

	return sub.id, nil
}

// Unsubscribe removes a subscription.
// This method is safe to call concurrently, including from a handler.
func (b *Bus) Unsubscribe(kind Kind, id SubscriptionID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[kind]
	for i, sub := range list {
		if sub.id != id {
			continue
		}
		next := make([]*subscription, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.subs, kind)
		} else {
			b.subs[kind] = next
		}
		return nil
	}
	return ErrSubscriptionNotFound
}

// Dispatch delivers ev to every handler subscribed to ev.Kind, in order.
// Events of an invalid kind are dropped.
func (b *Bus) Dispatch(ev Pointer) {
	if !ev.Kind.Valid() {
		return
	}
	b.dispatched.Add(1)

	b.mu.RLock()
	list := b.subs[ev.Kind]
	b.mu.RUnlock()

	for _, sub := range list {
		b.deliver(sub, ev)
	}
}

// deliver runs one handler, recovering a panic.
func (b *Bus) deliver(sub *subscription, ev Pointer) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			if b.onPanic != nil {
				b.onPanic(&PanicError{SubscriptionID: sub.id, Kind: ev.Kind, Value: r})
			}
		}
	}()
	sub.handler(ev)
	b.delivered.Add(1)
}

// Count returns the number of subscriptions for kind.
func (b *Bus) Count(kind Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[kind])
}

// Stats returns current dispatch counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := 0
	for _, list := range b.subs {
		n += len(list)
	}
	b.mu.RUnlock()

	return Stats{
		Dispatched:    b.dispatched.Load(),
		Delivered:     b.delivered.Load(),
		Panics:        b.panics.Load(),
		Subscriptions: n,
	}
}
