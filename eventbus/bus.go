// Package eventbus provides a general-purpose, type-keyed publish/subscribe
// bus for application code built on top of an ecs.Registry. It is adapted
// from rdtc8822-debug-L1JGO-Whale's own internal/core/event.Bus — same
// double-buffered emit/dispatch shape — generalized away from that server's
// fixed Phase-1 login/disconnect event types into an arbitrary-type bus.
//
// The registry itself never publishes to a Bus on component mutation: spec
// Non-goals explicitly exclude an event/observer-dispatch layer from the
// registry core, so wiring one in here would misrepresent what the core
// does. A Bus only fires when application code calls Emit — typically from
// inside a system.System's Update.
package eventbus

import (
	"reflect"
	"sync"
)

// Bus is a double-buffered event bus: events Emitted during a tick are
// queued, and become visible to handlers only after the next SwapBuffers +
// Dispatch, so a handler never re-triggers more events in the buffer it is
// currently draining.
type Bus struct {
	mu       sync.Mutex
	front    map[reflect.Type][]any
	back     map[reflect.Type][]any
	handlers map[reflect.Type][]any
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{
		front:    make(map[reflect.Type][]any),
		back:     make(map[reflect.Type][]any),
		handlers: make(map[reflect.Type][]any),
	}
}

// Emit queues event into the back buffer. It becomes visible to handlers
// after the next SwapBuffers.
func Emit[T any](b *Bus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.back[t] = append(b.back[t], event)
}

// Subscribe registers fn to be called for every T dispatched after a
// SwapBuffers. Subscriptions accumulate; there is no Unsubscribe, matching
// the teacher bus's lifetime (handlers live as long as the Bus).
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], fn)
}

// SwapBuffers rotates the back buffer into front and clears the new back
// buffer. Call once per tick, before Dispatch.
func (b *Bus) SwapBuffers() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.front, b.back = b.back, b.front
	for k := range b.back {
		b.back[k] = b.back[k][:0]
	}
}

// Dispatch delivers every event currently in the front buffer to its
// subscribed handlers, in emission order within each type.
func (b *Bus) Dispatch() {
	b.mu.Lock()
	front := b.front
	handlers := b.handlers
	b.mu.Unlock()

	for t, events := range front {
		hs := handlers[t]
		for _, ev := range events {
			for _, h := range hs {
				callHandler(h, ev)
			}
		}
	}
}

func callHandler(handler any, event any) {
	reflect.ValueOf(handler).Call([]reflect.Value{reflect.ValueOf(event)})
}
