// Package events provides the in-process "data changed" broadcast.
//
// Ledger mutations publish on the bus; summary views subscribe to know
// when to re-read. This is an observer registry, not a queue: there is
// no payload, no buffering, and no delivery to subscribers registered
// after a publish. Listeners run synchronously on the publisher's
// goroutine.
package events

import (
	"sync"

	"github.com/google/uuid"
)

// Bus is a process-wide change-notification registry. The zero value is
// not usable; construct with NewBus.
type Bus struct {
	mu   sync.Mutex
	subs map[string]func()
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]func())}
}

// Subscribe registers fn and returns a token for Unsubscribe.
func (b *Bus) Subscribe(fn func()) string {
	token := uuid.New().String()
	b.mu.Lock()
	b.subs[token] = fn
	b.mu.Unlock()
	return token
}

// Unsubscribe removes the subscription; unknown tokens are ignored.
func (b *Bus) Unsubscribe(token string) {
	b.mu.Lock()
	delete(b.subs, token)
	b.mu.Unlock()
}

// Publish invokes every listener registered at dispatch time. The
// listener set is snapshotted under the lock so a listener may
// subscribe or unsubscribe from within its callback.
func (b *Bus) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
