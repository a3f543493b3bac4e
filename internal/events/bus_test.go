package events

import "testing"

func TestBusPublishReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var a, b int
	bus.Subscribe(func() { a++ })
	tokenB := bus.Subscribe(func() { b++ })

	bus.Publish()
	if a != 1 || b != 1 {
		t.Fatalf("after first publish: a=%d b=%d, want 1 1", a, b)
	}

	bus.Unsubscribe(tokenB)
	bus.Publish()
	if a != 2 || b != 1 {
		t.Errorf("after unsubscribe: a=%d b=%d, want 2 1", a, b)
	}
}

func TestBusLateSubscriberMissesEarlierPublish(t *testing.T) {
	bus := NewBus()
	bus.Publish() // no listeners, no buffering

	var n int
	bus.Subscribe(func() { n++ })
	if n != 0 {
		t.Errorf("late subscriber saw an earlier publish: n=%d", n)
	}
}

func TestBusSubscribeFromWithinListener(t *testing.T) {
	bus := NewBus()

	var inner int
	bus.Subscribe(func() {
		bus.Subscribe(func() { inner++ })
	})

	// Must not deadlock; the new listener only sees later publishes.
	bus.Publish()
	if inner != 0 {
		t.Fatalf("listener added during dispatch was invoked: %d", inner)
	}
	bus.Publish()
	if inner != 1 {
		t.Errorf("listener added during dispatch missed the next publish: %d", inner)
	}
}

func TestBusUnsubscribeUnknownToken(t *testing.T) {
	bus := NewBus()
	bus.Unsubscribe("no-such-token")
	bus.Publish()
}
