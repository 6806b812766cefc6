// Package reload carries the "layout invalidated" signal from the panel
// controller to whoever renders the world. The browser client treats a
// signal as an instruction to re-fetch everything; no partial-update
// contract is offered.
package reload

import (
	"sync"
	"time"
)

type Signal struct {
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Bus fans a Signal out to every subscriber. Publish never blocks: a
// subscriber that cannot keep up misses signals instead of wedging the
// publisher.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Signal
	next int
}

func NewBus() *Bus {
	return &Bus{subs: map[int]chan Signal{}}
}

// Subscribe returns a signal channel and a cancel func that releases it.
func (b *Bus) Subscribe() (<-chan Signal, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Signal, 4)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(s Signal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

// SubscriberCount is exposed for the admin page.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
