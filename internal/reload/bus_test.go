package reload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	b := NewBus()

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	sig := Signal{Reason: "layout_invalidated", At: time.Now()}
	b.Publish(sig)

	for _, ch := range []<-chan Signal{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, sig.Reason, got.Reason)
		default:
			t.Fatal("expected a buffered signal")
		}
	}
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	b := NewBus()

	ch, cancel := b.Subscribe()
	cancel()
	cancel() // double-cancel is safe

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.SubscriberCount())
}

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBus()

	_, cancel := b.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Channel buffer is 4; publishing more must not block.
		for i := 0; i < 32; i++ {
			b.Publish(Signal{Reason: "layout_invalidated"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	require.Equal(t, 1, b.SubscriberCount())
}
