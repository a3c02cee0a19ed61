package bridge

import (
	"testing"
	"time"
)

func TestUnwritableClientIsSkippedNotDropped(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Unbuffered send channel with nobody reading: the client is not in a
	// writable state for the first event.
	c := &client{id: "stalled", send: make(chan []byte)}
	h.register <- c

	h.Broadcast([]byte("missed"))
	time.Sleep(100 * time.Millisecond) // let the fan-out skip the client

	got := make(chan []byte, 1)
	go func() { got <- <-c.send }()
	time.Sleep(100 * time.Millisecond) // let the reader block on the channel

	h.Broadcast([]byte("delivered"))

	select {
	case frame := <-got:
		if string(frame) != "delivered" {
			t.Errorf("expected the later event, got %q", frame)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("client was dropped after a skipped event")
	}
}
