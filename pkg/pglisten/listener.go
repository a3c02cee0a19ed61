package pglisten

import (
	"log"
	"time"

	"github.com/lib/pq"
)

// Listener holds one dedicated LISTEN connection and exposes the raw payload
// stream of a single channel. lib/pq reconnects the underlying connection on
// its own; notifications emitted while disconnected are lost, so polling
// remains the consistent fallback for consumers.
type Listener struct {
	channel string
	pq      *pq.Listener
	out     chan []byte
}

// New opens the listening connection and starts pumping payloads. The returned
// stream is closed when the subscription cannot be established.
func New(dsn, channel string) *Listener {
	l := &Listener{
		channel: channel,
		out:     make(chan []byte, 16),
	}
	l.pq = pq.NewListener(dsn, 10*time.Second, time.Minute, l.logEvent)
	go l.run()
	return l
}

// Notifications returns the payload stream.
func (l *Listener) Notifications() <-chan []byte {
	return l.out
}

func (l *Listener) run() {
	defer close(l.out)

	if err := l.pq.Listen(l.channel); err != nil {
		log.Printf("[PG] LISTEN %s failed: %v", l.channel, err)
		return
	}
	log.Printf("[PG] listening on channel %q", l.channel)

	for n := range l.pq.Notify {
		if n == nil {
			// pq sends nil after a reconnect. Nothing to replay.
			continue
		}
		l.out <- []byte(n.Extra)
	}
}

func (l *Listener) logEvent(ev pq.ListenerEventType, err error) {
	if err != nil {
		log.Printf("[PG] listener event %d: %v", ev, err)
	}
}
