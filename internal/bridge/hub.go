package bridge

import (
	"log"

	"github.com/gorilla/websocket"
)

// client is one connected WebSocket subscriber.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub owns the registry of connected clients. Only the Run goroutine mutates
// the registry, so connects, disconnects and broadcasts never race.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

// NewHub creates an empty client registry. Pump it with go hub.Run().
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			log.Printf("[Bridge] client %s connected (%d online)", c.id, len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				log.Printf("[Bridge] client %s disconnected (%d online)", c.id, len(h.clients))
			}
		case frame := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- frame:
				default:
					// Client not in a writable state: skip it for this
					// event, no queueing, no retry. readPump unregisters
					// the client once its connection actually dies.
				}
			}
		}
	}
}

// Broadcast hands one serialized frame to every connected client.
func (h *Hub) Broadcast(frame []byte) {
	h.broadcast <- frame
}

// writePump drains the client's send buffer onto the wire.
func (c *client) writePump() {
	defer c.conn.Close()
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}

// readPump discards inbound messages and unregisters the client when the
// connection errors or closes.
func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
