// Package bridge fans Postgres NOTIFY events out to WebSocket clients.
//
// The client registry lives in process memory: each server process reaches
// only its own connected clients, and holds exactly one subscription
// connection. Running several processes behind a load balancer therefore
// splits the audience per process. This is a known scaling boundary of the
// design, not something to paper over here.
package bridge

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"notifyhub-backend/internal/update/domain"
)

// Source is a stream of raw channel payloads. *pglisten.Listener adapts the
// lib/pq listener to it.
type Source interface {
	Notifications() <-chan []byte
}

// updateFrame is the wire shape pushed to clients, identical to the polling
// response for a non-empty result.
type updateFrame struct {
	Nova         bool            `json:"nova"`
	Atualizacoes []domain.Update `json:"atualizacoes"`
}

// Bridge ties one store subscription to the hub of connected clients.
type Bridge struct {
	hub       *Hub
	db        *gorm.DB
	newSource func() Source
	once      sync.Once
	upgrader  websocket.Upgrader
}

// New creates an idle bridge. The source is built lazily on Start so that a
// process serving no WebSocket clients never holds a LISTEN connection.
func New(db *gorm.DB, newSource func() Source) *Bridge {
	return &Bridge{
		hub:       NewHub(),
		db:        db,
		newSource: newSource,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Start moves the bridge from uninitialized to listening: asserts the updates
// schema, starts the hub and opens the single store subscription. Concurrent
// first callers are safe; only one subscription is ever created.
func (b *Bridge) Start() {
	b.once.Do(func() {
		if err := b.db.AutoMigrate(&domain.Update{}); err != nil {
			log.Printf("[Bridge] schema assertion failed: %v", err)
		}
		go b.hub.Run()
		go b.listen(b.newSource())
		log.Println("[Bridge] initialized")
	})
}

func (b *Bridge) listen(source Source) {
	for payload := range source.Notifications() {
		b.dispatch(payload)
	}
	log.Println("[Bridge] subscription stream closed")
}

// dispatch decodes one channel payload, serializes the frame once and fans the
// identical bytes out to every connected client. Malformed payloads are logged
// and dropped, never retried.
func (b *Bridge) dispatch(payload []byte) {
	var update domain.Update
	if err := json.Unmarshal(payload, &update); err != nil {
		log.Printf("[Bridge] dropping malformed payload %q: %v", payload, err)
		return
	}

	frame, err := json.Marshal(updateFrame{
		Nova:         true,
		Atualizacoes: []domain.Update{update},
	})
	if err != nil {
		log.Printf("[Bridge] frame encoding failed: %v", err)
		return
	}

	b.hub.Broadcast(frame)
}

// ServeWS handles GET /socket: upgrades the connection and attaches it to the
// hub. The first connection also brings up the store subscription.
func (b *Bridge) ServeWS(c *gin.Context) {
	b.Start()

	conn, err := b.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP rejection.
		log.Printf("[Bridge] upgrade rejected: %v", err)
		return
	}

	cl := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, 8),
	}
	b.hub.register <- cl

	go cl.writePump()
	go cl.readPump(b.hub)
}
