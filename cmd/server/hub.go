package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"outbreak/internal/sim"
	"outbreak/internal/wire"
)

// controlHub tracks every connected websocket client behind a mutex and
// fans out wire.Snapshot frames while listening for wire.Control commands.
type controlHub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader

	onStop func()
}

func newControlHub(onStop func()) *controlHub {
	return &controlHub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		onStop: onStop,
	}
}

func (h *controlHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *controlHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// broadcastSnapshot fans a wire.Snapshot out to every connected client. A
// client whose write fails is dropped.
func (h *controlHub) broadcastSnapshot(s wire.Snapshot) {
	payload := wire.EncodeSnapshot(s)

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			log.Printf("failed to write snapshot to client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *controlHub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		h.add(conn)
		defer h.remove(conn)

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				log.Printf("control stream read error: %v", err)
				return
			}

			cmd, err := wire.DecodeControl(data)
			if err != nil {
				log.Printf("unable to decode control command: %v", err)
				continue
			}

			switch cmd.Command {
			case wire.StopCommand:
				if h.onStop != nil {
					h.onStop()
				}
			case wire.SetSpeedCommand:
				sim.SetPlaybackSpeed(cmd.Speed)
			}
		}
	}
}
