package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const reloadMsg = "reload"

const reloadScript = `(function() {
	var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/livereload");
	ws.onmessage = function(e) { if (e.data === "reload") location.reload(); };
})();
`

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub keeps the live reload clients.
type hub struct {
	clients sync.Map // map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{}
}

func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade err", err)
		return
	}
	h.clients.Store(c, struct{}{})
	defer func() {
		c.Close()
		h.clients.Delete(c)
	}()

	// Nothing is expected from clients, read until they go away
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Count returns the number of connected clients.
func (h *hub) Count() int {
	n := 0
	h.clients.Range(func(key, value interface{}) bool {
		n++
		return true
	})
	return n
}

// Broadcast sends msg to every client.
func (h *hub) Broadcast(msg string) {
	h.clients.Range(func(key, value interface{}) bool {
		cl := key.(*websocket.Conn)
		if err := cl.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			log.Println("sending to client:", err)
		}
		return true
	})
}

// watch polls path and calls changed whenever its modification time moves,
// until ctx is done. A missing file is not a change.
func watch(ctx context.Context, path string, every time.Duration, changed func()) {
	last := modTime(path)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := modTime(path)
			if cur.IsZero() || cur.Equal(last) {
				continue
			}
			last = cur
			changed()
		}
	}
}

func modTime(path string) time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}
