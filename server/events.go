package server

import (
	"net/http"
	"sync"
)

// broadcaster fans one message out to every connected SSE client. Slow
// clients drop messages instead of blocking the sender.
type broadcaster struct {
	m       sync.Mutex
	clients map[chan string]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		clients: make(map[chan string]struct{}),
	}
}

func (b *broadcaster) addClient() chan string {
	ch := make(chan string, 1)

	b.m.Lock()
	b.clients[ch] = struct{}{}
	b.m.Unlock()

	return ch
}

func (b *broadcaster) removeClient(ch chan string) {
	b.m.Lock()
	defer b.m.Unlock()

	if _, ok := b.clients[ch]; !ok {
		return
	}

	delete(b.clients, ch)
	close(ch)
}

func (b *broadcaster) Broadcast(msg string) {
	b.m.Lock()
	for ch := range b.clients {
		select {
		case ch <- msg:
		default:
		}
	}
	b.m.Unlock()
}

func (b *broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)

	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	msgCh := b.addClient()
	defer b.removeClient(msgCh)

	notify := r.Context().Done()

	w.Write([]byte(":ok\n\n"))
	flusher.Flush()

	for {
		select {
		case <-notify:
			return
		case msg := <-msgCh:
			w.Write([]byte("event: reload\n"))
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
		}
	}
}

var _ http.Handler = (*broadcaster)(nil)
