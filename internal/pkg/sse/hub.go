// Package sse fans attendance events out to connected kiosk displays.
package sse

import (
	"sync"
)

// Event is one message pushed to subscribers.
type Event struct {
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers grouped by channel.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber on a channel and returns the event
// channel together with a cleanup function.
func (h *Hub) Subscribe(channel string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[channel] == nil {
		h.subscribers[channel] = make(map[chan Event]struct{})
	}
	h.subscribers[channel][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[channel], ch)
		close(ch)
		if len(h.subscribers[channel]) == 0 {
			delete(h.subscribers, channel)
		}
	}

	return ch, cleanup
}

// Publish sends an event to every subscriber on a channel. Slow subscribers
// with a full buffer are skipped rather than blocking the publisher.
func (h *Hub) Publish(channel string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[channel]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}
