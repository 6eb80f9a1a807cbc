package sse

import (
	"sync"
)

// Event carries a full collection snapshot to subscribers.
type Event struct {
	Collection string
	Event      string
	Data       interface{}
}

// Hub manages per-collection SSE subscribers. Every write to a collection
// publishes the collection's complete current record list, so a subscriber's
// view is always the latest snapshot rather than a diff stream.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a collection and returns the event
// channel and a cleanup function.
func (h *Hub) Subscribe(collection string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[collection] == nil {
		h.subscribers[collection] = make(map[chan Event]struct{})
	}
	h.subscribers[collection][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[collection], ch)
		close(ch)
		if len(h.subscribers[collection]) == 0 {
			delete(h.subscribers, collection)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a collection.
func (h *Hub) Publish(collection string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[collection]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a collection.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[collection]; ok {
		return len(subs)
	}
	return 0
}

// TotalSubscribers returns the number of active subscribers across all collections.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
