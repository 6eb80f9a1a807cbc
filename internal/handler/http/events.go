package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/jwt"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/sse"
	"github.com/siteledger/siteledger-backend-go/internal/service/subscription"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	subscriptionService subscription.SubscriptionService
	jwtService          jwt.Service
}

func NewEventsHandler(subscriptionService subscription.SubscriptionService, jwtService jwt.Service) EventsHandler {
	return &EventsHandlerImpl{
		subscriptionService: subscriptionService,
		jwtService:          jwtService,
	}
}

// Stream handles an SSE connection for one collection. The subscriber gets
// the full current snapshot immediately, then a fresh snapshot after every
// write to the collection.
func (h *EventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot set headers, so auth rides in a query parameter.
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	if _, err := h.jwtService.ValidateSSEToken(tokenStr); err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")

	events, cleanup, err := h.subscriptionService.Subscribe(collection)
	if err != nil {
		http.Error(w, "Unknown collection", http.StatusNotFound)
		return
	}
	defer cleanup()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// Initial snapshot so the client never renders from an empty state.
	if snapshot, err := h.subscriptionService.Snapshot(r.Context(), collection); err == nil {
		writeEvent(w, sse.EventSnapshot, snapshot)
		flusher.Flush()
	}

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			writeEvent(w, event.Event, event.Data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
