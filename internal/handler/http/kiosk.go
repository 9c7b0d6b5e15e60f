package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kennarhq/attendance-backend-go/internal/pkg/metrics"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/sse"
	"github.com/kennarhq/attendance-backend-go/internal/service/notification"
)

type KioskHandler interface {
	Events(w http.ResponseWriter, r *http.Request)
}

type kioskHandlerImpl struct {
	hub     *sse.Hub
	metrics *metrics.Metrics
}

func NewKioskHandler(hub *sse.Hub, m *metrics.Metrics) KioskHandler {
	return &kioskHandlerImpl{hub: hub, metrics: m}
}

// Events streams attendance events to a kiosk display over SSE. The stream
// stays open until the client disconnects.
func (h *kioskHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(notification.KioskChannel)
	defer cleanup()

	h.metrics.KioskSubscribers.Inc()
	defer h.metrics.KioskSubscribers.Dec()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(evt.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Event, data)
			flusher.Flush()
		}
	}
}
