// Package notification bridges the attendance event queue to the kiosk SSE
// hub. It replaces a direct socket push so API instances never block on
// slow displays.
package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/kennarhq/attendance-backend-go/internal/pkg/queue"
	"github.com/kennarhq/attendance-backend-go/internal/pkg/sse"
)

// KioskChannel is the SSE channel the displays subscribe to.
const KioskChannel = "kiosk"

// Worker consumes attendance events and broadcasts them to kiosk displays.
type Worker struct {
	queue  queue.Queue
	hub    *sse.Hub
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorker(q queue.Queue, hub *sse.Hub) *Worker {
	return &Worker{queue: q, hub: hub}
}

// Start begins consuming in the background until Stop is called.
func (w *Worker) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	messages, err := w.queue.Consume(ctx)
	if err != nil {
		cancel()
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		slog.Info("Notification worker started")
		for msg := range messages {
			w.dispatch(msg)
		}
		slog.Info("Notification worker stopped")
	}()

	return nil
}

// Stop shuts the worker down and waits for the in-flight message.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *Worker) dispatch(msg queue.Message) {
	var payload interface{}
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		// Forward opaque bodies as-is rather than dropping the event.
		payload = string(msg.Body)
	}

	w.hub.Publish(KioskChannel, sse.Event{Event: msg.Type, Data: payload})
	slog.Debug("Notification dispatched", "type", msg.Type)
}
