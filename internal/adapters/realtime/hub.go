// Package realtime relays timer events between clients that joined the same room.
package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
)

// DefaultBuffer is the per-subscriber channel capacity
const DefaultBuffer = 16

type subscriber struct {
	events chan domain.TimerEvent
	id     string
}

// Hub is an in-process room broadcaster.
// Events are never delivered back to their source and are dropped for subscribers whose buffer is full.
type Hub struct {
	buffer int
	mu     sync.RWMutex
	rooms  map[string]map[string]*subscriber
}

var (
	_ ports.EventPublisher  = (*Hub)(nil)
	_ ports.EventSubscriber = (*Hub)(nil)
)

// NewHub creates a hub with the given subscriber buffer (DefaultBuffer when <= 0)
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		buffer: buffer,
		rooms:  make(map[string]map[string]*subscriber),
	}
}

// Subscribe joins room. The returned cancel leaves the room and closes the channel.
func (h *Hub) Subscribe(room string) (string, <-chan domain.TimerEvent, func()) {
	sub := &subscriber{
		events: make(chan domain.TimerEvent, h.buffer),
		id:     uuid.NewString(),
	}

	h.mu.Lock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[string]*subscriber)
		h.rooms[room] = members
	}
	members[sub.id] = sub
	h.mu.Unlock()

	logging.Logger.Debug("Subscriber joined room", "room", room, "subscriber", sub.id)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.leave(room, sub)
		})
	}
	return sub.id, sub.events, cancel
}

func (h *Hub) leave(room string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.rooms[room]; ok {
		delete(members, sub.id)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	close(sub.events)
	logging.Logger.Debug("Subscriber left room", "room", room, "subscriber", sub.id)
}

// Publish delivers event to every room member except event.Source
func (h *Hub) Publish(_ context.Context, room string, event domain.TimerEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.rooms[room] {
		if id == event.Source {
			continue
		}
		select {
		case sub.events <- event:
		default:
			logging.Logger.Warn("Dropping timer event for slow subscriber",
				"room", room, "subscriber", id, "action", event.Action)
		}
	}
}

// Members returns the number of subscribers in room
func (h *Hub) Members(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
