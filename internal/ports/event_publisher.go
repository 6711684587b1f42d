package ports

import (
	"context"

	"github.com/renato0307/pomo/internal/domain"
)

// EventPublisher relays timer events to the clients of a room
type EventPublisher interface {
	Publish(ctx context.Context, room string, event domain.TimerEvent)
}

// EventSubscriber lets a client follow a room.
// The returned cancel func must be called to release the subscription.
type EventSubscriber interface {
	Subscribe(room string) (id string, events <-chan domain.TimerEvent, cancel func())
}
