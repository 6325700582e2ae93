package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mantonx/streambase/internal/logger"
)

// EventBus defines the interface for the event bus system
type EventBus interface {
	// Publish delivers an event to matching subscribers synchronously
	Publish(event Event)

	// PublishAsync queues an event for delivery without blocking the caller
	PublishAsync(event Event)

	// Subscribe registers a handler for the given event types.
	// An empty type list subscribes to all events.
	Subscribe(handler EventHandler, types ...EventType) string

	// Unsubscribe removes a subscription by ID
	Unsubscribe(subscriptionID string)

	// Stop drains the async queue and stops delivery
	Stop()
}

type subscription struct {
	id      string
	types   map[EventType]bool
	handler EventHandler
}

func (s *subscription) matches(t EventType) bool {
	return len(s.types) == 0 || s.types[t]
}

// bus is the in-process EventBus implementation
type bus struct {
	mu      sync.RWMutex
	subs    map[string]*subscription
	queue   chan Event
	done    chan struct{}
	stopped sync.Once
}

// NewEventBus creates and starts an in-process event bus
func NewEventBus() EventBus {
	b := &bus{
		subs:  make(map[string]*subscription),
		queue: make(chan Event, 256),
		done:  make(chan struct{}),
	}
	go b.deliverLoop()
	return b
}

func (b *bus) deliverLoop() {
	for {
		select {
		case event := <-b.queue:
			b.Publish(event)
		case <-b.done:
			// Drain anything already queued before exiting
			for {
				select {
				case event := <-b.queue:
					b.Publish(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) Publish(event Event) {
	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.matches(event.Type) {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range matched {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Event handler panicked",
						logger.String("event_type", string(event.Type)),
						logger.String("subscription", sub.id))
				}
			}()
			sub.handler(event)
		}()
	}
}

func (b *bus) PublishAsync(event Event) {
	select {
	case b.queue <- event:
	default:
		logger.Warn("Event queue full, dropping event",
			logger.String("event_type", string(event.Type)),
			logger.String("event_id", event.ID))
	}
}

func (b *bus) Subscribe(handler EventHandler, types ...EventType) string {
	sub := &subscription{
		id:      uuid.New().String(),
		types:   make(map[EventType]bool, len(types)),
		handler: handler,
	}
	for _, t := range types {
		sub.types[t] = true
	}

	b.mu.Lock()
	b.subs[sub.id] = sub
	b.mu.Unlock()
	return sub.id
}

func (b *bus) Unsubscribe(subscriptionID string) {
	b.mu.Lock()
	delete(b.subs, subscriptionID)
	b.mu.Unlock()
}

func (b *bus) Stop() {
	b.stopped.Do(func() {
		close(b.done)
	})
}
