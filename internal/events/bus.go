package events

import (
	"encoding/json"
	"log"
	"sync"
)

const (
	DbChannel      = "db.events"
	ServiceChannel = "service.events"
)

// Publisher mirrors events to an external channel for consumers outside
// this process. Satisfied by the redis client wrapper.
type Publisher interface {
	Publish(channel string, payload []byte) error
}

// Bus is a process-local fan-out for domain events. It is constructed at
// the composition root and passed to repositories by reference; there are
// no package-level emitter singletons.
type Bus struct {
	channel string
	mirror  Publisher

	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewBus creates a bus named after its channel. mirror may be nil, in
// which case events stay in-process.
func NewBus(channel string, mirror Publisher) *Bus {
	return &Bus{channel: channel, mirror: mirror}
}

// Subscribe registers a listener for every event on this bus.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Publish delivers the event to all subscribers synchronously and mirrors
// it to the external channel. Fire-and-forget: mirror failures are logged,
// never propagated to the mutation that triggered the event.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := b.subscribers
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(e)
	}

	if b.mirror == nil {
		return
	}
	payload, err := json.Marshal(e)
	if err != nil {
		log.Printf("events: failed to marshal %s: %v", e.Topic(), err)
		return
	}
	if err := b.mirror.Publish(b.channel, payload); err != nil {
		log.Printf("events: failed to mirror %s to %s: %v", e.Topic(), b.channel, err)
	}
}
