package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/captainfanatic/trolly/internal/core/domain"
	"github.com/captainfanatic/trolly/internal/core/ports/driven"
	"github.com/captainfanatic/trolly/internal/logger"
)

// defaultBuffer is the subscription channel depth used when the
// caller does not pick one.
const defaultBuffer = 16

// Ensure Bus implements the interface.
var _ driven.Notifier = (*Bus)(nil)

// Bus is an in-process change notification fan-out. Publishing never
// blocks: a subscriber whose buffer is full misses the notification.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]*Subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]*Subscription)}
}

// Subscription is one observer's registration on a Bus.
type Subscription struct {
	id  string
	ch  chan domain.URI
	bus *Bus
}

// Subscribe registers an observer. buffer <= 0 selects a default
// channel depth.
func (b *Bus) Subscribe(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	sub := &Subscription{
		id:  uuid.NewString(),
		ch:  make(chan domain.URI, buffer),
		bus: b,
	}

	b.mu.Lock()
	b.subs[sub.id] = sub
	b.mu.Unlock()

	return sub
}

// NotifyChange delivers uri to every subscriber that has room.
func (b *Bus) NotifyChange(uri domain.URI) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		select {
		case sub.ch <- uri:
		default:
			logger.Debug("subscriber %s full, dropping change for %s", sub.id, uri)
		}
	}
}

// ID returns the subscription's unique token.
func (s *Subscription) ID() string { return s.id }

// C returns the channel change notifications arrive on. The channel
// is closed by Cancel.
func (s *Subscription) C() <-chan domain.URI { return s.ch }

// Cancel removes the subscription from its bus and closes the channel.
// Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if _, ok := s.bus.subs[s.id]; !ok {
		return
	}
	delete(s.bus.subs, s.id)
	close(s.ch)
}
