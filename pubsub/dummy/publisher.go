package dummy

import (
	"sync"

	"github.com/barnybug/pirstatus/pubsub"
)

// Dummy Publisher for testing
type Publisher struct {
	mu     sync.Mutex
	events []*pubsub.Event
	Closed bool
}

func (self *Publisher) ID() string {
	return "dummy"
}

func (self *Publisher) Emit(ev *pubsub.Event) {
	self.mu.Lock()
	self.events = append(self.events, ev)
	self.mu.Unlock()
}

func (self *Publisher) Close() {
	self.mu.Lock()
	self.Closed = true
	self.mu.Unlock()
}

// Events returns a copy of everything emitted so far.
func (self *Publisher) Events() []*pubsub.Event {
	self.mu.Lock()
	defer self.mu.Unlock()
	return append([]*pubsub.Event(nil), self.events...)
}
