package pubsub

import (
	"log"
	"sync"
)

// Async hands events to a goroutine that emits them on the wrapped
// Publisher, so a slow broker never holds up the caller. When the queue is
// full new events are dropped.
type Async struct {
	pub    Publisher
	events chan *Event
	once   sync.Once
	done   chan struct{}
}

func NewAsync(pub Publisher, size int) *Async {
	self := &Async{
		pub:    pub,
		events: make(chan *Event, size),
		done:   make(chan struct{}),
	}
	go self.run()
	return self
}

func (self *Async) run() {
	defer close(self.done)
	for ev := range self.events {
		self.pub.Emit(ev)
	}
}

func (self *Async) ID() string {
	return "async: " + self.pub.ID()
}

// Emit queues an event. It must not be called after Close.
func (self *Async) Emit(ev *Event) {
	select {
	case self.events <- ev:
	default:
		log.Println("Event queue full, dropping", ev.Topic)
	}
}

// Close waits for queued events to be emitted. The wrapped Publisher stays
// open; its owner closes it.
func (self *Async) Close() {
	self.once.Do(func() {
		close(self.events)
	})
	<-self.done
}
