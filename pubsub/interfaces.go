package pubsub

type Publisher interface {
	ID() string
	Emit(ev *Event)
	Close()
}

type discard struct{}

func (discard) ID() string     { return "discard" }
func (discard) Emit(ev *Event) {}
func (discard) Close()         {}

// Discard drops every event. Used when no broker is configured.
var Discard Publisher = discard{}
