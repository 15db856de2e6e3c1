package motion

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/barnybug/pirstatus/hal"
)

// Transition classifies a sample against the one before it.
type Transition int

const (
	None    Transition = iota // low, still low
	Rising                    // low to high: motion started
	Held                      // high, still high
	Falling                   // high to low: motion ended
)

func (t Transition) String() string {
	switch t {
	case Rising:
		return "rising"
	case Held:
		return "held"
	case Falling:
		return "falling"
	}
	return "none"
}

// Trigger decides which transitions update the record.
type Trigger int

const (
	// Edge records once per motion episode, on the rising edge. The line
	// must fall back low before it can fire again.
	Edge Trigger = iota
	// Level records the rising edge and then every sample the line stays
	// high.
	Level
)

func ParseTrigger(s string) (Trigger, error) {
	switch strings.ToLower(s) {
	case "", "edge":
		return Edge, nil
	case "level":
		return Level, nil
	}
	return Edge, errors.Errorf("unknown trigger %q", s)
}

func (t Trigger) String() string {
	if t == Level {
		return "level"
	}
	return "edge"
}

// Fires reports whether a transition counts as a detection.
func (t Trigger) Fires(tr Transition) bool {
	switch tr {
	case Rising:
		return true
	case Held:
		return t == Level
	}
	return false
}

// Detector tracks the previous level of the line. The zero value starts low,
// so a line already high at the first sample reads as a rising edge.
type Detector struct {
	last hal.Level
}

func (d *Detector) Sample(level hal.Level) Transition {
	prev := d.last
	d.last = level
	switch {
	case prev == hal.Low && level == hal.High:
		return Rising
	case prev == hal.High && level == hal.High:
		return Held
	case prev == hal.High && level == hal.Low:
		return Falling
	}
	return None
}
