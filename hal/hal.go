// Package hal is the hardware abstraction for the sensor input line.
//
// Real pins are driven through periph.io; MockPin replays scripted levels so
// the poller and the web page can be exercised on a desktop machine.
package hal

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the logic level of a digital input.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "High"
	}
	return "Low"
}

// Pin is a single digital input line.
type Pin interface {
	Name() string
	Read() (Level, error)
}

// Pull selects the internal resistor applied to an input.
type Pull int

const (
	PullDown Pull = iota
	PullUp
	PullNone
)

// ParsePull maps a config value to a Pull. Empty means down, the usual
// wiring for a PIR module whose output idles low.
func ParsePull(s string) (Pull, error) {
	switch strings.ToLower(s) {
	case "", "down":
		return PullDown, nil
	case "up":
		return PullUp, nil
	case "none", "float":
		return PullNone, nil
	}
	return PullDown, errors.Errorf("unknown pull %q", s)
}
