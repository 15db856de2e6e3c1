// Package motion turns samples of a PIR sensor line into the time of the
// last detected motion.
package motion

import (
	"sync/atomic"
	"time"
)

// Record holds the time of the last detected motion. It has a single writer
// (the Poller); any number of readers may call Last concurrently. Each Set
// publishes a fresh value, so a reader sees either the old or the new time,
// never a mix.
type Record struct {
	at atomic.Pointer[time.Time]
}

func (r *Record) Set(t time.Time) {
	r.at.Store(&t)
}

// Last returns the last detection time, and false if there has been none.
func (r *Record) Last() (time.Time, bool) {
	p := r.at.Load()
	if p == nil {
		return time.Time{}, false
	}
	return *p, true
}
