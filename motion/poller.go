package motion

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/barnybug/pirstatus/hal"
	"github.com/barnybug/pirstatus/metrics"
	"github.com/barnybug/pirstatus/pubsub"
	"github.com/barnybug/pirstatus/util"
)

const (
	DefaultInterval = 100 * time.Millisecond
	// PIR modules need a moment after power-up before their output is stable.
	DefaultSettle = 2 * time.Second
	// TimeLayout is how detection times are shown to people.
	TimeLayout = "2006-01-02 15:04:05"
	// Topic events are published under.
	Topic = "pir"
)

// Poller samples a sensor pin and updates a Record on each detection.
type Poller struct {
	Pin       hal.Pin
	Record    *Record
	Interval  time.Duration
	Settle    time.Duration
	Trigger   Trigger
	Now       func() time.Time
	// Publisher is called from the sampling loop; anything that can block
	// belongs behind a pubsub.Async.
	Publisher pubsub.Publisher
	Metrics   *metrics.Metrics

	detector Detector
	since    time.Time
}

func NewPoller(pin hal.Pin, record *Record) *Poller {
	return &Poller{
		Pin:       pin,
		Record:    record,
		Interval:  DefaultInterval,
		Settle:    DefaultSettle,
		Trigger:   Edge,
		Now:       time.Now,
		Publisher: pubsub.Discard,
	}
}

// Source identifies the sensor in published events.
func (p *Poller) Source() string {
	return Topic + "." + p.Pin.Name()
}

// Step takes one sample. A read error is returned wrapped; there is no
// retry, the process is expected to exit and be restarted.
func (p *Poller) Step() (Transition, error) {
	level, err := p.Pin.Read()
	if err != nil {
		return None, errors.Wrapf(err, "reading pin %s", p.Pin.Name())
	}
	now := p.Now()
	tr := p.detector.Sample(level)
	if p.Metrics != nil {
		p.Metrics.Level(bool(level))
	}
	if p.Trigger.Fires(tr) {
		p.Record.Set(now)
		if p.Metrics != nil {
			if tr == Rising {
				p.Metrics.Motion(now)
			} else {
				p.Metrics.Seen(now)
			}
		}
	}

	switch tr {
	case Rising:
		p.since = now
		log.Println("Motion detected at", now.Format(TimeLayout))
		p.emit("on", now)
	case Falling:
		log.Println("No motion, after", util.FriendlyDuration(now.Sub(p.since)))
		p.emit("off", now)
	}
	return tr, nil
}

func (p *Poller) emit(command string, at time.Time) {
	if p.Publisher == nil {
		return
	}
	ev := pubsub.NewStateEvent(Topic, p.Source(), command, at)
	ev.SetRetained(true)
	p.Publisher.Emit(ev)
}

// Run waits for the sensor to settle then samples every Interval until ctx
// is cancelled. It only returns an error if the pin cannot be read.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log.Printf("Watching %s (%s trigger), waiting for motion...", p.Pin.Name(), p.Trigger)
	if p.Settle > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.Settle):
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := p.Step(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
