// Package sensor is a service watching a PIR motion sensor on a GPIO pin and
// recording the time of the last motion.
package sensor

import (
	"context"

	"github.com/pkg/errors"

	"github.com/barnybug/pirstatus/config"
	"github.com/barnybug/pirstatus/hal"
	"github.com/barnybug/pirstatus/metrics"
	"github.com/barnybug/pirstatus/motion"
	"github.com/barnybug/pirstatus/pubsub"
)

// Service sensor
type Service struct {
	Conf      config.SensorConf
	Record    *motion.Record
	Publisher pubsub.Publisher
	Metrics   *metrics.Metrics
	// Open opens the pin. Defaults to hal.Open.
	Open func(name string, pull hal.Pull) (hal.Pin, error)

	poller *motion.Poller
	events *pubsub.Async
}

// queued events waiting for the publisher, beyond which new ones are dropped
const eventQueue = 64

// ID of the service
func (self *Service) ID() string {
	return "sensor"
}

// Init opens the pin, so a miswired or missing pin stops startup.
func (self *Service) Init() error {
	pull, err := hal.ParsePull(self.Conf.Pull)
	if err != nil {
		return err
	}
	trigger, err := motion.ParseTrigger(self.Conf.Trigger)
	if err != nil {
		return err
	}
	open := self.Open
	if open == nil {
		open = hal.Open
	}
	pin, err := open(self.Conf.Pin, pull)
	if err != nil {
		return err
	}

	p := motion.NewPoller(pin, self.Record)
	p.Interval = self.Conf.Poll.Duration
	p.Settle = self.Conf.Settle.Duration
	p.Trigger = trigger
	p.Metrics = self.Metrics
	if self.Publisher != nil {
		// sampling must not wait on the broker
		self.events = pubsub.NewAsync(self.Publisher, eventQueue)
		p.Publisher = self.events
	}
	self.poller = p
	return nil
}

// Run the service
func (self *Service) Run(ctx context.Context) error {
	if self.poller == nil {
		return errors.New("sensor not initialised")
	}
	if self.events != nil {
		defer self.events.Close()
	}
	return self.poller.Run(ctx)
}
