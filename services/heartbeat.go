package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/barnybug/pirstatus/pubsub"
)

// Heartbeat tells systemd the process is up, then keeps its watchdog fed and
// publishes a retained heartbeat event every Interval.
type Heartbeat struct {
	Name      string
	Publisher pubsub.Publisher
	Interval  time.Duration
	// Ready, when set, holds back READY=1 until it is closed.
	Ready <-chan struct{}
	// Notify sends a state string to the supervisor. Defaults to sd_notify.
	Notify func(state string) error
}

func sdNotify(state string) error {
	_, err := daemon.SdNotify(false, state)
	return err
}

func (self *Heartbeat) ID() string {
	return "heartbeat"
}

func (self *Heartbeat) interval() time.Duration {
	interval := self.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	// keep well inside systemd's WatchdogSec
	if watchdog, err := daemon.SdWatchdogEnabled(false); err == nil && watchdog > 0 && watchdog/2 < interval {
		interval = watchdog / 2
	}
	return interval
}

func (self *Heartbeat) event(started, now time.Time) *pubsub.Event {
	fields := pubsub.Fields{
		"device":  "heartbeat." + self.Name,
		"pid":     os.Getpid(),
		"started": started.Format(time.RFC3339),
		"uptime":  int(now.Sub(started).Seconds()),
	}
	ev := pubsub.NewEvent("heartbeat", fields)
	ev.SetRetained(true)
	return ev
}

func (self *Heartbeat) Run(ctx context.Context) error {
	notify := self.Notify
	if notify == nil {
		notify = sdNotify
	}
	publisher := self.Publisher
	if publisher == nil {
		publisher = pubsub.Discard
	}

	if self.Ready != nil {
		select {
		case <-ctx.Done():
			return nil
		case <-self.Ready:
		}
	}
	started := time.Now()
	if err := notify(daemon.SdNotifyReady); err != nil {
		log.Println("Error notifying systemd:", err)
	}

	ticker := time.NewTicker(self.interval())
	defer ticker.Stop()
	for {
		publisher.Emit(self.event(started, time.Now()))
		select {
		case <-ctx.Done():
			if err := notify(daemon.SdNotifyStopping); err != nil {
				log.Println("Error notifying systemd:", err)
			}
			return nil
		case <-ticker.C:
		}
		if err := notify(daemon.SdNotifyWatchdog); err != nil {
			log.Println("Error notifying systemd:", err)
		}
	}
}
