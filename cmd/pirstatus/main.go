// Command pirstatus watches a PIR motion sensor and serves the time of the
// last detected motion on a web page.
//
// It is meant to run under systemd (see contrib/pirstatus.service), with a
// cloudflared tunnel publishing the page.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/barnybug/pirstatus/config"
	"github.com/barnybug/pirstatus/metrics"
	"github.com/barnybug/pirstatus/motion"
	"github.com/barnybug/pirstatus/pubsub"
	"github.com/barnybug/pirstatus/pubsub/mqtt"
	"github.com/barnybug/pirstatus/services"
	"github.com/barnybug/pirstatus/services/sensor"
	"github.com/barnybug/pirstatus/services/status"
	"github.com/barnybug/pirstatus/util"
)

const name = "pirstatus"

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pirstatus [-config FILE]")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.ConfigPath(name + ".yml")
	}
	conf, err := config.Open(util.ExpandUser(path))
	if err != nil {
		return nil, err
	}
	if url := os.Getenv("GOHOME_MQTT"); url != "" {
		conf.Endpoints.Mqtt.Broker = url
	}
	return conf, nil
}

func newPublisher(conf *config.Config) (pubsub.Publisher, error) {
	url := conf.Endpoints.Mqtt.Broker
	if url == "" {
		return pubsub.Discard, nil
	}
	broker, err := mqtt.NewBroker(url, name)
	if err != nil {
		return nil, err
	}
	log.Println("Publishing events to", broker.ID())
	return broker.Publisher(), nil
}

func newServices(conf *config.Config, pub pubsub.Publisher) []services.Service {
	record := &motion.Record{}
	m := metrics.New()
	listening := make(chan struct{})
	return []services.Service{
		&sensor.Service{Conf: conf.Sensor, Record: record, Publisher: pub, Metrics: m},
		&status.Service{Addr: conf.Http.Listen, Record: record, Refresh: conf.Http.Refresh, Metrics: m, Listening: listening},
		&services.Heartbeat{Name: name, Publisher: pub, Interval: conf.Heartbeat.Duration, Ready: listening},
	}
}

func run(configPath string) error {
	conf, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	pub, err := newPublisher(conf)
	if err != nil {
		return err
	}
	defer pub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return services.Launch(ctx, newServices(conf, pub)...)
}

func main() {
	configPath := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/pirstatus/pirstatus.yml)")
	flag.Usage = usage
	flag.Parse()
	services.SetupLogging()

	if err := run(*configPath); err != nil {
		// exit non-zero so systemd restarts us
		log.Println("Error:", err)
		os.Exit(1)
	}
	log.Println("Stopped")
}
