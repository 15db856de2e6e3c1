package mqtt

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

// TopicPrefix is prepended to every event topic, so the sensor's events sit
// alongside other home automation services on a shared broker.
const TopicPrefix = "gohome/"

type Broker struct {
	broker string
	client MQTT.Client
}

func clientID(name string) string {
	hostname, _ := os.Hostname()
	pid := os.Getpid()
	r := rand.Int()
	return fmt.Sprintf("%s/%s-%d-%d", name, hostname, pid, r)
}

func createClient(broker, name string) (MQTT.Client, error) {
	opts := MQTT.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID(name))
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)

	client := MQTT.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.Wrapf(token.Error(), "connecting to mqtt %s", broker)
	}
	return client, nil
}

func NewBroker(broker, name string) (*Broker, error) {
	client, err := createClient(broker, name)
	if err != nil {
		return nil, err
	}
	return &Broker{broker: broker, client: client}, nil
}

func (self *Broker) ID() string {
	return "mqtt: " + self.broker
}

func (self *Broker) Publisher() *Publisher {
	return &Publisher{broker: self.broker, client: self.client}
}
