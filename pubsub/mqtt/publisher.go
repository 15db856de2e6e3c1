package mqtt

import (
	"log"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"

	"github.com/barnybug/pirstatus/pubsub"
)

const publishTimeout = 5 * time.Second

// Publisher for mqtt
type Publisher struct {
	broker string
	client MQTT.Client
}

// ID of Publisher
func (pub *Publisher) ID() string {
	return "mqtt: " + pub.broker
}

// Emit an event. Publish failures are logged, the sensor keeps running.
func (pub *Publisher) Emit(ev *pubsub.Event) {
	token := pub.client.Publish(Topic(ev), 1, ev.Retained, ev.Bytes())
	if !token.WaitTimeout(publishTimeout) {
		log.Println("Timed out publishing", ev.Topic)
		return
	}
	if err := token.Error(); err != nil {
		log.Println("Error publishing:", err)
	}
}

// Close disconnects, allowing in-flight messages a moment to drain.
func (pub *Publisher) Close() {
	pub.client.Disconnect(250)
}

// Topic is the mqtt topic an event is published under.
func Topic(ev *pubsub.Event) string {
	return TopicPrefix + ev.Topic
}
