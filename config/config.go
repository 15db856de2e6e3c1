package config

import (
	"io"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/barnybug/pirstatus/hal"
	"github.com/barnybug/pirstatus/motion"
)

type Duration struct {
	time.Duration
}

func (self *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	val, err := time.ParseDuration(value)
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", value)
	}
	self.Duration = val
	return nil
}

type SensorConf struct {
	Pin     string
	Pull    string
	Poll    Duration
	Settle  Duration
	Trigger string
}

type HttpConf struct {
	Listen  string
	Refresh int
}

type EndpointsConf struct {
	Mqtt struct {
		Broker string
	}
}

// Configuration structure
type Config struct {
	Sensor    SensorConf
	Http      HttpConf
	Endpoints EndpointsConf
	Heartbeat Duration
}

// Default configuration: a PIR on BCM pin 17, served on port 8080.
func Default() *Config {
	return &Config{
		Sensor: SensorConf{
			Pin:     "GPIO17",
			Pull:    "down",
			Poll:    Duration{100 * time.Millisecond},
			Settle:  Duration{2 * time.Second},
			Trigger: "edge",
		},
		Http: HttpConf{
			Listen:  ":8080",
			Refresh: 5,
		},
		Heartbeat: Duration{60 * time.Second},
	}
}

// Open configuration from disk. A missing file gives the defaults.
func Open(p string) (*Config, error) {
	file, err := os.Open(p)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening config")
	}
	defer file.Close()
	return OpenReader(file)
}

// Open configuration from a reader.
func OpenReader(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return OpenRaw(data)
}

// Open configuration from []byte. Keys not present keep their defaults.
func OpenRaw(data []byte) (*Config, error) {
	self := Default()
	if err := yaml.UnmarshalStrict(data, self); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := self.Validate(); err != nil {
		return nil, err
	}
	return self, nil
}

func (self *Config) Validate() error {
	if self.Sensor.Pin == "" {
		return errors.New("sensor.pin is required")
	}
	if _, err := hal.ParsePull(self.Sensor.Pull); err != nil {
		return errors.Wrap(err, "sensor.pull")
	}
	if _, err := motion.ParseTrigger(self.Sensor.Trigger); err != nil {
		return errors.Wrap(err, "sensor.trigger")
	}
	if self.Sensor.Poll.Duration <= 0 {
		return errors.New("sensor.poll must be positive")
	}
	if self.Sensor.Settle.Duration < 0 {
		return errors.New("sensor.settle must not be negative")
	}
	if self.Http.Listen == "" {
		return errors.New("http.listen is required")
	}
	if self.Http.Refresh < 0 {
		return errors.New("http.refresh must not be negative")
	}
	if self.Heartbeat.Duration <= 0 {
		return errors.New("heartbeat must be positive")
	}
	return nil
}

// helpers

// Resolve a configuration file under .config/pirstatus
func ConfigPath(p string) string {
	config := os.Getenv("XDG_CONFIG_HOME")
	if config == "" {
		config = path.Join(os.Getenv("HOME"), ".config")
	}
	return path.Join(config, "pirstatus", p)
}
