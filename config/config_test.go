package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleOpenRaw() {
	conf, _ := OpenRaw([]byte(ExampleYaml))
	fmt.Println(conf.Sensor.Pin, conf.Sensor.Poll, conf.Sensor.Trigger)
	fmt.Println(conf.Http.Listen)
	// Output:
	// GPIO27 50ms level
	// 127.0.0.1:8081
}

func TestDefaults(t *testing.T) {
	conf, err := OpenRaw([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, "GPIO17", conf.Sensor.Pin)
	assert.Equal(t, "down", conf.Sensor.Pull)
	assert.Equal(t, 100*time.Millisecond, conf.Sensor.Poll.Duration)
	assert.Equal(t, 2*time.Second, conf.Sensor.Settle.Duration)
	assert.Equal(t, "edge", conf.Sensor.Trigger)
	assert.Equal(t, ":8080", conf.Http.Listen)
	assert.Equal(t, 5, conf.Http.Refresh)
	assert.Equal(t, "", conf.Endpoints.Mqtt.Broker)
	assert.Equal(t, time.Minute, conf.Heartbeat.Duration)
}

func TestPartialOverride(t *testing.T) {
	conf, err := OpenRaw([]byte("sensor:\n  pin: GPIO4\n"))
	require.NoError(t, err)
	assert.Equal(t, "GPIO4", conf.Sensor.Pin)
	assert.Equal(t, 100*time.Millisecond, conf.Sensor.Poll.Duration)
	assert.Equal(t, ":8080", conf.Http.Listen)
}

func TestExampleConfig(t *testing.T) {
	assert.Equal(t, "up", ExampleConfig.Sensor.Pull)
	assert.Equal(t, time.Second, ExampleConfig.Sensor.Settle.Duration)
	assert.Equal(t, 10, ExampleConfig.Http.Refresh)
	assert.Equal(t, "tcp://127.0.0.1:1883", ExampleConfig.Endpoints.Mqtt.Broker)
	assert.Equal(t, 30*time.Second, ExampleConfig.Heartbeat.Duration)
}

func TestBadConfig(t *testing.T) {
	cases := map[string]string{
		"bad duration": "sensor:\n  poll: soon\n",
		"zero poll":    "sensor:\n  poll: 0s\n",
		"bad trigger":  "sensor:\n  trigger: sometimes\n",
		"bad pull":     "sensor:\n  pull: sideways\n",
		"empty pin":    "sensor:\n  pin: \"\"\n",
		"unknown key":  "sensors:\n  pin: GPIO4\n",
		"no listen":    "http:\n  listen: \"\"\n",
		"bad refresh":  "http:\n  refresh: -1\n",
	}
	for name, yml := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := OpenRaw([]byte(yml))
			assert.Error(t, err)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	conf, err := Open(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestOpenFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "pirstatus.yml")
	require.NoError(t, os.WriteFile(p, []byte(ExampleYaml), 0o600))
	conf, err := Open(p)
	require.NoError(t, err)
	assert.Equal(t, ExampleConfig, conf)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	assert.Equal(t, "/etc/xdg/pirstatus/pirstatus.yml", ConfigPath("pirstatus.yml"))

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/pi")
	assert.Equal(t, "/home/pi/.config/pirstatus/pirstatus.yml", ConfigPath("pirstatus.yml"))
}

func TestContribConfig(t *testing.T) {
	conf, err := Open("../contrib/pirstatus.yml")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}
