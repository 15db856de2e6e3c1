package config

var ExampleYaml = `
sensor:
  pin: GPIO27
  pull: up
  poll: 50ms
  settle: 1s
  trigger: level
http:
  listen: 127.0.0.1:8081
  refresh: 10
endpoints:
  mqtt:
    broker: tcp://127.0.0.1:1883
heartbeat: 30s
`

var ExampleConfig = func() *Config {
	conf, err := OpenRaw([]byte(ExampleYaml))
	if err != nil {
		panic(err)
	}
	return conf
}()
