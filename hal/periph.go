package hal

import (
	"strconv"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

type periphPin struct {
	pin gpio.PinIO
}

func (p *periphPin) Name() string {
	return p.pin.Name()
}

func (p *periphPin) Read() (Level, error) {
	return Level(p.pin.Read() == gpio.High), nil
}

func periphPull(pull Pull) gpio.Pull {
	switch pull {
	case PullUp:
		return gpio.PullUp
	case PullNone:
		return gpio.Float
	}
	return gpio.PullDown
}

// Open initialises the host drivers and configures the named pin as an input.
// Pins are addressed as periph names ("GPIO17") or bare BCM numbers ("17").
func Open(name string, pull Pull) (Pin, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising gpio")
	}
	if _, err := strconv.Atoi(name); err == nil {
		name = "GPIO" + name
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.Errorf("gpio pin %s not found", name)
	}
	if err := p.In(periphPull(pull), gpio.NoEdge); err != nil {
		return nil, errors.Wrapf(err, "configuring %s as input", name)
	}
	return &periphPin{pin: p}, nil
}
