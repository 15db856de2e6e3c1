package sensor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barnybug/pirstatus/config"
	"github.com/barnybug/pirstatus/hal"
	"github.com/barnybug/pirstatus/motion"
	"github.com/barnybug/pirstatus/pubsub"
	"github.com/barnybug/pirstatus/pubsub/dummy"
	"github.com/barnybug/pirstatus/services"
)

func TestInterfaces(t *testing.T) {
	var _ services.ServiceInit = (*Service)(nil)
}

func testConf() config.SensorConf {
	conf := config.Default().Sensor
	conf.Settle.Duration = 0
	conf.Poll.Duration = time.Millisecond
	return conf
}

func TestInitOpensConfiguredPin(t *testing.T) {
	var gotName string
	var gotPull hal.Pull
	s := &Service{
		Conf:   testConf(),
		Record: &motion.Record{},
		Open: func(name string, pull hal.Pull) (hal.Pin, error) {
			gotName, gotPull = name, pull
			return hal.NewMockPin(name), nil
		},
	}
	s.Conf.Pull = "up"
	require.NoError(t, s.Init())
	assert.Equal(t, "GPIO17", gotName)
	assert.Equal(t, hal.PullUp, gotPull)
}

func TestInitOpenError(t *testing.T) {
	s := &Service{
		Conf:   testConf(),
		Record: &motion.Record{},
		Open: func(name string, pull hal.Pull) (hal.Pin, error) {
			return nil, errors.New("gpio pin GPIO17 not found")
		},
	}
	assert.EqualError(t, s.Init(), "gpio pin GPIO17 not found")
}

func TestInitBadTrigger(t *testing.T) {
	s := &Service{Conf: testConf(), Record: &motion.Record{}}
	s.Conf.Trigger = "sometimes"
	assert.Error(t, s.Init())
}

func TestRunWithoutInit(t *testing.T) {
	s := &Service{}
	assert.Error(t, s.Run(context.Background()))
}

func TestRunRecordsMotion(t *testing.T) {
	pin := hal.NewMockPin("GPIO17", hal.Low, hal.High, hal.Low)
	pub := &dummy.Publisher{}
	record := &motion.Record{}
	s := &Service{
		Conf:      testConf(),
		Record:    record,
		Publisher: pub,
		Open: func(name string, pull hal.Pull) (hal.Pin, error) {
			return pin, nil
		},
	}
	require.NoError(t, s.Init())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Run(ctx) }()
	require.Eventually(t, func() bool { return len(pub.Events()) == 2 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	_, ok := record.Last()
	assert.True(t, ok)
	events := pub.Events()
	assert.Equal(t, "on", events[0].Command())
	assert.Equal(t, "off", events[1].Command())
}

type slowPublisher struct {
	dummy.Publisher
	delay time.Duration
}

func (s *slowPublisher) Emit(ev *pubsub.Event) {
	time.Sleep(s.delay)
	s.Publisher.Emit(ev)
}

func TestSlowPublisherDoesNotDelaySampling(t *testing.T) {
	levels := []hal.Level{hal.Low, hal.High, hal.Low, hal.High, hal.Low, hal.High}
	pin := hal.NewMockPin("GPIO17", levels...)
	pub := &slowPublisher{delay: 500 * time.Millisecond}
	record := &motion.Record{}
	s := &Service{
		Conf:      testConf(),
		Record:    record,
		Publisher: pub,
		Open: func(name string, pull hal.Pull) (hal.Pin, error) {
			return pin, nil
		},
	}
	require.NoError(t, s.Init())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	start := time.Now()
	go func() { done <- s.Run(ctx) }()

	// every scripted level sampled long before a single emit completes
	require.Eventually(t, func() bool { return pin.Reads() > len(levels) }, 250*time.Millisecond, time.Millisecond)
	last, ok := record.Last()
	require.True(t, ok)
	assert.Less(t, int64(last.Sub(start)), int64(250*time.Millisecond))

	cancel()
	require.NoError(t, <-done)
	assert.Len(t, pub.Events(), 5, "queued events flushed on stop")
}
