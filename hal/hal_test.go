package hal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleMockPin() {
	pin := NewMockPin("GPIO17", Low, High)
	for i := 0; i < 3; i++ {
		level, _ := pin.Read()
		fmt.Println(level)
	}
	// Output:
	// Low
	// High
	// High
}

func TestMockPinError(t *testing.T) {
	pin := NewMockPin("GPIO17", High)
	pin.Err = errors.New("i/o error")
	_, err := pin.Read()
	assert.EqualError(t, err, "i/o error")
	assert.Equal(t, 1, pin.Reads())
}

func TestMockPinSet(t *testing.T) {
	pin := NewMockPin("GPIO17")
	level, err := pin.Read()
	assert.NoError(t, err)
	assert.Equal(t, Low, level)
	pin.Set(High)
	level, _ = pin.Read()
	assert.Equal(t, High, level)
}

func TestParsePull(t *testing.T) {
	for s, want := range map[string]Pull{"": PullDown, "down": PullDown, "UP": PullUp, "none": PullNone, "float": PullNone} {
		got, err := ParsePull(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParsePull("sideways")
	assert.Error(t, err)
}
