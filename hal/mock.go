package hal

import "sync"

// MockPin replays scripted levels. Once the script is exhausted the last
// level keeps being returned. Err, when set, is returned by every Read.
type MockPin struct {
	PinName string
	Err     error

	mu     sync.Mutex
	levels []Level
	last   Level
	reads  int
}

func NewMockPin(name string, levels ...Level) *MockPin {
	return &MockPin{PinName: name, levels: levels}
}

func (m *MockPin) Name() string {
	return m.PinName
}

func (m *MockPin) Read() (Level, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.Err != nil {
		return Low, m.Err
	}
	if len(m.levels) > 0 {
		m.last = m.levels[0]
		m.levels = m.levels[1:]
	}
	return m.last, nil
}

// Set queues further levels.
func (m *MockPin) Set(levels ...Level) {
	m.mu.Lock()
	m.levels = append(m.levels, levels...)
	m.mu.Unlock()
}

// Reads is the number of Read calls so far.
func (m *MockPin) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}
