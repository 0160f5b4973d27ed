package yarecorder

import (
	"context"
	"slices"
	"sync"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
)

// Memory is an in-process Recorder.
type Memory struct {
	mu    sync.Mutex
	calls []SentCall
}

// NewMemory returns an empty Memory recorder.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(_ context.Context, call SentCall) yaerrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, call)

	return nil
}

// All returns a copy of the recorded calls.
func (m *Memory) All(_ context.Context) ([]SentCall, yaerrors.Error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.calls), nil
}

func (m *Memory) Reset(_ context.Context) yaerrors.Error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = nil

	return nil
}
