package mocks

import (
	"context"

	"github.com/brettbedarf/ramshell"
	"github.com/stretchr/testify/mock"
)

// MockDisplay implements ramshell.Display for testing across packages
type MockDisplay struct {
	mock.Mock
}

func (m *MockDisplay) WriteChar(c byte) {
	m.Called(c)
}

func (m *MockDisplay) WriteString(s string) {
	m.Called(s)
}

func (m *MockDisplay) WriteLine(s string) {
	m.Called(s)
}

func (m *MockDisplay) Clear() {
	m.Called()
}

var _ ramshell.Display = (*MockDisplay)(nil)

// MockLineReader implements ramshell.LineReader for testing across packages
type MockLineReader struct {
	mock.Mock
}

func (m *MockLineReader) ReadLine(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	// Handle function return types (for scripted sessions)
	if fn, ok := args.Get(0).(func(context.Context) string); ok {
		return fn(ctx), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

var _ ramshell.LineReader = (*MockLineReader)(nil)
