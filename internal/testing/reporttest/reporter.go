// Package reporttest provides Reporter doubles for tests.
package reporttest

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockReporter is a testify mock of domain.Reporter.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Info(msg string, args ...any)    { m.Called(msg, args) }
func (m *MockReporter) Success(msg string, args ...any) { m.Called(msg, args) }
func (m *MockReporter) Warn(msg string, args ...any)    { m.Called(msg, args) }
func (m *MockReporter) Error(msg string, args ...any)   { m.Called(msg, args) }

// Level of a recorded line.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Line is one recorded report.
type Line struct {
	Level Level
	Msg   string
	Args  []any
}

// Recorder keeps every reported line in order.
type Recorder struct {
	mu    sync.Mutex
	Lines []Line
}

func (r *Recorder) add(level Level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, Line{Level: level, Msg: msg, Args: args})
}

func (r *Recorder) Info(msg string, args ...any)    { r.add(LevelInfo, msg, args) }
func (r *Recorder) Success(msg string, args ...any) { r.add(LevelSuccess, msg, args) }
func (r *Recorder) Warn(msg string, args ...any)    { r.add(LevelWarn, msg, args) }
func (r *Recorder) Error(msg string, args ...any)   { r.add(LevelError, msg, args) }

// Messages returns the messages reported at level.
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, l := range r.Lines {
		if l.Level == level {
			out = append(out, l.Msg)
		}
	}
	return out
}
