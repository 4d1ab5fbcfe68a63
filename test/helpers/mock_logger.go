package helpers

import (
	"sync"
)

// LogEntry is a single captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// MockLogger is an in-memory implementation of logging.Logger for testing
type MockLogger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// NewMockLogger creates a new mock logger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Log records the entry (in-memory only for testing)
func (m *MockLogger) Log(level, message string, metadata map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// FindByMessage returns the first entry with the given message, or nil
func (m *MockLogger) FindByMessage(message string) *LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Entries {
		if m.Entries[i].Message == message {
			entry := m.Entries[i]
			return &entry
		}
	}
	return nil
}

// CountByLevel returns how many entries were logged at level
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, e := range m.Entries {
		if e.Level == level {
			count++
		}
	}
	return count
}
