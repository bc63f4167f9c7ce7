// Package logbuf keeps the most recent log lines in memory.
package logbuf

import (
	"sync"
)

// LogBuffer is a thread-safe circular buffer of log lines
type LogBuffer struct {
	lines   []string
	start   int
	maxSize int
	dropped int
	mu      sync.Mutex
}

// NewLogBuffer creates a new log buffer with specified max size
func NewLogBuffer(maxSize int) *LogBuffer {
	if maxSize < 10 {
		maxSize = 10
	}
	return &LogBuffer{
		lines:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add stores a line, pushing out the oldest one when full.
func (b *LogBuffer) Add(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.lines) < b.maxSize {
		b.lines = append(b.lines, line)
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % b.maxSize
	b.dropped++
}

// Lines returns the kept lines, oldest first.
func (b *LogBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]string, 0, len(b.lines))
	result = append(result, b.lines[b.start:]...)
	result = append(result, b.lines[:b.start]...)
	return result
}

// Dropped tells how many lines were pushed out.
func (b *LogBuffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}
