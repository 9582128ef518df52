package tuih

import (
	"fmt"
	"time"
)

// LogEntry is one diagnostic record in a LogBuffer.
type LogEntry struct {
	Time    time.Time
	Level   string
	Source  string
	Message string
}

// String formats the entry for display, e.g. in a debug overlay Text
// widget.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] %s (%s): %s", e.Time.Format(time.TimeOnly), e.Level, e.Source, e.Message)
}

// LogBuffer is a fixed-size ring buffer of diagnostic entries, owned by a
// Root. A TUI application owns the whole terminal, so there is nowhere sane
// to print diagnostics to — they are captured here instead and rendered as
// an ordinary Text widget (see builder.go's DebugLog), never written to the
// real stdout/stderr while the app is running.
type LogBuffer struct {
	entries []LogEntry
	start   int
	count   int
}

// NewLogBuffer creates a ring buffer holding up to size entries.
func NewLogBuffer(size int) *LogBuffer {
	if size <= 0 {
		size = 1
	}
	return &LogBuffer{entries: make([]LogEntry, size)}
}

// Add appends a formatted entry, evicting the oldest one once the buffer is
// full.
func (b *LogBuffer) Add(source, level, format string, args ...any) {
	index := (b.start + b.count) % len(b.entries)
	b.entries[index] = LogEntry{
		Time:    time.Now(),
		Level:   level,
		Source:  source,
		Message: fmt.Sprintf(format, args...),
	}
	if b.count < len(b.entries) {
		b.count++
	} else {
		b.start = (b.start + 1) % len(b.entries)
	}
}

// Len reports how many entries are currently stored.
func (b *LogBuffer) Len() int {
	return b.count
}

// Entry returns the i-th entry in insertion order (0 is oldest).
func (b *LogBuffer) Entry(i int) LogEntry {
	return b.entries[(b.start+i)%len(b.entries)]
}

// Lines renders every entry as a slice of strings, newest first — the shape
// a Text widget's multi-line string expects.
func (b *LogBuffer) Lines() []string {
	lines := make([]string, b.count)
	for i := 0; i < b.count; i++ {
		lines[i] = b.Entry(b.count - 1 - i).String()
	}
	return lines
}
