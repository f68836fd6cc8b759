// Package potatolog provides an in-memory sink for zerolog's JSON output, so
// that the log lines a layout pass produced can be handed back to the caller
// alongside its result.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// LogEntry is a single decoded log entry.
type LogEntry = map[string]any

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It is safe for concurrent use.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// NewMemoryLogReaderWriter returns an empty in-memory log.
func NewMemoryLogReaderWriter() *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{log: []LogEntry{}}
}

// Write decodes a single JSON log line and appends it to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// AtLeast returns the entries whose level is at or above the given one
// (e.g., warn yields warnings, errors, ...). Entries without a recognizable
// level are always included.
func (w *MemoryLogReaderWriter) AtLeast(level zerolog.Level) []LogEntry {
	result := []LogEntry{}
	for _, entry := range w.Get() {
		name, _ := entry[zerolog.LevelFieldName].(string)
		entryLevel, err := zerolog.ParseLevel(name)
		if err != nil || entryLevel >= level {
			result = append(result, entry)
		}
	}
	return result
}
