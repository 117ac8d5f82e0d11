package logging

import (
	"fmt"
	"io"
	"sync"
)

// Journal is an append-only in-memory log sink. Entries are held until
// Flush writes them out.
type Journal struct {
	mu      sync.Mutex
	entries [][]byte
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Write appends one encoded entry. It implements io.Writer so the
// journal can back a zap core.
func (j *Journal) Write(p []byte) (int, error) {
	entry := make([]byte, len(p))
	copy(entry, p)

	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()
	return len(p), nil
}

// Sync implements zapcore.WriteSyncer. Entries stay buffered until Flush.
func (j *Journal) Sync() error {
	return nil
}

// Len returns the number of buffered entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// Flush writes every buffered entry to w in order and empties the
// journal. Entries that could not be written stay buffered.
func (j *Journal) Flush(w io.Writer) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i, entry := range j.entries {
		if _, err := w.Write(entry); err != nil {
			j.entries = j.entries[i:]
			return fmt.Errorf("logging: flushing journal: %w", err)
		}
	}
	j.entries = nil
	return nil
}
