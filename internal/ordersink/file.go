package ordersink

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// FileSink appends human-readable order records to a plain text file.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Append writes the record followed by a blank line, matching the format
// operators already read.
func (s *FileSink) Append(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open order log: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(rec.Text() + "\n\n"); err != nil {
		return fmt.Errorf("write order log: %w", err)
	}
	return nil
}
