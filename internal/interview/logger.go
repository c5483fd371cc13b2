package interview

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/models"
)

// EventSink receives every event a session emits.
type EventSink interface {
	Log(ev models.Event) error
	Close() error
}

// JSONLogger writes session events as newline-delimited JSON (NDJSON).
type JSONLogger struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
	path string
}

// NewJSONLogger creates a logger that appends NDJSON to path. Parent
// directories are created automatically.
func NewJSONLogger(path string) (*JSONLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating session log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening session log: %w", err)
	}

	return &JSONLogger{file: f, enc: json.NewEncoder(f), path: path}, nil
}

// Log writes a single event as one JSON line.
func (l *JSONLogger) Log(ev models.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(ev)
}

// Close closes the underlying file.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Path returns the log file path.
func (l *JSONLogger) Path() string { return l.path }

// NopSink discards all events. It is the default when session logging
// is disabled.
type NopSink struct{}

// Log is a no-op.
func (NopSink) Log(models.Event) error { return nil }

// Close is a no-op.
func (NopSink) Close() error { return nil }

// DefaultLogPath returns a unique session log path inside dir for the
// given interview. The uuid fragment keeps repeated runs against the
// same interview from appending to one file.
func DefaultLogPath(dir string, interviewID int) string {
	ts := time.Now().UTC().Format("20060102T150405Z")
	name := fmt.Sprintf("%s-%d-%s-interview.jsonl", ts, interviewID, uuid.NewString()[:8])
	return filepath.Join(dir, name)
}
