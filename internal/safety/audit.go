package safety

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// AuditEntry is one recorded tool invocation.
type AuditEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Tool      string         `json:"tool"`
	Params    map[string]any `json:"params"`
	Result    string         `json:"result"`
	Duration  time.Duration  `json:"duration"`
}

// AuditLogger writes audit entries as JSON lines to an underlying writer.
// It is safe for concurrent use. A nil *AuditLogger is valid and discards
// all entries, so callers never need a nil check before logging.
type AuditLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewAuditLogger returns an AuditLogger writing to w, or nil when w is nil.
func NewAuditLogger(w io.Writer) *AuditLogger {
	if w == nil {
		return nil
	}
	return &AuditLogger{w: w}
}

// Log writes entry as a single JSON line.
func (l *AuditLogger) Log(entry AuditEntry) error {
	if l == nil {
		return nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = l.w.Write(data)
	return err
}
