package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RefreshRecord captures one operator-initiated fleet refresh for audit:
// what the roster looked like after the reload and which fetches failed.
type RefreshRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Sequence   int       `json:"sequence"`
	Bots       int       `json:"bots"`
	ActiveBots int       `json:"active_bots"`
	Symbols    []string  `json:"symbols,omitempty"`

	IndicatorErrors map[string]string `json:"indicator_errors,omitempty"`
	StatsError      string            `json:"stats_error,omitempty"`
	Success         bool              `json:"success"`
	ErrorMessage    string            `json:"error_message,omitempty"`
}

// Writer persists refresh records to a directory as JSON files (journal style).
type Writer struct {
	dir   string
	seq   int
	nowFn func() time.Time
}

// NewWriter constructs a journal writer.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "journal"
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Writer{dir: dir, nowFn: time.Now}
}

// WriteRefresh writes a refresh record to a timestamped JSON file.
func (w *Writer) WriteRefresh(rec *RefreshRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("journal: nil record")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}
	w.seq++
	rec.Sequence = w.seq
	name := fmt.Sprintf("refresh_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), w.seq)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
