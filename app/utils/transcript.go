package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TranscriptLogger appends every request/reply pair to a session log file
// and keeps the most recent exchanges in a ring buffer for quick recall.
type TranscriptLogger struct {
	mu    sync.RWMutex
	file  *os.File
	buf   []string
	cap   int
	start int
	size  int
}

func NewTranscriptLogger(session string, capacity int) (*TranscriptLogger, error) {
	if capacity <= 0 {
		capacity = 1
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Join("logs", fmt.Sprintf("%s.log", session)),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &TranscriptLogger{
		file: file,
		buf:  make([]string, capacity),
		cap:  capacity,
	}, nil
}

// Record stores one exchange. The reply may be empty for dropped input.
func (t *TranscriptLogger) Record(request, reply string) {
	line := fmt.Sprintf("%s Q: %s | A: %s", time.Now().Format(time.RFC3339), request, reply)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.push(line)
	if _, err := fmt.Fprintln(t.file, line); err != nil {
		log.Printf("⚠️ Could not write transcript line: %v", err)
	}
}

func (t *TranscriptLogger) push(s string) {
	if t.size < t.cap {
		pos := (t.start + t.size) % t.cap
		t.buf[pos] = s
		t.size++
		return
	}
	t.buf[t.start] = s
	t.start = (t.start + 1) % t.cap
}

// LastExchanges returns up to n most recent lines, oldest first.
func (t *TranscriptLogger) LastExchanges(n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > t.size {
		n = t.size
	}
	out := make([]string, 0, n)
	for i := t.size - n; i < t.size; i++ {
		pos := (t.start + i) % t.cap
		out = append(out, t.buf[pos])
	}
	return out
}

func (t *TranscriptLogger) Close() error {
	if t.file != nil {
		return t.file.Close()
	}
	return nil
}
