// Package errlog appends scrape failures to per-country text files so a long
// collection run leaves a trail of which storefronts misbehaved.
package errlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const timestampLayout = "20060102_15:04:05"

// Log writes append-only `<timestamp> - <message>` lines to
// `<dir>/<country>_log.txt`, creating the directory on first write.
type Log struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
}

func New(dir string) *Log {
	return &Log{dir: dir, now: time.Now}
}

// Append records a failure for the given storefront country. Write failures
// are reported through slog and otherwise swallowed, appending diagnostics
// must never fail the scrape itself.
func (l *Log) Append(country, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		slog.Warn("create error log directory", "dir", l.dir, "err", err)
		return
	}

	path := filepath.Join(l.dir, country+"_log.txt")
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("open error log", "path", path, "err", err)
		return
	}
	defer fh.Close()

	line := fmt.Sprintf("%s - %s \n", l.now().Format(timestampLayout), message)
	if _, err := fh.WriteString(line); err != nil {
		slog.Warn("append error log", "path", path, "err", err)
	}
}
