// Package flightlog mirrors console output into a per-run log file.
//
// Each run gets its own file named by the Unix start time, so consecutive
// flights never clobber each other.
package flightlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Log is one open per-run log file.
type Log struct {
	// Path is the log file's location on disk.
	Path string

	f *os.File
}

// Create opens a fresh log file under dir, creating dir if needed.
func Create(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("flightlog: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.txt", time.Now().Unix()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("flightlog: %w", err)
	}
	return &Log{Path: path, f: f}, nil
}

// Tee returns a writer that duplicates everything to w and the log file.
func (l *Log) Tee(w io.Writer) io.Writer {
	return io.MultiWriter(w, l.f)
}

func (l *Log) Close() error {
	return l.f.Close()
}
