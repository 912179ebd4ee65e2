// Package replay reads recorded NMEA logs for offline use.
//
// Log format: line-oriented text.
//
//   - Blank lines ignored.
//   - Lines starting with '#' ignored.
//   - Every other line is one raw NMEA sentence, e.g. "$GPGGA,...*4B".
//
// This is intentionally simple and stable so recorded receiver output can be
// summarized and used in deterministic regression tests.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines returns the sentence lines of a recorded NMEA log, with blank
// lines and comments stripped. Sentence validity is not checked here; the
// consumer decides what to do with bad sentences, exactly as it would for a
// live stream.
func ReadLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 256), 4096)

	lines := make([]string, 0, 1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("replay read: %w", err)
	}
	return lines, nil
}

// ReadFile reads a recorded NMEA log from disk.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
