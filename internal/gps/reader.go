package gps

import (
	"bufio"
	"io"
	"strings"
)

// Reader pulls altitude fixes out of a line-oriented NMEA stream.
//
// Reads are synchronous and block until the underlying stream produces a
// usable GGA sentence; with a quiet receiver a Next call never returns.
// Non-NMEA chatter, failed checksums, non-GGA sentences, fixless GGA and
// malformed altitude fields are all skipped in place.
type Reader struct {
	s *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	// NMEA sentences are typically < 82 chars, but allow some headroom.
	s.Buffer(make([]byte, 0, 256), 4096)
	return &Reader{s: s}
}

// Next returns the next usable altitude fix. The error is io.EOF once the
// stream ends cleanly (a file or pipe input), or the underlying read error.
func (r *Reader) Next() (Fix, error) {
	for {
		if !r.s.Scan() {
			err := r.s.Err()
			if err == nil {
				err = io.EOF
			}
			return Fix{}, err
		}
		line := strings.TrimSpace(r.s.Text())
		if line == "" || !strings.HasPrefix(line, "$") {
			continue
		}
		sent, err := ParseSentence(line)
		if err != nil {
			continue
		}
		fix, err := sent.Fix()
		if err != nil {
			continue
		}
		return fix, nil
	}
}
