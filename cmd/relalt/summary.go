package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"relalt/internal/gps"
	"relalt/internal/replay"
)

type logSummary struct {
	Lines      int
	Bad        int // framing or checksum failures
	NoFix      int // GGA sentences without a usable fix
	Fixes      int // accepted altitude readings
	TypeCounts map[string]int

	MinAltM float64
	MaxAltM float64
}

// summarizeNMEALog classifies recorded sentences the same way the live
// reader does, without any serial I/O.
func summarizeNMEALog(lines []string) logSummary {
	s := logSummary{TypeCounts: map[string]int{}}
	for _, line := range lines {
		s.Lines++

		sent, err := gps.ParseSentence(line)
		if err != nil {
			s.Bad++
			continue
		}
		s.TypeCounts[sent.Type]++

		fix, err := sent.Fix()
		if err != nil {
			if errors.Is(err, gps.ErrNoFix) {
				s.NoFix++
			} else if !errors.Is(err, gps.ErrNotGGA) {
				s.Bad++
			}
			continue
		}

		if s.Fixes == 0 || fix.AltitudeM < s.MinAltM {
			s.MinAltM = fix.AltitudeM
		}
		if s.Fixes == 0 || fix.AltitudeM > s.MaxAltM {
			s.MaxAltM = fix.AltitudeM
		}
		s.Fixes++
	}
	return s
}

func printLogSummary(w io.Writer, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("path is empty")
	}

	lines, err := replay.ReadFile(path)
	if err != nil {
		return err
	}

	s := summarizeNMEALog(lines)

	fmt.Fprintf(w, "path: %s\n", path)
	fmt.Fprintf(w, "sentences: %d\n", s.Lines)
	fmt.Fprintf(w, "bad: %d\n", s.Bad)
	fmt.Fprintf(w, "no_fix: %d\n", s.NoFix)
	fmt.Fprintf(w, "fixes: %d\n", s.Fixes)
	if s.Fixes > 0 {
		fmt.Fprintf(w, "altitude_range_m: %.1f..%.1f\n", s.MinAltM, s.MaxAltM)
	}

	keys := make([]string, 0, len(s.TypeCounts))
	for k := range s.TypeCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(w, "type_counts:\n")
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %d\n", k, s.TypeCounts[k])
	}
	return nil
}
