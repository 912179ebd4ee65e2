package replay

import (
	"strings"
	"testing"
)

func TestReadLines_SkipsBlanksAndComments(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"# recorded 2024-05-01",
		"",
		"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47",
		"   ",
		"# mid-log note",
		"$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A",
	}, "\n"))

	lines, err := ReadLines(in)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len=%d want 2: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "$GPGGA") || !strings.HasPrefix(lines[1], "$GPRMC") {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestReadLines_Empty(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("\n# only a comment\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("len=%d want 0", len(lines))
	}
}
