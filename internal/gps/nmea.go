package gps

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentence is one checksum-validated NMEA sentence.
type Sentence struct {
	Type string
	// Fields is the comma-split NMEA payload (excluding $ and checksum).
	Fields []string
}

// Fix is one usable altitude reading extracted from a GGA sentence.
type Fix struct {
	// AltitudeM is the geoid altitude, normally in meters. Unit holds the
	// unit letter the receiver reported ("M"); callers may alert on
	// anything else, the value is passed through either way.
	AltitudeM  float64
	Unit       string
	Satellites int
	// Quality is the GGA fix quality indicator (1=GPS, 2=DGPS).
	Quality int
}

var (
	// ErrNotGGA marks sentences of a type other than GGA.
	ErrNotGGA = errors.New("gps: not a GGA sentence")
	// ErrNoFix marks GGA sentences whose fix quality is neither 1 nor 2.
	ErrNoFix = errors.New("gps: no GPS fix")
)

// ParseSentence frames and checksum-validates one NMEA line.
func ParseSentence(line string) (Sentence, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return Sentence{}, fmt.Errorf("nmea: missing '$'")
	}
	star := strings.LastIndexByte(line, '*')
	if star == -1 {
		return Sentence{}, fmt.Errorf("nmea: missing checksum")
	}
	payload := line[1:star]
	ck := strings.TrimSpace(line[star+1:])
	if len(ck) < 2 {
		return Sentence{}, fmt.Errorf("nmea: short checksum")
	}
	want, err := hex.DecodeString(ck[:2])
	if err != nil || len(want) != 1 {
		return Sentence{}, fmt.Errorf("nmea: bad checksum")
	}
	got := byte(0)
	for i := 0; i < len(payload); i++ {
		got ^= payload[i]
	}
	if got != want[0] {
		return Sentence{}, fmt.Errorf("nmea: checksum mismatch")
	}

	parts := strings.Split(payload, ",")
	typeField := parts[0]
	if len(typeField) < 3 {
		return Sentence{}, fmt.Errorf("nmea: short type")
	}
	// Accept GPxxx/GNxxx, etc; normalize to last 3 chars.
	t := typeField
	if len(t) > 3 {
		t = t[len(t)-3:]
	}
	return Sentence{Type: strings.ToUpper(t), Fields: parts}, nil
}

// GGA: Global Positioning System Fix Data
// Fields:
//
//	0: talker+type
//	1: time
//	2: latitude
//	3: N/S
//	4: longitude
//	5: E/W
//	6: fix quality (0=invalid, 1=GPS, 2=DGPS)
//	7: number of satellites
//	8: HDOP
//	9: geoid altitude
//
// 10: altitude units (M)
//
// Fix returns the altitude reading carried by a GGA sentence. Sentences of
// other types return ErrNotGGA; GGA sentences without a usable fix return
// ErrNoFix; structurally broken ones return a describing error.
func (s Sentence) Fix() (Fix, error) {
	if s.Type != "GGA" {
		return Fix{}, ErrNotGGA
	}
	f := s.Fields
	if len(f) < 11 {
		return Fix{}, fmt.Errorf("gga: want >=11 fields, got %d", len(f))
	}

	q := strings.TrimSpace(f[6])
	if q != "1" && q != "2" {
		return Fix{}, ErrNoFix
	}
	quality, _ := strconv.Atoi(q)

	alt, err := strconv.ParseFloat(strings.TrimSpace(f[9]), 64)
	if err != nil {
		return Fix{}, fmt.Errorf("gga: bad altitude %q", f[9])
	}

	// Satellite count is display-only; a blank field does not reject the fix.
	sats, _ := strconv.Atoi(strings.TrimSpace(f[7]))

	return Fix{
		AltitudeM:  alt,
		Unit:       strings.TrimSpace(f[10]),
		Satellites: sats,
		Quality:    quality,
	}, nil
}
