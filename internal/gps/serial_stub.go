//go:build !linux && !windows

package gps

import (
	"fmt"
	"os"
)

// Open opens a serial device for reading NMEA.
func Open(path string, baud int) (*os.File, error) {
	return nil, fmt.Errorf("gps serial not supported on this platform")
}
