package gps

// Package gps provides a minimal NMEA reader for USB serial GNSS receivers.
//
// It is intentionally small and geared toward a ground-referenced altimeter:
// - Validate sentence checksums
// - Parse GGA for altitude, satellite count, and fix quality
// - Open the serial device raw and read it line-by-line, blocking
