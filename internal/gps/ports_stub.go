//go:build !linux && !windows

package gps

import "fmt"

// ListPorts returns likely GNSS serial devices.
func ListPorts() ([]string, error) {
	return nil, fmt.Errorf("serial port enumeration not supported on this platform")
}
