//go:build linux

package gps

import (
	"fmt"
	"os"
)

// ListPorts returns likely GNSS serial devices. Keep it intentionally tiny
// and predictable: u-blox class receivers show up as ttyACM* or ttyUSB*.
func ListPorts() ([]string, error) {
	ports := []string{}
	for i := 0; i < 10; i++ {
		p := fmt.Sprintf("/dev/ttyACM%d", i)
		if _, err := os.Stat(p); err == nil {
			ports = append(ports, p)
		}
	}
	for i := 0; i < 10; i++ {
		p := fmt.Sprintf("/dev/ttyUSB%d", i)
		if _, err := os.Stat(p); err == nil {
			ports = append(ports, p)
		}
	}
	return ports, nil
}
