//go:build windows

package gps

import (
	"fmt"
	"sort"

	"golang.org/x/sys/windows/registry"
)

const serialCommKey = `HARDWARE\DEVICEMAP\SERIALCOMM`

// ListPorts returns the COM ports the OS knows about, from the registry's
// serial device map. An empty list is not an error; a missing key means no
// serial driver has ever registered a port.
func ListPorts() ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, serialCommKey, registry.QUERY_VALUE)
	if err != nil {
		if err == registry.ErrNotExist {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", serialCommKey, err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", serialCommKey, err)
	}

	ports := make([]string, 0, len(names))
	for _, name := range names {
		// Value data is the friendly port name, e.g. "COM3".
		v, _, err := k.GetStringValue(name)
		if err != nil {
			continue
		}
		if v != "" {
			ports = append(ports, v)
		}
	}
	sort.Strings(ports)
	return ports, nil
}
