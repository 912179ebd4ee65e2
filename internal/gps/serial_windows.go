//go:build windows

package gps

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Open opens a COM port raw at the given baud rate for reading NMEA.
func Open(name string, baud int) (*os.File, error) {
	if baud <= 0 {
		return nil, fmt.Errorf("unsupported baud %d", baud)
	}

	// COM10 and up need the device-namespace prefix; it is harmless for
	// COM1..COM9 as well.
	path := name
	if !strings.HasPrefix(path, `\\.\`) {
		path = `\\.\` + path
	}
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	h, err := windows.CreateFile(pathp,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0, nil, windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	// Best-effort: if anything below fails, close the handle.
	ok := false
	defer func() {
		if !ok {
			_ = windows.CloseHandle(h)
		}
	}()

	var dcb windows.DCB
	dcb.DCBlength = uint32(unsafe.Sizeof(dcb))
	if err := windows.GetCommState(h, &dcb); err != nil {
		return nil, fmt.Errorf("get comm state %s: %w", name, err)
	}
	dcb.BaudRate = uint32(baud)
	dcb.ByteSize = 8
	dcb.Parity = windows.NOPARITY
	dcb.StopBits = windows.ONESTOPBIT
	if err := windows.SetCommState(h, &dcb); err != nil {
		return nil, fmt.Errorf("set comm state %s: %w", name, err)
	}

	// Return as soon as one byte is available, otherwise block (this
	// MAXDWORD combination is the documented "wait for first byte" special
	// case). A silent receiver hangs the read, which is the documented
	// behavior of this tool.
	const maxDWORD = 0xFFFFFFFF
	timeouts := windows.CommTimeouts{
		ReadIntervalTimeout:        maxDWORD,
		ReadTotalTimeoutMultiplier: maxDWORD,
		ReadTotalTimeoutConstant:   maxDWORD - 1,
	}
	if err := windows.SetCommTimeouts(h, &timeouts); err != nil {
		return nil, fmt.Errorf("set comm timeouts %s: %w", name, err)
	}

	f := os.NewFile(uintptr(h), name)
	if f == nil {
		return nil, fmt.Errorf("os.NewFile failed")
	}
	ok = true
	return f, nil
}
