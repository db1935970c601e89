// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package relay

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// AllOutputs is the bitbang direction mask driving the 8 pins as outputs.
const AllOutputs = 0xFF

// ErrNoDevice is returned by Resolve when no device is assigned the requested
// port.
var ErrNoDevice = errors.New("relay: no relay device found")

// Bus enumerates the devices that may be a relay board.
//
// d2xx.Bus implements it.
type Bus interface {
	// NumDevices returns the number of devices currently connected.
	NumDevices() (int, error)
	// Open opens the device at enumeration index i.
	Open(i int) (Handle, error)
}

// Handle is an opened device. Only one is opened at a time and it must be
// closed before the next one is opened.
type Handle interface {
	// PortName returns the serial port name the OS assigned to the device,
	// e.g. "COM3".
	PortName() (string, error)
	// Bitbang switches the device to asynchronous bitbang mode; a 1 in mask
	// makes the pin an output.
	Bitbang(mask byte) error
	// ReadPins returns the current value of the 8 bit pin latch.
	ReadPins() (byte, error)
	Close() error
}

// Resolve returns the enumeration index of the device whose assigned port is
// prefix followed by port, and leaves it in bitbang mode with all pins as
// outputs.
//
// Devices that can't be opened or don't report a port are skipped. A failure
// to close a device or to set the bitbang mode aborts the scan. When no
// device matches, the returned error wraps ErrNoDevice and the errors of the
// skipped devices.
func Resolve(b Bus, port int, prefix string) (int, error) {
	num, err := b.NumDevices()
	if err != nil {
		return -1, err
	}
	var skipped []error
	for i := 0; i < num; i++ {
		h, err := b.Open(i)
		if err != nil {
			log.Printf("relay: device #%d: %v", i, err)
			skipped = append(skipped, fmt.Errorf("device #%d: %w", i, err))
			continue
		}
		p, err := portNumber(h, prefix)
		if err != nil {
			log.Printf("relay: device #%d: %v", i, err)
			skipped = append(skipped, fmt.Errorf("device #%d: %w", i, err))
			if err := h.Close(); err != nil {
				return -1, err
			}
			continue
		}
		log.Printf("relay: device #%d is on %s%d", i, prefix, p)
		if p != port {
			if err := h.Close(); err != nil {
				return -1, err
			}
			continue
		}
		if err := h.Bitbang(AllOutputs); err != nil {
			h.Close()
			return -1, err
		}
		if err := h.Close(); err != nil {
			return -1, err
		}
		return i, nil
	}
	err = fmt.Errorf("%w at %s%d", ErrNoDevice, prefix, port)
	if len(skipped) != 0 {
		err = errors.Join(append([]error{err}, skipped...)...)
	}
	return -1, err
}

// ReadState opens the device at index i, reads its output latch and closes
// it.
func ReadState(b Bus, i int) (State, error) {
	if i < 0 {
		return 0, ErrNoDevice
	}
	h, err := b.Open(i)
	if err != nil {
		return 0, err
	}
	v, err := h.ReadPins()
	if err1 := h.Close(); err == nil {
		err = err1
	}
	if err != nil {
		return 0, err
	}
	return State(v), nil
}

// portNumber returns the number following prefix in the port name of h.
func portNumber(h Handle, prefix string) (int, error) {
	name, err := h.PortName()
	if err != nil {
		return 0, err
	}
	if !strings.HasPrefix(name, prefix) {
		return 0, fmt.Errorf("relay: port %q doesn't start with %q", name, prefix)
	}
	p, err := strconv.Atoi(name[len(prefix):])
	if err != nil {
		return 0, fmt.Errorf("relay: port %q: %w", name, err)
	}
	return p, nil
}
