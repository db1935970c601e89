// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package comports lists the serial ports of the host.
//
// On Windows the ports are read via WMI, elsewhere from the OS device tree.
package comports

import (
	"sort"
	"strings"
)

// Port is a serial port known to the OS.
type Port struct {
	// Name is the name to open the port with, e.g. "COM3" or "/dev/ttyUSB0".
	Name string
	// Desc is an OS dependent human readable description. It may be empty.
	Desc string
	// IsUSB is true when the port is backed by an USB device; VID, PID and
	// Serial are only set in this case.
	IsUSB  bool
	VID    string
	PID    string
	Serial string
}

// All returns the serial ports, sorted by name.
func All() ([]Port, error) {
	out, err := list()
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// FTDI returns the ports backed by a FTDI chip.
func FTDI(ports []Port) []Port {
	var out []Port
	for _, p := range ports {
		if p.IsUSB && strings.EqualFold(p.VID, "0403") {
			out = append(out, p)
		}
	}
	return out
}
