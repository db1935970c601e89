// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package d2xx

import (
	"errors"
	"sort"
	"strings"

	"go.bug.st/serial/enumerator"
)

// detailedPorts is overridden in unit tests.
var detailedPorts = enumerator.GetDetailedPortsList

// portName returns the tty bound to the USB device with the same serial
// number.
//
// The D2XX library doesn't know about ttys. Multi interface chips (FT2232,
// FT4232) append the interface letter to the serial number, e.g. "FT1234A".
func (d *device) portName() (string, error) {
	if d.serial == "" {
		return "", errors.New("d2xx: device has no serial number")
	}
	ports, err := detailedPorts()
	if err != nil {
		return "", errors.New("d2xx: enumerating serial ports: " + err.Error())
	}
	for _, p := range ports {
		if !p.IsUSB || p.SerialNumber == "" {
			continue
		}
		if p.SerialNumber == d.serial {
			return p.Name, nil
		}
	}
	// Interface A is the first tty of the chip, B the second, etc.
	var names []string
	for _, p := range ports {
		if p.IsUSB && p.SerialNumber != "" && len(d.serial) == len(p.SerialNumber)+1 && strings.HasPrefix(d.serial, p.SerialNumber) {
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	if i := int(d.serial[len(d.serial)-1]) - 'A'; i >= 0 && i < len(names) {
		return names[i], nil
	}
	return "", errors.New("d2xx: no serial port found for serial number " + d.serial)
}
