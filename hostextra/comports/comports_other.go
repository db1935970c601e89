// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package comports

import "go.bug.st/serial/enumerator"

// detailedPorts is overridden in unit tests.
var detailedPorts = enumerator.GetDetailedPortsList

func list() ([]Port, error) {
	ports, err := detailedPorts()
	if err != nil {
		return nil, err
	}
	out := make([]Port, 0, len(ports))
	for _, p := range ports {
		out = append(out, Port{Name: p.Name, Desc: p.Product, IsUSB: p.IsUSB, VID: p.VID, PID: p.PID, Serial: p.SerialNumber})
	}
	return out, nil
}
