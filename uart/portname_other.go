// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package uart

// PortPrefix is prepended to the port number to form the port name.
//
// It is the name the ftdi_sio kernel driver gives to FTDI serial ports.
const PortPrefix = "/dev/ttyUSB"
