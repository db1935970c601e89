// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package usbbus lists the FTDI devices connected on the USB buses.
//
// It reads the USB descriptors directly, so it sees the chips even when the
// D2XX driver can't open them, for example when linux's ftdi_sio driver is
// bound to them.
//
// This package uses cgo and depends on libusb being installed.
//
// Debian
//
// This includes Raspbian and Ubuntu.
//
// First configure cgo as explained at https://periph.io/x/relayctl#hdr-Debian.
//
// You need to install libusb-1.0:
//
//  sudo apt install libusb-1.0-0-dev
//
// MacOS
//
// First configure cgo as explained at https://periph.io/x/relayctl#hdr-MacOS.
//
//  brew install libusb
//
// Windows
//
// The package is currently disabled on Windows.
package usbbus
