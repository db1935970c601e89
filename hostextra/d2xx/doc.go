// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package d2xx drives the FTDI USB serial chips through the vendor D2XX
// driver.
//
// Only what is needed to drive a relay board is exposed: device enumeration,
// asynchronous bitbang on the D0~D7 data bus, reading the pins back and
// finding the serial port name the OS assigned to the chip.
//
// Debian
//
// This includes Raspbian and Ubuntu.
//
// Install libftd2xx from http://www.ftdichip.com/Drivers/D2XX.htm and configure
// cgo as explained at https://periph.io/x/relayctl#hdr-Debian.
//
// The D2XX driver can't open a chip while linux's ftdi_sio driver is bound to
// it. Unbind it temporarily with:
//  sudo modprobe -r ftdi_sio usbserial
//
// MacOS
//
// Configure cgo as explained at https://periph.io/x/relayctl#hdr-MacOS.
//
// Windows
//
// Install the driver from http://www.ftdichip.com/Drivers/D2XX.htm.
//
// No configuration is needed, the DLL is loaded at runtime. The VCP driver
// reports the COM port number directly.
//
// Datasheets
//
// http://www.ftdichip.com/Support/Documents/DataSheets/ICs/DS_FT232R.pdf
//
// http://www.ftdichip.com/Support/Documents/AppNotes/AN_232R-01_Bit_Bang_Mode_Available_For_FT232R_and_Ft245R.pdf
package d2xx
