// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2xx

import (
	"errors"
	"strconv"
)

// Info is the information gathered about a connected FTDI device.
//
// The data is gathered from the USB descriptor.
type Info struct {
	// Index is the position of the device in the D2XX enumeration.
	Index int
	// Opened is true if the device was successfully opened.
	Opened bool
	// Err is the reason the device couldn't be opened.
	Err error
	// Type is the FTDI device type, e.g. "FT232R".
	Type string
	// VenID is the vendor ID from the USB descriptor information. It is expected
	// to be 0x0403 (FTDI).
	VenID uint16
	// DevID is the product ID from the USB descriptor information. It is
	// expected to be one of 0x6001, 0x6006, 0x6010 or 0x6014.
	DevID uint16
	// Serial is the USB serial number.
	Serial string
	// Desc is the USB product description.
	Desc string
}

// Dev is an opened FTDI device.
//
// Only one Dev should be opened at a time; Close it as soon as it is not
// needed anymore.
type Dev struct {
	index int
	d     *device
}

// Open opens the FTDI device at enumeration index i.
func Open(i int) (*Dev, error) {
	if i < 0 {
		return nil, errors.New("d2xx: invalid device index " + strconv.Itoa(i))
	}
	d, err := openDev(i)
	if err != nil {
		return nil, err
	}
	return &Dev{index: i, d: d}, nil
}

func (d *Dev) String() string {
	return d.d.t.String() + "(" + strconv.Itoa(d.index) + ")"
}

// Info returns information about the opened device.
func (d *Dev) Info(i *Info) {
	i.Index = d.index
	i.Opened = true
	i.Type = d.d.t.String()
	i.VenID = d.d.venID
	i.DevID = d.d.devID
	i.Serial = d.d.serial
	i.Desc = d.d.desc
}

// PortName returns the name of the serial port the OS assigned to the device,
// e.g. "COM3" on Windows or "/dev/ttyUSB0" on linux.
func (d *Dev) PortName() (string, error) {
	return d.d.portName()
}

// Bitbang switches the data bus to asynchronous bitbang mode.
//
// A 1 bit in mask makes the corresponding D0~D7 pin an output.
func (d *Dev) Bitbang(mask byte) error {
	return d.d.setBitMode(mask, bitModeAsyncBitbang)
}

// ReadPins returns the current value of the data bus pins D0~D7.
func (d *Dev) ReadPins() (byte, error) {
	return d.d.getBitMode()
}

// Close closes the device handle.
func (d *Dev) Close() error {
	return d.d.closeDev()
}

// Bus gives access to the FTDI devices by their enumeration index.
type Bus struct{}

// NumDevices returns the number of FTDI devices currently connected.
func (Bus) NumDevices() (int, error) {
	return drv.numDevices()
}

// Open opens the device at enumeration index i.
func (Bus) Open(i int) (*Dev, error) {
	return Open(i)
}
