// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// This file is the abstraction layer against the various OS specific
// implementations.
//
// It converts the int error value into error type.
//
// D2XX programmer's guide; Explains how to use the DLL provided by ftdi.
// http://www.ftdichip.com/Support/Documents/ProgramGuides/D2XX_Programmer's_Guide(FT_000071).pdf
//
// Bit bang modes:
// http://www.ftdichip.com/Support/Documents/AppNotes/AN_232R-01_Bit_Bang_Mode_Available_For_FT232R_and_Ft245R.pdf

package d2xx

import (
	"errors"
	"strconv"
)

// Version returns the version number of the D2xx driver currently used.
func Version() (uint8, uint8, uint8) {
	return d2xxGetLibraryVersion()
}

//

func numDevices() (int, error) {
	num, e := d2xxCreateDeviceInfoList()
	if e != 0 {
		return 0, toErr("GetNumDevices initialization failed", e)
	}
	return num, nil
}

func openDev(i int) (*device, error) {
	h, e := drv.d2xxOpen(i)
	if e != 0 {
		return nil, toErr("Open", e)
	}
	d := &device{h: h}
	if d.t, d.venID, d.devID, d.serial, d.desc, e = h.d2xxGetDeviceInfo(); e != 0 {
		h.d2xxClose()
		return nil, toErr("GetDeviceInfo", e)
	}
	return d, nil
}

// device is the lower level d2xx device handle, just above 'handle' which
// directly maps to D2XX function calls.
//
// device converts the int error type into Go native error.
//
// The content of the struct is immutable after initialization.
type device struct {
	h      d2xxHandle
	t      devType
	venID  uint16
	devID  uint16
	serial string
	desc   string
}

func (d *device) closeDev() error {
	return toErr("Close", d.h.d2xxClose())
}

// setBitMode change the mode of operation of the device.
//
// mask sets which pins are inputs (0) and outputs (1).
func (d *device) setBitMode(mask byte, mode bitMode) error {
	return toErr("SetBitMode", d.h.d2xxSetBitMode(mask, byte(mode)))
}

// getBitMode returns the instantaneous value of the data bus pins.
func (d *device) getBitMode() (byte, error) {
	l, e := d.h.d2xxGetBitMode()
	if e != 0 {
		return 0, toErr("GetBitMode", e)
	}
	return l, nil
}

// comPort returns the number of the COM port assigned to the device.
//
// Only the Windows driver supports it.
func (d *device) comPort() (int, error) {
	n, e := d.h.d2xxGetComPortNumber()
	if e != 0 {
		return 0, toErr("GetComPortNumber", e)
	}
	if n < 0 {
		return 0, errors.New("d2xx: no COM port assigned")
	}
	return n, nil
}

//

const missing = -1
const noCGO = -2

// ftNotSupported is FT_NOT_SUPPORTED.
const ftNotSupported = 17

// bitMode is used by setBitMode to change the chip behavior.
type bitMode uint8

// Sets the DBus to asynchronous bit-bang. The pins are updated as soon as a
// byte is written, and can be read back at any time.
const bitModeAsyncBitbang bitMode = 0x01

// devType is the FTDI device type as returned by FT_GetDeviceInfo.
type devType uint32

const (
	ftBM devType = iota
	ftAM
	ft100AX
	unknown
	ft2232C
	ft232R
	ft2232H
	ft4232H
	ft232H
	ftXSeries
)

// String returns the type as "FT232R".
func (t devType) String() string {
	switch t {
	case ftBM:
		return "FTBM"
	case ftAM:
		return "FTAM"
	case ft100AX:
		return "FT100AX"
	case ft2232C:
		return "FT2232C"
	case ft232R:
		return "FT232R"
	case ft2232H:
		return "FT2232H"
	case ft4232H:
		return "FT4232H"
	case ft232H:
		return "FT232H"
	case ftXSeries:
		return "FT-X"
	default:
		return "unknown"
	}
}

func toErr(s string, e int) error {
	msg := ""
	switch e {
	case missing:
		// when the library d2xx couldn't be loaded at runtime.
		msg = "couldn't load driver; install it from http://www.ftdichip.com/Drivers/D2XX.htm"
	case noCGO:
		msg = "can't be used without cgo"
	case 0: // FT_OK
		return nil
	case 1: // FT_INVALID_HANDLE
		msg = "invalid handle"
	case 2: // FT_DEVICE_NOT_FOUND
		msg = "device not found"
	case 3: // FT_DEVICE_NOT_OPENED
		msg = "device busy; is the VCP driver bound to it?"
	case 4: // FT_IO_ERROR
		msg = "I/O error"
	case 5: // FT_INSUFFICIENT_RESOURCES
		msg = "insufficient resources"
	case 6: // FT_INVALID_PARAMETER
		msg = "invalid parameter"
	case 7: // FT_INVALID_BAUD_RATE
		msg = "invalid baud rate"
	case 8: // FT_DEVICE_NOT_OPENED_FOR_ERASE
		msg = "device not opened for erase"
	case 9: // FT_DEVICE_NOT_OPENED_FOR_WRITE
		msg = "device not opened for write"
	case 10: // FT_FAILED_TO_WRITE_DEVICE
		msg = "failed to write device"
	case 11: // FT_EEPROM_READ_FAILED
		msg = "eeprom read failed"
	case 12: // FT_EEPROM_WRITE_FAILED
		msg = "eeprom write failed"
	case 13: // FT_EEPROM_ERASE_FAILED
		msg = "eeprom erase failed"
	case 14: // FT_EEPROM_NOT_PRESENT
		msg = "eeprom not present"
	case 15: // FT_EEPROM_NOT_PROGRAMMED
		msg = "eeprom not programmed"
	case 16: // FT_INVALID_ARGS
		msg = "invalid argument"
	case ftNotSupported: // FT_NOT_SUPPORTED
		msg = "not supported"
	case 18: // FT_OTHER_ERROR
		msg = "other error"
	case 19: // FT_DEVICE_LIST_NOT_READY
		msg = "device list not ready"
	default:
		msg = "unknown status " + strconv.Itoa(e)
	}
	return errors.New("d2xx: " + s + ": " + msg)
}

// Common functions that must be implemented in addition to
// d2xxGetLibraryVersion(), d2xxCreateDeviceInfoList() and d2xxOpen().
type d2xxHandle interface {
	d2xxClose() int
	d2xxGetDeviceInfo() (t devType, venID, devID uint16, serial, desc string, e int)
	d2xxGetComPortNumber() (int, int)
	d2xxGetBitMode() (byte, int)
	d2xxSetBitMode(mask, mode byte) int
}

// handle is a d2xx handle.
type handle uintptr

var _ d2xxHandle = handle(0)
