// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uart

import (
	"errors"
	"io/fs"

	tarm "github.com/tarm/serial"
	"go.bug.st/serial"
)

var errUnsupported = errors.New("unsupported")

// Kind is the category of a serial port failure.
type Kind int

// Kinds of serial port failures.
const (
	// InvalidState is any I/O failure not covered by another kind.
	InvalidState Kind = iota
	AccessDenied
	BadPort
	AlreadyOpen
	InvalidSettings
)

func (k Kind) String() string {
	switch k {
	case AccessDenied:
		return "access to the serial port is denied"
	case BadPort:
		return "the port name is invalid or the file type of the port is not supported"
	case AlreadyOpen:
		return "the specified port is already open"
	case InvalidSettings:
		return "the port settings are not supported"
	default:
		return "the serial port is in an invalid state"
	}
}

// Error is a failure of the serial port.
type Error struct {
	Kind Kind
	Port string
	Err  error
}

func (e *Error) Error() string {
	return "uart: " + e.Port + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify wraps err into an *Error.
func classify(port string, err error) error {
	return &Error{Kind: kindOf(err), Port: port, Err: err}
}

func kindOf(err error) Kind {
	var pe *serial.PortError
	if errors.As(err, &pe) {
		switch pe.Code() {
		case serial.PermissionDenied:
			return AccessDenied
		case serial.PortNotFound, serial.InvalidSerialPort:
			return BadPort
		case serial.PortBusy:
			return AlreadyOpen
		case serial.InvalidSpeed, serial.InvalidDataBits, serial.InvalidParity, serial.InvalidStopBits:
			return InvalidSettings
		default:
			return InvalidState
		}
	}
	switch {
	case errors.Is(err, fs.ErrPermission):
		return AccessDenied
	case errors.Is(err, fs.ErrNotExist):
		return BadPort
	case errors.Is(err, errUnsupported), errors.Is(err, tarm.ErrBadSize), errors.Is(err, tarm.ErrBadParity), errors.Is(err, tarm.ErrBadStopBits):
		return InvalidSettings
	default:
		return InvalidState
	}
}
