// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package uart sends the relay state byte over the serial port assigned to
// the relay board.
//
// Each call opens the port, writes, waits for the bytes to leave the UART and
// closes the port. Nothing is retried.
package uart

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"periph.io/x/relayctl/config"
)

// DefaultSettle is the time waited after a write before the port is closed.
const DefaultSettle = 10 * time.Millisecond

// DefaultBackend is the backend used when config.Settings.Transport is empty.
const DefaultBackend = "bugst"

// ErrNotOpen is returned when a backend returned neither a port nor an error.
var ErrNotOpen = errors.New("uart: failed to open the serial port")

// PortName returns the OS name of serial port number n, e.g. "COM3".
func PortName(n int) string {
	return PortPrefix + strconv.Itoa(n)
}

// Port is an opened serial port.
type Port interface {
	io.Writer
	io.Closer
}

// Opener opens the serial port name with the framing in s.
type Opener func(name string, s *config.Settings) (Port, error)

// Backends returns the names of the serial backends available.
func Backends() []string {
	out := make([]string, 0, len(backends))
	for k := range backends {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Sender writes to the serial port described by config.Settings.
type Sender struct {
	// Open overrides the backend selected by config.Settings.Transport.
	Open Opener
	// Settle is the delay between the write and the close.
	Settle time.Duration
}

// Send writes b to the serial port of s with the default Sender.
func Send(s *config.Settings, b []byte) error {
	d := Sender{Settle: DefaultSettle}
	return d.Send(s, b)
}

// Send opens the serial port of s, writes b, waits for Settle and closes the
// port.
//
// Errors returned by the backend are returned as *Error.
func (d *Sender) Send(s *config.Settings, b []byte) error {
	open := d.Open
	if open == nil {
		var err error
		if open, err = backend(s.Transport); err != nil {
			return err
		}
	}
	name := PortName(s.COMPort)
	p, err := open(name, s)
	if err != nil {
		return classify(name, err)
	}
	if p == nil {
		return fmt.Errorf("%w %s", ErrNotOpen, name)
	}
	n, err := p.Write(b)
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		p.Close()
		return classify(name, err)
	}
	time.Sleep(d.Settle)
	if err := p.Close(); err != nil {
		return classify(name, err)
	}
	return nil
}

//

var backends = map[string]Opener{
	"bugst": openBugst,
	"tarm":  openTarm,
}

func backend(name string) (Opener, error) {
	if name == "" {
		name = DefaultBackend
	}
	if o := backends[name]; o != nil {
		return o, nil
	}
	return nil, fmt.Errorf("uart: unknown transport %q; use one of %v", name, Backends())
}
