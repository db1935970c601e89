// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uart

import (
	"fmt"

	"go.bug.st/serial"
	"periph.io/x/relayctl/config"
)

// openBugst opens the port with go.bug.st/serial, a pure Go implementation.
func openBugst(name string, s *config.Settings) (Port, error) {
	m, err := bugstMode(s)
	if err != nil {
		return nil, err
	}
	p, err := serial.Open(name, m)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func bugstMode(s *config.Settings) (*serial.Mode, error) {
	m := &serial.Mode{BaudRate: s.BaudRate, DataBits: s.DataBits}
	switch s.Parity {
	case config.ParityNone:
		m.Parity = serial.NoParity
	case config.ParityOdd:
		m.Parity = serial.OddParity
	case config.ParityEven:
		m.Parity = serial.EvenParity
	case config.ParityMark:
		m.Parity = serial.MarkParity
	case config.ParitySpace:
		m.Parity = serial.SpaceParity
	default:
		return nil, fmt.Errorf("%w parity %s", errUnsupported, s.Parity)
	}
	switch s.StopBits {
	case config.StopBitsOne:
		m.StopBits = serial.OneStopBit
	case config.StopBitsOnePointFive:
		m.StopBits = serial.OnePointFiveStopBits
	case config.StopBitsTwo:
		m.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("%w stop bits %s", errUnsupported, s.StopBits)
	}
	return m, nil
}
