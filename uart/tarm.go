// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uart

import (
	tarm "github.com/tarm/serial"
	"periph.io/x/relayctl/config"
)

// openTarm opens the port with github.com/tarm/serial.
func openTarm(name string, s *config.Settings) (Port, error) {
	c := &tarm.Config{
		Name:     name,
		Baud:     s.BaudRate,
		Size:     byte(s.DataBits),
		Parity:   tarmParity(s.Parity),
		StopBits: tarmStopBits(s.StopBits),
	}
	p, err := tarm.OpenPort(c)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// tarmParity returns 0 for an unknown value, which tarm rejects with
// ErrBadParity.
func tarmParity(p config.Parity) tarm.Parity {
	switch p {
	case config.ParityNone:
		return tarm.ParityNone
	case config.ParityOdd:
		return tarm.ParityOdd
	case config.ParityEven:
		return tarm.ParityEven
	case config.ParityMark:
		return tarm.ParityMark
	case config.ParitySpace:
		return tarm.ParitySpace
	default:
		return 0
	}
}

// tarmStopBits returns 0 for an unknown value, which tarm rejects with
// ErrBadStopBits.
func tarmStopBits(s config.StopBits) tarm.StopBits {
	switch s {
	case config.StopBitsOne:
		return tarm.Stop1
	case config.StopBitsOnePointFive:
		return tarm.Stop1Half
	case config.StopBitsTwo:
		return tarm.Stop2
	default:
		return 0
	}
}
