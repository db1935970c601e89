// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package relay implements the state of an 8 channel relay board driven
// through the 8 bit output latch of a FTDI chip in bitbang mode.
//
// Bit n-1 of the latch drives channel n; the least significant bit is
// channel 1. A set bit means the relay is energized.
package relay

import (
	"errors"
	"strconv"
	"strings"

	"periph.io/x/periph/conn/gpio"
)

// NumChannels is the number of relays on the board.
const NumChannels = 8

// Channel is a relay channel number, from 1 to NumChannels.
type Channel int

// ParseChannel parses a channel number as passed on the command line.
func ParseChannel(s string) (Channel, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("relay: channel must be an integer between 1 and 8")
	}
	c := Channel(i)
	if !c.Valid() {
		return 0, errors.New("relay: channel must be an integer between 1 and 8")
	}
	return c, nil
}

// Valid returns true if c is between 1 and NumChannels.
func (c Channel) Valid() bool {
	return c >= 1 && c <= NumChannels
}

func (c Channel) String() string {
	return "CH" + strconv.Itoa(int(c))
}

// Mask returns the latch bit for channel c.
//
// It returns 0 for an invalid channel.
func (c Channel) Mask() byte {
	if !c.Valid() {
		return 0
	}
	return 1 << uint(c-1)
}

// ParseLevel parses a relay state as passed on the command line; "1" is
// gpio.High (on) and "0" is gpio.Low (off).
func ParseLevel(s string) (gpio.Level, error) {
	switch s {
	case "0":
		return gpio.Low, nil
	case "1":
		return gpio.High, nil
	default:
		return gpio.Low, errors.New("relay: state must be an integer 0 or 1")
	}
}

// Apply returns state with the bit of channel c set when l is gpio.High and
// cleared when l is gpio.Low. The other bits are left untouched.
func Apply(state byte, c Channel, l gpio.Level) byte {
	if l == gpio.High {
		return state | c.Mask()
	}
	return state &^ c.Mask()
}

// State is a snapshot of the output latch.
type State byte

// Get returns the level of channel c.
func (s State) Get(c Channel) gpio.Level {
	return gpio.Level(byte(s)&c.Mask() != 0)
}

// String returns the state as "CH1=on CH2=off ...".
func (s State) String() string {
	var b strings.Builder
	for c := Channel(1); c <= NumChannels; c++ {
		if c != 1 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
		if s.Get(c) == gpio.High {
			b.WriteString("=on")
		} else {
			b.WriteString("=off")
		}
	}
	return b.String()
}
