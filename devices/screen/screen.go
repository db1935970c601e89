// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen displays the state of a relay board on the terminal using
// ANSI color codes.
//
// Each channel is a block, green when the relay is on and dark grey when it
// is off, followed by the channel numbers. When the output is not a terminal,
// '#' and '.' are printed instead.
package screen // import "periph.io/x/relayctl/devices/screen"

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/periph/conn"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/relayctl/relay"
)

// Colors of a relay.
var (
	On  = color.NRGBA{0, 200, 0, 255}
	Off = color.NRGBA{48, 48, 48, 255}
)

// Dev is a relay board emulator that outputs to the console.
type Dev struct {
	w     io.Writer
	color bool
	buf   bytes.Buffer
}

// New returns a Dev that displays on stdout.
//
// Colors are used only if stdout is a terminal.
func New() *Dev {
	fd := os.Stdout.Fd()
	return NewWriter(colorable.NewColorableStdout(), isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

// NewWriter returns a Dev that writes to w.
func NewWriter(w io.Writer, color bool) *Dev {
	return &Dev{w: w, color: color}
}

func (d *Dev) String() string {
	return "Screen"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	if !d.color {
		return nil
	}
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// Show prints one line representing s.
func (d *Dev) Show(s relay.State) error {
	// Reuse the buffer so repeated calls don't allocate.
	d.buf.Reset()
	if d.color {
		_, _ = d.buf.WriteString("\033[0m")
	}
	for c := relay.Channel(1); c <= relay.NumChannels; c++ {
		on := s.Get(c) == gpio.High
		switch {
		case d.color && on:
			_, _ = io.WriteString(&d.buf, ansi256.Default.Block(On))
		case d.color:
			_, _ = io.WriteString(&d.buf, ansi256.Default.Block(Off))
		case on:
			_ = d.buf.WriteByte('#')
		default:
			_ = d.buf.WriteByte('.')
		}
	}
	if d.color {
		_, _ = d.buf.WriteString("\033[0m")
	}
	_, _ = d.buf.WriteString(" ")
	for c := relay.Channel(1); c <= relay.NumChannels; c++ {
		_, _ = fmt.Fprintf(&d.buf, "%d", int(c))
	}
	_, _ = d.buf.WriteString("\n")
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
