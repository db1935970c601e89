// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// relaycontrol switches one channel of a FTDI based USB relay board.
//
// The board is found by the serial port number set in config.xml, next to the
// executable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"periph.io/x/relayctl/config"
	"periph.io/x/relayctl/devices/screen"
	"periph.io/x/relayctl/hostextra"
	"periph.io/x/relayctl/hostextra/d2xx"
	"periph.io/x/relayctl/relay"
	"periph.io/x/relayctl/uart"
)

const usage = "Usage: relaycontrol <channel (int 1-8)> <state (int 0=OFF 1=ON)>"

var errUsage = errors.New("invalid arguments")

// deps are the parts of the program that touch the host.
type deps struct {
	init func() error
	load func(path string) (*config.Settings, error)
	bus  relay.Bus
	send func(s *config.Settings, b []byte) error
	show func(s relay.State) error
}

func mainImpl(args []string, d *deps) error {
	fs := flag.NewFlagSet("relaycontrol", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "verbose mode")
	cfg := fs.String("config", "", "path to the settings file; defaults to "+config.FileName+" next to the executable")
	status := fs.Bool("status", false, "print the board state after the change")
	fs.Usage = fs.PrintDefaults
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	if fs.NArg() != 2 {
		return errUsage
	}
	c, err := relay.ParseChannel(fs.Arg(0))
	if err != nil {
		log.Print(err)
		return errUsage
	}
	l, err := relay.ParseLevel(fs.Arg(1))
	if err != nil {
		log.Print(err)
		return errUsage
	}

	path := *cfg
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	s, err := d.load(path)
	if err != nil {
		return err
	}
	log.Printf("%s: port %s, %d baud, parity %s, %d data bits, stop bits %s", path, uart.PortName(s.COMPort), s.BaudRate, s.Parity, s.DataBits, s.StopBits)

	if err := d.init(); err != nil {
		return err
	}
	i, err := relay.Resolve(d.bus, s.COMPort, uart.PortPrefix)
	if err != nil {
		return err
	}
	old, err := relay.ReadState(d.bus, i)
	if err != nil {
		return err
	}
	next := relay.State(relay.Apply(byte(old), c, l))
	log.Printf("device #%d: %s %s: %s -> %s", i, c, l, old, next)
	if err := d.send(s, []byte{byte(next)}); err != nil {
		return err
	}
	if *status {
		return d.show(next)
	}
	return nil
}

// d2xxBus exposes the D2XX devices as relay handles.
type d2xxBus struct {
	d2xx.Bus
}

func (b d2xxBus) Open(i int) (relay.Handle, error) {
	d, err := b.Bus.Open(i)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func initHost() error {
	st, err := hostextra.Init()
	if err != nil {
		return err
	}
	// Devices that couldn't be opened during enumeration are skipped by
	// relay.Resolve, so it is not fatal.
	if err := hostextra.Failure(st, "d2xx"); err != nil {
		log.Printf("d2xx: %v", err)
	}
	return nil
}

func main() {
	d := &deps{
		init: initHost,
		load: config.Load,
		bus:  d2xxBus{},
		send: uart.Send,
		show: screen.New().Show,
	}
	if err := mainImpl(os.Args[1:], d); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "relaycontrol: %s.\n", err)
		os.Exit(1)
	}
}
