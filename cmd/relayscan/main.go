// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// relayscan prints out information about the FTDI devices and the serial ports
// found on the host, to help fill in config.xml.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"periph.io/x/relayctl/hostextra"
	"periph.io/x/relayctl/hostextra/comports"
	"periph.io/x/relayctl/hostextra/d2xx"
	"periph.io/x/relayctl/hostextra/usbbus"
	"periph.io/x/relayctl/relay"
)

func printD2XX(w io.Writer) {
	major, minor, build := d2xx.Version()
	fmt.Fprintf(w, "Using library %d.%d.%d\n", major, minor, build)
	all := d2xx.All()
	plural := ""
	if len(all) != 1 {
		plural = "s"
	}
	fmt.Fprintf(w, "Found %d device%s\n", len(all), plural)
	for _, i := range all {
		fmt.Fprintf(w, "- Device #%d\n", i.Index)
		printInfo(w, &i, portName)
	}
}

func printInfo(w io.Writer, i *d2xx.Info, port func(i int) (string, error)) {
	if !i.Opened {
		fmt.Fprintf(w, "  Failed to open: %v\n", i.Err)
		return
	}
	fmt.Fprintf(w, "  Type:           %s\n", i.Type)
	fmt.Fprintf(w, "  Vendor ID:      %#04x\n", i.VenID)
	fmt.Fprintf(w, "  Device ID:      %#04x\n", i.DevID)
	fmt.Fprintf(w, "  Serial:         %s\n", i.Serial)
	fmt.Fprintf(w, "  Desc:           %s\n", i.Desc)
	if p, err := port(i.Index); err != nil {
		fmt.Fprintf(w, "  Port:           %v\n", err)
	} else {
		fmt.Fprintf(w, "  Port:           %s\n", p)
	}
}

// portName opens the device again to read its port name, and its pins
// while at it.
func portName(i int) (string, error) {
	d, err := d2xx.Open(i)
	if err != nil {
		return "", err
	}
	defer d.Close()
	p, err := d.PortName()
	if err != nil {
		return "", err
	}
	if v, err := d.ReadPins(); err == nil {
		log.Printf("%s: %s", d, relay.State(v))
	}
	return p, nil
}

func printPorts(w io.Writer, ports []comports.Port) {
	fmt.Fprintf(w, "Serial ports:\n")
	for _, p := range ports {
		if p.IsUSB {
			fmt.Fprintf(w, "- %s: %s:%s %s %s\n", p.Name, p.VID, p.PID, p.Serial, p.Desc)
		} else {
			fmt.Fprintf(w, "- %s: %s\n", p.Name, p.Desc)
		}
	}
}

func printUSB(w io.Writer, all []usbbus.Desc) {
	fmt.Fprintf(w, "FTDI USB devices:\n")
	for _, d := range all {
		if d.Err != nil {
			fmt.Fprintf(w, "- %s: %v\n", &d, d.Err)
		} else {
			fmt.Fprintf(w, "- %s: %s %s %s\n", &d, d.Manufacturer, d.Product, d.Serial)
		}
	}
}

func mainImpl() error {
	verbose := flag.Bool("v", false, "verbose mode")
	ftdiOnly := flag.Bool("ftdi", false, "only list the serial ports backed by a FTDI chip")
	flag.Parse()
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	st, err := hostextra.Init()
	if err != nil {
		return err
	}
	if err := hostextra.Failure(st, "d2xx"); err != nil {
		fmt.Printf("d2xx: %v\n", err)
	} else if !hostextra.Loaded(st, "d2xx") {
		fmt.Printf("d2xx: driver not loaded; is libftd2xx installed and cgo enabled?\n")
	}
	printD2XX(os.Stdout)

	fmt.Printf("\n")
	if ports, err := comports.All(); err != nil {
		fmt.Printf("Failed to list serial ports: %v\n", err)
	} else {
		if *ftdiOnly {
			ports = comports.FTDI(ports)
		}
		printPorts(os.Stdout, ports)
	}

	fmt.Printf("\n")
	if all, err := usbbus.All(); err != nil {
		fmt.Printf("Failed to scan USB: %v\n", err)
	} else {
		printUSB(os.Stdout, all)
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "relayscan: %s.\n", err)
		os.Exit(1)
	}
}
