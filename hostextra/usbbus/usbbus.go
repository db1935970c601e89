// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package usbbus

import (
	"fmt"
	"sort"
)

// FTDI is the USB vendor ID of Future Technology Devices International.
const FTDI = 0x0403

// Desc represents the description of an USB device on an USB bus.
type Desc struct {
	Bus   int
	Addr  int
	VenID uint16
	DevID uint16
	// The string descriptors are empty if the device couldn't be opened, in
	// which case Err is set.
	Manufacturer string
	Product      string
	Serial       string
	Err          error
}

func (d *Desc) String() string {
	return fmt.Sprintf("%03d:%03d %04x:%04x", d.Bus, d.Addr, d.VenID, d.DevID)
}

// All returns the FTDI devices detected, sorted by bus then address.
func All() ([]Desc, error) {
	out, err := scan(func(venID uint16) bool {
		return venID == FTDI
	})
	sort.Sort(descriptors(out))
	return out, err
}

//

type descriptors []Desc

func (d descriptors) Len() int      { return len(d) }
func (d descriptors) Swap(i, j int) { d[i], d[j] = d[j], d[i] }
func (d descriptors) Less(i, j int) bool {
	if d[i].Bus < d[j].Bus {
		return true
	}
	if d[i].Bus > d[j].Bus {
		return false
	}
	return d[i].Addr < d[j].Addr
}
