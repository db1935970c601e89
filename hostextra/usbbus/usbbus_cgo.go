// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build cgo && !windows
// +build cgo,!windows

package usbbus

import (
	"log"

	"github.com/google/gousb"
)

// scan opens the devices for which keep returns true to read their string
// descriptors.
func scan(keep func(venID uint16) bool) ([]Desc, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()
	var all []Desc
	devs, err := ctx.OpenDevices(func(d *gousb.DeviceDesc) bool {
		// Return true to keep the device open.
		return keep(uint16(d.Vendor))
	})
	// If the user needs root access, LIBUSB_ERROR_ACCESS (-3) will be returned
	// for the devices that couldn't be opened; the others are still usable.
	if err != nil {
		log.Printf("usbbus: %v", err)
	}
	for _, d := range devs {
		desc := fromDesc(d.Desc)
		var err1 error
		if desc.Manufacturer, err1 = d.Manufacturer(); err1 != nil {
			desc.Err = err1
		}
		if desc.Product, err1 = d.Product(); err1 != nil {
			desc.Err = err1
		}
		if desc.Serial, err1 = d.SerialNumber(); err1 != nil {
			desc.Err = err1
		}
		if err1 := d.Close(); err1 != nil {
			log.Printf("usbbus: %s: %v", &desc, err1)
		}
		all = append(all, desc)
	}
	return all, err
}

func fromDesc(d *gousb.DeviceDesc) Desc {
	return Desc{Bus: d.Bus, Addr: d.Address, VenID: uint16(d.Vendor), DevID: uint16(d.Product)}
}
