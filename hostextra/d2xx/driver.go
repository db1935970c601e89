// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2xx

import (
	"log"
	"sync"

	"periph.io/x/periph"
)

// All returns the FTDI devices found when the driver was initialized.
//
// The devices are not kept opened.
func All() []Info {
	drv.mu.Lock()
	defer drv.mu.Unlock()
	out := make([]Info, len(drv.all))
	copy(out, drv.all)
	return out
}

//

// driver implements periph.Driver.
type driver struct {
	mu  sync.Mutex
	all []Info

	numDevices func() (int, error)
	d2xxOpen   func(i int) (d2xxHandle, int)
}

func (d *driver) String() string {
	return "d2xx"
}

func (d *driver) Prerequisites() []string {
	return nil
}

func (d *driver) After() []string {
	return nil
}

// Init enumerates the devices, records what they are and closes them.
func (d *driver) Init() (bool, error) {
	num, err := d.numDevices()
	if err != nil {
		return true, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = nil
	for i := 0; i < num; i++ {
		var inf Info
		dev, err1 := Open(i)
		if err1 != nil {
			// Keep a broken entry, so the user can learn how to fix the problem.
			err = err1
			inf = Info{Index: i, Err: err1}
		} else {
			dev.Info(&inf)
			if err1 := dev.Close(); err1 != nil {
				log.Printf("d2xx: %s: %v", dev, err1)
				err = err1
			}
		}
		d.all = append(d.all, inf)
	}
	return true, err
}

func (d *driver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = nil
	d.numDevices = numDevices
	d.d2xxOpen = func(i int) (d2xxHandle, int) {
		return d2xxOpen(i)
	}
}

var drv driver

func init() {
	drv.reset()
	if !disabled {
		periph.MustRegister(&drv)
	}
}

var _ periph.Driver = &drv
