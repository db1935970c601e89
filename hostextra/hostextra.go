// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hostextra

import (
	"periph.io/x/periph"
	"periph.io/x/periph/host"
	_ "periph.io/x/relayctl/hostextra/d2xx"
)

// Init calls host.Init(), which calls periph.Init() and returns it as-is.
//
// The difference with host.Init() is that the d2xx driver is registered, so
// the FTDI devices are enumerated once and d2xx.All() is populated.
//
// A driver failing to load is reported in State.Failed and doesn't make Init
// fail; use Loaded to check it.
func Init() (*periph.State, error) {
	return host.Init()
}

// Loaded returns true if the driver named name initialized successfully.
func Loaded(s *periph.State, name string) bool {
	for _, d := range s.Loaded {
		if d.String() == name {
			return true
		}
	}
	return false
}

// Failure returns the error of the driver named name, if it failed.
func Failure(s *periph.State, name string) error {
	for _, f := range s.Failed {
		if f.D.String() == name {
			return f.Err
		}
	}
	return nil
}
