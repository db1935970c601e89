// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !cgo || windows
// +build !cgo windows

package usbbus

import "errors"

func scan(keep func(venID uint16) bool) ([]Desc, error) {
	return nil, errors.New("usbbus: requires cgo and libusb; not supported on this platform")
}
