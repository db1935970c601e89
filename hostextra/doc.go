// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hostextra defines the extra drivers for the host itself.
//
// The host is the machine where this code is running.
//
// Contrary to periph.io/x/periph/host, hostextra loads drivers that depend on
// cgo or on a vendor library installed on the machine, like the FTDI D2XX
// driver.
//
// The subpackages comports and usbbus are not drivers; they list what the
// host sees and are imported explicitly by the tools that need them.
package hostextra
