// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2xx

import "strconv"

// portName returns "COMn" as reported by the VCP driver.
func (d *device) portName() (string, error) {
	n, err := d.comPort()
	if err != nil {
		return "", err
	}
	return "COM" + strconv.Itoa(n), nil
}
