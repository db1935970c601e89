// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package comports

import "github.com/StackExchange/wmi"

// win32SerialPort represents a Win32_SerialPort instance. It intentionally
// leaves a lot of members out.
type win32SerialPort struct {
	DeviceID    string
	Description string
	PNPDeviceID string
}

func list() ([]Port, error) {
	// https://msdn.microsoft.com/en-us/library/aa394413.aspx
	var dst []win32SerialPort
	if err := wmi.Query(wmi.CreateQuery(&dst, ""), &dst); err != nil {
		return nil, err
	}
	out := make([]Port, 0, len(dst))
	for _, s := range dst {
		out = append(out, fromPNP(s.DeviceID, s.Description, s.PNPDeviceID))
	}
	return out, nil
}
