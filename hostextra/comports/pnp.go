// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package comports

import "strings"

// fromPNP decodes a Windows PNP device ID like
// `FTDIBUS\VID_0403+PID_6001+A50285BIA\0000` or
// `USB\VID_0403&PID_6001\A50285BI`.
func fromPNP(name, desc, pnp string) Port {
	p := Port{Name: name, Desc: desc}
	parts := strings.Split(pnp, `\`)
	if len(parts) < 2 {
		return p
	}
	bus := strings.ToUpper(parts[0])
	if bus != "USB" && bus != "FTDIBUS" {
		return p
	}
	ids := strings.FieldsFunc(parts[1], func(r rune) bool {
		return r == '&' || r == '+'
	})
	for _, id := range ids {
		switch u := strings.ToUpper(id); {
		case strings.HasPrefix(u, "VID_"):
			p.VID = u[4:]
		case strings.HasPrefix(u, "PID_"):
			p.PID = u[4:]
		case p.VID != "" && p.PID != "" && p.Serial == "":
			p.Serial = id
		}
	}
	if p.Serial == "" && bus == "USB" && len(parts) > 2 {
		p.Serial = parts[2]
	}
	p.IsUSB = p.VID != ""
	return p
}
