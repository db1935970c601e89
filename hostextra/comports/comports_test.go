// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package comports

import (
	"reflect"
	"testing"
)

func TestFromPNP(t *testing.T) {
	data := []struct {
		pnp  string
		want Port
	}{
		{
			`FTDIBUS\VID_0403+PID_6001+A50285BIA\0000`,
			Port{Name: "COM3", Desc: "d", IsUSB: true, VID: "0403", PID: "6001", Serial: "A50285BIA"},
		},
		{
			`USB\VID_2341&PID_0043\75735323130351F0C1A1`,
			Port{Name: "COM3", Desc: "d", IsUSB: true, VID: "2341", PID: "0043", Serial: "75735323130351F0C1A1"},
		},
		{
			`ACPI\PNP0501\1`,
			Port{Name: "COM3", Desc: "d"},
		},
		{
			``,
			Port{Name: "COM3", Desc: "d"},
		},
	}
	for _, line := range data {
		if p := fromPNP("COM3", "d", line.pnp); p != line.want {
			t.Fatalf("fromPNP(%q) = %#v", line.pnp, p)
		}
	}
}

func TestFTDI(t *testing.T) {
	ports := []Port{
		{Name: "COM1"},
		{Name: "COM3", IsUSB: true, VID: "0403", PID: "6001"},
		{Name: "COM4", IsUSB: true, VID: "2341", PID: "0043"},
		{Name: "/dev/ttyUSB0", IsUSB: true, VID: "0403", PID: "6010"},
	}
	want := []Port{ports[1], ports[3]}
	if got := FTDI(ports); !reflect.DeepEqual(got, want) {
		t.Fatalf("%#v", got)
	}
	if got := FTDI(nil); got != nil {
		t.Fatalf("%#v", got)
	}
}
