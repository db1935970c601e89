// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2xx

import (
	"runtime"
	"strings"
	"testing"

	"go.bug.st/serial/enumerator"
)

func TestDriver(t *testing.T) {
	defer reset(t)
	handles := fakeBus(t, &d2xxFakeHandle{d: ft232R, vid: 0x0403, pid: 0x6001, serial: "A50285BI", desc: "FT232R USB UART"}, nil)
	if b, err := drv.Init(); !b || err == nil {
		t.Fatalf("Init() = %t, %v", b, err)
	}
	all := All()
	if len(all) != 2 {
		t.Fatalf("got %d devices", len(all))
	}
	want := Info{Index: 0, Opened: true, Type: "FT232R", VenID: 0x0403, DevID: 0x6001, Serial: "A50285BI", Desc: "FT232R USB UART"}
	if all[0] != want {
		t.Fatalf("%#v", all[0])
	}
	if all[1].Opened || all[1].Err == nil || all[1].Index != 1 {
		t.Fatalf("%#v", all[1])
	}
	if handles[0].closed != 1 {
		t.Fatal("device left opened")
	}
}

func TestDriver_numDevicesErr(t *testing.T) {
	defer reset(t)
	drv.numDevices = func() (int, error) {
		return 0, toErr("GetNumDevices initialization failed", missing)
	}
	if _, err := drv.Init(); err == nil {
		t.Fatal("expected error")
	}
	if _, err := (Bus{}).NumDevices(); err == nil {
		t.Fatal("expected error")
	}
}

func TestDev(t *testing.T) {
	defer reset(t)
	h := &d2xxFakeHandle{d: ft232R, serial: "A50285BI", pins: 0x24}
	fakeBus(t, h)
	fakePorts([]*enumerator.PortDetails{
		{Name: "/dev/ttyS0"},
		{Name: "/dev/ttyUSB3", IsUSB: true, VID: "0403", PID: "6001", SerialNumber: "A50285BI"},
	})
	h.com = 3

	b := Bus{}
	if n, err := b.NumDevices(); n != 1 || err != nil {
		t.Fatalf("NumDevices() = %d, %v", n, err)
	}
	d, err := b.Open(0)
	if err != nil {
		t.Fatal(err)
	}
	if s := d.String(); s != "FT232R(0)" {
		t.Fatal(s)
	}
	p, err := d.PortName()
	if err != nil {
		t.Fatal(err)
	}
	want := "/dev/ttyUSB3"
	if runtime.GOOS == "windows" {
		want = "COM3"
	}
	if p != want {
		t.Fatal(p)
	}
	if err := d.Bitbang(0xFF); err != nil {
		t.Fatal(err)
	}
	if h.mask != 0xFF || h.mode != byte(bitModeAsyncBitbang) {
		t.Fatalf("SetBitMode(%#x, %#x)", h.mask, h.mode)
	}
	if v, err := d.ReadPins(); v != 0x24 || err != nil {
		t.Fatalf("ReadPins() = %#x, %v", v, err)
	}
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if h.closed != 1 {
		t.Fatal(h.closed)
	}
}

func TestDev_errors(t *testing.T) {
	defer reset(t)
	h := &d2xxFakeHandle{d: ft232R, e: 4}
	fakeBus(t, h)
	d, err := Open(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Bitbang(0xFF); err == nil || err.Error() != "d2xx: SetBitMode: I/O error" {
		t.Fatalf("got %v", err)
	}
	if _, err := d.ReadPins(); err == nil {
		t.Fatal("expected error")
	}
	if err := d.Close(); err == nil || !strings.Contains(err.Error(), "Close") {
		t.Fatalf("got %v", err)
	}
	if _, err := Open(-1); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpen_deviceInfoErr(t *testing.T) {
	defer reset(t)
	h := &d2xxFakeHandle{infoErr: 4}
	fakeBus(t, h)
	if _, err := Open(0); err == nil || !strings.Contains(err.Error(), "GetDeviceInfo") {
		t.Fatalf("got %v", err)
	}
	if h.closed != 1 {
		t.Fatal("handle leaked")
	}
}

func TestToErr(t *testing.T) {
	if err := toErr("Open", 0); err != nil {
		t.Fatal(err)
	}
	data := []struct {
		e    int
		want string
	}{
		{missing, "d2xx: Open: couldn't load driver; install it from http://www.ftdichip.com/Drivers/D2XX.htm"},
		{noCGO, "d2xx: Open: can't be used without cgo"},
		{3, "d2xx: Open: device busy; is the VCP driver bound to it?"},
		{ftNotSupported, "d2xx: Open: not supported"},
		{42, "d2xx: Open: unknown status 42"},
	}
	for _, line := range data {
		if err := toErr("Open", line.e); err == nil || err.Error() != line.want {
			t.Fatalf("toErr(%d) = %v", line.e, err)
		}
	}
}

func TestDevType(t *testing.T) {
	if s := ft232H.String(); s != "FT232H" {
		t.Fatal(s)
	}
	if s := devType(1000).String(); s != "unknown" {
		t.Fatal(s)
	}
}

//

type d2xxFakeHandle struct {
	d       devType
	vid     uint16
	pid     uint16
	serial  string
	desc    string
	com     int
	pins    byte
	e       int
	infoErr int

	closed int
	mask   byte
	mode   byte
}

func (d *d2xxFakeHandle) d2xxClose() int {
	d.closed++
	return d.e
}
func (d *d2xxFakeHandle) d2xxGetDeviceInfo() (devType, uint16, uint16, string, string, int) {
	return d.d, d.vid, d.pid, d.serial, d.desc, d.infoErr
}
func (d *d2xxFakeHandle) d2xxGetComPortNumber() (int, int) {
	return d.com, d.e
}
func (d *d2xxFakeHandle) d2xxGetBitMode() (byte, int) {
	return d.pins, d.e
}
func (d *d2xxFakeHandle) d2xxSetBitMode(mask, mode byte) int {
	d.mask = mask
	d.mode = mode
	return d.e
}

// fakeBus replaces the D2XX library with the handles; a nil handle fails to
// open.
func fakeBus(t *testing.T, handles ...*d2xxFakeHandle) []*d2xxFakeHandle {
	drv.numDevices = func() (int, error) {
		return len(handles), nil
	}
	drv.d2xxOpen = func(i int) (d2xxHandle, int) {
		if i >= len(handles) {
			t.Fatalf("unexpected index %d", i)
		}
		if handles[i] == nil {
			return nil, 3
		}
		return handles[i], 0
	}
	return handles
}

func reset(t *testing.T) {
	drv.reset()
	resetPorts()
}
