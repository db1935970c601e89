// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build cgo && !windows
// +build cgo,!windows

package d2xx

/*
#cgo LDFLAGS: -lftd2xx
#include <ftd2xx.h>
*/
import "C"

const disabled = false

// Library functions.

func d2xxGetLibraryVersion() (uint8, uint8, uint8) {
	var v C.DWORD
	C.FT_GetLibraryVersion(&v)
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

func d2xxCreateDeviceInfoList() (int, int) {
	var num C.DWORD
	e := C.FT_CreateDeviceInfoList(&num)
	return int(num), int(e)
}

// Device functions.

func d2xxOpen(i int) (handle, int) {
	var h C.FT_HANDLE
	e := C.FT_Open(C.int(i), &h)
	if uintptr(h) == 0 && e == 0 {
		panic("unexpected")
	}
	return handle(h), int(e)
}

func (h handle) d2xxClose() int {
	return int(C.FT_Close(h.toH()))
}

func (h handle) d2xxGetDeviceInfo() (devType, uint16, uint16, string, string, int) {
	var dev C.FT_DEVICE
	var id C.DWORD
	var serial [16]C.char
	var desc [64]C.char
	if e := C.FT_GetDeviceInfo(h.toH(), &dev, &id, &serial[0], &desc[0], nil); e != 0 {
		return unknown, 0, 0, "", "", int(e)
	}
	return devType(dev), uint16(id >> 16), uint16(id), C.GoString(&serial[0]), C.GoString(&desc[0]), 0
}

// d2xxGetComPortNumber is not implemented by the posix library; the tty is
// found via the serial number instead.
func (h handle) d2xxGetComPortNumber() (int, int) {
	return 0, ftNotSupported
}

func (h handle) d2xxGetBitMode() (byte, int) {
	var s C.UCHAR
	e := C.FT_GetBitMode(h.toH(), &s)
	return uint8(s), int(e)
}

func (h handle) d2xxSetBitMode(mask, mode byte) int {
	return int(C.FT_SetBitMode(h.toH(), C.UCHAR(mask), C.UCHAR(mode)))
}

func (h handle) toH() C.FT_HANDLE {
	return C.FT_HANDLE(h)
}
