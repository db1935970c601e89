// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2xx

import (
	"bytes"
	"unsafe"

	"golang.org/x/sys/windows"
)

var disabled = true

// Library functions.

func d2xxGetLibraryVersion() (uint8, uint8, uint8) {
	var v uint32
	if pGetLibraryVersion != nil {
		pGetLibraryVersion.Call(uintptr(unsafe.Pointer(&v)))
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

func d2xxCreateDeviceInfoList() (int, int) {
	if disabled {
		return 0, missing
	}
	var num uint32
	r1, _, _ := pCreateDeviceInfoList.Call(uintptr(unsafe.Pointer(&num)))
	return int(num), int(r1)
}

// Device functions.

func d2xxOpen(i int) (handle, int) {
	if disabled {
		return 0, missing
	}
	var h handle
	r1, _, _ := pOpen.Call(uintptr(i), uintptr(unsafe.Pointer(&h)))
	return h, int(r1)
}

func (h handle) d2xxClose() int {
	r1, _, _ := pClose.Call(h.toH())
	return int(r1)
}

func (h handle) d2xxGetDeviceInfo() (devType, uint16, uint16, string, string, int) {
	var d devType
	var id uint32
	var serial [16]byte
	var desc [64]byte
	if r1, _, _ := pGetDeviceInfo.Call(h.toH(), uintptr(unsafe.Pointer(&d)), uintptr(unsafe.Pointer(&id)), uintptr(unsafe.Pointer(&serial[0])), uintptr(unsafe.Pointer(&desc[0])), 0); r1 != 0 {
		return unknown, 0, 0, "", "", int(r1)
	}
	return d, uint16(id >> 16), uint16(id), toStr(serial[:]), toStr(desc[:]), 0
}

func (h handle) d2xxGetComPortNumber() (int, int) {
	// LONG; -1 when no COM port is assigned.
	var n int32
	r1, _, _ := pGetComPortNumber.Call(h.toH(), uintptr(unsafe.Pointer(&n)))
	return int(n), int(r1)
}

func (h handle) d2xxGetBitMode() (byte, int) {
	var s uint8
	r1, _, _ := pGetBitMode.Call(h.toH(), uintptr(unsafe.Pointer(&s)))
	return s, int(r1)
}

func (h handle) d2xxSetBitMode(mask, mode byte) int {
	r1, _, _ := pSetBitMode.Call(h.toH(), uintptr(mask), uintptr(mode))
	return int(r1)
}

func (h handle) toH() uintptr {
	return uintptr(h)
}

//

var (
	pClose                *windows.Proc
	pCreateDeviceInfoList *windows.Proc
	pGetBitMode           *windows.Proc
	pGetComPortNumber     *windows.Proc
	pGetDeviceInfo        *windows.Proc
	pGetLibraryVersion    *windows.Proc
	pOpen                 *windows.Proc
	pSetBitMode           *windows.Proc
)

func init() {
	if dll, _ := windows.LoadDLL("ftd2xx.dll"); dll != nil {
		// If any function is not found, disable the support.
		disabled = false
		find := func(n string) *windows.Proc {
			s, _ := dll.FindProc(n)
			if s == nil {
				disabled = true
			}
			return s
		}
		pClose = find("FT_Close")
		pCreateDeviceInfoList = find("FT_CreateDeviceInfoList")
		pGetBitMode = find("FT_GetBitMode")
		pGetComPortNumber = find("FT_GetComPortNumber")
		pGetDeviceInfo = find("FT_GetDeviceInfo")
		pGetLibraryVersion = find("FT_GetLibraryVersion")
		pOpen = find("FT_Open")
		pSetBitMode = find("FT_SetBitMode")
	}
}

func toStr(c []byte) string {
	i := bytes.IndexByte(c, 0)
	if i != -1 {
		return string(c[:i])
	}
	return string(c)
}
