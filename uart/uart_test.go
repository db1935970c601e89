// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"
	"time"

	tarm "github.com/tarm/serial"
	"go.bug.st/serial"
	"periph.io/x/relayctl/config"
)

var settings = config.Settings{
	COMPort:  3,
	BaudRate: 9600,
	Parity:   config.ParityNone,
	DataBits: 8,
	StopBits: config.StopBitsOne,
}

func TestSend(t *testing.T) {
	p := &fakePort{}
	var gotName string
	d := Sender{Open: func(name string, s *config.Settings) (Port, error) {
		gotName = name
		if *s != settings {
			t.Fatalf("%#v", s)
		}
		return p, nil
	}}
	s := settings
	if err := d.Send(&s, []byte{0x04}); err != nil {
		t.Fatal(err)
	}
	if gotName != PortName(3) {
		t.Fatal(gotName)
	}
	if !bytes.Equal(p.buf.Bytes(), []byte{0x04}) {
		t.Fatalf("%x", p.buf.Bytes())
	}
	if p.writes != 1 || !p.closed {
		t.Fatalf("writes=%d closed=%t", p.writes, p.closed)
	}
}

func TestSend_settle(t *testing.T) {
	p := &fakePort{}
	d := Sender{Settle: 10 * time.Millisecond, Open: func(string, *config.Settings) (Port, error) { return p, nil }}
	s := settings
	start := time.Now()
	if err := d.Send(&s, []byte{1}); err != nil {
		t.Fatal(err)
	}
	if dur := time.Since(start); dur < 10*time.Millisecond {
		t.Fatalf("returned after %s", dur)
	}
	if p.writeTime.IsZero() || p.closeTime.Sub(p.writeTime) < 10*time.Millisecond {
		t.Fatal("close happened too early")
	}
}

func TestSend_openErr(t *testing.T) {
	data := []struct {
		err  error
		kind Kind
	}{
		{fmt.Errorf("open: %w", fs.ErrPermission), AccessDenied},
		{fmt.Errorf("open: %w", fs.ErrNotExist), BadPort},
		{tarm.ErrBadParity, InvalidSettings},
		{errors.New("EIO"), InvalidState},
	}
	for i, line := range data {
		d := Sender{Open: func(string, *config.Settings) (Port, error) { return nil, line.err }}
		s := settings
		err := d.Send(&s, []byte{1})
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("#%d: got %v", i, err)
		}
		if e.Kind != line.kind {
			t.Fatalf("#%d: got %s; want %s", i, e.Kind, line.kind)
		}
		if !errors.Is(err, line.err) {
			t.Fatalf("#%d: cause lost", i)
		}
		if !strings.Contains(err.Error(), PortName(3)) {
			t.Fatalf("#%d: %q", i, err)
		}
	}
}

func TestSend_notOpen(t *testing.T) {
	d := Sender{Open: func(string, *config.Settings) (Port, error) { return nil, nil }}
	s := settings
	if err := d.Send(&s, []byte{1}); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("got %v", err)
	}
}

func TestSend_writeErr(t *testing.T) {
	p := &fakePort{err: io.ErrClosedPipe}
	d := Sender{Open: func(string, *config.Settings) (Port, error) { return p, nil }}
	s := settings
	err := d.Send(&s, []byte{1})
	var e *Error
	if !errors.As(err, &e) || e.Kind != InvalidState {
		t.Fatalf("got %v", err)
	}
	if !p.closed {
		t.Fatal("port left open")
	}
}

func TestSend_shortWrite(t *testing.T) {
	p := &fakePort{short: true}
	d := Sender{Open: func(string, *config.Settings) (Port, error) { return p, nil }}
	s := settings
	if err := d.Send(&s, []byte{1}); !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("got %v", err)
	}
}

func TestSend_unknownTransport(t *testing.T) {
	d := Sender{}
	s := settings
	s.Transport = "carrier pigeon"
	err := d.Send(&s, []byte{1})
	if err == nil || !strings.Contains(err.Error(), "carrier pigeon") {
		t.Fatalf("got %v", err)
	}
}

func TestBackends(t *testing.T) {
	b := Backends()
	if len(b) != 2 || b[0] != "bugst" || b[1] != "tarm" {
		t.Fatal(b)
	}
	for _, n := range append(b, "") {
		if _, err := backend(n); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPortName(t *testing.T) {
	if n := PortName(12); n != PortPrefix+"12" {
		t.Fatal(n)
	}
}

func TestBugstMode(t *testing.T) {
	s := config.Settings{BaudRate: 19200, DataBits: 7, Parity: config.ParityMark, StopBits: config.StopBitsOnePointFive}
	m, err := bugstMode(&s)
	if err != nil {
		t.Fatal(err)
	}
	want := serial.Mode{BaudRate: 19200, DataBits: 7, Parity: serial.MarkParity, StopBits: serial.OnePointFiveStopBits}
	if *m != want {
		t.Fatalf("%#v", m)
	}
	s.StopBits = 0
	if _, err := bugstMode(&s); kindOf(err) != InvalidSettings {
		t.Fatalf("got %v", err)
	}
}

func TestTarmMapping(t *testing.T) {
	if p := tarmParity(config.ParityEven); p != tarm.ParityEven {
		t.Fatal(p)
	}
	if p := tarmParity(config.Parity(42)); p != 0 {
		t.Fatal(p)
	}
	if s := tarmStopBits(config.StopBitsTwo); s != tarm.Stop2 {
		t.Fatal(s)
	}
	if s := tarmStopBits(config.StopBitsOnePointFive); s != tarm.Stop1Half {
		t.Fatal(s)
	}
}

//

type fakePort struct {
	buf       bytes.Buffer
	err       error
	short     bool
	writes    int
	closed    bool
	writeTime time.Time
	closeTime time.Time
}

func (f *fakePort) Write(b []byte) (int, error) {
	f.writes++
	f.writeTime = time.Now()
	if f.err != nil {
		return 0, f.err
	}
	if f.short {
		return 0, nil
	}
	return f.buf.Write(b)
}

func (f *fakePort) Close() error {
	f.closed = true
	f.closeTime = time.Now()
	return nil
}
