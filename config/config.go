// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the serial port settings of the relay board.
//
// The settings are normally stored in config.xml beside the executable:
//
//  <Settings>
//    <COMPort>3</COMPort>
//    <BaudRate>9600</BaudRate>
//    <Parity>None</Parity>
//    <DataBits>8</DataBits>
//    <StopBits>One</StopBits>
//  </Settings>
//
// The elements may be nested at any depth; the first one of each name is
// used. A YAML file with the same keys is also accepted.
//
// There are no defaults: a missing or invalid value is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileName is the name of the configuration file looked up beside the
// executable.
const FileName = "config.xml"

// Parity is the serial parity mode.
type Parity int

// Parity values, numbered like the .NET System.IO.Ports.Parity enum so that
// existing configuration files keep working.
const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
	ParityMark
	ParitySpace
)

var parityNames = []string{"None", "Odd", "Even", "Mark", "Space"}

func (p Parity) String() string {
	if p < 0 || int(p) >= len(parityNames) {
		return "Parity(" + strconv.Itoa(int(p)) + ")"
	}
	return parityNames[p]
}

// ParseParity parses a parity name (case insensitive) or its numeric value.
func ParseParity(s string) (Parity, error) {
	i, err := parseEnum(s, parityNames)
	if err != nil {
		return 0, err
	}
	return Parity(i), nil
}

// StopBits is the number of stop bits.
type StopBits int

// StopBits values. 0 (None) exists in the .NET enum but is not a valid
// setting for a port so it is rejected.
const (
	StopBitsOne StopBits = iota + 1
	StopBitsTwo
	StopBitsOnePointFive
)

var stopBitsNames = []string{"None", "One", "Two", "OnePointFive"}

func (s StopBits) String() string {
	if s < 0 || int(s) >= len(stopBitsNames) {
		return "StopBits(" + strconv.Itoa(int(s)) + ")"
	}
	return stopBitsNames[s]
}

// ParseStopBits parses a stop bits name (case insensitive) or its numeric
// value.
func ParseStopBits(s string) (StopBits, error) {
	i, err := parseEnum(s, stopBitsNames)
	if err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, errors.New("None is not a valid number of stop bits")
	}
	return StopBits(i), nil
}

// Settings is the content of the configuration file.
//
// It is immutable once loaded.
type Settings struct {
	// COMPort is the number of the serial port assigned to the relay board,
	// e.g. 3 for COM3 or /dev/ttyUSB3.
	COMPort  int
	BaudRate int
	Parity   Parity
	DataBits int
	StopBits StopBits
	// Transport is the serial backend to use. It is optional; empty selects
	// the default backend.
	Transport string
}

// DefaultPath returns the path of config.xml beside the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	if p, err := filepath.EvalSymlinks(exe); err == nil {
		exe = p
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads the settings from the file at path.
//
// Files ending with .yaml or .yml are decoded as YAML, everything else as
// XML.
func Load(path string) (*Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var f fields
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err = decodeYAML(raw)
	default:
		f, err = decodeXML(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	s, err := f.settings()
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

//

// Element names, shared by the XML and YAML decoders.
const (
	keyCOMPort   = "COMPort"
	keyBaudRate  = "BaudRate"
	keyParity    = "Parity"
	keyDataBits  = "DataBits"
	keyStopBits  = "StopBits"
	keyTransport = "Transport"
)

var required = []string{keyCOMPort, keyBaudRate, keyParity, keyDataBits, keyStopBits}

// fields is the raw text of each known element found in the document.
type fields map[string]string

func (f fields) settings() (*Settings, error) {
	for _, k := range required {
		if _, ok := f[k]; !ok {
			return nil, fmt.Errorf("missing %s", k)
		}
	}
	s := &Settings{Transport: f[keyTransport]}
	var err error
	if s.COMPort, err = positive(f, keyCOMPort); err != nil {
		return nil, err
	}
	if s.BaudRate, err = positive(f, keyBaudRate); err != nil {
		return nil, err
	}
	if s.DataBits, err = positive(f, keyDataBits); err != nil {
		return nil, err
	}
	if s.DataBits < 5 || s.DataBits > 8 {
		return nil, fmt.Errorf("%s: %d is not between 5 and 8", keyDataBits, s.DataBits)
	}
	if s.Parity, err = ParseParity(f[keyParity]); err != nil {
		return nil, fmt.Errorf("%s: %w", keyParity, err)
	}
	if s.StopBits, err = ParseStopBits(f[keyStopBits]); err != nil {
		return nil, fmt.Errorf("%s: %w", keyStopBits, err)
	}
	return s, nil
}

func positive(f fields, k string) (int, error) {
	v := f[k]
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", k, v)
	}
	if i <= 0 {
		return 0, fmt.Errorf("%s: %d must be positive", k, i)
	}
	return i, nil
}

// parseEnum returns the index of s in names, either by name or by number.
func parseEnum(s string, names []string) (int, error) {
	for i, n := range names {
		if strings.EqualFold(s, n) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < len(names) {
		return i, nil
	}
	return 0, fmt.Errorf("%q is not one of %s", s, strings.Join(names, ", "))
}
