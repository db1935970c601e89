// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

func isKey(name string) bool {
	if name == keyTransport {
		return true
	}
	for _, k := range required {
		if k == name {
			return true
		}
	}
	return false
}

// decodeXML returns the text of the first element of each known name, in
// document order, at any depth.
func decodeXML(raw []byte) (fields, error) {
	d := xml.NewDecoder(bytes.NewReader(raw))
	f := fields{}
	root := false
	for {
		t, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		s, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		root = true
		if _, found := f[s.Name.Local]; found || !isKey(s.Name.Local) {
			continue
		}
		v, err := innerText(d)
		if err != nil {
			return nil, err
		}
		f[s.Name.Local] = v
	}
	if !root {
		return nil, errors.New("no root element")
	}
	return f, nil
}

// innerText concatenates the character data up to the end of the current
// element.
func innerText(d *xml.Decoder) (string, error) {
	var b strings.Builder
	for depth := 1; depth > 0; {
		t, err := d.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch v := t.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(v)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// decodeYAML returns the scalar value of each known key. Top level keys win
// over nested ones.
func decodeYAML(raw []byte) (fields, error) {
	var doc map[interface{}]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("empty document")
	}
	f := fields{}
	queue := []map[interface{}]interface{}{doc}
	for len(queue) != 0 {
		m := queue[0]
		queue = queue[1:]
		keys := make([]string, 0, len(m))
		byName := make(map[string]interface{}, len(m))
		for k, v := range m {
			n := fmt.Sprint(k)
			keys = append(keys, n)
			byName[n] = v
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch v := byName[k].(type) {
			case map[interface{}]interface{}:
				queue = append(queue, v)
			case []interface{}:
				return nil, fmt.Errorf("%s: lists are not supported", k)
			default:
				if _, found := f[k]; found || !isKey(k) || v == nil {
					continue
				}
				f[k] = strings.TrimSpace(fmt.Sprint(v))
			}
		}
	}
	return f, nil
}
