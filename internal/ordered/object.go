/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ordered provides an insertion-ordered string-keyed object that
// serializes with JavaScript property order, so generated theme modules match
// what JSON.stringify would print for the same object.
package ordered

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
)

// Object is an insertion-ordered map from string keys to values.
// Values are strings, other JSON scalars, or nested *Object.
type Object struct {
	keys   []string
	values map[string]any
}

// New returns an empty object.
func New() *Object {
	return &Object{values: make(map[string]any)}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps its position.
func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Child returns the nested object under key, creating it when absent.
// A scalar already stored under key is moved to the new object's DEFAULT key.
func (o *Object) Child(key string) *Object {
	switch v := o.values[key].(type) {
	case *Object:
		return v
	case nil:
		child := New()
		o.Set(key, child)
		return child
	default:
		child := New()
		child.Set("DEFAULT", v)
		o.Set(key, child)
		return child
	}
}

// Path walks keys from o, creating nested objects as needed, and returns the innermost one.
func (o *Object) Path(keys ...string) *Object {
	cur := o
	for _, k := range keys {
		cur = cur.Child(k)
	}
	return cur
}

// JSKeys returns the keys in JavaScript property order: array-index keys in
// ascending numeric order first, then the remaining keys in insertion order.
func (o *Object) JSKeys() []string {
	var indices, names []string
	for _, k := range o.keys {
		if isArrayIndex(k) {
			indices = append(indices, k)
		} else {
			names = append(names, k)
		}
	}
	slices.SortStableFunc(indices, func(a, b string) int {
		x, _ := strconv.ParseUint(a, 10, 32)
		y, _ := strconv.ParseUint(b, 10, 32)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	return append(indices, names...)
}

// isArrayIndex reports whether k is a canonical array index (0 .. 2^32-2).
func isArrayIndex(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	n, err := strconv.ParseUint(k, 10, 64)
	return err == nil && n < 1<<32-1
}

// MarshalJSON encodes the object compactly in JavaScript property order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range o.JSKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, o.values[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	if obj, ok := v.(*Object); ok {
		return obj.encode(buf)
	}
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	// JSON.stringify does not escape <, > or &.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(scratch.Bytes(), "\n"))
	return nil
}

// MarshalIndent encodes v like JSON.stringify(v, null, indent).
func MarshalIndent(v *Object, indent string) ([]byte, error) {
	compact, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
