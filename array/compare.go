// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"bytes"

	"github.com/solidcoredata/arrow/arrow"
)

// Equal reports whether two arrays hold the same type and the same value in
// every slot, nulls included.
func Equal(left, right Interface) bool {
	switch {
	case left == nil || right == nil:
		return left == nil && right == nil
	case !arrow.TypeEqual(left.DataType(), right.DataType()):
		return false
	case left.Len() != right.Len():
		return false
	case left.NullN() != right.NullN():
		return false
	}
	for i := 0; i < left.Len(); i++ {
		if !dynamicValueEqual(left.getOneForIndex(i), right.getOneForIndex(i)) {
			return false
		}
	}
	return true
}

// RecordEqual reports whether two records agree on schema, length, and
// every column value.
func RecordEqual(left, right *Record) bool {
	switch {
	case left == nil || right == nil:
		return left == nil && right == nil
	case !left.Schema().Equal(right.Schema()):
		return false
	case left.NumRows() != right.NumRows():
		return false
	}
	for i := range left.Columns() {
		if !Equal(left.Column(i), right.Column(i)) {
			return false
		}
	}
	return true
}

func dynamicValueEqual(l, r interface{}) bool {
	switch lv := l.(type) {
	case nil:
		return r == nil
	case []byte:
		rv, ok := r.([]byte)
		return ok && bytes.Equal(lv, rv)
	case []interface{}:
		rv, ok := r.([]interface{})
		if !ok || len(lv) != len(rv) {
			return false
		}
		for i := range lv {
			if !dynamicValueEqual(lv[i], rv[i]) {
				return false
			}
		}
		return true
	default:
		return l == r
	}
}
