// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "fmt"

// ValueType discriminates the small closed set of value kinds a series can
// carry. Fixed at first insert for a given series key; an intern call that
// disagrees with the stored type fails with TypeMismatchError.
type ValueType uint8

const (
	// ValueTypeUnknown is the zero value; never assigned to a real series.
	ValueTypeUnknown ValueType = iota
	ValueTypeI64
	ValueTypeF64
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeI64:
		return "i64"
	case ValueTypeF64:
		return "f64"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// SeriesId interns a SeriesKey within one Partition. Monotonically assigned
// from a per-partition counter starting at 1; stable for the partition's
// lifetime.
type SeriesId uint64

// Point is a single timestamped observation, addressed by its canonical
// series key until seriesDirectory.intern assigns it a SeriesId.
//
// Time is an opaque signed 64-bit nanosecond timestamp: comparisons are
// total and no value is special.
type Point struct {
	SeriesKey string
	Time      int64
	Type      ValueType
	I64Value  int64
	F64Value  float64

	// Tags are the (key, value) pairs indexed into the PostingIndex on this
	// series' first sighting - by convention including the measurement name
	// and field name under the reserved keys "_m" and "_f" alongside any
	// real tags, so metadata scans see them like any other tag.
	Tags []TagPair

	// Id is populated by seriesDirectory.intern as a side effect; callers do
	// not set it.
	Id SeriesId
}
