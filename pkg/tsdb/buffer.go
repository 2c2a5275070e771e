// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "sort"

// numeric is the closed set of value kinds a ColumnarBuffer can hold.
type numeric interface {
	int64 | float64
}

// ColumnarBuffer is an append-only, per-series vector of (time, value)
// pairs. Times are assumed non-decreasing in insertion order - the engine
// does not sort on write, matching a monotonic-per-series ingest pattern -
// so RangeSlice can locate the requested window with a binary search rather
// than a scan.
//
// Created on first point for a series, grows without bound for the
// partition's lifetime: eviction and back-pressure are explicitly out of
// scope (spec Non-goals), unlike the teacher's bounded, chained
// PersistentBufferPool design in the original pkg/metricstore/buffer.go,
// which exists specifically to cap memory for fixed-frequency HPC metrics.
type ColumnarBuffer[T numeric] struct {
	times  []int64
	values []T
}

// NewColumnarBuffer returns an empty buffer.
func NewColumnarBuffer[T numeric]() *ColumnarBuffer[T] {
	return &ColumnarBuffer[T]{}
}

// Append adds (t, v) to the end of the buffer. O(1) amortized.
func (b *ColumnarBuffer[T]) Append(t int64, v T) {
	b.times = append(b.times, t)
	b.values = append(b.values, v)
}

// Len returns the number of points currently stored.
func (b *ColumnarBuffer[T]) Len() int { return len(b.times) }

// ReadPoint is one (time, value) observation read back out of a
// ColumnarBuffer or carried in a ReadBatch.
type ReadPoint[T numeric] struct {
	Time  int64
	Value T
}

// RangeSlice returns the half-open [tLo, tHi) slice of the buffer, in
// insertion (i.e. time) order. Returns an empty slice if the buffer is
// empty or the range excludes every stored time - including the tLo == tHi
// case, which is a valid, always-empty call.
func (b *ColumnarBuffer[T]) RangeSlice(tLo, tHi int64) []ReadPoint[T] {
	if len(b.times) == 0 || tLo >= tHi {
		return nil
	}

	lo := sort.Search(len(b.times), func(i int) bool { return b.times[i] >= tLo })
	hi := sort.Search(len(b.times), func(i int) bool { return b.times[i] >= tHi })
	if lo >= hi {
		return nil
	}

	out := make([]ReadPoint[T], hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = ReadPoint[T]{Time: b.times[i], Value: b.values[i]}
	}
	return out
}
