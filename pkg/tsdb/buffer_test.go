// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "testing"

// ─── ColumnarBuffer ──────────────────────────────────────────────────────────

// TestColumnarBufferRangeSliceHalfOpen verifies the [t_lo, t_hi) contract,
// including the upper bound being exclusive.
func TestColumnarBufferRangeSliceHalfOpen(t *testing.T) {
	buf := NewColumnarBuffer[int64]()
	for i, v := range []int64{10, 20, 30, 40} {
		buf.Append(int64(i+1), v) // times 1,2,3,4
	}

	got := buf.RangeSlice(2, 4)
	want := []ReadPoint[int64]{{Time: 2, Value: 20}, {Time: 3, Value: 30}}
	if len(got) != len(want) {
		t.Fatalf("RangeSlice(2,4) len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RangeSlice(2,4)[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestColumnarBufferRangeSliceEmptyRange verifies that t_lo == t_hi is a
// valid call that always returns an empty result.
func TestColumnarBufferRangeSliceEmptyRange(t *testing.T) {
	buf := NewColumnarBuffer[int64]()
	buf.Append(5, 50)

	got := buf.RangeSlice(5, 5)
	if len(got) != 0 {
		t.Errorf("RangeSlice(5,5) = %v, want empty", got)
	}
}

// TestColumnarBufferRangeSliceEmptyBuffer verifies an empty buffer always
// returns an empty result regardless of range.
func TestColumnarBufferRangeSliceEmptyBuffer(t *testing.T) {
	buf := NewColumnarBuffer[float64]()
	got := buf.RangeSlice(0, 100)
	if len(got) != 0 {
		t.Errorf("RangeSlice on empty buffer = %v, want empty", got)
	}
}

// TestColumnarBufferRangeSliceExcludesOutOfRange verifies a range excluding
// every stored time returns empty.
func TestColumnarBufferRangeSliceExcludesOutOfRange(t *testing.T) {
	buf := NewColumnarBuffer[int64]()
	buf.Append(100, 1)
	buf.Append(200, 2)

	if got := buf.RangeSlice(0, 100); len(got) != 0 {
		t.Errorf("RangeSlice(0,100) = %v, want empty (upper bound exclusive)", got)
	}
	if got := buf.RangeSlice(201, 300); len(got) != 0 {
		t.Errorf("RangeSlice(201,300) = %v, want empty", got)
	}
}

// TestColumnarBufferWriteThenReadOrder verifies that two writes to the same
// series with t1 <= t2 are both returned, in order, over [t1, t2+1).
func TestColumnarBufferWriteThenReadOrder(t *testing.T) {
	buf := NewColumnarBuffer[int64]()
	buf.Append(10, 1)
	buf.Append(10, 2) // equal timestamps are allowed; insertion order is preserved
	buf.Append(20, 3)

	got := buf.RangeSlice(10, 21)
	want := []ReadPoint[int64]{{10, 1}, {10, 2}, {20, 3}}
	if len(got) != len(want) {
		t.Fatalf("RangeSlice len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RangeSlice[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
