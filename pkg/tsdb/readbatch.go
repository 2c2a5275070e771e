// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "sort"

// ReadValues is a typed, ordered sequence of (time, value) points for one
// series. Exactly one of the two slices is non-nil, matching the point's
// recorded ValueType.
type ReadValues struct {
	I64 []ReadPoint[int64]
	F64 []ReadPoint[float64]
}

// IsEmpty reports whether neither typed slice carries any points.
func (v ReadValues) IsEmpty() bool {
	return len(v.I64) == 0 && len(v.F64) == 0
}

// Len returns the number of points in whichever slice is populated.
func (v ReadValues) Len() int {
	if len(v.I64) > 0 {
		return len(v.I64)
	}
	return len(v.F64)
}

// StartStopTimes returns the first and last timestamp in the batch. Callers
// must not invoke this on an empty ReadValues.
func (v ReadValues) StartStopTimes() (start, stop int64) {
	switch {
	case len(v.I64) > 0:
		return v.I64[0].Time, v.I64[len(v.I64)-1].Time
	case len(v.F64) > 0:
		return v.F64[0].Time, v.F64[len(v.F64)-1].Time
	default:
		return 0, 0
	}
}

// SortByTime stably re-sorts the populated slice by ascending time.
func (v *ReadValues) SortByTime() {
	switch {
	case len(v.I64) > 0:
		sort.SliceStable(v.I64, func(i, j int) bool { return v.I64[i].Time < v.I64[j].Time })
	case len(v.F64) > 0:
		sort.SliceStable(v.F64, func(i, j int) bool { return v.F64[i].Time < v.F64[j].Time })
	}
}

// AppendBelowTime moves every point of other whose time is <= t onto the end
// of v, removing them from other, and reports whether other is now empty.
// Mismatched typed slices (e.g. appending F64 onto an I64 receiver) are a
// caller bug and panic.
func (v *ReadValues) AppendBelowTime(other *ReadValues, t int64) (otherDrained bool) {
	switch {
	case other.I64 != nil:
		if len(v.F64) > 0 {
			panic("tsdb: AppendBelowTime of I64 points onto F64 ReadValues")
		}
		i := 0
		for i < len(other.I64) && other.I64[i].Time <= t {
			i++
		}
		v.I64 = append(v.I64, other.I64[:i]...)
		other.I64 = other.I64[i:]
		return len(other.I64) == 0
	case other.F64 != nil:
		if len(v.I64) > 0 {
			panic("tsdb: AppendBelowTime of F64 points onto I64 ReadValues")
		}
		i := 0
		for i < len(other.F64) && other.F64[i].Time <= t {
			i++
		}
		v.F64 = append(v.F64, other.F64[:i]...)
		other.F64 = other.F64[i:]
		return len(other.F64) == 0
	default:
		return true
	}
}

// ReadBatch is a non-empty, time-ordered run of points for one series key.
type ReadBatch struct {
	SeriesKey string
	Values    ReadValues
}
