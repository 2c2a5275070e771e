// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seriesset

// TimeColumnName is the fixed sentinel name of the mandatory time column a
// RecordBatch must carry for the converter.
const TimeColumnName = "time"

// TagValue is one resolved (tag name, tag value) pair identifying a run.
type TagValue struct {
	Key   string
	Value string
}

// SeriesSet is a view over a contiguous row range [StartRow, StartRow+NumRows)
// within one RecordBatch: one logical series' worth of rows. The underlying
// Batch is shared across every SeriesSet the same Convert call emits and
// must outlive all of them; callers must not mutate it.
type SeriesSet struct {
	Table         string
	Tags          []TagValue
	TimestampIndex int
	FieldIndices  []int
	StartRow      int
	NumRows       int
	Batch         RecordBatch
}
