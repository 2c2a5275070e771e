// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seriesset

import (
	"context"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"

	"github.com/Alvinccan/influxdb-iox/pkg/tsdb"
)

// Result is one element of the stream Convert publishes: exactly one of Set
// or Err is meaningful. A single Err terminates the stream; Convert closes
// the channel immediately afterward.
type Result struct {
	Set SeriesSet
	Err error
}

// Convert splits the single batch yielded by batches into contiguous
// per-series SeriesSets and publishes them, in ascending start-row order, on
// the returned channel. A second yielded batch is reported as
// MultiBatchNotSupportedError; callers are expected to pass an iterator over
// exactly one batch.
//
// Rows must already be sorted lexicographically by tagNames - this is a
// precondition the converter does not re-check. Only string-typed tag
// columns are supported; any other tag column kind is
// UnsupportedTagTypeError.
//
// chanCapacity bounds the output channel; a value <= 0 uses a small default.
func Convert(ctx context.Context, chanCapacity int, table string, tagNames, fieldNames []string, batches iter.Seq[RecordBatch]) <-chan Result {
	if chanCapacity <= 0 {
		chanCapacity = 16
	}
	out := make(chan Result, chanCapacity)

	go func() {
		defer close(out)

		seen := false
		for batch := range batches {
			if seen {
				send(ctx, out, Result{Err: &tsdb.MultiBatchNotSupportedError{}})
				return
			}
			seen = true

			if err := convertBatch(ctx, out, table, tagNames, fieldNames, batch); err != nil {
				send(ctx, out, Result{Err: err})
				return
			}
		}
	}()

	return out
}

func convertBatch(ctx context.Context, out chan<- Result, table string, tagNames, fieldNames []string, batch RecordBatch) error {
	schema := batch.Schema()
	numRows := batch.NumRows()

	tagIdx, fieldIdx, timeIdx, err := resolveColumns(schema, tagNames, fieldNames, TimeColumnName)
	if err != nil {
		return err
	}

	if numRows == 0 {
		return nil
	}

	for i, idx := range tagIdx {
		col := batch.Column(idx)
		if col.Kind() != ColumnKindString {
			return &tsdb.UnsupportedTagTypeError{Column: tagNames[i], Type: col.Kind().String()}
		}
	}

	transitions := computeTransitions(batch, tagIdx, numRows)

	prevEnd := 0
	it := transitions.Iterator()
	for it.HasNext() {
		end := int(it.Next())
		tags := make([]TagValue, len(tagIdx))
		for i, idx := range tagIdx {
			tags[i] = TagValue{Key: tagNames[i], Value: batch.Column(idx).StringAt(prevEnd)}
		}

		set := SeriesSet{
			Table:          table,
			Tags:           tags,
			TimestampIndex: timeIdx,
			FieldIndices:   fieldIdx,
			StartRow:       prevEnd,
			NumRows:        end - prevEnd,
			Batch:          batch,
		}
		if !send(ctx, out, Result{Set: set}) {
			return nil
		}
		prevEnd = end
	}
	return nil
}

// computeTransitions returns, for the given tag columns, the union of their
// per-column transition-row sets (row r where the column's value at r
// differs from r-1), always including numRows as a terminal sentinel. With
// zero tag columns the result is exactly {numRows}, so the whole batch is
// one run.
func computeTransitions(batch RecordBatch, tagIdx []int, numRows int) *roaring.Bitmap {
	union := roaring.New()
	for _, idx := range tagIdx {
		col := batch.Column(idx)
		colTransitions := roaring.New()
		for r := 1; r < numRows; r++ {
			if col.StringAt(r) != col.StringAt(r-1) {
				colTransitions.Add(uint32(r))
			}
		}
		union.Or(colTransitions)
	}
	union.Add(uint32(numRows))
	return union
}

// send publishes r on out, honoring ctx cancellation. Returns false if the
// send did not happen because ctx was cancelled first, in which case it
// makes a best-effort, non-blocking attempt to deliver a SendingError in
// r's place before giving up - the consumer may still be draining the
// channel even though it asked for cancellation.
func send(ctx context.Context, out chan<- Result, r Result) bool {
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		cclog.Debugf("[SERIESSET]> convert cancelled: %s", ctx.Err())
		select {
		case out <- Result{Err: &tsdb.SendingError{Cause: ctx.Err()}}:
		default:
		}
		return false
	}
}
