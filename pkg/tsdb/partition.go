// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import (
	"context"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
)

// TagPair is one (key, value) entry a Point carries alongside its canonical
// SeriesKey. By the convention original_source establishes, the measurement
// name and field name are carried as ordinary tag pairs under the reserved
// keys "_m" and "_f" respectively, so that tag_keys()/tag_values() see them
// like any other tag; Partition does not synthesize these - callers
// populate them.
type TagPair struct {
	Key   string
	Value string
}

// TimeRange is a half-open [Start, End) window of nanosecond timestamps.
type TimeRange struct {
	Start int64
	End   int64
}

// Partition composes a SeriesDirectory, a PostingIndex, and one
// ColumnarBuffer per series. It is the engine's unit of write ownership:
// per spec, Partition does not embed a mutex. The engine does not
// synchronize its own internal maps or provide per-partition concurrency;
// a Partition (and everything it owns - its directory, its index, its
// buffers) is mutated by at most one goroutine at a time, and external
// locking at the partition boundary is the host's responsibility.
type Partition struct {
	directory *seriesDirectory
	index     *postingIndex

	i64Buffers map[SeriesId]*ColumnarBuffer[int64]
	f64Buffers map[SeriesId]*ColumnarBuffer[float64]

	readChanCapacity int
}

// NewPartition returns an empty partition. readChanCapacity bounds the
// channel Read publishes ReadBatches on; a value <= 0 uses a sensible
// default.
func NewPartition(readChanCapacity int) *Partition {
	if readChanCapacity <= 0 {
		readChanCapacity = 64
	}
	return &Partition{
		directory:        newSeriesDirectory(),
		index:            newPostingIndex(),
		i64Buffers:       make(map[SeriesId]*ColumnarBuffer[int64]),
		f64Buffers:       make(map[SeriesId]*ColumnarBuffer[float64]),
		readChanCapacity: readChanCapacity,
	}
}

// Write interns and appends each point in order. On the first sighting of a
// series id, its tag pairs are inserted into the posting index. Application
// is all-or-nothing per point: if point i fails, points [0, i) have already
// been applied and the caller sees the error for point i.
func (p *Partition) Write(points []Point) error {
	for i := range points {
		pt := &points[i]
		id, isNew, err := p.directory.intern(pt)
		if err != nil {
			return err
		}
		if isNew {
			for _, tag := range pt.Tags {
				p.index.insert(id, tag.Key, tag.Value)
				p.directory.addTagPairSize(tag.Key, tag.Value)
			}
		}

		switch pt.Type {
		case ValueTypeI64:
			buf, ok := p.i64Buffers[id]
			if !ok {
				buf = NewColumnarBuffer[int64]()
				p.i64Buffers[id] = buf
			}
			buf.Append(pt.Time, pt.I64Value)
		case ValueTypeF64:
			buf, ok := p.f64Buffers[id]
			if !ok {
				buf = NewColumnarBuffer[float64]()
				p.f64Buffers[id] = buf
			}
			buf.Append(pt.Time, pt.F64Value)
		}
	}
	return nil
}

// TagKeys returns every tag key observed by this partition, sorted. range
// and predicate are accepted but ignored - a known approximation carried
// over unchanged from the source system (spec §9 flags this as an open
// question for implementers; this port preserves the existing behavior).
func (p *Partition) TagKeys(_ TimeRange, _ Predicate) []string {
	return p.index.tagKeysSorted()
}

// TagValues returns every value observed under tagKey, sorted; nil if the
// key is unknown. range and predicate are ignored, matching TagKeys.
func (p *Partition) TagValues(tagKey string, _ TimeRange, _ Predicate) []string {
	return p.index.tagValuesSorted(tagKey)
}

// ReadResult is one element of the stream Read publishes: exactly one of
// Batch or Err is meaningful.
type ReadResult struct {
	Batch ReadBatch
	Err   error
}

// Read evaluates predicate to a matching series-id set, then for each id (in
// ascending, i.e. bitmap, order) emits one ReadBatch carrying that series'
// points in r, skipping series whose slice over r is empty. Results are
// published on the returned channel; the channel is closed when the read is
// complete or aborted by an error. batchSizeHint is advisory and is not
// currently honored by splitting a series across multiple ReadBatches - see
// DESIGN.md.
//
// If ctx is cancelled while a send is pending, the goroutine stops: it makes
// a best-effort, non-blocking attempt to deliver a SendingError in place of
// the pending batch (dropped if the channel is full) and closes the channel.
// The channel is always closed, by this goroutine, exactly once.
func (p *Partition) Read(ctx context.Context, batchSizeHint int, predicate Predicate, r TimeRange) (<-chan ReadResult, error) {
	matches, err := evaluatePredicate(p.index, predicate)
	if err != nil {
		return nil, err
	}

	out := make(chan ReadResult, p.readChanCapacity)
	go func() {
		defer close(out)

		it := matches.Iterator()
		for it.HasNext() {
			id := SeriesId(it.Next())
			key, valueType := p.directory.describe(id)

			var values ReadValues
			switch valueType {
			case ValueTypeI64:
				if buf, ok := p.i64Buffers[id]; ok {
					values.I64 = buf.RangeSlice(r.Start, r.End)
				}
			case ValueTypeF64:
				if buf, ok := p.f64Buffers[id]; ok {
					values.F64 = buf.RangeSlice(r.Start, r.End)
				}
			}
			if values.IsEmpty() {
				continue
			}

			batch := ReadResult{Batch: ReadBatch{SeriesKey: key, Values: values}}
			select {
			case out <- batch:
			case <-ctx.Done():
				cclog.Debugf("[TSDB]> read cancelled for partition, series %q dropped: %s", key, ctx.Err())
				select {
				case out <- ReadResult{Err: &SendingError{Cause: ctx.Err()}}:
				default:
				}
				return
			}
		}
	}()
	return out, nil
}
