// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seriesset

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alvinccan/influxdb-iox/pkg/tsdb"
)

func oneBatch(b RecordBatch) iter.Seq[RecordBatch] {
	return func(yield func(RecordBatch) bool) {
		yield(b)
	}
}

func drain(t *testing.T, ch <-chan Result) []Result {
	t.Helper()
	var out []Result
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, r)
		case <-timeout:
			t.Fatal("timed out draining Convert output")
		}
	}
}

func TestConvertSplitsOnSingleTagColumn(t *testing.T) {
	batch := NewBasicRecordBatch(
		[]string{"host", "time", "usage_system"},
		[]Column{
			NewStringColumn([]string{"a", "a", "b", "b", "b"}),
			NewInt64Column([]int64{1, 2, 1, 2, 3}),
			NewInt64Column([]int64{10, 20, 30, 40, 50}),
		},
	)

	results := drain(t, Convert(context.Background(), 0, "cpu", []string{"host"}, []string{"usage_system"}, oneBatch(batch)))

	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
	}

	assert.Equal(t, "cpu", results[0].Set.Table)
	assert.Equal(t, []TagValue{{Key: "host", Value: "a"}}, results[0].Set.Tags)
	assert.Equal(t, 0, results[0].Set.StartRow)
	assert.Equal(t, 2, results[0].Set.NumRows)

	assert.Equal(t, []TagValue{{Key: "host", Value: "b"}}, results[1].Set.Tags)
	assert.Equal(t, 2, results[1].Set.StartRow)
	assert.Equal(t, 3, results[1].Set.NumRows)
}

func TestConvertSplitsOnMultipleTagColumns(t *testing.T) {
	// A transition in either tag column starts a new run, even when the
	// other tag column's value is unchanged.
	batch := NewBasicRecordBatch(
		[]string{"host", "region", "time", "free"},
		[]Column{
			NewStringColumn([]string{"a", "a", "a", "b"}),
			NewStringColumn([]string{"east", "east", "west", "west"}),
			NewInt64Column([]int64{1, 2, 3, 4}),
			NewInt64Column([]int64{100, 200, 300, 400}),
		},
	)

	results := drain(t, Convert(context.Background(), 0, "mem", []string{"host", "region"}, []string{"free"}, oneBatch(batch)))

	require.Len(t, results, 3)
	assert.Equal(t, []TagValue{{Key: "host", Value: "a"}, {Key: "region", Value: "east"}}, results[0].Set.Tags)
	assert.Equal(t, 2, results[0].Set.NumRows)
	assert.Equal(t, []TagValue{{Key: "host", Value: "a"}, {Key: "region", Value: "west"}}, results[1].Set.Tags)
	assert.Equal(t, 1, results[1].Set.NumRows)
	assert.Equal(t, []TagValue{{Key: "host", Value: "b"}, {Key: "region", Value: "west"}}, results[2].Set.Tags)
	assert.Equal(t, 1, results[2].Set.NumRows)
}

func TestConvertZeroTagColumnsIsOneRun(t *testing.T) {
	batch := NewBasicRecordBatch(
		[]string{"time", "value"},
		[]Column{
			NewInt64Column([]int64{1, 2, 3}),
			NewInt64Column([]int64{10, 20, 30}),
		},
	)

	results := drain(t, Convert(context.Background(), 0, "t", nil, []string{"value"}, oneBatch(batch)))

	require.Len(t, results, 1)
	assert.Empty(t, results[0].Set.Tags)
	assert.Equal(t, 0, results[0].Set.StartRow)
	assert.Equal(t, 3, results[0].Set.NumRows)
}

func TestConvertEmptyBatchEmitsNothing(t *testing.T) {
	batch := NewBasicRecordBatch(
		[]string{"host", "time", "value"},
		[]Column{
			NewStringColumn(nil),
			NewInt64Column(nil),
			NewInt64Column(nil),
		},
	)

	results := drain(t, Convert(context.Background(), 0, "t", []string{"host"}, []string{"value"}, oneBatch(batch)))
	assert.Empty(t, results)
}

func TestConvertMissingColumnReportsError(t *testing.T) {
	batch := NewBasicRecordBatch(
		[]string{"time", "value"},
		[]Column{NewInt64Column([]int64{1}), NewInt64Column([]int64{10})},
	)

	results := drain(t, Convert(context.Background(), 0, "t", []string{"host"}, []string{"value"}, oneBatch(batch)))

	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	var notFound *tsdb.ColumnNotFoundError
	require.ErrorAs(t, results[0].Err, &notFound)
	assert.Equal(t, "host", notFound.Name)
}

func TestConvertNonStringTagColumnReportsError(t *testing.T) {
	batch := NewBasicRecordBatch(
		[]string{"host", "time", "value"},
		[]Column{
			NewInt64Column([]int64{1, 2}), // host is declared a tag but is int64-typed
			NewInt64Column([]int64{1, 2}),
			NewInt64Column([]int64{10, 20}),
		},
	)

	results := drain(t, Convert(context.Background(), 0, "t", []string{"host"}, []string{"value"}, oneBatch(batch)))

	require.Len(t, results, 1)
	var badType *tsdb.UnsupportedTagTypeError
	require.ErrorAs(t, results[0].Err, &badType)
	assert.Equal(t, "host", badType.Column)
}

func TestConvertSecondBatchReportsMultiBatchError(t *testing.T) {
	batch := NewBasicRecordBatch(
		[]string{"host", "time", "value"},
		[]Column{NewStringColumn([]string{"a"}), NewInt64Column([]int64{1}), NewInt64Column([]int64{10})},
	)
	two := func(yield func(RecordBatch) bool) {
		if !yield(batch) {
			return
		}
		yield(batch)
	}

	results := drain(t, Convert(context.Background(), 0, "t", []string{"host"}, []string{"value"}, two))

	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	var multi *tsdb.MultiBatchNotSupportedError
	require.ErrorAs(t, results[1].Err, &multi)
}
