// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seriesset splits a wide, pre-sorted row batch into contiguous
// per-series runs and publishes them as SeriesSet values to an asynchronous
// consumer.
package seriesset

import "github.com/Alvinccan/influxdb-iox/pkg/tsdb"

// ColumnKind discriminates the closed set of column types the converter
// understands.
type ColumnKind uint8

const (
	ColumnKindString ColumnKind = iota
	ColumnKindInt64
	ColumnKindFloat64
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnKindString:
		return "string"
	case ColumnKindInt64:
		return "int64"
	case ColumnKindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// Column is a single typed column of a RecordBatch. Exactly one accessor is
// valid for a given column's Kind; the others return the zero value.
type Column interface {
	Kind() ColumnKind
	Len() int
	StringAt(row int) string
	Int64At(row int) int64
	Float64At(row int) float64
}

// Schema names and orders a RecordBatch's columns.
type Schema struct {
	Names []string
}

// IndexOf returns the column index for name, or -1 if absent.
func (s Schema) IndexOf(name string) int {
	for i, n := range s.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// RecordBatch is an externally produced table with a named, ordered schema.
// Rows must already be ordered lexicographically by the tag columns the
// caller names when invoking Convert - this is a precondition the converter
// does not re-check.
//
// This is deliberately a small interface rather than a binding to a
// concrete third-party columnar library (e.g. Apache Arrow): the engine
// only ever needs column-at-a-time typed access, and any caller already
// holding an Arrow record (or any other columnar representation) can adapt
// it to this interface without the engine depending on a specific Arrow
// version. See DESIGN.md.
type RecordBatch interface {
	Schema() Schema
	NumRows() int
	Column(i int) Column
}

// stringColumn, int64Column and float64Column are the plain-slice Column
// implementations backing BasicRecordBatch.

type stringColumn []string

func (c stringColumn) Kind() ColumnKind       { return ColumnKindString }
func (c stringColumn) Len() int               { return len(c) }
func (c stringColumn) StringAt(row int) string { return c[row] }
func (c stringColumn) Int64At(int) int64      { return 0 }
func (c stringColumn) Float64At(int) float64  { return 0 }

type int64Column []int64

func (c int64Column) Kind() ColumnKind        { return ColumnKindInt64 }
func (c int64Column) Len() int                { return len(c) }
func (c int64Column) StringAt(int) string     { return "" }
func (c int64Column) Int64At(row int) int64   { return c[row] }
func (c int64Column) Float64At(int) float64   { return 0 }

type float64Column []float64

func (c float64Column) Kind() ColumnKind         { return ColumnKindFloat64 }
func (c float64Column) Len() int                 { return len(c) }
func (c float64Column) StringAt(int) string      { return "" }
func (c float64Column) Int64At(int) int64        { return 0 }
func (c float64Column) Float64At(row int) float64 { return c[row] }

// NewStringColumn, NewInt64Column and NewFloat64Column adapt plain Go
// slices to Column, for constructing a BasicRecordBatch in tests or from
// in-process data without a third-party columnar dependency.
func NewStringColumn(values []string) Column   { return stringColumn(values) }
func NewInt64Column(values []int64) Column     { return int64Column(values) }
func NewFloat64Column(values []float64) Column { return float64Column(values) }

// BasicRecordBatch is a plain-slice RecordBatch implementation.
type BasicRecordBatch struct {
	schema  Schema
	numRows int
	columns []Column
}

// NewBasicRecordBatch builds a RecordBatch from a schema and columns, all of
// which must report the same Len(). Mismatched lengths are a caller bug and
// panic, since a RecordBatch with ragged columns cannot represent any valid
// row set.
func NewBasicRecordBatch(names []string, columns []Column) *BasicRecordBatch {
	numRows := 0
	if len(columns) > 0 {
		numRows = columns[0].Len()
	}
	for _, c := range columns {
		if c.Len() != numRows {
			panic("seriesset: ragged RecordBatch columns")
		}
	}
	return &BasicRecordBatch{
		schema:  Schema{Names: names},
		numRows: numRows,
		columns: columns,
	}
}

func (b *BasicRecordBatch) Schema() Schema    { return b.schema }
func (b *BasicRecordBatch) NumRows() int      { return b.numRows }
func (b *BasicRecordBatch) Column(i int) Column { return b.columns[i] }

// resolveColumns resolves tag, field and time column indices by name,
// wrapping tsdb.ColumnNotFoundError for the first missing name encountered.
func resolveColumns(schema Schema, tagNames, fieldNames []string, timeName string) (tagIdx, fieldIdx []int, timeIdx int, err error) {
	tagIdx = make([]int, len(tagNames))
	for i, name := range tagNames {
		idx := schema.IndexOf(name)
		if idx < 0 {
			return nil, nil, 0, &tsdb.ColumnNotFoundError{Name: name}
		}
		tagIdx[i] = idx
	}
	fieldIdx = make([]int, len(fieldNames))
	for i, name := range fieldNames {
		idx := schema.IndexOf(name)
		if idx < 0 {
			return nil, nil, 0, &tsdb.ColumnNotFoundError{Name: name}
		}
		fieldIdx[i] = idx
	}
	timeIdx = schema.IndexOf(timeName)
	if timeIdx < 0 {
		return nil, nil, 0, &tsdb.ColumnNotFoundError{Name: timeName}
	}
	return tagIdx, fieldIdx, timeIdx, nil
}
