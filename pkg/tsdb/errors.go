// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "fmt"

// ColumnNotFoundError is returned by the SeriesSetConverter when a requested
// tag, field or time column name does not exist in the batch's schema.
type ColumnNotFoundError struct {
	Name string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("[TSDB]> column not found: %s", e.Name)
}

// UnsupportedTagTypeError is returned by the SeriesSetConverter when a tag
// column is not string-typed; transition detection is only defined over
// string columns.
type UnsupportedTagTypeError struct {
	Column string
	Type   string
}

func (e *UnsupportedTagTypeError) Error() string {
	return fmt.Sprintf("[TSDB]> unsupported tag column type: %s is %s", e.Column, e.Type)
}

// MultiBatchNotSupportedError is returned by the SeriesSetConverter when the
// caller-supplied batch iterator yields a second batch; the converter only
// ever processes one.
type MultiBatchNotSupportedError struct{}

func (e *MultiBatchNotSupportedError) Error() string {
	return "[TSDB]> series set conversion across multiple record batches is not supported"
}

// TypeMismatchError is returned by seriesDirectory.intern when a point's
// value type disagrees with the type recorded for its series key at first
// insert.
type TypeMismatchError struct {
	SeriesKey string
	Expected  ValueType
	Actual    ValueType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("[TSDB]> type mismatch for series %q: expected %s, got %s", e.SeriesKey, e.Expected, e.Actual)
}

// InvalidPredicateError is returned when a predicate tree has no root (a nil
// Predicate). A nil child of And or Or is reported as
// UnsupportedPredicateError instead.
type InvalidPredicateError struct {
	Reason string
}

func (e *InvalidPredicateError) Error() string {
	return fmt.Sprintf("[TSDB]> invalid predicate: %s", e.Reason)
}

// UnsupportedPredicateError is returned by the PredicateEvaluator when it
// encounters a node shape it does not know how to interpret.
type UnsupportedPredicateError struct {
	Node Predicate
}

func (e *UnsupportedPredicateError) Error() string {
	return fmt.Sprintf("[TSDB]> unsupported predicate node: %T", e.Node)
}

// SendingError wraps a failure to deliver a result on an async sink, e.g.
// because the consumer end of the channel has gone away.
type SendingError struct {
	Cause error
}

func (e *SendingError) Error() string {
	return fmt.Sprintf("[TSDB]> sending result: %s", e.Cause)
}

func (e *SendingError) Unwrap() error { return e.Cause }

// ReadingBatchError wraps an error propagated verbatim from a caller-supplied
// record-batch or point-source iterator.
type ReadingBatchError struct {
	Cause error
}

func (e *ReadingBatchError) Error() string {
	return fmt.Sprintf("[TSDB]> reading batch: %s", e.Cause)
}

func (e *ReadingBatchError) Unwrap() error { return e.Cause }
