// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tsdb implements the core of an in-memory time-series storage
// engine inspired by the InfluxDB data model: points identified by a string
// series key (measurement + tag set + field) and an integer timestamp,
// indexed so that three query shapes can be answered efficiently - enumerate
// tag keys, enumerate tag values for a key, and read time-ordered points
// matching a predicate within a timestamp range.
//
// A Partition composes three pieces: a SeriesDirectory interning series keys
// to small integer ids, a PostingIndex mapping (tag_key, tag_value) pairs to
// compressed bitmaps of series ids, and one ColumnarBuffer per series
// holding its append-only (time, value) history. Predicate trees are
// interpreted against the PostingIndex by a small recursive-descent
// evaluator to produce the matching id set for a read.
//
// The engine does not synchronize its own internal state: a Partition is
// mutated by at most one goroutine at a time, and external locking at the
// partition boundary is the host's responsibility. Line-protocol parsing,
// HTTP/query surfaces, and persistence to an object store are external
// collaborators and live outside this package.
package tsdb
