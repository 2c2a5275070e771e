// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mergestream implements the two k-way merge algorithms the engine
// uses to combine multiple ordered producers into one ordered consumer:
// MergeStrings (a sorted, deduplicating merge over string streams, used for
// combining metadata scans across partitions) and MergeReadBatches (a
// keyed, time-ordered merge over tsdb.ReadBatch streams, used for combining
// read results across partitions).
//
// Both are expressed as goroutines draining per-input channels into a
// single output channel, rather than as a literal poll/state-machine
// translation of the source algorithm: each input's "needs a value" state
// is a per-input struct holding its last-received head and a done flag, and
// a refill step blocks on each input that needs one before the merge step
// runs, which is the natural Go shape for the same cooperative-merge
// contract.
package mergestream
