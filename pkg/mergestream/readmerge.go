// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mergestream

import (
	"context"

	"github.com/Alvinccan/influxdb-iox/pkg/tsdb"
)

// readState is one input's "needs value" slot, holding a full ReadBatch
// (which may be partially drained by AppendBelowTime across rounds).
type readState struct {
	ch      <-chan tsdb.ReadBatch
	head    tsdb.ReadBatch
	hasHead bool
	done    bool
}

func (s *readState) refill(ctx context.Context) bool {
	if s.done || s.hasHead {
		return true
	}
	select {
	case v, ok := <-s.ch:
		if !ok {
			s.done = true
		} else {
			s.head, s.hasHead = v, true
		}
		return true
	case <-ctx.Done():
		return false
	}
}

// MergeReadBatches k-way merges inputs, each of which must emit ReadBatches
// in ascending SeriesKey order and, within runs of equal key, in ascending
// time order, into one stream preserving that ordering. Output preserves
// key order; within one key, batches are split so every emitted batch holds
// only points whose times are <= the smallest trailing time among the
// batches competing for that key at the time it is emitted. capacity bounds
// the output channel; <= 0 uses a small default.
//
// Per round: every live input is refilled; among inputs at the
// lexicographically least key, the one with the smallest last timestamp is
// the leader. Every other input at that key has its time-<=leader's-last
// prefix drained into the leader's batch; the combined batch is re-sorted
// by time (stable) and emitted. The leader is always fully consumed each
// round, so no input is starved.
func MergeReadBatches(ctx context.Context, capacity int, inputs []<-chan tsdb.ReadBatch) <-chan tsdb.ReadBatch {
	if capacity <= 0 {
		capacity = 16
	}
	out := make(chan tsdb.ReadBatch, capacity)

	go func() {
		defer close(out)

		states := make([]*readState, len(inputs))
		for i, ch := range inputs {
			states[i] = &readState{ch: ch}
		}

		for {
			anyLive := false
			for _, s := range states {
				if s.done {
					continue
				}
				anyLive = true
				if !s.refill(ctx) {
					return
				}
			}
			if !anyLive {
				return
			}

			minKey, haveKey := "", false
			for _, s := range states {
				if s.done || !s.hasHead {
					continue
				}
				if !haveKey || s.head.SeriesKey < minKey {
					minKey, haveKey = s.head.SeriesKey, true
				}
			}
			if !haveKey {
				return
			}

			leaderIdx := -1
			var leaderLast int64
			for i, s := range states {
				if s.done || !s.hasHead || s.head.SeriesKey != minKey {
					continue
				}
				_, last := s.head.Values.StartStopTimes()
				if leaderIdx < 0 || last < leaderLast {
					leaderIdx, leaderLast = i, last
				}
			}

			leader := states[leaderIdx]
			for i, s := range states {
				if i == leaderIdx || s.done || !s.hasHead || s.head.SeriesKey != minKey {
					continue
				}
				drained := leader.head.Values.AppendBelowTime(&s.head.Values, leaderLast)
				if drained {
					s.hasHead = false
				}
			}

			leader.head.Values.SortByTime()
			result := leader.head
			leader.hasHead = false

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
