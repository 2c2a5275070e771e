// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mergestream

import "context"

// stringState is one input's "needs value" slot: the per-input equivalent
// of original_source's StreamState<T>{stream, next}.
type stringState struct {
	ch      <-chan string
	head    string
	hasHead bool
	done    bool
}

// refill blocks until s has a cached head value or its channel is closed.
// Returns false if ctx was cancelled first.
func (s *stringState) refill(ctx context.Context) bool {
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

// MergeStrings k-way merges inputs, each of which must emit strictly
// ascending values with no duplicates within itself, into one ascending
// stream with duplicates collapsed across inputs (not within - that
// precondition is the caller's). capacity bounds the output channel; <= 0
// uses a small default.
//
// Per round: every live input is refilled (blocking until it has a value or
// is exhausted); the lexicographically least head among live inputs is
// chosen and emitted once; every input whose head equals it is advanced.
// The stream ends, closing the output channel, once every input is
// exhausted.
func MergeStrings(ctx context.Context, capacity int, inputs []<-chan string) <-chan string {
	if capacity <= 0 {
		capacity = 16
	}
	out := make(chan string, capacity)

	go func() {
		defer close(out)

		states := make([]*stringState, len(inputs))
		for i, ch := range inputs {
			states[i] = &stringState{ch: ch}
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

			min := ""
			haveMin := false
			for _, s := range states {
				if s.done {
					continue
				}
				if !haveMin || s.head < min {
					min, haveMin = s.head, true
				}
			}
			if !haveMin {
				return
			}

			for _, s := range states {
				if !s.done && s.hasHead && s.head == min {
					s.hasHead = false
				}
			}

			select {
			case out <- min:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
