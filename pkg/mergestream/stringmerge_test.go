// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mergestream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func stringChan(values ...string) <-chan string {
	ch := make(chan string, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)
	return ch
}

func drainStrings(t *testing.T, ch <-chan string) []string {
	t.Helper()
	var out []string
	timeout := time.After(5 * time.Second)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-timeout:
			t.Fatal("timed out draining MergeStrings output")
		}
	}
}

func TestMergeStringsSortedUnionDedup(t *testing.T) {
	inputs := []<-chan string{
		stringChan("a", "c", "e"),
		stringChan("b", "c", "f"),
		stringChan("a", "d"),
	}

	got := drainStrings(t, MergeStrings(context.Background(), 0, inputs))
	want := []string{"a", "b", "c", "d", "e", "f"}
	require.Equal(t, want, got)
}

func TestMergeStringsSingleInput(t *testing.T) {
	inputs := []<-chan string{stringChan("x", "y", "z")}
	got := drainStrings(t, MergeStrings(context.Background(), 0, inputs))
	require.Equal(t, []string{"x", "y", "z"}, got)
}

func TestMergeStringsEmptyInputs(t *testing.T) {
	inputs := []<-chan string{stringChan(), stringChan()}
	got := drainStrings(t, MergeStrings(context.Background(), 0, inputs))
	require.Empty(t, got)
}

func TestMergeStringsNoInputs(t *testing.T) {
	got := drainStrings(t, MergeStrings(context.Background(), 0, nil))
	require.Empty(t, got)
}

func TestMergeStringsCancellationStopsStream(t *testing.T) {
	// An input that never closes and never sends a second value; cancelling
	// ctx must still let the merge goroutine exit and close the output.
	blocked := make(chan string)
	inputs := []<-chan string{blocked}

	ctx, cancel := context.WithCancel(context.Background())
	out := MergeStrings(ctx, 0, inputs)
	cancel()

	select {
	case _, ok := <-out:
		require.False(t, ok, "expected the output channel to close on cancellation")
	case <-time.After(5 * time.Second):
		t.Fatal("MergeStrings did not honor context cancellation")
	}
}
