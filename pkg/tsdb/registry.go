// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "sync"

// PartitionRegistry is the host-side component that owns a set of
// Partitions, addressed by a hierarchical path (e.g. []string{"org",
// "bucket", "shard"}), and the concurrency control around creating and
// looking them up.
//
// Partition itself does not synchronize its own internal state per spec -
// the engine pushes "external locking (reader/writer exclusion at the
// partition boundary)" to the host. PartitionRegistry is that host-side
// boundary: it guards the *set of partitions* (creation, lookup, listing)
// with an RWMutex, the same double-checked-locking shape the teacher uses
// for its metric-tree navigation, while leaving each individual Partition's
// own writes/reads to be serialized by whatever the caller arranges (e.g.
// one goroutine per partition).
type PartitionRegistry struct {
	children map[string]*PartitionRegistry
	leaf     *Partition
	lock     sync.RWMutex
}

// NewPartitionRegistry returns an empty root registry.
func NewPartitionRegistry() *PartitionRegistry {
	return &PartitionRegistry{}
}

// FindOrCreate navigates to, or creates along the way, the Partition at
// path, creating it via newPartition if it does not exist yet. Uses
// double-checked locking: an RLock fast path for the common case the path
// already exists, falling back to a Lock that re-checks before creating.
func (r *PartitionRegistry) FindOrCreate(path []string, newPartition func() *Partition) *Partition {
	if len(path) == 0 {
		r.lock.Lock()
		defer r.lock.Unlock()
		if r.leaf == nil {
			r.leaf = newPartition()
		}
		return r.leaf
	}

	r.lock.RLock()
	child, ok := r.children[path[0]]
	r.lock.RUnlock()
	if ok {
		return child.FindOrCreate(path[1:], newPartition)
	}

	r.lock.Lock()
	child, ok = r.children[path[0]]
	if !ok {
		child = &PartitionRegistry{}
		if r.children == nil {
			r.children = make(map[string]*PartitionRegistry)
		}
		r.children[path[0]] = child
	}
	r.lock.Unlock()

	return child.FindOrCreate(path[1:], newPartition)
}

// Find navigates to the Partition at path without creating anything,
// returning nil if any path segment or the leaf itself is absent.
func (r *PartitionRegistry) Find(path []string) *Partition {
	if len(path) == 0 {
		r.lock.RLock()
		defer r.lock.RUnlock()
		return r.leaf
	}

	r.lock.RLock()
	child, ok := r.children[path[0]]
	r.lock.RUnlock()
	if !ok {
		return nil
	}
	return child.Find(path[1:])
}

// CollectPaths returns every path, relative to r, at which a Partition has
// been created.
func (r *PartitionRegistry) CollectPaths() [][]string {
	var results [][]string
	r.collectPaths(nil, &results)
	return results
}

func (r *PartitionRegistry) collectPaths(prefix []string, results *[][]string) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.leaf != nil {
		path := make([]string, len(prefix))
		copy(path, prefix)
		*results = append(*results, path)
	}

	for key, child := range r.children {
		newPath := make([]string, len(prefix), len(prefix)+1)
		copy(newPath, prefix)
		newPath = append(newPath, key)
		child.collectPaths(newPath, results)
	}
}
