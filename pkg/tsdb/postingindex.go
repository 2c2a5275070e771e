// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/btree"
)

// postingIndex maps (tag_key, tag_value) pairs to the set of series ids that
// carry them, and separately keeps an ordered record of every observed
// tag key and, per key, every observed value - so tag_keys/tag_values can be
// answered by an in-order walk instead of a sort-on-read over the posting
// lists.
//
// The composite bitmap key is the byte concatenation key || 0x00 || value.
// The 0x00 separator cannot appear in either side (tag keys/values are
// ordinary line-protocol identifiers) which makes the encoding injective
// even when a tag value itself contains '=' or ','.
//
// Not internally synchronized: the engine does not guard its own maps
// against concurrent mutation (see Partition's doc comment); a Partition and
// everything it owns is mutated by at most one goroutine at a time, and that
// exclusion is the host's responsibility.
type postingIndex struct {
	postings map[string]*roaring64.Bitmap     // list_key(key, value) -> series ids
	tagKeys  *btree.BTreeG[string]             // ordered set of known tag keys
	tagVals  map[string]*btree.BTreeG[string]  // tag key -> ordered set of known values
}

func newPostingIndex() *postingIndex {
	return &postingIndex{
		postings: make(map[string]*roaring64.Bitmap),
		tagKeys:  btree.NewG[string](32, stringLess),
		tagVals:  make(map[string]*btree.BTreeG[string]),
	}
}

func stringLess(a, b string) bool { return a < b }

// listKey builds the composite posting-list key for (tagKey, tagValue).
func listKey(tagKey, tagValue string) string {
	buf := make([]byte, 0, len(tagKey)+1+len(tagValue))
	buf = append(buf, tagKey...)
	buf = append(buf, 0)
	buf = append(buf, tagValue...)
	return string(buf)
}

// insert adds id to the (tagKey, tagValue) bitmap and records tagValue under
// tagKey in the dictionary.
func (p *postingIndex) insert(id SeriesId, tagKey, tagValue string) {
	k := listKey(tagKey, tagValue)
	bm, ok := p.postings[k]
	if !ok {
		bm = roaring64.New()
		p.postings[k] = bm
	}
	bm.Add(uint64(id))

	if !p.tagKeys.Has(tagKey) {
		p.tagKeys.ReplaceOrInsert(tagKey)
	}
	vals, ok := p.tagVals[tagKey]
	if !ok {
		vals = btree.NewG[string](32, stringLess)
		p.tagVals[tagKey] = vals
	}
	if !vals.Has(tagValue) {
		vals.ReplaceOrInsert(tagValue)
	}
}

// lookup returns the bitmap of series ids carrying (tagKey, tagValue), or an
// empty bitmap if the pair was never seen. The caller owns the returned
// bitmap and may mutate it freely.
func (p *postingIndex) lookup(tagKey, tagValue string) *roaring64.Bitmap {
	bm, ok := p.postings[listKey(tagKey, tagValue)]
	if !ok {
		return roaring64.New()
	}
	return bm.Clone()
}

// tagKeysSorted returns every observed tag key, sorted, without duplicates.
func (p *postingIndex) tagKeysSorted() []string {
	out := make([]string, 0, p.tagKeys.Len())
	p.tagKeys.Ascend(func(k string) bool {
		out = append(out, k)
		return true
	})
	return out
}

// tagValuesSorted returns every observed value for tagKey, sorted, without
// duplicates; nil if the key is unknown.
func (p *postingIndex) tagValuesSorted(tagKey string) []string {
	vals, ok := p.tagVals[tagKey]
	if !ok {
		return nil
	}
	out := make([]string, 0, vals.Len())
	vals.Ascend(func(v string) bool {
		out = append(out, v)
		return true
	})
	return out
}
