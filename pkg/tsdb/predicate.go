// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsdb

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Predicate is a node in a boolean expression tree over tag equality.
// The closed set of node kinds the evaluator interprets is {Equal, And, Or}:
// it dispatches with a type switch and rejects any other implementation of
// this interface with UnsupportedPredicateError. The interface's only method
// is unexported, so node kinds such as Not or comparisons can be added only
// inside this package, and a new kind is evaluated only once evalNode has a
// case for it.
type Predicate interface {
	isPredicate()
}

// Equal matches series carrying the tag pair (TagKey, TagValue).
type Equal struct {
	TagKey   string
	TagValue string
}

func (Equal) isPredicate() {}

// And matches the intersection of Left and Right.
type And struct {
	Left, Right Predicate
}

func (And) isPredicate() {}

// Or matches the union of Left and Right.
type Or struct {
	Left, Right Predicate
}

func (Or) isPredicate() {}

// evaluatePredicate interprets root against idx, returning the bitmap of
// matching series ids. Returns InvalidPredicateError if root is nil, and
// UnsupportedPredicateError for any node kind other than Equal/And/Or.
//
// Short-circuiting is not attempted: intersection and union are commutative
// and associative, so any evaluation order that visits every leaf yields the
// same result, and the tree depths expected here are shallow enough that
// there is no benefit to reordering.
func evaluatePredicate(idx *postingIndex, root Predicate) (*roaring64.Bitmap, error) {
	if root == nil {
		return nil, &InvalidPredicateError{Reason: "predicate has no root"}
	}
	return evalNode(idx, root)
}

func evalNode(idx *postingIndex, node Predicate) (*roaring64.Bitmap, error) {
	switch n := node.(type) {
	case Equal:
		return idx.lookup(n.TagKey, n.TagValue), nil
	case And:
		left, err := evalNode(idx, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(idx, n.Right)
		if err != nil {
			return nil, err
		}
		left.And(right)
		return left, nil
	case Or:
		left, err := evalNode(idx, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(idx, n.Right)
		if err != nil {
			return nil, err
		}
		left.Or(right)
		return left, nil
	default:
		return nil, &UnsupportedPredicateError{Node: node}
	}
}
