// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"slices"
)

// CompareEdges orders edges by destination, then cost.
func CompareEdges(a, b Edge) int {
	if c := cmp.Compare(a.To, b.To); c != 0 {
		return c
	}
	return cmp.Compare(a.Cost, b.Cost)
}

// Equal reports whether a and b have the same node count and, for every node,
// the same multiset of (destination, cost) edges. Edge order is ignored.
// Complexity: O(E log d) where d is the largest out-degree.
func Equal(a, b *SparseWeightDirected) bool {
	if a.NodeCount() != b.NodeCount() {
		return false
	}
	var sa, sb []Edge // scratch reused across nodes
	for i := range a.adjacency {
		ea, eb := a.adjacency[i], b.adjacency[i]
		if len(ea) != len(eb) {
			return false
		}
		if slices.Equal(ea, eb) {
			continue
		}
		sa = append(sa[:0], ea...)
		sb = append(sb[:0], eb...)
		slices.SortFunc(sa, CompareEdges)
		slices.SortFunc(sb, CompareEdges)
		if !slices.Equal(sa, sb) {
			return false
		}
	}
	return true
}
