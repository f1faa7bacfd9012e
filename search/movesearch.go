// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"time"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
)

// DefaultMaxDissolve is K from spec §4.4: the deepest level of table melds
// considered for wholesale dissolving.
const DefaultMaxDissolve = 5

// FindBestMoves runs the iterative-deepening outer loop of spec §4.4: for
// k = 0..maxDepth, try every k-subset of table melds dissolved back into the
// hand, search each resulting hand for the best meld selection, and keep the
// best candidate that beats the no-move baseline and is not a structural
// no-op (spec §4.7). clock/budget bound the combined wall-clock cost of the
// whole search.
func FindBestMoves(table []*meld.Meld, h0 *hand.Hand, strategy Strategy, budget time.Duration, clock Clock, maxDepth int) *Result {
	deadline := clock.Now().Add(budget)
	initialQ := Quality(h0, strategy)

	bestQ := initialQ
	var bestMoves []RawMove
	depthReached := 0
	searchCompleted := true

outer:
	for k := 0; k <= maxDepth && k <= len(table); k++ {
		for _, subset := range combinations(len(table), k) {
			if clock.Now().After(deadline) {
				searchCompleted = false
				break outer
			}

			hPrime := h0.Clone()
			pickedMelds := make([]*meld.Meld, len(subset))
			for i, idx := range subset {
				addMeldTiles(hPrime, table[idx])
				pickedMelds[i] = table[idx]
			}
			baseline := hPrime.Clone()

			searcher := NewMeldSearcher(hPrime, strategy)
			sel, completed := searcher.FindBestMelds(hPrime, baseline, clock, deadline)
			if !completed {
				searchCompleted = false
			} else {
				// §4.6: DepthReached is the deepest k for which at least one
				// k-subset was fully evaluated, never a k merely entered.
				depthReached = k
			}

			if sel.Found {
				laidMelds := idsToMelds(searcher, sel.IDs)
				if !isNoOpReproduction(pickedMelds, laidMelds) && sel.Quality > bestQ {
					bestQ = sel.Quality
					bestMoves = buildRawMoves(subset, laidMelds)
				}
			}

			if !completed {
				break outer
			}
		}
	}

	return &Result{
		Success:         len(bestMoves) > 0,
		Moves:           bestMoves,
		SearchCompleted: searchCompleted,
		DepthReached:    depthReached,
		InitialQuality:  initialQ,
		FinalQuality:    bestQ,
	}
}

func addMeldTiles(h *hand.Hand, m *meld.Meld) {
	for _, t := range m.Tiles {
		h.Add(t, 1)
	}
}

func idsToMelds(s *MeldSearcher, ids []int) []*meld.Meld {
	out := make([]*meld.Meld, len(ids))
	for i, id := range ids {
		out[i] = s.Melds()[id]
	}
	return out
}

func buildRawMoves(subset []int, laidMelds []*meld.Meld) []RawMove {
	moves := make([]RawMove, 0, len(subset)+len(laidMelds))
	for _, idx := range subset {
		moves = append(moves, RawMove{Action: PickUp, TableIndex: idx})
	}
	for _, m := range laidMelds {
		moves = append(moves, RawMove{Action: LayDown, Meld: m})
	}
	return moves
}

// isNoOpReproduction implements the spec §4.7 guard: a candidate whose only
// effect is to lay back down melds structurally identical (or, for runs,
// reversed) to those it picked up changes nothing and must not be accepted
// as an improvement, even though its residual hand technically "beats" the
// inflated baseline.
func isNoOpReproduction(picked, laid []*meld.Meld) bool {
	if len(picked) != len(laid) {
		return false
	}
	used := make([]bool, len(laid))
	for _, p := range picked {
		matched := false
		for i, l := range laid {
			if used[i] {
				continue
			}
			if p.Equal(l) || p.IsReverseOf(l) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// combinations returns every k-subset of {0,...,n-1}, each as an ascending
// index slice, enumerated in ascending lexicographic order.
func combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
