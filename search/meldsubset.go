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
	"math"
	"time"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/tile"
)

// MeldSearcher runs find_best_melds (spec §4.3) against a fixed, pre-enumerated
// candidate list. It is built once per working hand H and reused across the
// quality comparisons find_best_moves needs at that depth.
type MeldSearcher struct {
	melds    []*meld.Meld
	conflict *ConflictIndex
	strategy Strategy
}

// NewMeldSearcher enumerates M(h) and indexes it.
func NewMeldSearcher(h *hand.Hand, strategy Strategy) *MeldSearcher {
	melds := Enumerate(h)
	return &MeldSearcher{
		melds:    melds,
		conflict: BuildConflictIndex(melds),
		strategy: strategy,
	}
}

// Melds exposes the enumerated candidate list (used by translate to map
// chosen ids back to melds).
func (s *MeldSearcher) Melds() []*meld.Meld { return s.melds }

// MeldSelection is the result of a find_best_melds run.
type MeldSelection struct {
	// IDs are indices into MeldSearcher.Melds(), in the order chosen.
	IDs []int
	// Quality is q(residual) for the winning selection.
	Quality int
	// Found is false if no disjoint subset made the residual beat the
	// baseline at all.
	Found bool
}

// FindBestMelds searches M(h) (fixed at construction) for the disjoint
// subset S whose residual h-∪S beats baseline and maximizes q, exploring
// candidates in canonical id order so ties resolve to the lexicographically
// earliest selection. deadline bounds the wall-clock budget shared with the
// surrounding move search; clock is polled at least once per frame.
//
// Returns the best selection found and whether the full canonical search
// space below this call was exhausted (false if the deadline cut it short).
func (s *MeldSearcher) FindBestMelds(h, baseline *hand.Hand, clock Clock, deadline time.Time) (MeldSelection, bool) {
	working := h.Clone()
	best := MeldSelection{Quality: math.MinInt}
	var stack []int
	timedOut := false

	// remainingBound returns an admissible upper bound on how much further
	// q(working) could still improve by laying down any subset of the
	// still-eligible candidates starting at "from" — ignoring that they may
	// overlap, which only makes the bound looser, never tighter than true.
	remainingBound := func(from int) int {
		bound := 0
		for i := from; i < len(s.melds); i++ {
			if !feasible(working, s.conflict.Requirement(i)) {
				continue
			}
			m := s.melds[i]
			switch s.strategy {
			case MinPoints:
				bound += hand.FromTiles(m.Tiles).Points()
			default:
				bound += len(m.Tiles)
			}
		}
		return bound
	}

	var dfs func(start int)
	dfs = func(start int) {
		if timedOut {
			return
		}
		if clock.Now().After(deadline) {
			timedOut = true
			return
		}
		if working.Beats(baseline) {
			q := Quality(working, s.strategy)
			if q > best.Quality {
				best = MeldSelection{IDs: append([]int(nil), stack...), Quality: q, Found: true}
			}
		}
		if best.Found && Quality(working, s.strategy)+remainingBound(start) <= best.Quality {
			return
		}
		for i := start; i < len(s.melds); i++ {
			if timedOut {
				return
			}
			if clock.Now().After(deadline) {
				timedOut = true
				return
			}
			req := s.conflict.Requirement(i)
			if !feasible(working, req) {
				continue
			}
			consume(working, req)
			stack = append(stack, i)
			dfs(i + 1)
			stack = stack[:len(stack)-1]
			restore(working, req)
		}
	}

	dfs(0)
	return best, !timedOut
}

func feasible(h *hand.Hand, req map[tile.Tile]int) bool {
	for t, n := range req {
		if !h.ContainsAtLeast(t, n) {
			return false
		}
	}
	return true
}

func consume(h *hand.Hand, req map[tile.Tile]int) {
	for t, n := range req {
		h.Remove(t, n)
	}
}

func restore(h *hand.Hand, req map[tile.Tile]int) {
	for t, n := range req {
		h.Add(t, n)
	}
}
