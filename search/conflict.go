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
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/tile"
)

// ConflictIndex maps each tile identity to the ids (indices into the
// enumerated meld slice) of every meld that touches it, and each meld id to
// its tile requirement (how many of each identity it consumes — normally 1,
// except a meld may use more than one wildcard). It lets the backtracker in
// meldsubset.go test feasibility and bound further gains without
// re-enumerating M(H) at every node (spec §4.2).
type ConflictIndex struct {
	touching     map[tile.Tile][]int
	requirements []map[tile.Tile]int
}

// BuildConflictIndex indexes melds, which must be in the order returned by
// Enumerate (melds[i]'s id is i).
func BuildConflictIndex(melds []*meld.Meld) *ConflictIndex {
	idx := &ConflictIndex{
		touching:     make(map[tile.Tile][]int),
		requirements: make([]map[tile.Tile]int, len(melds)),
	}
	for id, m := range melds {
		req := make(map[tile.Tile]int, len(m.Tiles))
		for _, t := range m.Tiles {
			req[t]++
		}
		idx.requirements[id] = req
		for t := range req {
			idx.touching[t] = append(idx.touching[t], id)
		}
	}
	return idx
}

// MeldsTouching returns the ids of every meld that uses at least one of t.
func (c *ConflictIndex) MeldsTouching(t tile.Tile) []int {
	return c.touching[t]
}

// Requirement returns meld id's tile requirement map.
func (c *ConflictIndex) Requirement(id int) map[tile.Tile]int {
	return c.requirements[id]
}
