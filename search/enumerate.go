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
	"math/bits"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/tile"
)

// groupMinSize/groupMaxSize/runMinLen mirror the physical tile set (spec §3).
const (
	groupMinSize = 3
	groupMaxSize = 4
	runMinLen    = 3
)

// Enumerate builds M(H): every meld realizable from h, including every
// wildcard-substitution variant, in canonical order — groups before runs,
// each ordered by its anchoring number/color/length, then by the ascending
// bitmask of its wildcard positions (spec §4.1).
func Enumerate(h *hand.Hand) []*meld.Meld {
	var out []*meld.Meld
	out = append(out, enumerateGroups(h)...)
	out = append(out, enumerateRuns(h)...)
	return out
}

func enumerateGroups(h *hand.Hand) []*meld.Meld {
	var out []*meld.Meld
	colors := tile.Colors()
	wildHave := h.Count(tile.Wildcard())

	for n := tile.MinNumber; n <= tile.MaxNumber; n++ {
		for size := groupMinSize; size <= groupMaxSize; size++ {
			// Iterate color subsets of the requested size in ascending
			// bitmask order over the canonical color list.
			for mask := 1; mask < (1 << len(colors)); mask++ {
				if bits.OnesCount(uint(mask)) != size {
					continue
				}
				tiles := make([]tile.Tile, 0, size)
				ok := true
				for i, c := range colors {
					if mask&(1<<i) == 0 {
						continue
					}
					t := tile.New(c, n)
					if !h.ContainsAtLeast(t, 1) {
						ok = false
						break
					}
					tiles = append(tiles, t)
				}
				if !ok {
					continue
				}
				out = append(out, meld.New(meld.Group, tiles))
				out = append(out, wildcardVariants(meld.Group, tiles, wildHave)...)
			}
		}
	}
	return out
}

func enumerateRuns(h *hand.Hand) []*meld.Meld {
	var out []*meld.Meld
	wildHave := h.Count(tile.Wildcard())

	for _, c := range tile.Colors() {
		for length := runMinLen; length <= tile.MaxNumber; length++ {
			for start := tile.MinNumber; start+length-1 <= tile.MaxNumber; start++ {
				tiles := make([]tile.Tile, 0, length)
				ok := true
				for n := start; n < start+length; n++ {
					t := tile.New(c, n)
					if !h.ContainsAtLeast(t, 1) {
						ok = false
						break
					}
					tiles = append(tiles, t)
				}
				if !ok {
					continue
				}
				out = append(out, meld.New(meld.Run, tiles))
				out = append(out, wildcardVariants(meld.Run, tiles, wildHave)...)
			}
		}
	}
	return out
}

// wildcardVariants emits, for every non-empty proper subset W of base's
// positions (ascending bitmask order), the meld obtained by replacing those
// positions with wildcards — skipping any subset W with more positions than
// the hand holds wildcards. At least one real tile must remain,
// so the full-set mask is excluded.
func wildcardVariants(t meld.Type, base []tile.Tile, wildHave int) []*meld.Meld {
	size := len(base)
	var out []*meld.Meld
	full := (1 << size) - 1
	for mask := 1; mask < full; mask++ {
		need := bits.OnesCount(uint(mask))
		if need > wildHave {
			continue
		}
		tiles := append([]tile.Tile(nil), base...)
		for i := 0; i < size; i++ {
			if mask&(1<<i) != 0 {
				tiles[i] = tile.Wildcard()
			}
		}
		out = append(out, meld.New(t, tiles))
	}
	return out
}
