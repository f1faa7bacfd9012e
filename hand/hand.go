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

// Package hand implements the counted multiset of tiles a player holds.
package hand

import (
	"sort"

	"github.com/zintix-labs/rummisolve/tile"
)

// wildPoints is the in-hand value assigned to a held wildcard by the
// min_points quality function (spec §4.3).
const wildPoints = 30

// Hand is a mapping from tile identity to multiplicity. A zero Hand is a
// valid, empty hand.
type Hand struct {
	counts map[tile.Tile]int
	size   int
}

// New builds an empty hand.
func New() *Hand {
	return &Hand{counts: make(map[tile.Tile]int)}
}

// FromTiles builds a hand from a flat tile list.
func FromTiles(tiles []tile.Tile) *Hand {
	h := New()
	for _, t := range tiles {
		h.Add(t, 1)
	}
	return h
}

// Clone returns a deep, independent copy.
func (h *Hand) Clone() *Hand {
	c := &Hand{counts: make(map[tile.Tile]int, len(h.counts)), size: h.size}
	for t, n := range h.counts {
		c.counts[t] = n
	}
	return c
}

// Add increases t's multiplicity by n (n may be negative via Remove instead).
func (h *Hand) Add(t tile.Tile, n int) {
	if n <= 0 {
		return
	}
	h.counts[t] += n
	h.size += n
}

// Remove decreases t's multiplicity by n, panicking if that would go negative.
// Invariant violations here indicate a solver bug, per spec §7.
func (h *Hand) Remove(t tile.Tile, n int) {
	if n <= 0 {
		return
	}
	cur, ok := h.counts[t]
	if !ok || cur < n {
		panic("hand: remove exceeds held count")
	}
	if cur == n {
		delete(h.counts, t)
	} else {
		h.counts[t] = cur - n
	}
	h.size -= n
}

// Count returns t's current multiplicity (0 if absent).
func (h *Hand) Count(t tile.Tile) int {
	return h.counts[t]
}

// ContainsAtLeast reports whether the hand holds at least n of t.
func (h *Hand) ContainsAtLeast(t tile.Tile, n int) bool {
	return h.counts[t] >= n
}

// Size returns the total tile count (sum of multiplicities).
func (h *Hand) Size() int {
	return h.size
}

// Points returns the min_points quality measure's raw total: held wildcards
// count as wildPoints, colored tiles count as their face number.
func (h *Hand) Points() int {
	total := 0
	for t, n := range h.counts {
		if t.IsWild() {
			total += wildPoints * n
		} else {
			total += t.Number() * n
		}
	}
	return total
}

// Identities returns every distinct tile identity held, in a deterministic
// (byte value ascending) order.
func (h *Hand) Identities() []tile.Tile {
	out := make([]tile.Tile, 0, len(h.counts))
	for t := range h.counts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether two hands hold identical multisets.
func (h *Hand) Equal(o *Hand) bool {
	if h.size != o.size {
		return false
	}
	for t, n := range h.counts {
		if o.counts[t] != n {
			return false
		}
	}
	for t, n := range o.counts {
		if h.counts[t] != n {
			return false
		}
	}
	return true
}

// Beats implements the spec §4.3 "beats" predicate: r beats b iff every
// identity in r is also in b (no new type appears) and r has strictly
// fewer of at least one identity than b.
func (r *Hand) Beats(b *Hand) bool {
	strictlyFewer := false
	for t, n := range r.counts {
		bn := b.counts[t]
		if n > bn {
			return false
		}
		if n < bn {
			strictlyFewer = true
		}
	}
	for t, bn := range b.counts {
		if r.counts[t] < bn {
			strictlyFewer = true
		}
	}
	return strictlyFewer
}
