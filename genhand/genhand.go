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

// Package genhand draws random hands for the batch benchmark CLI. Tiles
// are drawn without replacement by an equal-weight sampler.WeightedSample
// over the physical deck: four colors, numbers 1-13, two copies of each, plus two jokers —
// so the multiplicity-2 cap the meld search assumes is respected by
// construction, never by post-hoc filtering.
package genhand

import (
	"github.com/zintix-labs/rummisolve/sdk/core"
	"github.com/zintix-labs/rummisolve/sdk/sampler"
	"github.com/zintix-labs/rummisolve/tile"
)

// deck lists every physical tile instance once: two copies of each of the
// 52 colored faces, plus two wildcards.
func deck() []tile.Tile {
	out := make([]tile.Tile, 0, 106)
	for _, c := range tile.Colors() {
		for n := tile.MinNumber; n <= tile.MaxNumber; n++ {
			t := tile.New(c, n)
			out = append(out, t, t)
		}
	}
	out = append(out, tile.Wildcard(), tile.Wildcard())
	return out
}

// Hand draws n distinct physical tiles (no two drawn beyond the deck's
// own two-copy cap) using c as the randomness source. n is clamped to the
// deck size (106).
func Hand(c *core.Core, n int) []tile.Tile {
	pop := deck()
	if n > len(pop) {
		n = len(pop)
	}
	weights := make([]int, len(pop))
	for i := range weights {
		weights[i] = 1
	}
	idx := sampler.WeightedSample(c, weights, n)
	out := make([]tile.Tile, len(idx))
	for i, id := range idx {
		out[i] = pop[id]
	}
	return out
}
