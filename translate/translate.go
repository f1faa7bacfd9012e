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

// Package translate turns a raw destroy-and-rebuild move sequence into the
// human-readable operations a player would recognize (spec §4.5).
package translate

import (
	"sort"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/tile"
)

// Kind tags a HumanMove's declarative shape.
type Kind uint8

const (
	PlayFromHand Kind = iota
	ExtendMeld
	TakeFromMeld
	SplitMeld
	JoinMelds
	SwapWild
	Rearrange
)

func (k Kind) String() string {
	switch k {
	case PlayFromHand:
		return "play_from_hand"
	case ExtendMeld:
		return "extend_meld"
	case TakeFromMeld:
		return "take_from_meld"
	case SplitMeld:
		return "split_meld"
	case JoinMelds:
		return "join_melds"
	case SwapWild:
		return "swap_wild"
	default:
		return "rearrange"
	}
}

// WildSwap records one (replacement, wildcard-taken) pair for a SwapWild move.
type WildSwap struct {
	ReplacementFromHand tile.Tile
	WildTaken           tile.Tile
}

// HumanMove is one declarative operation. Only the fields relevant to Kind
// are populated; see the per-field comments below for which.
type HumanMove struct {
	Kind Kind

	// AnchorIndices are the original table indices (T0) this move is
	// derived from, sorted ascending. Empty for PlayFromHand.
	AnchorIndices []int

	// Meld is the single resulting meld for PlayFromHand, ExtendMeld,
	// SwapWild and JoinMelds.
	Meld *meld.Meld

	AddedTiles []tile.Tile // ExtendMeld: the hand tiles added.

	TakenTiles      []tile.Tile // TakeFromMeld: tiles removed from the anchor.
	RemainderMeld   *meld.Meld  // TakeFromMeld: the smaller meld left behind.
	DestinationMeld *meld.Meld  // TakeFromMeld: where the taken tiles ended up.

	ResultMelds []*meld.Meld // SplitMeld (len 2) and Rearrange (produced melds).

	Swaps []WildSwap // SwapWild.

	HandTilesUsed []tile.Tile // JoinMelds / Rearrange: hand tiles consumed.
}

// sourceEntry is one unit of provenance: a single physical tile instance
// available to feed a destination position.
type sourceEntry struct {
	tile     tile.Tile
	isHand   bool
	tableIdx int // meaningful only if !isHand
	pos      int // table position, or hand insertion order — used as a tie-break
}

// destSlot is the resolved provenance of one destination-meld position.
type destSlot struct {
	tile     tile.Tile
	isHand   bool
	tableIdx int
}

// Translate implements the spec §4.5 contract.
func Translate(table0 []*meld.Meld, hand0 *hand.Hand, moves []search.RawMove) []HumanMove {
	var pickedIndices []int
	var laidMelds []*meld.Meld
	for _, m := range moves {
		switch m.Action {
		case search.PickUp:
			pickedIndices = append(pickedIndices, m.TableIndex)
		case search.LayDown:
			laidMelds = append(laidMelds, m.Meld)
		}
	}
	if len(laidMelds) == 0 {
		return nil
	}

	sources := buildSources(pickedIndices, table0, hand0)
	destSlots := assign(sources, laidMelds)

	destSetFor := map[int][]int{}
	for j, slots := range destSlots {
		seen := map[int]bool{}
		for _, s := range slots {
			if s.isHand || seen[s.tableIdx] {
				continue
			}
			seen[s.tableIdx] = true
			destSetFor[s.tableIdx] = append(destSetFor[s.tableIdx], j)
		}
	}

	handled := make([]bool, len(laidMelds))
	var ops []HumanMove

	for _, i := range pickedIndices {
		var dests []int
		for _, j := range destSetFor[i] {
			if !handled[j] {
				dests = append(dests, j)
			}
		}
		switch len(dests) {
		case 0:
			// Already accounted for via an earlier, smaller-indexed
			// contributor's JoinMelds/TakeFromMeld classification.
		case 1:
			j := dests[0]
			contributors := contributorsOf(destSlots[j])
			if len(contributors) > 1 {
				ops = append(ops, joinMeldsOp(contributors, laidMelds[j], destSlots[j]))
				handled[j] = true
				continue
			}
			if op, ok := classifySingleDest(i, table0[i], laidMelds[j]); ok {
				ops = append(ops, op)
			}
			handled[j] = true
		case 2:
			op, extra := classifyTwoDest(i, table0[i], dests, laidMelds, destSlots)
			ops = append(ops, op)
			for _, j := range append([]int{dests[0], dests[1]}, extra...) {
				handled[j] = true
			}
		default:
			ops = append(ops, rearrangeOp([]int{i}, dests, laidMelds, destSlots))
			for _, j := range dests {
				handled[j] = true
			}
		}
	}

	for j, slots := range destSlots {
		if handled[j] {
			continue
		}
		if len(contributorsOf(slots)) == 0 {
			ops = append(ops, HumanMove{Kind: PlayFromHand, Meld: laidMelds[j]})
		}
	}

	return ops
}

func buildSources(pickedIndices []int, table0 []*meld.Meld, hand0 *hand.Hand) []sourceEntry {
	var sources []sourceEntry
	for _, idx := range pickedIndices {
		for p, t := range table0[idx].Tiles {
			sources = append(sources, sourceEntry{tile: t, tableIdx: idx, pos: p})
		}
	}
	seq := 0
	for _, t := range hand0.Identities() {
		for k := 0; k < hand0.Count(t); k++ {
			sources = append(sources, sourceEntry{tile: t, isHand: true, pos: seq})
			seq++
		}
	}
	return sources
}

// assign runs the greedy provenance matching of spec §4.5: destination
// positions, in canonical order (laid-meld order, then position), each take
// the best unused source — preferring a picked-up-meld tile over a hand
// tile, breaking ties by source-meld-id then position.
func assign(sources []sourceEntry, laidMelds []*meld.Meld) [][]destSlot {
	used := make([]bool, len(sources))
	out := make([][]destSlot, len(laidMelds))
	for j, m := range laidMelds {
		slots := make([]destSlot, len(m.Tiles))
		for p, t := range m.Tiles {
			idx := pickSource(sources, used, t)
			if idx == -1 {
				panic("translate: no source tile available for destination tile; invariant violation")
			}
			used[idx] = true
			s := sources[idx]
			slots[p] = destSlot{tile: t, isHand: s.isHand, tableIdx: s.tableIdx}
		}
		out[j] = slots
	}
	return out
}

func pickSource(sources []sourceEntry, used []bool, t tile.Tile) int {
	best := -1
	for i, s := range sources {
		if used[i] || s.tile != t {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		a, b := s, sources[best]
		switch {
		case !a.isHand && b.isHand:
			best = i
		case a.isHand && !b.isHand:
			// keep current best
		case !a.isHand && !b.isHand:
			if a.tableIdx < b.tableIdx || (a.tableIdx == b.tableIdx && a.pos < b.pos) {
				best = i
			}
		default: // both hand
			if a.pos < b.pos {
				best = i
			}
		}
	}
	return best
}

func contributorsOf(slots []destSlot) map[int]bool {
	out := map[int]bool{}
	for _, s := range slots {
		if !s.isHand {
			out[s.tableIdx] = true
		}
	}
	return out
}

func handTilesOf(slots []destSlot) []tile.Tile {
	var out []tile.Tile
	for _, s := range slots {
		if s.isHand {
			out = append(out, s.tile)
		}
	}
	return out
}

func takenTilesFrom(slots []destSlot, tableIdx int) []tile.Tile {
	var out []tile.Tile
	for _, s := range slots {
		if !s.isHand && s.tableIdx == tableIdx {
			out = append(out, s.tile)
		}
	}
	return out
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// classifySingleDest handles the case where original meld i's tiles all
// land in a single new meld with no other original meld contributing. ok is
// false for a genuinely unchanged meld, which emits nothing.
func classifySingleDest(i int, old, newM *meld.Meld) (HumanMove, bool) {
	if old.Equal(newM) {
		return HumanMove{}, false
	}
	if len(newM.Tiles) == len(old.Tiles) {
		if pos, ok := swapWildPosition(old.Tiles, newM.Tiles); ok {
			return HumanMove{
				Kind:          SwapWild,
				AnchorIndices: []int{i},
				Meld:          newM,
				Swaps:         []WildSwap{{ReplacementFromHand: newM.Tiles[pos], WildTaken: old.Tiles[pos]}},
			}, true
		}
		return HumanMove{Kind: Rearrange, AnchorIndices: []int{i}, ResultMelds: []*meld.Meld{newM}}, true
	}
	if len(newM.Tiles) > len(old.Tiles) {
		added := setDifference(newM.Tiles, old.Tiles)
		if len(added) == len(newM.Tiles)-len(old.Tiles) {
			return HumanMove{Kind: ExtendMeld, AnchorIndices: []int{i}, Meld: newM, AddedTiles: added}, true
		}
	}
	return HumanMove{Kind: Rearrange, AnchorIndices: []int{i}, ResultMelds: []*meld.Meld{newM}}, true
}

// swapWildPosition finds the single position where old holds a wildcard and
// neu holds a real tile, with every other position identical.
func swapWildPosition(old, neu []tile.Tile) (int, bool) {
	if len(old) != len(neu) {
		return -1, false
	}
	pos, diffs := -1, 0
	for i := range old {
		if old[i] != neu[i] {
			diffs++
			pos = i
		}
	}
	if diffs != 1 || !old[pos].IsWild() || neu[pos].IsWild() {
		return -1, false
	}
	return pos, true
}

// setDifference returns the tiles in a that are not matched one-for-one by
// an identity in b (duplicate identities are matched at most once each).
func setDifference(a, b []tile.Tile) []tile.Tile {
	remaining := map[tile.Tile]int{}
	for _, t := range b {
		remaining[t]++
	}
	var out []tile.Tile
	for _, t := range a {
		if remaining[t] > 0 {
			remaining[t]--
			continue
		}
		out = append(out, t)
	}
	return out
}

func joinMeldsOp(contributors map[int]bool, newM *meld.Meld, slots []destSlot) HumanMove {
	return HumanMove{
		Kind:          JoinMelds,
		AnchorIndices: sortedKeys(contributors),
		Meld:          newM,
		HandTilesUsed: handTilesOf(slots),
	}
}

// classifyTwoDest handles original meld i's tiles landing in exactly two
// destination melds. extra lists any additional destination indices (beyond
// dests[0]/dests[1]) that should also be marked handled — currently always
// empty, kept for symmetry with the >2 case.
func classifyTwoDest(i int, old *meld.Meld, dests []int, laidMelds []*meld.Meld, destSlots [][]destSlot) (HumanMove, []int) {
	j1, j2 := dests[0], dests[1]
	s1, s2 := destSlots[j1], destSlots[j2]
	c1, c2 := contributorsOf(s1), contributorsOf(s2)
	h1, h2 := handTilesOf(s1), handTilesOf(s2)

	pureRemainder := func(c map[int]bool, h []tile.Tile) bool {
		return len(c) == 1 && c[i] && len(h) == 0
	}

	if pureRemainder(c1, h1) && pureRemainder(c2, h2) {
		return HumanMove{
			Kind:          SplitMeld,
			AnchorIndices: []int{i},
			ResultMelds:   []*meld.Meld{laidMelds[j1], laidMelds[j2]},
		}, nil
	}
	// j2 must draw from no original table meld other than i — if it also
	// draws from some other meld k, k's own contribution would go
	// unaccounted for here, so fall through to Rearrange instead.
	if pureRemainder(c1, h1) && len(c2) == 1 && c2[i] {
		return HumanMove{
			Kind:            TakeFromMeld,
			AnchorIndices:   []int{i},
			TakenTiles:      takenTilesFrom(s2, i),
			RemainderMeld:   laidMelds[j1],
			DestinationMeld: laidMelds[j2],
		}, nil
	}
	if pureRemainder(c2, h2) && len(c1) == 1 && c1[i] {
		return HumanMove{
			Kind:            TakeFromMeld,
			AnchorIndices:   []int{i},
			TakenTiles:      takenTilesFrom(s1, i),
			RemainderMeld:   laidMelds[j2],
			DestinationMeld: laidMelds[j1],
		}, nil
	}
	return rearrangeOp([]int{i}, dests, laidMelds, destSlots), nil
}

func rearrangeOp(anchors, dests []int, laidMelds []*meld.Meld, destSlots [][]destSlot) HumanMove {
	all := map[int]bool{}
	for _, a := range anchors {
		all[a] = true
	}
	var produced []*meld.Meld
	var handUsed []tile.Tile
	for _, j := range dests {
		produced = append(produced, laidMelds[j])
		for c := range contributorsOf(destSlots[j]) {
			all[c] = true
		}
		handUsed = append(handUsed, handTilesOf(destSlots[j])...)
	}
	return HumanMove{
		Kind:          Rearrange,
		AnchorIndices: sortedKeys(all),
		ResultMelds:   produced,
		HandTilesUsed: handUsed,
	}
}
