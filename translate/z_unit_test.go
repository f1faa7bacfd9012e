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

package translate

import (
	"testing"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/tile"
)

func tiles(t *testing.T, s ...string) []tile.Tile {
	t.Helper()
	out := make([]tile.Tile, len(s))
	for i, v := range s {
		tt, err := tile.Parse(v)
		if err != nil {
			t.Fatalf("parse %q: %v", v, err)
		}
		out[i] = tt
	}
	return out
}

func TestTranslatePlayFromHand(t *testing.T) {
	h := hand.FromTiles(tiles(t, "r1", "r2", "r3", "b7", "y7", "k7"))
	run := meld.New(meld.Run, tiles(t, "r1", "r2", "r3"))
	group := meld.New(meld.Group, tiles(t, "b7", "y7", "k7"))
	moves := []search.RawMove{
		{Action: search.LayDown, Meld: run},
		{Action: search.LayDown, Meld: group},
	}

	ops := Translate(nil, h, moves)
	if len(ops) != 2 {
		t.Fatalf("expected 2 PlayFromHand ops, got %d: %+v", len(ops), ops)
	}
	for _, op := range ops {
		if op.Kind != PlayFromHand {
			t.Fatalf("expected PlayFromHand, got %v", op.Kind)
		}
	}
}

func TestTranslateExtendMeld(t *testing.T) {
	h := hand.FromTiles(tiles(t, "r6"))
	table := []*meld.Meld{meld.New(meld.Run, tiles(t, "r3", "r4", "r5"))}
	extended := meld.New(meld.Run, tiles(t, "r3", "r4", "r5", "r6"))
	moves := []search.RawMove{
		{Action: search.PickUp, TableIndex: 0},
		{Action: search.LayDown, Meld: extended},
	}

	ops := Translate(table, h, moves)
	if len(ops) != 1 || ops[0].Kind != ExtendMeld {
		t.Fatalf("expected a single ExtendMeld op, got %+v", ops)
	}
	if len(ops[0].AddedTiles) != 1 || ops[0].AddedTiles[0].String() != "r6" {
		t.Fatalf("expected added tile r6, got %v", ops[0].AddedTiles)
	}
}

func TestTranslateSwapWild(t *testing.T) {
	h := hand.FromTiles(tiles(t, "r4"))
	table := []*meld.Meld{meld.New(meld.Run, tiles(t, "r3", "w", "r5"))}
	swapped := meld.New(meld.Run, tiles(t, "r3", "r4", "r5"))
	moves := []search.RawMove{
		{Action: search.PickUp, TableIndex: 0},
		{Action: search.LayDown, Meld: swapped},
	}

	ops := Translate(table, h, moves)
	if len(ops) != 1 || ops[0].Kind != SwapWild {
		t.Fatalf("expected a single SwapWild op, got %+v", ops)
	}
	want, _ := tile.Parse("r4")
	wild := tile.Wildcard()
	if len(ops[0].Swaps) != 1 || ops[0].Swaps[0].ReplacementFromHand != want || ops[0].Swaps[0].WildTaken != wild {
		t.Fatalf("unexpected swap record: %+v", ops[0].Swaps)
	}
}

func TestTranslateNoMovesYieldsNoOps(t *testing.T) {
	h := hand.FromTiles(tiles(t, "r1"))
	if ops := Translate(nil, h, nil); len(ops) != 0 {
		t.Fatalf("expected no human moves for an empty raw move list, got %+v", ops)
	}
}

func TestTranslateSplitMeld(t *testing.T) {
	// The hand is empty; the table's r1..r8 run is dissolved and rebuilt as
	// two disjoint runs — the pure split: r1..r8 becomes r1..r4 and r5..r8.
	h := hand.New()
	table := []*meld.Meld{meld.New(meld.Run, tiles(t, "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"))}
	first := meld.New(meld.Run, tiles(t, "r1", "r2", "r3", "r4"))
	second := meld.New(meld.Run, tiles(t, "r5", "r6", "r7", "r8"))
	moves := []search.RawMove{
		{Action: search.PickUp, TableIndex: 0},
		{Action: search.LayDown, Meld: first},
		{Action: search.LayDown, Meld: second},
	}

	ops := Translate(table, h, moves)
	if len(ops) != 1 || ops[0].Kind != SplitMeld {
		t.Fatalf("expected a single SplitMeld op, got %+v", ops)
	}
	if len(ops[0].ResultMelds) != 2 {
		t.Fatalf("expected 2 result melds, got %d", len(ops[0].ResultMelds))
	}
}

func TestTranslateTakeFromMeld(t *testing.T) {
	// Table meld 0's first four tiles remain as-is; its last two tiles join
	// two fresh hand tiles into a new run. The destination's only table
	// contributor is meld 0, so this must classify as TakeFromMeld.
	h := hand.FromTiles(tiles(t, "r7", "r8"))
	table := []*meld.Meld{meld.New(meld.Run, tiles(t, "r1", "r2", "r3", "r4", "r5", "r6"))}
	remainder := meld.New(meld.Run, tiles(t, "r1", "r2", "r3", "r4"))
	destination := meld.New(meld.Run, tiles(t, "r5", "r6", "r7", "r8"))
	moves := []search.RawMove{
		{Action: search.PickUp, TableIndex: 0},
		{Action: search.LayDown, Meld: remainder},
		{Action: search.LayDown, Meld: destination},
	}

	ops := Translate(table, h, moves)
	if len(ops) != 1 || ops[0].Kind != TakeFromMeld {
		t.Fatalf("expected a single TakeFromMeld op, got %+v", ops)
	}
	want := tiles(t, "r5", "r6")
	if len(ops[0].TakenTiles) != len(want) {
		t.Fatalf("expected 2 taken tiles, got %v", ops[0].TakenTiles)
	}
	if !ops[0].RemainderMeld.Equal(remainder) || !ops[0].DestinationMeld.Equal(destination) {
		t.Fatalf("unexpected remainder/destination melds: %+v", ops[0])
	}
}

// TestTranslateTakeFromMeldRequiresExclusiveDestination guards the §4.5
// soundness fix: a destination that draws from the anchor AND a second,
// independent original meld must not be classified as TakeFromMeld (which
// only records the single anchor), since that would silently drop the
// second meld's contribution from the human move list. It must fall back to
// Rearrange, which records every contributing original meld as an anchor.
func TestTranslateTakeFromMeldRequiresExclusiveDestination(t *testing.T) {
	h := hand.New()
	table := []*meld.Meld{
		meld.New(meld.Run, tiles(t, "r1", "r2", "r3", "r4")),
		meld.New(meld.Run, tiles(t, "b1", "b2", "b3")),
	}
	remainder := meld.New(meld.Run, tiles(t, "r1", "r2", "r3"))
	// Cross-join: r4 (left over from meld 0) plus all of meld 1's tiles.
	crossJoined := meld.New(meld.Run, tiles(t, "r4", "b1", "b2", "b3"))
	moves := []search.RawMove{
		{Action: search.PickUp, TableIndex: 0},
		{Action: search.PickUp, TableIndex: 1},
		{Action: search.LayDown, Meld: remainder},
		{Action: search.LayDown, Meld: crossJoined},
	}

	ops := Translate(table, h, moves)
	if len(ops) != 1 {
		t.Fatalf("expected meld 1's contribution folded into a single op, got %d: %+v", len(ops), ops)
	}
	if ops[0].Kind != Rearrange {
		t.Fatalf("expected Rearrange once exclusivity fails, got %v", ops[0].Kind)
	}
	if len(ops[0].AnchorIndices) != 2 || ops[0].AnchorIndices[0] != 0 || ops[0].AnchorIndices[1] != 1 {
		t.Fatalf("expected both original melds recorded as anchors, got %v", ops[0].AnchorIndices)
	}
	if len(ops[0].ResultMelds) != 2 {
		t.Fatalf("expected both result melds recorded, got %d", len(ops[0].ResultMelds))
	}
}

func TestTranslateJoinMelds(t *testing.T) {
	h := hand.New()
	table := []*meld.Meld{
		meld.New(meld.Run, tiles(t, "r1", "r2", "r3")),
		meld.New(meld.Run, tiles(t, "r4", "r5", "r6")),
	}
	joined := meld.New(meld.Run, tiles(t, "r1", "r2", "r3", "r4", "r5", "r6"))
	moves := []search.RawMove{
		{Action: search.PickUp, TableIndex: 0},
		{Action: search.PickUp, TableIndex: 1},
		{Action: search.LayDown, Meld: joined},
	}

	ops := Translate(table, h, moves)
	if len(ops) != 1 || ops[0].Kind != JoinMelds {
		t.Fatalf("expected a single JoinMelds op, got %+v", ops)
	}
	if len(ops[0].AnchorIndices) != 2 {
		t.Fatalf("expected both table indices as anchors, got %v", ops[0].AnchorIndices)
	}
}
