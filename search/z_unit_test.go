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
	"testing"
	"time"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/tile"
)

func mustTiles(t *testing.T, s ...string) []tile.Tile {
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

func TestEnumerateGroupFindsBaseAndWildVariants(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r7", "b7", "y7", "w"))
	melds := Enumerate(h)

	var base, withWild bool
	for _, m := range melds {
		if m.Type != meld.Group || len(m.Tiles) != 3 {
			continue
		}
		if m.Slot(0) != 7 {
			continue
		}
		if m.WildCount() == 0 {
			base = true
		} else if m.WildCount() == 1 {
			withWild = true
		}
	}
	if !base {
		t.Fatalf("expected a wildcard-free r7/b7/y7 group among %v", melds)
	}
	if !withWild {
		t.Fatalf("expected a one-wildcard variant of the r7/b7/y7 group")
	}
}

func TestEnumerateRunRespectsBounds(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r1", "r2", "r3"))
	melds := Enumerate(h)
	found := false
	for _, m := range melds {
		if m.Type == meld.Run && len(m.Tiles) == 3 && m.WildCount() == 0 {
			if err := m.Validate(); err != nil {
				t.Fatalf("enumerated run failed validation: %v", err)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the r1-r2-r3 run to be enumerated")
	}
}

func TestEnumerateNeverExceedsHeldWildcards(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r7", "b7", "y7")) // no wildcards held
	for _, m := range Enumerate(h) {
		if m.WildCount() > 0 {
			t.Fatalf("enumerated a wildcard variant with no wildcards in hand: %v", m)
		}
	}
}

func TestQualitySigns(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r7", "b7"))
	if Quality(h, MinTiles) != -2 {
		t.Fatalf("MinTiles quality = %d, want -2", Quality(h, MinTiles))
	}
	if Quality(h, MinPoints) != -14 {
		t.Fatalf("MinPoints quality = %d, want -14", Quality(h, MinPoints))
	}
}

func TestFindBestMeldsPlaysWholeHandAsGroup(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r7", "b7", "y7"))
	baseline := h.Clone()
	s := NewMeldSearcher(h, MinTiles)

	sel, completed := s.FindBestMelds(h, baseline, RealClock{}, time.Now().Add(time.Second))
	if !completed {
		t.Fatalf("expected search to complete within budget")
	}
	if !sel.Found {
		t.Fatalf("expected a selection beating the full-hand baseline")
	}
	if len(sel.IDs) != 1 {
		t.Fatalf("expected a single meld selection, got %d", len(sel.IDs))
	}
	chosen := s.Melds()[sel.IDs[0]]
	if chosen.Type != meld.Group || len(chosen.Tiles) != 3 {
		t.Fatalf("expected the r7/b7/y7 group, got %v", chosen)
	}
}

func TestFindBestMeldsNoSelectionBeatsBaseline(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r1", "b3"))
	baseline := h.Clone()
	s := NewMeldSearcher(h, MinTiles)

	sel, completed := s.FindBestMelds(h, baseline, RealClock{}, time.Now().Add(time.Second))
	if !completed {
		t.Fatalf("expected search to complete within budget")
	}
	if sel.Found {
		t.Fatalf("expected no meld selection from two unrelated tiles, got %v", sel)
	}
}

func TestFindBestMovesPlaysGroupFromHandAtDepthZero(t *testing.T) {
	// A full group sitting in hand with nothing on the table needs to be
	// found at k=0 and laid down.
	h := hand.FromTiles(mustTiles(t, "r5", "b5", "y5"))
	res := FindBestMoves(nil, h, MinTiles, time.Second, RealClock{}, DefaultMaxDissolve)

	if !res.Success {
		t.Fatalf("expected a successful move, got %+v", res)
	}
	if res.FinalQuality <= res.InitialQuality {
		t.Fatalf("expected quality to improve: initial=%d final=%d", res.InitialQuality, res.FinalQuality)
	}
	foundLayDown := false
	for _, m := range res.Moves {
		if m.Action == LayDown && m.Meld.Type == meld.Group {
			foundLayDown = true
		}
	}
	if !foundLayDown {
		t.Fatalf("expected a lay-down move among %v", res.Moves)
	}
}

func TestFindBestMovesRejectsNoOpDissolveAndReform(t *testing.T) {
	// The table carries exactly the run the hand could reform identically;
	// dissolving it and laying the same run back down changes nothing and
	// must not be reported as success.
	table := []*meld.Meld{meld.New(meld.Run, mustTiles(t, "r1", "r2", "r3"))}
	h := hand.FromTiles(mustTiles(t, "b9")) // cannot otherwise improve
	res := FindBestMoves(table, h, MinTiles, time.Second, RealClock{}, DefaultMaxDissolve)

	if res.Success {
		t.Fatalf("expected the pick-up/reform no-op to be rejected, got %+v", res)
	}
	if res.FinalQuality != res.InitialQuality {
		t.Fatalf("expected unchanged quality, got initial=%d final=%d", res.InitialQuality, res.FinalQuality)
	}
}

func TestFindBestMovesHonorsBudget(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r5", "b5", "y5"))
	clock := NewFakeClock(time.Unix(0, 0))
	res := FindBestMoves(nil, h, MinTiles, -time.Hour, clock, DefaultMaxDissolve)
	if res.SearchCompleted {
		t.Fatalf("expected a negative budget to cut the search short")
	}
}

// steppingClock advances its own reading by step on every call, letting a
// test deterministically predict which Now() call lands past a deadline
// without racing a real timer.
type steppingClock struct {
	cur  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	t := c.cur
	c.cur = c.cur.Add(c.step)
	return t
}

// TestFindBestMovesDepthReachedOnlyCountsFullyEvaluatedDepths guards the
// §4.6 contract: DepthReached must be the deepest k for which some k-subset
// was fully evaluated, not merely the k the outer loop had entered when the
// deadline fired. The hand here holds too few tiles to enumerate any meld at
// all, so k=0's lone (empty) subset evaluates in a single clock tick; the
// deadline is tuned to expire on the very next tick, immediately upon
// entering k=1, before any k=1 subset is evaluated.
func TestFindBestMovesDepthReachedOnlyCountsFullyEvaluatedDepths(t *testing.T) {
	h := hand.FromTiles(mustTiles(t, "r5"))
	table := []*meld.Meld{meld.New(meld.Run, mustTiles(t, "b1", "b2", "b3"))}
	clock := &steppingClock{cur: time.Unix(0, 0), step: 10 * time.Millisecond}

	res := FindBestMoves(table, h, MinTiles, 20*time.Millisecond, clock, DefaultMaxDissolve)

	if res.SearchCompleted {
		t.Fatalf("expected the budget to cut the search short entering k=1")
	}
	if res.DepthReached != 0 {
		t.Fatalf("expected DepthReached=0 (no k=1 subset fully evaluated), got %d", res.DepthReached)
	}
}

func TestCombinationsAscendingLex(t *testing.T) {
	got := combinations(4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("combinations(4,2) length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Fatalf("combinations(4,2)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIsNoOpReproductionDetectsReversedRun(t *testing.T) {
	picked := []*meld.Meld{meld.New(meld.Run, mustTiles(t, "r1", "r2", "r3"))}
	laid := []*meld.Meld{meld.New(meld.Run, mustTiles(t, "r3", "r2", "r1"))}
	if !isNoOpReproduction(picked, laid) {
		t.Fatalf("expected a reversed run to be treated as a no-op reproduction")
	}
}
