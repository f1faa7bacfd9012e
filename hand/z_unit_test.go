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

package hand_test

import (
	"testing"

	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/tile"
)

func TestAddRemoveCount(t *testing.T) {
	h := hand.New()
	r7 := tile.New(tile.Red, 7)
	h.Add(r7, 2)
	if h.Count(r7) != 2 || h.Size() != 2 {
		t.Fatalf("expected count 2 size 2, got count %d size %d", h.Count(r7), h.Size())
	}
	h.Remove(r7, 1)
	if h.Count(r7) != 1 || h.Size() != 1 {
		t.Fatalf("expected count 1 size 1, got count %d size %d", h.Count(r7), h.Size())
	}
	h.Remove(r7, 1)
	if h.Count(r7) != 0 {
		t.Fatalf("expected tile fully removed, got count %d", h.Count(r7))
	}
}

func TestRemoveExceedingHeldPanics(t *testing.T) {
	h := hand.New()
	h.Add(tile.New(tile.Blue, 3), 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing more than held")
		}
	}()
	h.Remove(tile.New(tile.Blue, 3), 2)
}

func TestCloneIsIndependent(t *testing.T) {
	h := hand.FromTiles([]tile.Tile{tile.New(tile.Red, 1), tile.New(tile.Red, 1)})
	c := h.Clone()
	c.Add(tile.New(tile.Red, 1), 1)
	if h.Count(tile.New(tile.Red, 1)) != 2 {
		t.Fatal("mutating the clone must not affect the original")
	}
	if c.Count(tile.New(tile.Red, 1)) != 3 {
		t.Fatalf("expected clone count 3, got %d", c.Count(tile.New(tile.Red, 1)))
	}
}

func TestPointsCountsWildcardsAtFixedValue(t *testing.T) {
	h := hand.FromTiles([]tile.Tile{tile.New(tile.Red, 5), tile.Wildcard()})
	if got := h.Points(); got != 5+30 {
		t.Fatalf("expected 35 points, got %d", got)
	}
}

func TestEqual(t *testing.T) {
	a := hand.FromTiles([]tile.Tile{tile.New(tile.Red, 1), tile.New(tile.Blue, 2)})
	b := hand.FromTiles([]tile.Tile{tile.New(tile.Blue, 2), tile.New(tile.Red, 1)})
	if !a.Equal(b) {
		t.Fatal("hands with the same multiset must be Equal regardless of insertion order")
	}
	b.Add(tile.New(tile.Red, 1), 1)
	if a.Equal(b) {
		t.Fatal("hands with different multiplicities must not be Equal")
	}
}

func TestBeats(t *testing.T) {
	b := hand.FromTiles([]tile.Tile{tile.New(tile.Red, 1), tile.New(tile.Red, 1), tile.New(tile.Blue, 2)})
	r := hand.FromTiles([]tile.Tile{tile.New(tile.Red, 1), tile.New(tile.Blue, 2)})
	if !r.Beats(b) {
		t.Fatal("expected r (strict subset multiset) to beat b")
	}
	if b.Beats(r) {
		t.Fatal("a strict superset must not beat the smaller hand")
	}
	if r.Beats(r) {
		t.Fatal("a hand must not beat an identical hand")
	}
}

func TestIdentitiesDeterministicOrder(t *testing.T) {
	h := hand.FromTiles([]tile.Tile{tile.New(tile.Yellow, 5), tile.New(tile.Red, 1), tile.Wildcard()})
	a := h.Identities()
	b := h.Identities()
	if len(a) != 3 {
		t.Fatalf("expected 3 distinct identities, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("Identities must return a stable order across calls")
		}
	}
}
