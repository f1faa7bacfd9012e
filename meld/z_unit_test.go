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

package meld_test

import (
	"testing"

	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/tile"
)

func run(tiles ...tile.Tile) *meld.Meld { return meld.New(meld.Run, tiles) }
func group(tiles ...tile.Tile) *meld.Meld { return meld.New(meld.Group, tiles) }

func TestValidateRun(t *testing.T) {
	m := run(tile.New(tile.Red, 3), tile.New(tile.Red, 4), tile.New(tile.Red, 5))
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid run, got %v", err)
	}
}

func TestValidateRunRejectsMismatchedColor(t *testing.T) {
	m := run(tile.New(tile.Red, 3), tile.New(tile.Blue, 4), tile.New(tile.Red, 5))
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for mismatched run colors")
	}
}

func TestValidateRunRejectsOutOfBounds(t *testing.T) {
	m := run(tile.New(tile.Red, 12), tile.New(tile.Red, 13), tile.Wildcard())
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for run extending past 13")
	}
}

func TestValidateGroup(t *testing.T) {
	m := group(tile.New(tile.Red, 7), tile.New(tile.Blue, 7), tile.New(tile.Yellow, 7))
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid group, got %v", err)
	}
}

func TestValidateGroupRejectsDuplicateColor(t *testing.T) {
	m := group(tile.New(tile.Red, 7), tile.New(tile.Red, 7), tile.New(tile.Blue, 7))
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for duplicate color in group")
	}
}

func TestValidateRejectsAllWildcards(t *testing.T) {
	m := run(tile.Wildcard(), tile.Wildcard(), tile.Wildcard())
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for all-wildcard meld")
	}
}

func TestSlotAndPointsWithWildcard(t *testing.T) {
	m := run(tile.New(tile.Red, 3), tile.Wildcard(), tile.New(tile.Red, 5))
	if got := m.Slot(1); got != 4 {
		t.Fatalf("expected wildcard to fill slot 4, got %d", got)
	}
	if got := m.Points(); got != 3+4+5 {
		t.Fatalf("expected points 12, got %d", got)
	}
}

func TestIsReverseOf(t *testing.T) {
	a := run(tile.New(tile.Red, 1), tile.New(tile.Red, 2), tile.New(tile.Red, 3))
	b := run(tile.New(tile.Red, 3), tile.New(tile.Red, 2), tile.New(tile.Red, 1))
	if !a.IsReverseOf(b) {
		t.Fatal("expected b to be the reverse of a")
	}
	if a.IsReverseOf(a) {
		t.Fatal("a meld must not be its own reverse (unless a literal palindrome)")
	}
}

func TestWildCount(t *testing.T) {
	m := run(tile.Wildcard(), tile.New(tile.Red, 2), tile.Wildcard())
	if m.WildCount() != 2 {
		t.Fatalf("expected 2 wildcards, got %d", m.WildCount())
	}
}

func TestCloneIndependence(t *testing.T) {
	m := run(tile.New(tile.Red, 1), tile.New(tile.Red, 2), tile.New(tile.Red, 3))
	c := m.Clone()
	c.Tiles[0] = tile.New(tile.Blue, 1)
	if m.Tiles[0] == c.Tiles[0] {
		t.Fatal("mutating the clone's tiles must not affect the original")
	}
}
