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

package genhand_test

import (
	"testing"

	"github.com/zintix-labs/rummisolve/genhand"
	"github.com/zintix-labs/rummisolve/sdk/core"
)

func TestHandRespectsMultiplicityCap(t *testing.T) {
	c := core.New(core.Default().New(1))
	h := genhand.Hand(c, 106)
	if len(h) != 106 {
		t.Fatalf("expected 106 tiles, got %d", len(h))
	}

	counts := map[string]int{}
	for _, t := range h {
		counts[t.String()]++
	}
	for k, n := range counts {
		if n > 2 {
			t.Fatalf("tile %s drawn %d times, deck caps at 2", k, n)
		}
	}
}

func TestHandClampsToDeckSize(t *testing.T) {
	c := core.New(core.Default().New(2))
	h := genhand.Hand(c, 1000)
	if len(h) != 106 {
		t.Fatalf("expected hand clamped to deck size 106, got %d", len(h))
	}
}

func TestSeedMakerProducesDistinctSeeds(t *testing.T) {
	sm := genhand.NewSeedMaker(42)
	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		s := sm.Next()
		if seen[s] {
			t.Fatalf("duplicate seed produced at iteration %d", i)
		}
		seen[s] = true
	}
}

func TestSeedMakerDeterministic(t *testing.T) {
	a := genhand.NewSeedMaker(7)
	b := genhand.NewSeedMaker(7)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("same base seed must produce the same stream")
		}
	}
}
