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

package spec

import "testing"

func TestSolverConfigDefaultsAndValidation(t *testing.T) {
	c, err := GetSolverConfigByYAML([]byte("name: default\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DefaultBudgetMS != 500 || c.MaxBudgetMS != 5000 || c.PollIntervalMS != 1 {
		t.Fatalf("unexpected defaults: %+v", c)
	}

	_, err = GetSolverConfigByYAML([]byte("name: bad\ndefault_budget_ms: 9000\nmax_budget_ms: 1000\n"))
	if err == nil {
		t.Fatalf("expected error for default_budget_ms > max_budget_ms")
	}
}

func TestPuzzleScenarioYAML(t *testing.T) {
	raw := []byte(`
name: pure_play
hand: [r1, r2, r3, b7, y7, k7]
table: []
strategy: tiles
time_limit_ms: 500
`)
	p, err := GetPuzzleScenarioByYAML(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HandValue().Size() != 6 {
		t.Fatalf("expected hand size 6, got %d", p.HandValue().Size())
	}
	melds, err := p.TableMelds()
	if err != nil || len(melds) != 0 {
		t.Fatalf("expected empty table, got %v err=%v", melds, err)
	}
}

func TestPuzzleScenarioRejectsUnknownStrategy(t *testing.T) {
	raw := []byte(`
name: bad
hand: [r1]
strategy: weight
time_limit_ms: 500
`)
	if _, err := GetPuzzleScenarioByYAML(raw); err == nil {
		t.Fatalf("expected error for unknown strategy")
	}
}

func TestPuzzleScenarioRejectsInvalidTableMeld(t *testing.T) {
	raw := []byte(`
name: bad_meld
table:
  - type: run
    tiles: [r1, r3]
strategy: tiles
time_limit_ms: 500
`)
	if _, err := GetPuzzleScenarioByYAML(raw); err == nil {
		t.Fatalf("expected error for a non-consecutive run fixture")
	}
}
