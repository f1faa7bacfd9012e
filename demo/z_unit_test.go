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

package demo_test

import (
	"testing"
	"time"

	"github.com/zintix-labs/rummisolve/demo"
	"github.com/zintix-labs/rummisolve/spec"
)

func TestNewRegistersBundledScenarios(t *testing.T) {
	solver, err := demo.New()
	if err != nil {
		t.Fatalf("demo.New: %v", err)
	}
	names := solver.Catalog().Names()
	want := []string{"pure_play", "extend_run", "split_run", "swap_wildcard", "join_two_runs", "budget_bounded"}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected bundled scenario %q, got names %v", w, names)
		}
	}
}

func TestNewWithConfigHonorsBudget(t *testing.T) {
	cfg, err := spec.GetSolverConfigByYAML([]byte("name: test\ndefault_budget_ms: 50\nmax_budget_ms: 100\n"))
	if err != nil {
		t.Fatalf("GetSolverConfigByYAML: %v", err)
	}
	solver, err := demo.NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("demo.NewWithConfig: %v", err)
	}
	if solver.Config().DefaultBudgetMS != 50 {
		t.Fatalf("expected default budget 50ms, got %d", solver.Config().DefaultBudgetMS)
	}
}

// TestSolveScenarioHonorsSubDefaultBudget guards against §6/§8's
// budget-bounded contract: a scenario's own (sub-default) time_limit_ms
// must be honored as-is, never floored up to the service's default
// budget. budget_bounded.yaml declares time_limit_ms: 100 against the
// bundled demo config's 500ms default; it must return in well under
// 500ms.
func TestSolveScenarioHonorsSubDefaultBudget(t *testing.T) {
	solver, err := demo.New()
	if err != nil {
		t.Fatalf("demo.New: %v", err)
	}
	start := time.Now()
	_, _, err = solver.SolveScenario("budget_bounded")
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("SolveScenario: %v", err)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("expected budget_bounded (time_limit_ms: 100) to return within ~200ms, took %s", elapsed)
	}
}

func TestNewCatalogIsUnregistered(t *testing.T) {
	cat, err := demo.NewCatalog()
	if err != nil {
		t.Fatalf("demo.NewCatalog: %v", err)
	}
	if len(cat.Names()) != 0 {
		t.Fatalf("expected an empty, unregistered catalog, got %v", cat.Names())
	}
}

func TestSolveScenarioPurePlayFindsAMove(t *testing.T) {
	solver, err := demo.New()
	if err != nil {
		t.Fatalf("demo.New: %v", err)
	}
	res, _, err := solver.SolveScenario("pure_play")
	if err != nil {
		t.Fatalf("SolveScenario: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected pure_play to find a move")
	}
}
