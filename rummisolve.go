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

// Package rummisolve 提供求解引擎的「組裝入口（assembler）」與「執行入口（runtime entry）」。
//
// 它把兩個地基組合起來：
//  1. Catalog：題目目錄（puzzle fixtures），供 demo/bench/dev 端點依名稱取用。
//  2. SolverConfig：服務層設定（預設/上限搜尋預算、輪詢間隔）。
//
// 本套件本身不綁定任何「檔案路徑」概念：fixture 來源一律以 fs.FS 注入。
package rummisolve

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/zintix-labs/rummisolve/catalog"
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/spec"
	"github.com/zintix-labs/rummisolve/translate"
)

// Solver is the assembler/runtime entry: a frozen catalog of puzzle fixtures
// plus the service-level solver config (budgets).
type Solver struct {
	cfg *spec.SolverConfig
	cat *catalog.Catalog
}

// New builds a Solver backed by one or more flat fixture fs.FS sources.
func New(cfg *spec.SolverConfig, fixtures ...fs.FS) (*Solver, error) {
	if cfg == nil {
		return nil, errs.NewFatal("solver config required")
	}
	if len(fixtures) == 0 {
		return nil, errs.NewFatal("fixture sources required")
	}
	cat, err := catalog.New(fixtures...)
	if err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg, cat: cat}, nil
}

// NewAuto builds a Solver and immediately registers every fixture found in
// the given sources, then freezes the catalog.
func NewAuto(cfg *spec.SolverConfig, fixtures ...fs.FS) (*Solver, error) {
	s, err := New(cfg, fixtures...)
	if err != nil {
		return nil, err
	}
	if err := s.RegisterAll(); err != nil {
		return nil, err
	}
	s.Freeze()
	return s, nil
}

// RegisterAll scans every fixture source and registers each parseable
// puzzle scenario file under its own `name` field.
//
// Fail-fast and atomic, like the catalog assembler it is modeled on: any
// read/parse/duplicate-name error aborts before anything is registered.
func (s *Solver) RegisterAll() error {
	entries := make([]catalog.Entry, 0, 32)
	seenName := map[string]string{}

	for _, src := range s.cat.Sources() {
		walkErr := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			base := filepath.Base(path)
			if strings.HasPrefix(base, ".") {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(base))
			if ext != ".yaml" && ext != ".yml" && ext != ".json" {
				return nil
			}

			raw, rerr := fs.ReadFile(src, path)
			if rerr != nil {
				return errs.Wrap(rerr, fmt.Sprintf("read fixture failed: %s", base))
			}
			var (
				ps   *spec.PuzzleScenario
				perr error
			)
			switch ext {
			case ".yaml", ".yml":
				ps, perr = spec.GetPuzzleScenarioByYAML(raw)
			default:
				ps, perr = spec.GetPuzzleScenarioByJSON(raw)
			}
			if perr != nil {
				return errs.Wrap(perr, fmt.Sprintf("parse fixture failed: %s", base))
			}

			name := strings.ToLower(strings.TrimSpace(ps.Name))
			if name == "" {
				return errs.NewFatal(fmt.Sprintf("scenario name required: %s", base))
			}
			if prev, ok := seenName[name]; ok {
				return errs.NewFatal(fmt.Sprintf("duplicate scenario name: %s (fixtures %s and %s)", name, prev, base))
			}
			seenName[name] = base

			entries = append(entries, catalog.Entry{Name: name, ConfigName: base})
			return nil
		})
		if walkErr != nil {
			return walkErr
		}
	}

	if len(entries) == 0 {
		return errs.NewFatal("no fixture files found to register")
	}
	return s.cat.Register(entries...)
}

// Freeze prevents further catalog registration.
func (s *Solver) Freeze() { s.cat.Freeze() }

// Catalog exposes the underlying fixture catalog.
func (s *Solver) Catalog() *catalog.Catalog { return s.cat }

// Config exposes the service-level solver config.
func (s *Solver) Config() *spec.SolverConfig { return s.cfg }

// Solve runs find_best_moves + Translate over a hand/table pair directly
// (the path taken by a /v1/solve request). budget is the caller's
// time_limit_ms (spec §6): a positive value is honored as-is, down to
// 1ms, and only clamped down if it exceeds MaxBudget. budget<=0 means
// "unspecified" and falls back to DefaultBudget.
func (s *Solver) Solve(h *hand.Hand, table []*meld.Meld, strategy search.Strategy, budget time.Duration) (*search.Result, []translate.HumanMove) {
	budget = resolveBudget(budget, s.cfg.DefaultBudget(), s.cfg.MaxBudget())
	res := search.FindBestMoves(table, h, strategy, budget, search.RealClock{}, search.DefaultMaxDissolve)
	human := translate.Translate(table, h, res.Moves)
	return res, human
}

// SolveScenario loads a named catalog fixture and solves it using its own
// declared strategy and time limit.
func (s *Solver) SolveScenario(name string) (*search.Result, []translate.HumanMove, error) {
	ps, err := s.cat.ScenarioByName(name)
	if err != nil {
		return nil, nil, err
	}
	table, err := ps.TableMelds()
	if err != nil {
		return nil, nil, err
	}
	strat, ok := search.ParseStrategy(ps.Strategy)
	if !ok {
		return nil, nil, errs.NewFatal(fmt.Sprintf("unknown strategy: %q", ps.Strategy))
	}
	res, human := s.Solve(ps.HandValue(), table, strat, time.Duration(ps.TimeLimitMS)*time.Millisecond)
	return res, human, nil
}

// resolveBudget never raises a sub-default request up to def — only the
// upper bound (max) is enforced. d<=0 (unspecified) falls back to def.
func resolveBudget(d, def, max time.Duration) time.Duration {
	if d <= 0 {
		d = def
	}
	if d > max {
		return max
	}
	return d
}
