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

// Package demo wires up the bundled puzzle fixtures for local tooling:
// cmd/svr, cmd/bench, cmd/solve, and the dev panel all start from here.
package demo

import (
	"github.com/zintix-labs/rummisolve"
	"github.com/zintix-labs/rummisolve/catalog"
	"github.com/zintix-labs/rummisolve/demo/demo_scenarios"
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/server/logger"
	"github.com/zintix-labs/rummisolve/server/svrcfg"
	"github.com/zintix-labs/rummisolve/spec"
)

// defaultConfig is the service-level budget used by every bundled tool that
// doesn't build its own spec.SolverConfig.
func defaultConfig() *spec.SolverConfig {
	cfg, _ := spec.GetSolverConfigByYAML([]byte("name: demo\n"))
	return cfg
}

// New builds a Solver preloaded with the bundled end-to-end fixtures.
func New() (*rummisolve.Solver, error) {
	return rummisolve.NewAuto(defaultConfig(), demo_scenarios.FS)
}

// NewWithConfig is New, but with a caller-supplied SolverConfig (budgets).
func NewWithConfig(cfg *spec.SolverConfig) (*rummisolve.Solver, error) {
	return rummisolve.NewAuto(cfg, demo_scenarios.FS)
}

// NewServerConfig builds a ready-to-run SvrCfg (ModeDev, async logger) around
// the bundled fixtures. It is the one-liner behind cmd/dev.
func NewServerConfig() (*svrcfg.SvrCfg, error) {
	solver, err := New()
	if err != nil {
		return nil, errs.NewFatal("new solver failed:" + err.Error())
	}
	sCfg := &svrcfg.SvrCfg{
		Log:    logger.NewDefaultAsyncLogger(logger.ModeDev),
		Solver: solver,
		Mode:   svrcfg.ModeDev,
	}
	return sCfg, nil
}

// NewCatalog opens a catalog over the bundled fixture FS on its own, without
// a full Solver assembly. No scenario is registered in the returned catalog.
func NewCatalog() (*catalog.Catalog, error) {
	return catalog.New(demo_scenarios.FS)
}
