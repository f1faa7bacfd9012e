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

package main

import (
	"flag"
	"fmt"

	"github.com/zintix-labs/rummisolve/demo"
	"github.com/zintix-labs/rummisolve/server"
	"github.com/zintix-labs/rummisolve/server/logger"
	"github.com/zintix-labs/rummisolve/server/svrcfg"
	"github.com/zintix-labs/rummisolve/spec"
)

// This command is intentionally a "lab server" entrypoint for the
// rummisolve repo: it enables all developer endpoints by default.
// For production deployments, assemble your own SvrCfg with ModeProd.
func main() {
	cfg, err := loadConfigFromFlags()
	if err != nil {
		fmt.Println(err)
		return
	}
	server.Run(cfg)
}

type config struct {
	LogMode         string
	DefaultBudgetMS int
	MaxBudgetMS     int
}

func loadConfigFromFlags() (*svrcfg.SvrCfg, error) {
	cfg := new(config)
	flag.StringVar(&cfg.LogMode, "log-mode", "ModeDev", "log mode: ModeDev|ModeProd|ModeSilence")
	flag.IntVar(&cfg.DefaultBudgetMS, "default-budget-ms", 500, "default search budget per solve, in ms")
	flag.IntVar(&cfg.MaxBudgetMS, "max-budget-ms", 5000, "max search budget per solve, in ms")
	flag.Parse()

	log, _ := logger.NewAsync(4096, cfg.norm())

	solverCfg, err := spec.GetSolverConfigByYAML([]byte(fmt.Sprintf(
		"name: svr\ndefault_budget_ms: %d\nmax_budget_ms: %d\n",
		cfg.DefaultBudgetMS, cfg.MaxBudgetMS,
	)))
	if err != nil {
		return nil, err
	}

	solver, err := demo.NewWithConfig(solverCfg)
	if err != nil {
		return nil, err
	}

	sCfg := &svrcfg.SvrCfg{
		Log:    log,
		Solver: solver,
		Mode:   svrcfg.ModeDev,
	}
	return sCfg, nil
}

func (cfg *config) norm() logger.LogMode {
	switch cfg.LogMode {
	case "ModeDev":
		return logger.ModeDev
	case "ModeProd":
		return logger.ModeProd
	case "ModeSilence":
		return logger.ModeSilence
	default:
		return logger.ModeDev
	}
}
