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

// cmd/bench runs a batch of solves concurrently and prints an aggregate
// stats.Report: either the same bundled catalog scenario solved repeatedly,
// or freshly dealt random hands against an empty table.
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/rummisolve"
	"github.com/zintix-labs/rummisolve/corefmt"
	"github.com/zintix-labs/rummisolve/demo"
	"github.com/zintix-labs/rummisolve/genhand"
	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/recorder"
	"github.com/zintix-labs/rummisolve/sdk/core"
	"github.com/zintix-labs/rummisolve/sdk/perf"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/spec"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// seedToken renders seed as a short, copy-pasteable base64 blob so a run can
// be pointed back at the same base seed via -seed after decoding it.
func seedToken(seed int64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(seed))
	return corefmt.EncodeBase64URL(b[:])
}

func main() {
	bindVar()
	perf.RunPProf(runBench, cfg.pprofmode)
}

func runBench() {
	cfg.valid()

	solverCfg, err := spec.GetSolverConfigByYAML([]byte(fmt.Sprintf(
		"name: bench\ndefault_budget_ms: %d\nmax_budget_ms: %d\n",
		cfg.budgetMS, cfg.budgetMS*2,
	)))
	if err != nil {
		log.Fatal(err)
	}
	solver, err := demo.NewWithConfig(solverCfg)
	if err != nil {
		log.Fatal(err)
	}

	green, reset := "\033[1;32m", "\033[0m"
	p := message.NewPrinter(language.English)
	label := cfg.scenario
	if label == "" {
		label = fmt.Sprintf("random(%d tiles)", cfg.handSize)
	}
	p.Printf("%s[WORKERS:%d] [SCENARIO:%s] [ROUNDS:%d] [SEED:%d/%s]%s\n",
		green, cfg.worker, label, cfg.worker*cfg.rounds, cfg.seed, seedToken(cfg.seed), reset)

	seeds := genhand.NewSeedMaker(cfg.seed)
	recorders := make([]*recorder.SolveRecorder, cfg.worker)

	wg := new(sync.WaitGroup)
	wg.Add(cfg.worker)
	bar := pb.StartNew(cfg.worker * cfg.rounds)

	for i := 0; i < cfg.worker; i++ {
		recorders[i] = recorder.New("bench")
		workerSeed := seeds.Next()
		go func(i int, workerSeed int64) {
			defer wg.Done()
			rng := core.New(core.Default().New(workerSeed))
			runWorker(solver, rng, recorders[i], bar)
		}(i, workerSeed)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	report, err := recorder.MergeAll("bench", recorders)
	if err != nil {
		log.Fatal(err)
	}
	p.Printf("%sdone in %s%s\n", green, used, reset)
	report.StdOut()
}

func runWorker(solver *rummisolve.Solver, rng *core.Core, rec *recorder.SolveRecorder, bar *pb.ProgressBar) {
	for r := 0; r < cfg.rounds; r++ {
		start := time.Now()
		var res *search.Result
		if cfg.scenario != "" {
			var err error
			res, _, err = solver.SolveScenario(cfg.scenario)
			if err != nil {
				log.Fatal(err)
			}
		} else {
			h := hand.FromTiles(genhand.Hand(rng, cfg.handSize))
			res, _ = solver.Solve(h, []*meld.Meld{}, search.MinTiles, solver.Config().DefaultBudget())
		}
		rec.Record(res, time.Since(start))
		bar.Increment()
	}
}
