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
	"crypto/rand"
	"flag"
	"log"
	"math"
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var cfg *config = new(config)

type config struct {
	worker    int
	rounds    int
	handSize  int
	budgetMS  int
	scenario  string
	seed      int64
	pprofmode string
}

func bindVar() {
	flag.IntVar(&cfg.worker, "worker", 1, "number of concurrent workers")
	flag.IntVar(&cfg.rounds, "rounds", 1000, "solves per worker")
	flag.IntVar(&cfg.handSize, "hand-size", 14, "tiles per randomly generated hand (ignored with -scenario)")
	flag.IntVar(&cfg.budgetMS, "budget-ms", 500, "default search budget per solve, in ms")
	flag.StringVar(&cfg.scenario, "scenario", "", "bundled catalog scenario name; empty draws random hands instead")
	flag.Int64Var(&cfg.seed, "seed", -1, "int64 seed for random hand generation")
	flag.StringVar(&cfg.pprofmode, "p", "", "pprof: '', cpu, heap, allocs")

	flag.Parse()

	if cfg.seed < 1 {
		seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			log.Fatal(err)
		}
		cfg.seed = seed.Int64()
	}
}

func (cfg *config) valid() {
	p := message.NewPrinter(language.English)
	if cfg.worker < 1 {
		log.Fatal("value err: worker must > 0")
	}
	if cfg.rounds < 1 {
		log.Fatal("value err: rounds must > 0")
	}
	if cfg.handSize < 0 {
		log.Fatal("value err: hand-size must >= 0")
	}
	if cfg.handSize > 106 {
		p.Printf("hand-size too large: %d resized to 106 (full deck)\n", cfg.handSize)
		cfg.handSize = 106
	}
	if cfg.budgetMS < 1 {
		log.Fatal("value err: budget-ms must > 0")
	}
}
