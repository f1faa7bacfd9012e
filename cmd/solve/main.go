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

// cmd/solve runs one bundled catalog scenario through the solver and prints
// its move list as indented JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zintix-labs/rummisolve/demo"
	"github.com/zintix-labs/rummisolve/dto"
)

func main() {
	var (
		scenario string
		list     bool
	)
	flag.StringVar(&scenario, "scenario", "pure_play", "bundled catalog scenario name")
	flag.BoolVar(&list, "list", false, "list bundled scenario names and exit")
	flag.Parse()

	solver, err := demo.New()
	if err != nil {
		log.Fatal(err)
	}

	if list {
		for _, name := range solver.Catalog().Names() {
			fmt.Println(name)
		}
		return
	}

	res, human, err := solver.SolveScenario(scenario)
	if err != nil {
		log.Fatal(err)
	}

	resp := dto.NewSolveResponse(res, human)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Fatal(err)
	}
}
