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

package rummisolve

import (
	"testing"
	"testing/fstest"

	"github.com/zintix-labs/rummisolve/spec"
)

func testFixtures() fstest.MapFS {
	return fstest.MapFS{
		"pure_play.yaml": &fstest.MapFile{Data: []byte(`
name: pure_play
hand: [r1, r2, r3, b7, y7, k7]
table: []
strategy: tiles
time_limit_ms: 500
`)},
	}
}

func TestNewAutoRegistersFixtures(t *testing.T) {
	cfg, err := spec.GetSolverConfigByYAML([]byte("name: default\n"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	s, err := NewAuto(cfg, testFixtures())
	if err != nil {
		t.Fatalf("NewAuto: %v", err)
	}
	if _, ok := s.Catalog().GetByName("pure_play"); !ok {
		t.Fatalf("expected pure_play to be registered")
	}
}

func TestSolveScenario(t *testing.T) {
	cfg, err := spec.GetSolverConfigByYAML([]byte("name: default\n"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	s, err := NewAuto(cfg, testFixtures())
	if err != nil {
		t.Fatalf("NewAuto: %v", err)
	}
	res, human, err := s.SolveScenario("pure_play")
	if err != nil {
		t.Fatalf("SolveScenario: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected a successful solve for a pure-play hand, got %+v", res)
	}
	if len(human) == 0 {
		t.Fatalf("expected at least one human move")
	}
}
