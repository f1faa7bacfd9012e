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

package recorder_test

import (
	"testing"
	"time"

	"github.com/zintix-labs/rummisolve/recorder"
	"github.com/zintix-labs/rummisolve/search"
)

func TestSolveRecorderRecordAndDone(t *testing.T) {
	r := recorder.New("bench")
	r.Record(&search.Result{Success: true, SearchCompleted: true, Moves: []search.RawMove{{}}, DepthReached: 2, InitialQuality: 10, FinalQuality: 40}, 5*time.Millisecond)
	r.Record(&search.Result{Success: false, SearchCompleted: false, DepthReached: 0, InitialQuality: 10, FinalQuality: 10}, 2*time.Millisecond)

	report := r.Done()
	if report.Rounds != 2 {
		t.Fatalf("expected 2 rounds, got %d", report.Rounds)
	}
	if report.Successes != 1 {
		t.Fatalf("expected 1 success, got %d", report.Successes)
	}
}

func TestMergeAllCombinesWorkers(t *testing.T) {
	a := recorder.New("bench")
	a.Record(&search.Result{Success: true, SearchCompleted: true, Moves: []search.RawMove{{}}, DepthReached: 1, InitialQuality: 0, FinalQuality: 5}, time.Millisecond)

	b := recorder.New("bench")
	b.Record(&search.Result{Success: true, SearchCompleted: true, Moves: []search.RawMove{{}}, DepthReached: 2, InitialQuality: 0, FinalQuality: 5}, time.Millisecond)

	report, err := recorder.MergeAll("bench", []*recorder.SolveRecorder{a, b})
	if err != nil {
		t.Fatalf("MergeAll: %v", err)
	}
	if report.Rounds != 2 {
		t.Fatalf("expected 2 merged rounds, got %d", report.Rounds)
	}
}

func TestMergeAllRejectsTitleMismatch(t *testing.T) {
	a := recorder.New("one")
	b := recorder.New("two")
	if _, err := recorder.MergeAll("one", []*recorder.SolveRecorder{a, b}); err == nil {
		t.Fatalf("expected title-mismatch rejection")
	}
}
