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

package stats_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/zintix-labs/rummisolve/stats"
)

func TestAccumulatorDoneAggregates(t *testing.T) {
	acc := stats.NewAccumulator("TestBatch")
	acc.Record(10*time.Millisecond, true, true, 2, 3, 10, 40)
	acc.Record(20*time.Millisecond, true, true, 0, 1, 10, 10)
	acc.Record(5*time.Millisecond, false, false, 0, 0, 10, 10)

	r := acc.Done()
	if r.Rounds != 3 {
		t.Fatalf("expected 3 rounds, got %d", r.Rounds)
	}
	if r.Successes != 2 {
		t.Fatalf("expected 2 successes, got %d", r.Successes)
	}
	if r.NoOpRounds != 1 {
		t.Fatalf("expected 1 no-op round, got %d", r.NoOpRounds)
	}
	if r.SearchCompleted != 2 {
		t.Fatalf("expected 2 completed searches, got %d", r.SearchCompleted)
	}
	if r.DurationMeanMS <= 0 {
		t.Fatalf("expected positive mean duration, got %f", r.DurationMeanMS)
	}
}

func TestAccumulatorDoneEmptyBatch(t *testing.T) {
	r := stats.NewAccumulator("Empty").Done()
	if r.Rounds != 0 || r.SuccessRate != 0 || r.DurationMeanMS != 0 {
		t.Fatalf("expected all-zero report for an empty batch, got %+v", r)
	}
}

func TestReportRenderJSONAndYAML(t *testing.T) {
	acc := stats.NewAccumulator("Render")
	acc.Record(1*time.Millisecond, true, true, 1, 2, 5, 15)
	r := acc.Done()

	var jsonBuf bytes.Buffer
	if err := r.WriteWith(&jsonBuf, &stats.JSONRender{}); err != nil {
		t.Fatalf("json render: %v", err)
	}
	if jsonBuf.Len() == 0 {
		t.Fatalf("expected non-empty json output")
	}

	var yamlBuf bytes.Buffer
	if err := r.WriteWith(&yamlBuf, &stats.YAMLRender{}); err != nil {
		t.Fatalf("yaml render: %v", err)
	}
	if yamlBuf.Len() == 0 {
		t.Fatalf("expected non-empty yaml output")
	}
}
