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

// Package recorder accumulates per-solve outcomes (as a benchmark run
// progresses) into a stats.Report.
package recorder

import (
	"time"

	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/stats"
)

// SolveRecorder records batch-solve outcomes under a named title.
type SolveRecorder struct {
	Title string
	acc   *stats.Accumulator
}

// New builds a SolveRecorder; title is used as the StdOut table header.
func New(title string) *SolveRecorder {
	return &SolveRecorder{Title: title, acc: stats.NewAccumulator(title)}
}

// Record folds one solve outcome into the recorder.
func (r *SolveRecorder) Record(res *search.Result, elapsed time.Duration) {
	r.acc.Record(
		elapsed,
		res.Success,
		res.SearchCompleted,
		len(res.Moves),
		res.DepthReached,
		res.InitialQuality,
		res.FinalQuality,
	)
}

// Done reduces every recorded sample into a stats.Report.
func (r *SolveRecorder) Done() *stats.Report {
	return r.acc.Done()
}

// Merge merges other's recorded samples into r. Used to combine per-worker
// recorders from a concurrent benchmark run before computing the final
// report.
func (r *SolveRecorder) Merge(other *SolveRecorder) error {
	if other == nil {
		return nil
	}
	if r.Title != other.Title {
		return errs.NewFatal("merge solve recorder err: different title")
	}
	r.acc.Merge(other.acc)
	return nil
}

// MergeAll merges a slice of per-worker recorders into one combined report.
func MergeAll(title string, recorders []*SolveRecorder) (*stats.Report, error) {
	if len(recorders) == 0 {
		return nil, errs.NewFatal("merge solve recorders err: empty input")
	}
	combined := New(title)
	for _, r := range recorders {
		if r == nil {
			continue
		}
		if err := combined.Merge(r); err != nil {
			return nil, err
		}
	}
	return combined.Done(), nil
}
