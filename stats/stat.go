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

// Package stats aggregates a batch of solve outcomes (duration, depth
// reached, quality delta) into a printable/serializable report.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

var lang language.Tag = language.English

// Report is the aggregate statistics over one batch of solve calls.
type Report struct {
	Title string `json:"Title"`

	Rounds           int     `json:"Rounds"`
	Successes        int     `json:"Successes"`
	SuccessRate      float64 `json:"SuccessRate"`
	SearchCompleted  int     `json:"SearchCompleted"`
	CompletionRate   float64 `json:"CompletionRate"`
	NoOpRounds       int     `json:"NoOpRounds"`
	DurationMeanMS   float64 `json:"DurationMeanMS"`
	DurationStdMS    float64 `json:"DurationStdMS"`
	DurationP95MS    float64 `json:"DurationP95MS"`
	DurationMaxMS    float64 `json:"DurationMaxMS"`
	DepthMean        float64 `json:"DepthMean"`
	DepthStd         float64 `json:"DepthStd"`
	QualityDeltaMean float64 `json:"QualityDeltaMean"`
	QualityDeltaStd  float64 `json:"QualityDeltaStd"`

	isDone bool
}

// Accumulator collects raw per-solve samples before Done() reduces them.
type Accumulator struct {
	Title string

	rounds          int
	successes       int
	searchCompleted int
	noOp            int
	durationsMS     []float64
	depths          []float64
	qualityDeltas   []float64
}

// NewAccumulator starts a fresh batch under the given title (shown in
// StdOut's table header).
func NewAccumulator(title string) *Accumulator {
	return &Accumulator{Title: title}
}

// Record folds in one solve outcome.
func (a *Accumulator) Record(elapsed time.Duration, success, searchCompleted bool, movesEmitted, depthReached, initialQuality, finalQuality int) {
	a.rounds++
	if success {
		a.successes++
	}
	if searchCompleted {
		a.searchCompleted++
	}
	if success && movesEmitted == 0 {
		a.noOp++
	}
	a.durationsMS = append(a.durationsMS, float64(elapsed.Microseconds())/1000.0)
	a.depths = append(a.depths, float64(depthReached))
	a.qualityDeltas = append(a.qualityDeltas, float64(finalQuality-initialQuality))
}

// Merge folds another Accumulator's raw samples into this one. Used to
// combine per-worker accumulators from a concurrent benchmark run before
// computing the final Report.
func (a *Accumulator) Merge(other *Accumulator) {
	a.rounds += other.rounds
	a.successes += other.successes
	a.searchCompleted += other.searchCompleted
	a.noOp += other.noOp
	a.durationsMS = append(a.durationsMS, other.durationsMS...)
	a.depths = append(a.depths, other.depths...)
	a.qualityDeltas = append(a.qualityDeltas, other.qualityDeltas...)
}

// Done reduces every accumulated sample into a Report. Safe to call once;
// an empty batch yields an all-zero Report rather than panicking on the
// stddev of zero samples.
func (a *Accumulator) Done() *Report {
	r := &Report{
		Title:           a.Title,
		Rounds:          a.rounds,
		Successes:       a.successes,
		SearchCompleted: a.searchCompleted,
		NoOpRounds:      a.noOp,
	}
	if a.rounds == 0 {
		r.isDone = true
		return r
	}
	r.SuccessRate = float64(a.successes) / float64(a.rounds)
	r.CompletionRate = float64(a.searchCompleted) / float64(a.rounds)

	r.DurationMeanMS, r.DurationStdMS = meanStd(a.durationsMS)
	r.DurationP95MS = quantile(a.durationsMS, 0.95)
	r.DurationMaxMS = quantile(a.durationsMS, 1.0)

	r.DepthMean, r.DepthStd = meanStd(a.depths)
	r.QualityDeltaMean, r.QualityDeltaStd = meanStd(a.qualityDeltas)

	r.isDone = true
	return r
}

func meanStd(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	mean := stat.Mean(xs, nil)
	if len(xs) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(xs, nil)
}

func quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.Empirical, sorted, nil)
}

// WriteWith renders the report through the given Render implementation.
func (r *Report) WriteWith(w io.Writer, rep Render) error {
	return rep.Write(w, r)
}

// StdOut prints an aligned ASCII table to stdout, in the teacher's
// box-drawing style.
func (r *Report) StdOut() {
	p := message.NewPrinter(lang)
	keys := []string{
		"Rounds", "Success Rate", "Completion Rate", "No-op Rounds",
		"Duration Mean", "Duration Std", "Duration P95", "Duration Max",
		"Depth Mean", "Depth Std", "Quality Delta Mean", "Quality Delta Std",
	}
	vals := map[string]string{
		"Rounds":             p.Sprintf("%d", r.Rounds),
		"Success Rate":       p.Sprintf("%.2f %%", 100.0*r.SuccessRate),
		"Completion Rate":    p.Sprintf("%.2f %%", 100.0*r.CompletionRate),
		"No-op Rounds":       p.Sprintf("%d", r.NoOpRounds),
		"Duration Mean":      p.Sprintf("%.2f ms", r.DurationMeanMS),
		"Duration Std":       p.Sprintf("%.2f ms", r.DurationStdMS),
		"Duration P95":       p.Sprintf("%.2f ms", r.DurationP95MS),
		"Duration Max":       p.Sprintf("%.2f ms", r.DurationMaxMS),
		"Depth Mean":         p.Sprintf("%.2f", r.DepthMean),
		"Depth Std":          p.Sprintf("%.2f", r.DepthStd),
		"Quality Delta Mean": p.Sprintf("%.2f", r.QualityDeltaMean),
		"Quality Delta Std":  p.Sprintf("%.2f", r.QualityDeltaStd),
	}
	fmt.Println(fmtTable(r.Title, keys, vals))
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	out := top
	out += fmt.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	out += divider
	for _, k := range keys {
		out += fmt.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	out += divider
	return out
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
