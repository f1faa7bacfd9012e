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

package search

import "github.com/zintix-labs/rummisolve/meld"

// RawAction tags a RawMove as a table pick-up or a lay-down.
type RawAction uint8

const (
	PickUp RawAction = iota
	LayDown
)

// RawMove is one step of a raw solver move: either picking up the table
// meld at TableIndex, or laying down Meld. translate.Translate consumes a
// slice of these to produce the human-facing operations (spec §4.5).
type RawMove struct {
	Action     RawAction
	TableIndex int
	Meld       *meld.Meld
}

// Result is the outcome of find_best_moves (spec §4.4).
type Result struct {
	// Success is false when no candidate beat the no-move baseline; Moves
	// is then empty and FinalQuality equals InitialQuality.
	Success bool
	Moves   []RawMove

	// SearchCompleted is false if the wall-clock budget cut the search
	// short before every k in [0, K] and every table subset at each k was
	// explored; the best candidate found so far is still returned.
	SearchCompleted bool
	// DepthReached is the largest k (table melds dissolved) for which at
	// least one k-subset was fully evaluated, per spec §4.6 — not merely the
	// k the outer loop had entered when the budget expired.
	DepthReached int

	InitialQuality int
	FinalQuality   int
}
