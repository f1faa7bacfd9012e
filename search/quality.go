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

import "github.com/zintix-labs/rummisolve/hand"

// Strategy selects which quality function the search maximizes.
//
// Dispatch is an inlined switch over a small, closed set of strategies —
// there is no need for general callable plumbing here (spec §9).
type Strategy uint8

const (
	// MinTiles minimizes the count of tiles remaining in hand.
	MinTiles Strategy = iota
	// MinPoints minimizes the summed face value remaining in hand.
	MinPoints
)

func (s Strategy) String() string {
	switch s {
	case MinTiles:
		return "tiles"
	case MinPoints:
		return "points"
	default:
		return "unknown"
	}
}

// ParseStrategy decodes the §6 wire values "tiles"/"points".
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "tiles":
		return MinTiles, true
	case "points":
		return MinPoints, true
	default:
		return 0, false
	}
}

// Quality evaluates q(h) for the given strategy; higher is always better.
func Quality(h *hand.Hand, s Strategy) int {
	switch s {
	case MinPoints:
		return -h.Points()
	default:
		return -h.Size()
	}
}
