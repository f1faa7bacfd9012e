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

// Package meld implements the run/group meld model and its invariants.
package meld

import (
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/tile"
)

// Type tags whether a Meld is a run or a group.
type Type uint8

const (
	Run Type = iota
	Group
)

func (t Type) String() string {
	if t == Run {
		return "run"
	}
	return "group"
}

// Meld is an ordered tile sequence with an explicit type.
type Meld struct {
	Type  Type
	Tiles []tile.Tile
}

// New builds a Meld without validating it; callers that need the §3
// invariants enforced should call Validate.
func New(t Type, tiles []tile.Tile) *Meld {
	return &Meld{Type: t, Tiles: append([]tile.Tile(nil), tiles...)}
}

// Slot returns the number a tile at position i represents: the group's
// anchoring number, or the run's start+i. Requires a prior Validate (or at
// least that the meld was constructed by the enumerator, which always
// yields §3-consistent melds).
func (m *Meld) Slot(i int) int {
	if m.Type == Group {
		for _, t := range m.Tiles {
			if !t.IsWild() {
				return t.Number()
			}
		}
		panic("meld: group has no real tile to infer its number from")
	}
	for j, t := range m.Tiles {
		if !t.IsWild() {
			return t.Number() - (j - i)
		}
	}
	panic("meld: run has no real tile to infer its numbering from")
}

// Points sums the represented face value of every tile, wildcards included
// (a wildcard's value is the slot it occupies, per spec §3).
func (m *Meld) Points() int {
	total := 0
	for i, t := range m.Tiles {
		if t.IsWild() {
			total += m.Slot(i)
		} else {
			total += t.Number()
		}
	}
	return total
}

// Validate checks the §3 run/group invariants. A violation is a malformed
// input condition (spec §7), never a server fault: errors are returned at
// errs.Warn, not the errs.Wrap default of Fatal.
func (m *Meld) Validate() error {
	n := len(m.Tiles)
	if m.Type == Group {
		if n != 3 && n != 4 {
			return errs.Warnf("meld: group must have 3 or 4 tiles, got %d", n)
		}
		seenColor := map[tile.Color]bool{}
		number := -1
		realCount := 0
		for _, t := range m.Tiles {
			if t.IsWild() {
				continue
			}
			realCount++
			if number == -1 {
				number = t.Number()
			} else if t.Number() != number {
				return errs.NewWarn("meld: group has mismatched numbers")
			}
			if seenColor[t.Color()] {
				return errs.NewWarn("meld: group has duplicate color")
			}
			seenColor[t.Color()] = true
		}
		if realCount == 0 {
			return errs.NewWarn("meld: group cannot be all wildcards")
		}
		return nil
	}

	// Run.
	if n < 3 || n > 13 {
		return errs.Warnf("meld: run must have 3-13 tiles, got %d", n)
	}
	var color tile.Color
	haveColor := false
	realCount := 0
	start := -1
	for i, t := range m.Tiles {
		if t.IsWild() {
			continue
		}
		realCount++
		if !haveColor {
			color = t.Color()
			haveColor = true
		} else if t.Color() != color {
			return errs.NewWarn("meld: run has mismatched colors")
		}
		impliedStart := t.Number() - i
		if start == -1 {
			start = impliedStart
		} else if impliedStart != start {
			return errs.NewWarn("meld: run numbers are not consecutive")
		}
	}
	if realCount == 0 {
		return errs.NewWarn("meld: run cannot be all wildcards")
	}
	if start < 1 || start+n-1 > 13 {
		return errs.NewWarn("meld: run out of [1,13] bounds")
	}
	return nil
}

// Equal reports whether two melds have the same type and the same ordered
// tile identities.
func (m *Meld) Equal(o *Meld) bool {
	if m.Type != o.Type || len(m.Tiles) != len(o.Tiles) {
		return false
	}
	for i := range m.Tiles {
		if m.Tiles[i] != o.Tiles[i] {
			return false
		}
	}
	return true
}

// IsReverseOf reports whether o is the exact tile-reverse of m — only
// meaningful for runs, used by the §4.7 no-op rejection rule ("or its
// reverse for runs").
func (m *Meld) IsReverseOf(o *Meld) bool {
	if m.Type != o.Type || len(m.Tiles) != len(o.Tiles) {
		return false
	}
	n := len(m.Tiles)
	for i := range m.Tiles {
		if m.Tiles[i] != o.Tiles[n-1-i] {
			return false
		}
	}
	return true
}

// WildCount returns how many wildcard positions m uses.
func (m *Meld) WildCount() int {
	c := 0
	for _, t := range m.Tiles {
		if t.IsWild() {
			c++
		}
	}
	return c
}

// Clone returns an independent copy.
func (m *Meld) Clone() *Meld {
	return &Meld{Type: m.Type, Tiles: append([]tile.Tile(nil), m.Tiles...)}
}
