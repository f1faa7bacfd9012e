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

// Package tile defines the bit-packed tile identity used across the solver.
package tile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zintix-labs/rummisolve/errs"
)

// Color is one of the four physical tile colors.
type Color uint8

const (
	Red Color = iota
	Blue
	Yellow
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Blue:
		return "b"
	case Yellow:
		return "y"
	case Black:
		return "k"
	default:
		return "?"
	}
}

var colorByRune = map[byte]Color{
	'r': Red,
	'b': Blue,
	'y': Yellow,
	'k': Black,
}

// MinNumber/MaxNumber bound the printed face value of a colored tile.
const (
	MinNumber = 1
	MaxNumber = 13
)

// Wild is the sentinel byte value representing a wildcard tile.
const Wild uint8 = 0xFF

// Tile is a single unsigned byte: Wild, or (color in bits 0-1) | (number in bits 2-5).
type Tile uint8

// New builds a colored tile. n must be in [MinNumber, MaxNumber].
func New(c Color, n int) Tile {
	if n < MinNumber || n > MaxNumber {
		panic(fmt.Sprintf("tile: number out of range: %d", n))
	}
	return Tile(uint8(c&0x03) | uint8(n)<<2)
}

// Wildcard returns the wildcard tile value.
func Wildcard() Tile { return Tile(Wild) }

// IsWild reports whether t is the wildcard sentinel.
func (t Tile) IsWild() bool { return uint8(t) == Wild }

// Color returns t's color. Panics if t is a wildcard.
func (t Tile) Color() Color {
	if t.IsWild() {
		panic("tile: Color called on wildcard")
	}
	return Color(uint8(t) & 0x03)
}

// Number returns t's face number. Panics if t is a wildcard.
func (t Tile) Number() int {
	if t.IsWild() {
		panic("tile: Number called on wildcard")
	}
	return int(uint8(t) >> 2)
}

// String renders the `c n` / `w` textual form from §6 of the spec.
func (t Tile) String() string {
	if t.IsWild() {
		return "w"
	}
	return fmt.Sprintf("%s%d", t.Color(), t.Number())
}

// Parse decodes the `c n` / `w` textual tile grammar. Malformed input is a
// client-input condition (spec §7), never a server fault: errors are
// returned at errs.Warn, not the errs.Wrap default of Fatal.
func Parse(s string) (Tile, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewWarn("tile: empty tile string")
	}
	if s == "w" {
		return Wildcard(), nil
	}
	c, ok := colorByRune[s[0]]
	if !ok {
		return 0, errs.Warnf("tile: unknown color %q", s[0:1])
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < MinNumber || n > MaxNumber {
		return 0, errs.Warnf("tile: invalid number in %q", s)
	}
	return New(c, n), nil
}

// MarshalText implements encoding.TextMarshaler so tiles serialize directly
// as JSON strings in request/response documents.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tile) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML implements yaml.Marshaler so tiles serialize as plain scalar
// strings in fixture files, matching the JSON text form.
func (t Tile) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tile) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Colors lists the four colors in canonical (Red, Blue, Yellow, Black) order.
func Colors() [4]Color { return [4]Color{Red, Blue, Yellow, Black} }
