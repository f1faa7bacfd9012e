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

package tile_test

import (
	"testing"

	"github.com/zintix-labs/rummisolve/tile"
)

func TestNewAndAccessors(t *testing.T) {
	tl := tile.New(tile.Blue, 7)
	if tl.Color() != tile.Blue {
		t.Fatalf("expected blue, got %v", tl.Color())
	}
	if tl.Number() != 7 {
		t.Fatalf("expected 7, got %d", tl.Number())
	}
	if tl.IsWild() {
		t.Fatal("colored tile must not report IsWild")
	}
}

func TestWildcard(t *testing.T) {
	w := tile.Wildcard()
	if !w.IsWild() {
		t.Fatal("expected IsWild")
	}
	if w.String() != "w" {
		t.Fatalf("expected %q, got %q", "w", w.String())
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := []tile.Tile{tile.New(tile.Red, 1), tile.New(tile.Black, 13), tile.Wildcard()}
	for _, c := range cases {
		s := c.String()
		got, err := tile.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got != c {
			t.Fatalf("round trip mismatch: %v != %v", got, c)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "x5", "r0", "r14", "r"} {
		if _, err := tile.Parse(s); err == nil {
			t.Fatalf("expected error parsing %q", s)
		}
	}
}

func TestColorAndNumberPanicOnWild(t *testing.T) {
	w := tile.Wildcard()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic calling Color on wildcard")
			}
		}()
		_ = w.Color()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic calling Number on wildcard")
			}
		}()
		_ = w.Number()
	}()
}

func TestTextMarshalRoundTrip(t *testing.T) {
	tl := tile.New(tile.Yellow, 10)
	b, err := tl.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var got tile.Tile
	if err := got.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if got != tl {
		t.Fatalf("expected %v, got %v", tl, got)
	}
}

func TestColorsOrder(t *testing.T) {
	want := [4]tile.Color{tile.Red, tile.Blue, tile.Yellow, tile.Black}
	if tile.Colors() != want {
		t.Fatalf("expected canonical color order %v, got %v", want, tile.Colors())
	}
}
