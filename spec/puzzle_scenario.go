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

package spec

import (
	"encoding/json"
	"fmt"

	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/tile"
	"gopkg.in/yaml.v3"
)

// MeldSpec is the wire/fixture shape of a table meld: `{type, tiles}`.
type MeldSpec struct {
	Type  string      `yaml:"type"  json:"type"`
	Tiles []tile.Tile `yaml:"tiles" json:"tiles"`
}

// ToMeld converts a fixture meld spec into a validated meld.Meld.
func (m MeldSpec) ToMeld() (*meld.Meld, error) {
	var t meld.Type
	switch m.Type {
	case "run":
		t = meld.Run
	case "group":
		t = meld.Group
	default:
		return nil, errs.Warnf("meld spec: unknown type %q", m.Type)
	}
	mm := meld.New(t, m.Tiles)
	if err := mm.Validate(); err != nil {
		return nil, errs.Wrap(err, "meld spec invalid")
	}
	return mm, nil
}

// PuzzleScenario is a named, self-contained solver input: hand, table,
// strategy and a requested budget, as stored in a catalog fixture or
// submitted in a solve request (spec §6).
type PuzzleScenario struct {
	Name        string      `yaml:"name"          json:"name"`
	Hand        []tile.Tile `yaml:"hand"          json:"hand"`
	Table       []MeldSpec  `yaml:"table"         json:"table"`
	Strategy    string      `yaml:"strategy"      json:"strategy"`
	TimeLimitMS int         `yaml:"time_limit_ms" json:"time_limit_ms"`
}

func (p *PuzzleScenario) valid() error {
	if len(p.Hand) == 0 && len(p.Table) == 0 {
		return errs.NewFatal(fmt.Sprintf("puzzle %q: empty hand and table", p.Name))
	}
	if p.Strategy != "tiles" && p.Strategy != "points" {
		return errs.NewFatal(fmt.Sprintf("puzzle %q: unknown strategy %q", p.Name, p.Strategy))
	}
	if p.TimeLimitMS <= 0 {
		return errs.NewFatal(fmt.Sprintf("puzzle %q: time_limit_ms must be positive", p.Name))
	}
	for _, m := range p.Table {
		if _, err := m.ToMeld(); err != nil {
			return errs.Wrap(err, fmt.Sprintf("puzzle %q", p.Name))
		}
	}
	return nil
}

// HandValue builds the hand.Hand multiset from the tile list.
func (p *PuzzleScenario) HandValue() *hand.Hand {
	return hand.FromTiles(p.Hand)
}

// TableMelds converts the table fixture into validated melds, in order.
func (p *PuzzleScenario) TableMelds() ([]*meld.Meld, error) {
	out := make([]*meld.Meld, 0, len(p.Table))
	for _, m := range p.Table {
		mm, err := m.ToMeld()
		if err != nil {
			return nil, err
		}
		out = append(out, mm)
	}
	return out, nil
}

// GetPuzzleScenarioByYAML parses, validates, and returns a scenario fixture.
func GetPuzzleScenarioByYAML(data []byte) (*PuzzleScenario, error) {
	p := &PuzzleScenario{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal puzzle scenario yaml")
	}
	if err := p.valid(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPuzzleScenarioByJSON is the JSON counterpart of GetPuzzleScenarioByYAML.
func GetPuzzleScenarioByJSON(data []byte) (*PuzzleScenario, error) {
	p := &PuzzleScenario{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal puzzle scenario json")
	}
	if err := p.valid(); err != nil {
		return nil, err
	}
	return p, nil
}
