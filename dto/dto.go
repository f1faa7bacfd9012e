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

// Package dto holds the wire-format request/response documents exchanged
// with the solve HTTP endpoint (spec §6), and their conversion to/from the
// internal search/translate/meld types.
package dto

import (
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/spec"
	"github.com/zintix-labs/rummisolve/tile"
	"github.com/zintix-labs/rummisolve/translate"
)

// SolveRequest is the decoded `(hand, table, strategy, time_limit_ms)` input.
type SolveRequest struct {
	Hand        []tile.Tile    `json:"hand"`
	Table       []spec.MeldSpec `json:"table"`
	Strategy    string         `json:"strategy"`
	TimeLimitMS int            `json:"time_limit_ms"`
}

// RawMoveDTO is one `{action: "pickup"|"laydown", ...}` wire entry.
type RawMoveDTO struct {
	Action string         `json:"action"`
	Index  int            `json:"index,omitempty"`
	Meld   *spec.MeldSpec `json:"meld,omitempty"`
}

// WildSwapDTO records one wildcard-for-tile substitution.
type WildSwapDTO struct {
	ReplacementFromHand tile.Tile `json:"replacement_from_hand"`
	WildTaken           tile.Tile `json:"wild_taken"`
}

// HumanMoveDTO is the tagged wire record for one declarative operation.
type HumanMoveDTO struct {
	Kind string `json:"kind"`

	AnchorIndices []int `json:"anchor_indices,omitempty"`

	Meld       *spec.MeldSpec `json:"meld,omitempty"`
	AddedTiles []tile.Tile    `json:"added_tiles,omitempty"`

	TakenTiles      []tile.Tile    `json:"taken_tiles,omitempty"`
	RemainderMeld   *spec.MeldSpec `json:"remainder_meld,omitempty"`
	DestinationMeld *spec.MeldSpec `json:"destination_meld,omitempty"`

	ResultMelds []spec.MeldSpec `json:"result_melds,omitempty"`

	Swaps []WildSwapDTO `json:"swaps,omitempty"`

	HandTilesUsed []tile.Tile `json:"hand_tiles_used,omitempty"`
}

// SolveResponse is the full result document returned to the host.
type SolveResponse struct {
	Success         bool           `json:"success"`
	Moves           []RawMoveDTO   `json:"moves,omitempty"`
	HumanMoves      []HumanMoveDTO `json:"human_moves,omitempty"`
	SearchCompleted bool           `json:"search_completed"`
	DepthReached    int            `json:"depth_reached"`
	InitialQuality  int            `json:"initial_quality"`
	FinalQuality    int            `json:"final_quality"`
	Error           string         `json:"error,omitempty"`
}

func meldToSpec(m *meld.Meld) spec.MeldSpec {
	t := "group"
	if m.Type == meld.Run {
		t = "run"
	}
	return spec.MeldSpec{Type: t, Tiles: append([]tile.Tile(nil), m.Tiles...)}
}

func meldToSpecPtr(m *meld.Meld) *spec.MeldSpec {
	if m == nil {
		return nil
	}
	s := meldToSpec(m)
	return &s
}

func meldsToSpecs(ms []*meld.Meld) []spec.MeldSpec {
	if len(ms) == 0 {
		return nil
	}
	out := make([]spec.MeldSpec, len(ms))
	for i, m := range ms {
		out[i] = meldToSpec(m)
	}
	return out
}

func rawMovesToDTO(moves []search.RawMove) []RawMoveDTO {
	if len(moves) == 0 {
		return nil
	}
	out := make([]RawMoveDTO, len(moves))
	for i, m := range moves {
		switch m.Action {
		case search.PickUp:
			out[i] = RawMoveDTO{Action: "pickup", Index: m.TableIndex}
		case search.LayDown:
			out[i] = RawMoveDTO{Action: "laydown", Meld: meldToSpecPtr(m.Meld)}
		}
	}
	return out
}

func humanMovesToDTO(moves []translate.HumanMove) []HumanMoveDTO {
	if len(moves) == 0 {
		return nil
	}
	out := make([]HumanMoveDTO, len(moves))
	for i, m := range moves {
		d := HumanMoveDTO{
			Kind:            m.Kind.String(),
			AnchorIndices:   append([]int(nil), m.AnchorIndices...),
			Meld:            meldToSpecPtr(m.Meld),
			AddedTiles:      m.AddedTiles,
			TakenTiles:      m.TakenTiles,
			RemainderMeld:   meldToSpecPtr(m.RemainderMeld),
			DestinationMeld: meldToSpecPtr(m.DestinationMeld),
			ResultMelds:     meldsToSpecs(m.ResultMelds),
			HandTilesUsed:   m.HandTilesUsed,
		}
		for _, s := range m.Swaps {
			d.Swaps = append(d.Swaps, WildSwapDTO{ReplacementFromHand: s.ReplacementFromHand, WildTaken: s.WildTaken})
		}
		out[i] = d
	}
	return out
}

// NewSolveResponse packages a search.Result plus its translated human moves
// into the transport document (spec §4.6).
func NewSolveResponse(res *search.Result, human []translate.HumanMove) SolveResponse {
	return SolveResponse{
		Success:         res.Success,
		Moves:           rawMovesToDTO(res.Moves),
		HumanMoves:      humanMovesToDTO(human),
		SearchCompleted: res.SearchCompleted,
		DepthReached:    res.DepthReached,
		InitialQuality:  res.InitialQuality,
		FinalQuality:    res.FinalQuality,
	}
}

// ErrorResponse builds the `success=false` shape for malformed input.
func ErrorResponse(err error) SolveResponse {
	msg := "invalid request"
	if e, ok := errs.AsErr(err); ok {
		msg = e.Message
	} else if err != nil {
		msg = err.Error()
	}
	return SolveResponse{Error: msg}
}
