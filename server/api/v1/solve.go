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

// Package v1 holds the production-safe HTTP endpoints: solve and health.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/zintix-labs/rummisolve"
	"github.com/zintix-labs/rummisolve/buildinfo"
	"github.com/zintix-labs/rummisolve/dto"
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/hand"
	"github.com/zintix-labs/rummisolve/meld"
	"github.com/zintix-labs/rummisolve/search"
	"github.com/zintix-labs/rummisolve/server/httperr"
	"github.com/zintix-labs/rummisolve/server/svrcfg"
	"github.com/zintix-labs/rummisolve/spec"
)

// SolveHandler serves /v1/solve and /v1/health.
type SolveHandler struct {
	solver *rummisolve.Solver
	log    *slog.Logger
}

// NewSolveHandler builds a SolveHandler from an assembled SvrCfg.
func NewSolveHandler(sCfg *svrcfg.SvrCfg) (*SolveHandler, error) {
	if sCfg.Solver == nil {
		return nil, errs.NewFatal("build solve handler error: solver is required")
	}
	return &SolveHandler{solver: sCfg.Solver, log: sCfg.Log}, nil
}

// Solve decodes a hand/table, runs the search, and returns the move
// sequence plus its human-readable translation (spec §6).
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, err := dto.DecodeSolveRequest(r)
	if err != nil {
		httperr.Log(h.log, "solve decode failed", err)
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse(err))
		return
	}

	strategy, ok := search.ParseStrategy(req.Strategy)
	if !ok {
		err := errs.NewWarn("unknown strategy: " + req.Strategy)
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse(err))
		return
	}

	table, err := tableMelds(req.Table)
	if err != nil {
		httperr.Log(h.log, "solve decode failed", err)
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse(err))
		return
	}

	budget := time.Duration(req.TimeLimitMS) * time.Millisecond
	res, human := h.solver.Solve(hand.FromTiles(req.Hand), table, strategy, budget)

	writeJSON(w, http.StatusOK, dto.NewSolveResponse(res, human))
}

// Health is a liveness probe: the process is up and the solver is usable.
func (h *SolveHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"scenarios": len(h.solver.Catalog().Names()),
		"revision":  buildinfo.Revision(),
	})
}

func tableMelds(specs []spec.MeldSpec) ([]*meld.Meld, error) {
	out := make([]*meld.Meld, 0, len(specs))
	for _, s := range specs {
		m, err := s.ToMeld()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
