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

// Package dev provides the solver's internal dev panel HTTP endpoints.
//
// This is not a production API; it is debug/tooling for quickly replaying a
// cataloged puzzle fixture and inspecting both its raw and human-readable
// move sequence. Errors go through httperr.Errs (errs.Warn/errs.Fatal map to
// HTTP status).
package dev

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/zintix-labs/rummisolve/dto"
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/server/httperr"
	"github.com/zintix-labs/rummisolve/server/netsvr"
	"github.com/zintix-labs/rummisolve/server/svrcfg"
)

// Register mounts the dev panel routes.
//
// Routes:
//   - GET  /dev           : dev panel HTML (embedded JS).
//   - GET  /dev/scenarios : list of cataloged scenario names.
//   - GET  /dev/scenario  : a named scenario's solve result (raw + human moves).
func Register(svr netsvr.NetRouter, cfg *svrcfg.SvrCfg) {
	svr.Get("/dev", devPage)
	svr.Get("/dev/scenarios", devScenarios(cfg))
	svr.Get("/dev/scenario", devScenario(cfg))
}

// devScenarios returns the catalog's registered scenario names.
func devScenarios(cfg *svrcfg.SvrCfg) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		names := cfg.Solver.Catalog().Names()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(names)
	}
}

// devScenario runs a named scenario through the solver and returns both the
// raw move sequence and its human-readable translation.
func devScenario(cfg *svrcfg.SvrCfg) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		name := strings.TrimSpace(r.URL.Query().Get("name"))
		if name == "" {
			httperr.Errs(w, errs.NewWarn("name is required"))
			return
		}
		res, human, err := cfg.Solver.SolveScenario(name)
		if err != nil {
			httperr.Errs(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.NewSolveResponse(res, human))
	}
}

const devPageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>rummisolve dev</title>
  <style>
    body { font-family: -apple-system,BlinkMacSystemFont,"Segoe UI",sans-serif; background:#0f172a; color:#e2e8f0; margin:0; }
    .wrap { max-width: 820px; margin: 24px auto; padding: 16px 20px; background:#111827; border:1px solid #1f2937; border-radius:12px; }
    h1 { margin: 0 0 16px; font-size: 22px; }
    select, button { background:#0b1224; color:#e2e8f0; border:1px solid #1f2738; border-radius:8px; padding:8px 12px; font-size:14px; }
    button { cursor:pointer; background:#38bdf8; color:#0b1224; font-weight:600; margin-left: 8px; }
    pre { background:#0b1224; border:1px solid #1f2738; border-radius:12px; padding:14px; overflow:auto; white-space:pre-wrap; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>rummisolve dev panel</h1>
    <select id="scenario"></select>
    <button id="run">Solve</button>
    <pre id="out"></pre>
  </div>
<script>
const sel = document.getElementById('scenario');
const out = document.getElementById('out');
async function loadScenarios() {
  const res = await fetch('/dev/scenarios');
  const names = await res.json();
  sel.innerHTML = '';
  (names || []).forEach((n) => {
    const opt = document.createElement('option');
    opt.value = n; opt.textContent = n;
    sel.appendChild(opt);
  });
}
async function run() {
  if (!sel.value) return;
  const res = await fetch('/dev/scenario?name=' + encodeURIComponent(sel.value));
  out.textContent = JSON.stringify(await res.json(), null, 2);
}
document.getElementById('run').addEventListener('click', run);
loadScenarios();
</script>
</body></html>`

func devPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(devPageHTML))
}
