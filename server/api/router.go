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

package api

import (
	"log/slog"
	"net/http"

	"github.com/zintix-labs/rummisolve/server/api/dev"
	v1 "github.com/zintix-labs/rummisolve/server/api/v1"
	"github.com/zintix-labs/rummisolve/server/netsvr"
	"github.com/zintix-labs/rummisolve/server/netsvr/middleware"
	"github.com/zintix-labs/rummisolve/server/svrcfg"
)

const indexHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>rummisolve</title></head>
<body style="font-family:sans-serif">
<h1>rummisolve</h1>
<p>POST/GET <code>/v1/solve</code> — submit a hand/table, get back a move sequence.</p>
<p>GET <code>/v1/health</code> — liveness probe.</p>
</body></html>`

// RegisterRoutes registers HTTP routes based on SvrCfg.Mode.
//
// ModeDev (lab/dev):
//   - Enables developer tooling endpoints (catalog browsing, scenario
//     replay, raw move inspection).
//   - Intended for local development, benchmarking, and demos.
//
// ModeProd (production-safe):
//   - Exposes only minimal, production-safe endpoints (solve/health).
//   - Use this mode when embedding the solver into a real backend service.
func RegisterRoutes(svr netsvr.NetSvr, sCfg *svrcfg.SvrCfg) error {
	registerMiddleware(svr, sCfg.Log)
	registerIndex(svr)

	if sCfg.Mode == svrcfg.ModeDev {
		dev.Register(svr, sCfg)
	}

	return registerV1API(svr, sCfg)
}

func registerMiddleware(svr netsvr.NetSvr, log *slog.Logger) {
	svr.Use(middleware.RequestID)
	svr.Use(middleware.AccessLog(log))
	svr.Use(middleware.Recover)
	svr.Use(middleware.Compression)
}

func registerIndex(svr netsvr.NetSvr) {
	svr.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})
}

func registerV1API(svr netsvr.NetSvr, sCfg *svrcfg.SvrCfg) error {
	h, err := v1.NewSolveHandler(sCfg)
	if err != nil {
		return err
	}

	svr.Group("/v1", func(vOne netsvr.NetRouter) {
		vOne.Get("/solve", h.Solve)
		vOne.Post("/solve", h.Solve)
		vOne.Get("/health", h.Health)
	})
	return nil
}
