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

package svrcfg

import (
	"log/slog"

	"github.com/zintix-labs/rummisolve"
	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/server/logger"
)

// RunMode controls which HTTP endpoints are exposed by the server router.
//
//   - ModeDev: local development / benchmarking / debugging (scenario catalog
//     browsing and raw-result inspection endpoints enabled)
//   - ModeProd: production-safe exposure (solve + health only)
//
// IMPORTANT:
// The built-in cmd/svr is intended as a lab server and runs with ModeDev.
// For real deployments, assemble your own service and run ModeProd.
type RunMode uint8

const (
	// ModeDev enables the full "lab" surface: catalog listing, scenario
	// replay by name, and raw (untranslated) move inspection.
	//
	// Do NOT use this mode for public-facing production deployments.
	ModeDev RunMode = iota

	// ModeProd enables production-safe exposure only: solve + health.
	ModeProd
)

// SvrCfg is the dependency bundle an HTTP server is assembled from.
type SvrCfg struct {
	Log    *slog.Logger
	Solver *rummisolve.Solver
	Mode   RunMode
}

func (sc *SvrCfg) Vaild() error {
	if sc.Log != nil {
		if ah, ok := sc.Log.Handler().(*logger.AsyncHandler); ok && !ah.Ready() {
			return errs.NewFatal("nil default log handler: async handler is nil")
		}
	} else {
		// Keep quiet but valid: if caller doesn't provide a logger, use a safe default.
		sc.Log, _ = logger.NewAsync(1024, logger.ModeDev)
	}

	if sc.Solver == nil {
		return errs.NewFatal("solver is required")
	}
	return nil
}
