package demo_scenarios

import "embed"

// FS provides the embedded end-to-end puzzle fixtures from spec §8 for
// external usage (cmd/svr, cmd/bench, cmd/solve, and tests).
//
//go:embed *.yaml
var FS embed.FS
