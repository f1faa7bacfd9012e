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

// Package buildinfo exposes the short source revision the running binary
// was built from, for the health endpoint and logs.
package buildinfo

import "runtime/debug"

// revision is set at link time via:
//
//	go build -ldflags "-X github.com/zintix-labs/rummisolve/buildinfo.revision=<sha>"
//
// When unset, Revision falls back to the VCS revision embedded by the Go
// toolchain (runtime/debug.ReadBuildInfo), and finally to "unknown".
var revision string

const shortLen = 7

// Revision returns the source revision this binary was built from, cut to
// its first 7 characters; a revision of 7 characters or fewer is returned
// whole, without padding. It returns "unknown" if none is available.
func Revision() string {
	if revision != "" {
		return shorten(revision)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "unknown"
}

func shorten(rev string) string {
	if len(rev) <= shortLen {
		return rev
	}
	return rev[:shortLen]
}
