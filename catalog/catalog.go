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

// Package catalog holds the flat-filesystem registry of named puzzle
// scenario fixtures (demo/bench/dev-endpoint inputs).
package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/spec"
)

var (
	ErrDupName = errs.NewFatal("duplicate scenario name")
)

// Entry names one scenario and the config file it is backed by.
type Entry struct {
	Name       string
	ConfigName string
}

// Catalog indexes Entry values registered against one or more flat fs.FS
// sources, enforcing unique scenario names and unique config filenames.
type Catalog struct {
	byName map[string]Entry
	names  []string // 用來穩定排序
	unique map[string]struct{}
	config *multiFS
	frozen bool
}

// New builds a Catalog backed by one or more flat config sources.
func New(cfg ...fs.FS) (*Catalog, error) {
	multFS, err := newMultiFS(cfg...)
	if err != nil {
		return nil, errs.Wrap(err, "can not create catalog")
	}
	return &Catalog{
		byName: map[string]Entry{},
		names:  make([]string, 0, 16),
		unique: map[string]struct{}{},
		config: multFS,
	}, nil
}

// Register adds entries, rejecting duplicate names or config files.
func (c *Catalog) Register(entries ...Entry) error {
	if c.frozen {
		return errs.NewWarn("can not register when catalog already frozen")
	}
	seenName := map[string]struct{}{}
	seenCfg := map[string]struct{}{}
	for _, e := range entries {
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		if e.Name == "" {
			return errs.NewFatal("scenario name required")
		}
		if err := validFileName(e.ConfigName); err != nil {
			return err
		}
		if _, ok := c.config.index[e.ConfigName]; !ok {
			return errs.NewFatal(fmt.Sprintf("config file not found: %s", e.ConfigName))
		}
		if _, ok := c.byName[e.Name]; ok {
			return ErrDupName
		}
		if _, ok := c.unique[e.ConfigName]; ok {
			return errs.NewFatal(fmt.Sprintf("duplicate config name: %s", e.ConfigName))
		}
		if _, ok := seenName[e.Name]; ok {
			return ErrDupName
		}
		if _, ok := seenCfg[e.ConfigName]; ok {
			return errs.NewFatal(fmt.Sprintf("duplicate config name: %s", e.ConfigName))
		}
		seenName[e.Name] = struct{}{}
		seenCfg[e.ConfigName] = struct{}{}
	}
	for _, e := range entries {
		e.Name = strings.ToLower(strings.TrimSpace(e.Name))
		c.unique[e.ConfigName] = struct{}{}
		c.byName[e.Name] = e
		c.names = append(c.names, e.Name)
	}
	sort.Strings(c.names)
	return nil
}

// GetByName returns the entry for name, case-insensitively.
func (c *Catalog) GetByName(name string) (Entry, bool) {
	e, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// Names lists every registered scenario name, sorted.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// All returns every registered entry in name order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.names))
	for _, n := range c.names {
		out = append(out, c.byName[n])
	}
	return out
}

// Freeze prevents further Register calls.
func (c *Catalog) Freeze() { c.frozen = true }

// IsFrozen reports whether Freeze was called.
func (c *Catalog) IsFrozen() bool { return c.frozen }

func validFileName(file string) error {
	if file == "" {
		return errs.NewFatal("empty config filename")
	}
	if strings.ContainsAny(file, `/\:`) {
		return errs.NewFatal(fmt.Sprintf("invalid config filename: %q (must be a basename)", file))
	}
	lower := strings.ToLower(file)
	if !(strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".json")) {
		return errs.NewFatal(fmt.Sprintf("invalid config filename: %q (must end with .yaml, .yml, or .json)", file))
	}
	if strings.HasPrefix(file, ".") {
		return errs.NewFatal(fmt.Sprintf("invalid config filename: %q (cannot start with '.')", file))
	}
	return nil
}

func parsePuzzleScenarioByExt(filename string, raw []byte) (*spec.PuzzleScenario, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return spec.GetPuzzleScenarioByYAML(raw)
	case ".json":
		return spec.GetPuzzleScenarioByJSON(raw)
	default:
		return nil, errs.NewFatal(fmt.Sprintf("unsupported config format: %q", filename))
	}
}

// ScenarioByName loads, parses, and validates the scenario fixture for name.
func (c *Catalog) ScenarioByName(name string) (*spec.PuzzleScenario, error) {
	e, ok := c.GetByName(name)
	if !ok {
		return nil, errs.NewWarn("name does not exist in catalog")
	}
	src, ok := c.config.GetFS(e.ConfigName)
	if !ok {
		return nil, errs.NewWarn("file name does not exist in catalog")
	}
	raw, err := fs.ReadFile(src, e.ConfigName)
	if err != nil {
		return nil, errs.Wrap(err, "catalog read file error")
	}
	return parsePuzzleScenarioByExt(e.ConfigName, raw)
}

type multiFS struct {
	src   []fs.FS
	index map[string]int // name -> src index
}

func newMultiFS(src ...fs.FS) (*multiFS, error) {
	if len(src) == 0 {
		return nil, errs.NewFatal("no fs provided")
	}
	for i, s := range src {
		if s == nil {
			return nil, errs.NewFatal(fmt.Sprintf("fs[%d] is nil", i))
		}
	}

	m := &multiFS{src: src, index: make(map[string]int, 64)}

	for i := 0; i < len(src); i++ {
		err := fs.WalkDir(src[i], ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path == "." {
					return nil
				}
				return errs.NewFatal(fmt.Sprintf("config FS must be flat (no subdirectories): %q", path))
			}
			if strings.Contains(path, "/") {
				return errs.NewFatal(fmt.Sprintf("config FS must be flat (no subdirectories): %q", path))
			}
			lower := strings.ToLower(path)
			if !(strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".json")) {
				return nil
			}
			if prev, ok := m.index[path]; ok {
				return errs.NewFatal(fmt.Sprintf("duplicate config %q in fs[%d] and fs[%d]", path, prev, i))
			}
			m.index[path] = i
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *multiFS) GetFS(name string) (fs.FS, bool) {
	if id, ok := m.index[name]; ok {
		return m.src[id], true
	}
	return nil, false
}

// Sources exposes config FS sources for read-only iteration.
func (m *multiFS) Sources() []fs.FS {
	if m == nil || len(m.src) == 0 {
		return nil
	}
	return append([]fs.FS(nil), m.src...)
}
