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

// Package spec 定義解題伺服器的設定檔結構（SolverConfig）與題目（PuzzleScenario）。
package spec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zintix-labs/rummisolve/errs"
	"gopkg.in/yaml.v3"
)

// MaxDissolve 是 find_best_moves 的 K 上限（spec §4.4/§9）：一次編譯期常數，
// 不對外開放成 request 層級的可調參數。
const MaxDissolve = 5

// SolverConfig 包含啟動解題伺服器所需的高階設定。
type SolverConfig struct {
	Name            string `yaml:"name"              json:"name"`
	DefaultBudgetMS int    `yaml:"default_budget_ms" json:"default_budget_ms"`
	MaxBudgetMS     int    `yaml:"max_budget_ms"     json:"max_budget_ms"`
	PollIntervalMS  int    `yaml:"poll_interval_ms"  json:"poll_interval_ms"`
}

func (c *SolverConfig) init() error {
	if c.DefaultBudgetMS <= 0 {
		c.DefaultBudgetMS = 500
	}
	if c.MaxBudgetMS <= 0 {
		c.MaxBudgetMS = 5000
	}
	if c.PollIntervalMS <= 0 {
		c.PollIntervalMS = 1
	}
	return c.valid()
}

func (c *SolverConfig) valid() error {
	if c.DefaultBudgetMS > c.MaxBudgetMS {
		return errs.NewFatal(fmt.Sprintf("solver config %q: default_budget_ms > max_budget_ms", c.Name))
	}
	if c.PollIntervalMS > c.DefaultBudgetMS {
		return errs.NewFatal(fmt.Sprintf("solver config %q: poll_interval_ms exceeds default_budget_ms", c.Name))
	}
	return nil
}

// DefaultBudget/MaxBudget 把毫秒設定轉成 time.Duration，供 search 套件直接使用。
func (c *SolverConfig) DefaultBudget() time.Duration {
	return time.Duration(c.DefaultBudgetMS) * time.Millisecond
}

func (c *SolverConfig) MaxBudget() time.Duration {
	return time.Duration(c.MaxBudgetMS) * time.Millisecond
}

func (c *SolverConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// GetSolverConfigByYAML 讀取 YAML 設定、初始化並執行基本檢查後回傳。
func GetSolverConfigByYAML(data []byte) (*SolverConfig, error) {
	c := &SolverConfig{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal solver config yaml")
	}
	if err := c.init(); err != nil {
		return nil, errs.Wrap(err, "solver config initialized err")
	}
	return c, nil
}

// GetSolverConfigByJSON is the JSON counterpart of GetSolverConfigByYAML.
func GetSolverConfigByJSON(data []byte) (*SolverConfig, error) {
	c := &SolverConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal solver config json")
	}
	if err := c.init(); err != nil {
		return nil, errs.Wrap(err, "solver config initialized err")
	}
	return c, nil
}
