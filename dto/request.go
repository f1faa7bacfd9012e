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

package dto

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/zintix-labs/rummisolve/errs"
	"github.com/zintix-labs/rummisolve/spec"
	"github.com/zintix-labs/rummisolve/tile"
)

// DecodeSolveRequest 會把 HTTP 請求解碼成 SolveRequest。
//
// 支援：
//   - GET：從 query string 讀取參數，方便手動測試：
//     hand=r1,r2,r3 （逗號分隔的牌面字串）
//     table=group:r5,b5,y5&table=run:k1,k2,k3 （可重複帶多個 table query，每個代表一副桌面牌組）
//     strategy=tiles|points
//     time_limit_ms=500
//   - POST：從 JSON body 反序列化（唯一能表達完整請求的方式，建議優先使用）。
//
// 注意：
//   - 這裡只負責「解碼（decode）」與基本型別轉換，不做合法性校驗（例如 meld 是否構成合法的
//     run/group）；那是 search/meld 層的責任，解碼後請呼叫合法性檢查再進入求解。
//   - 為避免過大 body 影響服務，POST 會對 body 做大小限制（預設 1MiB）。
//   - POST 會開啟 DisallowUnknownFields()，對未知欄位採用嚴格拒絕，以避免靜默丟資料。
func DecodeSolveRequest(r *http.Request) (*SolveRequest, error) {
	if r == nil {
		return nil, errs.NewWarn("nil request")
	}

	switch r.Method {
	case http.MethodGet:
		return decodeSolveRequestGet(r)

	case http.MethodPost:
		const maxBody = 1 << 20
		body := io.LimitReader(r.Body, maxBody)
		dec := json.NewDecoder(body)
		dec.DisallowUnknownFields()
		req := new(SolveRequest)
		if err := dec.Decode(req); err != nil {
			return nil, errs.Wrap(err, "invalid json")
		}
		return req, nil

	default:
		return nil, errs.NewWarn("method not allowed")
	}
}

func decodeSolveRequestGet(r *http.Request) (*SolveRequest, error) {
	q := r.URL.Query()
	req := &SolveRequest{
		Strategy:    "tiles",
		TimeLimitMS: 500,
	}

	if s := q.Get("hand"); s != "" {
		tiles, err := parseTileList(s)
		if err != nil {
			return nil, errs.Wrap(err, "invalid hand")
		}
		req.Hand = tiles
	}

	for _, spec := range q["table"] {
		m, err := parseMeldSpec(spec)
		if err != nil {
			return nil, errs.Wrap(err, "invalid table")
		}
		req.Table = append(req.Table, m)
	}

	if s := q.Get("strategy"); s != "" {
		req.Strategy = s
	}

	if s := q.Get("time_limit_ms"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errs.NewWarn(fmt.Sprintf("invalid time_limit_ms: %v", err))
		}
		req.TimeLimitMS = v
	}

	return req, nil
}

// parseTileList 解析逗號分隔的牌面字串，例如 "r1,r2,w".
func parseTileList(s string) ([]tile.Tile, error) {
	parts := strings.Split(s, ",")
	out := make([]tile.Tile, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := tile.Parse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// parseMeldSpecField 把 "type:tile,tile,..." 形式的單一 query value 在第一個 ':' 處切成 type 與 tiles 兩段字串。
func parseMeldSpecField(s string) (string, string, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return "", "", errs.NewWarn(fmt.Sprintf("table spec missing ':': %q", s))
	}
	return s[:idx], s[idx+1:], nil
}

func parseMeldSpec(s string) (spec.MeldSpec, error) {
	typ, tiles, err := parseMeldSpecField(s)
	if err != nil {
		return spec.MeldSpec{}, err
	}
	ts, err := parseTileList(tiles)
	if err != nil {
		return spec.MeldSpec{}, err
	}
	return spec.MeldSpec{Type: typ, Tiles: ts}, nil
}
