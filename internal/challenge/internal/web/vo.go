// Copyright 2024 ctfarena
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ctfarena/arena/internal/challenge/internal/domain"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: 502001,
	Msg:  "系统错误",
}

type SaveReq struct {
	Challenge Challenge `json:"challenge"`
	// Flag 明文，只在本次请求内存活，服务端哈希后丢弃
	Flag string `json:"flag"`
}

type ListReq struct {
	CompetitionID int64 `json:"competitionId"`
	Offset        int   `json:"offset"`
	Limit         int   `json:"limit"`
}

// Challenge 管理端视图，不含 flag 材料
type Challenge struct {
	ID            int64  `json:"id"`
	CompetitionID int64  `json:"competitionId"`
	Title         string `json:"title"`
	Points        int64  `json:"points"`
	CaseSensitive bool   `json:"caseSensitive"`
	Visible       bool   `json:"visible"`
	SolveCnt      int64  `json:"solveCnt"`
}

func (c Challenge) toDomain() domain.Challenge {
	return domain.Challenge{
		ID:            c.ID,
		CompetitionID: c.CompetitionID,
		Title:         c.Title,
		Points:        c.Points,
		CaseSensitive: c.CaseSensitive,
		Visible:       c.Visible,
	}
}

func newChallenge(idx int, ch domain.Challenge) Challenge {
	return Challenge{
		ID:            ch.ID,
		CompetitionID: ch.CompetitionID,
		Title:         ch.Title,
		Points:        ch.Points,
		CaseSensitive: ch.CaseSensitive,
		Visible:       ch.Visible,
		SolveCnt:      ch.SolveCnt,
	}
}
