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
	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: 504001,
		Msg:  "系统错误",
	}
	competitionNotFoundResult = ginx.Result{
		Code: 504002,
		Msg:  "比赛不存在",
	}
)

type CompetitionViewReq struct {
	CompetitionID int64 `json:"competitionId"`
	Limit         int   `json:"limit"`
}

type GlobalViewReq struct {
	Limit int `json:"limit"`
}

type MineReq struct {
	CompetitionID int64 `json:"competitionId"`
}

type Entry struct {
	Rank            int64 `json:"rank"`
	ActorID         int64 `json:"actorId"`
	TotalPoints     int64 `json:"totalPoints"`
	Solves          int64 `json:"solves"`
	EarliestSolveAt int64 `json:"earliestSolveAt"`
}

func newEntry(idx int, e domain.Entry) Entry {
	return Entry{
		Rank:            e.Rank,
		ActorID:         e.ActorID,
		TotalPoints:     e.TotalPoints,
		Solves:          e.Solves,
		EarliestSolveAt: e.EarliestSolveAt,
	}
}

// ActorRank 未上榜时 rank 序列化为 null
type ActorRank struct {
	Rank        *int64 `json:"rank"`
	TotalPoints int64  `json:"totalPoints"`
}

func newActorRank(ar domain.ActorRank) ActorRank {
	res := ActorRank{
		TotalPoints: ar.TotalPoints,
	}
	if ar.Rank > 0 {
		res.Rank = &ar.Rank
	}
	return res
}
