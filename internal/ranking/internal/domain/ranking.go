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

package domain

type Kind uint8

const (
	KindUnknown Kind = iota
	// KindIndividual 按用户聚合，单场比赛
	KindIndividual
	// KindTeam 按队伍聚合，单场比赛
	KindTeam
	// KindGlobal 按用户聚合，只统计已结束的比赛
	KindGlobal
)

func (k Kind) String() string {
	switch k {
	case KindIndividual:
		return "individual"
	case KindTeam:
		return "team"
	case KindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Entry 榜单上的一行。榜单永远整体替换，Entry 不做原地修改
type Entry struct {
	// Rank 排序后的 1 起始名次
	Rank        int64
	ActorID     int64
	TotalPoints int64
	Solves      int64
	// EarliestSolveAt 该主体最早一次得分的毫秒时间戳，只作为同分时的次序键
	EarliestSolveAt int64
}

// ActorRank 单个主体的名次。没有任何得分是合法状态，不是错误：
// Rank 为 0 表示未上榜
type ActorRank struct {
	Rank        int64
	TotalPoints int64
}
