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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./ranking.go -package=daomocks -destination=./mocks/ranking.mock.go RankingDAO

// 对应 competition 模块里的已结束状态，榜单只读不写
const competitionStatusCompleted = 3

// ScoreAggregate 一组得分记录的聚合结果，排序在仓储层做
type ScoreAggregate struct {
	ActorId         int64
	TotalPoints     int64
	Solves          int64
	EarliestSolveAt int64
}

// RankingDAO 是 scores 表（提交模块所有）上的只读侧，
// 三类视图共用同一张得分账本
type RankingDAO interface {
	AggrIndividual(ctx context.Context, competitionId int64) ([]ScoreAggregate, error)
	AggrTeam(ctx context.Context, competitionId int64) ([]ScoreAggregate, error)
	AggrGlobal(ctx context.Context) ([]ScoreAggregate, error)
}

type GORMRankingDAO struct {
	db *egorm.Component
}

func NewGORMRankingDAO(db *egorm.Component) RankingDAO {
	return &GORMRankingDAO{db: db}
}

func (g *GORMRankingDAO) AggrIndividual(ctx context.Context, competitionId int64) ([]ScoreAggregate, error) {
	var res []ScoreAggregate
	err := g.db.WithContext(ctx).
		Table("scores").
		Select("uid AS actor_id, SUM(points) AS total_points, COUNT(*) AS solves, MIN(solved_at) AS earliest_solve_at").
		Where("competition_id = ?", competitionId).
		Group("uid").
		Scan(&res).Error
	return res, err
}

func (g *GORMRankingDAO) AggrTeam(ctx context.Context, competitionId int64) ([]ScoreAggregate, error) {
	var res []ScoreAggregate
	err := g.db.WithContext(ctx).
		Table("scores").
		Select("actor_id, SUM(points) AS total_points, COUNT(*) AS solves, MIN(solved_at) AS earliest_solve_at").
		Where("competition_id = ?", competitionId).
		Group("actor_id").
		Scan(&res).Error
	return res, err
}

func (g *GORMRankingDAO) AggrGlobal(ctx context.Context) ([]ScoreAggregate, error) {
	var res []ScoreAggregate
	err := g.db.WithContext(ctx).
		Table("scores AS s").
		Select("s.uid AS actor_id, SUM(s.points) AS total_points, COUNT(*) AS solves, MIN(s.solved_at) AS earliest_solve_at").
		Joins("JOIN competitions AS c ON c.id = s.competition_id").
		Where("c.status = ?", competitionStatusCompleted).
		Group("s.uid").
		Scan(&res).Error
	return res, err
}
