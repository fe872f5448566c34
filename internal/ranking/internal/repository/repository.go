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

package repository

import (
	"context"
	"sort"

	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ctfarena/arena/internal/ranking/internal/repository/cache"
	"github.com/ctfarena/arena/internal/ranking/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/ranking.mock.go RankingRepository

// RankingRepository 按视图维度提供完整的有序榜单。
// 缓存未命中时从得分账本重算并回填
type RankingRepository interface {
	GetView(ctx context.Context, kind domain.Kind, competitionId int64) ([]domain.Entry, error)
	// InvalidateCompetition 删掉一场比赛的个人榜和队伍榜缓存。
	// 全局榜只反映已结束的比赛，靠 TTL 自然过期
	InvalidateCompetition(ctx context.Context, competitionId int64) error
}

type cachedRankingRepository struct {
	dao    dao.RankingDAO
	cache  cache.RankingCache
	logger *elog.Component
}

func NewCachedRankingRepository(d dao.RankingDAO, c cache.RankingCache) RankingRepository {
	return &cachedRankingRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *cachedRankingRepository) GetView(ctx context.Context, kind domain.Kind, competitionId int64) ([]domain.Entry, error) {
	entries, err := r.cache.Get(ctx, kind, competitionId)
	if err == nil {
		return entries, nil
	}
	var aggs []dao.ScoreAggregate
	switch kind {
	case domain.KindIndividual:
		aggs, err = r.dao.AggrIndividual(ctx, competitionId)
	case domain.KindTeam:
		aggs, err = r.dao.AggrTeam(ctx, competitionId)
	case domain.KindGlobal:
		aggs, err = r.dao.AggrGlobal(ctx)
	}
	if err != nil {
		return nil, err
	}
	entries = rank(aggs)
	if er := r.cache.Set(ctx, kind, competitionId, entries); er != nil {
		r.logger.Warn("回填榜单缓存失败",
			elog.String("kind", kind.String()),
			elog.Int64("competitionId", competitionId),
			elog.FieldErr(er))
	}
	return entries, nil
}

func (r *cachedRankingRepository) InvalidateCompetition(ctx context.Context, competitionId int64) error {
	if err := r.cache.Del(ctx, domain.KindIndividual, competitionId); err != nil {
		return err
	}
	return r.cache.Del(ctx, domain.KindTeam, competitionId)
}

// rank 总分降序，同分按最早得分时间升序，先到先排前。
// 名次是排序后的 1 起始下标
func rank(aggs []dao.ScoreAggregate) []domain.Entry {
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].TotalPoints != aggs[j].TotalPoints {
			return aggs[i].TotalPoints > aggs[j].TotalPoints
		}
		return aggs[i].EarliestSolveAt < aggs[j].EarliestSolveAt
	})
	entries := make([]domain.Entry, 0, len(aggs))
	for i, agg := range aggs {
		entries = append(entries, domain.Entry{
			Rank:            int64(i + 1),
			ActorID:         agg.ActorId,
			TotalPoints:     agg.TotalPoints,
			Solves:          agg.Solves,
			EarliestSolveAt: agg.EarliestSolveAt,
		})
	}
	return entries
}
