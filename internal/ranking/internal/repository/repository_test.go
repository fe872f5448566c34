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
	"testing"

	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ctfarena/arena/internal/ranking/internal/repository/cache"
	cachemocks "github.com/ctfarena/arena/internal/ranking/internal/repository/cache/mocks"
	"github.com/ctfarena/arena/internal/ranking/internal/repository/dao"
	daomocks "github.com/ctfarena/arena/internal/ranking/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRank(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		aggs    []dao.ScoreAggregate
		wantRes []domain.Entry
	}{
		{
			name: "总分降序",
			aggs: []dao.ScoreAggregate{
				{ActorId: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 300},
				{ActorId: 2, TotalPoints: 300, Solves: 2, EarliestSolveAt: 100},
			},
			wantRes: []domain.Entry{
				{Rank: 1, ActorID: 2, TotalPoints: 300, Solves: 2, EarliestSolveAt: 100},
				{Rank: 2, ActorID: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 300},
			},
		},
		{
			name: "同分时先得分者在前",
			aggs: []dao.ScoreAggregate{
				{ActorId: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 200},
				{ActorId: 2, TotalPoints: 100, Solves: 1, EarliestSolveAt: 100},
			},
			wantRes: []domain.Entry{
				{Rank: 1, ActorID: 2, TotalPoints: 100, Solves: 1, EarliestSolveAt: 100},
				{Rank: 2, ActorID: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 200},
			},
		},
		{
			name:    "空榜",
			aggs:    []dao.ScoreAggregate{},
			wantRes: []domain.Entry{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, rank(tc.aggs))
		})
	}
}

func TestCachedRankingRepository_GetView(t *testing.T) {
	t.Parallel()
	const competitionId = int64(10)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.RankingDAO, cache.RankingCache)
		kind    domain.Kind
		wantRes []domain.Entry
	}{
		{
			name: "缓存命中不触发重算",
			mock: func(ctrl *gomock.Controller) (dao.RankingDAO, cache.RankingCache) {
				d := daomocks.NewMockRankingDAO(ctrl)
				c := cachemocks.NewMockRankingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.KindIndividual, competitionId).
					Return([]domain.Entry{
						{Rank: 1, ActorID: 7, TotalPoints: 100, Solves: 1, EarliestSolveAt: 50},
					}, nil)
				return d, c
			},
			kind: domain.KindIndividual,
			wantRes: []domain.Entry{
				{Rank: 1, ActorID: 7, TotalPoints: 100, Solves: 1, EarliestSolveAt: 50},
			},
		},
		{
			name: "缓存未命中时从账本重算并回填",
			mock: func(ctrl *gomock.Controller) (dao.RankingDAO, cache.RankingCache) {
				d := daomocks.NewMockRankingDAO(ctrl)
				c := cachemocks.NewMockRankingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.KindIndividual, competitionId).
					Return(nil, cache.ErrRankingNotCached)
				d.EXPECT().AggrIndividual(gomock.Any(), competitionId).
					Return([]dao.ScoreAggregate{
						{ActorId: 2, TotalPoints: 100, Solves: 1, EarliestSolveAt: 100},
						{ActorId: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 200},
					}, nil)
				c.EXPECT().Set(gomock.Any(), domain.KindIndividual, competitionId, []domain.Entry{
					{Rank: 1, ActorID: 2, TotalPoints: 100, Solves: 1, EarliestSolveAt: 100},
					{Rank: 2, ActorID: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 200},
				}).Return(nil)
				return d, c
			},
			kind: domain.KindIndividual,
			wantRes: []domain.Entry{
				{Rank: 1, ActorID: 2, TotalPoints: 100, Solves: 1, EarliestSolveAt: 100},
				{Rank: 2, ActorID: 1, TotalPoints: 100, Solves: 1, EarliestSolveAt: 200},
			},
		},
		{
			name: "全局榜未命中走全局聚合",
			mock: func(ctrl *gomock.Controller) (dao.RankingDAO, cache.RankingCache) {
				d := daomocks.NewMockRankingDAO(ctrl)
				c := cachemocks.NewMockRankingCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.KindGlobal, int64(0)).
					Return(nil, cache.ErrRankingNotCached)
				d.EXPECT().AggrGlobal(gomock.Any()).
					Return([]dao.ScoreAggregate{
						{ActorId: 3, TotalPoints: 500, Solves: 3, EarliestSolveAt: 10},
					}, nil)
				c.EXPECT().Set(gomock.Any(), domain.KindGlobal, int64(0), gomock.Any()).Return(nil)
				return d, c
			},
			kind: domain.KindGlobal,
			wantRes: []domain.Entry{
				{Rank: 1, ActorID: 3, TotalPoints: 500, Solves: 3, EarliestSolveAt: 10},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			repo := NewCachedRankingRepository(d, c)
			cid := competitionId
			if tc.kind == domain.KindGlobal {
				cid = 0
			}
			res, err := repo.GetView(context.Background(), tc.kind, cid)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestCachedRankingRepository_InvalidateCompetition(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockRankingDAO(ctrl)
	c := cachemocks.NewMockRankingCache(ctrl)
	// 只失效比赛内的两个视图，全局榜不动
	c.EXPECT().Del(gomock.Any(), domain.KindIndividual, int64(10)).Return(nil)
	c.EXPECT().Del(gomock.Any(), domain.KindTeam, int64(10)).Return(nil)
	repo := NewCachedRankingRepository(d, c)
	require.NoError(t, repo.InvalidateCompetition(context.Background(), 10))
}
