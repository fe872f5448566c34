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

package service

import (
	"context"
	"testing"

	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	repomocks "github.com/ctfarena/arena/internal/ranking/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Individual_Limit(t *testing.T) {
	t.Parallel()
	full := []domain.Entry{
		{Rank: 1, ActorID: 1, TotalPoints: 300},
		{Rank: 2, ActorID: 2, TotalPoints: 200},
		{Rank: 3, ActorID: 3, TotalPoints: 100},
	}
	testCases := []struct {
		name    string
		limit   int
		wantLen int
	}{
		{
			name:    "limit 小于榜长",
			limit:   2,
			wantLen: 2,
		},
		{
			name:    "limit 大于榜长",
			limit:   10,
			wantLen: 3,
		},
		{
			name:    "limit 为 0 返回整榜",
			limit:   0,
			wantLen: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockRankingRepository(ctrl)
			repo.EXPECT().GetView(gomock.Any(), domain.KindIndividual, int64(1)).Return(full, nil)
			svc := NewService(repo)
			res, err := svc.Individual(context.Background(), 1, tc.limit)
			require.NoError(t, err)
			assert.Len(t, res, tc.wantLen)
			assert.Equal(t, full[:tc.wantLen], res)
		})
	}
}

func TestService_ActorRank(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Rank: 1, ActorID: 2, TotalPoints: 200, EarliestSolveAt: 100},
		{Rank: 2, ActorID: 1, TotalPoints: 100, EarliestSolveAt: 200},
	}
	testCases := []struct {
		name    string
		actorId int64
		wantRes domain.ActorRank
	}{
		{
			name:    "榜上有名",
			actorId: 1,
			wantRes: domain.ActorRank{Rank: 2, TotalPoints: 100},
		},
		{
			name:    "没有任何得分不是错误",
			actorId: 99,
			wantRes: domain.ActorRank{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockRankingRepository(ctrl)
			repo.EXPECT().GetView(gomock.Any(), domain.KindIndividual, int64(1)).Return(entries, nil)
			svc := NewService(repo)
			res, err := svc.ActorRank(context.Background(), domain.KindIndividual, 1, tc.actorId)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
