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
	"net/http/httptest"
	"testing"

	"github.com/ctfarena/arena/internal/competition"
	competitionmocks "github.com/ctfarena/arena/internal/competition/mocks"
	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	rankingmocks "github.com/ctfarena/arena/internal/ranking/mocks"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCtx() *ginx.Context {
	ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
	return &ginx.Context{Context: ginCtx}
}

func TestHandler_Mine(t *testing.T) {
	const (
		competitionId = int64(1)
		uid           = int64(1001)
		teamId        = int64(77)
	)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (*rankingmocks.MockService, *competitionmocks.MockService)
		wantCode int
		wantData ActorRank
	}{
		{
			name: "个人赛查个人榜",
			mock: func(ctrl *gomock.Controller) (*rankingmocks.MockService, *competitionmocks.MockService) {
				compSvc := competitionmocks.NewMockService(ctrl)
				compSvc.EXPECT().Info(gomock.Any(), competitionId).
					Return(competition.Competition{
						ID:   competitionId,
						Mode: competition.ModeIndividual,
					}, nil)
				svc := rankingmocks.NewMockService(ctrl)
				svc.EXPECT().ActorRank(gomock.Any(), domain.KindIndividual, competitionId, uid).
					Return(domain.ActorRank{Rank: 2, TotalPoints: 300}, nil)
				return svc, compSvc
			},
			wantData: ActorRank{
				Rank:        ptr(int64(2)),
				TotalPoints: 300,
			},
		},
		{
			name: "团队赛解析队伍查战队榜",
			mock: func(ctrl *gomock.Controller) (*rankingmocks.MockService, *competitionmocks.MockService) {
				compSvc := competitionmocks.NewMockService(ctrl)
				compSvc.EXPECT().Info(gomock.Any(), competitionId).
					Return(competition.Competition{
						ID:   competitionId,
						Mode: competition.ModeTeam,
					}, nil)
				compSvc.EXPECT().ResolveActor(gomock.Any(), competitionId, uid).
					Return(teamId, nil)
				svc := rankingmocks.NewMockService(ctrl)
				svc.EXPECT().ActorRank(gomock.Any(), domain.KindTeam, competitionId, teamId).
					Return(domain.ActorRank{Rank: 1, TotalPoints: 500}, nil)
				return svc, compSvc
			},
			wantData: ActorRank{
				Rank:        ptr(int64(1)),
				TotalPoints: 500,
			},
		},
		{
			name: "团队赛没报名按未上榜返回",
			mock: func(ctrl *gomock.Controller) (*rankingmocks.MockService, *competitionmocks.MockService) {
				compSvc := competitionmocks.NewMockService(ctrl)
				compSvc.EXPECT().Info(gomock.Any(), competitionId).
					Return(competition.Competition{
						ID:   competitionId,
						Mode: competition.ModeTeam,
					}, nil)
				compSvc.EXPECT().ResolveActor(gomock.Any(), competitionId, uid).
					Return(int64(0), competition.ErrNotRegistered)
				return rankingmocks.NewMockService(ctrl), compSvc
			},
			wantData: ActorRank{},
		},
		{
			name: "比赛不存在",
			mock: func(ctrl *gomock.Controller) (*rankingmocks.MockService, *competitionmocks.MockService) {
				compSvc := competitionmocks.NewMockService(ctrl)
				compSvc.EXPECT().Info(gomock.Any(), competitionId).
					Return(competition.Competition{}, competition.ErrCompetitionNotFound)
				return rankingmocks.NewMockService(ctrl), compSvc
			},
			wantCode: 504002,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, compSvc := tc.mock(ctrl)
			hdl := NewHandler(svc, compSvc)
			sess := session.NewMemorySession(session.Claims{Uid: uid})

			res, err := hdl.Mine(newTestCtx(), MineReq{CompetitionID: competitionId}, sess)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.wantData, res.Data)
			}
		})
	}
}

func ptr(v int64) *int64 {
	return &v
}
