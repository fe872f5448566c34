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
	"errors"
	"testing"
	"time"

	"github.com/ctfarena/arena/internal/challenge"
	challengemocks "github.com/ctfarena/arena/internal/challenge/mocks"
	"github.com/ctfarena/arena/internal/competition"
	competitionmocks "github.com/ctfarena/arena/internal/competition/mocks"
	"github.com/ctfarena/arena/internal/pkg/flaghash"
	rankingmocks "github.com/ctfarena/arena/internal/ranking/mocks"
	"github.com/ctfarena/arena/internal/submission/internal/domain"
	evtmocks "github.com/ctfarena/arena/internal/submission/internal/event/mocks"
	"github.com/ctfarena/arena/internal/submission/internal/repository"
	cachemocks "github.com/ctfarena/arena/internal/submission/internal/repository/cache/mocks"
	repomocks "github.com/ctfarena/arena/internal/submission/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUid         = int64(123)
	testChallengeId = int64(7)
	testCompId      = int64(10)
	testFlag        = "flag{c0rrect}"
)

type pipelineMocks struct {
	repo     *repomocks.MockSubmissionRepository
	tracker  *cachemocks.MockTracker
	compSvc  *competitionmocks.MockService
	chSvc    *challengemocks.MockService
	rankSvc  *rankingmocks.MockService
	producer *evtmocks.MockSubmissionCompletedEventProducer
}

func newPipelineMocks(ctrl *gomock.Controller) pipelineMocks {
	return pipelineMocks{
		repo:     repomocks.NewMockSubmissionRepository(ctrl),
		tracker:  cachemocks.NewMockTracker(ctrl),
		compSvc:  competitionmocks.NewMockService(ctrl),
		chSvc:    challengemocks.NewMockService(ctrl),
		rankSvc:  rankingmocks.NewMockService(ctrl),
		producer: evtmocks.NewMockSubmissionCompletedEventProducer(ctrl),
	}
}

func (m pipelineMocks) service() Service {
	return NewService(m.repo, m.tracker, m.compSvc, m.chSvc, m.rankSvc, m.producer)
}

func testChallenge(t *testing.T) challenge.Challenge {
	t.Helper()
	hash, salt, err := flaghash.Hash(testFlag, "", false)
	require.NoError(t, err)
	return challenge.Challenge{
		ID:            testChallengeId,
		CompetitionID: testCompId,
		Title:         "web 签到",
		Points:        100,
		FlagHash:      hash,
		FlagSalt:      salt,
		Visible:       true,
	}
}

func activeCompetition() competition.Competition {
	now := time.Now().UnixMilli()
	return competition.Competition{
		ID:        testCompId,
		Mode:      competition.ModeIndividual,
		Status:    competition.StatusActive,
		StartTime: now - time.Hour.Milliseconds(),
		EndTime:   now + time.Hour.Milliseconds(),
	}
}

func TestService_Submit_Rejections(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		mock     func(t *testing.T, m pipelineMocks)
		attempt  domain.Attempt
		checkErr func(t *testing.T, err error)
	}{
		{
			name: "限流拒绝，后续检查不执行",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).
					Return(10*time.Second, nil)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				var rle *RateLimitedError
				require.ErrorAs(t, err, &rle)
				assert.Equal(t, int64(10), rle.Seconds())
			},
		},
		{
			name: "题目不存在",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
				m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).
					Return(challenge.Challenge{}, challenge.ErrChallengeNotFound)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrChallengeNotFound)
			},
		},
		{
			name: "题目不可见视同无权提交",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
				ch := testChallenge(t)
				ch.Visible = false
				m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(ch, nil)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotAccessible)
			},
		},
		{
			name: "比赛已结束",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
				m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(testChallenge(t), nil)
				comp := activeCompetition()
				comp.Status = competition.StatusCompleted
				m.compSvc.EXPECT().Info(gomock.Any(), testCompId).Return(comp, nil)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotAccessible)
			},
		},
		{
			name: "未报名",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
				m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(testChallenge(t), nil)
				m.compSvc.EXPECT().Info(gomock.Any(), testCompId).Return(activeCompetition(), nil)
				m.compSvc.EXPECT().ResolveActor(gomock.Any(), testCompId, testUid).
					Return(int64(0), competition.ErrNotRegistered)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotAccessible)
			},
		},
		{
			name: "已解出，不再进入冷却检查",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
				m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(testChallenge(t), nil)
				m.compSvc.EXPECT().Info(gomock.Any(), testCompId).Return(activeCompetition(), nil)
				m.compSvc.EXPECT().ResolveActor(gomock.Any(), testCompId, testUid).Return(testUid, nil)
				m.repo.EXPECT().HasCorrect(gomock.Any(), testChallengeId, testUid).Return(true, nil)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrAlreadySolved)
			},
		},
		{
			name: "冷却中",
			mock: func(t *testing.T, m pipelineMocks) {
				m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
				m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(testChallenge(t), nil)
				m.compSvc.EXPECT().Info(gomock.Any(), testCompId).Return(activeCompetition(), nil)
				m.compSvc.EXPECT().ResolveActor(gomock.Any(), testCompId, testUid).Return(testUid, nil)
				m.repo.EXPECT().HasCorrect(gomock.Any(), testChallengeId, testUid).Return(false, nil)
				m.tracker.EXPECT().CheckCooldown(gomock.Any(), testUid, testChallengeId).
					Return(3*time.Minute, nil)
			},
			attempt: domain.Attempt{ChallengeID: testChallengeId, UID: testUid, Flag: testFlag},
			checkErr: func(t *testing.T, err error) {
				var cde *CooldownError
				require.ErrorAs(t, err, &cde)
				assert.Equal(t, int64(3), cde.Minutes())
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPipelineMocks(ctrl)
			tc.mock(t, m)
			_, err := m.service().Submit(context.Background(), tc.attempt)
			tc.checkErr(t, err)
		})
	}
}

// 拒绝类检查全部通过之后的各种归宿
func TestService_Submit_Outcomes(t *testing.T) {
	t.Parallel()

	passChecks := func(t *testing.T, m pipelineMocks) {
		m.tracker.EXPECT().CheckRate(gomock.Any(), testUid).Return(time.Duration(0), nil)
		m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(testChallenge(t), nil)
		m.compSvc.EXPECT().Info(gomock.Any(), testCompId).Return(activeCompetition(), nil)
		m.compSvc.EXPECT().ResolveActor(gomock.Any(), testCompId, testUid).Return(testUid, nil)
		m.repo.EXPECT().HasCorrect(gomock.Any(), testChallengeId, testUid).Return(false, nil)
		m.tracker.EXPECT().CheckCooldown(gomock.Any(), testUid, testChallengeId).
			Return(time.Duration(0), nil)
	}

	t.Run("答错只落流水", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPipelineMocks(ctrl)
		passChecks(t, m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub domain.Submission) (int64, error) {
				assert.False(t, sub.Correct)
				assert.Equal(t, testUid, sub.ActorID)
				return int64(101), nil
			})
		m.tracker.EXPECT().RecordOutcome(gomock.Any(), testUid, testChallengeId, false).Return(nil)

		res, err := m.service().Submit(context.Background(), domain.Attempt{
			ChallengeID: testChallengeId,
			UID:         testUid,
			Flag:        "flag{wr0ng}",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Result{
			SubmissionID: 101,
			Correct:      false,
			Message:      "答案不对",
		}, res)
	})

	t.Run("答对走完计分和广播", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPipelineMocks(ctrl)
		passChecks(t, m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub domain.Submission) (int64, error) {
				assert.True(t, sub.Correct)
				// flag 原文不在提交记录里
				assert.Equal(t, testCompId, sub.CompetitionID)
				return int64(102), nil
			})
		m.repo.EXPECT().AwardScore(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sc domain.Score) error {
				assert.Equal(t, int64(102), sc.SubmissionID)
				assert.Equal(t, int64(100), sc.Points)
				assert.Equal(t, testUid, sc.ActorID)
				return nil
			})
		m.tracker.EXPECT().RecordOutcome(gomock.Any(), testUid, testChallengeId, true).Return(nil)
		m.rankSvc.EXPECT().InvalidateCompetition(gomock.Any(), testCompId).Return(nil)
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		res, err := m.service().Submit(context.Background(), domain.Attempt{
			ChallengeID: testChallengeId,
			UID:         testUid,
			// 大小写不敏感的题目，归一化后等价
			Flag: "  FLAG{C0RRECT}  ",
		})
		require.NoError(t, err)
		assert.True(t, res.Correct)
		assert.Equal(t, int64(100), res.Points)
		assert.Equal(t, int64(102), res.SubmissionID)
	})

	t.Run("并发输家按已解出返回", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPipelineMocks(ctrl)
		passChecks(t, m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(103), nil)
		m.repo.EXPECT().AwardScore(gomock.Any(), gomock.Any()).
			Return(repository.ErrDuplicateScore)
		// 这次确实答对了，冷却状态照常清理
		m.tracker.EXPECT().RecordOutcome(gomock.Any(), testUid, testChallengeId, true).Return(nil)

		_, err := m.service().Submit(context.Background(), domain.Attempt{
			ChallengeID: testChallengeId,
			UID:         testUid,
			Flag:        testFlag,
		})
		assert.ErrorIs(t, err, ErrAlreadySolved)
	})

	t.Run("计分事务失败冷却状态仍然更新", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newPipelineMocks(ctrl)
		passChecks(t, m)
		mockErr := errors.New("mock db error")
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(104), nil)
		m.repo.EXPECT().AwardScore(gomock.Any(), gomock.Any()).Return(mockErr)
		m.tracker.EXPECT().RecordOutcome(gomock.Any(), testUid, testChallengeId, true).Return(nil)

		_, err := m.service().Submit(context.Background(), domain.Attempt{
			ChallengeID: testChallengeId,
			UID:         testUid,
			Flag:        testFlag,
		})
		assert.ErrorIs(t, err, mockErr)
	})
}

func TestService_ReconcileScores(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newPipelineMocks(ctrl)
	const limit = 100
	missing := []domain.Submission{
		{ID: 201, CompetitionID: testCompId, ChallengeID: testChallengeId, UID: 1, ActorID: 1, Correct: true, SubmittedAt: 1000},
		{ID: 202, CompetitionID: testCompId, ChallengeID: testChallengeId, UID: 2, ActorID: 2, Correct: true, SubmittedAt: 2000},
	}
	m.repo.EXPECT().FindCorrectWithoutScore(gomock.Any(), limit).Return(missing, nil)
	m.chSvc.EXPECT().Detail(gomock.Any(), testChallengeId).Return(testChallenge(t), nil).Times(2)
	m.repo.EXPECT().AwardScore(gomock.Any(), domain.Score{
		CompetitionID: testCompId,
		ChallengeID:   testChallengeId,
		UID:           1,
		ActorID:       1,
		SubmissionID:  201,
		Points:        100,
		SolvedAt:      1000,
	}).Return(nil)
	// 补偿期间别人先落了账，跳过且不计数
	m.repo.EXPECT().AwardScore(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateScore)
	m.rankSvc.EXPECT().InvalidateCompetition(gomock.Any(), testCompId).Return(nil)

	cnt, err := m.service().ReconcileScores(context.Background(), limit)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}
