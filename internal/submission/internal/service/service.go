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
	"fmt"
	"time"

	"github.com/ctfarena/arena/internal/challenge"
	"github.com/ctfarena/arena/internal/competition"
	"github.com/ctfarena/arena/internal/pkg/flaghash"
	"github.com/ctfarena/arena/internal/ranking"
	"github.com/ctfarena/arena/internal/submission/internal/domain"
	"github.com/ctfarena/arena/internal/submission/internal/event"
	"github.com/ctfarena/arena/internal/submission/internal/repository"
	"github.com/ctfarena/arena/internal/submission/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./service.go -package=submissionmocks -destination=../../mocks/submission.mock.go Service

var (
	// ErrChallengeNotFound 题目或者其所属比赛不存在
	ErrChallengeNotFound = errors.New("题目不存在")
	// ErrNotAccessible 题目不可见、比赛不在进行中、没报名，统一对外不区分
	ErrNotAccessible = errors.New("当前不能提交该题")
	ErrAlreadySolved = errors.New("已经解出该题")
)

// RateLimitedError 窗口内提交次数超限
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("提交过于频繁，%d 秒后重试", e.Seconds())
}

// Seconds 剩余窗口秒数，向上取整且至少为 1，给客户端做倒计时
func (e *RateLimitedError) Seconds() int64 {
	s := int64((e.RetryAfter + time.Second - 1) / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}

// CooldownError 连错三次触发的冷却
type CooldownError struct {
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("错误次数过多，%d 分钟后重试", e.Minutes())
}

// Minutes 冷却剩余分钟数，向上取整且至少为 1
func (e *CooldownError) Minutes() int64 {
	m := int64((e.RetryAfter + time.Minute - 1) / time.Minute)
	if m < 1 {
		m = 1
	}
	return m
}

type Service interface {
	// Submit 跑完整条提交管线。拒绝类错误见上面的定义，
	// 其余错误一律视为系统内部错误
	Submit(ctx context.Context, attempt domain.Attempt) (domain.Result, error)
	// ReconcileScores 补齐答对了却没有得分的提交，返回补了多少条
	ReconcileScores(ctx context.Context, limit int) (int64, error)
}

type service struct {
	repo     repository.SubmissionRepository
	tracker  cache.Tracker
	compSvc  competition.Service
	chSvc    challenge.Service
	rankSvc  ranking.Service
	producer event.SubmissionCompletedEventProducer
	logger   *elog.Component
}

func NewService(repo repository.SubmissionRepository,
	tracker cache.Tracker,
	compSvc competition.Service,
	chSvc challenge.Service,
	rankSvc ranking.Service,
	producer event.SubmissionCompletedEventProducer) Service {
	return &service{
		repo:     repo,
		tracker:  tracker,
		compSvc:  compSvc,
		chSvc:    chSvc,
		rankSvc:  rankSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

// Submit 的检查顺序是有意设计的：所有检查都在任何持久化之前，
// 任何一步失败立即短路返回，不落任何数据
func (s *service) Submit(ctx context.Context, attempt domain.Attempt) (domain.Result, error) {
	// 限流。按提交人计，被拒绝的请求同样消耗配额
	wait, err := s.tracker.CheckRate(ctx, attempt.UID)
	if err != nil {
		return domain.Result{}, err
	}
	if wait > 0 {
		return domain.Result{}, &RateLimitedError{RetryAfter: wait}
	}
	// 题目与所属比赛
	ch, err := s.chSvc.Detail(ctx, attempt.ChallengeID)
	if errors.Is(err, challenge.ErrChallengeNotFound) {
		return domain.Result{}, ErrChallengeNotFound
	}
	if err != nil {
		return domain.Result{}, err
	}
	if !ch.Visible || !ch.HasFlag() {
		return domain.Result{}, ErrNotAccessible
	}
	comp, err := s.compSvc.Info(ctx, ch.CompetitionID)
	if errors.Is(err, competition.ErrCompetitionNotFound) {
		return domain.Result{}, ErrChallengeNotFound
	}
	if err != nil {
		return domain.Result{}, err
	}
	if !comp.Accepting(time.Now().UnixMilli()) {
		return domain.Result{}, ErrNotAccessible
	}
	// 报名校验，顺带解析计分主体
	actorId, err := s.compSvc.ResolveActor(ctx, comp.ID, attempt.UID)
	if errors.Is(err, competition.ErrNotRegistered) {
		return domain.Result{}, ErrNotAccessible
	}
	if err != nil {
		return domain.Result{}, err
	}
	// 已解出检查只是快路径，真正的并发裁决在 scores 的唯一索引上
	solved, err := s.repo.HasCorrect(ctx, ch.ID, actorId)
	if err != nil {
		return domain.Result{}, err
	}
	if solved {
		return domain.Result{}, ErrAlreadySolved
	}
	// 冷却检查
	wait, err = s.tracker.CheckCooldown(ctx, actorId, ch.ID)
	if err != nil {
		return domain.Result{}, err
	}
	if wait > 0 {
		return domain.Result{}, &CooldownError{RetryAfter: wait}
	}
	// 验证。此后不再接触 flag 原文
	correct := flaghash.Verify(attempt.Flag, ch.FlagHash, ch.FlagSalt, ch.CaseSensitive)
	attempt.Flag = ""
	// 对错都落一条提交流水
	now := time.Now().UnixMilli()
	sub := domain.Submission{
		CompetitionID: comp.ID,
		ChallengeID:   ch.ID,
		UID:           attempt.UID,
		ActorID:       actorId,
		Correct:       correct,
		IP:            attempt.IP,
		UserAgent:     attempt.UserAgent,
		SubmittedAt:   now,
	}
	sub.ID, err = s.repo.Create(ctx, sub)
	if err != nil {
		return domain.Result{}, err
	}
	if !correct {
		s.recordOutcome(ctx, actorId, ch.ID, false)
		// 只告诉对方答错了，不解释为什么
		return domain.Result{
			SubmissionID: sub.ID,
			Correct:      false,
			Message:      "答案不对",
		}, nil
	}
	awardErr := s.repo.AwardScore(ctx, domain.Score{
		CompetitionID: comp.ID,
		ChallengeID:   ch.ID,
		UID:           attempt.UID,
		ActorID:       actorId,
		SubmissionID:  sub.ID,
		Points:        ch.Points,
		SolvedAt:      now,
	})
	// 计分事务无论成败都要更新冷却状态，这次提交确实答对了
	s.recordOutcome(ctx, actorId, ch.ID, true)
	if errors.Is(awardErr, repository.ErrDuplicateScore) {
		// 并发竞争的输家，等价于已解出
		return domain.Result{}, ErrAlreadySolved
	}
	if awardErr != nil {
		// 留下的缺口由对账任务补，这里带全量上下文记日志
		s.logger.Error("计分事务失败",
			elog.Int64("submissionId", sub.ID),
			elog.Int64("challengeId", ch.ID),
			elog.Int64("actorId", actorId),
			elog.Int64("competitionId", comp.ID),
			elog.FieldErr(awardErr))
		return domain.Result{}, awardErr
	}
	// 榜单失效和事件广播都是尽力而为，失败不影响提交结果
	if er := s.rankSvc.InvalidateCompetition(ctx, comp.ID); er != nil {
		s.logger.Error("失效榜单缓存失败",
			elog.Int64("competitionId", comp.ID),
			elog.FieldErr(er))
	}
	s.produce(ctx, sub, ch.Points)
	return domain.Result{
		SubmissionID: sub.ID,
		Correct:      true,
		Points:       ch.Points,
		Message:      "恭喜，答对了",
	}, nil
}

func (s *service) ReconcileScores(ctx context.Context, limit int) (int64, error) {
	var total int64
	for {
		subs, err := s.repo.FindCorrectWithoutScore(ctx, limit)
		if err != nil {
			return total, err
		}
		for _, sub := range subs {
			ch, err := s.chSvc.Detail(ctx, sub.ChallengeID)
			if err != nil {
				return total, fmt.Errorf("查询题目 %d 失败: %w", sub.ChallengeID, err)
			}
			err = s.repo.AwardScore(ctx, domain.Score{
				CompetitionID: sub.CompetitionID,
				ChallengeID:   sub.ChallengeID,
				UID:           sub.UID,
				ActorID:       sub.ActorID,
				SubmissionID:  sub.ID,
				Points:        ch.Points,
				SolvedAt:      sub.SubmittedAt,
			})
			switch {
			case errors.Is(err, repository.ErrDuplicateScore):
				// 扫描和补偿之间有人先落了账，不算缺口
			case err != nil:
				return total, fmt.Errorf("补偿提交 %d 的得分失败: %w", sub.ID, err)
			default:
				total++
				if er := s.rankSvc.InvalidateCompetition(ctx, sub.CompetitionID); er != nil {
					s.logger.Error("失效榜单缓存失败",
						elog.Int64("competitionId", sub.CompetitionID),
						elog.FieldErr(er))
				}
			}
		}
		if len(subs) < limit {
			return total, nil
		}
	}
}

func (s *service) recordOutcome(ctx context.Context, actorId, challengeId int64, correct bool) {
	if err := s.tracker.RecordOutcome(ctx, actorId, challengeId, correct); err != nil {
		s.logger.Error("更新冷却状态失败",
			elog.Int64("actorId", actorId),
			elog.Int64("challengeId", challengeId),
			elog.FieldErr(err))
	}
}

func (s *service) produce(ctx context.Context, sub domain.Submission, points int64) {
	evt := event.SubmissionCompletedEvent{
		EventId:       shortuuid.New(),
		SubmissionId:  sub.ID,
		CompetitionId: sub.CompetitionID,
		ChallengeId:   sub.ChallengeID,
		ActorId:       sub.ActorID,
		Uid:           sub.UID,
		Correct:       sub.Correct,
		Points:        points,
		SubmittedAt:   sub.SubmittedAt,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送提交完成事件失败",
			elog.String("eventId", evt.EventId),
			elog.Int64("submissionId", evt.SubmissionId),
			elog.FieldErr(err))
	}
}
