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

	"github.com/ctfarena/arena/internal/submission/internal/domain"
	"github.com/ctfarena/arena/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/submission.mock.go SubmissionRepository

var ErrDuplicateScore = dao.ErrDuplicateScore

type SubmissionRepository interface {
	Create(ctx context.Context, sub domain.Submission) (int64, error)
	HasCorrect(ctx context.Context, challengeId, actorId int64) (bool, error)
	AwardScore(ctx context.Context, sc domain.Score) error
	FindCorrectWithoutScore(ctx context.Context, limit int) ([]domain.Submission, error)
}

type submissionRepository struct {
	dao dao.SubmissionDAO
}

func NewSubmissionRepository(d dao.SubmissionDAO) SubmissionRepository {
	return &submissionRepository{dao: d}
}

func (r *submissionRepository) Create(ctx context.Context, sub domain.Submission) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(sub))
}

func (r *submissionRepository) HasCorrect(ctx context.Context, challengeId, actorId int64) (bool, error) {
	return r.dao.HasCorrect(ctx, challengeId, actorId)
}

func (r *submissionRepository) AwardScore(ctx context.Context, sc domain.Score) error {
	return r.dao.AwardScore(ctx, dao.Score{
		ChallengeId:   sc.ChallengeID,
		ActorId:       sc.ActorID,
		Uid:           sc.UID,
		CompetitionId: sc.CompetitionID,
		SubmissionId:  sc.SubmissionID,
		Points:        sc.Points,
		SolvedAt:      sc.SolvedAt,
	})
}

func (r *submissionRepository) FindCorrectWithoutScore(ctx context.Context, limit int) ([]domain.Submission, error) {
	subs, err := r.dao.FindCorrectWithoutScore(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	}), nil
}

func (r *submissionRepository) toEntity(sub domain.Submission) dao.Submission {
	return dao.Submission{
		Id:            sub.ID,
		CompetitionId: sub.CompetitionID,
		ChallengeId:   sub.ChallengeID,
		ActorId:       sub.ActorID,
		Uid:           sub.UID,
		Correct:       sub.Correct,
		Ip:            sub.IP,
		UserAgent:     sub.UserAgent,
		SubmittedAt:   sub.SubmittedAt,
	}
}

func (r *submissionRepository) toDomain(e dao.Submission) domain.Submission {
	return domain.Submission{
		ID:            e.Id,
		CompetitionID: e.CompetitionId,
		ChallengeID:   e.ChallengeId,
		ActorID:       e.ActorId,
		UID:           e.Uid,
		Correct:       e.Correct,
		IP:            e.Ip,
		UserAgent:     e.UserAgent,
		SubmittedAt:   e.SubmittedAt,
	}
}
