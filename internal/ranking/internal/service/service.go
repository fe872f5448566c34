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

	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ctfarena/arena/internal/ranking/internal/repository"
)

//go:generate mockgen -source=./service.go -package=rankingmocks -destination=../../mocks/ranking.mock.go Service

type Service interface {
	Individual(ctx context.Context, competitionId int64, limit int) ([]domain.Entry, error)
	Team(ctx context.Context, competitionId int64, limit int) ([]domain.Entry, error)
	Global(ctx context.Context, limit int) ([]domain.Entry, error)
	// ActorRank 复用整榜缓存做线性查找，没得分返回零值 ActorRank
	ActorRank(ctx context.Context, kind domain.Kind, competitionId, actorId int64) (domain.ActorRank, error)
	// InvalidateCompetition 提交管线在新的正确提交落账后调用
	InvalidateCompetition(ctx context.Context, competitionId int64) error
}

type service struct {
	repo repository.RankingRepository
}

func NewService(repo repository.RankingRepository) Service {
	return &service{repo: repo}
}

func (s *service) Individual(ctx context.Context, competitionId int64, limit int) ([]domain.Entry, error) {
	return s.view(ctx, domain.KindIndividual, competitionId, limit)
}

func (s *service) Team(ctx context.Context, competitionId int64, limit int) ([]domain.Entry, error) {
	return s.view(ctx, domain.KindTeam, competitionId, limit)
}

func (s *service) Global(ctx context.Context, limit int) ([]domain.Entry, error) {
	return s.view(ctx, domain.KindGlobal, 0, limit)
}

func (s *service) view(ctx context.Context, kind domain.Kind, competitionId int64, limit int) ([]domain.Entry, error) {
	entries, err := s.repo.GetView(ctx, kind, competitionId)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *service) ActorRank(ctx context.Context, kind domain.Kind, competitionId, actorId int64) (domain.ActorRank, error) {
	entries, err := s.repo.GetView(ctx, kind, competitionId)
	if err != nil {
		return domain.ActorRank{}, err
	}
	for _, e := range entries {
		if e.ActorID == actorId {
			return domain.ActorRank{
				Rank:        e.Rank,
				TotalPoints: e.TotalPoints,
			}, nil
		}
	}
	return domain.ActorRank{}, nil
}

func (s *service) InvalidateCompetition(ctx context.Context, competitionId int64) error {
	return s.repo.InvalidateCompetition(ctx, competitionId)
}
