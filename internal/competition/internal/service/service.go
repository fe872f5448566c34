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

	"github.com/ctfarena/arena/internal/competition/internal/domain"
	"github.com/ctfarena/arena/internal/competition/internal/repository"
)

//go:generate mockgen -source=./service.go -package=competitionmocks -destination=../../mocks/competition.mock.go Service

var (
	ErrCompetitionNotFound = repository.ErrCompetitionNotFound
	// ErrNotRegistered 没有已通过的报名记录
	ErrNotRegistered = errors.New("未报名或报名未通过")
)

type Service interface {
	Info(ctx context.Context, id int64) (domain.Competition, error)
	// ResolveActor 解析计分主体：个人赛返回 uid，团队赛返回报名记录里的队伍 id。
	// 只有报名状态为已通过才算有效。
	ResolveActor(ctx context.Context, competitionId, uid int64) (int64, error)
	Save(ctx context.Context, c domain.Competition) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Register(ctx context.Context, r domain.Registration) (int64, error)
}

type service struct {
	repo repository.CompetitionRepository
}

func NewService(repo repository.CompetitionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Info(ctx context.Context, id int64) (domain.Competition, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) ResolveActor(ctx context.Context, competitionId, uid int64) (int64, error) {
	c, err := s.repo.FindById(ctx, competitionId)
	if err != nil {
		return 0, err
	}
	reg, err := s.repo.FindRegistration(ctx, competitionId, uid)
	if errors.Is(err, repository.ErrRegistrationNotFound) {
		return 0, ErrNotRegistered
	}
	if err != nil {
		return 0, err
	}
	if reg.Status != domain.RegistrationStatusApproved {
		return 0, ErrNotRegistered
	}
	if c.Mode == domain.ModeTeam {
		if reg.TeamID == 0 {
			return 0, ErrNotRegistered
		}
		return reg.TeamID, nil
	}
	return uid, nil
}

func (s *service) Save(ctx context.Context, c domain.Competition) (int64, error) {
	return s.repo.Save(ctx, c)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Register(ctx context.Context, r domain.Registration) (int64, error) {
	return s.repo.SaveRegistration(ctx, r)
}
