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
	"errors"

	"github.com/ctfarena/arena/internal/competition/internal/domain"
	"github.com/ctfarena/arena/internal/competition/internal/repository/dao"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/competition.mock.go CompetitionRepository

var (
	ErrCompetitionNotFound  = errors.New("比赛不存在")
	ErrRegistrationNotFound = errors.New("报名记录不存在")
)

type CompetitionRepository interface {
	FindById(ctx context.Context, id int64) (domain.Competition, error)
	Save(ctx context.Context, c domain.Competition) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindRegistration(ctx context.Context, competitionId, uid int64) (domain.Registration, error)
	SaveRegistration(ctx context.Context, r domain.Registration) (int64, error)
}

type competitionRepository struct {
	dao dao.CompetitionDAO
}

func NewCompetitionRepository(d dao.CompetitionDAO) CompetitionRepository {
	return &competitionRepository{dao: d}
}

func (r *competitionRepository) FindById(ctx context.Context, id int64) (domain.Competition, error) {
	c, err := r.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Competition{}, ErrCompetitionNotFound
	}
	if err != nil {
		return domain.Competition{}, err
	}
	return r.toDomain(c), nil
}

func (r *competitionRepository) Save(ctx context.Context, c domain.Competition) (int64, error) {
	return r.dao.Save(ctx, dao.Competition{
		Id:        c.ID,
		Name:      c.Name,
		Mode:      uint8(c.Mode),
		Status:    uint8(c.Status),
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
	})
}

func (r *competitionRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, uint8(status))
}

func (r *competitionRepository) FindRegistration(ctx context.Context, competitionId, uid int64) (domain.Registration, error) {
	reg, err := r.dao.FindRegistration(ctx, competitionId, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Registration{}, ErrRegistrationNotFound
	}
	if err != nil {
		return domain.Registration{}, err
	}
	return domain.Registration{
		ID:            reg.Id,
		CompetitionID: reg.CompetitionId,
		UID:           reg.Uid,
		TeamID:        reg.TeamId,
		Status:        domain.RegistrationStatus(reg.Status),
	}, nil
}

func (r *competitionRepository) SaveRegistration(ctx context.Context, reg domain.Registration) (int64, error) {
	return r.dao.SaveRegistration(ctx, dao.Registration{
		Id:            reg.ID,
		CompetitionId: reg.CompetitionID,
		Uid:           reg.UID,
		TeamId:        reg.TeamID,
		Status:        uint8(reg.Status),
	})
}

func (r *competitionRepository) toDomain(c dao.Competition) domain.Competition {
	return domain.Competition{
		ID:        c.Id,
		Name:      c.Name,
		Mode:      domain.Mode(c.Mode),
		Status:    domain.Status(c.Status),
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
	}
}
