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

	"github.com/ctfarena/arena/internal/challenge/internal/domain"
	"github.com/ctfarena/arena/internal/challenge/internal/repository/cache"
	"github.com/ctfarena/arena/internal/challenge/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/challenge.mock.go ChallengeRepository

var ErrChallengeNotFound = errors.New("题目不存在")

type ChallengeRepository interface {
	FindById(ctx context.Context, id int64) (domain.Challenge, error)
	ListByCompetition(ctx context.Context, competitionId int64, offset, limit int) ([]domain.Challenge, error)
	Save(ctx context.Context, ch domain.Challenge) (int64, error)
}

type cachedChallengeRepository struct {
	dao    dao.ChallengeDAO
	cache  cache.ChallengeCache
	logger *elog.Component
}

func NewCachedChallengeRepository(d dao.ChallengeDAO, c cache.ChallengeCache) ChallengeRepository {
	return &cachedChallengeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *cachedChallengeRepository) FindById(ctx context.Context, id int64) (domain.Challenge, error) {
	ch, err := r.cache.Get(ctx, id)
	if err == nil {
		return ch, nil
	}
	entity, err := r.dao.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Challenge{}, ErrChallengeNotFound
	}
	if err != nil {
		return domain.Challenge{}, err
	}
	ch = r.toDomain(entity)
	if er := r.cache.Set(ctx, ch); er != nil {
		r.logger.Warn("回填题目缓存失败",
			elog.Int64("cid", id),
			elog.FieldErr(er))
	}
	return ch, nil
}

func (r *cachedChallengeRepository) ListByCompetition(ctx context.Context, competitionId int64, offset, limit int) ([]domain.Challenge, error) {
	entities, err := r.dao.ListByCompetition(ctx, competitionId, offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Challenge, 0, len(entities))
	for _, e := range entities {
		res = append(res, r.toDomain(e))
	}
	return res, nil
}

func (r *cachedChallengeRepository) Save(ctx context.Context, ch domain.Challenge) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(ch))
	if err != nil {
		return 0, err
	}
	// 缓存里可能是旧的 flag 材料，直接删
	if er := r.cache.Del(ctx, id); er != nil {
		r.logger.Warn("删除题目缓存失败",
			elog.Int64("cid", id),
			elog.FieldErr(er))
	}
	return id, nil
}

func (r *cachedChallengeRepository) toDomain(e dao.Challenge) domain.Challenge {
	return domain.Challenge{
		ID:            e.Id,
		CompetitionID: e.CompetitionId,
		Title:         e.Title,
		Points:        e.Points,
		FlagHash:      e.FlagHash,
		FlagSalt:      e.FlagSalt,
		CaseSensitive: e.CaseSensitive,
		Visible:       e.Visible,
		SolveCnt:      e.SolveCnt,
	}
}

func (r *cachedChallengeRepository) toEntity(ch domain.Challenge) dao.Challenge {
	return dao.Challenge{
		Id:            ch.ID,
		CompetitionId: ch.CompetitionID,
		Title:         ch.Title,
		Points:        ch.Points,
		FlagHash:      ch.FlagHash,
		FlagSalt:      ch.FlagSalt,
		CaseSensitive: ch.CaseSensitive,
		Visible:       ch.Visible,
	}
}
