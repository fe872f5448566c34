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

	"github.com/ctfarena/arena/internal/challenge/internal/domain"
	"github.com/ctfarena/arena/internal/challenge/internal/repository"
	"github.com/ctfarena/arena/internal/pkg/flaghash"
)

//go:generate mockgen -source=./service.go -package=challengemocks -destination=../../mocks/challenge.mock.go Service

var ErrChallengeNotFound = repository.ErrChallengeNotFound

type Service interface {
	// Detail 返回含 flag 材料的完整题目，只供服务端内部消费，
	// 任何对外出口都必须先裁剪掉 FlagHash/FlagSalt
	Detail(ctx context.Context, id int64) (domain.Challenge, error)
	List(ctx context.Context, competitionId int64, offset, limit int) ([]domain.Challenge, error)
	// Save 接收 flag 明文，哈希之后立即丢弃。plainFlag 为空表示不更新 flag
	Save(ctx context.Context, ch domain.Challenge, plainFlag string) (int64, error)
}

type service struct {
	repo repository.ChallengeRepository
}

func NewService(repo repository.ChallengeRepository) Service {
	return &service{repo: repo}
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Challenge, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) List(ctx context.Context, competitionId int64, offset, limit int) ([]domain.Challenge, error) {
	return s.repo.ListByCompetition(ctx, competitionId, offset, limit)
}

func (s *service) Save(ctx context.Context, ch domain.Challenge, plainFlag string) (int64, error) {
	if plainFlag != "" {
		hash, salt, err := flaghash.Hash(plainFlag, "", ch.CaseSensitive)
		if err != nil {
			return 0, err
		}
		ch.FlagHash = hash
		ch.FlagSalt = salt
	} else if ch.ID > 0 {
		// 不更新 flag 时保留原有材料
		old, err := s.repo.FindById(ctx, ch.ID)
		if err != nil {
			return 0, err
		}
		ch.FlagHash = old.FlagHash
		ch.FlagSalt = old.FlagSalt
	}
	return s.repo.Save(ctx, ch)
}
