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

//go:build wireinject

package startup

import (
	"github.com/ctfarena/arena/internal/challenge"
	"github.com/ctfarena/arena/internal/competition"
	"github.com/ctfarena/arena/internal/ranking"
	"github.com/ctfarena/arena/internal/submission"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	client redis.Cmdable,
	q mq.MQ) (*submission.Module, error) {
	wire.Build(
		competition.InitModule,
		challenge.InitModule,
		ranking.InitModule,
		submission.InitModule,
	)
	return new(submission.Module), nil
}

func InitRankingModule(db *egorm.Component, ec ecache.Cache) (*ranking.Module, error) {
	wire.Build(
		competition.InitModule,
		ranking.InitModule,
	)
	return new(ranking.Module), nil
}
