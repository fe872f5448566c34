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

package submission

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/ctfarena/arena/internal/challenge"
	"github.com/ctfarena/arena/internal/competition"
	"github.com/ctfarena/arena/internal/ranking"
	"github.com/ctfarena/arena/internal/submission/internal/event"
	"github.com/ctfarena/arena/internal/submission/internal/job"
	"github.com/ctfarena/arena/internal/submission/internal/repository"
	"github.com/ctfarena/arena/internal/submission/internal/repository/cache"
	"github.com/ctfarena/arena/internal/submission/internal/repository/dao"
	"github.com/ctfarena/arena/internal/submission/internal/service"
	"github.com/ctfarena/arena/internal/submission/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component,
	client redis.Cmdable,
	q mq.MQ,
	compModule *competition.Module,
	chModule *challenge.Module,
	rankModule *ranking.Module) (*Module, error) {
	wire.Build(
		InitSubmissionDAO,
		cache.NewTracker,
		repository.NewSubmissionRepository,
		event.NewSubmissionCompletedEventProducer,
		service.NewService,
		web.NewHandler,
		initReconcileScoresJob,
		wire.FieldsOf(new(*competition.Module), "Svc"),
		wire.FieldsOf(new(*challenge.Module), "Svc"),
		wire.FieldsOf(new(*ranking.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitSubmissionDAO(db *egorm.Component) dao.SubmissionDAO {
	once.Do(func() {
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMSubmissionDAO(db, node)
}

func initReconcileScoresJob(svc service.Service) *job.ReconcileScoresJob {
	const batchSize = 100
	return job.NewReconcileScoresJob(svc, batchSize)
}
