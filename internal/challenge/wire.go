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

package challenge

import (
	"sync"

	"github.com/ctfarena/arena/internal/challenge/internal/repository"
	"github.com/ctfarena/arena/internal/challenge/internal/repository/cache"
	"github.com/ctfarena/arena/internal/challenge/internal/repository/dao"
	"github.com/ctfarena/arena/internal/challenge/internal/service"
	"github.com/ctfarena/arena/internal/challenge/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewChallengeCache,
		repository.NewCachedChallengeRepository,
		service.NewService,
		web.NewAdminChallengeHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ChallengeDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMChallengeDAO(db)
}
