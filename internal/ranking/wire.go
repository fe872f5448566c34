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

package ranking

import (
	"github.com/ctfarena/arena/internal/competition"
	"github.com/ctfarena/arena/internal/ranking/internal/repository"
	"github.com/ctfarena/arena/internal/ranking/internal/repository/cache"
	"github.com/ctfarena/arena/internal/ranking/internal/repository/dao"
	"github.com/ctfarena/arena/internal/ranking/internal/service"
	"github.com/ctfarena/arena/internal/ranking/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

// InitModule 榜单模块只读 scores/competitions 表，不做建表
func InitModule(db *egorm.Component, ec ecache.Cache, compModule *competition.Module) (*Module, error) {
	wire.Build(
		dao.NewGORMRankingDAO,
		cache.NewRankingCache,
		repository.NewCachedRankingRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*competition.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
