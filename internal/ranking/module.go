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

package ranking

import (
	"github.com/ctfarena/arena/internal/ranking/internal/domain"
	"github.com/ctfarena/arena/internal/ranking/internal/service"
	"github.com/ctfarena/arena/internal/ranking/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.Service
type Handler = web.Handler

type Kind = domain.Kind
type Entry = domain.Entry
type ActorRank = domain.ActorRank

const (
	KindIndividual = domain.KindIndividual
	KindTeam       = domain.KindTeam
	KindGlobal     = domain.KindGlobal
)
