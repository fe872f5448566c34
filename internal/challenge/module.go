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

package challenge

import (
	"github.com/ctfarena/arena/internal/challenge/internal/domain"
	"github.com/ctfarena/arena/internal/challenge/internal/service"
	"github.com/ctfarena/arena/internal/challenge/internal/web"
)

type Module struct {
	Svc      Service
	AdminHdl *AdminChallengeHandler
}

type Service = service.Service
type AdminChallengeHandler = web.AdminChallengeHandler
type Challenge = domain.Challenge

var ErrChallengeNotFound = service.ErrChallengeNotFound
