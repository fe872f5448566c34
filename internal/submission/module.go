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

package submission

import (
	"github.com/ctfarena/arena/internal/submission/internal/domain"
	"github.com/ctfarena/arena/internal/submission/internal/job"
	"github.com/ctfarena/arena/internal/submission/internal/service"
	"github.com/ctfarena/arena/internal/submission/internal/web"
)

type Module struct {
	Svc          Service
	Hdl          *Handler
	ReconcileJob *ReconcileScoresJob
}

type Service = service.Service
type Handler = web.Handler
type ReconcileScoresJob = job.ReconcileScoresJob

type Attempt = domain.Attempt
type Result = domain.Result

type RateLimitedError = service.RateLimitedError
type CooldownError = service.CooldownError

var (
	ErrChallengeNotFound = service.ErrChallengeNotFound
	ErrNotAccessible     = service.ErrNotAccessible
	ErrAlreadySolved     = service.ErrAlreadySolved
)
